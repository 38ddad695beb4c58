// SPDX-License-Identifier: MIT
// Package window: sentinel error set.
// Every error returned by the engines is a programmer error and aborts the
// call without partial output. Configuration problems are never returned;
// worker resolution logs them and falls back.

package window

import (
	"errors"
	"fmt"
)

var (
	// ErrNilArray indicates a nil input array.
	ErrNilArray = errors.New("window: nil array")

	// ErrNilReduction indicates a nil reduction function.
	ErrNilReduction = errors.New("window: nil reduction")

	// ErrInvalidWorkers indicates a splitter asked for fewer than one chunk.
	ErrInvalidWorkers = errors.New("window: worker count must be >= 1")

	// ErrResultCount indicates Restack received a different number of results
	// than the splitter has boundaries, or a nil result.
	ErrResultCount = errors.New("window: results do not match boundaries")

	// ErrWorkerFailed indicates a worker aborted while reducing its chunk.
	// The concrete error is a *WorkerError.
	ErrWorkerFailed = errors.New("window: worker failed")
)

// WorkerError carries the recovered panic value of a failed worker together
// with the chunk it was processing.
type WorkerError struct {
	Chunk    int
	Boundary Boundary
	Value    any
}

// Error implements error.
func (e *WorkerError) Error() string {
	return fmt.Sprintf("window: worker %d on [%d,%d) axis %d failed: %v",
		e.Chunk, e.Boundary.Start, e.Boundary.End, e.Boundary.Axis, e.Value)
}

// Unwrap exposes ErrWorkerFailed and, when the panic value was itself an
// error, that error too.
func (e *WorkerError) Unwrap() []error {
	if err, ok := e.Value.(error); ok {
		return []error{ErrWorkerFailed, err}
	}

	return []error{ErrWorkerFailed}
}
