// SPDX-License-Identifier: MIT

// Package window - Splitter: fixed up-front partition of the longest axis.
//
// Each chunk overlaps the next by win-1 elements on the split axis, so the
// windows anchored in chunk k never need data from chunk k+1 and the
// reduced chunks concatenate back into exactly the sequential result.

package window

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/ndwindow/ndarray"
	"github.com/katalvlaran/ndwindow/numconv"
)

// Boundary is the half-open range [Start, End) of one chunk on Axis.
type Boundary struct {
	Start int
	End   int
	Axis  int
}

// Len returns End - Start.
func (b Boundary) Len() int { return b.End - b.Start }

// Splitter holds the partition of one array shape for one window shape.
type Splitter struct {
	axis   int
	bounds []Boundary
}

// NewSplitter partitions shape along its longest axis (first wins ties) into
// at most workers chunks.
// Implementation:
//   - Stage 1: validate shape (rank 1..5, every axis ≥ 1), win and workers.
//   - Stage 2: span = axisLen - (win[axis]-1) window anchors on the axis;
//     chunks = min(workers, span), or a single whole-axis chunk when span < 1.
//   - Stage 3: chunk k covers [round(k·step), round((k+1)·step) + win-1) with
//     step = span/chunks; the last chunk ends at axisLen.
//
// Consecutive boundaries overlap by exactly win[axis]-1 elements and together
// cover [0, axisLen).
//
// Errors: shape validation errors, ndarray.ErrShapeMismatch,
// ndarray.ErrInvalidWindow, ErrInvalidWorkers.
func NewSplitter(shape, win ndarray.Shape, workers int) (*Splitter, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewSplitter, err)
	}
	if lo.SomeBy(shape, func(d int) bool { return d < 1 }) {
		return nil, fmt.Errorf("%s(%v): empty axis: %w", opNewSplitter, shape, ndarray.ErrInvalidShape)
	}
	if err := validateWindow(shape, win); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewSplitter, err)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%s(workers=%d): %w", opNewSplitter, workers, ErrInvalidWorkers)
	}

	axis := shape.LargestAxis()
	axisLen := shape[axis]
	overlap := win[axis] - 1
	span := axisLen - overlap
	if span < 1 {
		return &Splitter{axis: axis, bounds: []Boundary{{Start: 0, End: axisLen, Axis: axis}}}, nil
	}

	chunks := min(workers, span)
	step := float64(span) / float64(chunks)
	bounds := make([]Boundary, chunks)
	for k := range bounds {
		start := int(math.Round(float64(k) * step))
		end := int(math.Round(float64(k+1)*step)) + overlap
		if k == chunks-1 {
			end = axisLen
		}
		bounds[k] = Boundary{Start: start, End: end, Axis: axis}
	}

	return &Splitter{axis: axis, bounds: bounds}, nil
}

// Axis returns the split axis.
func (s *Splitter) Axis() int { return s.axis }

// Len returns the number of chunks.
func (s *Splitter) Len() int { return len(s.bounds) }

// Boundaries returns a copy of the chunk boundaries in ascending chunk order.
func (s *Splitter) Boundaries() []Boundary {
	out := make([]Boundary, len(s.bounds))
	copy(out, s.bounds)

	return out
}

// Restack concatenates per-chunk results along the split axis.
// results[k] must be the reduction of chunk k; a different order yields a
// wrong array that is not detected.
// Errors: ErrResultCount, ndarray.ErrShapeMismatch from the concatenation.
func Restack[T numconv.Integer](s *Splitter, results []*ndarray.Array[T]) (*ndarray.Array[T], error) {
	if len(results) != len(s.bounds) {
		return nil, fmt.Errorf("%s: got %d results for %d chunks: %w",
			opRestack, len(results), len(s.bounds), ErrResultCount)
	}
	if lo.Contains(results, nil) {
		return nil, fmt.Errorf("%s: nil result: %w", opRestack, ErrResultCount)
	}
	views := lo.Map(results, func(r *ndarray.Array[T], _ int) ndarray.View[T] { return r.View() })
	out, err := ndarray.Concat(s.axis, views...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRestack, err)
	}

	return out, nil
}
