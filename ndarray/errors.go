// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every message is prefixed with "ndarray:" and call sites wrap with
// fmt.Errorf("Op: %w", ErrX) so callers match with errors.Is.

package ndarray

import "errors"

var (
	// ErrInvalidShape indicates a shape with a negative dimension length.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrRankUnsupported indicates a rank outside 1..MaxRank.
	ErrRankUnsupported = errors.New("ndarray: rank must be within 1..5")

	// ErrInvalidWindow indicates a window entry smaller than 1.
	ErrInvalidWindow = errors.New("ndarray: window entries must be >= 1")

	// ErrAxisOutOfRange indicates an axis index outside [0, rank).
	ErrAxisOutOfRange = errors.New("ndarray: axis out of range")

	// ErrSliceBounds indicates a slice [start,end) that does not fit the axis.
	ErrSliceBounds = errors.New("ndarray: slice bounds out of range")

	// ErrShapeMismatch indicates operands whose shapes are incompatible,
	// e.g. Concat inputs differing on a non-concatenation axis.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrDataLength indicates a backing slice whose length differs from the shape size.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrIndexOutOfRange indicates an element index outside the array bounds.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrNoParts indicates Concat was called without inputs.
	ErrNoParts = errors.New("ndarray: nothing to concatenate")
)
