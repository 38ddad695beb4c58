// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"github.com/samber/lo"
)

// Operation tags used in error wrappers.
const (
	opPadWindow = "PadWindow"
	opReduced   = "Shape.Reduced"
	opAxisLen   = "Shape.AxisLen"
	opValidate  = "Shape.Validate"
)

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Size returns the number of elements described by s (product of lengths).
// Complexity: O(rank).
func (s Shape) Size() int {
	return lo.Reduce(s, func(acc int, d int, _ int) int { return acc * d }, 1)
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// Equal reports whether s and o have the same rank and lengths.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}

// Validate checks rank 1..MaxRank and non-negative lengths.
func (s Shape) Validate() error {
	if len(s) < 1 || len(s) > MaxRank {
		return fmt.Errorf("%s(%v): %w", opValidate, []int(s), ErrRankUnsupported)
	}
	if lo.SomeBy(s, func(d int) bool { return d < 0 }) {
		return fmt.Errorf("%s(%v): %w", opValidate, []int(s), ErrInvalidShape)
	}

	return nil
}

// AxisLen returns the length of axis, or ErrAxisOutOfRange.
// Complexity: O(1).
func (s Shape) AxisLen(axis int) (int, error) {
	if axis < 0 || axis >= len(s) {
		return 0, fmt.Errorf("%s(%d) rank=%d: %w", opAxisLen, axis, len(s), ErrAxisOutOfRange)
	}

	return s[axis], nil
}

// Reduced derives the output shape of a window pass: on every axis
// max(dim - (win-1), 0), which is also the number of valid window placements.
// win must have the same rank as s (see PadWindow).
// Complexity: O(rank).
func (s Shape) Reduced(win Shape) (Shape, error) {
	if len(win) != len(s) {
		return nil, fmt.Errorf("%s(%v, %v): %w", opReduced, []int(s), []int(win), ErrShapeMismatch)
	}

	return lo.Map(s, func(d int, i int) int {
		return max(d-(max(win[i], 1)-1), 0)
	}), nil
}

// LargestAxis returns the index of the longest axis; the first one wins ties.
func (s Shape) LargestAxis() int {
	axis, longest := 0, -1
	for i, d := range s {
		if d > longest {
			axis, longest = i, d
		}
	}

	return axis
}

// strides returns row-major element strides for s.
func (s Shape) strides() []int {
	st := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= s[i]
	}

	return st
}

// PadWindow builds a window shape of the given rank from raw lengths.
// Implementation:
//   - Stage 1: validate rank ∈ 1..MaxRank.
//   - Stage 2: copy the first rank entries of raw; missing entries become 1,
//     entries beyond rank are ignored.
//   - Stage 3: reject any entry < 1 with ErrInvalidWindow.
//
// Examples:
//
//	PadWindow(1, 1, 2, 3, 4, 5) → [1]
//	PadWindow(3, 1, 2, 3, 4, 5) → [1 2 3]
//	PadWindow(5, 5)             → [5 1 1 1 1]
func PadWindow(rank int, raw ...int) (Shape, error) {
	if rank < 1 || rank > MaxRank {
		return nil, fmt.Errorf("%s(rank=%d): %w", opPadWindow, rank, ErrRankUnsupported)
	}
	win := Shape(lo.Times(rank, func(i int) int {
		if i < len(raw) {
			return raw[i]
		}
		return 1
	}))
	if lo.SomeBy(win, func(d int) bool { return d < 1 }) {
		return nil, fmt.Errorf("%s(%v): %w", opPadWindow, raw, ErrInvalidWindow)
	}

	return win, nil
}
