// SPDX-License-Identifier: MIT

package window

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/ndwindow/ndarray"
	"github.com/katalvlaran/ndwindow/numconv"
	"github.com/katalvlaran/ndwindow/reduce"
)

// Operation tags used in error wrappers.
const (
	opApply         = "Apply"
	opApplyParallel = "ApplyParallel"
	opNewSplitter   = "NewSplitter"
	opRestack       = "Restack"
)

// Apply reduces every window of extent win in a to one element and returns
// the array of results, whose shape is a.Shape().Reduced(win).
// Implementation:
//   - Stage 1: validate a (non-nil, every axis ≥ 1), fn and win.
//   - Stage 2: walk the window placements in row-major anchor order and
//     append fn(window) to the output buffer.
//
// Behavior highlights:
//   - Deterministic and single-threaded; the result is the reference that
//     ApplyParallel reproduces.
//   - When any axis of the reduced shape is 0 the result is empty and fn is
//     never called.
//
// Errors: ErrNilArray, ErrNilReduction, ndarray.ErrInvalidShape,
// ndarray.ErrShapeMismatch when len(win) != a.Rank() (win is not padded here;
// build it with ndarray.PadWindow(a.Rank(), raw...) first),
// ndarray.ErrInvalidWindow.
//
// Complexity: O(out · |win|) time, O(out) memory.
func Apply[T numconv.Integer](a *ndarray.Array[T], win ndarray.Shape, fn reduce.Func[T]) (*ndarray.Array[T], error) {
	if err := validateInput(a, win, fn); err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}
	out, err := apply(a.View(), win, fn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}

	return out, nil
}

// apply is the unchecked body of Apply, shared with the parallel workers.
func apply[T numconv.Integer](v ndarray.View[T], win ndarray.Shape, fn reduce.Func[T]) (*ndarray.Array[T], error) {
	reduced, err := v.Shape().Reduced(win)
	if err != nil {
		return nil, err
	}
	seq, err := v.Windows(win)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, reduced.Size())
	for w := range seq {
		out = append(out, fn(w))
	}

	return ndarray.Wrap(reduced, out)
}

// validateInput performs the checks shared by both engines.
func validateInput[T numconv.Integer](a *ndarray.Array[T], win ndarray.Shape, fn reduce.Func[T]) error {
	if a == nil {
		return ErrNilArray
	}
	if fn == nil {
		return ErrNilReduction
	}
	shape := a.Shape()
	if lo.SomeBy(shape, func(d int) bool { return d < 1 }) {
		return fmt.Errorf("input %v has an empty axis: %w", shape, ndarray.ErrInvalidShape)
	}

	return validateWindow(shape, win)
}

// validateWindow checks that win matches the rank of shape and has no entry < 1.
func validateWindow(shape, win ndarray.Shape) error {
	if len(win) != len(shape) {
		return fmt.Errorf("window %v for shape %v: %w", []int(win), shape, ndarray.ErrShapeMismatch)
	}
	if lo.SomeBy(win, func(d int) bool { return d < 1 }) {
		return fmt.Errorf("window %v: %w", []int(win), ndarray.ErrInvalidWindow)
	}

	return nil
}
