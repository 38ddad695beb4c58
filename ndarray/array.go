// SPDX-License-Identifier: MIT

// Package ndarray - Array storage (row-major) & safe accessors.
//
// Purpose:
//   - Own a contiguous buffer with the explicit offset formula Σ idx[i]*strides[i].
//   - Public accessors return errors instead of panicking.
//   - Deep-copy on ingestion so callers cannot mutate engine inputs afterwards.

package ndarray

import (
	"fmt"
	"iter"
	"strings"
)

// Operation tags used in error wrappers.
const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opFromFunc  = "FromFunc"
	opWrap      = "Wrap"
	opAt        = "At"
	opSet       = "Set"
)

// New allocates a zero-filled array of the given shape.
// Zero-length axes are legal (they appear in reduced outputs).
// Errors: ErrRankUnsupported, ErrInvalidShape.
// Complexity: O(size).
func New[T any](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return newUnchecked[T](shape.Clone()), nil
}

// newUnchecked allocates without validation; shape must already be owned and valid.
func newUnchecked[T any](shape Shape) *Array[T] {
	return &Array[T]{
		shape:   shape,
		strides: shape.strides(),
		data:    make([]T, shape.Size()),
	}
}

// FromSlice builds an array from row-major data. data is copied.
// Errors: shape validation errors, ErrDataLength.
func FromSlice[T any](shape Shape, data []T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromSlice, err)
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%s(%v) len=%d: %w", opFromSlice, shape, len(data), ErrDataLength)
	}
	a := newUnchecked[T](shape.Clone())
	copy(a.data, data)

	return a, nil
}

// Wrap adopts data as the backing buffer of a new array without copying.
// The caller must not retain or mutate data afterwards. Engines use it to
// hand over freshly computed output buffers.
// Errors: shape validation errors, ErrDataLength.
func Wrap[T any](shape Shape, data []T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opWrap, err)
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%s(%v) len=%d: %w", opWrap, shape, len(data), ErrDataLength)
	}
	shape = shape.Clone()

	return &Array[T]{shape: shape, strides: shape.strides(), data: data}, nil
}

// FromFunc builds an array by calling fn once per element in row-major order.
// The idx slice passed to fn is reused between calls; copy it to retain it.
func FromFunc[T any](shape Shape, fn func(idx []int) T) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opFromFunc, err)
	}
	a := newUnchecked[T](shape.Clone())
	if len(a.data) == 0 {
		return a, nil
	}
	idx := make([]int, len(shape))
	for k := range a.data {
		a.data[k] = fn(idx)
		// odometer increment, last axis fastest
		for ax := len(idx) - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < shape[ax] {
				break
			}
			idx[ax] = 0
		}
	}

	return a, nil
}

// Shape returns a copy of the array shape.
func (a *Array[T]) Shape() Shape {
	return a.shape.Clone()
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns a row-major copy of the elements.
func (a *Array[T]) Data() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out
}

// offsetOf validates idx and returns its flat offset.
func (a *Array[T]) offsetOf(op string, idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, fmt.Errorf("%s(%v) rank=%d: %w", op, idx, len(a.shape), ErrIndexOutOfRange)
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= a.shape[i] {
			return 0, fmt.Errorf("%s(%v) shape=%v: %w", op, idx, a.shape, ErrIndexOutOfRange)
		}
		off += x * a.strides[i]
	}

	return off, nil
}

// At returns the element at idx (one index per axis).
// Complexity: O(rank).
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.offsetOf(opAt, idx)
	if err != nil {
		var zero T
		return zero, err
	}

	return a.data[off], nil
}

// Set stores v at idx. Arrays already handed to an engine must not be mutated.
func (a *Array[T]) Set(v T, idx ...int) error {
	off, err := a.offsetOf(opSet, idx)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// View returns a view over the whole array.
func (a *Array[T]) View() View[T] {
	return View[T]{data: a.data, shape: a.shape, strides: a.strides}
}

// Windows yields every window placement of extent win; see View.Windows.
func (a *Array[T]) Windows(win Shape) (iter.Seq[View[T]], error) {
	return a.View().Windows(win)
}

// Slice restricts axis to [start,end) and keeps the full range elsewhere.
// The result aliases a; see View.Clone for an owned copy.
func (a *Array[T]) Slice(start, end, axis int) (View[T], error) {
	return a.View().Slice(start, end, axis)
}

// Clone returns a deep copy.
func (a *Array[T]) Clone() *Array[T] {
	b := newUnchecked[T](a.shape.Clone())
	copy(b.data, a.data)

	return b
}

// String implements fmt.Stringer: the shape followed by the flat data.
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Array")
	sb.WriteString(a.shape.String())
	sb.WriteString(" ")
	sb.WriteString(fmt.Sprint(a.data))

	return sb.String()
}

// Equal reports whether a and b have identical shapes and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}
