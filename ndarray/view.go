// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"iter"

	"github.com/samber/lo"
)

// Operation tags used in error wrappers.
const (
	opSlice   = "Slice"
	opWindow  = "Window"
	opViewAt  = "View.At"
	opWindows = "Windows"
)

// Len returns the number of elements visible through v.
func (v View[T]) Len() int {
	return v.shape.Size()
}

// Rank returns the number of dimensions of v.
func (v View[T]) Rank() int {
	return len(v.shape)
}

// Shape returns a copy of the view extent.
func (v View[T]) Shape() Shape {
	return v.shape.Clone()
}

// At returns the element at idx relative to the view origin.
func (v View[T]) At(idx ...int) (T, error) {
	var zero T
	if len(idx) != len(v.shape) {
		return zero, fmt.Errorf("%s(%v) rank=%d: %w", opViewAt, idx, len(v.shape), ErrIndexOutOfRange)
	}
	off := v.offset
	for i, x := range idx {
		if x < 0 || x >= v.shape[i] {
			return zero, fmt.Errorf("%s(%v) shape=%v: %w", opViewAt, idx, v.shape, ErrIndexOutOfRange)
		}
		off += x * v.strides[i]
	}

	return v.data[off], nil
}

// All yields (position, value) pairs in row-major order, position counting from 0.
// Reductions fold over this sequence; breaking out of the loop stops the walk.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		rank := len(v.shape)
		if rank == 0 || v.Len() == 0 {
			return
		}
		last := rank - 1
		inner, step := v.shape[last], v.strides[last]

		var idx [MaxRank]int
		base, k := v.offset, 0
		for {
			p := base
			for j := 0; j < inner; j++ {
				if !yield(k, v.data[p]) {
					return
				}
				k++
				p += step
			}
			// carry into the outer axes
			ax := last - 1
			for ; ax >= 0; ax-- {
				idx[ax]++
				base += v.strides[ax]
				if idx[ax] < v.shape[ax] {
					break
				}
				base -= v.strides[ax] * v.shape[ax]
				idx[ax] = 0
			}
			if ax < 0 {
				return
			}
		}
	}
}

// Values yields the elements of v in row-major order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Slice restricts axis to [start,end) and keeps the full range elsewhere.
// Errors: ErrAxisOutOfRange when axis >= rank, ErrSliceBounds when the range
// does not satisfy 0 <= start <= end <= len(axis).
// Complexity: O(rank), no element copy.
func (v View[T]) Slice(start, end, axis int) (View[T], error) {
	if axis < 0 || axis >= len(v.shape) {
		return View[T]{}, fmt.Errorf("%s(%d,%d,axis=%d) rank=%d: %w",
			opSlice, start, end, axis, len(v.shape), ErrAxisOutOfRange)
	}
	if start < 0 || end < start || end > v.shape[axis] {
		return View[T]{}, fmt.Errorf("%s(%d,%d,axis=%d) len=%d: %w",
			opSlice, start, end, axis, v.shape[axis], ErrSliceBounds)
	}
	shape := v.shape.Clone()
	shape[axis] = end - start

	return View[T]{
		data:    v.data,
		offset:  v.offset + start*v.strides[axis],
		shape:   shape,
		strides: v.strides,
	}, nil
}

// Window returns the sub-view anchored at origin with extent win.
// Errors: ErrShapeMismatch on rank mismatch, ErrSliceBounds when the window
// does not fit inside v.
func (v View[T]) Window(origin []int, win Shape) (View[T], error) {
	if len(origin) != len(v.shape) || len(win) != len(v.shape) {
		return View[T]{}, fmt.Errorf("%s(%v,%v) rank=%d: %w", opWindow, origin, win, len(v.shape), ErrShapeMismatch)
	}
	off := v.offset
	for i := range origin {
		if origin[i] < 0 || win[i] < 0 || origin[i]+win[i] > v.shape[i] {
			return View[T]{}, fmt.Errorf("%s(%v,%v) shape=%v: %w", opWindow, origin, win, v.shape, ErrSliceBounds)
		}
		off += origin[i] * v.strides[i]
	}

	return View[T]{data: v.data, offset: off, shape: win.Clone(), strides: v.strides}, nil
}

// Windows yields every placement of a window of extent win inside v, in
// row-major order of the anchor coordinate. The number of placements per axis
// is v.Shape().Reduced(win), so the sequence is empty when any axis is shorter
// than the window.
// Errors: ErrShapeMismatch on rank mismatch, ErrInvalidWindow for entries < 1.
// Complexity: O(1) per yielded view; views alias v.
func (v View[T]) Windows(win Shape) (iter.Seq[View[T]], error) {
	reduced, err := v.shape.Reduced(win)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opWindows, err)
	}
	if lo.SomeBy(win, func(d int) bool { return d < 1 }) {
		return nil, fmt.Errorf("%s(%v): %w", opWindows, []int(win), ErrInvalidWindow)
	}
	w := win.Clone()

	return func(yield func(View[T]) bool) {
		if reduced.Size() == 0 {
			return
		}
		var idx [MaxRank]int
		off := v.offset
		for {
			if !yield(View[T]{data: v.data, offset: off, shape: w, strides: v.strides}) {
				return
			}
			ax := len(reduced) - 1
			for ; ax >= 0; ax-- {
				idx[ax]++
				off += v.strides[ax]
				if idx[ax] < reduced[ax] {
					break
				}
				off -= v.strides[ax] * reduced[ax]
				idx[ax] = 0
			}
			if ax < 0 {
				return
			}
		}
	}, nil
}

// contiguous reports whether v covers one unbroken row-major run of data.
func (v View[T]) contiguous() bool {
	want := 1
	for i := len(v.shape) - 1; i >= 0; i-- {
		if v.shape[i] > 1 && v.strides[i] != want {
			return false
		}
		want *= v.shape[i]
	}

	return true
}

// flat returns the elements of v in row-major order, aliasing storage when
// the view is contiguous and copying otherwise.
func (v View[T]) flat() []T {
	n := v.Len()
	if v.contiguous() {
		return v.data[v.offset : v.offset+n]
	}
	out := make([]T, 0, n)
	for x := range v.Values() {
		out = append(out, x)
	}

	return out
}

// Clone copies the visible elements into a new, independently owned Array.
// Complexity: O(Len()).
func (v View[T]) Clone() *Array[T] {
	a := newUnchecked[T](v.shape.Clone())
	copy(a.data, v.flat())

	return a
}
