// SPDX-License-Identifier: MIT

// Package ndarray: domain types. Behavior lives in shape.go, array.go,
// view.go and concat.go.
package ndarray

// MaxRank is the highest supported number of dimensions.
const MaxRank = 5

// Shape is an ordered list of dimension lengths, outermost axis first.
// Input arrays have every length >= 1; reduced (output) shapes may contain 0.
type Shape []int

// Array is an owned, contiguous, row-major N-dimensional buffer.
//   - shape has rank 1..MaxRank.
//   - strides[i] is the element distance between neighbors on axis i.
//   - len(data) == shape.Size().
type Array[T any] struct {
	shape   Shape
	strides []int
	data    []T
}

// View is a strided, read-only window onto Array storage.
// It aliases the backing buffer; Clone materializes an independent Array.
type View[T any] struct {
	data    []T
	offset  int   // flat index of the first element
	shape   Shape // extent on each axis
	strides []int // shared with the parent Array, never mutated
}
