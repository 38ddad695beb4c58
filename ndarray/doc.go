// SPDX-License-Identifier: MIT

// Package ndarray provides the dense N-dimensional storage the window engines
// work on, together with the rank-generic shape arithmetic they rely on.
//
// 🚀 What is here?
//
//	A single implementation covers every supported rank (1 through MaxRank=5).
//	Shapes are plain index lists, so window-shape derivation, axis slicing and
//	axis concatenation are written once instead of once per rank.
//
// ✨ Key pieces:
//   - Shape      : ordered dimension lengths; Reduced, AxisLen, LargestAxis.
//   - PadWindow  : builds a window shape of a given rank from a raw list:
//     missing trailing entries become 1, extra entries are ignored.
//   - Array[T]   : owned, contiguous, row-major buffer plus shape.
//   - View[T]    : strided, read-only window onto an Array (no copy).
//   - Concat     : joins same-rank views along one axis into a new Array.
//
// ⚙️ Usage:
//
//	a, _ := ndarray.FromFunc(ndarray.Shape{50, 5}, func(idx []int) uint8 {
//	    return uint8(idx[0] ^ idx[1])
//	})
//	win, _ := ndarray.PadWindow(a.Rank(), 2)      // → [2 1]
//	out, _ := a.Shape().Reduced(win)               // → [49 5]
//	top, _ := a.Slice(0, 25, 0)                    // rows [0,25), all columns
//	rest, _ := a.Slice(25, 50, 0)
//	whole, _ := ndarray.Concat(0, top, rest)       // back to 50×5
//
// Ownership:
//
//	Arrays are immutable by convention once handed to an engine. Views alias
//	their Array; call View.Clone to obtain independently owned storage before
//	handing data to another goroutine.
//
// Errors:
//
//	Shape problems (rank outside 1..5, axis ≥ rank, mismatched concat
//	dimensions, out-of-range slices) are programmer errors. They are returned
//	as wrapped sentinels from errors.go and are never recovered internally.
package ndarray
