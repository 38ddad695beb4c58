// SPDX-License-Identifier: MIT

// Package ndwindow is a library for sliding-window reductions over
// N-dimensional integer arrays, with a parallel engine that splits the
// work across goroutines and returns exactly the sequential result.
//
// 🚀 What is ndwindow?
//
//	A small, generic toolkit that brings together:
//		• ndarray: row-major arrays and strided views of rank 1..5
//		• reduce: window reductions (max, min, standard deviations, RMS,
//		  contrast) plus an id registry for dispatch by numeric code
//		• window: sequential Apply and parallel ApplyParallel engines
//		• numconv: integer bounds, rounding conversions, 128-bit accumulator
//
// ✨ Why choose ndwindow?
//
//   - One generic implementation for every 8/16/32/64-bit integer type
//   - Deterministic – the parallel result equals the sequential one
//   - Explicit – errors instead of panics, configuration passed per call
//
// Quick example:
//
//	a, _ := ndarray.FromSlice(ndarray.Shape{3, 3}, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9})
//	out, _ := window.ApplyParallel(a, ndarray.Shape{2, 2}, reduce.WindowMax[uint8])
//	// out: [[5 6] [8 9]]
//
//	go get github.com/katalvlaran/ndwindow
package ndwindow
