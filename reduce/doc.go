// SPDX-License-Identifier: MIT

// Package reduce is the library of window reductions applied by the window
// engines, plus a small registry that maps stable integer ids to them.
//
// Every reduction has the shape
//
//	func(w ndarray.View[T]) T
//
// and must be a pure fold: the engines give no guarantee about which goroutine
// evaluates a given window, so a reduction may not keep state between calls.
//
// ✨ Reductions (registry id in brackets):
//
//	[0] WindowMax            max fold, identity numconv.Min[T]
//	[1] WindowMin            min fold, identity numconv.Max[T]
//	[2] StdevDDOF0           float64 population standard deviation
//	[3] StdevDDOF1           float64 sample standard deviation
//	[4] AreaContrast         contrast metric Σ(x_i^i − prefix_i), see below
//	[5] FastStd              integer-accumulated mean, float deviations
//	[6] FastStdClamp         FastStd doubled before rounding
//	[7] FastPopulationStd    FastStd without the abs() on deviations
//	[8] FastSampleStd        sample variant, see below
//	[9] RMS                  root mean square sqrt(Σx²/n)
//
// ⚠️ Known formula quirks (kept for compatibility, flagged as suspect):
//   - FastSampleStd squares (|x| − mean) rather than (x − mean). For unsigned
//     data the two agree; for negative signed data they do not.
//   - AreaContrast raises each element to the power of its position inside
//     the window. The numerical meaning is unclear and the running value can
//     go negative, in which case the result is the rounding of NaN.
//
// ⚠️ Precision:
//
//	The Fast* family sums elements in a 128-bit accumulator and converts the
//	sum to float64 once; 64-bit inputs lose precision above 2^53. Callers
//	needing exact statistics use StdevDDOF0/StdevDDOF1.
package reduce
