// SPDX-License-Identifier: MIT

package reduce

import (
	"math"

	"github.com/katalvlaran/ndwindow/ndarray"
	"github.com/katalvlaran/ndwindow/numconv"
)

// WindowMax returns the largest element of w.
func WindowMax[T numconv.Integer](w ndarray.View[T]) T {
	acc := numconv.Min[T]()
	for x := range w.Values() {
		acc = max(acc, x)
	}

	return acc
}

// WindowMin returns the smallest element of w.
func WindowMin[T numconv.Integer](w ndarray.View[T]) T {
	acc := numconv.Max[T]()
	for x := range w.Values() {
		acc = min(acc, x)
	}

	return acc
}

// stdev computes the float64 standard deviation with ddof delta degrees of
// freedom using a single-pass Welford update (mean and sum of squares).
func stdev[T numconv.Integer](w ndarray.View[T], ddof float64) float64 {
	var mean, sumSq float64
	for i, v := range w.All() {
		x := numconv.AsFloat(v)
		delta := x - mean
		mean += delta / float64(i+1)
		sumSq = math.FMA(x-mean, delta, sumSq)
	}

	return math.Sqrt(sumSq / (float64(w.Len()) - ddof))
}

// StdevDDOF0 returns the population standard deviation of w computed on
// float64 values, rounded back to T.
func StdevDDOF0[T numconv.Integer](w ndarray.View[T]) T {
	return numconv.FromFloat[T](stdev(w, 0))
}

// StdevDDOF1 returns the sample standard deviation of w computed on float64
// values, rounded back to T. A single-element window divides by zero.
func StdevDDOF1[T numconv.Integer](w ndarray.View[T]) T {
	return numconv.FromFloat[T](stdev(w, 1))
}

// AreaContrast folds p1 += x_i^i − prefix_i over the window, where prefix_i is
// the widened running sum up to and including x_i, and returns sqrt(p1)/len.
func AreaContrast[T numconv.Integer](w ndarray.View[T]) T {
	var p1 float64
	p2 := numconv.Zero()
	for i, x := range w.All() {
		p2 = numconv.Accumulate(p2, x)
		p1 = p1 + math.Pow(numconv.AsFloat(x), float64(i)) - p2.Float64()
	}

	return numconv.FromFloat[T](math.Sqrt(p1) / float64(w.Len()))
}

// fastMean sums w in the widened accumulator and returns the mean and 1/len.
func fastMean[T numconv.Integer](w ndarray.View[T]) (mean, invLen float64) {
	invLen = 1 / float64(w.Len())
	acc := numconv.Zero()
	for x := range w.Values() {
		acc = numconv.Accumulate(acc, x)
	}

	return acc.Float64() * invLen, invLen
}

// fastRMS is the shared body of FastStd and FastStdClamp.
func fastRMS[T numconv.Integer](w ndarray.View[T]) float64 {
	mean, invLen := fastMean(w)
	var flt float64
	for x := range w.Values() {
		d := math.Abs(numconv.AsFloat(x) - mean)
		flt += d * d
	}

	return math.Sqrt(flt * invLen)
}

// FastStd approximates the population standard deviation: the mean pass uses
// integer addition, the deviation pass float64.
func FastStd[T numconv.Integer](w ndarray.View[T]) T {
	return numconv.FromFloat[T](fastRMS(w))
}

// FastStdClamp is FastStd doubled before rounding, so the largest possible
// deviation of a uint8 window maps to 255.
func FastStdClamp[T numconv.Integer](w ndarray.View[T]) T {
	return numconv.ClampRMSMax[T](fastRMS(w))
}

// FastPopulationStd is FastStd without abs() on the deviations.
func FastPopulationStd[T numconv.Integer](w ndarray.View[T]) T {
	mean, invLen := fastMean(w)
	var flt float64
	for x := range w.Values() {
		d := numconv.AsFloat(x) - mean
		flt += d * d
	}

	return numconv.FromFloat[T](math.Sqrt(flt * invLen))
}

// FastSampleStd divides by len-1 and squares (|x| - mean) for each element.
// The abs() applies to the element, not the deviation; see the package doc.
func FastSampleStd[T numconv.Integer](w ndarray.View[T]) T {
	mean, _ := fastMean(w)
	var flt float64
	for x := range w.Values() {
		d := math.Abs(numconv.AsFloat(x)) - mean
		flt += d * d
	}

	return numconv.FromFloat[T](math.Sqrt(flt * (1 / float64(w.Len()-1))))
}

// RMS returns the root mean square sqrt(Σx²/len) of w.
func RMS[T numconv.Integer](w ndarray.View[T]) T {
	var sumSq float64
	for x := range w.Values() {
		f := numconv.AsFloat(x)
		sumSq += f * f
	}

	return numconv.FromFloat[T](math.Sqrt(sumSq / float64(w.Len())))
}
