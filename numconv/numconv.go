// SPDX-License-Identifier: MIT

package numconv

import (
	"math"
	"unsafe"
)

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Bounds returns the smallest and largest values representable by T.
// Complexity: O(1).
func Bounds[T Integer]() (lo, hi T) {
	var zero T
	if !IsSigned[T]() {
		return zero, ^zero
	}
	hi = T(uint64(1)<<(BitSize[T]()-1) - 1)

	return -hi - 1, hi
}

// Min returns the smallest value representable by T; it is the identity of a max fold.
func Min[T Integer]() T {
	lo, _ := Bounds[T]()
	return lo
}

// Max returns the largest value representable by T; it is the identity of a min fold.
func Max[T Integer]() T {
	_, hi := Bounds[T]()
	return hi
}

// AsFloat converts v to float64. 64-bit values above 2^53 lose precision.
func AsFloat[T Integer](v T) float64 {
	return float64(v)
}

// FromFloat rounds f half away from zero and converts it to T.
// Out-of-range values and NaN are not saturated (see package doc).
func FromFloat[T Integer](f float64) T {
	return T(math.Round(f))
}

// ClampRMSMax doubles f before converting it with FromFloat.
// For uint8 data the largest possible population deviation (127.5) maps to 255.
func ClampRMSMax[T Integer](f float64) T {
	return FromFloat[T](f * 2.0)
}
