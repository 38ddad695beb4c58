// SPDX-License-Identifier: MIT

package numconv

import "math/bits"

// two64 is 2^64 as a float64, used to recombine the halves of a Wide.
const two64 = 18446744073709551616.0

// Zero returns the additive identity of the widened accumulator.
func Zero() Wide {
	return Wide{}
}

// Widen sign- or zero-extends v into a Wide, matching the signedness of T.
// Complexity: O(1).
func Widen[T Integer](v T) Wide {
	if IsSigned[T]() {
		x := int64(v)
		return Wide{hi: uint64(x >> 63), lo: uint64(x)}
	}

	return Wide{lo: uint64(v)}
}

// Add returns w + v with 128-bit wrap-around.
func (w Wide) Add(v Wide) Wide {
	lo, carry := bits.Add64(w.lo, v.lo, 0)
	hi, _ := bits.Add64(w.hi, v.hi, carry)

	return Wide{hi: hi, lo: lo}
}

// Accumulate widens x and adds it to acc. It is the fold step of the
// integer-accumulated mean used by the fast reductions.
func Accumulate[T Integer](acc Wide, x T) Wide {
	return acc.Add(Widen(x))
}

// Negative reports whether w is below zero.
func (w Wide) Negative() bool {
	return w.hi>>63 == 1
}

// neg returns the two's-complement negation of w.
func (w Wide) neg() Wide {
	lo, carry := bits.Add64(^w.lo, 1, 0)
	hi, _ := bits.Add64(^w.hi, 0, carry)

	return Wide{hi: hi, lo: lo}
}

// Float64 converts w to the nearest float64 (magnitudes above 2^53 round).
func (w Wide) Float64() float64 {
	if w.Negative() {
		m := w.neg()
		return -(float64(m.hi)*two64 + float64(m.lo))
	}

	return float64(w.hi)*two64 + float64(w.lo)
}
