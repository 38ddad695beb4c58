// SPDX-License-Identifier: MIT

package numconv

// Signed is a constraint for signed fixed-width integer element types.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned fixed-width integer element types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the element-type constraint accepted by every reduction and engine.
type Integer interface {
	Signed | Unsigned
}

// Wide is a 128-bit two's-complement integer used as the widened accumulator.
// The zero value is ready to use and represents 0.
type Wide struct {
	hi uint64 // upper 64 bits, carries the sign
	lo uint64 // lower 64 bits
}
