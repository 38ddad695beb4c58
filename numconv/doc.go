// SPDX-License-Identifier: MIT

// Package numconv defines the element-type contract shared by every window
// reduction: representable bounds, a widened integer accumulator, and the
// float round-trip used to bring statistics back into the element type.
//
// ✨ What lives here:
//
//   - Integer / Signed / Unsigned: generic constraints over the fixed-width
//     integer kinds (8, 16, 32 and 64 bits, signed and unsigned).
//   - Bounds, Min, Max: identity elements for max/min folds.
//   - Wide: a 128-bit two's-complement accumulator. It is at least 64 bits
//     wider than every supported element type, so summing a window never
//     overflows for 8/16/32-bit data. For 64-bit data the headroom is
//     2^64 elements, which is far beyond any realistic window.
//   - FromFloat: round-to-nearest conversion back into T.
//   - ClampRMSMax: FromFloat(f*2), so the largest possible deviation of a
//     uint8 window maps onto 255.
//
// ⚠️ Out-of-range floats:
//
//	FromFloat does NOT saturate. Converting a float outside T's range (or NaN)
//	follows Go's implementation-defined float→integer conversion. The "fast"
//	reduction family documents this as an accepted approximation; callers that
//	need exact behavior use the float-based standard deviations instead.
//
// All functions are pure and safe for concurrent use.
package numconv
