// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"github.com/samber/lo"
)

const opConcat = "Concat"

// Concat joins same-rank views along axis into a new Array, in argument order.
// Implementation:
//   - Stage 1: validate there is at least one part, equal ranks, axis < rank,
//     and identical lengths on every axis except axis.
//   - Stage 2: allocate the output with the summed axis length.
//   - Stage 3: for each outer block (axes before axis) copy each part's
//     contiguous run of parts[i].shape[axis]*inner elements.
//
// Zero-length parts are legal and contribute nothing.
// Errors: ErrNoParts, ErrAxisOutOfRange, ErrShapeMismatch.
// Complexity: O(total elements).
func Concat[T any](axis int, parts ...View[T]) (*Array[T], error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%s: %w", opConcat, ErrNoParts)
	}
	ref := parts[0].shape
	if axis < 0 || axis >= len(ref) {
		return nil, fmt.Errorf("%s(axis=%d) rank=%d: %w", opConcat, axis, len(ref), ErrAxisOutOfRange)
	}
	for i, p := range parts {
		if len(p.shape) != len(ref) {
			return nil, fmt.Errorf("%s: part %d rank=%d want %d: %w", opConcat, i, len(p.shape), len(ref), ErrShapeMismatch)
		}
		for d := range ref {
			if d != axis && p.shape[d] != ref[d] {
				return nil, fmt.Errorf("%s: part %d shape=%v vs %v on axis %d: %w",
					opConcat, i, p.shape, ref, d, ErrShapeMismatch)
			}
		}
	}

	shape := ref.Clone()
	shape[axis] = lo.SumBy(parts, func(p View[T]) int { return p.shape[axis] })
	out := newUnchecked[T](shape)

	outer := ref[:axis].Size()
	inner := ref[axis+1:].Size()
	flats := lo.Map(parts, func(p View[T], _ int) []T { return p.flat() })

	pos := 0
	for o := 0; o < outer; o++ {
		for i, p := range parts {
			run := p.shape[axis] * inner
			pos += copy(out.data[pos:pos+run], flats[i][o*run:(o+1)*run])
		}
	}

	return out, nil
}
