// SPDX-License-Identifier: MIT

package window_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndwindow/ndarray"
	"github.com/katalvlaran/ndwindow/numconv"
	"github.com/katalvlaran/ndwindow/reduce"
	"github.com/katalvlaran/ndwindow/window"
)

// dims and each window in wins are truncated (or padded with 1) to the rank
// under test.
var (
	dims = []int{24, 20, 12, 6, 3}
	win  = []int{2, 4, 3, 2, 1}
	wins = [][]int{
		win,
		{5, 1, 2, 1, 3},
		{3, 21, 2, 2, 2}, // longer than axis 1
		{1, 2, 13, 7, 4}, // longer than axes 2..4
		{25},             // longer than the split axis
	}
)

// xorArray fills an array with the xor of its coordinates.
func xorArray[T numconv.Integer](t *testing.T, shape ndarray.Shape) *ndarray.Array[T] {
	t.Helper()
	a, err := ndarray.FromFunc(shape, func(idx []int) T {
		x := 0
		for _, i := range idx {
			x ^= i
		}
		return T(x)
	})
	require.NoError(t, err)

	return a
}

// checkEquivalence compares ApplyParallel against Apply for every registered
// reduction, rank, window shape and worker count.
func checkEquivalence[T numconv.Integer](t *testing.T) {
	entries := reduce.Entries[T]()
	require.Len(t, entries, reduce.Count())

	for rank := 1; rank <= ndarray.MaxRank; rank++ {
		a := xorArray[T](t, ndarray.Shape(dims[:rank]))
		for _, raw := range wins {
			w, err := ndarray.PadWindow(rank, raw...)
			require.NoError(t, err)

			for _, e := range entries {
				seq, err := window.Apply(a, w, e.Func)
				require.NoError(t, err)

				for _, workers := range []int{1, 2, 3, 7, 16} {
					par, err := window.ApplyParallel(a, w, e.Func, window.WithWorkers(workers))
					require.NoError(t, err)
					require.True(t, seq.Shape().Equal(par.Shape()),
						"rank %d window %v %s workers %d", rank, w, e.Name, workers)
					if diff := cmp.Diff(seq.Data(), par.Data()); diff != "" {
						t.Fatalf("rank %d window %v %s workers %d: parallel differs (-seq +par):\n%s",
							rank, w, e.Name, workers, diff)
					}
				}
			}
		}
	}
}

// TestApplyParallel_MatchesApply covers 8/16/32-bit signed and unsigned elements.
func TestApplyParallel_MatchesApply(t *testing.T) {
	t.Run("uint8", checkEquivalence[uint8])
	t.Run("uint16", checkEquivalence[uint16])
	t.Run("uint32", checkEquivalence[uint32])
	t.Run("int8", checkEquivalence[int8])
	t.Run("int16", checkEquivalence[int16])
	t.Run("int32", checkEquivalence[int32])
}

// TestApply_ShapeLaw checks out.shape[i] == max(a.shape[i] - (w[i]-1), 0).
func TestApply_ShapeLaw(t *testing.T) {
	cases := []struct {
		shape, win ndarray.Shape
		want       ndarray.Shape
	}{
		{ndarray.Shape{10}, ndarray.Shape{1}, ndarray.Shape{10}},
		{ndarray.Shape{10}, ndarray.Shape{10}, ndarray.Shape{1}},
		{ndarray.Shape{10}, ndarray.Shape{11}, ndarray.Shape{0}},
		{ndarray.Shape{7, 5}, ndarray.Shape{3, 2}, ndarray.Shape{5, 4}},
		{ndarray.Shape{4, 4, 4}, ndarray.Shape{5, 1, 2}, ndarray.Shape{0, 4, 3}},
		{ndarray.Shape{3, 2, 4, 2, 5}, ndarray.Shape{2, 2, 2, 2, 2}, ndarray.Shape{2, 1, 3, 1, 4}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v/%v", tc.shape, tc.win), func(t *testing.T) {
			a := xorArray[uint16](t, tc.shape)
			calls := 0
			count := func(w ndarray.View[uint16]) uint16 {
				calls++
				return reduce.WindowMax(w)
			}

			out, err := window.Apply(a, tc.win, count)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.Shape())
			assert.Equal(t, tc.want.Size(), calls)

			par, err := window.ApplyParallel(a, tc.win, reduce.WindowMax[uint16], window.WithWorkers(4))
			require.NoError(t, err)
			assert.Equal(t, tc.want, par.Shape())
		})
	}
}

// TestApply_Range24 runs a width-2 max window over 0..23.
func TestApply_Range24(t *testing.T) {
	a := xorArray[int32](t, ndarray.Shape{24}) // xor of a single index is the index
	out, err := window.Apply(a, ndarray.Shape{2}, reduce.WindowMax[int32])
	require.NoError(t, err)
	require.Equal(t, ndarray.Shape{23}, out.Shape())

	first, err := out.At(0)
	require.NoError(t, err)
	last, err := out.At(22)
	require.NoError(t, err)
	assert.Equal(t, int32(1), first)
	assert.Equal(t, int32(23), last)
}

// TestApplyParallel_Min50x5 runs a 2×2 min window over a 50×5 array.
func TestApplyParallel_Min50x5(t *testing.T) {
	a := xorArray[uint8](t, ndarray.Shape{50, 5})
	w := ndarray.Shape{2, 2}

	par, err := window.ApplyParallel(a, w, reduce.WindowMin[uint8])
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{49, 4}, par.Shape())

	seq, err := window.Apply(a, w, reduce.WindowMin[uint8])
	require.NoError(t, err)
	assert.True(t, ndarray.Equal(seq, par))
}

// TestApplyParallel_WindowLongerThanAxis yields an empty result without calling fn.
func TestApplyParallel_WindowLongerThanAxis(t *testing.T) {
	a := xorArray[int16](t, ndarray.Shape{3, 10})
	never := func(ndarray.View[int16]) int16 { panic("reduction must not run") }

	out, err := window.ApplyParallel(a, ndarray.Shape{1, 12}, never, window.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3, 0}, out.Shape())
	assert.Zero(t, out.Len())
}

// TestApply_InputUntouched verifies neither engine writes to its input.
func TestApply_InputUntouched(t *testing.T) {
	a := xorArray[uint32](t, ndarray.Shape{30, 4})
	before := a.Data()

	_, err := window.ApplyParallel(a, ndarray.Shape{3, 2}, reduce.FastStd[uint32], window.WithWorkers(5))
	require.NoError(t, err)
	assert.Equal(t, before, a.Data())
}

// TestEngines_Errors checks argument validation in both engines.
func TestEngines_Errors(t *testing.T) {
	a := xorArray[uint8](t, ndarray.Shape{6, 6})
	empty, err := ndarray.New[uint8](ndarray.Shape{0, 6})
	require.NoError(t, err)

	cases := []struct {
		name string
		a    *ndarray.Array[uint8]
		win  ndarray.Shape
		fn   reduce.Func[uint8]
		want error
	}{
		{"nil array", nil, ndarray.Shape{2, 2}, reduce.WindowMax[uint8], window.ErrNilArray},
		{"nil reduction", a, ndarray.Shape{2, 2}, nil, window.ErrNilReduction},
		{"rank mismatch", a, ndarray.Shape{2}, reduce.WindowMax[uint8], ndarray.ErrShapeMismatch},
		{"zero window", a, ndarray.Shape{2, 0}, reduce.WindowMax[uint8], ndarray.ErrInvalidWindow},
		{"empty axis", empty, ndarray.Shape{1, 1}, reduce.WindowMax[uint8], ndarray.ErrInvalidShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := window.Apply(tc.a, tc.win, tc.fn)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tc.want)

			out, err = window.ApplyParallel(tc.a, tc.win, tc.fn)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestApplyParallel_WorkerPanic checks that a panicking worker fails the whole call.
func TestApplyParallel_WorkerPanic(t *testing.T) {
	a := xorArray[uint8](t, ndarray.Shape{40})
	boom := errors.New("boom")
	bad := func(w ndarray.View[uint8]) uint8 {
		if v, _ := w.At(0); v == 30 {
			panic(boom)
		}
		return reduce.WindowMax(w)
	}

	out, err := window.ApplyParallel(a, ndarray.Shape{3}, bad, window.WithWorkers(4))
	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, window.ErrWorkerFailed)
	assert.ErrorIs(t, err, boom)

	var we *window.WorkerError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, boom, we.Value)
	assert.LessOrEqual(t, we.Boundary.Start, 30)
	assert.Greater(t, we.Boundary.End, 30)
	assert.Equal(t, 0, we.Boundary.Axis)
}

// TestApplyParallel_WorkerPanicValue keeps non-error panic values.
func TestApplyParallel_WorkerPanicValue(t *testing.T) {
	a := xorArray[int8](t, ndarray.Shape{8, 3})
	bad := func(ndarray.View[int8]) int8 { panic("bad window") }

	_, err := window.ApplyParallel(a, ndarray.Shape{2, 2}, bad, window.WithWorkers(2))
	require.ErrorIs(t, err, window.ErrWorkerFailed)

	var we *window.WorkerError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "bad window", we.Value)
	assert.Contains(t, err.Error(), "bad window")
}

// TestApply_RequiresPaddedWindow rejects a short window until PadWindow completes it.
func TestApply_RequiresPaddedWindow(t *testing.T) {
	a := xorArray[uint16](t, ndarray.Shape{6, 4, 3})
	raw := ndarray.Shape{2}

	_, err := window.Apply(a, raw, reduce.WindowMax[uint16])
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	_, err = window.ApplyParallel(a, raw, reduce.WindowMax[uint16])
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	w, err := ndarray.PadWindow(a.Rank(), raw...)
	require.NoError(t, err)
	out, err := window.Apply(a, w, reduce.WindowMax[uint16])
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{5, 4, 3}, out.Shape())
}
