// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndwindow/ndarray"
)

// TestPadWindow covers right-padding with 1 and truncation past the rank.
func TestPadWindow(t *testing.T) {
	cases := []struct {
		name string
		rank int
		raw  []int
		want ndarray.Shape
	}{
		{"truncate to rank 1", 1, []int{1, 2, 3, 4, 5}, ndarray.Shape{1}},
		{"truncate to rank 3", 3, []int{1, 2, 3, 4, 5}, ndarray.Shape{1, 2, 3}},
		{"exact rank 5", 5, []int{1, 2, 3, 4, 5}, ndarray.Shape{1, 2, 3, 4, 5}},
		{"pad rank 5", 5, []int{5}, ndarray.Shape{5, 1, 1, 1, 1}},
		{"empty raw", 2, nil, ndarray.Shape{1, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ndarray.PadWindow(tc.rank, tc.raw...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestPadWindow_Errors verifies rank and zero-entry rejection.
func TestPadWindow_Errors(t *testing.T) {
	_, err := ndarray.PadWindow(0, 1)
	assert.ErrorIs(t, err, ndarray.ErrRankUnsupported)

	_, err = ndarray.PadWindow(6, 1)
	assert.ErrorIs(t, err, ndarray.ErrRankUnsupported)

	_, err = ndarray.PadWindow(2, 3, 0)
	assert.ErrorIs(t, err, ndarray.ErrInvalidWindow)

	// entries beyond the rank are ignored, even invalid ones
	w, err := ndarray.PadWindow(1, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{3}, w)
}

// TestReduced checks max(dim-(win-1), 0) per axis, including saturation at zero.
func TestReduced(t *testing.T) {
	got, err := ndarray.Shape{50, 5}.Reduced(ndarray.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{49, 4}, got)

	got, err = ndarray.Shape{3, 7, 1}.Reduced(ndarray.Shape{5, 7, 1})
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{0, 1, 1}, got)

	_, err = ndarray.Shape{3, 3}.Reduced(ndarray.Shape{2})
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// TestLargestAxis verifies argmax with first-wins tie breaking.
func TestLargestAxis(t *testing.T) {
	assert.Equal(t, 0, ndarray.Shape{4000}.LargestAxis())
	assert.Equal(t, 1, ndarray.Shape{5, 50, 5}.LargestAxis())
	assert.Equal(t, 0, ndarray.Shape{7, 7, 3}.LargestAxis())
	assert.Equal(t, 2, ndarray.Shape{1, 2, 9, 9}.LargestAxis())
}

// TestAxisLenAndValidate covers direct lookup and validation errors.
func TestAxisLenAndValidate(t *testing.T) {
	s := ndarray.Shape{2, 3, 4}
	n, err := s.AxisLen(2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = s.AxisLen(3)
	assert.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)

	assert.Equal(t, 24, s.Size())
	assert.Equal(t, 3, s.Rank())
	assert.Equal(t, "[2 3 4]", s.String())
	assert.True(t, s.Equal(s.Clone()))
	assert.False(t, s.Equal(ndarray.Shape{2, 3}))

	assert.NoError(t, ndarray.Shape{0, 3}.Validate())
	assert.ErrorIs(t, ndarray.Shape{}.Validate(), ndarray.ErrRankUnsupported)
	assert.ErrorIs(t, ndarray.Shape{1, 1, 1, 1, 1, 1}.Validate(), ndarray.ErrRankUnsupported)
	assert.ErrorIs(t, ndarray.Shape{2, -1}.Validate(), ndarray.ErrInvalidShape)
}
