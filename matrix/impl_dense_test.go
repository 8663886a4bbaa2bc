// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestZeroValueIsEmpty verifies that Dense{} and NewEmpty are the 0×0 matrix.
func TestZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var zero matrix.Dense
	require.Equal(t, 0, zero.Rows())
	require.Equal(t, 0, zero.Cols())
	require.Equal(t, 0, zero.Len())
	require.True(t, zero.IsSquare())

	e := matrix.NewEmpty()
	r, c := e.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)
	require.Empty(t, e.String())
}

// TestNewDenseDimensions ensures zero extents are legal and negatives are rejected.
func TestNewDenseDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ r, c int }{{0, 0}, {0, 5}, {5, 0}, {3, 4}} {
		m, err := matrix.NewDense(tc.r, tc.c)
		require.NoError(t, err)
		require.Equal(t, tc.r, m.Rows())
		require.Equal(t, tc.c, m.Cols())
		require.Equal(t, tc.r*tc.c, m.Len())
		for _, v := range m.RawData() {
			require.Zero(t, v)
		}
	}

	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFilledModes covers every fill mode including rectangular identity.
func TestNewFilledModes(t *testing.T) {
	t.Parallel()

	ones, err := matrix.NewFilled(2, 3, matrix.FillOnes, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1, 1, 1, 1, 1}, ones.RawData())

	zeros, err := matrix.NewFilled(2, 2, matrix.FillZeros, 42)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0, 0}, zeros.RawData())

	val, err := matrix.NewFilled(2, 2, matrix.FillValue, -2.5)
	require.NoError(t, err)
	require.Equal(t, []float64{-2.5, -2.5, -2.5, -2.5}, val.RawData())

	// 2×3 identity: ones on (0,0),(1,1); everything else zero.
	id, err := matrix.NewFilled(2, 3, matrix.FillIdentity, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0}, id.RawData())

	// 3×2 identity: min(3,2) = 2 diagonal ones.
	id, err = matrix.NewFilled(3, 2, matrix.FillIdentity, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 1, 0, 0}, id.RawData())

	_, err = matrix.NewFilled(2, 2, matrix.FillMode(99), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidFill)
	_, err = matrix.NewFilled(-1, 2, matrix.FillOnes, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFillModeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "zeros", matrix.FillZeros.String())
	assert.Equal(t, "ones", matrix.FillOnes.String())
	assert.Equal(t, "identity", matrix.FillIdentity.String())
	assert.Equal(t, "value", matrix.FillValue.String())
	assert.Equal(t, "unknown", matrix.FillMode(-3).String())
}

// TestNewFromDataCopies verifies row-major placement, length checks and ownership.
func TestNewFromDataCopies(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4, 5, 6}
	m := NewFilledDense(t, 2, 3, src)
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	src[0] = 100 // caller mutation must not leak into m
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err := matrix.NewFromData(2, 3, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.NewFromData(-2, 3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewVectorOrientation(t *testing.T) {
	t.Parallel()

	col := matrix.NewVector([]float64{1, 2, 3}, true)
	require.Equal(t, 3, col.Rows())
	require.Equal(t, 1, col.Cols())
	require.Equal(t, 3.0, MustAt(t, col, 2, 0))

	row := matrix.NewVector([]float64{1, 2, 3}, false)
	require.Equal(t, 1, row.Rows())
	require.Equal(t, 3, row.Cols())
	require.Equal(t, 2.0, MustAt(t, row, 0, 1))

	empty := matrix.NewVector(nil, true)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 1, empty.Cols())
}

// TestAtSetOutOfBounds verifies every out-of-range index is an error, never a panic.
func TestAtSetOutOfBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrIndexOutOfBounds)
	}

	var empty matrix.Dense
	_, err := empty.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetGet verifies round-trip including non-finite values.
func TestSetGet(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 1, 3.14))
	require.NoError(t, m.Set(1, 0, math.Inf(-1)))
	require.NoError(t, m.Set(1, 1, math.NaN()))

	require.Equal(t, 3.14, MustAt(t, m, 0, 1))
	require.True(t, math.IsInf(MustAt(t, m, 1, 0), -1))
	require.True(t, math.IsNaN(MustAt(t, m, 1, 1)))
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

// TestResizeRezeros verifies Resize discards contents even for the same element count.
func TestResizeRezeros(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, m.Resize(3, 2))
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, []float64{0, 0, 0, 0, 0, 0}, m.RawData())

	require.NoError(t, m.Resize(0, 4))
	require.Equal(t, 0, m.Len())

	err := m.Resize(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.Equal(t, 0, m.Rows()) // untouched on error
	require.Equal(t, 4, m.Cols())
}

// TestCloneIndependence verifies Clone is deep.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cl := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))
	require.Equal(t, 1.0, MustAt(t, cl, 0, 0))

	raw := m.RawData()
	raw[1] = -1
	require.Equal(t, 2.0, MustAt(t, m, 0, 1))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 0
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestSetIdentityInPlace(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{9, 9, 9, 9, 9, 9})
	m.SetIdentity()
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0}, m.RawData())
}

// TestStringOutput checks the debugging dump format.
func TestStringOutput(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, -3, 4})
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
