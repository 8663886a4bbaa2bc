// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"typed nil", dense(2, 2), (*matrix.Dense)(nil), matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"equal empty", dense(0, 0), dense(0, 0), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 0, 0)))
	require.NoError(t, matrix.ValidateSquare(hide{MustDense(t, 3, 3)}))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrNonSquare)
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 0), MustDense(t, 0, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 2, 3)), matrix.ErrNilMatrix)
}

func TestValidateIndices(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateRowIndex(m, 1))
	require.NoError(t, matrix.ValidateColIndex(m, 2))
	require.ErrorIs(t, matrix.ValidateRowIndex(m, 2), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, matrix.ValidateColIndex(m, -1), matrix.ErrIndexOutOfBounds)

	err := matrix.ValidateRowIndex(m, 7)
	require.Contains(t, err.Error(), "ValidateRowIndex(7)")
}
