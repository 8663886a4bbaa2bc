// SPDX-License-Identifier: MIT
// Package matrix: in-place row primitives and augmented-matrix helpers for
// Gauss-Jordan elimination.
//
// Purpose:
//   - SwapRows, ScaleRow, AddScaledRow mutate a *Dense in place.
//   - PivotRow implements partial pivoting (largest |value|, lowest row on ties).
//   - Join / Separate build and split augmented matrices [A | B].
//
// Policy:
//   - Every index is bounds-checked; violations return ErrIndexOutOfBounds.
//   - ScaleRow accepts a zero factor; callers performing elimination guard pivots.

package matrix

import (
	"fmt"
	"math"
)

// SwapRows exchanges rows i and j in place. i == j is a no-op.
// Errors: ErrIndexOutOfBounds tagged "SwapRows".
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if err := ValidateRowIndex(m, j); err != nil {
		return matrixErrorf(opSwapRows, err)
	}
	if i == j {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow multiplies every element of row i by factor, in place.
// Errors: ErrIndexOutOfBounds tagged "ScaleRow".
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, factor float64) error {
	if err := ValidateRowIndex(m, i); err != nil {
		return matrixErrorf(opScaleRow, err)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] *= factor
	}

	return nil
}

// AddScaledRow performs target_row += factor * source_row, in place.
// target == source is legal and scales the row by (1 + factor).
//
// Errors:
//   - ErrIndexOutOfBounds tagged "AddScaledRow".
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddScaledRow(target, source int, factor float64) error {
	if err := ValidateRowIndex(m, target); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	if err := ValidateRowIndex(m, source); err != nil {
		return matrixErrorf(opAddScaledRow, err)
	}
	dst := m.data[target*m.c : (target+1)*m.c]
	src := m.data[source*m.c : (source+1)*m.c]
	for k := range dst {
		dst[k] += factor * src[k]
	}

	return nil
}

// PivotRow scans column col from row start downward and returns the row with
// the largest absolute value (partial pivoting).
// MAIN DESCRIPTION:
//   - Candidate rows are [start, Rows()); ties resolve to the lowest row index.
//
// Behavior highlights:
//   - Does not judge singularity: the caller compares the returned pivot
//     magnitude against its tolerance.
//   - NaN candidates never win over a number; a column of only NaN returns start.
//
// Errors:
//   - ErrIndexOutOfBounds for col outside [0, Cols()) or start outside [0, Rows()),
//     tagged "PivotRow".
//
// Complexity:
//   - Time O(r - start), Space O(1).
func (m *Dense) PivotRow(col, start int) (int, error) {
	if err := ValidateColIndex(m, col); err != nil {
		return 0, matrixErrorf(opPivotRow, err)
	}
	if err := ValidateRowIndex(m, start); err != nil {
		return 0, matrixErrorf(opPivotRow, err)
	}
	bestRow := start
	best := math.Abs(m.data[start*m.c+col])
	var r int
	var v float64
	for r = start + 1; r < m.r; r++ {
		v = math.Abs(m.data[r*m.c+col])
		if v > best || (math.IsNaN(best) && !math.IsNaN(v)) { // strict: earlier row wins ties
			best = v
			bestRow = r
		}
	}

	return bestRow, nil
}

// Join returns a new matrix [m | right] with m on the left.
// MAIN DESCRIPTION:
//   - Horizontal concatenation used to build augmented matrices.
//
// Implementation:
//   - Stage 1: validate right non-nil and equal row counts.
//   - Stage 2: copy each row of m then the matching row of right.
//
// Returns:
//   - *Dense of shape rows × (m.Cols()+right.Cols()); neither input is aliased.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ), tagged "Join".
//
// Complexity:
//   - Time O(r*(c1+c2)), Space O(r*(c1+c2)).
func (m *Dense) Join(right Matrix) (*Dense, error) {
	if err := ValidateNotNil(right); err != nil {
		return nil, matrixErrorf(opJoin, err)
	}
	if m.r != right.Rows() {
		return nil, matrixErrorf(opJoin, fmt.Errorf("rows %d vs %d: %w", m.r, right.Rows(), ErrDimensionMismatch))
	}
	rd, err := asDense(right)
	if err != nil {
		return nil, matrixErrorf(opJoin, err)
	}

	w := m.c + rd.c
	out := &Dense{r: m.r, c: w, data: make([]float64, m.r*w)}
	var i int
	for i = 0; i < m.r; i++ {
		copy(out.data[i*w:i*w+m.c], m.data[i*m.c:(i+1)*m.c])
		copy(out.data[i*w+m.c:(i+1)*w], rd.data[i*rd.c:(i+1)*rd.c])
	}

	return out, nil
}

// Separate splits m at column boundary col into left = columns [0, col) and
// right = columns [col, Cols()). Both results are fresh copies.
// col == 0 or col == Cols() yields one zero-width side.
//
// Errors:
//   - ErrIndexOutOfBounds for col outside [0, Cols()], tagged "Separate".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Separate(col int) (left, right *Dense, err error) {
	if col < 0 || col > m.c {
		return nil, nil, matrixErrorf(opSeparate, fmt.Errorf("column %d of %d: %w", col, m.c, ErrIndexOutOfBounds))
	}
	lw, rw := col, m.c-col
	left = &Dense{r: m.r, c: lw, data: make([]float64, m.r*lw)}
	right = &Dense{r: m.r, c: rw, data: make([]float64, m.r*rw)}
	var i, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		copy(left.data[i*lw:(i+1)*lw], m.data[base:base+col])
		copy(right.data[i*rw:(i+1)*rw], m.data[base+col:base+m.c])
	}

	return left, right, nil
}
