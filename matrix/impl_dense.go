// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Own storage exclusively: every constructor copies caller data, Clone is deep.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra: operate on the flat data slice directly.
//   - The zero value Dense{} is a valid, empty 0×0 matrix.
//   - Resize re-zeros storage; copy what you need before resizing.
//
// Complexity quicksheet:
//   - NewDense/NewFilled/NewFromData: O(r*c); At/Set: O(1); Clone: O(r*c); Resize: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxResize = "Resize" // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is the empty 0×0 matrix.
type Dense struct {
	r, c int       // row and column counts (>=0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewEmpty returns the empty 0×0 matrix (same as the zero value Dense{}).
// Complexity: O(1).
func NewEmpty() *Dense { return &Dense{} }

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense; zero extents are legal (0×n, n×0, 0×0).
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Inputs:
//   - rows: number of rows (>= 0)
//   - cols: number of columns (>= 0)
//
// Returns:
//   - *Dense: newly allocated matrix with every element 0.
//
// Errors:
//   - ErrInvalidDimensions (negative extent).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := validateExtents(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	// make() zero-fills deterministically; len may be 0.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix initialized according to mode.
// MAIN DESCRIPTION:
//   - FillZeros / FillOnes / FillIdentity / FillValue construction.
//
// Implementation:
//   - Stage 1: allocate a zero matrix via NewDense (shape validation).
//   - Stage 2: write ones, the diagonal, or value depending on mode.
//
// Behavior highlights:
//   - FillIdentity writes min(rows, cols) diagonal ones; rectangular is legal.
//   - value is ignored by every mode except FillValue.
//
// Errors:
//   - ErrInvalidDimensions (negative extent), ErrInvalidFill (unknown mode).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled(rows, cols int, mode FillMode, value float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	switch mode {
	case FillZeros:
		// already zero
	case FillOnes:
		m.fill(1.0)
	case FillIdentity:
		m.SetIdentity()
	case FillValue:
		m.fill(value)
	default:
		return nil, fmt.Errorf("NewFilled(%d,%d,%d): %w", rows, cols, int(mode), ErrInvalidFill)
	}

	return m, nil
}

// NewFromData builds an r×c matrix from a row-major flat buffer.
// The buffer is copied; later writes to data do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative extent), ErrShapeMismatch (len(data) != rows*cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromData(rows, cols int, data []float64) (*Dense, error) {
	if err := validateExtents(rows, cols); err != nil {
		return nil, fmt.Errorf("NewFromData(%d,%d): %w", rows, cols, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewFromData(%d,%d): len=%d: %w", rows, cols, len(data), ErrShapeMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewVector builds a column (n×1, isCol=true) or row (1×n) vector from vec.
// Length alone determines the non-unit extent; an empty vec yields 0×1 or 1×0.
// Complexity: O(n).
func NewVector(vec []float64, isCol bool) *Dense {
	buf := make([]float64, len(vec))
	copy(buf, vec)
	if isCol {
		return &Dense{r: len(vec), c: 1, data: buf}
	}

	return &Dense{r: 1, c: len(vec), data: buf}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Len returns the number of stored elements (Rows*Cols).
// Complexity: O(1).
func (m *Dense) Len() int { return len(m.data) }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows == Cols (0×0 is square).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - The check is unconditional; there is no unchecked access path in the public API.
//   - Returns the bare sentinel; public methods wrap with method and coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrIndexOutOfBounds wrapped as "Dense.At(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths index data directly.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfBounds.
// Any float64 is accepted, including ±Inf and NaN.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Resize changes the shape to rows×cols and re-zeros ALL storage.
// MAIN DESCRIPTION:
//   - Reallocate the buffer for the new extents; previous contents are discarded
//     even when the element count is unchanged.
//
// Implementation:
//   - Stage 1: validate extents (>= 0).
//   - Stage 2: allocate a fresh zero buffer and swap it in.
//
// Errors:
//   - ErrInvalidDimensions for negative extents; the matrix is left untouched.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Slices previously obtained from RawData/Row are copies and stay valid.
func (m *Dense) Resize(rows, cols int) error {
	if err := validateExtents(rows, cols); err != nil {
		return denseErrorf(ctxResize, rows, cols, err)
	}
	m.r, m.c = rows, cols
	m.data = make([]float64, rows*cols)

	return nil
}

// SetIdentity overwrites the matrix in place with the identity pattern:
// ones on the first min(rows, cols) diagonal entries, zeros elsewhere.
// Complexity: O(r*c).
func (m *Dense) SetIdentity() {
	m.fill(0)
	n := min(m.r, m.c)
	var i int
	for i = 0; i < n; i++ {
		m.data[i*m.c+i] = 1.0
	}
}

// fill writes v into every element.
func (m *Dense) fill(v float64) {
	for idx := range m.data {
		m.data[idx] = v
	}
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.copyDense()
}

// copyDense is the typed deep copy used internally by kernels.
func (m *Dense) copyDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawData returns a row-major copy of the element buffer.
// Complexity: O(r*c).
func (m *Dense) RawData() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Row returns a copy of row i.
// Errors: ErrIndexOutOfBounds.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Returns:
//   - string: multi-line representation; empty string for 0-row matrices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
