// SPDX-License-Identifier: MIT
// Package matrix provides linear-algebra kernels on any Matrix implementation:
// cache-blocked matrix multiplication, a naive reference product, transpose,
// and Gauss-Jordan inversion with partial pivoting. All functions perform
// strict fail-fast validation and return sentinel errors wrapped with the
// operation tag.
//
// Purpose:
//   - Define operation tags and shared constants for error reporting.
//   - Host the product and inversion kernels; row primitives live in impl_elimination.go.
//
// Notes:
//   - Kernels run on *Dense flat buffers. Other Matrix implementations are
//     materialized once via asDense, so every input type goes through the same
//     arithmetic in the same order.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and block accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd                = "Add"
	opSub                = "Sub"
	opSchurMul           = "SchurMul"
	opDiv                = "Div"
	opAddScalar          = "AddScalar"
	opSubScalar          = "SubScalar"
	opScalarSub          = "ScalarSub"
	opMulScalar          = "MulScalar"
	opDivScalar          = "DivScalar"
	opScalarDiv          = "ScalarDiv"
	opEqual              = "Equal"
	opNotEqual           = "NotEqual"
	opLessEqual          = "LessEqual"
	opGreaterEqual       = "GreaterEqual"
	opLess               = "Less"
	opGreater            = "Greater"
	opEqualScalar        = "EqualScalar"
	opNotEqualScalar     = "NotEqualScalar"
	opLessEqualScalar    = "LessEqualScalar"
	opGreaterEqualScalar = "GreaterEqualScalar"
	opLessScalar         = "LessScalar"
	opGreaterScalar      = "GreaterScalar"
	opEqualApprox        = "EqualApprox"
	opIsIdentity         = "IsIdentity"
	opMul                = "Mul"
	opNaiveMul           = "NaiveMul"
	opTranspose          = "Transpose"
	opInverse            = "Inverse"
	opJoin               = "Join"
	opSeparate           = "Separate"
	opSwapRows           = "SwapRows"
	opScaleRow           = "ScaleRow"
	opAddScaledRow       = "AddScaledRow"
	opPivotRow           = "PivotRow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is already *Dense (NO copy), otherwise a
// freshly materialized *Dense read through At in i→j order.
// Callers that mutate the result must copy first when m may be *Dense.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Mul performs the cache-blocked matrix product C = A × B.
// MAIN DESCRIPTION:
//   - Partition the i, j and k index ranges into square blocks of edge
//     WithBlockSize (default DefaultBlockSize) and accumulate block by block.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Allocate C zero-filled; this is the only reset of partial sums.
//   - Stage 3: Outer loops walk block coordinates (i-block → j-block → k-block);
//     inner loops walk one block, loading the current partial C[i,j],
//     adding Σ_k A[i,k]*B[k,j] over the k-block, and storing it back.
//
// Behavior highlights:
//   - Every output cell receives its k-contributions in ascending k order, so
//     the result is deterministic for a given input.
//   - A block larger than every dimension degenerates to one block (naive loop).
//   - Zero-sized operands are legal: m×0 · 0×p yields an m×p zero matrix.
//
// Inputs:
//   - a: left matrix with shape (m × n).
//   - b: right matrix with shape (n × p).
//   - opts: WithBlockSize.
//
// Returns:
//   - *Dense C with shape (m × p).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch), tagged "Mul".
//
// Determinism:
//   - Fixed loop orders; identical results for *Dense and generic inputs.
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p) (+O(size) to materialize non-Dense inputs).
//
// Notes:
//   - Output blocks are disjoint across (i-block, j-block) pairs; a caller-side
//     scheduler could compute them in parallel. This package does not.
//
// AI-Hints:
//   - Pass *Dense operands to skip the materialization copy.
func Mul(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bs := gatherOptions(opts...).blockSize

	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := &Dense{r: da.r, c: db.c, data: make([]float64, da.r*db.c)}
	blockedMulKernel(res, da, db, bs)

	return res, nil
}

// blockedMulKernel accumulates a×b into res (which must be zeroed, a.r×b.c).
// Layouts: a.data[i*n+k], b.data[k*p+j], res.data[i*p+j].
func blockedMulKernel(res, a, b *Dense, bs int) {
	m, n, p := a.r, a.c, b.c
	var (
		ii, jj, kk       int // block origins
		iEnd, jEnd, kEnd int // exclusive block ends (clamped to the extent)
		i, j, k          int // in-block iterators
		rowA, rowR       int // row offsets into a and res
		sum              float64
	)
	for ii = 0; ii < m; ii += bs {
		iEnd = min(ii+bs, m)
		for jj = 0; jj < p; jj += bs {
			jEnd = min(jj+bs, p)
			for kk = 0; kk < n; kk += bs {
				kEnd = min(kk+bs, n)
				for i = ii; i < iEnd; i++ {
					rowA = i * n
					rowR = i * p
					for j = jj; j < jEnd; j++ {
						sum = res.data[rowR+j] // partial sum from earlier k-blocks
						for k = kk; k < kEnd; k++ {
							sum += a.data[rowA+k] * b.data[k*p+j]
						}
						res.data[rowR+j] = sum
					}
				}
			}
		}
	}
}

// NaiveMul computes C = A × B with the plain triple loop (i→j→k, one dot
// product per cell). It is the reference the blocked kernel is checked against.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch tagged "NaiveMul".
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p).
func NaiveMul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opNaiveMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opNaiveMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opNaiveMul, err)
	}

	res := &Dense{r: da.r, c: db.c, data: make([]float64, da.r*db.c)}
	var i, j int
	for i = 0; i < da.r; i++ {
		for j = 0; j < db.c; j++ {
			res.data[i*db.c+j] = dotRowCol(da, i, db, j)
		}
	}

	return res, nil
}

// dotRowCol returns Σ_k a[row,k] * b[k,col].
func dotRowCol(a *Dense, row int, b *Dense, col int) float64 {
	sum := ZeroSum
	base := row * a.c
	var k int
	for k = 0; k < a.c; k++ {
		sum += a.data[base+k] * b.data[k*b.c+col]
	}

	return sum
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix tagged "Transpose".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := src.r, src.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[i*cols+j]
		}
	}

	return res, nil
}

// Inverse computes A⁻¹ by Gauss-Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Reduce the augmented matrix [A | I] until the left block is I; the right
//     block is then A⁻¹.
//
// Implementation:
//   - Stage 1: Validate A is non-nil and square.
//   - Stage 2: Build [A | I] via Join with a FillIdentity matrix.
//   - Stage 3: For each pivot column k:
//     PivotRow(k, k) picks the largest |value| at or below row k;
//     a magnitude <= tolerance (or NaN) fails with ErrSingular;
//     SwapRows brings it to row k; ScaleRow makes the pivot exactly 1.0;
//     AddScaledRow(r, k, -aug[r,k]) zeroes column k in every other row.
//   - Stage 4: Separate at column n and return the right block.
//
// Behavior highlights:
//   - Full Gauss-Jordan: no back-substitution pass is needed.
//   - The input is never mutated (the augmented matrix is a fresh copy).
//   - 0×0 input returns the 0×0 matrix.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithPivotTolerance (default DefaultPivotTolerance).
//
// Returns:
//   - *Dense A⁻¹ (n×n).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (Stage 1), ErrSingular (Stage 3), tagged "Inverse".
//
// Determinism:
//   - Fixed column order; pivot ties resolve to the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the augmented matrix.
//
// AI-Hints:
//   - Verify with EqualApprox(Mul(A, inv), I, tol) or IsIdentity; exact equality
//     is not expected after floating-point elimination.
//   - Raise WithPivotTolerance for noisy data to fail fast on near-singular input.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	tol := gatherOptions(opts...).pivotTolerance
	n := m.Rows()

	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id, err := NewFilled(n, n, FillIdentity, 0)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := src.Join(id) // fresh copy: src is never mutated
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	if err = gaussJordan(aug, n, tol); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	_, inv, err := aug.Separate(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// gaussJordan reduces the first n columns of aug (n rows) to the identity.
// Errors: ErrSingular naming the failing column.
func gaussJordan(aug *Dense, n int, tol float64) error {
	w := aug.c // row stride of the augmented matrix
	var k, r, p int
	var pivot, factor float64
	var err error
	for k = 0; k < n; k++ {
		if p, err = aug.PivotRow(k, k); err != nil {
			return err
		}
		pivot = aug.data[p*w+k]
		if !(math.Abs(pivot) > tol) { // also rejects NaN
			return fmt.Errorf("column %d: pivot %g: %w", k, pivot, ErrSingular)
		}
		if p != k {
			if err = aug.SwapRows(p, k); err != nil {
				return err
			}
		}
		if err = aug.ScaleRow(k, 1.0/pivot); err != nil {
			return err
		}
		aug.data[k*w+k] = 1.0 // exact unit pivot regardless of rounding

		for r = 0; r < n; r++ {
			if r == k {
				continue
			}
			factor = aug.data[r*w+k]
			if factor == 0 {
				continue // already eliminated
			}
			if err = aug.AddScaledRow(r, k, -factor); err != nil {
				return err
			}
			aug.data[r*w+k] = 0 // exact zero regardless of rounding
		}
	}

	return nil
}
