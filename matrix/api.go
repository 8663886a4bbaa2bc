// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros/NewOnes to build matrices with explicit shape and neutral elements.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewOnes returns a rows×cols matrix with every element 1.0.
// Complexity: O(rows*cols).
func NewOnes(rows, cols int) (*Dense, error) {
	return NewFilled(rows, cols, FillOnes, 0)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// AI-Hints: Use as the right half of an augmented matrix or as a verification target.
func NewIdentity(n int) (*Dense, error) {
	return NewFilled(n, n, FillIdentity, 0)
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(rc). Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Hadamard is an alias for SchurMul: element-wise product a ⊙ b.
// Complexity: O(rc).
func Hadamard(a, b Matrix) (*Dense, error) { return SchurMul(a, b) }

// Scale is an alias for MulScalar: α*m.
// Complexity: O(rc).
func Scale(m Matrix, alpha float64) (*Dense, error) { return MulScalar(m, alpha) }

// Product is an alias for Mul: blocked matrix product a × b.
// Complexity: O(r*n*c).
//
// AI-Hints: Prefer Dense to skip the materialization copy.
func Product(a, b Matrix, opts ...Option) (*Dense, error) { return Mul(a, b, opts...) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Invert is an alias for Inverse: returns A⁻¹ via Gauss-Jordan with partial pivoting.
// Complexity: O(n^3).
func Invert(m Matrix, opts ...Option) (*Dense, error) { return Inverse(m, opts...) }

// ---------- Convenience facades (compositions only; no loop duplication) ----------

// Symmetrize returns (m + mᵀ)/2. Deterministic composition: Transpose → Add → MulScalar.
// Errors: ErrNilMatrix; ErrDimensionMismatch for a non-square m.
// Complexity: O(rc).
func Symmetrize(m Matrix) (*Dense, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}

	return MulScalar(sum, 0.5)
}

// Residual returns ‖A·X − I‖ measured as the largest absolute entry (max-norm).
// Typical use: X = Inverse(A); a residual near zero confirms the inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (A), ErrDimensionMismatch (A·X not square-compatible).
//
// Complexity:
//   - Time O(n^3) for the product, Space O(n^2).
func Residual(a, x Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf("Residual", err)
	}
	prod, err := Mul(a, x, opts...)
	if err != nil {
		return 0, matrixErrorf("Residual", err)
	}
	id, err := IdentityLike(a)
	if err != nil {
		return 0, matrixErrorf("Residual", err)
	}
	diff, err := Sub(prod, id)
	if err != nil {
		return 0, matrixErrorf("Residual", err)
	}

	worst := floats.Norm(diff.data, math.Inf(1)) // max |entry|

	return worst, nil
}
