// SPDX-License-Identifier: MIT
// Package matrix: element-wise arithmetic facades.
//
// Purpose:
//   - Expose +, -, % (Schur product) and / in matrix-matrix and matrix-scalar
//     forms as named functions returning a fresh *Dense.
//   - Scalar-on-the-left forms exist only where the operator does not commute
//     (ScalarSub, ScalarDiv); s+A and s%A are AddScalar(A, s) and MulScalar(A, s).
//
// Determinism & Policy:
//   - Inputs are never mutated.
//   - Division follows IEEE 754: a zero divisor yields ±Inf (or NaN for 0/0).

package matrix

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Inputs:
//   - a: left matrix operand (any Matrix).
//   - b: right matrix operand (any Matrix) with the same shape as a.
//
// Returns:
//   - *Dense with C[i,j] = A[i,j] + B[i,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch), tagged "Add".
//
// Complexity:
//   - Time O(r*c), Space O(r*c). The fast path is bandwidth-bound.
//
// AI-Hints:
//   - Prefer *Dense inputs for tight loops and contiguous data.
func Add(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opAdd, func(x, y float64) float64 { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch tagged "Sub". Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opSub, func(x, y float64) float64 { return x - y })
}

// SchurMul computes the element-wise (Schur/Hadamard) product C = A % B.
// This is NOT the matrix product; see Mul.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch tagged "SchurMul".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Multiply by a comparison mask to zero out unwanted positions:
//     SchurMul(A, GreaterScalar(A, 0)) keeps only positive entries.
func SchurMul(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opSchurMul, func(x, y float64) float64 { return x * y })
}

// Div computes the element-wise quotient C = A / B.
// Zero divisors follow IEEE 754 (±Inf, NaN for 0/0) and are not errors.
// Errors: ErrNilMatrix, ErrDimensionMismatch tagged "Div". Complexity: O(r*c).
func Div(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opDiv, func(x, y float64) float64 { return x / y })
}

// AddScalar returns A + s broadcast over every element (also s + A).
// Complexity: O(r*c).
func AddScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opAddScalar, func(x float64) float64 { return x + s })
}

// SubScalar returns A - s broadcast over every element.
// Complexity: O(r*c).
func SubScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opSubScalar, func(x float64) float64 { return x - s })
}

// ScalarSub returns s - A, i.e. out[i,j] = s - a[i,j].
// Complexity: O(r*c).
func ScalarSub(s float64, a Matrix) (*Dense, error) {
	return ewUnary(a, opScalarSub, func(x float64) float64 { return s - x })
}

// MulScalar returns A % s (every element scaled by s; also s % A).
// Complexity: O(r*c).
func MulScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opMulScalar, func(x float64) float64 { return x * s })
}

// DivScalar returns A / s. s == 0 yields ±Inf/NaN entries, not an error.
// Complexity: O(r*c).
func DivScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opDivScalar, func(x float64) float64 { return x / s })
}

// ScalarDiv returns s / A, i.e. out[i,j] = s / a[i,j].
// Zero entries of A yield ±Inf/NaN, not an error.
// Complexity: O(r*c).
func ScalarDiv(s float64, a Matrix) (*Dense, error) {
	return ewUnary(a, opScalarDiv, func(x float64) float64 { return s / x })
}
