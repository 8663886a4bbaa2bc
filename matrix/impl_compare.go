// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison operators.
//
// Purpose:
//   - ==, !=, <=, >=, <, > in matrix-matrix and matrix-scalar form.
//   - Results are numeric masks of the operand shape holding exactly 1.0 (true)
//     or 0.0 (false), so they compose directly with SchurMul/Add.
//
// Policy:
//   - Equality is exact IEEE equality; use EqualApprox for tolerance checks.
//   - NaN compares false under every operator except != (IEEE semantics).
//   - Scalar-on-the-left comparisons are the mirrored operator:
//     s < A  ≡ GreaterScalar(A, s), s <= A ≡ GreaterEqualScalar(A, s).

package matrix

// Equal returns the mask A == B.
// Errors: ErrNilMatrix, ErrDimensionMismatch tagged "Equal". Complexity: O(r*c).
func Equal(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opEqual, func(x, y float64) float64 { return mask(x == y) })
}

// NotEqual returns the mask A != B.
// Errors: ErrNilMatrix, ErrDimensionMismatch tagged "NotEqual". Complexity: O(r*c).
func NotEqual(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opNotEqual, func(x, y float64) float64 { return mask(x != y) })
}

// LessEqual returns the mask A <= B.
// Errors: ErrNilMatrix, ErrDimensionMismatch tagged "LessEqual". Complexity: O(r*c).
func LessEqual(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opLessEqual, func(x, y float64) float64 { return mask(x <= y) })
}

// GreaterEqual returns the mask A >= B.
// Errors: ErrNilMatrix, ErrDimensionMismatch tagged "GreaterEqual". Complexity: O(r*c).
func GreaterEqual(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opGreaterEqual, func(x, y float64) float64 { return mask(x >= y) })
}

// Less returns the mask A < B.
// Errors: ErrNilMatrix, ErrDimensionMismatch tagged "Less". Complexity: O(r*c).
func Less(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opLess, func(x, y float64) float64 { return mask(x < y) })
}

// Greater returns the mask A > B.
// Errors: ErrNilMatrix, ErrDimensionMismatch tagged "Greater". Complexity: O(r*c).
func Greater(a, b Matrix) (*Dense, error) {
	return ewBinary(a, b, opGreater, func(x, y float64) float64 { return mask(x > y) })
}

// EqualScalar returns the mask A == s.
func EqualScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opEqualScalar, func(x float64) float64 { return mask(x == s) })
}

// NotEqualScalar returns the mask A != s.
func NotEqualScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opNotEqualScalar, func(x float64) float64 { return mask(x != s) })
}

// LessEqualScalar returns the mask A <= s.
func LessEqualScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opLessEqualScalar, func(x float64) float64 { return mask(x <= s) })
}

// GreaterEqualScalar returns the mask A >= s.
func GreaterEqualScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opGreaterEqualScalar, func(x float64) float64 { return mask(x >= s) })
}

// LessScalar returns the mask A < s.
func LessScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opLessScalar, func(x float64) float64 { return mask(x < s) })
}

// GreaterScalar returns the mask A > s.
func GreaterScalar(a Matrix, s float64) (*Dense, error) {
	return ewUnary(a, opGreaterScalar, func(x float64) float64 { return mask(x > s) })
}
