// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) so the
//     ten operators in matrix-matrix and matrix-scalar form share one tight loop.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Design:
//   - All ew* are UNEXPORTED (internal micro-kernels).
//   - Public API uses these via thin wrappers (impl_elementwise.go, impl_compare.go).
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//   - IEEE 754 semantics throughout: x/0 yields ±Inf or NaN, never an error.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock the flat-slice fast path.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Mask values produced by comparison operators.
const (
	maskTrue  = 1.0
	maskFalse = 0.0
)

// binaryFn combines two elements at the same position.
type binaryFn func(x, y float64) float64

// unaryFn maps one element (scalar already captured by the closure).
type unaryFn func(x float64) float64

// mask converts a predicate result into the numeric 1.0/0.0 encoding.
func mask(ok bool) float64 {
	if ok {
		return maskTrue
	}

	return maskFalse
}

// ewBinary computes out[i,j] = f(a[i,j], b[i,j]) for identically shaped a, b.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); allocate result Dense(rows, cols).
//   - Stage 2: fast-path if both are *Dense (single flat loop 0..n-1),
//     otherwise fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch wrapped with tag (the operator name).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ewBinary(a, b Matrix, tag string, f binaryFn) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	// Dense fast-path: both operands expose flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range out.data { // deterministic 0..n-1
				out.data[idx] = f(da.data[idx], db.data[idx])
			}
			return out, nil
		}
	}

	// Generic fallback via At (still deterministic).
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*cols+j] = f(av, bv)
		}
	}

	return out, nil
}

// ewUnary computes out[i,j] = f(a[i,j]); used for every scalar broadcast.
// Never fails on shape; only a nil input is rejected.
// Complexity: O(r*c).
func ewUnary(a Matrix, tag string, f unaryFn) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	out := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	if da, ok := a.(*Dense); ok {
		for idx, v := range da.data {
			out.data[idx] = f(v)
		}
		return out, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.data[i*cols+j] = f(v)
		}
	}

	return out, nil
}

// WithinTolerance reports whether |x-y| <= tol.
// Equal infinities compare as within tolerance; NaN never does.
// Complexity: O(1).
func WithinTolerance(x, y, tol float64) bool {
	return scalar.EqualWithinAbs(x, y, tol)
}

// EqualApprox reports whether a and b have the same shape and every pair of
// elements satisfies WithinTolerance(a[i,j], b[i,j], tol).
// Returns (false, nil) on the first violating element.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use this, not Equal, to verify results that went through floating-point
//     arithmetic (products, inverses).
func EqualApprox(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !WithinTolerance(da.data[idx], db.data[idx], tol) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqualApprox, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqualApprox, err)
			}
			if !WithinTolerance(av, bv, tol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsIdentity reports whether m is square and within the configured epsilon
// (WithEpsilon, default DefaultEpsilon) of the identity matrix.
// A non-square matrix yields (false, nil).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n²), Space O(1).
func IsIdentity(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	eps := gatherOptions(opts...).eps

	var i, j int
	var v, want float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf(opIsIdentity, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			want = maskFalse
			if i == j {
				want = maskTrue
			}
			if !WithinTolerance(v, want, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
