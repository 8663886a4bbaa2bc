// Package matrix provides a dense, row-major float64 matrix and the numeric
// kernels built on it.
//
// The matrix package provides:
//
//   - Dense, a value type over one contiguous []float64 with bounds-checked
//     At/Set, fill-mode constructors (zeros, ones, identity, value) and a
//     destructive Resize.
//   - An element-wise operator library: Add, Sub, SchurMul, Div and the six
//     comparison operators, each in matrix-matrix and matrix-scalar form.
//     Comparisons return 1.0/0.0 masks that compose with SchurMul.
//   - Mul, a cache-blocked product tuned through WithBlockSize, next to the
//     plain NaiveMul reference loop.
//   - Gauss-Jordan inversion (Inverse) with partial pivoting, assembled from
//     the public row primitives SwapRows, ScaleRow, AddScaledRow, PivotRow,
//     Join and Separate.
//
// Every operation accepts the Matrix interface and takes a flat-slice fast
// path when the operands are *Dense. Failures are reported through the
// sentinel errors in errors.go, wrapped with the operation name; use
// errors.Is to match them. Nothing in this package panics on user data.
//
// Quick start:
//
//	a, _ := matrix.NewFromData(2, 2, []float64{4, 7, 2, 6})
//	inv, err := matrix.Inverse(a)
//	if errors.Is(err, matrix.ErrSingular) { ... }
//	ok, _ := matrix.IsIdentity(must(matrix.Mul(a, inv)))
//
// The package is single-threaded and keeps no shared state: every result is
// a freshly allocated *Dense owned by the caller.
package matrix
