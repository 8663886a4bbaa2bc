// Package linalg is a dense, row-major float64 matrix library with
// cache-blocked multiplication and Gauss-Jordan inversion.
//
// The module is organized as:
//
//	matrix/      Dense value type, element-wise and comparison operators,
//	             blocked Mul, row primitives and Inverse
//	interop/     copy-based bridge to gonum's mat package
//	mmfile/      memory-mapped binary persistence of matrices
//	examples/    runnable demo programs
//
// Everything is single-threaded and deterministic: results depend only on
// the inputs and options, never on scheduling or global state. Errors are
// sentinel values wrapped with the failing operation; match them with
// errors.Is.
//
// Quick start:
//
//	a, _ := matrix.NewFromData(2, 2, []float64{4, 7, 2, 6})
//	inv, err := matrix.Inverse(a)
//	if err != nil { ... }
//	prod, _ := matrix.Mul(a, inv, matrix.WithBlockSize(64))
//	ok, _ := matrix.IsIdentity(prod) // true
package linalg
