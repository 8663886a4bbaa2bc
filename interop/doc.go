// Package interop bridges matrix.Dense and gonum's mat package.
//
// The bridge is copy-based in both directions: View snapshots a matrix into a
// gonum-readable mat.Matrix (with a blas64 fast path), ToGonum produces a
// *mat.Dense, and FromGonum reads any mat.Matrix back into a *matrix.Dense.
// No storage is shared, so either side may be mutated freely afterwards.
//
// gonum has no 0×0 or 0×n dense matrix; converting an empty matrix to gonum
// fails with ErrEmpty instead of panicking inside gonum.
package interop
