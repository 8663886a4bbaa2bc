// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions; panics are reserved for
// nonsensical option values (see options.go).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Detection sites wrap with fmt.Errorf("ctx: %w", ErrX); callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> squareness -> singularity.

var (
	// ErrInvalidDimensions indicates that requested extents are negative.
	// Zero extents are legal (0×0, 0×n and n×0 matrices).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrShapeMismatch is returned when construction data length differs from rows*cols.
	ErrShapeMismatch = errors.New("matrix: data length does not match shape")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) and row primitives MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, Mul where a.Cols != b.Rows, or Join
	// with different row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when no pivot above tolerance exists in some column
	// during Gauss-Jordan inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidFill indicates an unknown FillMode passed to NewFilled.
	ErrInvalidFill = errors.New("matrix: unknown fill mode")
)
