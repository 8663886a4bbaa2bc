// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// ErrEmpty is returned when a matrix with a zero extent is handed to gonum.
var ErrEmpty = errors.New("interop: gonum matrices cannot have zero rows or columns")

// View is a read-only snapshot of a matrix exposed through gonum's interfaces.
// It satisfies mat.Matrix and mat.RawMatrixer, so gonum kernels read it
// without going through At.
type View struct {
	rows, cols int
	data       []float64 // row-major, stride == cols
}

// Compile-time conformance with gonum's interfaces.
var (
	_ mat.Matrix      = (*View)(nil)
	_ mat.RawMatrixer = (*View)(nil)
)

// NewView snapshots m. Later writes to m are not visible through the view.
// Errors: matrix.ErrNilMatrix, ErrEmpty.
func NewView(m matrix.Matrix) (*View, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewView: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("NewView(%dx%d): %w", r, c, ErrEmpty)
	}

	if d, ok := m.(*matrix.Dense); ok {
		return &View{rows: r, cols: c, data: d.RawData()}, nil
	}
	data := make([]float64, r*c)
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("NewView: %w", err)
			}
			data[i*c+j] = v
		}
	}

	return &View{rows: r, cols: c, data: data}, nil
}

// Dims returns the shape of the snapshot.
func (v *View) Dims() (r, c int) { return v.rows, v.cols }

// At returns the element at (i, j). Following gonum's contract it panics with
// mat.ErrRowAccess / mat.ErrColAccess on out-of-range indices.
func (v *View) At(i, j int) float64 {
	if uint(i) >= uint(v.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(v.cols) {
		panic(mat.ErrColAccess)
	}

	return v.data[i*v.cols+j]
}

// T returns the implicit transpose.
func (v *View) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// RawMatrix exposes the snapshot as a general BLAS matrix. The backing slice
// belongs to the view; gonum only reads it.
func (v *View) RawMatrix() blas64.General {
	return blas64.General{Rows: v.rows, Cols: v.cols, Stride: v.cols, Data: v.data}
}

// ToGonum copies m into a new *mat.Dense.
// Errors: matrix.ErrNilMatrix, ErrEmpty.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	v, err := NewView(m)
	if err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}

	return mat.DenseCopyOf(v), nil
}

// FromGonum copies any gonum matrix into a new *matrix.Dense.
// An empty *mat.Dense (IsEmpty) converts to the 0×0 matrix.
// Errors: matrix.ErrNilMatrix for a nil input.
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	if d, ok := g.(*mat.Dense); ok {
		if d == nil {
			return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
		}
		if d.IsEmpty() {
			return matrix.NewEmpty(), nil
		}
	}

	r, c := g.Dims()
	data := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			data[i*c+j] = g.At(i, j)
		}
	}

	return matrix.NewFromData(r, c, data)
}

// SolveCheck solves A·x = b with gonum's LU-based solver; it is the
// independent path used to cross-check Inverse(A)·b.
// Errors: conversion errors, matrix.ErrDimensionMismatch when the row counts
// differ, or gonum's error for singular/ill-conditioned A.
func SolveCheck(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("SolveCheck: A: %w", err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("SolveCheck: b: %w", err)
	}
	if a.Rows() != b.Rows() {
		return nil, fmt.Errorf("SolveCheck: rows %d vs %d: %w", a.Rows(), b.Rows(), matrix.ErrDimensionMismatch)
	}
	ga, err := ToGonum(a)
	if err != nil {
		return nil, fmt.Errorf("SolveCheck: A: %w", err)
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, fmt.Errorf("SolveCheck: b: %w", err)
	}

	var x mat.Dense
	if err = x.Solve(ga, gb); err != nil {
		return nil, fmt.Errorf("SolveCheck: %w", err)
	}

	return FromGonum(&x)
}
