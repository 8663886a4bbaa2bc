// SPDX-License-Identifier: MIT

// Package matrix: construction-time fill modes.
package matrix

// FillMode selects how NewFilled initializes element storage.
type FillMode int

const (
	// FillZeros sets every element to 0.
	FillZeros FillMode = iota
	// FillOnes sets every element to 1.
	FillOnes
	// FillIdentity sets the main diagonal (min(rows, cols) entries) to 1 and
	// everything else to 0. Rectangular shapes are legal.
	FillIdentity
	// FillValue sets every element to the caller-supplied scalar.
	FillValue
)

// String returns the lower-case mode name used in error messages and logs.
func (f FillMode) String() string {
	switch f {
	case FillZeros:
		return "zeros"
	case FillOnes:
		return "ones"
	case FillIdentity:
		return "identity"
	case FillValue:
		return "value"
	default:
		return "unknown"
	}
}
