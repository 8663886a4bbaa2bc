// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters on top of defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Block size affects cache behavior and summation order of Mul, never the
//     mathematical result.
//   - Pivot tolerance is the singularity threshold of Inverse: a column whose
//     best remaining pivot magnitude is <= tolerance is treated as singular.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockSize is the block edge length used by the tiled Mul kernel.
	// Three 64×64 float64 tiles (96 KiB) fit comfortably in a typical L2 cache.
	DefaultBlockSize = 64

	// DefaultPivotTolerance is the magnitude at or below which a pivot
	// candidate is considered zero during inversion.
	DefaultPivotTolerance = 1e-12

	// DefaultEpsilon is the tolerance used by approximate comparisons in
	// verification helpers (IsIdentity).
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicBlockSizeInvalid      = "matrix: WithBlockSize: block size must be > 0"
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tolerance must be finite, non-negative"
	panicEpsilonInvalid        = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	blockSize      int     // > 0; DefaultBlockSize
	pivotTolerance float64 // >= 0; DefaultPivotTolerance
	eps            float64 // >= 0; DefaultEpsilon
}

// BlockSize reports the resolved block edge length.
func (o Options) BlockSize() int { return o.blockSize }

// PivotTolerance reports the resolved singularity threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTolerance }

// Epsilon reports the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ---------- Constructors (WithX) ----------

// WithBlockSize sets the block edge length used by Mul.
// Implementation:
//   - Stage 1: validate n > 0.
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - A block larger than every dimension degenerates to a single block,
//     equivalent to the naive triple loop.
//
// Errors:
//   - Panics with a stable message when n <= 0.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - 32..128 is the useful range on commodity CPUs; benchmark before tuning.
func WithBlockSize(n int) Option {
	if n <= 0 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = n }
}

// WithPivotTolerance sets the singularity threshold used by Inverse.
// Implementation:
//   - Stage 1: validate tol is finite and >= 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is NaN, ±Inf or negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - tol = 0 only rejects exact zero pivots; ill-conditioned input then
//     produces huge but finite entries instead of ErrSingular.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTolerance = tol }
}

// WithEpsilon sets the tolerance used by approximate verification helpers.
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves the given setters on top of the defaults.
// Exposed so callers can inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		blockSize:      DefaultBlockSize,
		pivotTolerance: DefaultPivotTolerance,
		eps:            DefaultEpsilon,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped so callers may pass optional values directly.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue // tolerate nil entries in variadic lists
		}
		set(&o)
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
