// SPDX-License-Identifier: MIT

// Package scalar: functional configuration for approximate comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Near, the single comparison kernel every ApproxEqual delegates to.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package scalar

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used when no option overrides it.
	// Chosen for float32 data, the common case for geometry buffers.
	DefaultEpsilon = 1e-6

	// DefaultRelTol is the relative tolerance (fraction of the larger magnitude).
	DefaultRelTol = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "scalar: WithRelTol: rel must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective tolerance policy after applying Option setters.
type Options struct {
	eps float64 // absolute tolerance, >= 0
	rel float64 // relative tolerance, >= 0
}

// WithEpsilon sets the absolute tolerance.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelTol sets the relative tolerance, applied to max(|a|, |b|).
// Panics when rel is negative, NaN or ±Inf.
func WithRelTol(rel float64) Option {
	if isNonFinite(rel) || rel < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rel = rel }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon, rel: DefaultRelTol}
}

// Gather resolves opts over the defaults. Nil options are skipped.
// Complexity: O(len(opts)).
func Gather(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Epsilon returns the resolved absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RelTol returns the resolved relative tolerance.
func (o Options) RelTol() float64 { return o.rel }

// Near reports whether |a-b| <= eps + rel*max(|a|,|b|).
// The comparison runs in float64 for every T. NaN is never near anything;
// equal infinities are near each other.
func (o Options) Near(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	tol := o.eps + o.rel*math.Max(math.Abs(a), math.Abs(b))

	return math.Abs(a-b) <= tol
}

// Near is the free-function form of Options.Near for a single pair of scalars.
func Near[T Scalar](a, b T, opts ...Option) bool {
	return Gather(opts...).Near(float64(a), float64(b))
}
