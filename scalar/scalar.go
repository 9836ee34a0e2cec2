// SPDX-License-Identifier: MIT

// Package scalar defines the numeric element type shared by the vector and
// matrix packages, together with the tolerance policy used by their
// approximate comparisons.
//
// Purpose:
//   - Provide a single Scalar constraint so every arity and every package
//     agrees on which element types are legal.
//   - Keep numeric helpers (identities, square root, finiteness) in one place.
//
// Numeric semantics:
//   - Arithmetic follows the native Go semantics of T. Floating-point division
//     by zero yields ±Inf or NaN; integer division by zero panics at runtime;
//     unsigned negation wraps.
package scalar

import "math"

// Scalar is the set of element types a vector or matrix may hold.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the subset of Scalar used by operations that divide by computed
// pivots (determinant, inverse).
type Float interface {
	~float32 | ~float64
}

// Zero returns the additive identity of T.
func Zero[T Scalar]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Scalar]() T { return 1 }

// Sqrt returns the square root of s computed in float64 and converted back to T.
// For integer T the result is truncated toward zero.
// Complexity: O(1).
func Sqrt[T Scalar](s T) T {
	return T(math.Sqrt(float64(s)))
}

// Abs returns |s|. For unsigned T it is the identity.
func Abs[T Scalar](s T) T {
	if s < 0 {
		return -s
	}

	return s
}

// isNonFinite reports whether f is NaN or ±Inf.
func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
