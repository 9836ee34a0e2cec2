// SPDX-License-Identifier: MIT

// Package kernel holds the flat-slice loops shared by every vector and matrix
// arity. A Vec3 is three contiguous scalars and a Mat4 is sixteen, so one
// slice kernel serves all of them; the public types only slice their backing
// arrays and delegate here.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1; no allocation.
//   - Lengths are trusted in release builds (callers pass sub-slices of arrays
//     of the right size). Under the dyedebug tag each kernel asserts them.
//
// Aliasing:
//   - Element-wise kernels allow dst to alias a or b (each index is read
//     before it is written). Linear kernels (MatMul, MatVec, VecMat,
//     Transpose) require dst to be disjoint from their inputs.
package kernel

import "github.com/katalvlaran/dye/scalar"

// Add computes dst[i] = a[i] + b[i].
// Complexity: O(n).
func Add[T scalar.Scalar](dst, a, b []T) {
	checkLen3("Add", dst, a, b)
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub computes dst[i] = a[i] - b[i].
// Complexity: O(n).
func Sub[T scalar.Scalar](dst, a, b []T) {
	checkLen3("Sub", dst, a, b)
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul computes the piecewise (Hadamard) product dst[i] = a[i] * b[i].
// Complexity: O(n).
func Mul[T scalar.Scalar](dst, a, b []T) {
	checkLen3("Mul", dst, a, b)
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Div computes the piecewise quotient dst[i] = a[i] / b[i].
// Integer T panics on a zero divisor; float T yields ±Inf or NaN.
// Complexity: O(n).
func Div[T scalar.Scalar](dst, a, b []T) {
	checkLen3("Div", dst, a, b)
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// Neg computes dst[i] = -a[i].
func Neg[T scalar.Scalar](dst, a []T) {
	checkLen2("Neg", dst, a)
	for i := range dst {
		dst[i] = -a[i]
	}
}

// Scale computes dst[i] = a[i] * s.
func Scale[T scalar.Scalar](dst, a []T, s T) {
	checkLen2("Scale", dst, a)
	for i := range dst {
		dst[i] = a[i] * s
	}
}

// DivScalar computes dst[i] = a[i] / s.
func DivScalar[T scalar.Scalar](dst, a []T, s T) {
	checkLen2("DivScalar", dst, a)
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// Dot returns the sum over i of a[i]*b[i].
// Complexity: O(n).
func Dot[T scalar.Scalar](a, b []T) T {
	checkLen2("Dot", a, b)
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Equal reports whether a and b hold identical scalars (NaN != NaN).
func Equal[T scalar.Scalar](a, b []T) bool {
	checkLen2("Equal", a, b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Near reports whether every pair a[i], b[i] is within the tolerance of o.
func Near[T scalar.Scalar](a, b []T, o scalar.Options) bool {
	checkLen2("Near", a, b)
	for i := range a {
		if !o.Near(float64(a[i]), float64(b[i])) {
			return false
		}
	}

	return true
}
