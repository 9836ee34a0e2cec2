// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/dye/internal/kernel"
	"github.com/katalvlaran/dye/scalar"
)

// Determinant and inverse are computed in float64 through a partially pivoted
// LU factorisation and converted back to T. They are free functions because
// they need the narrower scalar.Float constraint.

// widen copies src into the float64 workspace dst.
func widen[T scalar.Float](dst []float64, src []T) {
	for i, x := range src {
		dst[i] = float64(x)
	}
}

// narrow copies the float64 workspace src into dst.
func narrow[T scalar.Float](dst []T, src []float64) {
	for i, x := range src {
		dst[i] = T(x)
	}
}

// Determinant2 returns det(m).
func Determinant2[T scalar.Float](m Mat2[T]) T {
	var a [2 * 2]float64
	widen(a[:], m.Slice())

	return T(kernel.Determinant(a[:], 2))
}

// Determinant3 returns det(m).
func Determinant3[T scalar.Float](m Mat3[T]) T {
	var a [3 * 3]float64
	widen(a[:], m.Slice())

	return T(kernel.Determinant(a[:], 3))
}

// Determinant4 returns det(m).
func Determinant4[T scalar.Float](m Mat4[T]) T {
	var a [4 * 4]float64
	widen(a[:], m.Slice())

	return T(kernel.Determinant(a[:], 4))
}

// Inverse2 returns m⁻¹, or ErrSingular when a zero pivot is met.
// Complexity: O(n³).
func Inverse2[T scalar.Float](m Mat2[T]) (Mat2[T], error) {
	var a [2 * 2]float64
	widen(a[:], m.Slice())
	if !kernel.Inverse(a[:], 2) {
		return m, matrixErrorf("Inverse2", ErrSingular)
	}
	var out Mat2[T]
	narrow(out.Slice(), a[:])

	return out, nil
}

// Inverse3 returns m⁻¹, or ErrSingular when a zero pivot is met.
// Complexity: O(n³).
func Inverse3[T scalar.Float](m Mat3[T]) (Mat3[T], error) {
	var a [3 * 3]float64
	widen(a[:], m.Slice())
	if !kernel.Inverse(a[:], 3) {
		return m, matrixErrorf("Inverse3", ErrSingular)
	}
	var out Mat3[T]
	narrow(out.Slice(), a[:])

	return out, nil
}

// Inverse4 returns m⁻¹, or ErrSingular when a zero pivot is met.
// Complexity: O(n³).
func Inverse4[T scalar.Float](m Mat4[T]) (Mat4[T], error) {
	var a [4 * 4]float64
	widen(a[:], m.Slice())
	if !kernel.Inverse(a[:], 4) {
		return m, matrixErrorf("Inverse4", ErrSingular)
	}
	var out Mat4[T]
	narrow(out.Slice(), a[:])

	return out, nil
}
