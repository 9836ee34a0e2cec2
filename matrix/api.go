// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide free-function entry points named after the linear-algebra
//     operations (trans, mul) for callers that prefer f(a, b) over a.f(b).
//   - Avoid any logic duplication: each facade delegates to the method of the
//     concrete MatN, so the same kernel runs either way.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the methods.

package matrix

// Trans returns the transpose of m.
// Complexity: O(n²).
func Trans[M interface{ Transpose() M }](m M) M { return m.Transpose() }

// Mul returns the matrix product a × b.
// Complexity: O(n³).
func Mul[M interface{ Mul(M) M }](a, b M) M { return a.Mul(b) }

// Hadamard returns the row-wise (element-wise) product of a and b.
// Complexity: O(n²).
func Hadamard[M interface{ MulElem(M) M }](a, b M) M { return a.MulElem(b) }

// MulVec returns m × v for a column vector v.
// Complexity: O(n²).
func MulVec[M interface{ MulVec(V) V }, V any](m M, v V) V { return m.MulVec(v) }

// VecMul returns v × m for a row vector v.
// Complexity: O(n²).
func VecMul[M interface{ VecMul(V) V }, V any](v V, m M) V { return m.VecMul(v) }
