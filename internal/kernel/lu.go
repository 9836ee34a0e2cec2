// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/dye/scalar"

// LU factors the n×n row-major matrix a in place into a unit lower-triangular
// L (below the diagonal, implicit ones) and an upper-triangular U (on and above
// it), choosing the largest remaining pivot in each column: P·A = L·U.
// perm[i] receives the source row of row i.
// Returns the permutation sign (±1), or ok == false on a zero pivot.
// Complexity: O(n³) time, no allocation.
func LU(a []float64, perm []int, n int) (sign float64, ok bool) {
	checkSquare("LU", n, a)
	for i := 0; i < n; i++ {
		perm[i] = i
	}
	sign = 1
	for k := 0; k < n; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if scalar.Abs(a[i*n+k]) > scalar.Abs(a[p*n+k]) {
				p = i
			}
		}
		if a[p*n+k] == 0 {
			return 0, false
		}
		if p != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			l := a[i*n+k] / pivot
			a[i*n+k] = l
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= l * a[k*n+j]
			}
		}
	}

	return sign, true
}

// Determinant returns det(a) for the n×n row-major a, destroying a.
// A singular matrix yields 0.
func Determinant(a []float64, n int) float64 {
	var perm [MaxDim]int
	sign, ok := LU(a, perm[:n], n)
	if !ok {
		return 0
	}
	d := sign
	for i := 0; i < n; i++ {
		d *= a[i*n+i]
	}

	return d
}

// Inverse overwrites the n×n row-major a with its inverse, one column of the
// identity at a time: forward substitution L·y = P·eⱼ, then backward
// substitution U·x = y. Returns false, leaving a unchanged, when a is singular.
// Complexity: O(n³) time, stack-only scratch.
func Inverse(a []float64, n int) bool {
	var (
		perm [MaxDim]int
		lu   [MaxDim * MaxDim]float64
		y    [MaxDim]float64
	)
	copy(lu[:n*n], a)
	if _, ok := LU(lu[:n*n], perm[:n], n); !ok {
		return false
	}

	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			var sum float64
			if perm[i] == col {
				sum = 1
			}
			for k := 0; k < i; k++ {
				sum -= lu[i*n+k] * y[k]
			}
			y[i] = sum
		}
		// Rows below i of column col already hold x.
		for i := n - 1; i >= 0; i-- {
			sum := y[i]
			for k := i + 1; k < n; k++ {
				sum -= lu[i*n+k] * a[k*n+col]
			}
			a[i*n+col] = sum / lu[i*n+i]
		}
	}

	return true
}
