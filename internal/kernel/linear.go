// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/dye/scalar"

// MaxDim is the largest square dimension the linear kernels accept.
// It sizes the stack-resident column cache used by MatMul.
const MaxDim = 4

// Transpose writes the transpose of the n×n row-major matrix src into dst.
// Row i of dst is column i of src.
// Complexity: O(n²). dst and src must not alias.
func Transpose[T scalar.Scalar](dst, src []T, n int) {
	checkSquare("Transpose", n, dst, src)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dst[i*n+j] = src[j*n+i]
		}
	}
}

// Column copies column j of the n×n row-major matrix m into dst (len n).
// A column outside [0,n) panics before dst is touched.
func Column[T scalar.Scalar](dst, m []T, n, j int) {
	checkIndex("Column", j, n)
	_ = m[(n-1)*n+j]
	_ = m[j]
	for i := 0; i < n; i++ {
		dst[i] = m[i*n+j]
	}
}

// SetColumn writes v (len n) into column j of the n×n row-major matrix m.
// A column outside [0,n) panics before m is modified.
func SetColumn[T scalar.Scalar](m, v []T, n, j int) {
	checkIndex("SetColumn", j, n)
	_ = m[(n-1)*n+j]
	_ = m[j]
	for i := 0; i < n; i++ {
		m[i*n+j] = v[i]
	}
}

// MatMul computes the matrix product dst = a × b for n×n row-major matrices.
//
// Implementation:
//   - Stage 1: extract the n columns of b once into a stack cache (the
//     transpose of b), so each column is built exactly one time.
//   - Stage 2: dst[i][j] = Dot(a.row(i), cache.row(j)) for fixed i→j order.
//
// Complexity:
//   - Time O(n³), extra space O(n²) scalars on the stack (n ≤ MaxDim).
//
// Notes:
//   - dst must not alias a or b.
func MatMul[T scalar.Scalar](dst, a, b []T, n int) {
	checkSquare("MatMul", n, dst, a, b)
	var cols [MaxDim * MaxDim]T
	Transpose(cols[:n*n], b, n)
	for i := 0; i < n; i++ {
		row := a[i*n : i*n+n]
		for j := 0; j < n; j++ {
			dst[i*n+j] = Dot(row, cols[j*n:j*n+n])
		}
	}
}

// MatVec computes dst = m × v (column vector): dst[i] = Dot(m.row(i), v).
// Complexity: O(n²). dst must not alias v.
func MatVec[T scalar.Scalar](dst, m, v []T, n int) {
	checkSquare("MatVec", n, m)
	for i := 0; i < n; i++ {
		dst[i] = Dot(m[i*n:i*n+n], v[:n])
	}
}

// VecMat computes dst = v × m (row vector): dst[j] = Dot(v, m.col(j)).
// Complexity: O(n²). dst must not alias v.
func VecMat[T scalar.Scalar](dst, v, m []T, n int) {
	checkSquare("VecMat", n, m)
	var col [MaxDim]T
	for j := 0; j < n; j++ {
		Column(col[:n], m, n, j)
		dst[j] = Dot(v[:n], col[:n])
	}
}

// Trace returns the sum of the main diagonal of an n×n row-major matrix.
func Trace[T scalar.Scalar](m []T, n int) T {
	checkSquare("Trace", n, m)
	var sum T
	for i := 0; i < n; i++ {
		sum += m[i*n+i]
	}

	return sum
}

// Diag zeroes the n×n matrix dst and writes d along its main diagonal.
func Diag[T scalar.Scalar](dst []T, n int, d ...T) {
	checkSquare("Diag", n, dst)
	clear(dst)
	for i := 0; i < n && i < len(d); i++ {
		dst[i*n+i] = d[i]
	}
}
