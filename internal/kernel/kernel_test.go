// SPDX-License-Identifier: MIT

package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dye/internal/kernel"
	"github.com/katalvlaran/dye/scalar"
)

// --- element-wise -------------------------------------------------------------

func TestElementwise_Basic(t *testing.T) {
	t.Parallel()

	a := []float64{1, 2, 3, 4}
	b := []float64{4, 3, 2, 1}
	dst := make([]float64, 4)

	kernel.Add(dst, a, b)
	require.Equal(t, []float64{5, 5, 5, 5}, dst)
	kernel.Sub(dst, a, b)
	require.Equal(t, []float64{-3, -1, 1, 3}, dst)
	kernel.Mul(dst, a, b)
	require.Equal(t, []float64{4, 6, 6, 4}, dst)
	kernel.Div(dst, a, b)
	require.Equal(t, []float64{0.25, 2.0 / 3.0, 1.5, 4}, dst)
	kernel.Neg(dst, a)
	require.Equal(t, []float64{-1, -2, -3, -4}, dst)
	kernel.Scale(dst, a, 2)
	require.Equal(t, []float64{2, 4, 6, 8}, dst)
	kernel.DivScalar(dst, a, 2)
	require.Equal(t, []float64{0.5, 1, 1.5, 2}, dst)
	require.Equal(t, 20.0, kernel.Dot(a, b))
}

func TestElementwise_InPlaceAliasing(t *testing.T) {
	t.Parallel()

	a := []int{1, 2, 3}
	kernel.Add(a, a, a)
	require.Equal(t, []int{2, 4, 6}, a)
	kernel.Mul(a, a, []int{1, 0, -1})
	require.Equal(t, []int{2, 0, -6}, a)
}

func TestEqualAndNear(t *testing.T) {
	t.Parallel()

	o := scalar.Gather(scalar.WithEpsilon(0.1))
	require.True(t, kernel.Equal([]int{1, 2}, []int{1, 2}))
	require.False(t, kernel.Equal([]int{1, 2}, []int{1, 3}))
	require.True(t, kernel.Near([]float32{1, 2}, []float32{1.05, 1.95}, o))
	require.False(t, kernel.Near([]float32{1, 2}, []float32{1.2, 2}, o))
}

// --- linear -------------------------------------------------------------------

func TestTranspose_Square(t *testing.T) {
	t.Parallel()

	src := []int{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	dst := make([]int, 9)
	kernel.Transpose(dst, src, 3)
	require.Equal(t, []int{1, 4, 7, 2, 5, 8, 3, 6, 9}, dst)
}

func TestColumnRoundTrip(t *testing.T) {
	t.Parallel()

	m := []int{1, 2, 3, 4}
	col := make([]int, 2)
	kernel.Column(col, m, 2, 1)
	require.Equal(t, []int{2, 4}, col)

	kernel.SetColumn(m, []int{9, 8}, 2, 0)
	require.Equal(t, []int{9, 2, 8, 4}, m)
}

func TestColumn_OutOfRangeWritesNothing(t *testing.T) {
	t.Parallel()

	m := []int{1, 2, 3, 4}
	for _, j := range []int{-1, 2} {
		require.Panics(t, func() { kernel.SetColumn(m, []int{7, 7}, 2, j) })
		require.Equal(t, []int{1, 2, 3, 4}, m, "column %d", j)

		col := []int{0, 0}
		require.Panics(t, func() { kernel.Column(col, m, 2, j) })
		require.Equal(t, []int{0, 0}, col, "column %d", j)
	}
}

func TestMatMul_KnownProduct(t *testing.T) {
	t.Parallel()

	a := []int{1, 2, 3, 4}
	b := []int{5, 6, 7, 8}
	dst := make([]int, 4)
	kernel.MatMul(dst, a, b, 2)
	require.Equal(t, []int{19, 22, 43, 50}, dst)
}

func TestMatVecAndVecMat(t *testing.T) {
	t.Parallel()

	m := []int{
		1, 2,
		3, 4,
	}
	v := []int{1, -1}
	dst := make([]int, 2)

	kernel.MatVec(dst, m, v, 2)
	require.Equal(t, []int{-1, -1}, dst)

	kernel.VecMat(dst, v, m, 2)
	require.Equal(t, []int{-2, -2}, dst)
}

func TestTraceAndDiag(t *testing.T) {
	t.Parallel()

	m := []float32{9, 9, 9, 9, 9, 9, 9, 9, 9}
	kernel.Diag(m, 3, 1, 2, 3)
	require.Equal(t, []float32{1, 0, 0, 0, 2, 0, 0, 0, 3}, m)
	require.Equal(t, float32(6), kernel.Trace(m, 3))
}

// --- LU / inverse ---------------------------------------------------------------

func TestLU_PivotsAndReconstructs(t *testing.T) {
	t.Parallel()

	a := []float64{
		0, 2, 1,
		1, 1, 0,
		2, 0, 3,
	}
	lu := append([]float64(nil), a...)
	perm := make([]int, 3)
	sign, ok := kernel.LU(lu, perm, 3)
	require.True(t, ok)
	require.Equal(t, 2, perm[0], "largest magnitude in column 0 is row 2")

	// Rebuild P·A from L·U.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k <= min(i, j); k++ {
				l := 1.0
				if k < i {
					l = lu[i*3+k]
				}
				sum += l * lu[k*3+j]
			}
			require.InDelta(t, a[perm[i]*3+j], sum, 1e-12, "(%d,%d)", i, j)
		}
	}
	require.Contains(t, []float64{-1, 1}, sign)
}

func TestDeterminantAndInverse(t *testing.T) {
	t.Parallel()

	a := []float64{4, 7, 2, 6}
	require.InDelta(t, 10.0, kernel.Determinant(append([]float64(nil), a...), 2), 1e-12)

	require.True(t, kernel.Inverse(a, 2))
	want := []float64{0.6, -0.7, -0.2, 0.4}
	for i := range want {
		require.InDelta(t, want[i], a[i], 1e-12)
	}

	singular := []float64{1, 2, 2, 4}
	require.False(t, kernel.Inverse(singular, 2))
	require.Equal(t, []float64{1, 2, 2, 4}, singular, "left unchanged")
	require.Zero(t, kernel.Determinant([]float64{1, 2, 2, 4}, 2))
}
