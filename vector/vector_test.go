// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for Vec2/Vec3/Vec4.
package vector_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dye/scalar"
	"github.com/katalvlaran/dye/vector"
)

// --- construction -------------------------------------------------------------

func TestConstructors_Compose(t *testing.T) {
	t.Parallel()

	v2 := vector.New2[float32](1, 2)
	require.Equal(t, vector.Float3{1, 2, 3}, v2.Extend(3))
	require.Equal(t, vector.Float3{1, 2, 3}, vector.From2(v2, 3))
	require.Equal(t, vector.Float4{1, 2, 3, 4}, v2.Extend2(3, 4))
	require.Equal(t, vector.Float4{1, 2, 3, 4}, vector.From2x2(v2, 3, 4))

	v3 := vector.New3[float32](1, 2, 3)
	require.Equal(t, vector.Float4{1, 2, 3, 4}, v3.Extend(4))
	require.Equal(t, vector.Float4{1, 2, 3, 4}, vector.From3(v3, 4))

	require.Equal(t, vector.Int3{}, vector.Zero3[int32]())
	require.Equal(t, vector.Double4{7, 7, 7, 7}, vector.Splat4(7.0))
}

func TestFromSlice_ExactLength(t *testing.T) {
	t.Parallel()

	buf := []float32{1, 2, 3, 4}
	v4, err := vector.FromSlice4(buf)
	require.NoError(t, err)
	require.Equal(t, vector.Float4{1, 2, 3, 4}, v4)

	// The vector owns a copy; mutating the source leaves it untouched.
	buf[0] = 100
	require.Equal(t, float32(1), v4.X())

	v2, err := vector.FromSlice2(buf[2:])
	require.NoError(t, err)
	require.Equal(t, vector.Float2{3, 4}, v2)
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := vector.FromSlice3([]float64{1, 2})
	require.ErrorIs(t, err, vector.ErrLength)
	_, err = vector.FromSlice2([]int{1, 2, 3})
	require.ErrorIs(t, err, vector.ErrLength)
	_, err = vector.FromSlice4[float32](nil)
	require.ErrorIs(t, err, vector.ErrLength)

	require.Panics(t, func() { vector.MustFromSlice3([]float32{1}) })
	require.NotPanics(t, func() { vector.MustFromSlice3([]float32{1, 2, 3}) })
}

// --- access -------------------------------------------------------------------

func TestNamedAndPositionalAccess_Alias(t *testing.T) {
	t.Parallel()

	v := vector.New4[float32](1, 2, 3, 4)
	for i := 0; i < v.Len(); i++ {
		require.Equal(t, float32(i+1), v.At(i))
	}
	require.Equal(t, []float32{v.X(), v.Y(), v.Z(), v.W()}, []float32{1, 2, 3, 4})

	v.SetW(40)
	require.Equal(t, float32(40), v[3])
	v.Set(0, 10)
	require.Equal(t, float32(10), v.X())
	v[1] = 20
	require.Equal(t, float32(20), v.Y())
}

func TestCheckedAccess_OutOfRange(t *testing.T) {
	t.Parallel()

	v := vector.New3(1, 2, 3)
	got, err := v.Get(2)
	require.NoError(t, err)
	require.Equal(t, 3, got)

	_, err = v.Get(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.Get(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	require.ErrorIs(t, v.TrySet(5, 9), vector.ErrOutOfRange)
	require.Equal(t, vector.Vec3[int]{1, 2, 3}, v, "failed TrySet must not mutate")
	require.NoError(t, v.TrySet(0, 9))
	require.Equal(t, 9, v.X())
}

func TestAt_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	v := vector.New2[float64](1, 2)
	i := 2
	require.Panics(t, func() { _ = v.At(i) })
}

func TestSlice_AliasesStorage(t *testing.T) {
	t.Parallel()

	v := vector.New3[float32](1, 2, 3)
	s := v.Slice()
	require.Len(t, s, 3)
	s[2] = 30
	require.Equal(t, float32(30), v.Z())
}

func TestLayout_TightlyPacked(t *testing.T) {
	t.Parallel()

	require.Equal(t, uintptr(8), unsafe.Sizeof(vector.Float2{}))
	require.Equal(t, uintptr(12), unsafe.Sizeof(vector.Float3{}))
	require.Equal(t, uintptr(16), unsafe.Sizeof(vector.Float4{}))
	require.Equal(t, uintptr(32), unsafe.Sizeof(vector.Double4{}))
}

// --- iteration ----------------------------------------------------------------

func TestValues_SumAndRestart(t *testing.T) {
	t.Parallel()

	v := vector.New4[float32](1, 2, 3, 4)
	seq := v.Values()

	var sum float32
	for x := range seq {
		sum += x
	}
	require.Equal(t, float32(10), sum)

	// A second pass starts again at component 0.
	var first []float32
	for x := range seq {
		first = append(first, x)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []float32{1, 2}, first)
}

func TestAll_IndexOrder(t *testing.T) {
	t.Parallel()

	v := vector.New3(5, 6, 7)
	var idx []int
	for i, x := range v.All() {
		idx = append(idx, i)
		require.Equal(t, v[i], x)
	}
	require.Equal(t, []int{0, 1, 2}, idx)
}

// --- arithmetic ---------------------------------------------------------------

func TestCompoundOperators_Length(t *testing.T) {
	t.Parallel()

	vec := vector.New2[float32](1, 1)
	vec.ScaleAssign(2).
		AddAssign(vector.New2[float32](3, 3)).
		SubAssign(vector.New2[float32](1, 2))

	require.Equal(t, vector.Float2{4, 3}, vec)
	require.Equal(t, float32(5), vec.Length())
}

func TestDot_Basis(t *testing.T) {
	t.Parallel()

	e1 := vector.New2[float32](1, 0)
	e2 := vector.New2[float32](0, 1)
	require.Equal(t, float32(1), e1.Dot(e1))
	require.Equal(t, float32(0), e1.Dot(e2))
	require.Equal(t, 30, vector.New4(1, 2, 3, 4).Dot(vector.New4(1, 2, 3, 4)))
}

func TestCross2_SignedArea(t *testing.T) {
	t.Parallel()

	e1 := vector.New2[float32](1, 0)
	e2 := vector.New2[float32](0, 1)
	require.Equal(t, float32(0), e1.Cross(e1))
	require.Equal(t, float32(1), e1.Cross(e2))
	require.Equal(t, float32(-1), e2.Cross(e1))
}

func TestCross3_RightHanded(t *testing.T) {
	t.Parallel()

	x := vector.New3(1, 0, 0)
	y := vector.New3(0, 1, 0)
	require.Equal(t, vector.New3(0, 0, 1), x.Cross(y))
	require.Equal(t, vector.New3(0, 0, -1), y.Cross(x))

	a := vector.New3(2, -3, 5)
	b := vector.New3(7, 1, -4)
	c := a.Cross(b)
	require.Zero(t, c.Dot(a), "cross product is orthogonal to its operands")
	require.Zero(t, c.Dot(b))
}

func TestPiecewiseProduct_Sum(t *testing.T) {
	t.Parallel()

	v := vector.Splat4[float32](1).Mul(vector.Splat4[float32](2))
	var sum float32
	for x := range v.Values() {
		sum += x
	}
	require.Equal(t, float32(8), sum)
}

func TestGeneralChain(t *testing.T) {
	t.Parallel()

	vec1 := vector.New3[float32](1, 2, 3)
	vec1.ScaleAssign(2)                // (2, 4, 6)
	vec2 := vec1.Scale(2)              // (4, 8, 12)
	vec3 := vec1.Mul(vec2)             // (8, 32, 72)
	vec4 := vec2.Mul(vec3)             // (32, 256, 864)
	vec5 := vec4.Div(vec1)             // (16, 64, 144)
	vec5.ScaleAssign(2)                // (32, 128, 288)
	vec6 := vec5.DivScalar(2)          // (16, 64, 144)
	vec7 := vec1.Sub(vec2)             // (-2, -4, -6)
	vec8 := vec1.Div(vec2)             // (0.5, 0.5, 0.5)
	vec9 := vec1.XYZ().Div(vec2.XXX()) // (0.5, 1, 1.5)

	require.Equal(t, vector.Float3{16, 64, 144}, vec6)
	require.Equal(t, vector.Float3{-2, -4, -6}, vec7)
	require.Equal(t, vector.Float3{0.5, 0.5, 0.5}, vec8)
	require.Equal(t, vector.Float3{0.5, 1, 1.5}, vec9)
	require.Equal(t, vector.Float3{2, 4, 6}.Neg(), vec7)
}

func TestValueSemantics_NoAliasing(t *testing.T) {
	t.Parallel()

	a := vector.New3(1, 2, 3)
	b := a.Add(vector.Splat3(1))
	require.Equal(t, vector.New3(1, 2, 3), a, "binary ops must not mutate the receiver")
	require.Equal(t, vector.New3(2, 3, 4), b)

	c := a
	c.SetX(100)
	require.Equal(t, 1, a.X())
}

func TestDivision_ByZero(t *testing.T) {
	t.Parallel()

	f := vector.New2[float64](1, 0).DivScalar(0)
	require.True(t, math.IsInf(f.X(), 1))
	require.True(t, math.IsNaN(f.Y()))

	i := vector.New2(1, 2)
	zero := vector.Zero2[int]()
	require.Panics(t, func() { _ = i.Div(zero) }, "integer division by zero traps")
}

func TestLength_IntegerTruncates(t *testing.T) {
	t.Parallel()
	require.Equal(t, 5, vector.New2(3, 4).Length())
	require.Equal(t, 1, vector.New2(1, 1).Length())
}

func TestEqualAndApprox(t *testing.T) {
	t.Parallel()

	a := vector.New3[float64](1, 2, 3)
	b := vector.New3[float64](1, 2, 3+1e-9)
	assert.False(t, a.Equal(b))
	assert.True(t, a.ApproxEqual(b))
	assert.False(t, a.ApproxEqual(b, scalar.WithEpsilon(0)))
	assert.True(t, a.ApproxEqual(vector.New3(1.0, 2.0, 3.3), scalar.WithEpsilon(0), scalar.WithRelTol(0.2)))

	nan := vector.New2(math.NaN(), 0)
	assert.False(t, nan.Equal(nan))
	assert.False(t, nan.ApproxEqual(nan))
}

func TestString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "(1, 2.5, -3)", vector.New3(1, 2.5, -3).String())
	require.Equal(t, "(1, 2)", vector.New2(1, 2).String())
}
