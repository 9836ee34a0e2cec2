// SPDX-License-Identifier: MIT

package vector

import (
	"iter"
	"slices"

	"github.com/katalvlaran/dye/internal/kernel"
	"github.com/katalvlaran/dye/scalar"
)

// Vec2 is a 2-component vector stored as x, y.
type Vec2[T scalar.Scalar] [2]T

// Common instantiations.
type (
	Float2  = Vec2[float32]
	Double2 = Vec2[float64]
	Int2    = Vec2[int32]
)

// New2 returns the vector (x, y).
func New2[T scalar.Scalar](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// Zero2 returns the zero vector.
func Zero2[T scalar.Scalar]() Vec2[T] { return Vec2[T]{} }

// Splat2 returns (s, s).
func Splat2[T scalar.Scalar](s T) Vec2[T] { return Vec2[T]{s, s} }

// FromSlice2 copies exactly two scalars out of s.
// Returns ErrLength when len(s) != 2.
func FromSlice2[T scalar.Scalar](s []T) (Vec2[T], error) {
	var v Vec2[T]
	if len(s) != len(v) {
		return v, lengthError("FromSlice2", len(s), len(v))
	}
	copy(v[:], s)

	return v, nil
}

// MustFromSlice2 is FromSlice2 that panics on a length mismatch.
func MustFromSlice2[T scalar.Scalar](s []T) Vec2[T] {
	v, err := FromSlice2(s)
	if err != nil {
		panic(err)
	}

	return v
}

// ---------- Access ----------

// Len returns 2.
func (v Vec2[T]) Len() int { return len(v) }

// At returns component i. See the package doc for the index contract.
func (v Vec2[T]) At(i int) T {
	kernel.CheckIndex("Vec2.At", i, len(v))
	return v[i]
}

// Set assigns component i. See the package doc for the index contract.
func (v *Vec2[T]) Set(i int, s T) {
	kernel.CheckIndex("Vec2.Set", i, len(v))
	v[i] = s
}

// Get returns component i or ErrOutOfRange.
func (v Vec2[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v) {
		return scalar.Zero[T](), indexError("Vec2.Get", i, len(v))
	}

	return v[i], nil
}

// TrySet assigns component i or returns ErrOutOfRange leaving v untouched.
func (v *Vec2[T]) TrySet(i int, s T) error {
	if i < 0 || i >= len(v) {
		return indexError("Vec2.TrySet", i, len(v))
	}
	v[i] = s

	return nil
}

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

func (v *Vec2[T]) SetX(s T) { v[0] = s }
func (v *Vec2[T]) SetY(s T) { v[1] = s }

// Extend returns (x, y, z).
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// Extend2 returns (x, y, z, w).
func (v Vec2[T]) Extend2(z, w T) Vec4[T] { return Vec4[T]{v[0], v[1], z, w} }

// Slice returns the two components as a slice aliasing v's storage.
func (v *Vec2[T]) Slice() []T { return v[:] }

// Values yields x then y. Each range starts over from x and sees the
// components as they were when Values was called.
func (v Vec2[T]) Values() iter.Seq[T] { return slices.Values(v[:]) }

// All yields (index, component) pairs in storage order.
func (v Vec2[T]) All() iter.Seq2[int, T] { return slices.All(v[:]) }

// ---------- Arithmetic ----------

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { kernel.Add(v[:], v[:], o[:]); return v }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { kernel.Sub(v[:], v[:], o[:]); return v }

// Mul is the piecewise product.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { kernel.Mul(v[:], v[:], o[:]); return v }

// Div is the piecewise quotient.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { kernel.Div(v[:], v[:], o[:]); return v }

func (v Vec2[T]) Neg() Vec2[T] { kernel.Neg(v[:], v[:]); return v }

// Scale multiplies every component by s (v*s and s*v alike).
func (v Vec2[T]) Scale(s T) Vec2[T] { kernel.Scale(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] { kernel.DivScalar(v[:], v[:], s); return v }

func (v *Vec2[T]) AddAssign(o Vec2[T]) *Vec2[T] { kernel.Add(v[:], v[:], o[:]); return v }
func (v *Vec2[T]) SubAssign(o Vec2[T]) *Vec2[T] { kernel.Sub(v[:], v[:], o[:]); return v }
func (v *Vec2[T]) MulAssign(o Vec2[T]) *Vec2[T] { kernel.Mul(v[:], v[:], o[:]); return v }
func (v *Vec2[T]) DivAssign(o Vec2[T]) *Vec2[T] { kernel.Div(v[:], v[:], o[:]); return v }
func (v *Vec2[T]) ScaleAssign(s T) *Vec2[T]     { kernel.Scale(v[:], v[:], s); return v }
func (v *Vec2[T]) DivScalarAssign(s T) *Vec2[T] { kernel.DivScalar(v[:], v[:], s); return v }

// Dot returns x*o.x + y*o.y.
func (v Vec2[T]) Dot(o Vec2[T]) T { return kernel.Dot(v[:], o[:]) }

// LengthSquared returns Dot(v, v).
func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec2[T]) Length() T { return scalar.Sqrt(v.Dot(v)) }

// Cross returns the scalar x*o.y - y*o.x: the signed area of the
// parallelogram spanned by v and o (the 2D perpendicular dot product).
func (v Vec2[T]) Cross(o Vec2[T]) T { return v[0]*o[1] - v[1]*o[0] }

// Equal reports exact component equality.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return kernel.Equal(v[:], o[:]) }

// ApproxEqual reports component-wise equality within the tolerance of opts.
func (v Vec2[T]) ApproxEqual(o Vec2[T], opts ...scalar.Option) bool {
	return kernel.Near(v[:], o[:], scalar.Gather(opts...))
}

// String formats v as "(x, y)".
func (v Vec2[T]) String() string { return format(v[:]) }
