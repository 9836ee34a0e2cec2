// SPDX-License-Identifier: MIT

package vector

import (
	"iter"
	"slices"

	"github.com/katalvlaran/dye/internal/kernel"
	"github.com/katalvlaran/dye/scalar"
)

// Vec3 is a 3-component vector stored as x, y, z.
type Vec3[T scalar.Scalar] [3]T

// Common instantiations.
type (
	Float3  = Vec3[float32]
	Double3 = Vec3[float64]
	Int3    = Vec3[int32]
)

// New3 returns the vector (x, y, z).
func New3[T scalar.Scalar](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// From2 returns (v.x, v.y, z).
func From2[T scalar.Scalar](v Vec2[T], z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// Zero3 returns the zero vector.
func Zero3[T scalar.Scalar]() Vec3[T] { return Vec3[T]{} }

// Splat3 returns (s, s, s).
func Splat3[T scalar.Scalar](s T) Vec3[T] { return Vec3[T]{s, s, s} }

// FromSlice3 copies exactly three scalars out of s.
// Returns ErrLength when len(s) != 3.
func FromSlice3[T scalar.Scalar](s []T) (Vec3[T], error) {
	var v Vec3[T]
	if len(s) != len(v) {
		return v, lengthError("FromSlice3", len(s), len(v))
	}
	copy(v[:], s)

	return v, nil
}

// MustFromSlice3 is FromSlice3 that panics on a length mismatch.
func MustFromSlice3[T scalar.Scalar](s []T) Vec3[T] {
	v, err := FromSlice3(s)
	if err != nil {
		panic(err)
	}

	return v
}

// ---------- Access ----------

// Len returns 3.
func (v Vec3[T]) Len() int { return len(v) }

// At returns component i. See the package doc for the index contract.
func (v Vec3[T]) At(i int) T {
	kernel.CheckIndex("Vec3.At", i, len(v))
	return v[i]
}

// Set assigns component i. See the package doc for the index contract.
func (v *Vec3[T]) Set(i int, s T) {
	kernel.CheckIndex("Vec3.Set", i, len(v))
	v[i] = s
}

// Get returns component i or ErrOutOfRange.
func (v Vec3[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v) {
		return scalar.Zero[T](), indexError("Vec3.Get", i, len(v))
	}

	return v[i], nil
}

// TrySet assigns component i or returns ErrOutOfRange leaving v untouched.
func (v *Vec3[T]) TrySet(i int, s T) error {
	if i < 0 || i >= len(v) {
		return indexError("Vec3.TrySet", i, len(v))
	}
	v[i] = s

	return nil
}

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v *Vec3[T]) SetX(s T) { v[0] = s }
func (v *Vec3[T]) SetY(s T) { v[1] = s }
func (v *Vec3[T]) SetZ(s T) { v[2] = s }

// Extend returns (x, y, z, w).
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// Slice returns the three components as a slice aliasing v's storage.
func (v *Vec3[T]) Slice() []T { return v[:] }

// Values yields x, y, z in order. Each range starts over from x and sees the
// components as they were when Values was called.
func (v Vec3[T]) Values() iter.Seq[T] { return slices.Values(v[:]) }

// All yields (index, component) pairs in storage order.
func (v Vec3[T]) All() iter.Seq2[int, T] { return slices.All(v[:]) }

// ---------- Arithmetic ----------

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { kernel.Add(v[:], v[:], o[:]); return v }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { kernel.Sub(v[:], v[:], o[:]); return v }

// Mul is the piecewise product.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { kernel.Mul(v[:], v[:], o[:]); return v }

// Div is the piecewise quotient.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { kernel.Div(v[:], v[:], o[:]); return v }

func (v Vec3[T]) Neg() Vec3[T] { kernel.Neg(v[:], v[:]); return v }

// Scale multiplies every component by s (v*s and s*v alike).
func (v Vec3[T]) Scale(s T) Vec3[T] { kernel.Scale(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec3[T]) DivScalar(s T) Vec3[T] { kernel.DivScalar(v[:], v[:], s); return v }

func (v *Vec3[T]) AddAssign(o Vec3[T]) *Vec3[T] { kernel.Add(v[:], v[:], o[:]); return v }
func (v *Vec3[T]) SubAssign(o Vec3[T]) *Vec3[T] { kernel.Sub(v[:], v[:], o[:]); return v }
func (v *Vec3[T]) MulAssign(o Vec3[T]) *Vec3[T] { kernel.Mul(v[:], v[:], o[:]); return v }
func (v *Vec3[T]) DivAssign(o Vec3[T]) *Vec3[T] { kernel.Div(v[:], v[:], o[:]); return v }
func (v *Vec3[T]) ScaleAssign(s T) *Vec3[T]     { kernel.Scale(v[:], v[:], s); return v }
func (v *Vec3[T]) DivScalarAssign(s T) *Vec3[T] { kernel.DivScalar(v[:], v[:], s); return v }

// Dot returns x*o.x + y*o.y + z*o.z.
func (v Vec3[T]) Dot(o Vec3[T]) T { return kernel.Dot(v[:], o[:]) }

// LengthSquared returns Dot(v, v).
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec3[T]) Length() T { return scalar.Sqrt(v.Dot(v)) }

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Equal reports exact component equality.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return kernel.Equal(v[:], o[:]) }

// ApproxEqual reports component-wise equality within the tolerance of opts.
func (v Vec3[T]) ApproxEqual(o Vec3[T], opts ...scalar.Option) bool {
	return kernel.Near(v[:], o[:], scalar.Gather(opts...))
}

// String formats v as "(x, y, z)".
func (v Vec3[T]) String() string { return format(v[:]) }
