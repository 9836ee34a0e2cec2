// SPDX-License-Identifier: MIT

package vector

import (
	"iter"
	"slices"

	"github.com/katalvlaran/dye/internal/kernel"
	"github.com/katalvlaran/dye/scalar"
)

// Vec4 is a 4-component vector stored as x, y, z, w.
type Vec4[T scalar.Scalar] [4]T

// Common instantiations.
type (
	Float4  = Vec4[float32]
	Double4 = Vec4[float64]
	Int4    = Vec4[int32]
)

// New4 returns the vector (x, y, z, w).
func New4[T scalar.Scalar](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// From3 returns (v.x, v.y, v.z, w).
func From3[T scalar.Scalar](v Vec3[T], w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// From2x2 returns (v.x, v.y, z, w).
func From2x2[T scalar.Scalar](v Vec2[T], z, w T) Vec4[T] { return Vec4[T]{v[0], v[1], z, w} }

// Zero4 returns the zero vector.
func Zero4[T scalar.Scalar]() Vec4[T] { return Vec4[T]{} }

// Splat4 returns (s, s, s, s).
func Splat4[T scalar.Scalar](s T) Vec4[T] { return Vec4[T]{s, s, s, s} }

// FromSlice4 copies exactly four scalars out of s.
// Returns ErrLength when len(s) != 4.
func FromSlice4[T scalar.Scalar](s []T) (Vec4[T], error) {
	var v Vec4[T]
	if len(s) != len(v) {
		return v, lengthError("FromSlice4", len(s), len(v))
	}
	copy(v[:], s)

	return v, nil
}

// MustFromSlice4 is FromSlice4 that panics on a length mismatch.
func MustFromSlice4[T scalar.Scalar](s []T) Vec4[T] {
	v, err := FromSlice4(s)
	if err != nil {
		panic(err)
	}

	return v
}

// ---------- Access ----------

// Len returns 4.
func (v Vec4[T]) Len() int { return len(v) }

// At returns component i. See the package doc for the index contract.
func (v Vec4[T]) At(i int) T {
	kernel.CheckIndex("Vec4.At", i, len(v))
	return v[i]
}

// Set assigns component i. See the package doc for the index contract.
func (v *Vec4[T]) Set(i int, s T) {
	kernel.CheckIndex("Vec4.Set", i, len(v))
	v[i] = s
}

// Get returns component i or ErrOutOfRange.
func (v Vec4[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(v) {
		return scalar.Zero[T](), indexError("Vec4.Get", i, len(v))
	}

	return v[i], nil
}

// TrySet assigns component i or returns ErrOutOfRange leaving v untouched.
func (v *Vec4[T]) TrySet(i int, s T) error {
	if i < 0 || i >= len(v) {
		return indexError("Vec4.TrySet", i, len(v))
	}
	v[i] = s

	return nil
}

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v *Vec4[T]) SetX(s T) { v[0] = s }
func (v *Vec4[T]) SetY(s T) { v[1] = s }
func (v *Vec4[T]) SetZ(s T) { v[2] = s }
func (v *Vec4[T]) SetW(s T) { v[3] = s }

// Slice returns the four components as a slice aliasing v's storage.
func (v *Vec4[T]) Slice() []T { return v[:] }

// Values yields x, y, z, w in order. Each range starts over from x and sees the
// components as they were when Values was called.
func (v Vec4[T]) Values() iter.Seq[T] { return slices.Values(v[:]) }

// All yields (index, component) pairs in storage order.
func (v Vec4[T]) All() iter.Seq2[int, T] { return slices.All(v[:]) }

// ---------- Arithmetic ----------

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { kernel.Add(v[:], v[:], o[:]); return v }
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { kernel.Sub(v[:], v[:], o[:]); return v }

// Mul is the piecewise product.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] { kernel.Mul(v[:], v[:], o[:]); return v }

// Div is the piecewise quotient.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] { kernel.Div(v[:], v[:], o[:]); return v }

func (v Vec4[T]) Neg() Vec4[T] { kernel.Neg(v[:], v[:]); return v }

// Scale multiplies every component by s (v*s and s*v alike).
func (v Vec4[T]) Scale(s T) Vec4[T] { kernel.Scale(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec4[T]) DivScalar(s T) Vec4[T] { kernel.DivScalar(v[:], v[:], s); return v }

func (v *Vec4[T]) AddAssign(o Vec4[T]) *Vec4[T] { kernel.Add(v[:], v[:], o[:]); return v }
func (v *Vec4[T]) SubAssign(o Vec4[T]) *Vec4[T] { kernel.Sub(v[:], v[:], o[:]); return v }
func (v *Vec4[T]) MulAssign(o Vec4[T]) *Vec4[T] { kernel.Mul(v[:], v[:], o[:]); return v }
func (v *Vec4[T]) DivAssign(o Vec4[T]) *Vec4[T] { kernel.Div(v[:], v[:], o[:]); return v }
func (v *Vec4[T]) ScaleAssign(s T) *Vec4[T]     { kernel.Scale(v[:], v[:], s); return v }
func (v *Vec4[T]) DivScalarAssign(s T) *Vec4[T] { kernel.DivScalar(v[:], v[:], s); return v }

// Dot returns x*o.x + y*o.y + z*o.z + w*o.w.
func (v Vec4[T]) Dot(o Vec4[T]) T { return kernel.Dot(v[:], o[:]) }

// LengthSquared returns Dot(v, v).
func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec4[T]) Length() T { return scalar.Sqrt(v.Dot(v)) }

// Equal reports exact component equality.
func (v Vec4[T]) Equal(o Vec4[T]) bool { return kernel.Equal(v[:], o[:]) }

// ApproxEqual reports component-wise equality within the tolerance of opts.
func (v Vec4[T]) ApproxEqual(o Vec4[T], opts ...scalar.Option) bool {
	return kernel.Near(v[:], o[:], scalar.Gather(opts...))
}

// String formats v as "(x, y, z, w)".
func (v Vec4[T]) String() string { return format(v[:]) }
