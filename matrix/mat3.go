// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"
	"unsafe"

	"github.com/katalvlaran/dye/internal/kernel"
	"github.com/katalvlaran/dye/scalar"
	"github.com/katalvlaran/dye/vector"
)

// Mat3 is a 3×3 matrix of three row vectors in row-major order.
// m[i] is row i and m[i][j] the element in row i, column j.
type Mat3[T scalar.Scalar] [3]vector.Vec3[T]

// Common instantiations.
type (
	Float3x3  = Mat3[float32]
	Double3x3 = Mat3[float64]
)

// ---------- Construction ----------

// New3 builds a matrix from nine scalars in row-major order.
func New3[T scalar.Scalar](
	e00, e01, e02,
	e10, e11, e12,
	e20, e21, e22 T,
) Mat3[T] {
	return Mat3[T]{
		{e00, e01, e02},
		{e10, e11, e12},
		{e20, e21, e22},
	}
}

// FromRows3 builds a matrix from its row vectors.
func FromRows3[T scalar.Scalar](r0, r1, r2 vector.Vec3[T]) Mat3[T] {
	return Mat3[T]{r0, r1, r2}
}

// FromSlice3 copies exactly nine row-major scalars out of s.
// Returns ErrLength when len(s) != 9.
func FromSlice3[T scalar.Scalar](s []T) (Mat3[T], error) {
	var m Mat3[T]
	if len(s) != 3*3 {
		return m, lengthError("FromSlice3", len(s), 3*3)
	}
	copy(m.Slice(), s)

	return m, nil
}

// MustFromSlice3 is FromSlice3 that panics on a length mismatch.
func MustFromSlice3[T scalar.Scalar](s []T) Mat3[T] {
	m, err := FromSlice3(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Zero3 returns the matrix whose nine elements are all zero.
func Zero3[T scalar.Scalar]() Mat3[T] { return Mat3[T]{} }

// Diag3 returns the diagonal matrix with d00, d11, d22 on the main diagonal.
func Diag3[T scalar.Scalar](d00, d11, d22 T) Mat3[T] {
	var m Mat3[T]
	kernel.Diag(m.Slice(), 3, d00, d11, d22)

	return m
}

// Identity3 returns I₃.
func Identity3[T scalar.Scalar]() Mat3[T] {
	one := scalar.One[T]()

	return Diag3(one, one, one)
}

// ---------- Access ----------

// Row returns row i. See the package doc for the index contract.
func (m Mat3[T]) Row(i int) vector.Vec3[T] {
	kernel.CheckIndex("Mat3.Row", i, len(m))
	return m[i]
}

// SetRow replaces row i.
func (m *Mat3[T]) SetRow(i int, r vector.Vec3[T]) {
	kernel.CheckIndex("Mat3.SetRow", i, len(m))
	m[i] = r
}

// Col returns a fresh vector holding column j; it is not a view.
func (m Mat3[T]) Col(j int) vector.Vec3[T] {
	kernel.CheckIndex("Mat3.Col", j, len(m))
	var c vector.Vec3[T]
	kernel.Column(c[:], m.Slice(), 3, j)

	return c
}

// SetCol writes v into column j in place.
func (m *Mat3[T]) SetCol(j int, v vector.Vec3[T]) {
	kernel.CheckIndex("Mat3.SetCol", j, len(m))
	kernel.SetColumn(m.Slice(), v[:], 3, j)
}

// At returns the element in row i, column j.
func (m Mat3[T]) At(i, j int) T {
	kernel.CheckIndex("Mat3.At", i, len(m))
	kernel.CheckIndex("Mat3.At", j, len(m))
	return m[i][j]
}

// Set assigns the element in row i, column j.
func (m *Mat3[T]) Set(i, j int, s T) {
	kernel.CheckIndex("Mat3.Set", i, len(m))
	kernel.CheckIndex("Mat3.Set", j, len(m))
	m[i][j] = s
}

// Get returns the element in row i, column j or ErrOutOfRange.
func (m Mat3[T]) Get(i, j int) (T, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m) {
		return scalar.Zero[T](), indexError("Mat3.Get", i, j, len(m))
	}

	return m[i][j], nil
}

// TrySet assigns the element in row i, column j or returns ErrOutOfRange.
func (m *Mat3[T]) TrySet(i, j int, s T) error {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m) {
		return indexError("Mat3.TrySet", i, j, len(m))
	}
	m[i][j] = s

	return nil
}

// Slice returns the nine elements, row-major, as a slice aliasing m.
func (m *Mat3[T]) Slice() []T { return unsafe.Slice(&m[0][0], 3*3) }

// Values yields the nine elements in row-major order from a snapshot of m.
func (m Mat3[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range m.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields (flat index, element) pairs in row-major order.
func (m Mat3[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range m.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Rows yields (index, row) pairs from a snapshot of m.
func (m Mat3[T]) Rows() iter.Seq2[int, vector.Vec3[T]] {
	return func(yield func(int, vector.Vec3[T]) bool) {
		for i, r := range m {
			if !yield(i, r) {
				return
			}
		}
	}
}

// ---------- Element-wise arithmetic ----------

func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] { kernel.Add(m.Slice(), m.Slice(), o.Slice()); return m }
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] { kernel.Sub(m.Slice(), m.Slice(), o.Slice()); return m }
func (m Mat3[T]) Neg() Mat3[T]          { kernel.Neg(m.Slice(), m.Slice()); return m }

// MulElem is the row-wise (Hadamard) product: out[i][j] = m[i][j] * o[i][j].
// It is NOT the matrix product; see Mul.
func (m Mat3[T]) MulElem(o Mat3[T]) Mat3[T] { kernel.Mul(m.Slice(), m.Slice(), o.Slice()); return m }

// DivElem is the row-wise quotient: out[i][j] = m[i][j] / o[i][j].
func (m Mat3[T]) DivElem(o Mat3[T]) Mat3[T] { kernel.Div(m.Slice(), m.Slice(), o.Slice()); return m }

// Scale multiplies every element by s (m*s and s*m alike).
func (m Mat3[T]) Scale(s T) Mat3[T] { kernel.Scale(m.Slice(), m.Slice(), s); return m }

// DivScalar divides every element by s.
func (m Mat3[T]) DivScalar(s T) Mat3[T] { kernel.DivScalar(m.Slice(), m.Slice(), s); return m }

func (m *Mat3[T]) AddAssign(o Mat3[T]) *Mat3[T] {
	kernel.Add(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat3[T]) SubAssign(o Mat3[T]) *Mat3[T] {
	kernel.Sub(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat3[T]) MulElemAssign(o Mat3[T]) *Mat3[T] {
	kernel.Mul(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat3[T]) DivElemAssign(o Mat3[T]) *Mat3[T] {
	kernel.Div(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat3[T]) ScaleAssign(s T) *Mat3[T] {
	kernel.Scale(m.Slice(), m.Slice(), s)
	return m
}

func (m *Mat3[T]) DivScalarAssign(s T) *Mat3[T] {
	kernel.DivScalar(m.Slice(), m.Slice(), s)
	return m
}

// ---------- Linear algebra ----------

// Transpose returns mᵀ: row i of the result is column i of m.
// Complexity: O(n²).
func (m Mat3[T]) Transpose() Mat3[T] {
	var out Mat3[T]
	kernel.Transpose(out.Slice(), m.Slice(), 3)

	return out
}

// Mul returns the matrix product m × o: out[i][j] = Dot(m[i], o.Col(j)).
// The columns of o are extracted once and reused across rows.
// Complexity: O(n³).
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	kernel.MatMul(out.Slice(), m.Slice(), o.Slice(), 3)

	return out
}

// MulVec returns m × v for a column vector v: out[i] = Dot(m[i], v).
func (m Mat3[T]) MulVec(v vector.Vec3[T]) vector.Vec3[T] {
	var out vector.Vec3[T]
	kernel.MatVec(out[:], m.Slice(), v[:], 3)

	return out
}

// VecMul returns v × m for a row vector v: out[j] = Dot(v, m.Col(j)).
func (m Mat3[T]) VecMul(v vector.Vec3[T]) vector.Vec3[T] {
	var out vector.Vec3[T]
	kernel.VecMat(out[:], v[:], m.Slice(), 3)

	return out
}

// Trace returns m[0][0] + m[1][1] + m[2][2].
func (m Mat3[T]) Trace() T { return kernel.Trace(m.Slice(), 3) }

// ---------- Comparison & formatting ----------

// Equal reports exact element equality.
func (m Mat3[T]) Equal(o Mat3[T]) bool { return kernel.Equal(m.Slice(), o.Slice()) }

// ApproxEqual reports element-wise equality within the tolerance of opts.
func (m Mat3[T]) ApproxEqual(o Mat3[T], opts ...scalar.Option) bool {
	return kernel.Near(m.Slice(), o.Slice(), scalar.Gather(opts...))
}

// String formats m one bracketed row per line.
func (m Mat3[T]) String() string { return format(m.Slice(), 3) }
