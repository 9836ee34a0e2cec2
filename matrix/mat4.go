// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"
	"unsafe"

	"github.com/katalvlaran/dye/internal/kernel"
	"github.com/katalvlaran/dye/scalar"
	"github.com/katalvlaran/dye/vector"
)

// Mat4 is a 4×4 matrix of four row vectors in row-major order.
// m[i] is row i and m[i][j] the element in row i, column j.
type Mat4[T scalar.Scalar] [4]vector.Vec4[T]

// Common instantiations.
type (
	Float4x4  = Mat4[float32]
	Double4x4 = Mat4[float64]
)

// ---------- Construction ----------

// New4 builds a matrix from sixteen scalars in row-major order.
func New4[T scalar.Scalar](
	e00, e01, e02, e03,
	e10, e11, e12, e13,
	e20, e21, e22, e23,
	e30, e31, e32, e33 T,
) Mat4[T] {
	return Mat4[T]{
		{e00, e01, e02, e03},
		{e10, e11, e12, e13},
		{e20, e21, e22, e23},
		{e30, e31, e32, e33},
	}
}

// FromRows4 builds a matrix from its row vectors.
func FromRows4[T scalar.Scalar](r0, r1, r2, r3 vector.Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}
}

// FromSlice4 copies exactly sixteen row-major scalars out of s.
// Returns ErrLength when len(s) != 16.
func FromSlice4[T scalar.Scalar](s []T) (Mat4[T], error) {
	var m Mat4[T]
	if len(s) != 4*4 {
		return m, lengthError("FromSlice4", len(s), 4*4)
	}
	copy(m.Slice(), s)

	return m, nil
}

// MustFromSlice4 is FromSlice4 that panics on a length mismatch.
func MustFromSlice4[T scalar.Scalar](s []T) Mat4[T] {
	m, err := FromSlice4(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Zero4 returns the matrix whose sixteen elements are all zero.
func Zero4[T scalar.Scalar]() Mat4[T] { return Mat4[T]{} }

// Diag4 returns the diagonal matrix with d00, d11, d22, d33 on the main diagonal.
func Diag4[T scalar.Scalar](d00, d11, d22, d33 T) Mat4[T] {
	var m Mat4[T]
	kernel.Diag(m.Slice(), 4, d00, d11, d22, d33)

	return m
}

// Identity4 returns I₄.
func Identity4[T scalar.Scalar]() Mat4[T] {
	one := scalar.One[T]()

	return Diag4(one, one, one, one)
}

// ---------- Access ----------

// Row returns row i. See the package doc for the index contract.
func (m Mat4[T]) Row(i int) vector.Vec4[T] {
	kernel.CheckIndex("Mat4.Row", i, len(m))
	return m[i]
}

// SetRow replaces row i.
func (m *Mat4[T]) SetRow(i int, r vector.Vec4[T]) {
	kernel.CheckIndex("Mat4.SetRow", i, len(m))
	m[i] = r
}

// Col returns a fresh vector holding column j; it is not a view.
func (m Mat4[T]) Col(j int) vector.Vec4[T] {
	kernel.CheckIndex("Mat4.Col", j, len(m))
	var c vector.Vec4[T]
	kernel.Column(c[:], m.Slice(), 4, j)

	return c
}

// SetCol writes v into column j in place.
func (m *Mat4[T]) SetCol(j int, v vector.Vec4[T]) {
	kernel.CheckIndex("Mat4.SetCol", j, len(m))
	kernel.SetColumn(m.Slice(), v[:], 4, j)
}

// At returns the element in row i, column j.
func (m Mat4[T]) At(i, j int) T {
	kernel.CheckIndex("Mat4.At", i, len(m))
	kernel.CheckIndex("Mat4.At", j, len(m))
	return m[i][j]
}

// Set assigns the element in row i, column j.
func (m *Mat4[T]) Set(i, j int, s T) {
	kernel.CheckIndex("Mat4.Set", i, len(m))
	kernel.CheckIndex("Mat4.Set", j, len(m))
	m[i][j] = s
}

// Get returns the element in row i, column j or ErrOutOfRange.
func (m Mat4[T]) Get(i, j int) (T, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m) {
		return scalar.Zero[T](), indexError("Mat4.Get", i, j, len(m))
	}

	return m[i][j], nil
}

// TrySet assigns the element in row i, column j or returns ErrOutOfRange.
func (m *Mat4[T]) TrySet(i, j int, s T) error {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m) {
		return indexError("Mat4.TrySet", i, j, len(m))
	}
	m[i][j] = s

	return nil
}

// Slice returns the sixteen elements, row-major, as a slice aliasing m.
func (m *Mat4[T]) Slice() []T { return unsafe.Slice(&m[0][0], 4*4) }

// Values yields the sixteen elements in row-major order from a snapshot of m.
func (m Mat4[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range m.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields (flat index, element) pairs in row-major order.
func (m Mat4[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range m.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Rows yields (index, row) pairs from a snapshot of m.
func (m Mat4[T]) Rows() iter.Seq2[int, vector.Vec4[T]] {
	return func(yield func(int, vector.Vec4[T]) bool) {
		for i, r := range m {
			if !yield(i, r) {
				return
			}
		}
	}
}

// ---------- Element-wise arithmetic ----------

func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] { kernel.Add(m.Slice(), m.Slice(), o.Slice()); return m }
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] { kernel.Sub(m.Slice(), m.Slice(), o.Slice()); return m }
func (m Mat4[T]) Neg() Mat4[T]          { kernel.Neg(m.Slice(), m.Slice()); return m }

// MulElem is the row-wise (Hadamard) product: out[i][j] = m[i][j] * o[i][j].
// It is NOT the matrix product; see Mul.
func (m Mat4[T]) MulElem(o Mat4[T]) Mat4[T] { kernel.Mul(m.Slice(), m.Slice(), o.Slice()); return m }

// DivElem is the row-wise quotient: out[i][j] = m[i][j] / o[i][j].
func (m Mat4[T]) DivElem(o Mat4[T]) Mat4[T] { kernel.Div(m.Slice(), m.Slice(), o.Slice()); return m }

// Scale multiplies every element by s (m*s and s*m alike).
func (m Mat4[T]) Scale(s T) Mat4[T] { kernel.Scale(m.Slice(), m.Slice(), s); return m }

// DivScalar divides every element by s.
func (m Mat4[T]) DivScalar(s T) Mat4[T] { kernel.DivScalar(m.Slice(), m.Slice(), s); return m }

func (m *Mat4[T]) AddAssign(o Mat4[T]) *Mat4[T] {
	kernel.Add(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat4[T]) SubAssign(o Mat4[T]) *Mat4[T] {
	kernel.Sub(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat4[T]) MulElemAssign(o Mat4[T]) *Mat4[T] {
	kernel.Mul(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat4[T]) DivElemAssign(o Mat4[T]) *Mat4[T] {
	kernel.Div(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat4[T]) ScaleAssign(s T) *Mat4[T] {
	kernel.Scale(m.Slice(), m.Slice(), s)
	return m
}

func (m *Mat4[T]) DivScalarAssign(s T) *Mat4[T] {
	kernel.DivScalar(m.Slice(), m.Slice(), s)
	return m
}

// ---------- Linear algebra ----------

// Transpose returns mᵀ: row i of the result is column i of m.
// Complexity: O(n²).
func (m Mat4[T]) Transpose() Mat4[T] {
	var out Mat4[T]
	kernel.Transpose(out.Slice(), m.Slice(), 4)

	return out
}

// Mul returns the matrix product m × o: out[i][j] = Dot(m[i], o.Col(j)).
// The columns of o are extracted once and reused across rows.
// Complexity: O(n³).
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	kernel.MatMul(out.Slice(), m.Slice(), o.Slice(), 4)

	return out
}

// MulVec returns m × v for a column vector v: out[i] = Dot(m[i], v).
func (m Mat4[T]) MulVec(v vector.Vec4[T]) vector.Vec4[T] {
	var out vector.Vec4[T]
	kernel.MatVec(out[:], m.Slice(), v[:], 4)

	return out
}

// VecMul returns v × m for a row vector v: out[j] = Dot(v, m.Col(j)).
func (m Mat4[T]) VecMul(v vector.Vec4[T]) vector.Vec4[T] {
	var out vector.Vec4[T]
	kernel.VecMat(out[:], v[:], m.Slice(), 4)

	return out
}

// Trace returns m[0][0] + m[1][1] + m[2][2] + m[3][3].
func (m Mat4[T]) Trace() T { return kernel.Trace(m.Slice(), 4) }

// ---------- Comparison & formatting ----------

// Equal reports exact element equality.
func (m Mat4[T]) Equal(o Mat4[T]) bool { return kernel.Equal(m.Slice(), o.Slice()) }

// ApproxEqual reports element-wise equality within the tolerance of opts.
func (m Mat4[T]) ApproxEqual(o Mat4[T], opts ...scalar.Option) bool {
	return kernel.Near(m.Slice(), o.Slice(), scalar.Gather(opts...))
}

// String formats m one bracketed row per line.
func (m Mat4[T]) String() string { return format(m.Slice(), 4) }
