// SPDX-License-Identifier: MIT

package matrix

import (
	"iter"
	"unsafe"

	"github.com/katalvlaran/dye/internal/kernel"
	"github.com/katalvlaran/dye/scalar"
	"github.com/katalvlaran/dye/vector"
)

// Mat2 is a 2×2 matrix of two row vectors in row-major order.
// m[i] is row i and m[i][j] the element in row i, column j.
type Mat2[T scalar.Scalar] [2]vector.Vec2[T]

// Common instantiations.
type (
	Float2x2  = Mat2[float32]
	Double2x2 = Mat2[float64]
)

// ---------- Construction ----------

// New2 builds a matrix from four scalars in row-major order.
func New2[T scalar.Scalar](
	e00, e01,
	e10, e11 T,
) Mat2[T] {
	return Mat2[T]{
		{e00, e01},
		{e10, e11},
	}
}

// FromRows2 builds a matrix from its row vectors.
func FromRows2[T scalar.Scalar](r0, r1 vector.Vec2[T]) Mat2[T] {
	return Mat2[T]{r0, r1}
}

// FromSlice2 copies exactly four row-major scalars out of s.
// Returns ErrLength when len(s) != 4.
func FromSlice2[T scalar.Scalar](s []T) (Mat2[T], error) {
	var m Mat2[T]
	if len(s) != 2*2 {
		return m, lengthError("FromSlice2", len(s), 2*2)
	}
	copy(m.Slice(), s)

	return m, nil
}

// MustFromSlice2 is FromSlice2 that panics on a length mismatch.
func MustFromSlice2[T scalar.Scalar](s []T) Mat2[T] {
	m, err := FromSlice2(s)
	if err != nil {
		panic(err)
	}

	return m
}

// Zero2 returns the matrix whose four elements are all zero.
func Zero2[T scalar.Scalar]() Mat2[T] { return Mat2[T]{} }

// Diag2 returns the diagonal matrix with d00, d11 on the main diagonal.
func Diag2[T scalar.Scalar](d00, d11 T) Mat2[T] {
	var m Mat2[T]
	kernel.Diag(m.Slice(), 2, d00, d11)

	return m
}

// Identity2 returns I₂.
func Identity2[T scalar.Scalar]() Mat2[T] {
	one := scalar.One[T]()

	return Diag2(one, one)
}

// ---------- Access ----------

// Row returns row i. See the package doc for the index contract.
func (m Mat2[T]) Row(i int) vector.Vec2[T] {
	kernel.CheckIndex("Mat2.Row", i, len(m))
	return m[i]
}

// SetRow replaces row i.
func (m *Mat2[T]) SetRow(i int, r vector.Vec2[T]) {
	kernel.CheckIndex("Mat2.SetRow", i, len(m))
	m[i] = r
}

// Col returns a fresh vector holding column j; it is not a view.
func (m Mat2[T]) Col(j int) vector.Vec2[T] {
	kernel.CheckIndex("Mat2.Col", j, len(m))
	var c vector.Vec2[T]
	kernel.Column(c[:], m.Slice(), 2, j)

	return c
}

// SetCol writes v into column j in place.
func (m *Mat2[T]) SetCol(j int, v vector.Vec2[T]) {
	kernel.CheckIndex("Mat2.SetCol", j, len(m))
	kernel.SetColumn(m.Slice(), v[:], 2, j)
}

// At returns the element in row i, column j.
func (m Mat2[T]) At(i, j int) T {
	kernel.CheckIndex("Mat2.At", i, len(m))
	kernel.CheckIndex("Mat2.At", j, len(m))
	return m[i][j]
}

// Set assigns the element in row i, column j.
func (m *Mat2[T]) Set(i, j int, s T) {
	kernel.CheckIndex("Mat2.Set", i, len(m))
	kernel.CheckIndex("Mat2.Set", j, len(m))
	m[i][j] = s
}

// Get returns the element in row i, column j or ErrOutOfRange.
func (m Mat2[T]) Get(i, j int) (T, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m) {
		return scalar.Zero[T](), indexError("Mat2.Get", i, j, len(m))
	}

	return m[i][j], nil
}

// TrySet assigns the element in row i, column j or returns ErrOutOfRange.
func (m *Mat2[T]) TrySet(i, j int, s T) error {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m) {
		return indexError("Mat2.TrySet", i, j, len(m))
	}
	m[i][j] = s

	return nil
}

// Slice returns the four elements, row-major, as a slice aliasing m.
func (m *Mat2[T]) Slice() []T { return unsafe.Slice(&m[0][0], 2*2) }

// Values yields the four elements in row-major order from a snapshot of m.
func (m Mat2[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range m.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields (flat index, element) pairs in row-major order.
func (m Mat2[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range m.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Rows yields (index, row) pairs from a snapshot of m.
func (m Mat2[T]) Rows() iter.Seq2[int, vector.Vec2[T]] {
	return func(yield func(int, vector.Vec2[T]) bool) {
		for i, r := range m {
			if !yield(i, r) {
				return
			}
		}
	}
}

// ---------- Element-wise arithmetic ----------

func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] { kernel.Add(m.Slice(), m.Slice(), o.Slice()); return m }
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] { kernel.Sub(m.Slice(), m.Slice(), o.Slice()); return m }
func (m Mat2[T]) Neg() Mat2[T]          { kernel.Neg(m.Slice(), m.Slice()); return m }

// MulElem is the row-wise (Hadamard) product: out[i][j] = m[i][j] * o[i][j].
// It is NOT the matrix product; see Mul.
func (m Mat2[T]) MulElem(o Mat2[T]) Mat2[T] { kernel.Mul(m.Slice(), m.Slice(), o.Slice()); return m }

// DivElem is the row-wise quotient: out[i][j] = m[i][j] / o[i][j].
func (m Mat2[T]) DivElem(o Mat2[T]) Mat2[T] { kernel.Div(m.Slice(), m.Slice(), o.Slice()); return m }

// Scale multiplies every element by s (m*s and s*m alike).
func (m Mat2[T]) Scale(s T) Mat2[T] { kernel.Scale(m.Slice(), m.Slice(), s); return m }

// DivScalar divides every element by s.
func (m Mat2[T]) DivScalar(s T) Mat2[T] { kernel.DivScalar(m.Slice(), m.Slice(), s); return m }

func (m *Mat2[T]) AddAssign(o Mat2[T]) *Mat2[T] {
	kernel.Add(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat2[T]) SubAssign(o Mat2[T]) *Mat2[T] {
	kernel.Sub(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat2[T]) MulElemAssign(o Mat2[T]) *Mat2[T] {
	kernel.Mul(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat2[T]) DivElemAssign(o Mat2[T]) *Mat2[T] {
	kernel.Div(m.Slice(), m.Slice(), o.Slice())
	return m
}

func (m *Mat2[T]) ScaleAssign(s T) *Mat2[T] {
	kernel.Scale(m.Slice(), m.Slice(), s)
	return m
}

func (m *Mat2[T]) DivScalarAssign(s T) *Mat2[T] {
	kernel.DivScalar(m.Slice(), m.Slice(), s)
	return m
}

// ---------- Linear algebra ----------

// Transpose returns mᵀ: row i of the result is column i of m.
// Complexity: O(n²).
func (m Mat2[T]) Transpose() Mat2[T] {
	var out Mat2[T]
	kernel.Transpose(out.Slice(), m.Slice(), 2)

	return out
}

// Mul returns the matrix product m × o: out[i][j] = Dot(m[i], o.Col(j)).
// The columns of o are extracted once and reused across rows.
// Complexity: O(n³).
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] {
	var out Mat2[T]
	kernel.MatMul(out.Slice(), m.Slice(), o.Slice(), 2)

	return out
}

// MulVec returns m × v for a column vector v: out[i] = Dot(m[i], v).
func (m Mat2[T]) MulVec(v vector.Vec2[T]) vector.Vec2[T] {
	var out vector.Vec2[T]
	kernel.MatVec(out[:], m.Slice(), v[:], 2)

	return out
}

// VecMul returns v × m for a row vector v: out[j] = Dot(v, m.Col(j)).
func (m Mat2[T]) VecMul(v vector.Vec2[T]) vector.Vec2[T] {
	var out vector.Vec2[T]
	kernel.VecMat(out[:], v[:], m.Slice(), 2)

	return out
}

// Trace returns m[0][0] + m[1][1].
func (m Mat2[T]) Trace() T { return kernel.Trace(m.Slice(), 2) }

// ---------- Comparison & formatting ----------

// Equal reports exact element equality.
func (m Mat2[T]) Equal(o Mat2[T]) bool { return kernel.Equal(m.Slice(), o.Slice()) }

// ApproxEqual reports element-wise equality within the tolerance of opts.
func (m Mat2[T]) ApproxEqual(o Mat2[T], opts ...scalar.Option) bool {
	return kernel.Near(m.Slice(), o.Slice(), scalar.Gather(opts...))
}

// String formats m one bracketed row per line.
func (m Mat2[T]) String() string { return format(m.Slice(), 2) }
