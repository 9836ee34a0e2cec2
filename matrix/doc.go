// Package matrix provides fixed-size 2×2, 3×3 and 4×4 matrices generic over a
// scalar.Scalar element type.
//
// The matrix package provides:
//
//   - Mat2, Mat3 and Mat4 value types: arrays of vector.VecN rows, so a MatN
//     is N*N contiguous scalars in row-major order (see Slice).
//   - Factories Zero*, Diag*, Identity*, element-list, row-list and checked
//     bulk-slice constructors.
//   - Row access through plain indexing (m[i] is row i and is mutable),
//     fresh column vectors through Col, in-place column writes through SetCol.
//   - Element-wise arithmetic: Add, Sub, Neg, Scale, DivScalar and the
//     row-wise (Hadamard) MulElem / DivElem, each with an *Assign variant.
//   - Linear algebra: Transpose, Mul (matrix product), MulVec (m × column
//     vector) and VecMul (row vector × m), plus the Trans / Mul / MulVec /
//     VecMul facade functions.
//
// Two products, two names: MulElem multiplies corresponding elements, Mul is
// the matrix product. Nothing in the package uses the bare name Mul for the
// element-wise form.
//
// Index contract: Row, At, Set, Col and SetCol perform no checks of their own
// in release builds (the Go runtime still panics on a bad index); building
// with -tags dyedebug adds a descriptive contract panic. Get and TrySet always
// check and return ErrOutOfRange.
package matrix
