// Package dye is a small, dependency-light linear-algebra kit for graphics
// code: fixed-size vectors and square matrices over any Go numeric type.
//
// What is in dye?
//
//   - scalar/: the Scalar element constraint and tolerance options
//   - vector/: Vec2, Vec3, Vec4 with element-wise arithmetic, Dot, Cross,
//     Length, and every 2- to 4-component swizzle (v.WZYX())
//   - matrix/: row-major Mat2, Mat3, Mat4 with element-wise arithmetic,
//     Transpose, Mul, MulVec, VecMul, Determinant, Inverse
//   - primitive/: the packed Vertex record and RenderMethod
//   - cmd/wireframe: renders a spinning cube to WebP or TGA
//   - cmd/swizzlegen: regenerates vector/zz_swizzle.go
//
// Design
//
//   - Value types: a Vec3[float32] is a [3]float32 and a Mat4[float32] is
//     sixteen contiguous float32s, so both copy, compare and pack like arrays.
//   - Distinct names for distinct products: MulElem is the row-wise product,
//     Mul is the matrix product.
//   - One shared kernel for all arities; no allocation on any hot path.
//   - Build with -tags dyedebug to turn index contract violations into
//     descriptive panics.
//
// Quick example:
//
//	m := matrix.Diag4[float32](1, 2, 3, 4)
//	v := vector.New4[float32](1, -1, 1, -1)
//	fmt.Println(m.MulVec(v)) // (1, -2, 3, -4)
//
//	go get github.com/katalvlaran/dye
package dye
