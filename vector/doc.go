// Package vector provides fixed-size 2-, 3- and 4-component vectors generic
// over a scalar.Scalar element type.
//
// The package provides:
//
//   - Vec2, Vec3 and Vec4 value types backed by plain Go arrays, so a VecN
//     is exactly N contiguous scalars with no padding and can be handed to
//     code that expects a packed []T (see Slice).
//   - Named (X, Y, Z, W) and positional (At, Set, Get, TrySet) access.
//   - Element-wise arithmetic, scalar scaling, Dot, Length and Cross, with
//     in-place *Assign variants that return the receiver for chaining.
//   - The full swizzle surface: every 2-, 3- and 4-pick combination of the
//     components (XY, WZYX, XXY, ...) as a method returning a fresh vector.
//   - Conversions to and from golang.org/x/image/math/f32.
//
// All arities share the flat-slice kernels of internal/kernel. Vectors are
// plain values: copying one never aliases the original, and there is no
// internal synchronization.
//
// Index contract: At and Set perform no checks of their own in release builds
// (the Go runtime still panics on a bad index); building with -tags dyedebug
// adds a descriptive contract panic. Get and TrySet always check and return
// ErrOutOfRange.
package vector

//go:generate go run ../cmd/swizzlegen -out zz_swizzle.go -pkg vector
