// SPDX-License-Identifier: MIT

package matrix

import "golang.org/x/image/math/f32"

// f32.Mat3 and f32.Mat4 are row-major like Float3x3 and Float4x4, with
// element (r, c) at index N*r + c, so conversion is a flat copy.

// ToF32x3 converts m to an f32.Mat3.
func ToF32x3(m Float3x3) f32.Mat3 {
	var out f32.Mat3
	copy(out[:], m.Slice())

	return out
}

// FromF32x3 converts an f32.Mat3 to a Float3x3.
func FromF32x3(a f32.Mat3) Float3x3 { return MustFromSlice3(a[:]) }

// ToF32x4 converts m to an f32.Mat4.
func ToF32x4(m Float4x4) f32.Mat4 {
	var out f32.Mat4
	copy(out[:], m.Slice())

	return out
}

// FromF32x4 converts an f32.Mat4 to a Float4x4.
func FromF32x4(a f32.Mat4) Float4x4 { return MustFromSlice4(a[:]) }
