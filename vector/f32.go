// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/image/math/f32"

// The f32 vector types share the packed float32 layout of Float2/3/4, so the
// conversions below are plain array conversions with no per-component work.

// ToF32x2 converts v to an f32.Vec2.
func ToF32x2(v Float2) f32.Vec2 { return f32.Vec2(v) }

// ToF32x3 converts v to an f32.Vec3.
func ToF32x3(v Float3) f32.Vec3 { return f32.Vec3(v) }

// ToF32x4 converts v to an f32.Vec4.
func ToF32x4(v Float4) f32.Vec4 { return f32.Vec4(v) }

// FromF32x2 converts an f32.Vec2 to a Float2.
func FromF32x2(v f32.Vec2) Float2 { return Float2(v) }

// FromF32x3 converts an f32.Vec3 to a Float3.
func FromF32x3(v f32.Vec3) Float3 { return Float3(v) }

// FromF32x4 converts an f32.Vec4 to a Float4.
func FromF32x4(v f32.Vec4) Float4 { return Float4(v) }
