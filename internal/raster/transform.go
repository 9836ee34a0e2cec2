package raster

import (
	"math"

	"github.com/katalvlaran/dye/matrix"
	"github.com/katalvlaran/dye/vector"
)

// All transforms act on column vectors: p' = M.MulVec(p), so a chain applies
// right to left (proj.Mul(view).Mul(model)).

// Translation returns the affine map p ↦ p + t.
func Translation(t vector.Float3) matrix.Float4x4 {
	m := matrix.Identity4[float32]()
	m.SetCol(3, t.Extend(1))

	return m
}

// Scaling returns the axis-aligned scale by s.
func Scaling(s vector.Float3) matrix.Float4x4 {
	return matrix.Diag4(s.X(), s.Y(), s.Z(), 1)
}

// RotationX returns a right-handed rotation by rad radians about +X.
func RotationX(rad float64) matrix.Float4x4 {
	s, c := sincos(rad)
	return matrix.New4[float32](
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY returns a right-handed rotation by rad radians about +Y.
func RotationY(rad float64) matrix.Float4x4 {
	s, c := sincos(rad)
	return matrix.New4[float32](
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// Perspective returns an OpenGL-style projection looking down -Z.
// fovY is the vertical field of view in radians; near and far are positive.
func Perspective(fovY, aspect, near, far float64) matrix.Float4x4 {
	f := 1 / math.Tan(fovY/2)
	nf := 1 / (near - far)

	return matrix.New4[float32](
		float32(f/aspect), 0, 0, 0,
		0, float32(f), 0, 0,
		0, 0, float32((far+near)*nf), float32(2*far*near*nf),
		0, 0, -1, 0,
	)
}

func sincos(rad float64) (float32, float32) {
	s, c := math.Sincos(rad)
	return float32(s), float32(c)
}
