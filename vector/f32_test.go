// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/dye/vector"
)

func TestF32_RoundTrip(t *testing.T) {
	t.Parallel()

	v2 := vector.New2[float32](1, 2)
	require.Equal(t, f32.Vec2{1, 2}, vector.ToF32x2(v2))
	require.Equal(t, v2, vector.FromF32x2(vector.ToF32x2(v2)))

	v3 := vector.New3[float32](1, 2, 3)
	require.Equal(t, f32.Vec3{1, 2, 3}, vector.ToF32x3(v3))
	require.Equal(t, v3, vector.FromF32x3(vector.ToF32x3(v3)))

	v4 := vector.New4[float32](1, 2, 3, 4)
	require.Equal(t, f32.Vec4{1, 2, 3, 4}, vector.ToF32x4(v4))
	require.Equal(t, v4, vector.FromF32x4(f32.Vec4{1, 2, 3, 4}))
}
