// SPDX-License-Identifier: MIT
// Package primitive_test contains unit tests for Vertex and RenderMethod.
package primitive_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dye/primitive"
	"github.com/katalvlaran/dye/vector"
)

// --- vertex -------------------------------------------------------------------

func TestVertex_Layout(t *testing.T) {
	t.Parallel()

	var v primitive.Vertex
	require.Equal(t, uintptr(primitive.VertexStride), unsafe.Sizeof(v))
	require.Equal(t, uintptr(primitive.OffsetPos), unsafe.Offsetof(v.Pos))
	require.Equal(t, uintptr(primitive.OffsetNormal), unsafe.Offsetof(v.Normal))
	require.Equal(t, uintptr(primitive.OffsetTex), unsafe.Offsetof(v.Tex))
}

func TestVertices_AliasesBuffer(t *testing.T) {
	t.Parallel()

	buf := []float32{
		1, 2, 3, 0, 0, 1, 0.25, 0.75,
		4, 5, 6, 0, 1, 0, 1, 0,
	}
	vs, err := primitive.Vertices(buf)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	require.Equal(t, primitive.NewVertex(
		vector.New3[float32](1, 2, 3),
		vector.New3[float32](0, 0, 1),
		vector.New2[float32](0.25, 0.75),
	), vs[0])
	require.Equal(t, vector.Float3{4, 5, 6}, vs[1].Pos)

	vs[1].Tex.SetY(9)
	require.Equal(t, float32(9), buf[15])

	back := primitive.Floats(vs)
	require.Equal(t, buf, back)
	back[0] = -1
	require.Equal(t, float32(-1), vs[0].Pos.X())
}

func TestVertices_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := primitive.Vertices(make([]float32, 7))
	require.ErrorIs(t, err, primitive.ErrLength)
	_, err = primitive.Vertices(make([]float32, 17))
	require.ErrorIs(t, err, primitive.ErrLength)

	vs, err := primitive.Vertices(nil)
	require.NoError(t, err)
	require.Empty(t, vs)
	require.Nil(t, primitive.Floats(nil))
}

// --- render method ------------------------------------------------------------

func TestRenderMethod_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range primitive.RenderMethods() {
		got, err := primitive.ParseRenderMethod(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	require.Len(t, primitive.RenderMethods(), 5)
}

func TestParseRenderMethod_Lenient(t *testing.T) {
	t.Parallel()

	m, err := primitive.ParseRenderMethod(" Ray_Marching ")
	require.NoError(t, err)
	require.Equal(t, primitive.RayMarching, m)

	_, err = primitive.ParseRenderMethod("phong")
	require.ErrorIs(t, err, primitive.ErrUnknownRenderMethod)
	require.Contains(t, err.Error(), `"phong"`)
}

func TestRenderMethod_StringOutOfRange(t *testing.T) {
	t.Parallel()
	require.Equal(t, "RenderMethod(9)", primitive.RenderMethod(9).String())
	require.Equal(t, "standard", primitive.Standard.String())
}
