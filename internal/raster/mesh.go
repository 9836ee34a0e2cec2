package raster

import (
	"github.com/katalvlaran/dye/primitive"
)

// Mesh is an indexed line list: every Edge joins two entries of Vertices.
type Mesh struct {
	Vertices []primitive.Vertex
	Edges    [][2]int
}

// cubeBuffer is the unit cube centred on the origin as packed vertex records
// (position, outward corner normal, texture coordinate).
var cubeBuffer = []float32{
	-0.5, -0.5, -0.5, -0.577, -0.577, -0.577, 0, 0,
	+0.5, -0.5, -0.5, +0.577, -0.577, -0.577, 1, 0,
	+0.5, +0.5, -0.5, +0.577, +0.577, -0.577, 1, 1,
	-0.5, +0.5, -0.5, -0.577, +0.577, -0.577, 0, 1,
	-0.5, -0.5, +0.5, -0.577, -0.577, +0.577, 0, 0,
	+0.5, -0.5, +0.5, +0.577, -0.577, +0.577, 1, 0,
	+0.5, +0.5, +0.5, +0.577, +0.577, +0.577, 1, 1,
	-0.5, +0.5, +0.5, -0.577, +0.577, +0.577, 0, 1,
}

var cubeEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}

// Cube returns a fresh unit cube wireframe.
func Cube() Mesh {
	buf := append([]float32(nil), cubeBuffer...)
	vs, err := primitive.Vertices(buf)
	if err != nil {
		panic(err)
	}

	return Mesh{Vertices: vs, Edges: append([][2]int(nil), cubeEdges...)}
}

// Validate reports ErrEmptyMesh or ErrEdgeIndex for malformed meshes.
func (m Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Edges) == 0 {
		return rasterErrorf("Mesh.Validate", ErrEmptyMesh)
	}
	for _, e := range m.Edges {
		for _, i := range e {
			if i < 0 || i >= len(m.Vertices) {
				return rasterErrorf("Mesh.Validate", ErrEdgeIndex)
			}
		}
	}

	return nil
}
