// SPDX-License-Identifier: MIT

package primitive

import (
	"unsafe"

	"github.com/katalvlaran/dye/vector"
)

// Vertex is one vertex-buffer record: object-space position, unit normal and
// texture coordinate, tightly packed.
type Vertex struct {
	Pos    vector.Float3
	Normal vector.Float3
	Tex    vector.Float2
}

// Layout of a Vertex in a packed buffer.
const (
	// VertexFloats is the number of float32 slots one Vertex occupies.
	VertexFloats = 8
	// VertexStride is the size of one Vertex in bytes.
	VertexStride = VertexFloats * 4

	OffsetPos    = 0
	OffsetNormal = 12
	OffsetTex    = 24
)

// NewVertex returns the vertex (pos, normal, tex).
func NewVertex(pos, normal vector.Float3, tex vector.Float2) Vertex {
	return Vertex{Pos: pos, Normal: normal, Tex: tex}
}

// Vertices views buf as a slice of packed vertex records.
// The result aliases buf; len(buf) must be a multiple of VertexFloats,
// otherwise ErrLength is returned. An empty buf yields a nil slice.
// Complexity: O(1).
func Vertices(buf []float32) ([]Vertex, error) {
	if len(buf)%VertexFloats != 0 {
		return nil, primitiveErrorf("Vertices", ErrLength)
	}
	if len(buf) == 0 {
		return nil, nil
	}

	return unsafe.Slice((*Vertex)(unsafe.Pointer(&buf[0])), len(buf)/VertexFloats), nil
}

// Floats views vs as a packed float32 buffer aliasing the same memory.
// Complexity: O(1).
func Floats(vs []Vertex) []float32 {
	if len(vs) == 0 {
		return nil
	}

	return unsafe.Slice(&vs[0].Pos[0], len(vs)*VertexFloats)
}
