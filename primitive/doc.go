// Package primitive holds the rendering primitives built on the vector types:
// the packed Vertex record shared with GPU-style vertex buffers and the
// RenderMethod enumeration.
//
// Vertex is exactly eight float32s (position, normal, texture coordinate) with
// no padding, so a []float32 vertex buffer and a []Vertex describe the same
// bytes. Vertices and Floats convert between the two without copying.
package primitive
