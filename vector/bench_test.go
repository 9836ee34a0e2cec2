// Package vector_test provides benchmarks for the hot vector operations.
package vector_test

import (
	"testing"

	"github.com/katalvlaran/dye/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkV4 vector.Float4
	sinkV3 vector.Float3
	sinkF  float32
)

func BenchmarkVec4_Add(b *testing.B) {
	b.ReportAllocs()
	x := vector.New4[float32](1, 2, 3, 4)
	y := vector.New4[float32](4, 3, 2, 1)
	for i := 0; i < b.N; i++ {
		sinkV4 = x.Add(y)
	}
}

func BenchmarkVec4_Dot(b *testing.B) {
	b.ReportAllocs()
	x := vector.New4[float32](1, 2, 3, 4)
	y := vector.New4[float32](4, 3, 2, 1)
	for i := 0; i < b.N; i++ {
		sinkF = x.Dot(y)
	}
}

func BenchmarkVec3_Cross(b *testing.B) {
	b.ReportAllocs()
	x := vector.New3[float32](1, 2, 3)
	y := vector.New3[float32](3, 2, 1)
	for i := 0; i < b.N; i++ {
		sinkV3 = x.Cross(y)
	}
}

func BenchmarkVec4_Swizzle(b *testing.B) {
	b.ReportAllocs()
	x := vector.New4[float32](1, 2, 3, 4)
	for i := 0; i < b.N; i++ {
		sinkV4 = x.WZYX()
	}
}
