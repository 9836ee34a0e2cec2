package vector_test

import (
	"fmt"

	"github.com/katalvlaran/dye/vector"
)

// ExampleVec4_WZYX shows swizzles: each is a fresh vector of the pick count.
func ExampleVec4_WZYX() {
	v := vector.New4[float32](1, 2, 3, 4)
	fmt.Println(v.WZYX())
	fmt.Println(v.XXY())
	fmt.Println(v.WZYX().WZYX() == v)
	// Output:
	// (4, 3, 2, 1)
	// (1, 1, 2)
	// true
}

// ExampleVec2_AddAssign chains in-place operators the way compound
// assignment chains in other languages.
func ExampleVec2_AddAssign() {
	v := vector.New2[float32](1, 1)
	v.ScaleAssign(2).AddAssign(vector.New2[float32](3, 3)).SubAssign(vector.New2[float32](1, 2))
	fmt.Println(v, v.Length())
	// Output:
	// (4, 3) 5
}

// ExampleVec3_Cross computes a surface normal from two triangle edges.
func ExampleVec3_Cross() {
	a := vector.New3(0.0, 0.0, 0.0)
	b := vector.New3(1.0, 0.0, 0.0)
	c := vector.New3(0.0, 1.0, 0.0)
	n := b.Sub(a).Cross(c.Sub(a))
	fmt.Println(n)
	// Output:
	// (0, 0, 1)
}
