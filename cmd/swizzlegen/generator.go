// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// Source describes one vector type whose swizzles are generated.
type Source struct {
	Type  string   // Go type name without type parameters, e.g. "Vec3"
	Comps []string // component names in storage order
}

// Sources lists the generated types in emission order.
var Sources = []Source{
	{Type: "Vec2", Comps: []string{"X", "Y"}},
	{Type: "Vec3", Comps: []string{"X", "Y", "Z"}},
	{Type: "Vec4", Comps: []string{"X", "Y", "Z", "W"}},
}

// minPicks and maxPicks bound the generated result arities.
const (
	minPicks = 2
	maxPicks = 4
)

// Picks returns every sequence of k indices in [0,n), in odometer order
// (the last position varies fastest).
// Complexity: O(k·n^k).
func Picks(n, k int) [][]int {
	total := 1
	for i := 0; i < k; i++ {
		total *= n
	}
	out := make([][]int, 0, total)
	idx := make([]int, k)
	for c := 0; c < total; c++ {
		out = append(out, append([]int(nil), idx...))
		for p := k - 1; p >= 0; p-- {
			idx[p]++
			if idx[p] < n {
				break
			}
			idx[p] = 0
		}
	}

	return out
}

// MethodCount returns the number of methods Generate emits.
func MethodCount() int {
	var n int
	for _, s := range Sources {
		for k := minPicks; k <= maxPicks; k++ {
			n += len(Picks(len(s.Comps), k))
		}
	}

	return n
}

// Generate renders the swizzle file for package pkg and formats it.
func Generate(pkg string) ([]byte, error) {
	if pkg == "" {
		return nil, usageError("empty package name")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by swizzlegen. DO NOT EDIT.\n\npackage %s\n", pkg)

	for _, s := range Sources {
		fmt.Fprintf(&buf, "\n// ---------- %s swizzles ----------\n\n", s.Type)
		for k := minPicks; k <= maxPicks; k++ {
			if k > minPicks {
				buf.WriteByte('\n')
			}
			for _, pick := range Picks(len(s.Comps), k) {
				writeMethod(&buf, s, pick)
			}
		}
	}

	formatted, err := imports.Process("zz_swizzle.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("swizzlegen: format: %w", err)
	}

	return formatted, nil
}

// writeMethod emits one swizzle, e.g.
//
//	func (v Vec4[T]) WZYX() Vec4[T] { return Vec4[T]{v[3], v[2], v[1], v[0]} }
func writeMethod(buf *bytes.Buffer, s Source, pick []int) {
	var name strings.Builder
	elems := make([]string, len(pick))
	for i, p := range pick {
		name.WriteString(s.Comps[p])
		elems[i] = fmt.Sprintf("v[%d]", p)
	}
	result := fmt.Sprintf("Vec%d[T]", len(pick))
	fmt.Fprintf(buf, "func (v %s[T]) %s() %s { return %s{%s} }\n",
		s.Type, name.String(), result, result, strings.Join(elems, ", "))
}
