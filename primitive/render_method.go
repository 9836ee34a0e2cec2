// SPDX-License-Identifier: MIT

package primitive

import (
	"strconv"
	"strings"
)

// RenderMethod selects how a scene is turned into pixels.
type RenderMethod int

const (
	Standard RenderMethod = iota
	MarchingCube
	RayCasting
	RayTracing
	RayMarching
)

var renderMethodNames = [...]string{
	Standard:     "standard",
	MarchingCube: "marching-cube",
	RayCasting:   "ray-casting",
	RayTracing:   "ray-tracing",
	RayMarching:  "ray-marching",
}

// RenderMethods returns every defined method in declaration order.
func RenderMethods() []RenderMethod {
	return []RenderMethod{Standard, MarchingCube, RayCasting, RayTracing, RayMarching}
}

// String returns the lower-case, dash-separated method name.
func (m RenderMethod) String() string {
	if m < 0 || int(m) >= len(renderMethodNames) {
		return "RenderMethod(" + strconv.Itoa(int(m)) + ")"
	}

	return renderMethodNames[m]
}

// ParseRenderMethod maps a name produced by String back to its method.
// Matching ignores case and treats '_' like '-'.
func ParseRenderMethod(s string) (RenderMethod, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range renderMethodNames {
		if name == key {
			return RenderMethod(i), nil
		}
	}

	return Standard, primitiveErrorf("ParseRenderMethod("+strconv.Quote(s)+")", ErrUnknownRenderMethod)
}
