// SPDX-License-Identifier: MIT

package primitive

import (
	"errors"
	"fmt"
)

// ErrLength indicates a vertex buffer whose length is not a whole number of
// Vertex records.
var ErrLength = errors.New("primitive: buffer length is not a multiple of the vertex size")

// ErrUnknownRenderMethod indicates a name that matches no RenderMethod.
var ErrUnknownRenderMethod = errors.New("primitive: unknown render method")

// primitiveErrorf wraps err with a method tag: "<tag>: <err>".
func primitiveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
