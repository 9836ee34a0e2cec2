package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMesh is returned when a mesh has no vertices or no edges.
	ErrEmptyMesh = errors.New("raster: empty mesh")
	// ErrEdgeIndex is returned when an edge references a missing vertex.
	ErrEdgeIndex = errors.New("raster: edge index out of range")
	// ErrUnsupportedMethod is returned for render methods the rasterizer
	// does not implement.
	ErrUnsupportedMethod = errors.New("raster: unsupported render method")
	// ErrSize is returned when the requested image side is not positive.
	ErrSize = errors.New("raster: image size must be positive")
)

func rasterErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
