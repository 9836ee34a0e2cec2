// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..." for easy grepping. Call sites
// wrap these with vectorErrorf so errors.Is keeps matching.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a component index outside [0, N).
	// Checked accessors (Get, TrySet) return it; At/Set never do.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrLength indicates a bulk source slice whose length is not exactly N.
	ErrLength = errors.New("vector: source length mismatch")
)

// vectorErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexError builds the wrapped ErrOutOfRange for a checked accessor.
func indexError(tag string, i, n int) error {
	return vectorErrorf(tag, fmt.Errorf("index %d not in [0,%d): %w", i, n, ErrOutOfRange))
}

// lengthError builds the wrapped ErrLength for a bulk constructor.
func lengthError(tag string, got, want int) error {
	return vectorErrorf(tag, fmt.Errorf("got %d scalars, want %d: %w", got, want, ErrLength))
}
