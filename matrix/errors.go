// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Checked accessors,
// bulk constructors and inverses return these wrapped via matrixErrorf; tests match them
// with errors.Is. Hot-path operations never return errors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites
// wrap with the method tag ("Mat4.Get", "FromSlice3") so the message says
// where the contract was broken while errors.Is still matches the sentinel.

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, N).
	// Get and TrySet return it; At, Set and Row never do.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrLength indicates a bulk source slice whose length is not exactly N*N.
	ErrLength = errors.New("matrix: source length mismatch")

	// ErrSingular indicates a zero pivot while inverting.
	ErrSingular = errors.New("matrix: matrix is singular")
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexError builds the wrapped ErrOutOfRange for a checked accessor.
func indexError(tag string, row, col, n int) error {
	return matrixErrorf(tag, fmt.Errorf("(%d,%d) not in [0,%d)²: %w", row, col, n, ErrOutOfRange))
}

// lengthError builds the wrapped ErrLength for a bulk constructor.
func lengthError(tag string, got, want int) error {
	return matrixErrorf(tag, fmt.Errorf("got %d scalars, want %d: %w", got, want, ErrLength))
}
