// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
)

// ErrContract marks a violated caller contract detected under the dyedebug tag.
var ErrContract = errors.New("kernel: contract violation")

// contractPanic panics with a wrapped ErrContract so recover() sites can use errors.Is.
func contractPanic(op, format string, args ...any) {
	panic(fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrContract))
}

// CheckIndex asserts 0 <= i < n under dyedebug; it compiles to nothing otherwise.
func CheckIndex(op string, i, n int) {
	if Checked {
		checkIndex(op, i, n)
	}
}

func checkIndex(op string, i, n int) {
	if Checked && (i < 0 || i >= n) {
		contractPanic(op, "index %d out of range [0,%d)", i, n)
	}
}

func checkLen2[T any](op string, a, b []T) {
	if Checked && len(a) != len(b) {
		contractPanic(op, "length %d != %d", len(a), len(b))
	}
}

func checkLen3[T any](op string, dst, a, b []T) {
	if Checked && (len(dst) != len(a) || len(dst) != len(b)) {
		contractPanic(op, "lengths %d/%d/%d differ", len(dst), len(a), len(b))
	}
}

func checkSquare[T any](op string, n int, ms ...[]T) {
	if !Checked {
		return
	}
	if n < 1 || n > MaxDim {
		contractPanic(op, "dimension %d outside [1,%d]", n, MaxDim)
	}
	for _, m := range ms {
		if len(m) < n*n {
			contractPanic(op, "buffer of %d scalars for %dx%d", len(m), n, n)
		}
	}
}
