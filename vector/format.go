// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dye/scalar"
)

// Formatting literals.
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// format renders s as "(a, b, c)" using %v for each scalar.
func format[T scalar.Scalar](s []T) string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range s {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
