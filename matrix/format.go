// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dye/scalar"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtRowSep   = "\n"
)

// format renders an n×n row-major buffer one "[a, b, c]" row per line.
// Complexity: O(n²).
func format[T scalar.Scalar](flat []T, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		b.WriteString(_fmtRowOpen)
		for j := 0; j < n; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, flat[i*n+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
