// SPDX-License-Identifier: MIT

//go:build dyedebug

package kernel

// Checked enables contract assertions in every kernel and accessor.
const Checked = true
