// SPDX-License-Identifier: MIT

//go:build !dyedebug

package kernel

// Checked is false in release builds; contract assertions compile away.
const Checked = false
