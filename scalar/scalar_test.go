// SPDX-License-Identifier: MIT
package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dye/scalar"
)

func TestIdentities(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, scalar.Zero[int]())
	require.Equal(t, uint16(0), scalar.Zero[uint16]())
	require.Equal(t, float32(1), scalar.One[float32]())
	require.Equal(t, int64(1), scalar.One[int64]())

	type meters float64
	require.Equal(t, meters(1), scalar.One[meters]())
}

func TestSqrt_TruncatesIntegers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, scalar.Sqrt(9))
	require.Equal(t, 3, scalar.Sqrt(10))
	require.Equal(t, uint8(15), scalar.Sqrt[uint8](255))
	require.InDelta(t, math.Sqrt2, scalar.Sqrt(2.0), 1e-15)
	require.True(t, math.IsNaN(scalar.Sqrt(-1.0)))
}

func TestAbs(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5, scalar.Abs(-5))
	require.Equal(t, 5, scalar.Abs(5))
	require.Equal(t, float32(0.5), scalar.Abs[float32](-0.5))
	require.Equal(t, uint32(7), scalar.Abs[uint32](7))
	require.True(t, math.IsInf(scalar.Abs(math.Inf(-1)), 1))
}
