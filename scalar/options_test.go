// SPDX-License-Identifier: MIT
package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dye/scalar"
)

// 1) TestDefaultOptions_Documented verifies Gather() with no options equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	t.Parallel()

	o := scalar.Gather()
	require.Equal(t, scalar.DefaultEpsilon, o.Epsilon())
	require.Equal(t, scalar.DefaultRelTol, o.RelTol())
	require.Equal(t, scalar.DefaultOptions(), o)
}

// 2) TestGather_LastWinsAndNilSkipped ensures setters apply in order and nil entries are ignored.
func TestGather_LastWinsAndNilSkipped(t *testing.T) {
	t.Parallel()

	o := scalar.Gather(scalar.WithEpsilon(0.5), nil, scalar.WithEpsilon(0.25), scalar.WithRelTol(0.1), nil)
	require.Equal(t, 0.25, o.Epsilon())
	require.Equal(t, 0.1, o.RelTol())

	// Each setter touches only its own field.
	o = scalar.Gather(scalar.WithRelTol(0.3))
	require.Equal(t, scalar.DefaultEpsilon, o.Epsilon())
	require.Equal(t, 0.3, o.RelTol())

	require.NotPanics(t, func() { scalar.Gather(nil) })
}

// 3) TestWithX_PanicsOnInvalid checks the validators reject negative and non-finite values.
func TestWithX_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	const (
		epsMsg = "scalar: WithEpsilon: eps must be finite, non-negative"
		relMsg = "scalar: WithRelTol: rel must be finite, non-negative"
	)
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.PanicsWithValue(t, epsMsg, func() { scalar.WithEpsilon(bad) }, "eps=%v", bad)
		require.PanicsWithValue(t, relMsg, func() { scalar.WithRelTol(bad) }, "rel=%v", bad)
	}

	require.NotPanics(t, func() { scalar.WithEpsilon(0) })
	require.NotPanics(t, func() { scalar.WithRelTol(0) })
}

// 4) TestOptionsNear_Tolerances covers the absolute and relative terms.
func TestOptionsNear_Tolerances(t *testing.T) {
	t.Parallel()

	def := scalar.Gather()
	assert.True(t, def.Near(1, 1+1e-7))
	assert.False(t, def.Near(1, 1+1e-5))

	exact := scalar.Gather(scalar.WithEpsilon(0))
	assert.True(t, exact.Near(2, 2))
	assert.False(t, exact.Near(2, math.Nextafter(2, 3)))

	// |100-101| = 1 <= 0.01*101.
	rel := scalar.Gather(scalar.WithEpsilon(0), scalar.WithRelTol(0.01))
	assert.True(t, rel.Near(100, 101))
	assert.False(t, rel.Near(1, 2))
}

// 5) TestOptionsNear_NaNAndInf pins the non-finite rules: NaN is never near, equal infinities are.
func TestOptionsNear_NaNAndInf(t *testing.T) {
	t.Parallel()

	loose := scalar.Gather(scalar.WithEpsilon(1e300), scalar.WithRelTol(1e6))
	nan, inf := math.NaN(), math.Inf(1)

	assert.False(t, loose.Near(nan, nan))
	assert.False(t, loose.Near(nan, 0))
	assert.False(t, loose.Near(0, nan))

	assert.True(t, loose.Near(inf, inf))
	assert.True(t, loose.Near(-inf, -inf))
	assert.False(t, loose.Near(inf, -inf))
	assert.False(t, loose.Near(inf, math.MaxFloat64))
	assert.False(t, loose.Near(-math.MaxFloat64, -inf))
}

// 6) TestNear_Generic exercises the free-function form over several element types.
func TestNear_Generic(t *testing.T) {
	t.Parallel()

	assert.True(t, scalar.Near(3, 3))
	assert.False(t, scalar.Near(3, 4))
	assert.True(t, scalar.Near(3, 4, scalar.WithEpsilon(1)))
	assert.True(t, scalar.Near[uint8](250, 255, scalar.WithEpsilon(5)))
	assert.True(t, scalar.Near[float32](0.1, 0.1+1e-7))
	assert.False(t, scalar.Near(1.0, 1.1))
	assert.True(t, scalar.Near(1.0, 1.1, scalar.WithRelTol(0.1)))
}
