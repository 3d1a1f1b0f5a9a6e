package curve_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/nanocurve/curve"
	"github.com/hupe1980/nanocurve/testutil"
)

// checkDerivatives verifies that the analytic Speed and Acceleration of c
// match finite differences of Position and Speed at a spread of in-domain
// parameters.
func checkDerivatives(t *testing.T, c curve.Curved) {
	t.Helper()

	tmin, tmax := c.TMin(), c.TMax()
	for i := 1; i < 10; i++ {
		ti := tmin + (tmax-tmin)*float64(i)/10

		fd := testutil.FiniteDiffSpeed(c, ti)
		an := c.Speed(ti)
		assert.InDeltaf(t, fd.X, an.X, 1e-4, "speed.x at t=%v", ti)
		assert.InDeltaf(t, fd.Y, an.Y, 1e-4, "speed.y at t=%v", ti)
		assert.InDeltaf(t, fd.Z, an.Z, 1e-4, "speed.z at t=%v", ti)

		fda := testutil.FiniteDiffAcceleration(c, ti)
		ana := c.Acceleration(ti)
		assert.InDeltaf(t, fda.X, ana.X, 1e-4, "acceleration.x at t=%v", ti)
		assert.InDeltaf(t, fda.Y, ana.Y, 1e-4, "acceleration.y at t=%v", ti)
		assert.InDeltaf(t, fda.Z, ana.Z, 1e-4, "acceleration.z at t=%v", ti)
	}
}

// checkAbscissaRoundTrip verifies abscissa(inverse(x)) ≈ x over the domain,
// and that the abscissa is non-decreasing.
func checkAbscissaRoundTrip(t *testing.T, c curve.Curved) {
	t.Helper()

	tmin, tmax := c.TMin(), c.TMax()
	prev, ok := c.CurvilinearAbscissa(tmin)
	if !ok {
		return
	}
	for i := 1; i <= 10; i++ {
		ti := tmin + (tmax-tmin)*float64(i)/10
		x, ok := c.CurvilinearAbscissa(ti)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, x, prev, "abscissa must be non-decreasing")
		prev = x

		back, ok := c.InverseCurvilinearAbscissa(x)
		assert.True(t, ok)
		got, _ := c.CurvilinearAbscissa(back)
		assert.InDelta(t, x, got, 1e-9)
	}
}

func TestBoundsString(t *testing.T) {
	tests := []struct {
		bounds curve.CurveBounds
		want   string
	}{
		{curve.BoundsFinite, "finite"},
		{curve.BoundsSemiInfinite, "semi-infinite"},
		{curve.BoundsBiInfinite, "bi-infinite"},
		{curve.CurveBounds(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.bounds.String())
	}
}

func TestAbscissaConverter(t *testing.T) {
	c := curve.LinearConverter(0.5)
	assert.Equal(t, 2.0, c.Convert(4))
	assert.Equal(t, 4.0, c.Inverse(2))
	assert.False(t, c.IsIdentity())
	assert.True(t, curve.IdentityConverter().IsIdentity())
}

func TestCurvature_Circle(t *testing.T) {
	// Curvature of a circle is 1/radius everywhere.
	for _, radius := range []float64{0.5, 1, 13} {
		c := curve.NewCircleCurve(radius, 0)
		for i := 0; i <= 4; i++ {
			ti := float64(i) / 4
			assert.InDeltaf(t, 1/radius, curve.Curvature(c, ti), 1e-9,
				fmt.Sprintf("radius=%v t=%v", radius, ti))
		}
	}
}
