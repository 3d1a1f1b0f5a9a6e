package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/nanocurve/curve"
)

// linePoly describes the polynomial f(x) = c0 + c1·u on [a, b], u being the
// rescaled argument.
func linePoly(c0, c1, a, b float64) curve.InterpolationDescriptor {
	return curve.InterpolationDescriptor{
		Kind:     curve.InterpolationChebyshev,
		Coeffs:   []float64{c0, c1},
		Interval: [2]float64{a, b},
	}
}

func chebCurve(t *testing.T, desc curve.PolynomialCoordinatesDescriptor) curve.Curved {
	t.Helper()
	params := curve.DefaultHelixParameters()
	got, err := (&curve.CurveDescriptor{
		Kind:      curve.KindChebyshev,
		Chebyshev: &desc,
	}).Instantiate(&params)
	require.NoError(t, err)
	return got
}

func TestPolynomialCoordinates_BoundaryValues(t *testing.T) {
	// x(u) = 10 + 2u on [0, 4]: endpoints evaluate to 8 and 12, then the
	// unit divisor brings them to nanometers.
	c := chebCurve(t, curve.PolynomialCoordinatesDescriptor{
		X: linePoly(10, 2, 0, 4),
		Y: linePoly(-5, 1, -1, 1),
		Z: linePoly(0, 0, 0, 1),
	})

	p0 := c.Position(0)
	assert.InDelta(t, 0.8, p0.X, 1e-12)
	assert.InDelta(t, -0.6, p0.Y, 1e-12)
	assert.InDelta(t, 0.0, p0.Z, 1e-12)

	p1 := c.Position(1)
	assert.InDelta(t, 1.2, p1.X, 1e-12)
	assert.InDelta(t, -0.4, p1.Y, 1e-12)
}

func TestPolynomialCoordinates_NoClosedFormAbscissa(t *testing.T) {
	c := chebCurve(t, curve.PolynomialCoordinatesDescriptor{
		X: linePoly(0, 1, 0, 1),
		Y: linePoly(0, 2, 0, 1),
		Z: linePoly(1, 0, 0, 1),
	})

	assert.Equal(t, curve.BoundsFinite, c.Bounds())
	_, ok := c.CurvilinearAbscissa(0.5)
	assert.False(t, ok)
	_, ok = c.InverseCurvilinearAbscissa(0.5)
	assert.False(t, ok)
}

func TestPolynomialCoordinates_NumericDerivatives(t *testing.T) {
	// Line segment: speed is constant, acceleration about zero.
	c := chebCurve(t, curve.PolynomialCoordinatesDescriptor{
		X: linePoly(0, 5, 0, 1),
		Y: linePoly(0, -5, 0, 1),
		Z: linePoly(2, 0, 0, 1),
	})

	s := c.Speed(0.5)
	assert.InDelta(t, 1.0, s.X, 1e-4)
	assert.InDelta(t, -1.0, s.Y, 1e-4)
	assert.InDelta(t, 0.0, s.Z, 1e-4)
}

func TestPolynomialCoordinates_FromPoints(t *testing.T) {
	// Fit x(t) through samples of a parabola and check the fit is honored.
	xs := make([]float64, 32)
	ys := make([]float64, 32)
	for i := range xs {
		x := float64(i) / 31
		xs[i] = x
		ys[i] = 3*x*x - x
	}
	desc := curve.PolynomialCoordinatesDescriptor{
		X: curve.InterpolationDescriptor{
			Kind:   curve.InterpolationPointsValues,
			Points: xs,
			Values: ys,
		},
		Y: linePoly(0, 0, 0, 1),
		Z: linePoly(0, 0, 0, 1),
	}

	c := chebCurve(t, desc)
	// Sample point i=31 is t=1: value 3-1=2, divided by 10.
	assert.InDelta(t, 0.2, c.Position(1).X, 1e-4)
}

func TestPolynomialCoordinates_EmptyInput(t *testing.T) {
	params := curve.DefaultHelixParameters()
	_, err := (&curve.CurveDescriptor{
		Kind: curve.KindChebyshev,
		Chebyshev: &curve.PolynomialCoordinatesDescriptor{
			X: curve.InterpolationDescriptor{Kind: curve.InterpolationPointsValues},
			Y: linePoly(0, 0, 0, 1),
			Z: linePoly(0, 0, 0, 1),
		},
	}).Instantiate(&params)
	require.Error(t, err)
}
