package curve

import (
	"fmt"

	"github.com/hupe1980/nanocurve/internal/chebpoly"
	"github.com/hupe1980/nanocurve/vecmath"
)

// unitDivisor converts the fitted polynomial values (ångströms) to the
// nanometer scale used by the rest of the geometry.
const unitDivisor = 10.0

// PolynomialCoordinates is an arbitrary curve represented by three
// independently fitted Chebyshev approximations for x(t), y(t) and z(t).
//
// There is no analytic abscissa; samplers integrate numerically.
type PolynomialCoordinates struct {
	x, y, z chebpoly.Polynomial
}

// evalPoly01 remaps the normalized t ∈ [0,1] onto the polynomial's own
// definition interval, evaluates, and applies the unit conversion.
func evalPoly01(t float64, p chebpoly.Polynomial) float64 {
	interval := p.DefinitionInterval()
	arg := interval[0]*(1-t) + interval[1]*t
	return p.Evaluate(arg) / unitDivisor
}

// Position implements Curved.
func (c *PolynomialCoordinates) Position(t float64) vecmath.Vec3 {
	return vecmath.Vec3{
		X: evalPoly01(t, c.x),
		Y: evalPoly01(t, c.y),
		Z: evalPoly01(t, c.z),
	}
}

// Speed implements Curved by numeric differentiation.
func (c *PolynomialCoordinates) Speed(t float64) vecmath.Vec3 {
	return NumericSpeed(c, t)
}

// Acceleration implements Curved by numeric differentiation.
func (c *PolynomialCoordinates) Acceleration(t float64) vecmath.Vec3 {
	return NumericAcceleration(c, t)
}

// Bounds implements Curved.
func (c *PolynomialCoordinates) Bounds() CurveBounds { return BoundsFinite }

// TMin implements Curved.
func (c *PolynomialCoordinates) TMin() float64 { return 0 }

// TMax implements Curved.
func (c *PolynomialCoordinates) TMax() float64 { return 1 }

// CurvilinearAbscissa implements Curved; no closed form exists.
func (c *PolynomialCoordinates) CurvilinearAbscissa(float64) (float64, bool) {
	return 0, false
}

// InverseCurvilinearAbscissa implements Curved; no closed form exists.
func (c *PolynomialCoordinates) InverseCurvilinearAbscissa(float64) (float64, bool) {
	return 0, false
}

// FirstTheta implements Curved.
func (c *PolynomialCoordinates) FirstTheta() (float64, bool) { return 0, false }

// LastTheta implements Curved.
func (c *PolynomialCoordinates) LastTheta() (float64, bool) { return 0, false }

// FullTurnAtT implements Curved.
func (c *PolynomialCoordinates) FullTurnAtT() (float64, bool) { return 0, false }

// IsTimeMapsSingleton implements Curved.
func (c *PolynomialCoordinates) IsTimeMapsSingleton() bool { return false }

// AbscissaConverter implements Curved.
func (c *PolynomialCoordinates) AbscissaConverter() (AbscissaConverter, bool) {
	return AbscissaConverter{}, false
}

// InterpolationKind selects how a coordinate polynomial is specified.
type InterpolationKind string

const (
	// InterpolationPointsValues fits a polynomial through sample points.
	InterpolationPointsValues InterpolationKind = "pointsValues"
	// InterpolationChebyshev supplies explicit Chebyshev coefficients.
	InterpolationChebyshev InterpolationKind = "chebyshev"
)

// interpolationTolerance is the fitting tolerance for point-value input.
const interpolationTolerance = 1e-4

// InterpolationDescriptor describes one coordinate polynomial, either as
// sample points to fit or as explicit coefficients.
type InterpolationDescriptor struct {
	Kind     InterpolationKind `json:"kind"`
	Points   []float64         `json:"points,omitempty"`
	Values   []float64         `json:"values,omitempty"`
	Coeffs   []float64         `json:"coeffs,omitempty"`
	Interval [2]float64        `json:"interval"`
}

func (d InterpolationDescriptor) clone() InterpolationDescriptor {
	d.Points = append([]float64(nil), d.Points...)
	d.Values = append([]float64(nil), d.Values...)
	d.Coeffs = append([]float64(nil), d.Coeffs...)
	return d
}

func (d *InterpolationDescriptor) instantiate() (chebpoly.Polynomial, error) {
	switch d.Kind {
	case InterpolationPointsValues:
		return chebpoly.Interpolate(d.Points, d.Values, interpolationTolerance)
	case InterpolationChebyshev:
		return chebpoly.FromCoeffs(d.Coeffs, d.Interval)
	default:
		return chebpoly.Polynomial{}, fmt.Errorf("curve: unknown interpolation kind %q", d.Kind)
	}
}

// PolynomialCoordinatesDescriptor is the persisted parameter set for a
// PolynomialCoordinates curve: one interpolation per coordinate.
type PolynomialCoordinatesDescriptor struct {
	X InterpolationDescriptor `json:"x"`
	Y InterpolationDescriptor `json:"y"`
	Z InterpolationDescriptor `json:"z"`
}

func (d PolynomialCoordinatesDescriptor) clone() PolynomialCoordinatesDescriptor {
	d.X = d.X.clone()
	d.Y = d.Y.clone()
	d.Z = d.Z.clone()
	return d
}

func (d *PolynomialCoordinatesDescriptor) instantiate() (*PolynomialCoordinates, error) {
	x, err := d.X.instantiate()
	if err != nil {
		return nil, fmt.Errorf("x coordinate: %w", err)
	}
	y, err := d.Y.instantiate()
	if err != nil {
		return nil, fmt.Errorf("y coordinate: %w", err)
	}
	z, err := d.Z.instantiate()
	if err != nil {
		return nil, fmt.Errorf("z coordinate: %w", err)
	}
	return &PolynomialCoordinates{x: x, y: y, z: z}, nil
}
