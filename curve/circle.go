package curve

import (
	"math"

	"github.com/hupe1980/nanocurve/vecmath"
)

// CircleCurve is a planar circle of a given radius at a fixed height. The
// angle grows as θ(t) = 2πt, so one full turn spans t ∈ [0, 1].
//
// A circle built as the cross-section of a torus carries an abscissa
// conversion factor so all helices of the torus share one abscissa scale.
type CircleCurve struct {
	radius          float64
	z               float64
	perimeter       float64
	converterFactor float64
	open            bool
	targetNT        int
	hasTargetNT     bool
}

// NewCircleCurve returns a circle of the given radius at height z.
func NewCircleCurve(radius, z float64) *CircleCurve {
	return &CircleCurve{
		radius:          radius,
		z:               z,
		perimeter:       Tau * radius,
		converterFactor: 1,
	}
}

// Radius returns the circle radius.
func (c *CircleCurve) Radius() float64 { return c.radius }

// Perimeter returns the circle perimeter.
func (c *CircleCurve) Perimeter() float64 { return c.perimeter }

func (c *CircleCurve) theta(t float64) float64 { return t * Tau }

// Position implements Curved.
func (c *CircleCurve) Position(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: c.radius * math.Cos(theta),
		Y: c.radius * math.Sin(theta),
		Z: c.z,
	}
}

// Speed implements Curved.
func (c *CircleCurve) Speed(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: -c.radius * Tau * math.Sin(theta),
		Y: c.radius * Tau * math.Cos(theta),
	}
}

// Acceleration implements Curved.
func (c *CircleCurve) Acceleration(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: -c.radius * Tau * Tau * math.Cos(theta),
		Y: -c.radius * Tau * Tau * math.Sin(theta),
	}
}

// Bounds implements Curved.
func (c *CircleCurve) Bounds() CurveBounds { return BoundsFinite }

// TMin implements Curved.
func (c *CircleCurve) TMin() float64 { return 0 }

// TMax implements Curved.
func (c *CircleCurve) TMax() float64 { return 1 }

// CurvilinearAbscissa implements Curved. The closed form is radius·2π·t.
func (c *CircleCurve) CurvilinearAbscissa(t float64) (float64, bool) {
	return c.radius * Tau * t, true
}

// InverseCurvilinearAbscissa implements Curved.
func (c *CircleCurve) InverseCurvilinearAbscissa(x float64) (float64, bool) {
	return x / Tau / c.radius, true
}

// FirstTheta implements Curved.
func (c *CircleCurve) FirstTheta() (float64, bool) { return 0, true }

// LastTheta implements Curved.
func (c *CircleCurve) LastTheta() (float64, bool) { return c.theta(1), true }

// FullTurnAtT implements Curved.
func (c *CircleCurve) FullTurnAtT() (float64, bool) {
	if c.open {
		return 0, false
	}
	return c.TMax(), true
}

// IsTimeMapsSingleton implements Curved.
func (c *CircleCurve) IsTimeMapsSingleton() bool { return false }

// AbscissaConverter implements Curved.
func (c *CircleCurve) AbscissaConverter() (AbscissaConverter, bool) {
	return LinearConverter(c.converterFactor), true
}

// TargetNucleotideCount returns the number of nucleotides this circle should
// carry, when the descriptor pinned one.
func (c *CircleCurve) TargetNucleotideCount() (int, bool) {
	return c.targetNT, c.hasTargetNT
}

// CircleCurveDescriptor is the persisted parameter set for a CircleCurve.
type CircleCurveDescriptor struct {
	// Radius of the circle, in nm.
	Radius float64 `json:"radius"`
	// Z is the height of the circle plane, in nm.
	Z float64 `json:"z"`
	// AbscissaConverterFactor aligns this circle's nucleotide spacing with a
	// circle of different size. Defaults to 1.
	AbscissaConverterFactor *float64 `json:"abscissaConverterFactor,omitempty"`
	// IsClosed marks whether the curve wraps around; defaults to true.
	IsClosed *bool `json:"isClosed,omitempty"`
	// TargetNbNT pins the number of nucleotides laid on the circle.
	TargetNbNT *int `json:"targetNbNt,omitempty"`
}

func (d CircleCurveDescriptor) clone() CircleCurveDescriptor {
	d.AbscissaConverterFactor = clonePtr(d.AbscissaConverterFactor)
	d.IsClosed = clonePtr(d.IsClosed)
	d.TargetNbNT = clonePtr(d.TargetNbNT)
	return d
}

func (d *CircleCurveDescriptor) instantiate() *CircleCurve {
	c := NewCircleCurve(d.Radius, d.Z)
	if d.AbscissaConverterFactor != nil {
		c.converterFactor = *d.AbscissaConverterFactor
	}
	if d.IsClosed != nil && !*d.IsClosed {
		c.open = true
	}
	if d.TargetNbNT != nil {
		c.targetNT = *d.TargetNbNT
		c.hasTargetNT = true
	}
	return c
}
