package curve

import (
	"math"

	"github.com/hupe1980/nanocurve/vecmath"
)

// SpiralCylinder is one strand of an N-helix bundle wound on a cylinder.
// Given the inter-helix axis gap g, helix count N and radius r, the winding
// slope is s = N·g/(2π·r); the rise per turn is N·g/sqrt(1−s²). The helical
// pitch is constant, so the curvilinear abscissa is exactly linear in t.
//
// The nominal domain is [-1, turns+1]: one extra turn of margin at each end
// beyond the requested turn count.
type SpiralCylinder struct {
	theta0            float64
	radius            float64
	numberOfTurns     float64
	numberOfHelices   int
	helixIndex        int
	interHelixAxisGap float64
	risePerTurn       float64
	// dAbscissa is the derivative of the curvilinear abscissa by t.
	dAbscissa float64
}

// newSpiralCylinder validates the winding slope and derives the helix pitch.
// It fails with ErrRadiusTooSmall when the requested gap cannot fit at that
// radius.
func newSpiralCylinder(theta0, radius, turns float64, helices, index int, axisGap float64) (*SpiralCylinder, error) {
	slope := float64(helices) * axisGap / Tau / radius
	if slope >= 1 {
		return nil, &ErrRadiusTooSmall{
			Radius:            radius,
			InterHelixAxisGap: axisGap,
			NumberOfHelices:   helices,
		}
	}
	risePerTurn := float64(helices) * axisGap / math.Sqrt(1-slope*slope)
	rt := radius * Tau
	return &SpiralCylinder{
		theta0:            theta0,
		radius:            radius,
		numberOfTurns:     turns,
		numberOfHelices:   helices,
		helixIndex:        index % helices,
		interHelixAxisGap: axisGap,
		risePerTurn:       risePerTurn,
		dAbscissa:         math.Sqrt(rt*rt + risePerTurn*risePerTurn),
	}, nil
}

// RisePerTurn returns the axial rise of one full turn.
func (c *SpiralCylinder) RisePerTurn() float64 { return c.risePerTurn }

func (c *SpiralCylinder) theta(t float64) float64 {
	return t*Tau + c.theta0 + Tau*float64(c.helixIndex)/float64(c.numberOfHelices)
}

// Position implements Curved.
func (c *SpiralCylinder) Position(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: c.radius * math.Cos(theta),
		Y: c.radius * math.Sin(theta),
		Z: c.risePerTurn * t,
	}
}

// Speed implements Curved.
func (c *SpiralCylinder) Speed(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: -c.radius * Tau * math.Sin(theta),
		Y: c.radius * Tau * math.Cos(theta),
		Z: c.risePerTurn,
	}
}

// Acceleration implements Curved.
func (c *SpiralCylinder) Acceleration(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: -c.radius * Tau * Tau * math.Cos(theta),
		Y: -c.radius * Tau * Tau * math.Sin(theta),
	}
}

// Bounds implements Curved. The spiral extends beyond its nominal domain in
// both directions.
func (c *SpiralCylinder) Bounds() CurveBounds { return BoundsBiInfinite }

// TMin implements Curved.
func (c *SpiralCylinder) TMin() float64 { return -1 }

// TMax implements Curved.
func (c *SpiralCylinder) TMax() float64 { return c.numberOfTurns + 1 }

// CurvilinearAbscissa implements Curved. The constant pitch makes the arc
// length exactly linear in t.
func (c *SpiralCylinder) CurvilinearAbscissa(t float64) (float64, bool) {
	return c.dAbscissa * (t - c.TMin()), true
}

// InverseCurvilinearAbscissa implements Curved.
func (c *SpiralCylinder) InverseCurvilinearAbscissa(x float64) (float64, bool) {
	return x/c.dAbscissa + c.TMin(), true
}

// FirstTheta implements Curved.
func (c *SpiralCylinder) FirstTheta() (float64, bool) { return 0, false }

// LastTheta implements Curved.
func (c *SpiralCylinder) LastTheta() (float64, bool) { return 0, false }

// FullTurnAtT implements Curved.
func (c *SpiralCylinder) FullTurnAtT() (float64, bool) { return 1, true }

// IsTimeMapsSingleton implements Curved. The t ↔ arc-length map is bijective.
func (c *SpiralCylinder) IsTimeMapsSingleton() bool { return true }

// AbscissaConverter implements Curved.
func (c *SpiralCylinder) AbscissaConverter() (AbscissaConverter, bool) {
	return AbscissaConverter{}, false
}

// SpiralCylinderDescriptor is the persisted parameter set for a
// SpiralCylinder.
type SpiralCylinderDescriptor struct {
	// Theta0 is the phase angle at t = 0, in radians.
	Theta0 float64 `json:"theta0"`
	// Radius of the cylinder, in nm.
	Radius float64 `json:"radius"`
	// NumberOfTurns is the nominal turn count of the strand.
	NumberOfTurns float64 `json:"numberOfTurns"`
	// NumberOfHelices of the bundle; defaults to
	// DefaultSpiralCylinderHelices.
	NumberOfHelices *int `json:"numberOfHelices,omitempty"`
	// HelixIndex selects the strand, modulo the helix count.
	HelixIndex int `json:"helixIndex"`
	// InterHelixAxisGap is the axial spacing between strands, in nm.
	// Defaults to the HelixParameters axis gap.
	InterHelixAxisGap *float64 `json:"interHelixAxisGap,omitempty"`
}

func (d SpiralCylinderDescriptor) clone() SpiralCylinderDescriptor {
	d.NumberOfHelices = clonePtr(d.NumberOfHelices)
	d.InterHelixAxisGap = clonePtr(d.InterHelixAxisGap)
	return d
}

func (d *SpiralCylinderDescriptor) instantiate(params *HelixParameters) (*SpiralCylinder, error) {
	helices := DefaultSpiralCylinderHelices
	if d.NumberOfHelices != nil {
		helices = *d.NumberOfHelices
	}
	gap := params.InterHelixAxisGap
	if d.InterHelixAxisGap != nil {
		gap = *d.InterHelixAxisGap
	}
	return newSpiralCylinder(d.Theta0, d.Radius, d.NumberOfTurns, helices, d.HelixIndex, gap)
}
