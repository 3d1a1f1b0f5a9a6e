package curve

import (
	"math"

	"github.com/hupe1980/nanocurve/vecmath"
)

// SphereConcentricCircle is a latitude circle on a sphere, indexed by an
// integer helix index: 0 is the equator, positive indices lie above it,
// negative below. An optional half-index shift centers the equator between
// two helices.
//
// The latitude angle is φ = π/2 − index·gap/radius; the projected circle has
// radius r·sin φ at height r·cos φ.
type SphereConcentricCircle struct {
	radius              float64
	theta0              float64
	helixIndex          float64
	numberOfHelices     int
	interHelixCenterGap float64
	phi                 float64
	zRadius             float64
	z                   float64
	perimeter           float64
	open                bool
	converterFactor     float64
	targetNT            int
	hasTargetNT         bool
}

// ZRadius returns the projected circle radius.
func (c *SphereConcentricCircle) ZRadius() float64 { return c.zRadius }

// Z returns the height of the latitude circle.
func (c *SphereConcentricCircle) Z() float64 { return c.z }

// Phi returns the latitude angle.
func (c *SphereConcentricCircle) Phi() float64 { return c.phi }

// NumberOfHelices returns the helix count of the concentric arrangement.
func (c *SphereConcentricCircle) NumberOfHelices() int { return c.numberOfHelices }

func (c *SphereConcentricCircle) theta(t float64) float64 {
	return t*Tau + c.theta0
}

// Position implements Curved.
func (c *SphereConcentricCircle) Position(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: c.zRadius * math.Cos(theta),
		Y: c.zRadius * math.Sin(theta),
		Z: c.z,
	}
}

// Speed implements Curved.
func (c *SphereConcentricCircle) Speed(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: -c.zRadius * Tau * math.Sin(theta),
		Y: c.zRadius * Tau * math.Cos(theta),
	}
}

// Acceleration implements Curved.
func (c *SphereConcentricCircle) Acceleration(t float64) vecmath.Vec3 {
	theta := c.theta(t)
	return vecmath.Vec3{
		X: -c.zRadius * Tau * Tau * math.Cos(theta),
		Y: -c.zRadius * Tau * Tau * math.Sin(theta),
	}
}

// Bounds implements Curved.
func (c *SphereConcentricCircle) Bounds() CurveBounds { return BoundsFinite }

// TMin implements Curved.
func (c *SphereConcentricCircle) TMin() float64 { return 0 }

// TMax implements Curved.
func (c *SphereConcentricCircle) TMax() float64 { return 1 }

// CurvilinearAbscissa implements Curved. The closed form mirrors CircleCurve
// scaled by the projected radius.
func (c *SphereConcentricCircle) CurvilinearAbscissa(t float64) (float64, bool) {
	return c.zRadius * Tau * t, true
}

// InverseCurvilinearAbscissa implements Curved.
func (c *SphereConcentricCircle) InverseCurvilinearAbscissa(x float64) (float64, bool) {
	return x / Tau / c.zRadius, true
}

// FirstTheta implements Curved.
func (c *SphereConcentricCircle) FirstTheta() (float64, bool) { return c.theta0, true }

// LastTheta implements Curved.
func (c *SphereConcentricCircle) LastTheta() (float64, bool) { return c.theta(1), true }

// FullTurnAtT implements Curved. The circle is closed unless the descriptor
// explicitly opened it.
func (c *SphereConcentricCircle) FullTurnAtT() (float64, bool) {
	if c.open {
		return 0, false
	}
	return c.TMax(), true
}

// IsTimeMapsSingleton implements Curved.
func (c *SphereConcentricCircle) IsTimeMapsSingleton() bool { return false }

// AbscissaConverter implements Curved.
func (c *SphereConcentricCircle) AbscissaConverter() (AbscissaConverter, bool) {
	return LinearConverter(c.converterFactor), true
}

// TargetNucleotideCount returns the descriptor's pinned nucleotide count.
func (c *SphereConcentricCircle) TargetNucleotideCount() (int, bool) {
	return c.targetNT, c.hasTargetNT
}

// SphereConcentricCircleDescriptor is the persisted parameter set for a
// SphereConcentricCircle.
type SphereConcentricCircleDescriptor struct {
	// Radius of the sphere, in nm.
	Radius float64 `json:"radius"`
	// Theta0 is the phase angle at t = 0, in radians.
	Theta0 float64 `json:"theta0"`
	// HelixIndex selects the latitude: 0 is the equator, negative below it,
	// positive above.
	HelixIndex int `json:"helixIndex"`
	// HelixIndexShift offsets the index; -0.5 centers the equator between
	// two helices.
	HelixIndexShift *float64 `json:"helixIndexShift,omitempty"`
	// NumberOfHelices of the concentric arrangement; it does not affect the
	// latitude geometry. Defaults to DefaultSphereCircleHelices.
	NumberOfHelices *int `json:"numberOfHelices,omitempty"`
	// InterHelixCenterGap is the spacing between latitudes, in nm. Defaults
	// to the HelixParameters center gap.
	InterHelixCenterGap *float64 `json:"interHelixCenterGap,omitempty"`
	// IsClosed marks whether the curve wraps around; defaults to true.
	IsClosed *bool `json:"isClosed,omitempty"`
	// TargetNbNT pins the number of nucleotides laid on the circle.
	TargetNbNT *int `json:"targetNbNt,omitempty"`
	// AbscissaConverterFactor aligns this circle's abscissa scale with its
	// neighbors. Defaults to 1.
	AbscissaConverterFactor *float64 `json:"abscissaConverterFactor,omitempty"`
}

func (d SphereConcentricCircleDescriptor) clone() SphereConcentricCircleDescriptor {
	d.HelixIndexShift = clonePtr(d.HelixIndexShift)
	d.NumberOfHelices = clonePtr(d.NumberOfHelices)
	d.InterHelixCenterGap = clonePtr(d.InterHelixCenterGap)
	d.IsClosed = clonePtr(d.IsClosed)
	d.TargetNbNT = clonePtr(d.TargetNbNT)
	d.AbscissaConverterFactor = clonePtr(d.AbscissaConverterFactor)
	return d
}

func (d *SphereConcentricCircleDescriptor) instantiate(params *HelixParameters) *SphereConcentricCircle {
	index := float64(d.HelixIndex)
	if d.HelixIndexShift != nil {
		index += *d.HelixIndexShift
	}
	gap := params.InterHelixCenterGap
	if d.InterHelixCenterGap != nil {
		gap = *d.InterHelixCenterGap
	}
	helices := DefaultSphereCircleHelices
	if d.NumberOfHelices != nil {
		helices = *d.NumberOfHelices
	}

	phi := math.Pi/2 - index*gap/d.Radius
	zRadius := d.Radius * math.Sin(phi)
	z := d.Radius * math.Cos(phi)

	c := &SphereConcentricCircle{
		radius:              d.Radius,
		theta0:              d.Theta0,
		helixIndex:          index,
		numberOfHelices:     helices,
		interHelixCenterGap: gap,
		phi:                 phi,
		zRadius:             zRadius,
		z:                   z,
		perimeter:           Tau * zRadius,
		converterFactor:     1,
	}
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
