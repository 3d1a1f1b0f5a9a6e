package curve

import (
	"math"

	"github.com/hupe1980/nanocurve/vecmath"
)

// SphereTennisBallSeam is the closed seam curve of a sphere, made of four
// arcs alternating between two latitude half-circles and two meridian
// half-circles. The curve is parametrized directly by arc length, so the
// curvilinear abscissa is the identity.
type SphereTennisBallSeam struct {
	theta0      float64
	zRadius     float64
	z           float64
	phi         float64
	t1, t2, t3  float64
	perimeter   float64
	targetNT    int
	hasTargetNT bool
}

// Perimeter returns the total seam length.
func (c *SphereTennisBallSeam) Perimeter() float64 { return c.perimeter }

// remEuclid is the positive remainder of t modulo m.
func remEuclid(t, m float64) float64 {
	r := math.Mod(t, m)
	if r < 0 {
		r += m
	}
	return r
}

// rotZ rotates v around the sphere axis by the seam's phase angle.
func (c *SphereTennisBallSeam) rotZ(v vecmath.Vec3) vecmath.Vec3 {
	sin, cos := math.Sincos(c.theta0)
	return vecmath.Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Position implements Curved.
func (c *SphereTennisBallSeam) Position(t float64) vecmath.Vec3 {
	return c.rotZ(c.positionLocal(t))
}

func (c *SphereTennisBallSeam) positionLocal(t float64) vecmath.Vec3 {
	t = remEuclid(t, c.perimeter)
	switch {
	case t < c.t1:
		u := t / c.zRadius
		return vecmath.Vec3{
			X: c.zRadius * math.Cos(u),
			Y: c.zRadius * math.Sin(u),
			Z: c.z,
		}
	case t < c.t2:
		u := (t - c.t1) / c.z
		return vecmath.Vec3{
			X: -c.zRadius,
			Y: -c.z * math.Sin(u),
			Z: c.z * math.Cos(u),
		}
	case t < c.t3:
		u := (t - c.t2) / c.zRadius
		return vecmath.Vec3{
			X: -c.zRadius * math.Cos(u),
			Y: c.zRadius * math.Sin(u),
			Z: -c.z,
		}
	default:
		u := (t - c.t3) / c.z
		return vecmath.Vec3{
			X: c.zRadius,
			Y: -c.z * math.Sin(u),
			Z: -c.z * math.Cos(u),
		}
	}
}

// Speed implements Curved. The parametrization is unit-speed, so each arc's
// derivative has magnitude one.
func (c *SphereTennisBallSeam) Speed(t float64) vecmath.Vec3 {
	return c.rotZ(c.speedLocal(t))
}

func (c *SphereTennisBallSeam) speedLocal(t float64) vecmath.Vec3 {
	t = remEuclid(t, c.perimeter)
	switch {
	case t < c.t1:
		u := t / c.zRadius
		return vecmath.Vec3{X: -math.Sin(u), Y: math.Cos(u)}
	case t < c.t2:
		u := (t - c.t1) / c.z
		return vecmath.Vec3{Y: -math.Cos(u), Z: -math.Sin(u)}
	case t < c.t3:
		u := (t - c.t2) / c.zRadius
		return vecmath.Vec3{X: math.Sin(u), Y: math.Cos(u)}
	default:
		u := (t - c.t3) / c.z
		return vecmath.Vec3{Y: -math.Cos(u), Z: math.Sin(u)}
	}
}

// Acceleration implements Curved.
func (c *SphereTennisBallSeam) Acceleration(t float64) vecmath.Vec3 {
	return c.rotZ(c.accelerationLocal(t))
}

func (c *SphereTennisBallSeam) accelerationLocal(t float64) vecmath.Vec3 {
	t = remEuclid(t, c.perimeter)
	switch {
	case t < c.t1:
		u := t / c.zRadius
		return vecmath.Vec3{X: -math.Cos(u) / c.zRadius, Y: -math.Sin(u) / c.zRadius}
	case t < c.t2:
		u := (t - c.t1) / c.z
		return vecmath.Vec3{Y: math.Sin(u) / c.z, Z: -math.Cos(u) / c.z}
	case t < c.t3:
		u := (t - c.t2) / c.zRadius
		return vecmath.Vec3{X: math.Cos(u) / c.zRadius, Y: -math.Sin(u) / c.zRadius}
	default:
		u := (t - c.t3) / c.z
		return vecmath.Vec3{Y: math.Sin(u) / c.z, Z: math.Cos(u) / c.z}
	}
}

// Bounds implements Curved.
func (c *SphereTennisBallSeam) Bounds() CurveBounds { return BoundsFinite }

// TMin implements Curved.
func (c *SphereTennisBallSeam) TMin() float64 { return 0 }

// TMax implements Curved.
func (c *SphereTennisBallSeam) TMax() float64 { return c.perimeter }

// CurvilinearAbscissa implements Curved; the parameter is the arc length.
func (c *SphereTennisBallSeam) CurvilinearAbscissa(t float64) (float64, bool) {
	return t, true
}

// InverseCurvilinearAbscissa implements Curved.
func (c *SphereTennisBallSeam) InverseCurvilinearAbscissa(x float64) (float64, bool) {
	return x, true
}

// FirstTheta implements Curved.
func (c *SphereTennisBallSeam) FirstTheta() (float64, bool) { return 0, false }

// LastTheta implements Curved.
func (c *SphereTennisBallSeam) LastTheta() (float64, bool) { return 0, false }

// FullTurnAtT implements Curved; the seam is closed.
func (c *SphereTennisBallSeam) FullTurnAtT() (float64, bool) { return c.TMax(), true }

// IsTimeMapsSingleton implements Curved.
func (c *SphereTennisBallSeam) IsTimeMapsSingleton() bool { return false }

// AbscissaConverter implements Curved.
func (c *SphereTennisBallSeam) AbscissaConverter() (AbscissaConverter, bool) {
	return AbscissaConverter{}, false
}

// TargetNucleotideCount returns the descriptor's pinned nucleotide count.
func (c *SphereTennisBallSeam) TargetNucleotideCount() (int, bool) {
	return c.targetNT, c.hasTargetNT
}

// SphereTennisBallSeamDescriptor is the persisted parameter set for a
// SphereTennisBallSeam.
type SphereTennisBallSeamDescriptor struct {
	// Radius of the sphere, in nm.
	Radius float64 `json:"radius"`
	// Theta0Deg is the phase angle at t = 0, in degrees.
	Theta0Deg float64 `json:"theta0Deg"`
	// PhiDeg is the seam latitude, in degrees; 0 is the equator.
	PhiDeg float64 `json:"phiDeg"`
	// TargetNbNT pins the number of nucleotides laid on the seam.
	TargetNbNT *int `json:"targetNbNt,omitempty"`
}

func (d SphereTennisBallSeamDescriptor) clone() SphereTennisBallSeamDescriptor {
	d.TargetNbNT = clonePtr(d.TargetNbNT)
	return d
}

func (d *SphereTennisBallSeamDescriptor) instantiate() *SphereTennisBallSeam {
	theta0 := d.Theta0Deg * math.Pi / 180
	phi := d.PhiDeg * math.Pi / 180
	zRadius := d.Radius * math.Cos(phi)
	z := d.Radius * math.Sin(phi)
	t1 := math.Pi * zRadius
	t2 := t1 + math.Pi*z
	t3 := t2 + math.Pi*zRadius

	c := &SphereTennisBallSeam{
		theta0:    theta0,
		zRadius:   zRadius,
		z:         z,
		phi:       phi,
		t1:        t1,
		t2:        t2,
		t3:        t3,
		perimeter: t3 + math.Pi*z,
	}
	if d.TargetNbNT != nil {
		c.targetNT = *d.TargetNbNT
		c.hasTargetNT = true
	}
	return c
}
