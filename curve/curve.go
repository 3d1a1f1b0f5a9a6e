package curve

import (
	"math"

	"github.com/hupe1980/nanocurve/vecmath"
)

// Tau is one full turn.
const Tau = 2 * math.Pi

// epsilonDerivative is the step used by the numeric fallbacks below.
const epsilonDerivative = 1e-6

// CurveBounds describes the shape of the admissible parameter domain.
type CurveBounds int

const (
	// BoundsFinite means t ∈ [TMin, TMax].
	BoundsFinite CurveBounds = iota
	// BoundsSemiInfinite means t ∈ [TMin, +∞); TMax is only the nominal end.
	BoundsSemiInfinite
	// BoundsBiInfinite means t ∈ (-∞, +∞); TMin and TMax are only the
	// nominal domain and callers may evaluate beyond them.
	BoundsBiInfinite
)

// String implements fmt.Stringer.
func (b CurveBounds) String() string {
	switch b {
	case BoundsFinite:
		return "finite"
	case BoundsSemiInfinite:
		return "semi-infinite"
	case BoundsBiInfinite:
		return "bi-infinite"
	default:
		return "unknown"
	}
}

// Curved is the contract every curve kind implements. It is the only
// interface the external geometry sampler uses; samplers never inspect
// concrete kinds.
//
// Operations returning (value, ok) report ok=false when no closed form
// exists; callers must then fall back to numeric evaluation (see
// NumericArcLength and InverseAbscissa).
type Curved interface {
	// Position maps a parameter t in [TMin, TMax] to a point in space.
	// It is continuous on the domain.
	Position(t float64) vecmath.Vec3

	// Speed is the first derivative of Position with respect to t.
	Speed(t float64) vecmath.Vec3

	// Acceleration is the second derivative of Position with respect to t.
	Acceleration(t float64) vecmath.Vec3

	// Bounds describes the admissible domain shape.
	Bounds() CurveBounds

	// TMin is the lower bound of the nominal domain.
	TMin() float64

	// TMax is the upper bound of the nominal domain.
	TMax() float64

	// CurvilinearAbscissa returns the arc length from TMin to t, when a
	// closed form exists.
	CurvilinearAbscissa(t float64) (float64, bool)

	// InverseCurvilinearAbscissa returns the t whose arc length from TMin
	// is x, when a closed form exists.
	InverseCurvilinearAbscissa(x float64) (float64, bool)

	// FirstTheta returns the angle at which the curve starts, for curves
	// with a periodic seam.
	FirstTheta() (float64, bool)

	// LastTheta returns the angle at which the curve ends, for curves with
	// a periodic seam.
	LastTheta() (float64, bool)

	// FullTurnAtT returns the parameter at which the curve closes on
	// itself, so callers avoid double-counting the wraparound.
	FullTurnAtT() (float64, bool)

	// IsTimeMapsSingleton reports whether the t ↔ arc-length map is
	// bijective, which lets callers pick a cheaper numeric inversion.
	IsTimeMapsSingleton() bool

	// AbscissaConverter returns the rescaling that aligns this curve's
	// abscissa with related curves, if the curve carries one.
	AbscissaConverter() (AbscissaConverter, bool)
}

// NumericSpeed approximates the first derivative of Position by central
// finite differences. Generators without an analytic derivative use it to
// implement Speed.
func NumericSpeed(c Curved, t float64) vecmath.Vec3 {
	p1 := c.Position(t + epsilonDerivative/2)
	p0 := c.Position(t - epsilonDerivative/2)
	return p1.Sub(p0).Div(epsilonDerivative)
}

// NumericAcceleration approximates the second derivative of Position by
// central finite differences.
func NumericAcceleration(c Curved, t float64) vecmath.Vec3 {
	p1 := c.Position(t + epsilonDerivative)
	p0 := c.Position(t)
	pm := c.Position(t - epsilonDerivative)
	return p1.Add(pm).Sub(p0.Mul(2)).Div(epsilonDerivative * epsilonDerivative)
}

// Curvature returns the curvature of c at t, the inverse radius of the
// osculating circle.
func Curvature(c Curved, t float64) float64 {
	speed := c.Speed(t)
	num := speed.Cross(c.Acceleration(t)).Length()
	den := math.Pow(speed.Length(), 3)
	return num / den
}
