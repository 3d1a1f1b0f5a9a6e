package curve

// Kind identifies a concrete curve kind. The set of kinds is closed: adding
// one means extending the dispatch in Instantiate.
type Kind string

const (
	// KindCircle is a planar circle at fixed height.
	KindCircle Kind = "circle"
	// KindSphereConcentricCircle is a latitude circle on a sphere.
	KindSphereConcentricCircle Kind = "sphereConcentricCircle"
	// KindSpiralCylinder is one strand of an N-helix bundle on a cylinder.
	KindSpiralCylinder Kind = "spiralCylinder"
	// KindTorusConcentricCircle is one helix around a torus cross-section.
	KindTorusConcentricCircle Kind = "torusConcentricCircle"
	// KindChebyshev is an arbitrary curve fitted by Chebyshev polynomials.
	KindChebyshev Kind = "chebyshev"
	// KindSphereTennisBallSeam is the tennis-ball seam of a sphere.
	KindSphereTennisBallSeam Kind = "sphereTennisBallSeam"
)

// Default helix counts per curve kind. They are independent, historical
// constants; do not unify them.
const (
	DefaultSpiralCylinderHelices = 2
	DefaultSphereCircleHelices   = 3
	DefaultTorusCircleHelices    = 6
)

// CurveDescriptor is the persisted, user-facing parameter set of a curve: a
// closed tagged union with one payload field per kind. Descriptors are
// immutable once read; an edit produces a new value.
//
// Exactly the payload matching Kind must be set. Instantiation is a pure
// function of the descriptor plus the shared HelixParameters and is
// recomputed whenever either input changes; instantiated curves are never
// persisted.
type CurveDescriptor struct {
	Kind Kind `json:"kind"`

	Circle                 *CircleCurveDescriptor           `json:"circle,omitempty"`
	SphereConcentricCircle *SphereConcentricCircleDescriptor `json:"sphereConcentricCircle,omitempty"`
	SpiralCylinder         *SpiralCylinderDescriptor        `json:"spiralCylinder,omitempty"`
	TorusConcentricCircle  *TorusConcentricCircleDescriptor `json:"torusConcentricCircle,omitempty"`
	Chebyshev              *PolynomialCoordinatesDescriptor `json:"chebyshev,omitempty"`
	TennisBallSeam         *SphereTennisBallSeamDescriptor  `json:"tennisBallSeam,omitempty"`
}

// clonePtr duplicates an optional descriptor field.
func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	dup := *p
	return &dup
}

// Clone returns a deep copy of the descriptor: the payload and every
// optional field are duplicated, never shared. The store's copy-on-write
// relies on it to keep published snapshots isolated from edits.
func (d CurveDescriptor) Clone() CurveDescriptor {
	out := CurveDescriptor{Kind: d.Kind}
	if d.Circle != nil {
		c := d.Circle.clone()
		out.Circle = &c
	}
	if d.SphereConcentricCircle != nil {
		c := d.SphereConcentricCircle.clone()
		out.SphereConcentricCircle = &c
	}
	if d.SpiralCylinder != nil {
		c := d.SpiralCylinder.clone()
		out.SpiralCylinder = &c
	}
	if d.TorusConcentricCircle != nil {
		c := d.TorusConcentricCircle.clone()
		out.TorusConcentricCircle = &c
	}
	if d.Chebyshev != nil {
		c := d.Chebyshev.clone()
		out.Chebyshev = &c
	}
	if d.TennisBallSeam != nil {
		c := d.TennisBallSeam.clone()
		out.TennisBallSeam = &c
	}
	return out
}

// Instantiate builds the runtime curve for the descriptor. Geometrically
// invalid parameters fail here, before any geometry is generated, and no
// partial curve is returned.
func (d *CurveDescriptor) Instantiate(params *HelixParameters) (Curved, error) {
	switch d.Kind {
	case KindCircle:
		if d.Circle == nil {
			return nil, ErrMissingPayload
		}
		return d.Circle.instantiate(), nil

	case KindSphereConcentricCircle:
		if d.SphereConcentricCircle == nil {
			return nil, ErrMissingPayload
		}
		return d.SphereConcentricCircle.instantiate(params), nil

	case KindSpiralCylinder:
		if d.SpiralCylinder == nil {
			return nil, ErrMissingPayload
		}
		return d.SpiralCylinder.instantiate(params)

	case KindTorusConcentricCircle:
		if d.TorusConcentricCircle == nil {
			return nil, ErrMissingPayload
		}
		return d.TorusConcentricCircle.instantiate(params), nil

	case KindChebyshev:
		if d.Chebyshev == nil {
			return nil, ErrMissingPayload
		}
		return d.Chebyshev.instantiate()

	case KindSphereTennisBallSeam:
		if d.TennisBallSeam == nil {
			return nil, ErrMissingPayload
		}
		return d.TennisBallSeam.instantiate(), nil

	default:
		return nil, &ErrUnknownKind{Kind: d.Kind}
	}
}
