package curve

import "math"

// TorusConcentricCircleDescriptor describes one helix of a bundle arranged
// around the cross-section of a torus. The cross-section ("tube") radius is
// derived from the number of helices and the gap between their centers:
// every helix sits on a circle whose chord to its neighbor equals the gap.
//
// Instantiation produces an equivalent CircleCurve: the circle of radius
// major − tube·cos φ at height tube·sin φ, where φ is the phase angle of the
// helix around the tube. The circle carries the abscissa conversion factor
// circleRadius/(major+tube), always ≤ 1, so every helix of the torus shares
// one common abscissa scale despite differing circumferences.
type TorusConcentricCircleDescriptor struct {
	// Radius is the major radius of the torus, in nm.
	Radius float64 `json:"radius"`
	// NumberOfHelices determines the tube radius together with the center
	// gap. Defaults to DefaultTorusCircleHelices.
	NumberOfHelices *int `json:"numberOfHelices,omitempty"`
	// HelixIndex is the position around the tube cross-section; 0 is the
	// equator point nearest the torus axis, counted clockwise modulo the
	// helix count.
	HelixIndex int `json:"helixIndex"`
	// HelixIndexShift offsets the index; -0.5 centers the equator between
	// two helices.
	HelixIndexShift *float64 `json:"helixIndexShift,omitempty"`
	// InterHelixCenterGap is the distance between neighboring helix
	// centers, in nm. Defaults to the HelixParameters axis gap.
	InterHelixCenterGap *float64 `json:"interHelixCenterGap,omitempty"`
}

// SectionRadius returns the tube radius for n helices whose centers are gap
// apart: gap / (2·sin(π/n)).
func SectionRadius(gap float64, n int) float64 {
	interHelixAngle := Tau / float64(n)
	return gap / 2 / math.Sin(interHelixAngle/2)
}

func (d TorusConcentricCircleDescriptor) clone() TorusConcentricCircleDescriptor {
	d.NumberOfHelices = clonePtr(d.NumberOfHelices)
	d.HelixIndexShift = clonePtr(d.HelixIndexShift)
	d.InterHelixCenterGap = clonePtr(d.InterHelixCenterGap)
	return d
}

func (d *TorusConcentricCircleDescriptor) instantiate(params *HelixParameters) *CircleCurve {
	gap := params.InterHelixAxisGap
	if d.InterHelixCenterGap != nil {
		gap = *d.InterHelixCenterGap
	}
	n := DefaultTorusCircleHelices
	if d.NumberOfHelices != nil {
		n = *d.NumberOfHelices
	}
	shift := 0.0
	if d.HelixIndexShift != nil {
		shift = *d.HelixIndexShift
	}

	interHelixAngle := Tau / float64(n)
	sectionRadius := SectionRadius(gap, n)
	phi := interHelixAngle * (float64(d.HelixIndex) + shift)
	circleRadius := d.Radius - sectionRadius*math.Cos(phi)
	z := sectionRadius * math.Sin(phi)

	c := NewCircleCurve(circleRadius, z)
	c.converterFactor = circleRadius / (d.Radius + sectionRadius)
	return c
}
