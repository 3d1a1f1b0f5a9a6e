package store

import "github.com/hupe1980/nanocurve/vecmath"

// PlaneDescriptor describes an oriented reference plane of a design: an
// anchor point plus a rotation taking the world axes to the plane's axes.
// It is a plain value; copy-on-write duplicates it by assignment.
type PlaneDescriptor struct {
	// Position is the anchor point of the plane, in nm.
	Position vecmath.Vec3 `json:"position"`
	// Orientation rotates the world frame onto the plane frame.
	Orientation vecmath.Quat `json:"orientation"`
}

// Normal returns the plane's unit normal, the rotated world Z axis.
func (p PlaneDescriptor) Normal() vecmath.Vec3 {
	return p.Orientation.Rotate(vecmath.V3(0, 0, 1))
}

// Project returns the orthogonal projection of v onto the plane.
func (p PlaneDescriptor) Project(v vecmath.Vec3) vecmath.Vec3 {
	n := p.Normal()
	d := v.Sub(p.Position).Dot(n)
	return v.Sub(n.Mul(d))
}

// Planes is the design's collection of reference planes.
type Planes = Store[PlaneDescriptor]

// NewPlanes creates an empty plane collection.
func NewPlanes() *Planes { return New[PlaneDescriptor]() }
