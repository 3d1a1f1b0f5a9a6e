// Package curve defines the parametric-curve contract used to lay DNA
// helices along geometric paths, and the family of curve generators that
// implement it.
//
// A curve is a pure function of its serializable descriptor plus the shared
// HelixParameters. Instantiated curves are stateless: all operations are
// closed-form evaluations safe for concurrent use without synchronization.
//
// Arc length ("curvilinear abscissa") is the coordinate along which
// nucleotide spacing is kept physically correct. Generators with a closed
// form expose it directly; the others report it as unavailable and callers
// fall back to the numeric helpers in this package.
package curve
