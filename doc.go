// Package nanocurve generates the geometric paths DNA helices follow in a
// nanostructure design.
//
// A design is a set of curve descriptors (circles, sphere latitudes, spiral
// cylinders, torus cross-sections, Chebyshev-fitted free curves) plus shared
// helix parameters. Descriptors instantiate into runtime curves implementing
// the curve.Curved contract, which a path sampler walks to place nucleotides
// at physically correct spacing via curvilinear-abscissa reparametrization.
//
// Design state lives in versioned copy-on-write stores: one writer mutates
// through a session while any number of readers keep stable snapshots.
// Designs save to self-describing files (codec and compression recorded in
// the header).
package nanocurve
