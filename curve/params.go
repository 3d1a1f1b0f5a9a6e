package curve

// Default geometry constants for B-DNA, in nanometers.
const (
	// DefaultRise is the rise per base pair.
	DefaultRise = 0.332
	// DefaultHelixDiameter is the diameter of a double helix.
	DefaultHelixDiameter = 2.0
	// DefaultInterHelixAxisGap is the default distance between the axes of
	// two neighboring helices.
	DefaultInterHelixAxisGap = 2.65
	// DefaultInterHelixCenterGap is the default center-to-center distance
	// used by concentric-circle curves.
	DefaultInterHelixCenterGap = 2.65
)

// HelixParameters is the read-only geometric configuration shared by all
// curve instantiations. It is supplied by the surrounding design and passed
// by reference; curves never mutate it.
type HelixParameters struct {
	// Rise is the distance between consecutive base pairs along the helix
	// axis, in nm.
	Rise float64 `json:"rise"`
	// HelixDiameter is the diameter of a helix, in nm.
	HelixDiameter float64 `json:"helixDiameter"`
	// InterHelixAxisGap is the distance between the axes of neighboring
	// helices, in nm.
	InterHelixAxisGap float64 `json:"interHelixAxisGap"`
	// InterHelixCenterGap is the center-to-center distance between
	// neighboring helices of a concentric arrangement, in nm.
	InterHelixCenterGap float64 `json:"interHelixCenterGap"`
}

// DefaultHelixParameters returns the B-DNA defaults.
func DefaultHelixParameters() HelixParameters {
	return HelixParameters{
		Rise:                DefaultRise,
		HelixDiameter:       DefaultHelixDiameter,
		InterHelixAxisGap:   DefaultInterHelixAxisGap,
		InterHelixCenterGap: DefaultInterHelixCenterGap,
	}
}
