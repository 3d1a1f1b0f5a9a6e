package curve

// AbscissaConverter is a pure linear rescaling applied on top of a curve's
// native arc length, so that several related curves (e.g. the concentric
// circles of a torus) can be queried on one shared abscissa scale.
type AbscissaConverter struct {
	Factor float64 `json:"factor"`
}

// IdentityConverter returns the converter that leaves abscissas unchanged.
func IdentityConverter() AbscissaConverter {
	return AbscissaConverter{Factor: 1}
}

// LinearConverter returns a converter that scales shared abscissas by
// factor to obtain curve-local ones.
func LinearConverter(factor float64) AbscissaConverter {
	return AbscissaConverter{Factor: factor}
}

// Convert maps an abscissa on the shared scale to this curve's scale.
func (c AbscissaConverter) Convert(x float64) float64 {
	return x * c.Factor
}

// Inverse maps a curve-local abscissa back to the shared scale.
func (c AbscissaConverter) Inverse(x float64) float64 {
	return x / c.Factor
}

// IsIdentity reports whether the converter is a no-op.
func (c AbscissaConverter) IsIdentity() bool {
	return c.Factor == 1
}
