package curve

// defaultArcLengthSteps is the sampling resolution of the numeric fallbacks.
const defaultArcLengthSteps = 4096

// NumericArcLength approximates the curvilinear abscissa from TMin to t by
// sampling positions at the given resolution. Callers use it when
// CurvilinearAbscissa reports no closed form.
func NumericArcLength(c Curved, t float64, steps int) float64 {
	if steps <= 0 {
		steps = defaultArcLengthSteps
	}
	t0 := c.TMin()
	if t <= t0 {
		return 0
	}

	var length float64
	prev := c.Position(t0)
	for i := 1; i <= steps; i++ {
		ti := t0 + (t-t0)*float64(i)/float64(steps)
		p := c.Position(ti)
		length += p.Dist(prev)
		prev = p
	}
	return length
}

// Length returns the arc length of the nominal domain, using the closed form
// when the curve has one.
func Length(c Curved) float64 {
	if x, ok := c.CurvilinearAbscissa(c.TMax()); ok {
		x0, _ := c.CurvilinearAbscissa(c.TMin())
		return x - x0
	}
	return NumericArcLength(c, c.TMax(), 0)
}

// InverseAbscissa returns the t whose arc length from TMin is x, using the
// closed form when available and bisection on the numeric arc length
// otherwise. x is clamped to the curve's total length.
//
// Bisection relies on arc length being non-decreasing in t, which holds for
// every curve of this package.
func InverseAbscissa(c Curved, x float64, steps int) float64 {
	if t, ok := c.InverseCurvilinearAbscissa(x); ok {
		return t
	}

	lo, hi := c.TMin(), c.TMax()
	if x <= 0 {
		return lo
	}
	if total := NumericArcLength(c, hi, steps); x >= total {
		return hi
	}

	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if NumericArcLength(c, mid, steps) < x {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-9 {
			break
		}
	}
	return (lo + hi) / 2
}
