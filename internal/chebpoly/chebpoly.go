// Package chebpoly implements Chebyshev polynomial approximation on an
// arbitrary interval.
//
// A Polynomial stores the coefficients of the expansion
//
//	f(x) ≈ Σ c_k T_k(u),  u = (2x - a - b) / (b - a)
//
// over its definition interval [a, b]. Evaluation uses the Clenshaw
// recurrence and is numerically stable for the degrees used by curve
// fitting (a few hundred at most).
package chebpoly

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyInput is returned when there is nothing to fit or evaluate.
var ErrEmptyInput = errors.New("chebpoly: empty input")

// Polynomial is a Chebyshev expansion over a definition interval.
type Polynomial struct {
	Coeffs   []float64  `json:"coeffs"`
	Interval [2]float64 `json:"interval"`
}

// FromCoeffs builds a polynomial from explicit coefficients and interval.
func FromCoeffs(coeffs []float64, interval [2]float64) (Polynomial, error) {
	if len(coeffs) == 0 {
		return Polynomial{}, ErrEmptyInput
	}
	return Polynomial{Coeffs: coeffs, Interval: interval}, nil
}

// DefinitionInterval returns the interval [a, b] on which the polynomial is
// defined.
func (p Polynomial) DefinitionInterval() [2]float64 {
	return p.Interval
}

// Evaluate computes f(x). Arguments outside the definition interval are
// extrapolated; callers are expected to stay inside it.
func (p Polynomial) Evaluate(x float64) float64 {
	a, b := p.Interval[0], p.Interval[1]
	u := x
	if b != a {
		u = (2*x - a - b) / (b - a)
	}

	// Clenshaw recurrence for Σ c_k T_k(u).
	var b1, b2 float64
	for k := len(p.Coeffs) - 1; k >= 1; k-- {
		b1, b2 = p.Coeffs[k]+2*u*b1-b2, b1
	}
	return p.Coeffs[0] + u*b1 - b2
}

// Interpolate fits a Chebyshev polynomial through the given sample points.
// The samples define both the target function (by monotone linear
// interpolation between them) and the definition interval (their x range).
// The degree is doubled until the fit error at the sample points is below
// tol, up to a fixed cap.
func Interpolate(points, values []float64, tol float64) (Polynomial, error) {
	if len(points) == 0 || len(points) != len(values) {
		return Polynomial{}, ErrEmptyInput
	}

	xs := append([]float64(nil), points...)
	ys := append([]float64(nil), values...)
	sort.Sort(&pairSlice{xs: xs, ys: ys})

	a, b := xs[0], xs[len(xs)-1]
	f := func(x float64) float64 { return lerpSamples(xs, ys, x) }

	const maxN = 1 << 10
	for n := 16; ; n *= 2 {
		p := fit(f, a, b, n)
		if maxErrAt(p, xs, ys) < tol || n >= maxN {
			return p, nil
		}
	}
}

// fit computes the degree n-1 Chebyshev expansion of f over [a, b] using the
// Chebyshev-Gauss nodes.
func fit(f func(float64) float64, a, b float64, n int) Polynomial {
	fx := make([]float64, n)
	for j := 0; j < n; j++ {
		u := math.Cos(math.Pi * (float64(j) + 0.5) / float64(n))
		x := 0.5*(b-a)*u + 0.5*(a+b)
		fx[j] = f(x)
	}

	coeffs := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += fx[j] * math.Cos(math.Pi*float64(k)*(float64(j)+0.5)/float64(n))
		}
		coeffs[k] = 2 * sum / float64(n)
	}
	coeffs[0] /= 2

	return Polynomial{Coeffs: coeffs, Interval: [2]float64{a, b}}
}

func maxErrAt(p Polynomial, xs, ys []float64) float64 {
	var worst float64
	for i, x := range xs {
		if e := math.Abs(p.Evaluate(x) - ys[i]); e > worst {
			worst = e
		}
	}
	return worst
}

// lerpSamples evaluates the piecewise-linear interpolant of (xs, ys) at x.
// xs must be sorted.
func lerpSamples(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := sort.SearchFloat64s(xs, x)
	x0, x1 := xs[i-1], xs[i]
	if x1 == x0 {
		return ys[i]
	}
	t := (x - x0) / (x1 - x0)
	return ys[i-1]*(1-t) + ys[i]*t
}

type pairSlice struct {
	xs, ys []float64
}

func (p *pairSlice) Len() int           { return len(p.xs) }
func (p *pairSlice) Less(i, j int) bool { return p.xs[i] < p.xs[j] }
func (p *pairSlice) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.ys[i], p.ys[j] = p.ys[j], p.ys[i]
}
