// Package testutil provides deterministic helpers shared by the package
// tests: a seeded RNG and finite-difference derivative checks for curves.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/nanocurve/curve"
	"github.com/hupe1980/nanocurve/vecmath"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + (maxVal-minVal)*r.rand.Float64()
}

// Intn returns a non-negative pseudo-random number in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// finiteDiffEps is the step for the derivative checks below. It is larger
// than the curves' own numeric epsilon so the checks stay independent.
const finiteDiffEps = 1e-5

// FiniteDiffSpeed approximates the derivative of Position by central
// differences, for comparison against a curve's analytic Speed.
func FiniteDiffSpeed(c curve.Curved, t float64) vecmath.Vec3 {
	p1 := c.Position(t + finiteDiffEps/2)
	p0 := c.Position(t - finiteDiffEps/2)
	return p1.Sub(p0).Div(finiteDiffEps)
}

// FiniteDiffAcceleration approximates the derivative of Speed by central
// differences, for comparison against a curve's analytic Acceleration.
func FiniteDiffAcceleration(c curve.Curved, t float64) vecmath.Vec3 {
	s1 := c.Speed(t + finiteDiffEps/2)
	s0 := c.Speed(t - finiteDiffEps/2)
	return s1.Sub(s0).Div(finiteDiffEps)
}
