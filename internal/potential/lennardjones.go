package potential

import "math"

// LennardJones is a 12-6 potential with well depth Epsilon and
// zero-crossing distance Sigma.
type LennardJones struct {
	Epsilon float64
	Sigma   float64
}

// Evaluate returns energy and force at distance r. At r == 0 both
// values are +Inf; no error is raised for the degenerate point.
func (lj LennardJones) Evaluate(r float64) (energy, force float64) {
	if r == 0 {
		inf := math.Inf(1)
		return inf, inf
	}

	sr := lj.Sigma / r
	sr3 := sr * sr * sr
	sr6 := sr3 * sr3
	sr12 := sr6 * sr6

	energy = 4 * lj.Epsilon * (sr12 - sr6)
	// F = -dE/dr
	force = (24 * lj.Epsilon / r) * (2*sr12 - sr6)
	return energy, force
}

// Minimum returns the location of the potential well, r = 2^(1/6)·σ.
func (lj LennardJones) Minimum() float64 {
	return math.Pow(2, 1.0/6.0) * lj.Sigma
}
