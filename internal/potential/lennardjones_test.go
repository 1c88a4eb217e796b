package potential

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestEvaluate_WellMinimum(t *testing.T) {
	lj := LennardJones{Epsilon: 1.0, Sigma: 1.0}

	rmin := lj.Minimum()
	if !scalar.EqualWithinAbs(rmin, 1.122462048309373, 1e-12) {
		t.Fatalf("minimum location = %v", rmin)
	}

	e, f := lj.Evaluate(rmin)
	if !scalar.EqualWithinAbs(e, -1.0, 1e-10) {
		t.Errorf("energy at minimum = %v, want -1", e)
	}
	if math.Abs(f) > 1e-10 {
		t.Errorf("force at minimum = %v, want 0", f)
	}
}

func TestEvaluate_ZeroCrossing(t *testing.T) {
	lj := LennardJones{Epsilon: 2.5, Sigma: 3.2}

	e, _ := lj.Evaluate(lj.Sigma)
	if math.Abs(e) > 1e-10 {
		t.Errorf("energy at r = sigma should be 0, got %v", e)
	}
}

func TestEvaluate_ZeroDistance(t *testing.T) {
	lj := LennardJones{Epsilon: 1.0, Sigma: 1.0}

	e, f := lj.Evaluate(0)
	if !math.IsInf(e, 1) {
		t.Errorf("energy at r=0 = %v, want +Inf", e)
	}
	if !math.IsInf(f, 1) {
		t.Errorf("force at r=0 = %v, want +Inf", f)
	}
}

func TestEvaluate_ZeroEpsilon(t *testing.T) {
	lj := LennardJones{Epsilon: 0, Sigma: 3.1665}

	for _, r := range []float64{0.5, 1.0, 3.1665, 10.0} {
		e, f := lj.Evaluate(r)
		if e != 0 || f != 0 {
			t.Errorf("r=%v: (E,F) = (%v,%v), want zeros", r, e, f)
		}
	}
}

func TestEvaluate_ForceSign(t *testing.T) {
	lj := LennardJones{Epsilon: 1.0, Sigma: 1.0}
	rmin := lj.Minimum()

	// Repulsive inside the well, attractive outside.
	if _, f := lj.Evaluate(0.9 * rmin); f <= 0 {
		t.Errorf("force inside well = %v, want positive", f)
	}
	if _, f := lj.Evaluate(1.5 * rmin); f >= 0 {
		t.Errorf("force outside well = %v, want negative", f)
	}
}

func TestEvaluate_MatchesDerivative(t *testing.T) {
	lj := LennardJones{Epsilon: 107.0857, Sigma: 3.1665}

	// Central difference of E against the analytic force.
	h := 1e-6
	for _, r := range []float64{2.9, 3.1665, 3.5, 5.0, 8.0} {
		ePlus, _ := lj.Evaluate(r + h)
		eMinus, _ := lj.Evaluate(r - h)
		numeric := -(ePlus - eMinus) / (2 * h)

		_, f := lj.Evaluate(r)
		if !scalar.EqualWithinAbsOrRel(f, numeric, 1e-4, 1e-6) {
			t.Errorf("r=%v: force = %v, -dE/dr = %v", r, f, numeric)
		}
	}
}
