package forcefield

import "math"

// AtomType describes one interaction site by its Lennard-Jones
// parameters. All-zero parameters are valid and model a site with no
// LJ interaction, such as a rigid-water hydrogen or a virtual charge
// site.
type AtomType struct {
	Name    string  `yaml:"name"`
	Epsilon float64 `yaml:"epsilon"` // well depth
	Sigma   float64 `yaml:"sigma"`   // zero-crossing distance
}

// PairParams holds the mixed parameters for one unordered atom pair.
type PairParams struct {
	Sigma   float64
	Epsilon float64
}

// LorentzBerthelot combines two atom types: arithmetic mean for sigma,
// geometric mean for epsilon.
func LorentzBerthelot(a, b AtomType) PairParams {
	return PairParams{
		Sigma:   (a.Sigma + b.Sigma) / 2.0,
		Epsilon: math.Sqrt(a.Epsilon * b.Epsilon),
	}
}

// Pair is one unordered combination of atom types. A keeps the atom
// that appears first in the input list.
type Pair struct {
	A, B AtomType
}

// Name concatenates the two atom names in enumeration order.
func (p Pair) Name() string {
	return p.A.Name + p.B.Name
}

// Params returns the Lorentz-Berthelot mixed parameters for the pair.
func (p Pair) Params() PairParams {
	return LorentzBerthelot(p.A, p.B)
}

// Pairs enumerates every unique unordered pair in input order, each
// atom paired with itself included. N atoms yield N(N+1)/2 pairs.
func Pairs(atoms []AtomType) []Pair {
	pairs := make([]Pair, 0, len(atoms)*(len(atoms)+1)/2)
	for i := 0; i < len(atoms); i++ {
		for j := i; j < len(atoms); j++ {
			pairs = append(pairs, Pair{A: atoms[i], B: atoms[j]})
		}
	}
	return pairs
}
