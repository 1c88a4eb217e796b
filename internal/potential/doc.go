// Package potential evaluates pairwise interaction potentials.
//
// The single model is the 12-6 Lennard-Jones potential:
//
//	E(r) = 4ε[(σ/r)¹² − (σ/r)⁶]
//
// with the force reported in the repulsive-positive convention
// F = −dE/dr. Evaluation is a pure function of (ε, σ, r); a zero
// distance yields +Inf sentinels instead of an error, so callers that
// serialize results must guard the degenerate point themselves.
package potential
