package viz

import (
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/ljtab/internal/forcefield"
	"github.com/san-kum/ljtab/internal/potential"
)

// DefaultSamples is the horizontal resolution of terminal plots.
const DefaultSamples = 120

// Window returns a display range bracketing the repulsive wall and the
// attractive tail of a pair's potential. Pairs with zero sigma carry
// no length scale and get a unit window.
func Window(p forcefield.PairParams) (rmin, rmax float64) {
	if p.Sigma == 0 {
		return 1.0, 2.0
	}
	return 0.9 * p.Sigma, 3.0 * p.Sigma
}

// EnergyCurve samples E(r) across the display window. Values are
// clamped to three well depths so the repulsive wall does not flatten
// the well on a terminal plot.
func EnergyCurve(p forcefield.PairParams, n int) []float64 {
	lj := potential.LennardJones{Epsilon: p.Epsilon, Sigma: p.Sigma}
	out := sample(lj, p, n, func(e, f float64) float64 { return e })
	clampAbove(out, 3*p.Epsilon)
	return out
}

// ForceCurve samples F(r) across the display window, clamped the same
// way relative to the force scale epsilon/sigma.
func ForceCurve(p forcefield.PairParams, n int) []float64 {
	lj := potential.LennardJones{Epsilon: p.Epsilon, Sigma: p.Sigma}
	out := sample(lj, p, n, func(e, f float64) float64 { return f })
	if p.Sigma > 0 {
		clampAbove(out, 30*p.Epsilon/p.Sigma)
	}
	return out
}

func sample(lj potential.LennardJones, p forcefield.PairParams, n int, pick func(e, f float64) float64) []float64 {
	rmin, rmax := Window(p)
	rs := make([]float64, n)
	floats.Span(rs, rmin, rmax)

	out := make([]float64, n)
	for i, r := range rs {
		out[i] = pick(lj.Evaluate(r))
	}
	return out
}

func clampAbove(vals []float64, limit float64) {
	for i, v := range vals {
		if v > limit {
			vals[i] = limit
		}
	}
}

// Plot renders data as a terminal graph in the shared style.
func Plot(data []float64, caption string, width, height int) string {
	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	return GraphStyle.Render(graph)
}

// Range returns the minimum and maximum of data; zeros for empty input.
func Range(data []float64) (min, max float64) {
	if len(data) == 0 {
		return 0, 0
	}
	return floats.Min(data), floats.Max(data)
}
