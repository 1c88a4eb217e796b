package table

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/ljtab/internal/forcefield"
	"github.com/san-kum/ljtab/internal/potential"
)

// Options control the output format of a generation pass.
type Options struct {
	// Annotate adds a parameter summary, column headers, and block
	// separators to each TYPE block. The plain format is the one
	// simulation engines consume.
	Annotate bool
}

// Result reports what a generation pass produced.
type Result struct {
	Pairs int
	Rows  int
	Path  string
}

// Generate tabulates energy and force for every unique unordered atom
// pair over the grid and writes the table to path, overwriting any
// existing file. Rows at distances at or below MinDistance are
// skipped without substitution.
func Generate(atoms []forcefield.AtomType, grid Grid, path string, opts Options) (Result, error) {
	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("create table file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	res := Result{Path: path}

	steps := grid.Steps()
	for _, pair := range forcefield.Pairs(atoms) {
		mixed := pair.Params()
		lj := potential.LennardJones{Epsilon: mixed.Epsilon, Sigma: mixed.Sigma}

		fmt.Fprintf(w, "TYPE %s\n", pair.Name())
		if opts.Annotate {
			fmt.Fprintf(w, "Params: sigma=%.4f, epsilon=%.4f\n", mixed.Sigma, mixed.Epsilon)
			fmt.Fprintf(w, "%-10s %-15s %-15s\n", "r", "E", "F")
			fmt.Fprintln(w, strings.Repeat("-", 45))
		}

		for k := 0; k <= steps; k++ {
			r := grid.At(k)
			if r <= MinDistance {
				continue
			}
			e, fr := lj.Evaluate(r)
			fmt.Fprintf(w, "%-10.4f %-15.6f %-15.6f\n", r, e, fr)
			res.Rows++
		}

		if opts.Annotate {
			fmt.Fprint(w, "\n\n")
		}
		res.Pairs++
	}

	if err := w.Flush(); err != nil {
		return Result{}, fmt.Errorf("write table file: %w", err)
	}
	return res, nil
}
