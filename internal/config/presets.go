package config

import (
	"sort"

	"github.com/san-kum/ljtab/internal/forcefield"
	"github.com/san-kum/ljtab/internal/table"
)

// Presets are ready-made atom sets for common rigid-water models and a
// noble-gas mixture. Epsilon in Kelvin, sigma in Angstroms; only the
// oxygen site carries LJ parameters in the water models.
var Presets = map[string]*Config{
	"opc": {
		Atoms: []forcefield.AtomType{
			{Name: "OW0", Epsilon: 107.0857, Sigma: 3.1665},
			{Name: "HW0", Epsilon: 0.0, Sigma: 0.0},
			{Name: "LP0", Epsilon: 0.0, Sigma: 0.0},
		},
		Grid:   table.Grid{Start: DefaultStart, End: DefaultEnd, Step: DefaultStep},
		Output: "OPC_table_01.inp",
	},
	"tip3p": {
		Atoms: []forcefield.AtomType{
			{Name: "OW", Epsilon: 76.54, Sigma: 3.1507},
			{Name: "HW", Epsilon: 0.0, Sigma: 0.0},
		},
		Grid:   table.Grid{Start: DefaultStart, End: DefaultEnd, Step: DefaultStep},
		Output: "TIP3P_table_01.inp",
	},
	"spce": {
		Atoms: []forcefield.AtomType{
			{Name: "OW", Epsilon: 78.20, Sigma: 3.1660},
			{Name: "HW", Epsilon: 0.0, Sigma: 0.0},
		},
		Grid:   table.Grid{Start: DefaultStart, End: DefaultEnd, Step: DefaultStep},
		Output: "SPCE_table_01.inp",
	},
	"tip4p2005": {
		Atoms: []forcefield.AtomType{
			{Name: "OW", Epsilon: 93.20, Sigma: 3.1589},
			{Name: "HW", Epsilon: 0.0, Sigma: 0.0},
			{Name: "MW", Epsilon: 0.0, Sigma: 0.0},
		},
		Grid:   table.Grid{Start: DefaultStart, End: DefaultEnd, Step: DefaultStep},
		Output: "TIP4P2005_table_01.inp",
	},
	"noble": {
		Atoms: []forcefield.AtomType{
			{Name: "AR", Epsilon: 119.8, Sigma: 3.405},
			{Name: "NE", Epsilon: 35.6, Sigma: 2.749},
			{Name: "HE", Epsilon: 10.22, Sigma: 2.551},
		},
		Grid:   table.Grid{Start: DefaultStart, End: DefaultEnd, Step: DefaultStep},
		Output: "noble_table_01.inp",
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not
// exist. The copy is safe to mutate.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.Atoms = append([]forcefield.AtomType(nil), p.Atoms...)
	return &cp
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
