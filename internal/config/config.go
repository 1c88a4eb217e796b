package config

import (
	"fmt"
	"os"

	"github.com/san-kum/ljtab/internal/forcefield"
	"github.com/san-kum/ljtab/internal/table"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStart  = 0.01
	DefaultEnd    = 10.0
	DefaultStep   = 0.01
	DefaultOutput = "OPC_table_01.inp"
)

type Config struct {
	Atoms    []forcefield.AtomType `yaml:"atoms"`
	Grid     table.Grid            `yaml:"grid"`
	Output   string                `yaml:"output"`
	Annotate bool                  `yaml:"annotate"`
}

// DefaultConfig is the 4-site OPC water model over the standard sweep.
// Sigma in Angstroms, epsilon in Kelvin.
func DefaultConfig() *Config {
	return &Config{
		Atoms: []forcefield.AtomType{
			{Name: "OW0", Epsilon: 107.0857, Sigma: 3.1665},
			{Name: "HW0", Epsilon: 0.0, Sigma: 0.0},
			{Name: "LP0", Epsilon: 0.0, Sigma: 0.0},
		},
		Grid:   table.Grid{Start: DefaultStart, End: DefaultEnd, Step: DefaultStep},
		Output: DefaultOutput,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the tabulation pass would silently
// mishandle. The forcefield and potential packages themselves stay
// guard-free; validation happens once at this boundary.
func (c *Config) Validate() error {
	if len(c.Atoms) == 0 {
		return fmt.Errorf("no atoms defined")
	}
	seen := make(map[string]bool, len(c.Atoms))
	for _, a := range c.Atoms {
		if a.Name == "" {
			return fmt.Errorf("atom with empty name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate atom name: %s", a.Name)
		}
		seen[a.Name] = true
		if a.Sigma < 0 {
			return fmt.Errorf("atom %s: negative sigma", a.Name)
		}
		if a.Epsilon < 0 {
			return fmt.Errorf("atom %s: negative epsilon", a.Name)
		}
	}
	if c.Grid.Step <= 0 {
		return fmt.Errorf("grid step must be positive, got %g", c.Grid.Step)
	}
	if c.Grid.Start < 0 {
		return fmt.Errorf("grid start must be non-negative, got %g", c.Grid.Start)
	}
	if c.Grid.End <= c.Grid.Start {
		return fmt.Errorf("grid end %g must exceed start %g", c.Grid.End, c.Grid.Start)
	}
	if c.Output == "" {
		return fmt.Errorf("no output file")
	}
	return nil
}

// Atom looks up an atom type by name.
func (c *Config) Atom(name string) (forcefield.AtomType, bool) {
	for _, a := range c.Atoms {
		if a.Name == name {
			return a, true
		}
	}
	return forcefield.AtomType{}, false
}
