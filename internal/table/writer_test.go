package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/ljtab/internal/forcefield"
)

var waterAtoms = []forcefield.AtomType{
	{Name: "OW0", Epsilon: 107.0857, Sigma: 3.1665},
	{Name: "HW0", Epsilon: 0.0, Sigma: 0.0},
}

func generate(t *testing.T, atoms []forcefield.AtomType, grid Grid, opts Options) (Result, []string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "table.inp")
	res, err := Generate(atoms, grid, path, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	return res, lines
}

func TestGenerate_WaterScenario(t *testing.T) {
	grid := Grid{Start: 1.0, End: 2.0, Step: 0.5}
	res, lines := generate(t, waterAtoms, grid, Options{})

	if res.Pairs != 3 {
		t.Errorf("pairs = %d, want 3", res.Pairs)
	}
	if res.Rows != 9 {
		t.Errorf("rows = %d, want 9", res.Rows)
	}

	var headers []string
	for _, l := range lines {
		if strings.HasPrefix(l, "TYPE ") {
			headers = append(headers, strings.TrimPrefix(l, "TYPE "))
		}
	}
	want := []string{"OW0OW0", "OW0HW0", "HW0HW0"}
	if len(headers) != len(want) {
		t.Fatalf("got %d headers, want %d", len(headers), len(want))
	}
	for i := range want {
		if headers[i] != want[i] {
			t.Errorf("header %d = %s, want %s", i, headers[i], want[i])
		}
	}

	// HW0HW0 block mixes to zero epsilon: all rows must be zero.
	for i := len(lines) - 3; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) != 3 {
			t.Fatalf("row %q: want 3 fields", lines[i])
		}
		if fields[1] != "0.000000" || fields[2] != "0.000000" {
			t.Errorf("HW0HW0 row %q: want zero energy and force", lines[i])
		}
	}
}

func TestGenerate_RowFormat(t *testing.T) {
	atoms := []forcefield.AtomType{{Name: "AR", Epsilon: 1.0, Sigma: 1.0}}
	grid := Grid{Start: 1.0, End: 1.0, Step: 0.5}
	_, lines := generate(t, atoms, grid, Options{})

	if lines[0] != "TYPE ARAR" {
		t.Fatalf("header = %q", lines[0])
	}
	// r=1.0 is the zero crossing: E = 0, F = 24.
	if lines[1] != "1.0000     0.000000        24.000000      " {
		t.Errorf("row = %q", lines[1])
	}
}

func TestGenerate_GridCoverage(t *testing.T) {
	atoms := []forcefield.AtomType{{Name: "OW0", Epsilon: 107.0857, Sigma: 3.1665}}
	grid := Grid{Start: 0.01, End: 10.0, Step: 0.01}
	res, lines := generate(t, atoms, grid, Options{})

	if res.Rows != 1000 {
		t.Errorf("rows = %d, want 1000", res.Rows)
	}

	first := strings.Fields(lines[1])[0]
	last := strings.Fields(lines[len(lines)-1])[0]
	if first != "0.0100" {
		t.Errorf("first distance = %s, want 0.0100", first)
	}
	if last != "10.0000" {
		t.Errorf("last distance = %s, want 10.0000", last)
	}
}

func TestGenerate_SkipsDegenerateSamples(t *testing.T) {
	atoms := []forcefield.AtomType{{Name: "AR", Epsilon: 1.0, Sigma: 1.0}}
	grid := Grid{Start: 0.0, End: 1.0, Step: 0.5}
	res, lines := generate(t, atoms, grid, Options{})

	// r=0 is skipped without a substitute row; r=0.5 and r=1.0 remain.
	if res.Rows != 2 {
		t.Errorf("rows = %d, want 2", res.Rows)
	}
	if got := strings.Fields(lines[1])[0]; got != "0.5000" {
		t.Errorf("first retained distance = %s, want 0.5000", got)
	}
}

func TestGenerate_PairCount(t *testing.T) {
	atoms := []forcefield.AtomType{
		{Name: "OW0", Epsilon: 107.0857, Sigma: 3.1665},
		{Name: "HW0"},
		{Name: "LP0"},
	}
	grid := Grid{Start: 1.0, End: 2.0, Step: 0.5}
	res, lines := generate(t, atoms, grid, Options{})

	if res.Pairs != 6 {
		t.Errorf("pairs = %d, want 6", res.Pairs)
	}

	count := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "TYPE ") {
			count++
		}
	}
	if count != 6 {
		t.Errorf("header blocks = %d, want 6", count)
	}
}

func TestGenerate_Annotate(t *testing.T) {
	grid := Grid{Start: 1.0, End: 2.0, Step: 0.5}
	path := filepath.Join(t.TempDir(), "annotated.inp")

	if _, err := Generate(waterAtoms, grid, path, Options{Annotate: true}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "Params: sigma=3.1665, epsilon=107.0857") {
		t.Error("missing parameter summary line")
	}
	if !strings.Contains(out, strings.Repeat("-", 45)) {
		t.Error("missing block separator")
	}
	if !strings.Contains(out, "r          E               F") {
		t.Error("missing column header line")
	}
}

func TestGenerate_BadPath(t *testing.T) {
	grid := Grid{Start: 1.0, End: 2.0, Step: 0.5}
	_, err := Generate(waterAtoms, grid, filepath.Join(t.TempDir(), "missing", "table.inp"), Options{})
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestGenerate_Overwrites(t *testing.T) {
	grid := Grid{Start: 1.0, End: 2.0, Step: 0.5}
	path := filepath.Join(t.TempDir(), "table.inp")

	if err := os.WriteFile(path, []byte("stale contents\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(waterAtoms, grid, path, Options{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("previous file contents survived")
	}
}
