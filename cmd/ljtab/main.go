package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/ljtab/internal/config"
	"github.com/san-kum/ljtab/internal/forcefield"
	"github.com/san-kum/ljtab/internal/potential"
	"github.com/san-kum/ljtab/internal/table"
	"github.com/san-kum/ljtab/internal/tui"
	"github.com/san-kum/ljtab/internal/viz"
)

var (
	configFile string
	preset     string
	output     string
	start      float64
	end        float64
	step       float64
	annotate   bool
	showForce  bool
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ljtab",
		Short: "lennard-jones interaction table generator",
		Long: "ljtab mixes per-atom lennard-jones parameters with the\n" +
			"lorentz-berthelot rules and tabulates pair energy and force\n" +
			"over a distance grid for simulation engines.",
		RunE: runGenerate,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset force field")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "write the interaction table",
		RunE:  runGenerate,
	}
	addGridFlags(rootCmd)
	addGridFlags(generateCmd)

	pairsCmd := &cobra.Command{
		Use:   "pairs",
		Short: "list mixed parameters per pair",
		RunE:  listPairs,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [atom] [atom]",
		Short: "plot a pair potential on the terminal",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  previewPair,
	}
	previewCmd.Flags().BoolVar(&showForce, "force", false, "plot force instead of energy")
	previewCmd.Flags().IntVar(&plotWidth, "width", viz.DefaultSamples, "plot width")
	previewCmd.Flags().IntVar(&plotHeight, "height", 14, "plot height")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "browse pair curves interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return tui.Run(cfg.Atoms)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available force field presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %d atoms, writes %s\n", name, len(p.Atoms), p.Output)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "ljtab.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Printf("Config written to %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(generateCmd, pairsCmd, previewCmd, tuiCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&output, "out", config.DefaultOutput, "output file")
	cmd.Flags().Float64Var(&start, "start", config.DefaultStart, "grid start distance")
	cmd.Flags().Float64Var(&end, "end", config.DefaultEnd, "grid end distance")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "grid step size")
	cmd.Flags().BoolVar(&annotate, "annotate", false, "emit parameter summaries and column headers")
}

// loadConfig resolves the effective configuration: defaults, then the
// named preset, then the config file, then explicit CLI flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("out") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("start") {
		cfg.Grid.Start = start
	}
	if cmd.Flags().Changed("end") {
		cfg.Grid.End = end
	}
	if cmd.Flags().Changed("step") {
		cfg.Grid.Step = step
	}
	if cmd.Flags().Changed("annotate") {
		cfg.Annotate = annotate
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	res, err := table.Generate(cfg.Atoms, cfg.Grid, cfg.Output, table.Options{Annotate: cfg.Annotate})
	if err != nil {
		return err
	}

	fmt.Printf("Computed %d interaction pairs.\n", res.Pairs)
	fmt.Printf("Data written to %s\n", res.Path)
	return nil
}

func listPairs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PAIR\tSIGMA\tEPSILON\tR_MIN\tE_MIN")

	for _, pair := range forcefield.Pairs(cfg.Atoms) {
		mixed := pair.Params()
		lj := potential.LennardJones{Epsilon: mixed.Epsilon, Sigma: mixed.Sigma}
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			pair.Name(), mixed.Sigma, mixed.Epsilon, lj.Minimum(), -mixed.Epsilon)
	}

	return w.Flush()
}

func previewPair(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, ok := cfg.Atom(args[0])
	if !ok {
		return fmt.Errorf("unknown atom: %s", args[0])
	}
	b := a
	if len(args) == 2 {
		if b, ok = cfg.Atom(args[1]); !ok {
			return fmt.Errorf("unknown atom: %s", args[1])
		}
	}

	pair := forcefield.Pair{A: a, B: b}
	mixed := pair.Params()

	fmt.Println(viz.TitleStyle.Render(pair.Name()))
	fmt.Printf("sigma: %.4f  epsilon: %.4f\n", mixed.Sigma, mixed.Epsilon)

	curve := viz.EnergyCurve(mixed, plotWidth)
	caption := "E(r)"
	if showForce {
		curve = viz.ForceCurve(mixed, plotWidth)
		caption = "F(r)"
	}
	fmt.Println(viz.Plot(curve, caption, plotWidth, plotHeight))
	return nil
}
