package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/fieldlab/internal/analysis"
	"github.com/san-kum/fieldlab/internal/config"
	"github.com/san-kum/fieldlab/internal/export"
	"github.com/san-kum/fieldlab/internal/field"
	"github.com/san-kum/fieldlab/internal/scene"
	"github.com/san-kum/fieldlab/internal/tui"
	"github.com/san-kum/fieldlab/internal/vec"
	"github.com/san-kum/fieldlab/internal/viz"
)

var (
	configFile string
	preset     string
	modeName   string
	sourceArgs []string
	probeArg   string
	seed       int64

	halfExtent float64
	latStep    float64
	sampleCap  int
	seedCount  int
	seedRadius float64
	stepSize   float64
	maxSteps   int
	boxExtent  float64
	exclusion  float64
	tolerance  float64
	maxIters   int

	fromArg string
	toArg   string
	points  int
	maxRows int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldlab",
		Short: "point-source field visualization lab",
		RunE:  runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset scene")
	pf.StringVar(&modeName, "mode", "", "field mode: electric or gravity")
	pf.StringArrayVar(&sourceArgs, "source", nil, "source as x,y,z=value (repeatable)")
	pf.StringVar(&probeArg, "probe", "", "probe as x,y,z=value")
	pf.Int64Var(&seed, "seed", 0, "random seed for line phases")
	pf.Float64Var(&halfExtent, "half-extent", 0, "lattice half extent (scene units)")
	pf.Float64Var(&latStep, "lattice-step", 0, "lattice stride")
	pf.IntVar(&sampleCap, "sample-cap", 0, "max lattice samples")
	pf.IntVar(&seedCount, "seeds", 0, "field line seed count")
	pf.Float64Var(&seedRadius, "seed-radius", 0, "seed shell radius")
	pf.Float64Var(&stepSize, "step-size", 0, "integration step size")
	pf.IntVar(&maxSteps, "max-steps", 0, "max steps per direction")
	pf.Float64Var(&boxExtent, "box-extent", 0, "tracing bounding box half extent")
	pf.Float64Var(&exclusion, "exclusion", 0, "source exclusion radius")
	pf.Float64Var(&tolerance, "tolerance", 0, "equilibrium refinement tolerance")
	pf.IntVar(&maxIters, "max-iters", 0, "equilibrium refinement iteration cap")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "sample the field on a lattice",
		RunE:  runSample,
	}
	sampleCmd.Flags().IntVar(&maxRows, "rows", 20, "table rows to print")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "trace field lines",
		RunE:  runTrace,
	}

	eqCmd := &cobra.Command{
		Use:   "equilibrium",
		Short: "locate the zero-field point of a two-source scene",
		RunE:  runEquilibrium,
	}

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "force and potential at the probe",
		RunE:  runProbe,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot field magnitude and potential along a segment",
		RunE:  runProfile,
	}
	profileCmd.Flags().StringVar(&fromArg, "from", "", "segment start x,y,z (default: first source)")
	profileCmd.Flags().StringVar(&toArg, "to", "", "segment end x,y,z (default: last source)")
	profileCmd.Flags().IntVar(&points, "points", 120, "samples along the segment")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "render the scene once to the terminal",
		RunE:  runView,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive viewer",
		RunE:  runLive,
	}

	exportCmd := &cobra.Command{
		Use:   "export-svg [file]",
		Short: "export traced field lines to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(sampleCmd, traceCmd, eqCmd, probeCmd, profileCmd, viewCmd, liveCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration: preset, then config
// file, then flags, later layers overriding earlier ones.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if modeName != "" {
		cfg.Mode = modeName
	}
	if len(sourceArgs) > 0 {
		cfg.Sources = nil
		for _, arg := range sourceArgs {
			src, err := parseSource(arg)
			if err != nil {
				return nil, err
			}
			cfg.Sources = append(cfg.Sources, src)
		}
	}
	if probeArg != "" {
		src, err := parseSource(probeArg)
		if err != nil {
			return nil, err
		}
		cfg.Probe = &config.ProbeConfig{X: src.X, Y: src.Y, Z: src.Z, Value: src.Value}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("half-extent") {
		cfg.Sampling.HalfExtent = halfExtent
	}
	if flags.Changed("lattice-step") {
		cfg.Sampling.Step = latStep
	}
	if flags.Changed("sample-cap") {
		cfg.Sampling.Cap = sampleCap
	}
	if flags.Changed("exclusion") {
		cfg.Sampling.ExclusionRadius = exclusion
	}
	if flags.Changed("seeds") {
		cfg.Tracing.SeedCount = seedCount
	}
	if flags.Changed("seed-radius") {
		cfg.Tracing.SeedRadius = seedRadius
	}
	if flags.Changed("step-size") {
		cfg.Tracing.StepSize = stepSize
	}
	if flags.Changed("max-steps") {
		cfg.Tracing.MaxSteps = maxSteps
	}
	if flags.Changed("box-extent") {
		cfg.Tracing.BoxExtent = boxExtent
	}
	if flags.Changed("tolerance") {
		cfg.Solver.Tolerance = tolerance
	}
	if flags.Changed("max-iters") {
		cfg.Solver.MaxIters = maxIters
	}

	if len(cfg.Sources) == 0 {
		log.Warn("no sources configured; output will be empty (try --preset dipole)")
	}
	return cfg, nil
}

// parseSource parses "x,y,z=value".
func parseSource(s string) (config.SourceConfig, error) {
	pos, value, ok := strings.Cut(s, "=")
	if !ok {
		return config.SourceConfig{}, fmt.Errorf("source %q: want x,y,z=value", s)
	}
	p, err := parseVec(pos)
	if err != nil {
		return config.SourceConfig{}, fmt.Errorf("source %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return config.SourceConfig{}, fmt.Errorf("source %q: bad value: %w", s, err)
	}
	return config.SourceConfig{X: p.X, Y: p.Y, Z: p.Z, Value: v}, nil
}

func parseVec(s string) (vec.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vec.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var out [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vec.Vec3{}, err
		}
		out[i] = v
	}
	return vec.Vec3{X: out[0], Y: out[1], Z: out[2]}, nil
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	frame := scene.Compute(cfg.Snapshot(), cfg.Params())

	fmt.Printf("samples: %d\n\n", len(frame.Samples))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POSITION\tMAGNITUDE\tSTRENGTH\tDOMINANT")
	for i, s := range frame.Samples {
		if i >= maxRows {
			fmt.Fprintf(w, "... %d more\t\t\t\n", len(frame.Samples)-maxRows)
			break
		}
		fmt.Fprintf(w, "(%.2f, %.2f, %.2f)\t%.4e\t%.3f\t%d\n",
			s.Pos.X, s.Pos.Y, s.Pos.Z, s.Magnitude, s.Strength, s.Dominant)
	}
	return w.Flush()
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	frame := scene.Compute(cfg.Snapshot(), cfg.Params())

	total := 0
	for _, ln := range frame.Lines {
		total += len(ln.Points)
	}
	fmt.Printf("field lines: %d\n", len(frame.Lines))
	if len(frame.Lines) > 0 {
		fmt.Printf("points: %d (avg %.1f per line)\n", total, float64(total)/float64(len(frame.Lines)))
	}
	return nil
}

func runEquilibrium(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	snap := cfg.Snapshot()
	frame := scene.Compute(snap, cfg.Params())
	eq := frame.Equilibrium

	fmt.Printf("status: %s\n", eq.Status)
	if eq.Found() {
		fmt.Printf("position: (%.4f, %.4f, %.4f)\n", eq.Pos.X, eq.Pos.Y, eq.Pos.Z)
		fmt.Printf("residual: %.4e (after %d iterations)\n", eq.Residual, eq.Iters)
	}
	return nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	snap := cfg.Snapshot()
	if snap.Probe == nil {
		return fmt.Errorf("no probe configured (use --probe x,y,z=value)")
	}
	frame := scene.Compute(snap, cfg.Params())

	f := frame.ProbeForce
	fmt.Printf("force: (%.4e, %.4e, %.4e) N\n", f.X, f.Y, f.Z)
	fmt.Printf("magnitude: %.4e N\n", f.Length())
	fmt.Printf("potential: %.4e\n", frame.Potential)
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	snap := cfg.Snapshot()
	if len(snap.Sources) == 0 {
		return fmt.Errorf("profile needs at least one source")
	}

	from := snap.Sources[0].Pos
	to := snap.Sources[len(snap.Sources)-1].Pos
	if fromArg != "" {
		if from, err = parseVec(fromArg); err != nil {
			return err
		}
	}
	if toArg != "" {
		if to, err = parseVec(toArg); err != nil {
			return err
		}
	}
	if from.Distance(to) == 0 {
		return fmt.Errorf("profile segment has zero length; set --from/--to")
	}

	p := cfg.Params()
	k := field.Kernel{K: field.DefaultCoulombK, G: field.DefaultGravityG, MinDistance: p.MinDistance, SceneToMeters: p.SceneToMeters}
	prof := analysis.SampleProfile(k, snap.Sources, snap.Mode, from, to, points)
	if prof == nil {
		return fmt.Errorf("profile needs at least 2 points, got %d", points)
	}

	fmt.Println(asciigraph.Plot(prof.Magnitudes,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("field magnitude along segment"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(prof.Potentials,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("potential along segment"),
	))

	if idx, min := prof.MinMagnitude(); idx >= 0 {
		fmt.Printf("\nweakest point: %.3f along segment (|E| = %.4e)\n", prof.Distances[idx], min)
	}
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	snap := cfg.Snapshot()
	frame := scene.Compute(snap, cfg.Params())

	canvas := viz.NewCanvas(100, 30)
	viz.Render(canvas, viz.NewCamera(), frame, snap.Sources, snap.Mode)
	fmt.Print(canvas.String())
	fmt.Println(viz.Dim.Render(fmt.Sprintf("%s · %d lines · %d samples", snap.Mode, len(frame.Lines), len(frame.Samples))))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Sources) == 0 {
		cfg = config.GetPreset("dipole")
	}
	m := tui.New(cfg.Snapshot(), cfg.Params())
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	snap := cfg.Snapshot()
	frame := scene.Compute(snap, cfg.Params())

	svg := export.LinesToSVG(frame.Lines, snap.Sources, snap.Mode, 800, 800)
	if err := os.WriteFile(args[0], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d lines)\n", args[0], len(frame.Lines))
	return nil
}
