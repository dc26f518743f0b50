package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/expsearch/internal/config"
	"github.com/san-kum/expsearch/internal/export"
	"github.com/san-kum/expsearch/internal/input"
	"github.com/san-kum/expsearch/internal/metrics"
	"github.com/san-kum/expsearch/internal/search"
	"github.com/san-kum/expsearch/internal/sweep"
	"github.com/san-kum/expsearch/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger

	configFile string
	verbose    bool

	dataText   string
	target     int
	preset     string
	speed      float64
	theme      string
	barHeight  int
	showFrames bool

	// Plot size
	plotWidth  int
	plotHeight int

	// Sweep
	misses  bool
	workers int
	metric  string

	// Presets
	writePreset string

	// Export
	format  string
	outFile string
	step    int
)

// main is the entry point for the expsearch CLI. It exits with status 1 if
// command execution returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "expsearch",
		Short: "exponential search virtual lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		// Default to the interactive prompt when no command given
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, themeUsage)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "search and print the trace",
		Args:  cobra.NoArgs,
		RunE:  runSearch,
	}
	addSearchFlags(runCmd)
	runCmd.Flags().BoolVar(&showFrames, "frames", false, "print every step as a bar chart")
	runCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, themeUsage+" (with --frames)")
	runCmd.Flags().IntVar(&barHeight, "height", config.DefaultBarHeight, "bar chart height in rows")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "replay the search step by step",
		Args:  cobra.NoArgs,
		RunE:  playSearch,
	}
	addSearchFlags(playCmd)
	playCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "seconds between steps (0.1-2.0)")
	playCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, themeUsage)
	playCmd.Flags().IntVar(&barHeight, "height", config.DefaultBarHeight, "bar chart height in rows")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the sorted values and the search window",
		Args:  cobra.NoArgs,
		RunE:  plotSearch,
	}
	addSearchFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "plot-height", 10, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the trace as json, csv or svg",
		Args:  cobra.NoArgs,
		RunE:  exportSearch,
	}
	addSearchFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "json, csv or svg")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().IntVar(&step, "step", -1, "snapshot to draw for svg (default last)")
	exportCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, themeUsage)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "search for every value in the data and compare the cost",
		Args:  cobra.NoArgs,
		RunE:  sweepSearch,
	}
	addSearchFlags(sweepCmd)
	sweepCmd.Flags().BoolVar(&misses, "misses", false, "also search for values not in the data")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "concurrent searches (default GOMAXPROCS)")
	sweepCmd.Flags().StringVar(&metric, "metric", "steps", "metric to plot (steps, probes, midpoints, bound_width)")
	sweepCmd.Flags().IntVar(&plotWidth, "width", 60, "plot width")
	sweepCmd.Flags().IntVar(&plotHeight, "plot-height", 10, "plot height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}
	presetsCmd.Flags().StringVar(&writePreset, "write", "", "write the named preset as a config file (with --out)")
	presetsCmd.Flags().StringVarP(&outFile, "out", "o", "", "config file to write")

	explainCmd := &cobra.Command{
		Use:   "explain",
		Short: "explain the algorithm and the bar colors",
		Args:  cobra.NoArgs,
		RunE:  explain,
	}

	rootCmd.AddCommand(runCmd, playCmd, plotCmd, sweepCmd, exportCmd, presetsCmd, explainCmd)
	return rootCmd
}

var themeUsage = "color theme (" + strings.Join(viz.ThemeNames(), ", ") + ")"

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dataText, "data", input.FormatSequence(config.DefaultData), "comma separated integers")
	cmd.Flags().IntVar(&target, "target", config.DefaultTarget, "value to search for")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset data and target")
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

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
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		data, err := input.ParseSequence(dataText)
		if err != nil {
			return nil, err
		}
		cfg.Data = data
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("height") {
		cfg.BarHeight = barHeight
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func searchFor(cmd *cobra.Command) (*config.Config, search.Result[int], error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, search.Result[int]{}, err
	}
	res := search.Search(cfg.Data, cfg.Target)
	logger.Debug("search complete",
		zap.Int("n", len(cfg.Data)),
		zap.Int("target", cfg.Target),
		zap.Int("index", res.Index),
		zap.Int("steps", res.Trace.Len()))
	return cfg, res, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, res, err := searchFor(cmd)
	if err != nil {
		return err
	}
	return printRun(cmd.OutOrStdout(), cfg, res, showFrames)
}

func printRun(out io.Writer, cfg *config.Config, res search.Result[int], frames bool) error {
	fmt.Fprintf(out, "sorted array (precondition): %v\n", res.Trace.Sequence())
	fmt.Fprintf(out, "target: %d\n\n", res.Trace.Target())

	if frames {
		th := viz.GetTheme(cfg.Theme)
		for i := range res.Trace.Len() {
			fmt.Fprintln(out, viz.RenderFrame(th, res.Trace, i, cfg.BarHeight))
		}
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tSTATUS\tI\tLOW\tHIGH\tMID\tACTION")
	for i, s := range res.Trace.All() {
		st := export.NewStep(i, s)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			st.Step, st.Status, dash(st.I), dash(st.Low), dash(st.High), dash(st.Mid), st.Action)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, viz.Summary(res))
	fmt.Fprintln(out, "\nmetrics:")
	stats := metrics.Collect(res.Trace.Events(), metrics.Default()...)
	for _, m := range metrics.Default() {
		fmt.Fprintf(out, "  %s: %.0f\n", m.Name(), stats[m.Name()])
	}
	return nil
}

func dash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func playSearch(cmd *cobra.Command, args []string) error {
	cfg, res, err := searchFor(cmd)
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		logger.Info("stdout is not a terminal, printing frames instead")
		return printRun(cmd.OutOrStdout(), cfg, res, true)
	}
	return replay(cfg, res)
}

func replay(cfg *config.Config, res search.Result[int]) error {
	m := viz.NewModel(res, viz.Options{
		Delay:     cfg.FrameDelay(),
		Theme:     cfg.Theme,
		BarHeight: cfg.BarHeight,
	})
	logger.Debug("starting replay", zap.Duration("delay", cfg.FrameDelay()), zap.String("theme", cfg.Theme))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	fmt.Println(viz.Summary(res))
	return nil
}

func plotSearch(cmd *cobra.Command, args []string) error {
	_, res, err := searchFor(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if g := viz.ValuesGraph(res.Trace, plotWidth, plotHeight); g != "" {
		fmt.Fprintln(out, g)
		fmt.Fprintln(out)
	}
	if g := viz.WindowGraph(res.Trace, plotWidth, plotHeight); g != "" {
		fmt.Fprintln(out, g)
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, viz.Summary(res))
	return nil
}

func exportSearch(cmd *cobra.Command, args []string) error {
	cfg, res, err := searchFor(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(format) {
	case "json":
		err = export.WriteJSON(out, export.NewDocument(res))
	case "csv":
		err = export.WriteCSV(out, res.Trace)
	case "svg":
		idx := step
		if idx < 0 {
			idx = res.Trace.Len() - 1
		}
		if idx >= res.Trace.Len() {
			return fmt.Errorf("step %d out of range (trace has %d steps)", idx, res.Trace.Len())
		}
		_, err = fmt.Fprintln(out, export.SnapshotToSVG(res.Trace.At(idx), viz.GetTheme(cfg.Theme), 800, 300))
	default:
		return fmt.Errorf("unknown format: %s (json, csv, svg)", format)
	}
	if err != nil {
		return err
	}

	if outFile != "" {
		logger.Info("trace exported", zap.String("path", outFile), zap.String("format", format))
	}
	return nil
}

func sweepSearch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	known := false
	for _, m := range metrics.Default() {
		known = known || m.Name() == metric
	}
	if !known {
		return fmt.Errorf("unknown metric: %s", metric)
	}

	report, err := sweep.Sweep(cmd.Context(), cfg.Data, sweep.Options{Workers: workers, Misses: misses})
	if err != nil {
		return err
	}
	logger.Debug("sweep complete", zap.Int("runs", len(report.Runs)), zap.Bool("misses", misses))

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TARGET\tINDEX\tSTEPS\tPROBES\tMIDPOINTS\tBOUND")
	for _, run := range report.Runs {
		fmt.Fprintf(w, "%d\t%d\t%.0f\t%.0f\t%.0f\t%.0f\n", run.Target, run.Index,
			run.Metrics["steps"], run.Metrics["probes"], run.Metrics["midpoints"], run.Metrics["bound_width"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	best, worst := report.Extremes(metric)
	fmt.Fprintf(out, "\n%s: mean %.2f, min %.0f (target %d), max %.0f (target %d)\n\n",
		metric, report.Mean(metric), best.Metrics[metric], best.Target, worst.Metrics[metric], worst.Target)
	if g := viz.SeriesGraph(report.Series(metric), plotWidth, plotHeight, metric+" per target"); g != "" {
		fmt.Fprintln(out, g)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	if writePreset != "" {
		p := config.GetPreset(writePreset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", writePreset, config.ListPresets())
		}
		if outFile == "" {
			return fmt.Errorf("--write needs --out")
		}
		if err := config.Save(outFile, p); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "preset %s written to %s\n", writePreset, outFile)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tTARGET\tDATA")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, p.Target, input.FormatSequence(p.Data))
	}
	return w.Flush()
}
