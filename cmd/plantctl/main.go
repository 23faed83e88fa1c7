package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/san-kum/plantctl/internal/analysis"
	"github.com/san-kum/plantctl/internal/config"
	"github.com/san-kum/plantctl/internal/eventlog"
	"github.com/san-kum/plantctl/internal/experiment"
	"github.com/san-kum/plantctl/internal/optim"
	"github.com/san-kum/plantctl/internal/sim"
	"github.com/san-kum/plantctl/internal/storage"
	"github.com/san-kum/plantctl/internal/viz"
)

const (
	envDataDir  = "PLANTCTL_DATA"
	envLogLevel = "PLANTCTL_LOG_LEVEL"
)

var (
	dataDir  string
	logLevel string
	logger   *slog.Logger

	// scenario flags, applied over the config only when set
	configFile  string
	preset      string
	days        int
	seed        int64
	firms       int
	targeter    string
	algorithm   string
	decorators  []string
	hideBestBid bool
	eventsDir   string

	runName string
	noSave  bool
	firmID  string
	outPath string

	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	transient  int

	tuneRanges []string
	metricName string
	minimize   bool

	numRuns int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "plantctl",
		Short:         "plant control lab: wage, workforce and profit loops",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnv(".env"); err != nil {
				return err
			}
			if v := os.Getenv(envDataDir); v != "" && !cmd.Flags().Changed("data") {
				dataDir = v
			}
			if v := os.Getenv(envLogLevel); v != "" && !cmd.Flags().Changed("log-level") {
				logLevel = v
			}
			l, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".plantctl", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario and store the series",
		Args:  cobra.NoArgs,
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().StringVar(&runName, "name", "run", "name stored with the run")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a scenario with a live dashboard",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&firmID, "firm", "", "firm to plot (default: first)")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export the daily series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export metadata and series to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "workforce spectrum and wage/workers phase portrait",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&firmID, "firm", "", "firm to analyze (default: first)")
	analyzeCmd.Flags().IntVar(&transient, "transient", 0, "days to skip before analysis")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep one parameter and show where the workforce settles",
		Args:  cobra.NoArgs,
		RunE:  sweep,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "pid.kp", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.01, "lowest value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1, "highest value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 20, "number of values")
	sweepCmd.Flags().IntVar(&transient, "transient", 100, "days ignored at the start of each run")

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid search parameters against a metric",
		Args:  cobra.NoArgs,
		RunE:  tune,
	}
	addScenarioFlags(tuneCmd)
	tuneCmd.Flags().StringArrayVar(&tuneRanges, "range", nil, "name=lo:hi:n, repeatable")
	tuneCmd.Flags().StringVar(&metricName, "metric", "mean_profit", "metric to optimize")
	tuneCmd.Flags().BoolVar(&minimize, "minimize", false, "minimize instead of maximize")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "repeat a scenario under consecutive seeds",
		Args:  cobra.NoArgs,
		RunE:  ensemble,
	}
	addScenarioFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 8, "number of seeds")

	presetsCmd := &cobra.Command{
		Use:   "presets [group]",
		Short: "list preset groups, or the presets of a group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, g := range config.ListGroups() {
					fmt.Printf("%s: %s\n", g, strings.Join(config.ListPresets(g), ", "))
				}
				return nil
			}
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				return fmt.Errorf("no presets in group %q (groups: %v)", args[0], config.ListGroups())
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list registered targeters, maximizers, algorithms, decorators and parameters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			reg := experiment.NewRegistry()
			fmt.Printf("targeters:  %s\n", strings.Join(reg.ListTargeters(), ", "))
			fmt.Printf("maximizers: %s\n", strings.Join(reg.ListMaximizers(), ", "))
			fmt.Printf("algorithms: %s\n", strings.Join(reg.ListAlgorithms(), ", "))
			fmt.Printf("decorators: %s\n", strings.Join(reg.ListDecorators(), ", "))
			fmt.Printf("parameters: %s\n", strings.Join(config.ParamNames(), ", "))
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd,
		analyzeCmd, sweepCmd, tuneCmd, ensembleCmd, presetsCmd, algorithmsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      l,
		TimeFormat: "15:04:05",
	})), nil
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset as group/name")
	cmd.Flags().IntVar(&days, "days", config.DefaultDays, "days to simulate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().IntVar(&firms, "firms", config.DefaultFirms, "number of firms")
	cmd.Flags().StringVar(&targeter, "targeter", "", "targeter name")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "maximization algorithm name")
	cmd.Flags().StringSliceVar(&decorators, "decorator", nil, "decorators, innermost first")
	cmd.Flags().BoolVar(&hideBestBid, "hide-best-bid", false, "hide the labor market's best bid")
	cmd.Flags().StringVar(&eventsDir, "events-dir", "", "write control events to a SQLite file in this directory")
}

// loadConfig reads the config file, or the preset, or the defaults, then
// applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	case preset != "":
		c, err := presetConfig(preset)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("days") {
		cfg.Scenario.Days = days
	}
	if flags.Changed("seed") {
		cfg.Scenario.Seed = seed
	}
	if flags.Changed("firms") {
		cfg.Scenario.Firms = firms
	}
	if flags.Changed("targeter") {
		cfg.Control.Targeter = targeter
	}
	if flags.Changed("algorithm") {
		cfg.Control.Algorithm = algorithm
	}
	if flags.Changed("decorator") {
		cfg.Control.Decorators = append([]string(nil), decorators...)
	}
	if flags.Changed("hide-best-bid") {
		cfg.Scenario.HideBestBid = hideBestBid
	}
	if flags.Changed("events-dir") {
		cfg.Logging.EventsDir = eventsDir
	}
	if cfg.Logging.Level != "" && !flags.Changed("log-level") && os.Getenv(envLogLevel) == "" {
		l, err := newLogger(cfg.Logging.Level)
		if err != nil {
			return nil, err
		}
		logger = l
	}
	return cfg, cfg.Validate()
}

func presetConfig(name string) (*config.Config, error) {
	group, item, ok := strings.Cut(name, "/")
	if !ok {
		return nil, fmt.Errorf("preset %q: want group/name (groups: %v)", name, config.ListGroups())
	}
	cfg := config.GetPreset(group, item)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets(group))
	}
	return cfg, nil
}

// eventSink logs control events at debug level and, when configured, to a
// SQLite file. The returned func flushes and closes the file.
func eventSink(cfg *config.Config, name string) (eventlog.Logger, func(), error) {
	sinks := eventlog.Multi{eventlog.NewSlog(logger).WithLevel(slog.LevelDebug)}
	if cfg.Logging.EventsDir == "" {
		return sinks, func() {}, nil
	}
	db, err := eventlog.NewSQLite(cfg.Logging.EventsDir, name)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("recording events", "path", db.Path())
	return append(sinks, db), func() { db.Close() }, nil
}

func buildExperiment(cmd *cobra.Command) (*experiment.Experiment, *config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	events, closeEvents, err := eventSink(cfg, "")
	if err != nil {
		return nil, nil, nil, err
	}
	exp, err := experiment.New(cfg, experiment.NewRegistry(), events)
	if err != nil {
		closeEvents()
		return nil, nil, nil, err
	}
	return exp, cfg, closeEvents, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	exp, cfg, closeEvents, err := buildExperiment(cmd)
	if err != nil {
		return err
	}
	defer closeEvents()

	c := cfg.Control
	logger.Info("starting run",
		"days", cfg.Scenario.Days,
		"firms", cfg.Scenario.Firms,
		"seed", cfg.Scenario.Seed,
		"targeter", c.Targeter,
		"algorithm", c.Algorithm,
		"decorators", c.Decorators,
	)
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIRM\tWAGE\tWORKERS\tTARGET\tPROFIT")
	for _, a := range exp.Assemblies() {
		series := result.Firm(a.Firm.ID())
		if len(series) == 0 {
			continue
		}
		last := series[len(series)-1]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f\n", last.Firm, last.Wage, last.Workers, last.Target, last.Profit)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printMetrics(result.Metrics)

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(runName, cfg, result)
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id, "dir", dataDir)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println()
	for _, name := range names {
		fmt.Printf("%-14s %.4f\n", name, m[name])
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	exp, cfg, closeEvents, err := buildExperiment(cmd)
	if err != nil {
		return err
	}
	defer closeEvents()

	title := fmt.Sprintf("%s / %s", cfg.Control.Targeter, cfg.Control.Algorithm)
	return viz.Run(cmd.Context(), exp, title, cfg.Scenario.Days)
}

func sweep(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg := experiment.NewRegistry()
	build := optim.ConfigBuilder(base, reg)

	run := func(ctx context.Context, v float64) ([]float64, error) {
		exp, err := build(map[string]float64{sweepParam: v})
		if err != nil {
			return nil, err
		}
		result, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}
		firm := exp.Assemblies()[0].Firm.ID()
		return sim.Series(result.Firm(firm), sim.Workers), nil
	}

	points, err := analysis.Sweep(cmd.Context(), run, sweepMin, sweepMax, sweepSteps, transient)
	if err != nil {
		return err
	}
	fmt.Printf("settled workforce of the first firm over %s in [%g, %g]\n\n", sweepParam, sweepMin, sweepMax)
	fmt.Println(analysis.BifurcationToASCII(points, 70, 20))
	for _, p := range points {
		fmt.Printf("%-10.4g %d distinct values\n", p.Param, len(p.Values))
	}
	return nil
}

// parseRange reads name=lo:hi:n.
func parseRange(s string) (string, []float64, error) {
	name, bounds, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("range %q: want name=lo:hi:n", s)
	}
	parts := strings.Split(bounds, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("range %q: want name=lo:hi:n", s)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", nil, fmt.Errorf("range %q: %w", s, err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", nil, fmt.Errorf("range %q: %w", s, err)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 1 {
		return "", nil, fmt.Errorf("range %q: n must be a positive integer", s)
	}
	return name, optim.Linspace(lo, hi, n), nil
}

func tune(cmd *cobra.Command, args []string) error {
	if len(tuneRanges) == 0 {
		return fmt.Errorf("at least one --range is required (parameters: %v)", config.ParamNames())
	}
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(tuneRanges))
	ranges := make([][]float64, 0, len(tuneRanges))
	for _, r := range tuneRanges {
		name, values, err := parseRange(r)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	goal := optim.Maximize
	if minimize {
		goal = optim.Minimize
	}
	gs := optim.NewGridSearch(names, ranges, goal)
	best, value, err := gs.Search(cmd.Context(), optim.ConfigBuilder(base, experiment.NewRegistry()), metricName)
	if err != nil {
		return err
	}

	fmt.Printf("best %s: %.4f\n", metricName, value)
	for _, name := range names {
		fmt.Printf("  %-20s %g\n", name, best[name])
	}
	return nil
}

func ensemble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	results, err := experiment.Ensemble(cmd.Context(), cfg, experiment.NewRegistry(), numRuns)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("--runs must be positive")
	}

	names := make([]string, 0)
	for name := range results[0].Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("%d runs from seed %d\n\n", len(results), cfg.Scenario.Seed)
	for _, name := range names {
		fmt.Printf("%-14s %.4f\n", name, sim.Mean(results, name))
	}
	return nil
}

// loadEnv reads KEY=VALUE pairs from path into the environment without
// overriding variables already set. A missing file is fine.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
