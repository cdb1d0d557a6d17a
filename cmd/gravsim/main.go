package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/sim"
)

var (
	dataDir    string
	configFile string
	sceneName  string
	logPath    string
	verbose    bool
	seed       int64
	// Clock and integrator overrides
	interval  time.Duration
	timeScale float64
	momentum  bool
	// Live viewer
	frameRate int
	themeName string
	// Headless runs
	ticks    int
	realtime bool
	runFor   time.Duration
	record   bool
	every    int
	svgOut   string
	// Output files
	outFile string
	series  []string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Flags are bound to package variables
// and reset to their defaults on every call.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "gravsim",
		Short:        "n-body gravity toy for the terminal",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravsim", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "open the interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a scene headless and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}

	for _, c := range []*cobra.Command{rootCmd, liveCmd, runCmd} {
		addSimFlags(c)
	}
	for _, c := range []*cobra.Command{rootCmd, liveCmd} {
		c.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
		c.Flags().StringVar(&themeName, "theme", "void", "colour theme")
		c.Flags().StringVar(&logPath, "log", "", "write logs to this file while the viewer runs")
	}
	runCmd.Flags().IntVar(&ticks, "ticks", 1000, "ticks to run as fast as possible")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "tick at the clock interval instead of as fast as possible")
	runCmd.Flags().DurationVar(&runFor, "for", 10*time.Second, "wall-clock duration for --realtime")
	runCmd.Flags().BoolVar(&record, "record", false, "store telemetry under --data")
	runCmd.Flags().IntVar(&every, "every", 1, "record every Nth tick")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the final scene as svg")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	sceneCmd := &cobra.Command{
		Use:   "scene [preset]",
		Short: "write a preset as an editable scene file",
		Args:  cobra.ExactArgs(1),
		RunE:  writeScene,
	}
	sceneCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	sceneCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "write the default run configuration",
		Args:  cobra.NoArgs,
		RunE:  writeConfig,
	}
	configCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&series, "series", []string{"bodies", "energy"}, "series to plot")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the first series as svg")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run telemetry to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(liveCmd, runCmd, presetsCmd, sceneCmd, configCmd, listCmd, plotCmd, exportCSVCmd, exportCmd)
	return rootCmd
}

func addSimFlags(c *cobra.Command) {
	c.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	c.Flags().StringVar(&sceneName, "scene", config.DefaultScene, "preset name or scene file")
	c.Flags().DurationVar(&interval, "interval", sim.DefaultInterval, "tick interval")
	c.Flags().Float64Var(&timeScale, "time-scale", 1, "time scale")
	c.Flags().BoolVar(&momentum, "momentum", false, "conserve momentum on merge")
	c.Flags().Int64Var(&seed, "seed", 0, "random seed")
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadSettings layers defaults, the config file and explicitly set flags,
// in that order, then resolves the scene. A positional argument wins over
// --scene.
func loadSettings(cmd *cobra.Command, args []string) (*config.Config, *config.SceneFile, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("time-scale") {
		cfg.TimeScale = timeScale
	}
	if flags.Changed("momentum") {
		cfg.ConserveMomentum = momentum
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("scene") {
		cfg.Scene = sceneName
	}
	if len(args) > 0 {
		cfg.Scene = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	sf, err := config.ResolveScene(cfg.Scene, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	return cfg, sf, nil
}
