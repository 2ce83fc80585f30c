package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	logFile    string
	logLevel   string

	preset    string
	values    string
	shape     string
	length    int
	seed      int64
	speed     float64
	theme     string
	holdFinal float64

	format    string
	showChart bool
	frame     int
	force     bool
	numRuns   int

	log      *logrus.Logger
	closeLog = func() error { return nil }
)

// main launches the interactive menu when no subcommand is given and exits
// with status 1 on error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "step-by-step sorting algorithm visualizer",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, closer, err := logging.New(logFile, logLevel)
			if err != nil {
				return err
			}
			log, closeLog = l, closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLog()
		},
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "animate one sort and exit",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSort,
	}
	addInputFlags(runCmd)
	runCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "initial speed (0-2)")
	runCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	runCmd.Flags().Float64Var(&holdFinal, "hold", config.DefaultHoldFinal, "seconds to hold the sorted frame")

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print every step of a sort",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceSort,
	}
	addInputFlags(traceCmd)
	traceCmd.Flags().StringVarP(&format, "format", "f", string(export.FormatTable), "output format (table, csv, json, svg)")
	traceCmd.Flags().BoolVar(&showChart, "chart", false, "plot inversions per step")
	traceCmd.Flags().IntVar(&frame, "frame", -1, "write only this step as an svg (negative counts from the end)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list config presets and input shapes",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm...]",
		Short: "compare algorithms over many random inputs",
		RunE:  benchAlgorithms,
	}
	addInputFlags(benchCmd)
	benchCmd.Flags().IntVar(&numRuns, "runs", 100, "inputs per algorithm")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with defaults or a preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().StringVar(&preset, "preset", "", "start from a preset configuration")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(runCmd, traceCmd, listCmd, presetsCmd, benchCmd, initCmd)
	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVarP(&values, "input", "i", "", "custom numbers separated by ','")
	cmd.Flags().StringVar(&shape, "shape", config.DefaultPreset, "random input shape")
	cmd.Flags().IntVarP(&length, "length", "n", input.DefaultLength, "random input length")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
}

// resolveConfig layers preset, config file, positional algorithm and flags,
// in that order. Flags only win when set explicitly.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	flags := cmd.Flags()
	if flags.Lookup("preset") != nil && preset != "" {
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
		log.WithField("path", configFile).Info("config loaded")
	}

	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if flags.Changed("input") {
		cfg.Input.Mode, cfg.Input.Values = config.ModeCustom, values
	}
	if flags.Changed("shape") {
		cfg.Input.Mode, cfg.Input.Preset = config.ModeRandom, shape
	}
	if flags.Changed("length") {
		cfg.Input.Length = length
	}
	if flags.Changed("seed") {
		cfg.Input.Seed = seed
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("hold") {
		cfg.HoldFinal = holdFinal
	}
	if cfg.Input.Seed == 0 {
		cfg.Input.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	return viz.RunInteractive(cfg, log)
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	kind, data, err := resolveInput(cfg)
	if err != nil {
		return err
	}
	return viz.Run(cfg, kind, data, log)
}

func resolveInput(cfg *config.Config) (sorting.Kind, []int, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return 0, nil, err
	}
	data, err := cfg.Data(cfg.Rand())
	if err != nil {
		return 0, nil, err
	}
	return kind, data, nil
}

func traceSort(cmd *cobra.Command, args []string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	kind, data, err := resolveInput(cfg)
	if err != nil {
		return err
	}

	sess := session.New(session.Config{Kind: kind, Data: data}, log)
	if err := sess.Setup(metrics.Default()); err != nil {
		return err
	}
	result, err := sess.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("trace interrupted after %d steps: %w", len(result.Snapshots), err)
	}

	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("frame") {
		return export.WriteFrame(out, result, frame, 640, 240, export.DefaultPalette)
	}
	if err := export.Write(out, f, result); err != nil {
		return err
	}

	if showChart {
		if chart := export.Chart(result.Series["inversions"], "inversions remaining", 60, 10); chart != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, chart)
		}
	}

	return nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tDESCRIPTION")
	for _, k := range sorting.Kinds() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", k.Slug(), k, k.Info())
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tALGORITHM\tSPEED\tINPUT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		in := p.Input.Preset
		if p.Input.Mode == config.ModeCustom {
			in = p.Input.Values
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", name, p.Algorithm, p.Speed, in)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\ninput shapes: %s\n", strings.Join(input.PresetNames(), ", "))
	return nil
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	if cfg.Input.Mode == config.ModeCustom {
		return errors.New("bench needs random input, not --input")
	}

	kinds := sorting.Kinds()
	if len(args) > 0 {
		kinds = make([]sorting.Kind, 0, len(args))
		for _, name := range args {
			k, err := sorting.ParseKind(name)
			if err != nil {
				return err
			}
			kinds = append(kinds, k)
		}
	}

	inputFor := func(seed int64) ([]int, error) {
		c := *cfg
		c.Input.Seed = seed
		return c.Data(c.Rand())
	}

	var w *tabwriter.Writer
	for i, kind := range kinds {
		start := time.Now()
		results, err := session.NewEnsemble(kind, numRuns, cfg.Input.Seed, inputFor, log).Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s: %w", kind.Slug(), err)
		}
		sum := session.Summarize(kind, results)
		log.WithFields(logrus.Fields{"algorithm": kind.Slug(), "runs": sum.Runs, "elapsed": time.Since(start)}).Info("bench finished")

		if i == 0 {
			w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ALGORITHM\tRUNS\t%s\n", strings.ToUpper(strings.Join(sum.Names(), "\t")))
		}
		row := []string{kind.Slug(), fmt.Sprintf("%d", sum.Runs)}
		for _, name := range sum.Names() {
			row = append(row, fmt.Sprintf("%.1f", sum.Means[name]))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if w == nil {
		return nil
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "sortviz.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.WithField("path", path).Info("config written")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
