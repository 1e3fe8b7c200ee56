package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/star/scoped/internal/config"
	"github.com/star/scoped/internal/launch"
	"github.com/star/scoped/internal/metrics"
	"github.com/star/scoped/internal/version"
)

// app carries what every subcommand needs once the root command has run its
// pre-run hook.
type app struct {
	logger *slog.Logger
	cfg    config.Config
	clock  launch.Clock

	configPath string
	logLevel   string
	textfile   string
	now        string
}

func main() {
	a := &app{clock: launch.SystemClock}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "scoped",
		Short:   "Launch planning utilities",
		Version: version.String(),
		Long: `scoped estimates payload capacity from liftoff thrust and orbit altitude,
counts calendar days until a launch, and summarizes launch records.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.flushMetrics()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", os.Getenv("SCOPED_CONFIG"), "path to a YAML config file")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&a.textfile, "textfile", "", "write Prometheus metrics to this file after the command runs")
	flags.StringVar(&a.now, "now", "", "evaluate countdowns as of this date instead of the system clock")

	rootCmd.AddCommand(payloadCmd(a))
	rootCmd.AddCommand(countdownCmd(a))
	rootCmd.AddCommand(launchesCmd(a))
	rootCmd.AddCommand(vehiclesCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level, err := parseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(a.logger)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	if a.textfile == "" {
		a.textfile = cfg.MetricsTextfile
	}

	if a.now != "" {
		loc, err := a.cfg.Location()
		if err != nil {
			return err
		}
		if _, err := parseDate(a.now, loc); err != nil {
			return fmt.Errorf("--now: %w", err)
		}
	}

	a.logger.Debug("configuration loaded", "config", a.configPath, "vehicles", len(cfg.Vehicles))
	return nil
}

// clockIn returns the clock for countdowns whose day boundaries fall in loc.
// A bare --now date is midnight in loc, so it is parsed per call rather than
// once at startup.
func (a *app) clockIn(loc *time.Location) (launch.Clock, error) {
	if a.now == "" {
		return a.clock, nil
	}
	t, err := parseDate(a.now, loc)
	if err != nil {
		return nil, fmt.Errorf("--now: %w", err)
	}
	a.logger.Debug("using fixed clock", "now", t.Format(time.RFC3339), "timezone", loc.String())
	return launch.FixedClock(t), nil
}

func (a *app) flushMetrics() error {
	if a.textfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.textfile); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	a.logger.Debug("metrics written", "path", a.textfile)
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: must be debug, info, warn or error", s)
	}
	return level, nil
}

// parseDate accepts an RFC 3339 timestamp, or a bare YYYY-MM-DD date taken
// as midnight in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	if t, ok := launch.ParseDate(s); ok {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is neither RFC 3339 nor YYYY-MM-DD", launch.ErrInvalidInput, s)
	}
	return t, nil
}
