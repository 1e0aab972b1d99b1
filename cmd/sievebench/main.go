// Package main provides the CLI entry point for sievebench, a
// self-timed Sieve of Eratosthenes benchmark.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rbergen/BitsAndBobs/bench"
	"github.com/rbergen/BitsAndBobs/config"
	"github.com/rbergen/BitsAndBobs/report"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger, os.Args[1:])
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. rawArgs are the command-line
// tokens as the user typed them; mode reconciliation needs their order,
// which parsed flags no longer carry.
func newRootCmd(logger *slog.Logger, rawArgs []string) *cobra.Command {
	root := &cobra.Command{
		Use:   "sievebench",
		Short: "Self-timed Sieve of Eratosthenes benchmark",
		Long: `Sievebench repeatedly sieves the primes up to a configurable limit,
counts how many passes fit in a wall-clock budget, and validates the
final prime count against a table of known values.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Malformed invocations print the failing command's usage along
	// with the error.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})

	root.AddCommand(newRunCmd(logger, rawArgs))
	root.AddCommand(newSweepCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger, rawArgs []string) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sieve benchmark",
		Long: `Run sieve passes until the wall-clock budget is spent (or exactly one
pass with --oneshot), then report pass count, timing and validation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}

			last := config.LastModeSelector(cmd.Flags(), rawArgs)

			return runBenchmark(cmd.Context(), logger, cmd.OutOrStdout(), cfg, last)
		},
	}

	flags := cmd.Flags()
	flags.Int64P("limit", "l", config.DefaultLimit,
		"Upper bound (inclusive) to sieve primes up to")
	flags.IntP("seconds", "s", config.DefaultSeconds,
		"Wall-clock budget for timed runs, in seconds")
	flags.BoolP("oneshot", "1", false,
		"Run exactly one pass and stop")
	flags.BoolP("dragrace", "d", false,
		"Append the drag-race summary line after a timed run")
	flags.BoolP("quiet", "q", false,
		"Suppress the banner and separator lines")
	flags.Bool("json", false,
		"Output the result as JSON instead of text")
	flags.StringVar(&cfgFile, "config", "",
		"Path to a settings file (YAML, TOML or JSON)")

	return cmd
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	cfg config.Config,
	last config.Mode,
) error {
	modes := config.ResolveModes(cfg.Oneshot, cfg.Dragrace, last)
	cfg.Oneshot = modes.Oneshot
	cfg.Dragrace = modes.Dragrace

	if modes.Warning != "" {
		logger.WarnContext(ctx, modes.Warning)
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.Int64("limit", cfg.Limit),
		slog.Int("seconds", cfg.Seconds),
		slog.Bool("oneshot", cfg.Oneshot),
		slog.Bool("dragrace", cfg.Dragrace),
	)

	driver, err := bench.NewDriver(bench.Options{
		Limit:   cfg.Limit,
		Budget:  cfg.Budget(),
		Oneshot: cfg.Oneshot,
	}, logger)
	if err != nil {
		return err
	}

	report.Preamble(out, cfg)

	result := driver.Run()

	if cfg.JSON {
		if err := report.JSON(out, result); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
	} else {
		report.Results(out, result, cfg.Quiet)
	}

	if cfg.Dragrace {
		report.Dragrace(out, result)
	}

	logger.InfoContext(ctx, "benchmark complete",
		slog.Int("passes", result.Passes),
		slog.Bool("valid", result.Valid),
	)

	return nil
}

func newSweepCmd(logger *slog.Logger) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Validate one sieve pass per reference limit",
		Long: `Run a single sieve pass for every limit in the reference table and
check each prime count against its known value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd.Context(), logger, cmd.OutOrStdout(), outputJSON)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of a table")

	return cmd
}

func runSweep(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	outputJSON bool,
) error {
	logger.InfoContext(ctx, "starting sweep")

	results, err := bench.RunSweep(logger)
	if err != nil {
		return fmt.Errorf("run sweep: %w", err)
	}

	if outputJSON {
		if err := report.SweepJSON(out, results); err != nil {
			return fmt.Errorf("write JSON report: %w", err)
		}
	} else {
		if err := report.Sweep(out, results); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	logger.InfoContext(ctx, "sweep complete",
		slog.Int("limits", len(results)),
	)

	return nil
}
