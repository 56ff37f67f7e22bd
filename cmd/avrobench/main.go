// Package main provides the CLI entry point for avrobench, an Avro
// serialization benchmark tool.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/weiihann/avrobench/harness"
	"github.com/weiihann/avrobench/report"
	"github.com/weiihann/avrobench/scenario"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "avrobench",
		Short: "Avro serialization benchmark tool",
		Long: `Avrobench measures the throughput and output size of Avro binary
serialization: schema parsing, encode/decode of scalar and record datums, and
object-container-file batch reads and writes with optional block compression.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		simpleIters  int
		complexIters int
		tableRows    []int
		repeats      int
		compressRows int
		codecs       []string
		tempDir      string
		outputJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all serialization benchmarks",
		Long: `Run the five benchmark scenarios in order: simple record, complex
record, container-file batch I/O, compressed writes, and raw encoding sizes.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := scenario.DefaultConfig()
			cfg.SimpleIters = simpleIters
			cfg.ComplexIters = complexIters
			cfg.TableRows = tableRows
			cfg.Repeats = repeats
			cfg.CompressRows = compressRows
			cfg.Codecs = codecs
			if tempDir != "" {
				cfg.TempDir = tempDir
			}

			return runBenchmark(cmd.Context(), logger, cfg, outputJSON)
		},
	}

	defaults := scenario.DefaultConfig()

	flags := cmd.Flags()
	flags.IntVar(&simpleIters, "simple-iters", defaults.SimpleIters,
		"Iterations for the simple record scenario")
	flags.IntVar(&complexIters, "complex-iters", defaults.ComplexIters,
		"Iterations for the complex record scenario")
	flags.IntSliceVar(&tableRows, "table-rows", defaults.TableRows,
		"Row counts for the container-file scenario")
	flags.IntVar(&repeats, "repeats", defaults.Repeats,
		"Timed repetitions for whole-file scenarios")
	flags.IntVar(&compressRows, "compress-rows", defaults.CompressRows,
		"Row count for the compression scenario")
	flags.StringSliceVar(&codecs, "codecs", defaults.Codecs,
		"Compression codecs to compare (null, deflate, snappy)")
	flags.StringVar(&tempDir, "temp-dir", "",
		"Directory for temporary container files (default: system temp)")
	flags.BoolVar(&outputJSON, "json", false,
		"Also emit results as JSON after the summary table")

	return cmd
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	cfg scenario.Config,
	outputJSON bool,
) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting benchmark",
		slog.Int("simple_iters", cfg.SimpleIters),
		slog.Int("complex_iters", cfg.ComplexIters),
		slog.Any("table_rows", cfg.TableRows),
		slog.Int("repeats", cfg.Repeats),
		slog.Any("codecs", cfg.Codecs),
	)

	banner := strings.Repeat("=", 70)
	fmt.Println(banner)
	fmt.Println("Avro Serialization Benchmark")
	fmt.Println(banner)

	results := harness.NewResults()

	for _, sc := range scenario.List(cfg) {
		logger.InfoContext(ctx, "running scenario",
			slog.String("scenario", sc.Name),
		)

		start := time.Now()

		fmt.Println()
		if err := sc.Run(os.Stdout, results); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}

		logger.InfoContext(ctx, "scenario finished",
			slog.String("scenario", sc.Name),
			slog.Duration("elapsed", time.Since(start)),
		)
	}

	fmt.Println()
	fmt.Println(banner)

	if err := report.Generate(os.Stdout, results); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	if outputJSON {
		fmt.Println()
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	}

	logger.InfoContext(ctx, "benchmark complete")

	return nil
}
