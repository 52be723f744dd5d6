// Command mazebench generates random mazes with known answers and grades
// the pathsearch implementations against them.
//
// Usage:
//
//	mazebench [-config mazelab.yaml]
//
// Settings come from built-in defaults, the YAML file and MAZELAB_*
// environment variables, in increasing priority. The exit status is 1 when
// any suite fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mazelab/harness"
	"github.com/katalvlaran/mazelab/internal/config"
	"github.com/katalvlaran/mazelab/internal/logger"
	"github.com/katalvlaran/mazelab/maze"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// 1. Configuration
	cfg, err := config.NewLoader().Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebench: %v\n", err)
		return 2
	}

	// 2. Logger
	log, closeLog, err := logger.New(cfg.Logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazebench: %v\n", err)
		return 2
	}
	defer closeLog()

	// 3. Generator
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := maze.NewGenerator(maze.WithSeed(seed), maze.WithProbability(cfg.Probability))
	if err != nil {
		log.Error("mazebench: generator", "error", err)
		return 2
	}

	// 4. Runner
	hc, err := cfg.Harness()
	if err != nil {
		log.Error("mazebench: harness config", "error", err)
		return 2
	}
	reg := prometheus.NewRegistry()
	runner, err := harness.NewRunner(hc, gen,
		harness.WithLogger(log),
		harness.WithMetrics(harness.NewMetrics(reg, cfg.Metrics.Namespace)),
	)
	if err != nil {
		log.Error("mazebench: runner", "error", err)
		return 2
	}
	log.Info("mazebench: starting", "run_id", runner.RunID(), "seed", seed, "backend", hc.Backend.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Run
	sums, err := runner.Run(ctx)
	if err != nil {
		log.Error("mazebench: run aborted", "error", err)
		return 1
	}

	// 6. Export
	if cfg.Metrics.Textfile != "" {
		if err := harness.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			log.Error("mazebench: metrics export", "error", err)
			return 1
		}
	}

	return exitCode(log, sums)
}

func exitCode(log *slog.Logger, sums []harness.Summary) int {
	code := 0
	for _, s := range sums {
		if !s.Stats.Passed() {
			log.Warn("mazebench: suite failed", "suite", s.Suite)
			code = 1
		}
	}
	return code
}
