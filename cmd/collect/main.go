package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/vanshika/bankreviews/internal/config"
	"github.com/vanshika/bankreviews/internal/generator"
	"github.com/vanshika/bankreviews/internal/logging"
	"github.com/vanshika/bankreviews/internal/pipeline"
	"github.com/vanshika/bankreviews/internal/registry"
	"github.com/vanshika/bankreviews/internal/tracing"
)

func main() {
	var exitCode int
	defer func() {
		os.Exit(exitCode)
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		exitCode = 1
		return
	}

	output := flag.String("output", cfg.Output.Path, "path of the merged reviews CSV")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	exitCode = run(ctx, cfg, *output, os.Stdout, os.Stderr)
}

// run collects every registered bank into output and returns the process
// exit code. Spans are flushed before it returns, failed runs included.
func run(ctx context.Context, cfg config.Config, output string, stdout, stderr io.Writer) int {
	runID := uuid.NewString()
	logger := logging.New(cfg.Logging, stderr).With("component", "collect", "run_id", runID)

	tracer, err := tracing.New(ctx, cfg.Tracing)
	if err != nil {
		logger.Error("failed to initialise tracing", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()

	banks, err := registry.Default()
	if err != nil {
		logger.Error("invalid bank registry", "error", err)
		return 1
	}

	pcfg := pipeline.DefaultConfig()
	gen := generator.New(generator.Config{
		DaysBack:      pcfg.DaysBack,
		RatingWeights: generator.DefaultRatingWeights,
		Seed:          pcfg.GeneratorSeed,
	})
	client := &http.Client{Timeout: cfg.Sources.HTTPTimeout}

	sources := pipeline.NewSources(pcfg, cfg.Sources, client, gen, logger, tracer)
	p := pipeline.New(pcfg, sources, logger, tracer).WithProgress(stdout)

	logger.Info("collection started", "banks", len(banks), "output", output)
	summary, err := p.Run(ctx, banks, output)
	if err != nil {
		logger.Error("collection failed", "error", err)
		return 1
	}
	summary.RunID = runID
	summary.Fprint(stdout)
	return 0
}
