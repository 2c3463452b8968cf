package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"photo-slideshow/internal/batch"
	"photo-slideshow/internal/config"
	"photo-slideshow/internal/logging"
	"photo-slideshow/internal/report"
	"photo-slideshow/internal/util"
)

func main() {
	// Flags are registered by internal/util/flags.go's init().
	util.Parse()

	cfg, err := config.Load(*util.ConfigPath)
	util.Check(err)
	util.Apply(cfg)
	if flag.NArg() >= 1 {
		cfg.Inputs = []string{flag.Arg(0)}
	}
	util.Check(cfg.Validate())

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().
		Strs("inputs", cfg.Inputs).
		Int("workers", cfg.Workers).
		Msg("starting slideshow batch")

	timer := util.NewTimer()
	results, err := batch.Run(ctx, cfg.Inputs, cfg.Workers, batch.NewProcessor(*cfg))
	util.Check(err)

	summary := report.FromResults(results)
	logging.Info().
		Int("total_score", summary.TotalScore).
		Int("inputs", len(results)).
		Float64("elapsed_ms", timer.Ms()).
		Msg("batch finished")

	if cfg.Output.Summary != "" {
		util.Check(summary.Write(cfg.Output.Summary))
		logging.Info().Str("path", cfg.Output.Summary).Msg("wrote summary")
	}
}
