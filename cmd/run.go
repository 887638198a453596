package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/vocabquiz/internal/app"
	"github.com/abhisek/vocabquiz/internal/config"
	"github.com/abhisek/vocabquiz/internal/logger"
	"github.com/abhisek/vocabquiz/internal/quiz"
	"github.com/abhisek/vocabquiz/internal/screens/play"
	"github.com/abhisek/vocabquiz/internal/wordbank"
)

// runApp resolves config, builds the logger and word bank loader, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	loader, err := newLoader(cfg)
	if err != nil {
		return err
	}

	opts := app.Options{
		Loader: loader,
		Logger: log,
	}
	if cfg.Seed != 0 {
		opts.SessionOpts = append(opts.SessionOpts, quiz.WithSeed(cfg.Seed))
	}

	log.Info("starting", zap.String("source", cfg.Source), zap.String("catalog", cfg.Catalog))
	return app.Run(opts)
}

// newLoader returns a loader for the configured word bank and catalog. The
// source is resolved eagerly so a malformed DSN fails before the UI starts.
func newLoader(cfg *config.Config) (play.Loader, error) {
	src, err := wordbank.Open(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("open word bank: %w", err)
	}
	catalog := cfg.Catalog

	return func(ctx context.Context) (*quiz.Pool, error) {
		raw, err := src.Load(ctx)
		if err != nil {
			return nil, &quiz.DataLoadError{Source: src.String(), Err: err}
		}
		extras, err := wordbank.LoadCatalog(catalog)
		if err != nil {
			return nil, &quiz.DataLoadError{Source: catalog, Err: err}
		}
		return quiz.BuildPool(raw, extras), nil
	}, nil
}

// loadPool builds the pool synchronously for the non-interactive commands.
func loadPool(cmd *cobra.Command) (*quiz.Pool, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	loader, err := newLoader(cfg)
	if err != nil {
		return nil, nil, err
	}
	pool, err := loader(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return pool, cfg, nil
}
