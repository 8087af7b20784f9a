package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/dietlog/pkg/app"
	"tableflip.dev/dietlog/pkg/celebrate"
	"tableflip.dev/dietlog/pkg/logging"
	"tableflip.dev/dietlog/pkg/store"
	"tableflip.dev/dietlog/pkg/timeline"
)

// env is everything a command needs to reach the journal.
type env struct {
	Config  *store.Config
	Logger  zerolog.Logger
	Loc     *time.Location
	Backend store.Backend
	Service *app.Service
}

func loadConfig() (*store.Config, zerolog.Logger, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, nil)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logger, nil
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	backend, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("storage", backend.Describe()).Msg("opened storage")

	svc, err := app.Open(ctx, backend, app.Options{
		Resolver:      timeline.New(loc),
		CelebrateMode: celebrate.Mode(cfg.Celebration.Mode),
		Logger:        &logger,
	})
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return &env{Config: cfg, Logger: logger, Loc: loc, Backend: backend, Service: svc}, nil
}

func (e *env) Close() {
	if err := e.Backend.Close(); err != nil {
		e.Logger.Warn().Err(err).Msg("close storage")
	}
}
