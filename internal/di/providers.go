package di

import (
	"log/slog"
	"net/http"
	"os"

	"logix-research/internal/adapter/httpapi"
	"logix-research/internal/adapter/logging"
	"logix-research/internal/app"
	"logix-research/internal/config"
	"logix-research/internal/domain/ports"
	"logix-research/internal/training"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideRouterOptions(cfg *config.Config) httpapi.Options {
	return httpapi.Options{
		APIKey:         cfg.APIKey,
		StaticDir:      cfg.StaticDir,
		RequestTimeout: cfg.RequestTimeout,
	}
}

func provideHandler(research ports.Researcher, logger ports.Logger, opts httpapi.Options) http.Handler {
	return httpapi.NewRouter(research, logger, opts)
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		Addr:            cfg.ListenAddr,
		StatsSchedule:   cfg.StatsCron,
		ShutdownTimeout: cfg.ShutdownTimeout,
		APIKeyMissing:   !cfg.APIKeyConfigured(),
	}
}

func provideTrainer(cfg *config.Config, logger ports.Logger) *training.Trainer {
	return training.NewTrainer(cfg.TrainCommand, training.ExecRunner, os.Stdout, os.Stderr, logger)
}
