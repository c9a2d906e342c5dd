package di

import (
	"testing"
	"time"

	"logix-research/internal/config"
)

func TestProvideAppOptions(t *testing.T) {
	cfg := &config.Config{
		ListenAddr:      "127.0.0.1:8000",
		StatsCron:       "@hourly",
		ShutdownTimeout: 2 * time.Second,
	}
	opts := provideAppOptions(cfg)
	if !opts.APIKeyMissing {
		t.Error("expected APIKeyMissing without BACKEND_API_KEY")
	}
	if opts.Addr != cfg.ListenAddr || opts.StatsSchedule != cfg.StatsCron {
		t.Errorf("unexpected options %+v", opts)
	}

	cfg.APIKey = "s3cret"
	if provideAppOptions(cfg).APIKeyMissing {
		t.Error("APIKeyMissing should be false once a key is configured")
	}
}

func TestInitializeTrainer(t *testing.T) {
	trainer, err := InitializeTrainer(&config.Config{TrainCommand: "yolo", LogLevel: "error"})
	if err != nil {
		t.Fatalf("initialize trainer: %v", err)
	}
	if trainer == nil {
		t.Fatal("expected a trainer")
	}
}
