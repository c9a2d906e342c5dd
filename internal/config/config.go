package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	APIKey          string
	ListenAddr      string
	StaticDir       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	StatsCron       string
	LogLevel        string
	TrainCommand    string
}

const (
	defaultListenAddr      = "0.0.0.0:8000"
	defaultStaticDir       = "static"
	defaultTimeout         = 30 * time.Second
	defaultShutdownTimeout = 5 * time.Second
	defaultStatsCron       = "@hourly"
	defaultLogLevel        = "info"
	defaultTrainCommand    = "yolo"
)

// Load builds a Config from environment variables with sane defaults.
// Values from a .env file in the working directory are applied first
// without overriding variables already set.
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:          os.Getenv("BACKEND_API_KEY"),
		ListenAddr:      getenvDefault("LISTEN_ADDR", defaultListenAddr),
		StaticDir:       getenvDefault("STATIC_DIR", defaultStaticDir),
		RequestTimeout:  parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		ShutdownTimeout: parseDurationDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		StatsCron:       getenvDefault("STATS_CRON", defaultStatsCron),
		LogLevel:        getenvDefault("LOG_LEVEL", defaultLogLevel),
		TrainCommand:    getenvDefault("TRAIN_COMMAND", defaultTrainCommand),
	}

	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return nil, fmt.Errorf("LISTEN_ADDR must not be blank")
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

// APIKeyConfigured reports whether a backend API key was provided.
func (c *Config) APIKeyConfigured() bool {
	return c.APIKey != ""
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
