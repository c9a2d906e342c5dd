package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"logix-research/internal/domain/ports"
	"logix-research/internal/usecase"
)

// StatsSource exposes research counters for the periodic digest.
type StatsSource interface {
	Stats() usecase.Stats
}

// Options controls the server and scheduler lifecycle.
type Options struct {
	Addr            string
	StatsSchedule   string
	ShutdownTimeout time.Duration
	// APIKeyMissing is set when no backend API key is configured; every
	// research request will then be rejected.
	APIKeyMissing bool
}

// App manages the lifecycle of the HTTP server and the stats scheduler.
type App struct {
	cron    *cron.Cron
	server  *http.Server
	stats   StatsSource
	logger  ports.Logger
	opts    Options
	started time.Time
}

// New constructs an App instance serving handler over HTTP/1.1 and cleartext HTTP/2.
func New(handler http.Handler, stats StatsSource, logger ports.Logger, opts Options) *App {
	return &App{
		cron: cron.New(),
		server: &http.Server{
			Addr:              opts.Addr,
			Handler:           h2c.NewHandler(handler, &http2.Server{}),
			ReadHeaderTimeout: 10 * time.Second,
		},
		stats:  stats,
		logger: logger,
		opts:   opts,
	}
}

// Run listens on the configured address until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts the
// server and the scheduler down.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	if err := a.scheduleJob(); err != nil {
		ln.Close()
		return err
	}
	a.started = time.Now()

	if a.opts.APIKeyMissing {
		a.logger.Warn(ctx, "BACKEND_API_KEY is not set; all research requests will be rejected")
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.opts.StatsSchedule)
	a.cron.Start()

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "http server listening", "addr", ln.Addr().String())
		serveErr <- a.server.Serve(ln)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("serve: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.opts.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(shutdownCtx, "http server shutdown failed", "error", err)
	}

	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-shutdownCtx.Done():
	}
	a.logger.Info(context.Background(), "server stopped")
	return runErr
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.opts.StatsSchedule, a.logDigest)
	if err != nil {
		return fmt.Errorf("schedule stats digest %q: %w", a.opts.StatsSchedule, err)
	}
	return nil
}

func (a *App) logDigest() {
	s := a.stats.Stats()
	a.logger.Info(context.Background(), "research stats digest",
		"queries", s.Queries,
		"matches", s.Matches,
		"uptime", time.Since(a.started).Round(time.Second),
	)
}
