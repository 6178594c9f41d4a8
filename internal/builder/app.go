package builder

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/futig/vectordb-client/internal/cli"
	"github.com/futig/vectordb-client/internal/config"
	"github.com/futig/vectordb-client/internal/loadtest"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// CLI is an interactive menu bound to its logger.
type CLI struct {
	menu   *cli.Menu
	logger *zap.Logger
}

// Run blocks on the menu until the operator exits or input ends. Interrupts
// keep their default behaviour and terminate the process.
func (c *CLI) Run() error {
	defer func() { _ = c.logger.Sync() }()

	ctx := ctxzap.ToContext(context.Background(), c.logger)
	return c.menu.Run(ctx)
}

// LoadTest runs one harness pass and prints its summary.
type LoadTest struct {
	cfg     config.LoadTestConfig
	harness *loadtest.Harness
	out     io.Writer
	logger  *zap.Logger
}

// Run executes the configured mode. It returns an error when any request
// failed or, for paced runs, when the run finished before the window.
// SIGINT / SIGTERM stop requests that have not started yet.
func (l *LoadTest) Run() error {
	defer func() { _ = l.logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxzap.ToContext(ctx, l.logger)

	batch := loadtest.NewBatch(l.cfg.Requests, l.cfg.Users)

	var report *loadtest.Report
	switch l.cfg.Mode {
	case config.LoadTestModePaced:
		report = l.harness.Paced(ctx, batch, l.cfg.Window)
	default:
		report = l.harness.Burst(ctx, batch)
	}

	loadtest.WriteSummary(l.out, l.cfg.Mode, report)

	if err := report.Err(); err != nil {
		return fmt.Errorf("%d of %d requests failed: %w", report.Failed(), report.Total(), err)
	}
	if l.cfg.Mode == config.LoadTestModePaced && report.Elapsed < l.cfg.Window {
		return fmt.Errorf("paced run finished in %s, expected at least %s", report.Elapsed, l.cfg.Window)
	}
	return nil
}

// App represents the mock server with its logger
type App struct {
	server *http.Server
	logger *zap.Logger
}

// Run starts the HTTP server and blocks until a shutdown signal or a
// server error.
func (a *App) Run() error {
	defer func() { _ = a.logger.Sync() }()

	errChan := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		a.logger.Error("Server error", zap.Error(err))
		return err
	case sig := <-sigChan:
		a.logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	return a.shutdown()
}

// shutdown gracefully shuts down the server
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a.logger.Info("Shutting down server gracefully")

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
		return err
	}

	a.logger.Info("Server stopped gracefully")
	return nil
}
