package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkaravias/eortologio"
	eorthttp "github.com/mkaravias/eortologio/http"
	"github.com/mkaravias/eortologio/lru"
	"github.com/mkaravias/eortologio/scrape"
	eortslog "github.com/mkaravias/eortologio/slog"
)

// shutdownTimeout bounds the drain of in-flight requests on exit.
const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Wired services, exposed for end-to-end testing.
	Months eortologio.MonthService
	Names  eortologio.NameService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run wires the dependency graph and serves the API until ctx is
// canceled or the server fails.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli, err := parseCLI(args, stdout, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := eortslog.NewLoggingFetcher(
		eorthttp.NewFetcher(eorthttp.WithTimeout(cli.Timeout)),
		logger,
	)
	defer fetcher.Close()

	svc := scrape.NewService(fetcher, cli.BaseURL, logger)
	svc.Limiter = scrape.NewLimiter(cli.RPS)

	months := eortslog.NewLoggingMonthService(
		lru.NewMonthService(svc, lru.DefaultMonthCapacity, cli.CacheTTL), logger)
	names := eortslog.NewLoggingNameService(
		lru.NewNameService(svc, lru.DefaultNameCapacity, cli.CacheTTL), logger)
	m.Months = months
	m.Names = names

	if cli.Warm {
		// Best effort; a cold cache just means the first callers
		// pay the upstream latency.
		go func() {
			if err := scrape.Warm(ctx, months, scrape.DefaultWarmConcurrency); err != nil {
				logger.Warn("cache warm incomplete", "err", err)
			}
		}()
	}

	server := &http.Server{
		Addr:    cli.Addr,
		Handler: eorthttp.NewServer(months, names, logger),
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cli.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
