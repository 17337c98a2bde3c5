// Package agent wires the miner-sync components together and owns the
// process lifecycle: background workers, the local control API server, and
// graceful shutdown.
package agent

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/geovision-ai/miner-sync/internal/config"
	"github.com/geovision-ai/miner-sync/internal/connectivity"
	handlerhttp "github.com/geovision-ai/miner-sync/internal/handler/http"
	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/internal/service"
	"github.com/geovision-ai/miner-sync/internal/workers"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	cfg      *config.AgentConfig
	services *service.Services
	workers  *workers.Workers
	server   *http.Server

	logger *logger.Logger
}

// NewApp assembles the runnable agent from explicitly constructed parts.
// Dependencies are injected here once at startup; nothing in the agent
// reaches for lazily-initialized globals.
func NewApp(
	cfg *config.AgentConfig,
	services *service.Services,
	monitor connectivity.Monitor,
	handler *handlerhttp.Handler,
	log *logger.Logger,
) *App {
	srv := &http.Server{
		Addr:    cfg.Agent.ListenAddress,
		Handler: handler.Init(),
	}

	background := workers.New(
		monitor,
		&syncJobWorker{job: services.SyncJob, interval: cfg.Workers.SyncInterval},
	)

	return &App{
		cfg:      cfg,
		services: services,
		workers:  background,
		server:   srv,
		logger:   log,
	}
}

// Run starts the background workers and the local control API server and
// blocks until SIGINT/SIGTERM. Workers are stopped before the listener so
// no sync attempt outlives the process visibly.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.workers.Start(ctx)
	defer a.workers.Stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("address", a.server.Addr).Msg("control API listening")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return a.server.Shutdown(shutdownCtx)
}

// syncJobWorker adapts the interval-parameterised SyncJob to the Worker
// interface.
type syncJobWorker struct {
	job      service.SyncJob
	interval time.Duration
}

func (w *syncJobWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *syncJobWorker) Stop() {
	w.job.Stop()
}
