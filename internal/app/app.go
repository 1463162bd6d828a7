package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"leetstats/internal/domain/ports"
	"leetstats/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

// App manages the lifecycle of the stats server and the optional digest scheduler.
type App struct {
	server   *http.Server
	cron     *cron.Cron
	digest   *usecase.StatsDigest
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(server *http.Server, digest *usecase.StatsDigest, logger ports.Logger, schedule string) *App {
	return &App{
		server:   server,
		cron:     cron.New(),
		digest:   digest,
		logger:   logger,
		schedule: schedule,
	}
}

// Run serves HTTP until ctx is cancelled, running the digest on its cron schedule when enabled.
func (a *App) Run(ctx context.Context) error {
	if a.digest.Enabled() {
		if err := a.scheduleDigest(); err != nil {
			return err
		}
		a.logger.Info(ctx, "starting digest scheduler", "cron", a.schedule)
		a.cron.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "http server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(shutdownCtx, "http server shutdown failed", "error", err)
	}

	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(shutdownTimeout):
	}
	a.logger.Info(context.Background(), "app stopped")
	return runErr
}

func (a *App) scheduleDigest() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := a.digest.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled digest run failed", "error", err)
		}
	})
	return err
}
