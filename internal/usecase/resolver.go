package usecase

import (
	"context"
	"fmt"
	"time"

	"leetstats/internal/domain/model"
	"leetstats/internal/domain/ports"
)

// Resolver walks an ordered list of stats sources and returns the first success.
type Resolver struct {
	sources        []ports.StatsSource
	logger         ports.Logger
	attemptTimeout time.Duration
}

// ResolverConfig controls per-attempt behaviour.
type ResolverConfig struct {
	AttemptTimeout time.Duration
}

// NewResolver builds a Resolver. Nil sources are dropped; order is preserved.
func NewResolver(logger ports.Logger, cfg ResolverConfig, sources ...ports.StatsSource) *Resolver {
	active := make([]ports.StatsSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			active = append(active, s)
		}
	}
	return &Resolver{
		sources:        active,
		logger:         logger,
		attemptTimeout: cfg.AttemptTimeout,
	}
}

// Resolve tries each source in turn. Attempt failures are logged and never
// returned individually; when every source fails the result is an
// *model.ExhaustedError.
func (r *Resolver) Resolve(ctx context.Context, username string) (*model.UserSolvedStats, error) {
	failures := make([]model.AttemptFailure, 0, len(r.sources))

	for idx, source := range r.sources {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("resolve %q: %w", username, err)
		}

		stats, err := r.attempt(ctx, source, username)
		if err == nil {
			if idx > 0 {
				r.logger.Info(ctx, "fallback source succeeded", "source", source.Name(), "attempt", idx+1, "username", username)
			}
			return stats, nil
		}

		failures = append(failures, model.AttemptFailure{Source: source.Name(), Err: err})
		r.logger.Warn(ctx, "stats attempt failed", "source", source.Name(), "attempt", idx+1, "username", username, "error", err)
	}

	return nil, &model.ExhaustedError{Username: username, Failures: failures}
}

func (r *Resolver) attempt(ctx context.Context, source ports.StatsSource, username string) (*model.UserSolvedStats, error) {
	if r.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.attemptTimeout)
		defer cancel()
	}

	stats, err := source.FetchStats(ctx, username)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, fmt.Errorf("%w: source returned no stats", model.ErrMalformedResponse)
	}
	return stats, nil
}
