package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leetstats/internal/domain/model"
	"leetstats/internal/domain/ports"
)

const (
	msgEmptyUsername   = "Username can't be empty"
	msgInvalidUsername = "Invalid Username - must be 1-15 characters, only letters, numbers, underscore, or hyphen"
)

// StatsResolver resolves canonical stats for a validated username.
type StatsResolver interface {
	Resolve(ctx context.Context, username string) (*model.UserSolvedStats, error)
}

// Search is the single inbound operation shared by every entry point.
type Search struct {
	resolver StatsResolver
	logger   ports.Logger
}

// NewSearch constructs a Search use case.
func NewSearch(resolver StatsResolver, logger ports.Logger) *Search {
	return &Search{resolver: resolver, logger: logger}
}

// Run validates username, resolves its stats and hands the outcome to presenter.
// The returned error mirrors what the presenter was shown; a search abandoned
// through ctx returns its error without presenting anything.
func (s *Search) Run(ctx context.Context, username string, presenter ports.Presenter) error {
	if _, err := ValidateUsername(username); err != nil {
		presenter.ShowError(ctx, ValidationMessage(err))
		return err
	}

	start := time.Now()
	stats, err := s.resolver.Resolve(ctx, username)
	if err != nil && !errors.Is(err, model.ErrAllSourcesExhausted) {
		// Cancelled or superseded; the caller is no longer waiting for output.
		s.logger.Info(ctx, "search abandoned", "username", username, "error", err)
		return err
	}
	if err != nil {
		s.logger.Error(ctx, "search failed", "username", username, "error", err)
		presenter.ShowError(ctx, NotFoundMessage(username))
		presenter.ShowNoData(ctx)
		return err
	}

	s.logger.Info(ctx, "search completed", "username", username, "source", stats.Source, "duration", time.Since(start))
	presenter.RenderStats(ctx, stats)
	return nil
}

// ValidationMessage turns a ValidateUsername error into the user-facing notice.
func ValidationMessage(err error) string {
	if errors.Is(err, model.ErrEmptyInput) {
		return msgEmptyUsername
	}
	return msgInvalidUsername
}

// NotFoundMessage is shown when every source failed for username.
func NotFoundMessage(username string) string {
	return fmt.Sprintf("No data found for username: %s. Please check the spelling and try again.", username)
}
