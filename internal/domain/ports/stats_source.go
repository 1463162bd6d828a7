package ports

import (
	"context"

	"leetstats/internal/domain/model"
)

// StatsSource is one attempt in the stats fallback chain.
type StatsSource interface {
	Name() string
	FetchStats(ctx context.Context, username string) (*model.UserSolvedStats, error)
}
