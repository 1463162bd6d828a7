package ports

import (
	"context"

	"leetstats/internal/domain/model"
)

// Presenter is the display side of a search. A search calls RenderStats once on
// success, or ShowError followed by ShowNoData once on failure.
type Presenter interface {
	RenderStats(ctx context.Context, stats *model.UserSolvedStats)
	ShowError(ctx context.Context, message string)
	ShowNoData(ctx context.Context)
}
