package web

import (
	"context"

	"leetstats/internal/domain/model"
	"leetstats/internal/domain/ports"
)

// capturePresenter records the outcome of one search for rendering after Run returns.
type capturePresenter struct {
	stats  *model.UserSolvedStats
	notice string
	noData bool
}

var _ ports.Presenter = (*capturePresenter)(nil)

func (p *capturePresenter) RenderStats(_ context.Context, stats *model.UserSolvedStats) {
	p.stats = stats
}

func (p *capturePresenter) ShowError(_ context.Context, message string) {
	p.notice = message
}

func (p *capturePresenter) ShowNoData(context.Context) {
	p.noData = true
}
