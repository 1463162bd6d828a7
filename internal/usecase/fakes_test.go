package usecase

import (
	"context"
	"errors"
	"sync"

	"leetstats/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

// fakeSource returns stats or err and records how often it was called.
type fakeSource struct {
	name  string
	stats *model.UserSolvedStats
	err   error
	calls int
	fn    func(ctx context.Context) (*model.UserSolvedStats, error)
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) FetchStats(ctx context.Context, _ string) (*model.UserSolvedStats, error) {
	f.calls++
	if f.fn != nil {
		return f.fn(ctx)
	}
	return f.stats, f.err
}

func failing(name string) *fakeSource {
	return &fakeSource{name: name, err: errors.New(name + " unavailable")}
}

type recordingPresenter struct {
	rendered []*model.UserSolvedStats
	errors   []string
	noData   int
}

func (p *recordingPresenter) RenderStats(_ context.Context, stats *model.UserSolvedStats) {
	p.rendered = append(p.rendered, stats)
}

func (p *recordingPresenter) ShowError(_ context.Context, message string) {
	p.errors = append(p.errors, message)
}

func (p *recordingPresenter) ShowNoData(context.Context) {
	p.noData++
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []model.Notification
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, notification model.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
	return n.err
}

func sampleStats(source model.Source) *model.UserSolvedStats {
	return &model.UserSolvedStats{
		Username:    "alice",
		Source:      source,
		Questions:   model.QuestionCounts{Total: 30, Easy: 10, Medium: 15, Hard: 5},
		Solved:      model.QuestionCounts{Total: 6, Easy: 3, Medium: 2, Hard: 1},
		Submissions: model.QuestionCounts{Total: 18, Easy: 6, Medium: 6, Hard: 4},
	}
}
