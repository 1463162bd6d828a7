package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"leetstats/internal/domain/model"
	"leetstats/internal/domain/ports"
)

// Presenter prints search results as plain text.
type Presenter struct {
	out io.Writer
	err io.Writer
}

var _ ports.Presenter = (*Presenter)(nil)

// NewPresenter writes stats to out and notices to errOut.
func NewPresenter(out, errOut io.Writer) *Presenter {
	return &Presenter{out: out, err: errOut}
}

// RenderStats prints one line per difficulty followed by the summary cards.
func (p *Presenter) RenderStats(_ context.Context, stats *model.UserSolvedStats) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (source: %s)\n", stats.Username, stats.Source)
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		progress := stats.Progress(d)
		fmt.Fprintf(&b, "  %-7s %5d/%-5d %6.2f%%  %s\n", d, progress.Solved, progress.Total, progress.Percent, bar(progress.Percent, 20))
	}

	label := "Submissions"
	if stats.SubmissionsEstimated {
		label += " (estimated)"
	}
	fmt.Fprintf(&b, "  %s: total %d, easy %d, medium %d, hard %d\n", label,
		stats.Submissions.Total, stats.Submissions.Easy, stats.Submissions.Medium, stats.Submissions.Hard)

	if rate := stats.Metrics.AcceptanceRate; rate != nil {
		fmt.Fprintf(&b, "  Acceptance Rate: %g%%\n", *rate)
	}
	if ranking := stats.Metrics.Ranking; ranking != nil {
		fmt.Fprintf(&b, "  Ranking: %d\n", *ranking)
	}
	if points := stats.Metrics.ContributionPoints; points != nil {
		fmt.Fprintf(&b, "  Contribution Points: %d\n", *points)
	}
	io.WriteString(p.out, b.String())
}

// ShowError prints message to the error stream.
func (p *Presenter) ShowError(_ context.Context, message string) {
	fmt.Fprintln(p.err, message)
}

// ShowNoData prints the empty placeholder.
func (p *Presenter) ShowNoData(context.Context) {
	fmt.Fprintln(p.out, "No Data Found")
}

func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
