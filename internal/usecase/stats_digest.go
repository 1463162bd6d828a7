package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leetstats/internal/domain/model"
	"leetstats/internal/domain/ports"
)

// StatsDigest resolves a watch list of usernames and sends one summary notification.
type StatsDigest struct {
	resolver  StatsResolver
	notifier  ports.Notifier
	logger    ports.Logger
	usernames []string
}

// NewStatsDigest constructs a StatsDigest use case.
func NewStatsDigest(resolver StatsResolver, notifier ports.Notifier, logger ports.Logger, usernames []string) *StatsDigest {
	return &StatsDigest{
		resolver:  resolver,
		notifier:  notifier,
		logger:    logger,
		usernames: usernames,
	}
}

// Enabled reports whether there is anything to send.
func (d *StatsDigest) Enabled() bool {
	return d != nil && d.notifier != nil && len(d.usernames) > 0
}

// Run executes the digest workflow. Users whose stats cannot be resolved are
// listed as unavailable rather than failing the whole digest.
func (d *StatsDigest) Run(ctx context.Context) error {
	if !d.Enabled() {
		return nil
	}

	start := time.Now()
	d.logger.Info(ctx, "starting stats digest", "users", len(d.usernames))

	fields := make([]model.NotificationField, 0, len(d.usernames))
	resolved := 0
	for _, username := range d.usernames {
		if _, err := ValidateUsername(username); err != nil {
			d.logger.Error(ctx, "skipping invalid watched username", "username", username, "error", err)
			continue
		}

		stats, err := d.resolver.Resolve(ctx, username)
		if err != nil {
			d.logger.Error(ctx, "failed to resolve watched user", "username", username, "error", err)
			fields = append(fields, model.NotificationField{Name: username, Value: "_no data available_"})
			continue
		}
		resolved++
		fields = append(fields, model.NotificationField{
			Name:   username,
			Value:  formatStatsField(stats),
			Inline: false,
		})
	}

	if len(fields) == 0 {
		return fmt.Errorf("stats digest: no valid usernames")
	}

	notification := model.Notification{
		Title:       "LeetCode Progress Digest",
		Description: fmt.Sprintf("Progress for %d of %d watched users.", resolved, len(fields)),
		Fields:      fields,
	}
	if err := d.notifier.Send(ctx, notification); err != nil {
		d.logger.Error(ctx, "failed to send digest", "error", err)
		return err
	}

	d.logger.Info(ctx, "stats digest completed", "duration", time.Since(start))
	return nil
}

func formatStatsField(stats *model.UserSolvedStats) string {
	var builder strings.Builder
	for _, d := range model.Difficulties {
		p := stats.Progress(d)
		builder.WriteString(fmt.Sprintf("**%s:** %d/%d (%.1f%%)\n", d, p.Solved, p.Total, p.Percent))
	}

	submissions := fmt.Sprintf("**Submissions:** %d", stats.Submissions.Total)
	if stats.SubmissionsEstimated {
		submissions += " _(estimated)_"
	}
	builder.WriteString(submissions)

	if stats.Metrics.Ranking != nil {
		builder.WriteString(fmt.Sprintf("\n**Ranking:** %d", *stats.Metrics.Ranking))
	}
	return builder.String()
}
