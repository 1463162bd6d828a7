package leetcode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leetstats/internal/domain/model"
)

// StatsAPISource reads the flat stats document served at <endpoint>/{username}.
type StatsAPISource struct {
	endpoint   string
	httpClient *http.Client
}

// NewStatsAPISource builds a source for the stats API at endpoint.
func NewStatsAPISource(endpoint string, timeout time.Duration) *StatsAPISource {
	if endpoint == "" {
		endpoint = DefaultStatsAPIEndpoint
	}
	return &StatsAPISource{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: newHTTPClient(timeout),
	}
}

// Name identifies the source in logs.
func (s *StatsAPISource) Name() string {
	return "stats-api"
}

// FetchStats retrieves and normalizes the stats document for username.
func (s *StatsAPISource) FetchStats(ctx context.Context, username string) (*model.UserSolvedStats, error) {
	req, err := newRequest(ctx, http.MethodGet, s.endpoint+"/"+url.PathEscape(username), nil)
	if err != nil {
		return nil, err
	}

	body, err := do(s.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("stats api: %w", err)
	}

	return NormalizeStatsAPI(body, username)
}
