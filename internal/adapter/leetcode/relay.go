package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"leetstats/internal/domain/model"
)

const userProfileQuery = `query userPublicProfile($username: String!) {
  allQuestionsCount {
    difficulty
    count
  }
  matchedUser(username: $username) {
    username
    submitStats: submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
      totalSubmissionNum {
        difficulty
        count
        submissions
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// RelaySource issues the profile GraphQL query through a CORS relay.
type RelaySource struct {
	relay      string
	target     string
	httpClient *http.Client
}

// NewRelaySource builds a source that posts to relay followed by the escaped target endpoint.
func NewRelaySource(relay, target string, timeout time.Duration) *RelaySource {
	if target == "" {
		target = DefaultGraphQLEndpoint
	}
	return &RelaySource{
		relay:      relay,
		target:     target,
		httpClient: newHTTPClient(timeout),
	}
}

// Name identifies the source in logs.
func (r *RelaySource) Name() string {
	return "graphql-relay " + r.relay
}

// URL is the address the query is posted to.
func (r *RelaySource) URL() string {
	return r.relay + url.QueryEscape(r.target)
}

// FetchStats posts the profile query and normalizes the relayed response.
func (r *RelaySource) FetchStats(ctx context.Context, username string) (*model.UserSolvedStats, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     userProfileQuery,
		Variables: map[string]string{"username": username},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := newRequest(ctx, http.MethodPost, r.URL(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	body, err := do(r.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("relay %s: %w", r.relay, err)
	}

	return NormalizeGraphQL(body, username)
}
