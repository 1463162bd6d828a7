package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leetstats/internal/domain/model"
)

func TestStatsAPISource_FetchStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/alice" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, statsAPIBody)
	}))
	defer srv.Close()

	source := NewStatsAPISource(srv.URL+"/", time.Second)
	stats, err := source.FetchStats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FetchStats() error = %v", err)
	}
	if stats.Solved.Total != 120 {
		t.Fatalf("expected 120 solved, got %d", stats.Solved.Total)
	}
}

func TestStatsAPISource_HTMLErrorPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `<html><head><style>p{}</style></head><body><h1>Application   Error</h1><p>try later</p></body></html>`)
	}))
	defer srv.Close()

	_, err := NewStatsAPISource(srv.URL, time.Second).FetchStats(context.Background(), "alice")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status %d", statusErr.StatusCode)
	}
	if statusErr.Body != "Application Error try later" {
		t.Fatalf("unexpected error text %q", statusErr.Body)
	}
}

func TestRelaySource_FetchStats(t *testing.T) {
	const target = "https://leetcode.com/graphql/"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.URL.Query().Get("url"); got != target {
			t.Errorf("expected relayed target %q, got %q", target, got)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}

		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Variables["username"] != "alice" {
			t.Errorf("unexpected variables %v", req.Variables)
		}
		if !strings.Contains(req.Query, "matchedUser(username: $username)") {
			t.Errorf("query does not select matchedUser: %s", req.Query)
		}
		io.WriteString(w, graphQLBody)
	}))
	defer srv.Close()

	source := NewRelaySource(srv.URL+"/raw?url=", target, time.Second)
	stats, err := source.FetchStats(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FetchStats() error = %v", err)
	}
	if stats.Source != model.SourceGraphQLRelay {
		t.Fatalf("unexpected source %q", stats.Source)
	}
	if stats.Submissions.Total != 400 {
		t.Fatalf("expected 400 submissions, got %d", stats.Submissions.Total)
	}
}

func TestRelaySource_URL(t *testing.T) {
	source := NewRelaySource("https://corsproxy.io/?", "", time.Second)
	want := "https://corsproxy.io/?https%3A%2F%2Fleetcode.com%2Fgraphql%2F"
	if got := source.URL(); got != want {
		t.Fatalf("URL() = %q, want %q", got, want)
	}
}
