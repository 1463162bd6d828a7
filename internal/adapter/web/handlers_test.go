package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leetstats/internal/adapter/logging"
	"leetstats/internal/domain/model"
	"leetstats/internal/usecase"
)

type stubSource struct {
	stats *model.UserSolvedStats
	err   error
	calls int
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) FetchStats(context.Context, string) (*model.UserSolvedStats, error) {
	s.calls++
	return s.stats, s.err
}

func newTestRouter(source *stubSource) http.Handler {
	logger := logging.New(nil)
	resolver := usecase.NewResolver(logger, usecase.ResolverConfig{}, source)
	return NewRouter(NewHandler(usecase.NewSearch(resolver, logger), logger))
}

func relayStats() *model.UserSolvedStats {
	return &model.UserSolvedStats{
		Username:    "alice",
		Source:      model.SourceGraphQLRelay,
		Questions:   model.QuestionCounts{Total: 30, Easy: 10, Medium: 15, Hard: 5},
		Solved:      model.QuestionCounts{Total: 6, Easy: 3, Medium: 2, Hard: 1},
		Submissions: model.QuestionCounts{Total: 18, Easy: 6, Medium: 6, Hard: 4},
	}
}

func TestSearchPage_RendersStats(t *testing.T) {
	router := newTestRouter(&stubSource{stats: relayStats()})

	req := httptest.NewRequest(http.MethodGet, "/search?username=alice", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`<span id="easy-label">3/10</span>`,
		`style="--progress-degree: 30.00%"`,
		`<h4>Total Submissions:</h4><p>18</p>`,
		`value="alice"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "error-message") {
		t.Error("unexpected error notice on success")
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("expected request id header")
	}
}

func TestSearchPage_EstimatedSubmissionsAreLabelled(t *testing.T) {
	stats := relayStats()
	stats.Source = model.SourceStatsAPI
	stats.SubmissionsEstimated = true
	rate := 55.5
	stats.Metrics.AcceptanceRate = &rate

	router := newTestRouter(&stubSource{stats: stats})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?username=alice", nil))

	body := w.Body.String()
	for _, want := range []string{
		`<h4>Total Submissions (estimated):</h4>`,
		`<h4>Acceptance Rate:</h4><p>55.5%</p>`,
		`<h4>Contribution Points:</h4><p>0</p>`,
		`<h4>Total Solved:</h4><p>6</p>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSearchPage_ExhaustedShowsPlaceholder(t *testing.T) {
	router := newTestRouter(&stubSource{err: errors.New("down")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?username=ghost", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `<p class="no-data">No Data Found</p>`) {
		t.Error("expected no-data placeholder")
	}
	if !strings.Contains(body, `data-dismiss-after="5000"`) {
		t.Error("expected auto-dismissing notice")
	}
	if !strings.Contains(body, "No data found for username: ghost. Please check the spelling and try again.") {
		t.Error("expected not-found message")
	}
}

func TestSearchPage_InvalidUsernameSkipsLookup(t *testing.T) {
	source := &stubSource{stats: relayStats()}
	router := newTestRouter(source)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?username=way_too_long_username", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if source.calls != 0 {
		t.Fatalf("expected no lookups, got %d", source.calls)
	}
	if strings.Contains(w.Body.String(), "no-data") {
		t.Error("validation failures must not clear the stats area")
	}
}

func TestStatsJSON(t *testing.T) {
	router := newTestRouter(&stubSource{stats: relayStats()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/alice", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got model.UserSolvedStats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Solved.Easy != 3 || got.Source != model.SourceGraphQLRelay {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestStatsJSON_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		source   *stubSource
		wantCode int
		wantErr  string
	}{
		{"invalid", "/api/stats/bad.name", &stubSource{stats: relayStats()}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"exhausted", "/api/stats/ghost", &stubSource{err: errors.New("down")}, http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestRouter(tt.source).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			var body errorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Error.Code != tt.wantErr || body.Error.Message == "" {
				t.Fatalf("unexpected error body %+v", body)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(&stubSource{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Fatalf("expected doctype, got %q", body[:20])
	}
	if !strings.Contains(body, `id="search-btn"`) {
		t.Error("expected search button")
	}
}

func TestSearchPage_InconsistentCountsStillRender(t *testing.T) {
	stats := relayStats()
	stats.Questions = model.QuestionCounts{Total: 1, Easy: 0, Medium: 2, Hard: 3}
	stats.Solved = model.QuestionCounts{Total: 9, Easy: 4, Medium: 5, Hard: 0}

	w := httptest.NewRecorder()
	newTestRouter(&stubSource{stats: stats}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search?username=alice", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`style="--progress-degree: 0.00%"><span id="easy-label">4/0</span>`,
		`style="--progress-degree: 250.00%"><span id="medium-label">5/2</span>`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestStatsJSON_CancelledRequestIsNotReportedAsNotFound(t *testing.T) {
	source := &stubSource{stats: relayStats()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/stats/alice", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	newTestRouter(source).ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	var body errorBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "SERVICE_UNAVAILABLE" || strings.Contains(body.Error.Message, "No data found") {
		t.Fatalf("unexpected error body: %+v", body)
	}
	if source.calls != 0 {
		t.Fatalf("expected no source calls after cancellation, got %d", source.calls)
	}
}
