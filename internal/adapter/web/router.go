package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"leetstats/internal/domain/ports"
	"leetstats/internal/usecase"
)

// Handler serves the stats widget and its JSON API.
type Handler struct {
	search *usecase.Search
	logger ports.Logger
}

// NewHandler constructs a Handler.
func NewHandler(search *usecase.Search, logger ports.Logger) *Handler {
	return &Handler{search: search, logger: logger}
}

// NewRouter wires the routes and middleware.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(handler.recoverMiddleware)
	r.Use(handler.loggingMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/", handler.index)
	r.Get("/search", handler.searchPage)
	r.Get("/api/stats/{username}", handler.statsJSON)
	return r
}
