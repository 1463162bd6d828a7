package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, page{})
}

// searchPage serves both the button and the Enter-key submission of the form.
func (h *Handler) searchPage(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	presenter := &capturePresenter{}
	status := http.StatusOK
	if err := h.search.Run(r.Context(), username, presenter); err != nil {
		status, _ = mapError(err)
	}

	h.writePage(w, r, status, page{
		Username: username,
		Stats:    presenter.stats,
		Notice:   presenter.notice,
		NoData:   presenter.noData,
	})
}

func (h *Handler) statsJSON(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	presenter := &capturePresenter{}
	if err := h.search.Run(r.Context(), username, presenter); err != nil {
		status, code := mapError(err)
		message := presenter.notice
		if message == "" {
			message = http.StatusText(status)
		}
		writeError(w, status, code, message)
		return
	}
	writeJSON(w, http.StatusOK, presenter.stats)
}

func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, status int, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := renderPage(w, p); err != nil {
		h.logger.Error(r.Context(), "failed to render page", "error", err)
	}
}
