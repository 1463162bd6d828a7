package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"leetstats/internal/domain/model"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrEmptyInput), errors.Is(err, model.ErrInvalidFormat):
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.Is(err, model.ErrAllSourcesExhausted):
		return http.StatusNotFound, "NOT_FOUND"
	default:
		return http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"
	}
}
