package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/clerkd/clerkd/internal/domain"
)

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteError translates a failure into a JSON error response. Every failure
// crosses this single boundary; nothing is swallowed or retried here.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	body := ErrorResponse{
		Error:   "failed to process query",
		Details: err.Error(),
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		body = ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		body = ErrorResponse{Error: "Not found"}
	case errors.Is(err, domain.ErrCatalogUnreachable):
		// Catalog outages get their own message, with no details attached.
		body = ErrorResponse{Error: domain.ErrCatalogUnreachable.Error()}
	}

	if logger != nil {
		logger.Error("request error",
			"status", status,
			"error", err.Error(),
			"path", r.URL.Path,
		)
	}

	WriteJSON(w, status, body)
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
