package relay

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	statusActive = "active"
	statusError  = "error"
)

// errorResponse is the body of every error the relay produces itself.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// indexResponse describes the running service.
type indexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

func writeJSON(w http.ResponseWriter, logger zerolog.Logger, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, logger zerolog.Logger, status int, message string) {
	writeJSON(w, logger, status, errorResponse{Status: statusError, Message: message})
}
