package relay

import (
	"net/http"
	"regexp"
)

var (
	webhookIDPattern    = regexp.MustCompile(`^\d+$`)
	webhookTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Path wildcards of the forwarding route.
const (
	pathWebhookID    = "webhookId"
	pathWebhookToken = "webhookToken"
)

// validateWebhookPath rejects requests whose webhook id is not numeric or
// whose token has characters outside [A-Za-z0-9_-].
func (s *Server) validateWebhookPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue(pathWebhookID)
		if !webhookIDPattern.MatchString(id) {
			s.logger.Warn().Str("webhook_id", id).Msg("Invalid webhook ID format")
			writeError(w, s.logger, http.StatusBadRequest, "invalid webhook ID format")
			return
		}

		// the token itself is never logged
		if !webhookTokenPattern.MatchString(r.PathValue(pathWebhookToken)) {
			s.logger.Warn().Str("webhook_id", id).Msg("Invalid webhook token format")
			writeError(w, s.logger, http.StatusBadRequest, "invalid webhook token format")
			return
		}

		next.ServeHTTP(w, r)
	})
}
