package relay

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aleister1102/discohook/internal/httpclient"
	"github.com/goccy/go-json"
)

// Service identity reported by the index route.
const (
	ServiceName    = "discohook-relay"
	ServiceVersion = "1.0.0"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, http.StatusOK, indexResponse{
		Name:    ServiceName,
		Version: ServiceVersion,
		Status:  statusActive,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, s.logger, http.StatusNotFound, "route not found")
}

// handleForward relays a webhook execution to the upstream API and mirrors
// the upstream status back to the caller.
func (s *Server) handleForward(w http.ResponseWriter, r *http.Request) {
	cfg := s.Config()
	id := r.PathValue(pathWebhookID)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, s.logger, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, s.logger, http.StatusBadRequest, "failed to read request body")
		return
	}
	if !json.Valid(body) {
		writeError(w, s.logger, http.StatusBadRequest, "invalid JSON body")
		return
	}

	target, err := upstreamURL(cfg.UpstreamBaseURL, id, r.PathValue(pathWebhookToken), r.URL.RawQuery)
	if err != nil {
		s.logger.Error().Err(err).Str("webhook_id", id).Msg("Failed to build upstream request")
		writeError(w, s.logger, http.StatusInternalServerError, "failed to build upstream request")
		return
	}

	s.logger.Info().Str("webhook_id", id).Msg("Forwarding webhook request")

	resp, err := s.client.Do(&httpclient.HTTPRequest{
		URL:    target,
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body:    bytes.NewReader(body),
		Context: r.Context(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("webhook_id", id).Msg("Upstream did not respond")
		writeError(w, s.logger, http.StatusBadGateway, "upstream did not respond")
		return
	}

	if resp.Truncated {
		s.logger.Warn().
			Str("webhook_id", id).
			Int("status_code", resp.StatusCode).
			Int64("max_body_bytes", cfg.MaxBodyBytes).
			Msg("Upstream response exceeds body limit")
		writeError(w, s.logger, http.StatusBadGateway, "upstream response too large")
		return
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		s.logger.Info().Str("webhook_id", id).Int("status_code", resp.StatusCode).Msg("Webhook forwarded")
		mirrorResponse(w, resp)
		return
	}

	s.logger.Error().
		Str("webhook_id", id).
		Int("status_code", resp.StatusCode).
		Bytes("response_body", resp.Body).
		Msg("Upstream API error")
	writeJSON(w, s.logger, resp.StatusCode, errorResponse{
		Status:  statusError,
		Message: "upstream API error",
		Details: upstreamDetails(resp.Body),
	})
}

// upstreamURL joins base, the webhook path and the caller's query string.
func upstreamURL(base, id, token, rawQuery string) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(base, "/") + "/webhooks/" + id + "/" + token)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", &url.Error{Op: "parse", URL: base, Err: errors.New("upstream base URL must be absolute")}
	}
	u.RawQuery = rawQuery
	return u.String(), nil
}

func mirrorResponse(w http.ResponseWriter, resp *httpclient.HTTPResponse) {
	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		w.WriteHeader(resp.StatusCode)
		return
	}
	contentType := resp.Headers.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

// upstreamDetails embeds a JSON error body as is and anything else as text.
func upstreamDetails(body []byte) any {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
