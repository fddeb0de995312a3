package relay

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/discohook/internal/config"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreamCall struct {
	Method    string
	Path      string
	Query     string
	Body      string
	UserAgent string
	Type      string
}

func newUpstream(t *testing.T, status int, body string, calls chan<- upstreamCall) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if calls != nil {
			calls <- upstreamCall{
				Method:    r.Method,
				Path:      r.URL.Path,
				Query:     r.URL.RawQuery,
				Body:      string(data),
				UserAgent: r.Header.Get("User-Agent"),
				Type:      r.Header.Get("Content-Type"),
			}
		}
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestRelay(t *testing.T, upstreamBase string) *Server {
	t.Helper()
	cfg := config.NewDefaultRelayConfig()
	cfg.UpstreamBaseURL = upstreamBase
	s, err := New(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func decodeError(t *testing.T, body []byte) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestIndex(t *testing.T) {
	s := newTestRelay(t, "http://127.0.0.1:1")

	for _, path := range []string{"/api", "/api/"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"name":"discohook-relay","version":"1.0.0","status":"active"}`, rec.Body.String())
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNotFound(t *testing.T) {
	s := newTestRelay(t, "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/webhook/1/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, statusError, decodeError(t, rec.Body.Bytes()).Status)
}

func TestForward(t *testing.T) {
	calls := make(chan upstreamCall, 1)
	upstream := newUpstream(t, http.StatusOK, `{"id":"42","content":"hi"}`, calls)
	s := newTestRelay(t, upstream.URL+"/api/v10")

	req := httptest.NewRequest(http.MethodPost, "/api/webhook/123456/tok_EN-1?wait=true&thread_id=9", strings.NewReader(`{"content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"42","content":"hi"}`, rec.Body.String())

	call := <-calls
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/api/v10/webhooks/123456/tok_EN-1", call.Path)
	assert.Equal(t, "wait=true&thread_id=9", call.Query)
	assert.Equal(t, `{"content":"hi"}`, call.Body)
	assert.Equal(t, config.DefaultRelayUserAgent, call.UserAgent)
	assert.Equal(t, "application/json", call.Type)
}

func TestForward_NoContent(t *testing.T) {
	upstream := newUpstream(t, http.StatusNoContent, "", nil)
	s := newTestRelay(t, upstream.URL)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/1/abc", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestForward_UpstreamError(t *testing.T) {
	upstream := newUpstream(t, http.StatusNotFound, `{"message":"Unknown Webhook","code":10015}`, nil)
	s := newTestRelay(t, upstream.URL)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/1/abc", strings.NewReader(`{"content":"x"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"upstream API error","details":{"message":"Unknown Webhook","code":10015}}`, rec.Body.String())
}

func TestForward_UpstreamUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	var logs bytes.Buffer
	cfg := config.NewDefaultRelayConfig()
	cfg.UpstreamBaseURL = "http://" + addr
	s, err := New(cfg, nil, zerolog.New(&logs))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/1/SECRETtoken", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"upstream did not respond"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "Upstream did not respond")
	assert.NotContains(t, logs.String(), "SECRETtoken")
}

func TestForward_UpstreamResponseTooLarge(t *testing.T) {
	upstream := newUpstream(t, http.StatusOK, `{"content":"`+strings.Repeat("x", 64)+`"}`, nil)

	cfg := config.NewDefaultRelayConfig()
	cfg.UpstreamBaseURL = upstream.URL
	cfg.MaxBodyBytes = 16
	s, err := New(cfg, nil, zerolog.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/1/abc", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"upstream response too large"}`, rec.Body.String())
}

func TestForward_BadUpstreamBase(t *testing.T) {
	s := newTestRelay(t, "not-absolute")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/1/abc", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestForward_Validation(t *testing.T) {
	s := newTestRelay(t, "http://127.0.0.1:1")

	tests := []struct {
		name    string
		path    string
		body    string
		status  int
		message string
	}{
		{"non numeric id", "/api/webhook/abc/token", `{}`, http.StatusBadRequest, "invalid webhook ID format"},
		{"bad token", "/api/webhook/123/tok.en", `{}`, http.StatusBadRequest, "invalid webhook token format"},
		{"invalid json", "/api/webhook/123/token", `{"content":`, http.StatusBadRequest, "invalid JSON body"},
		{"empty body", "/api/webhook/123/token", ``, http.StatusBadRequest, "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, rec.Code)
			resp := decodeError(t, rec.Body.Bytes())
			assert.Equal(t, statusError, resp.Status)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestForward_BodyTooLarge(t *testing.T) {
	s := newTestRelay(t, "http://127.0.0.1:1")
	cfg := s.Config()
	cfg.MaxBodyBytes = 16
	s.UpdateConfig(cfg)

	body := `{"content":"` + strings.Repeat("x", 64) + `"}`
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/1/abc", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestPreflight(t *testing.T) {
	s := newTestRelay(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodOptions, "/api/webhook/1/abc", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestUpdateConfig_KeepsListenAddress(t *testing.T) {
	s := newTestRelay(t, "http://127.0.0.1:1")
	cfg := s.Config()
	cfg.ListenAddress = ":9999"
	cfg.UpstreamBaseURL = "http://example.com"
	s.UpdateConfig(cfg)

	assert.Equal(t, config.DefaultRelayListenAddress, s.Config().ListenAddress)
	assert.Equal(t, "http://example.com", s.Config().UpstreamBaseURL)
}

func TestUpstreamURL(t *testing.T) {
	got, err := upstreamURL("https://discord.com/api/v10/", "1", "abc", "wait=true")
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/v10/webhooks/1/abc?wait=true", got)

	got, err = upstreamURL("https://discord.com/api/v10", "1", "abc", "")
	require.NoError(t, err)
	assert.Equal(t, "https://discord.com/api/v10/webhooks/1/abc", got)

	_, err = upstreamURL("relative/path", "1", "abc", "")
	assert.Error(t, err)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestRelay(t, "http://127.0.0.1:1")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
