package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/discohook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.ConfigPathEnv, "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseFlags(t *testing.T) {
	flags, err := ParseFlags([]string{
		"-u", "https://example.com/hook",
		"-content", "",
		"-title", "T",
		"-field", "a|1",
		"-field", "b|2|true",
		"-tts",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/hook", flags.WebhookURL)
	require.NotNil(t, flags.Content)
	assert.Equal(t, "", *flags.Content)
	assert.Nil(t, flags.Username)
	require.NotNil(t, flags.TTS)
	assert.True(t, *flags.TTS)
	assert.True(t, flags.HasEmbed())
	assert.Equal(t, fieldFlag{{Name: "a", Value: "1"}, {Name: "b", Value: "2", Inline: true}}, flags.Fields)
}

func TestParseFlags_Errors(t *testing.T) {
	_, err := ParseFlags([]string{"-field", "novalue"}, io.Discard)
	assert.Error(t, err)

	_, err = ParseFlags([]string{"-field", "a|b|maybe"}, io.Discard)
	assert.Error(t, err)

	_, err = ParseFlags([]string{"stray"}, io.Discard)
	assert.Error(t, err)
}

func TestBuildMessage(t *testing.T) {
	flags, err := ParseFlags([]string{
		"-content", "hello",
		"-username", "bot",
		"-title", "Deploy",
		"-color", "#5865F2",
		"-timestamp", "now",
		"-footer", "ci",
		"-footer-icon", "https://example.com/f.png",
		"-author", "me",
		"-author-url", "https://example.com/me",
		"-field", "env|prod|true",
	}, io.Discard)
	require.NoError(t, err)

	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	msg, err := buildMessage(flags, "https://example.com/hook", now)
	require.NoError(t, err)

	body, err := msg.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"content":"hello","username":"bot","embeds":[{"title":"Deploy","timestamp":"2024-01-02T03:04:05Z","color":5793266,`+
		`"footer":{"text":"ci","icon_url":"https://example.com/f.png"},"author":{"name":"me","url":"https://example.com/me"},`+
		`"fields":[{"name":"env","value":"prod","inline":true}]}]}`, string(body))
}

func TestBuildMessage_DocumentWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.yaml")
	require.NoError(t, os.WriteFile(path, []byte("content: from file\nusername: file-bot\nembeds:\n  - title: first\n"), 0644))

	flags, err := ParseFlags([]string{"-message", path, "-content", "from flag", "-title", "second"}, io.Discard)
	require.NoError(t, err)

	msg, err := buildMessage(flags, "https://example.com/hook", time.Now())
	require.NoError(t, err)

	body, err := msg.JSON()
	require.NoError(t, err)
	assert.Equal(t, `{"content":"from flag","username":"file-bot","embeds":[{"title":"first"},{"title":"second"}]}`, string(body))
}

func TestBuildMessage_BadColor(t *testing.T) {
	flags, err := ParseFlags([]string{"-color", "ZZZZZZ"}, io.Discard)
	require.NoError(t, err)

	_, err = buildMessage(flags, "https://example.com/hook", time.Now())
	assert.Error(t, err)
}

func TestRun_Send(t *testing.T) {
	got := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	code, stdout, _ := runCLI(t, "-url", server.URL+"/webhooks/1/abc", "-content", "hello", "-username", "bot")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Message delivered")
	assert.Equal(t, `{"content":"hello","username":"bot"}`, <-got)
}

func TestRun_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	code, _, stderr := runCLI(t, "-url", server.URL+"/webhooks/1/abc", "-content", "hello")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "404 Not Found")
}

func TestRun_DryRun(t *testing.T) {
	code, stdout, _ := runCLI(t, "-dry-run", "-content", "a \"quoted\" <b>")

	assert.Equal(t, 0, code)
	assert.Equal(t, `{"content":"a \"quoted\" <b>"}`+"\n", stdout)
}

func TestRun_ValidateFails(t *testing.T) {
	code, _, stderr := runCLI(t, "-dry-run", "-validate", "-field", "|value")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "name cannot be empty")
}

func TestRun_MissingURL(t *testing.T) {
	code, _, stderr := runCLI(t, "-content", "hello")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "No webhook URL")
}

func TestRun_WebhookURLFromConfig(t *testing.T) {
	hit := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit <- struct{}{}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("webhook_url: "+server.URL+"/webhooks/1/abc\nlog_config:\n  log_level: error\n"), 0644))

	code, _, _ := runCLI(t, "-config", cfgPath, "-content", "hi")

	assert.Equal(t, 0, code)
	assert.Len(t, hit, 1)
}
