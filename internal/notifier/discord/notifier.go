package discord

import (
	"bytes"
	"context"
	"net/http"

	"github.com/aleister1102/discohook/internal/common/errorwrapper"
	"github.com/aleister1102/discohook/internal/httpclient"
	"github.com/rs/zerolog"
)

// Notifier posts messages to Discord webhooks.
type Notifier struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
}

// NewNotifier creates a Notifier. A nil client is replaced by one with the
// httpclient defaults.
func NewNotifier(httpClient *httpclient.HTTPClient, logger zerolog.Logger) (*Notifier, error) {
	moduleLogger := logger.With().Str("module", "DiscordNotifier").Logger()

	if httpClient == nil {
		client, err := httpclient.NewHTTPClientBuilder(moduleLogger).Build()
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to create default HTTP client")
		}
		httpClient = client
	}

	return &Notifier{
		logger:     moduleLogger,
		httpClient: httpClient,
	}, nil
}

// Send serializes msg and POSTs it to the message's webhook URL in a single
// attempt. 200 and 204 are success. Any other status returns an
// *errorwrapper.HTTPError carrying the code and reason text; a transport
// failure returns an *errorwrapper.NetworkError.
func (n *Notifier) Send(ctx context.Context, msg *Message) error {
	body, err := msg.JSON()
	if err != nil {
		n.logger.Error().Err(err).Msg("Failed to marshal Discord payload")
		return err
	}

	redacted := httpclient.RedactURL(msg.URL())

	resp, err := n.httpClient.Do(&httpclient.HTTPRequest{
		URL:    msg.URL(),
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body:        bytes.NewReader(body),
		Context:     ctx,
		DiscardBody: true,
	})
	if err != nil {
		n.logger.Error().Err(err).Str("webhook_url", redacted).Msg("Failed to send Discord notification")
		return err
	}

	if !isSuccess(resp.StatusCode) {
		n.logger.Error().
			Int("status_code", resp.StatusCode).
			Str("status", resp.Status).
			Str("webhook_url", redacted).
			Msg("Discord notification failed")
		return errorwrapper.NewHTTPErrorWithURL(resp.StatusCode, resp.Status, redacted)
	}

	n.logger.Info().Int("status_code", resp.StatusCode).Str("webhook_url", redacted).Msg("Discord notification sent successfully")
	return nil
}

func isSuccess(code int) bool {
	return code == http.StatusOK || code == http.StatusNoContent
}

// Execute sends msg with a background context through a Notifier built on
// the default client.
func Execute(msg *Message) error {
	n, err := NewNotifier(nil, zerolog.Nop())
	if err != nil {
		return err
	}
	return n.Send(context.Background(), msg)
}
