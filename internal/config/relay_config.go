package config

import (
	"time"

	"github.com/aleister1102/discohook/internal/httpclient"
	"github.com/rs/zerolog"
)

// RelayConfig configures the webhook relay server.
type RelayConfig struct {
	ListenAddress       string `json:"listen_address,omitempty" yaml:"listen_address,omitempty" validate:"required,hostname_port"`
	UpstreamBaseURL     string `json:"upstream_base_url,omitempty" yaml:"upstream_base_url,omitempty" validate:"required,url"`
	MaxBodyBytes        int64  `json:"max_body_bytes,omitempty" yaml:"max_body_bytes,omitempty" validate:"min=1"`
	UserAgent           string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	UpstreamTimeoutSecs int    `json:"upstream_timeout_secs,omitempty" yaml:"upstream_timeout_secs,omitempty" validate:"min=0"`
}

// NewDefaultRelayConfig creates default relay configuration
func NewDefaultRelayConfig() RelayConfig {
	return RelayConfig{
		ListenAddress:       DefaultRelayListenAddress,
		UpstreamBaseURL:     DefaultRelayUpstreamBaseURL,
		MaxBodyBytes:        DefaultRelayMaxBodyBytes,
		UserAgent:           DefaultRelayUserAgent,
		UpstreamTimeoutSecs: DefaultRelayUpstreamTimeoutSecs,
	}
}

// NewHTTPClient builds the upstream client. Connections are reused across
// forwarded requests. The response cap follows MaxBodyBytes; the relay
// answers 502 instead of mirroring a body cut at the cap.
func (c RelayConfig) NewHTTPClient(logger zerolog.Logger) (*httpclient.HTTPClient, error) {
	userAgent := c.UserAgent
	if userAgent == "" {
		userAgent = DefaultRelayUserAgent
	}
	return httpclient.NewHTTPClientBuilder(logger).
		WithUserAgent(userAgent).
		WithTimeout(time.Duration(c.UpstreamTimeoutSecs) * time.Second).
		WithMaxResponseBytes(c.MaxBodyBytes).
		WithKeepAlives(true).
		Build()
}
