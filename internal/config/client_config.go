package config

import (
	"time"

	"github.com/aleister1102/discohook/internal/httpclient"
	"github.com/rs/zerolog"
)

// ClientConfig configures the HTTP client used to deliver webhook messages.
type ClientConfig struct {
	UserAgent          string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	TimeoutSecs        int               `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=0"`
	EnableHTTP2        bool              `json:"enable_http2,omitempty" yaml:"enable_http2,omitempty"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify,omitempty" yaml:"insecure_skip_verify,omitempty"`
	Proxy              string            `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	Headers            map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// NewDefaultClientConfig creates default client configuration
func NewDefaultClientConfig() ClientConfig {
	return ClientConfig{
		UserAgent:   DefaultClientUserAgent,
		TimeoutSecs: DefaultClientTimeoutSecs,
	}
}

// NewHTTPClient builds the delivery client. Settings the file does not
// cover keep the client defaults.
func (c ClientConfig) NewHTTPClient(logger zerolog.Logger) (*httpclient.HTTPClient, error) {
	builder := httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(time.Duration(c.TimeoutSecs) * time.Second).
		WithHTTP2(c.EnableHTTP2).
		WithInsecureSkipVerify(c.InsecureSkipVerify).
		WithProxy(c.Proxy)
	if c.UserAgent != "" {
		builder.WithUserAgent(c.UserAgent)
	}
	for key, value := range c.Headers {
		builder.WithCustomHeader(key, value)
	}
	return builder.Build()
}
