package httpclient

import (
	"time"
)

// DefaultUserAgent identifies webhook deliveries made by this module.
const DefaultUserAgent = "discohook-webhook/1.0"

// HTTPClientConfig holds configuration for HTTP clients
type HTTPClientConfig struct {
	Timeout             time.Duration     // Overall request timeout, 0 means none
	InsecureSkipVerify  bool              // Skip TLS verification
	Proxy               string            // Proxy URL (HTTP/SOCKS)
	UserAgent           string            // User-Agent header
	CustomHeaders       map[string]string // Headers added to every request
	MaxResponseBytes    int64             // Cap on buffered response bodies, 0 means no cap
	DisableKeepAlives   bool              // Close the connection after every request
	TLSHandshakeTimeout time.Duration     // TLS handshake timeout
	DialTimeout         time.Duration     // Connection dial timeout, 0 means none
	KeepAlive           time.Duration     // TCP keep-alive period
	EnableHTTP2         bool              // Negotiate HTTP/2 over TLS
}

// DefaultHTTPClientConfig returns the default HTTP client configuration.
// Webhook delivery is single-shot: each request owns its connection and no
// timeout is imposed.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             0,
		InsecureSkipVerify:  false,
		UserAgent:           DefaultUserAgent,
		CustomHeaders:       map[string]string{},
		MaxResponseBytes:    1 << 20,
		DisableKeepAlives:   true,
		TLSHandshakeTimeout: 10 * time.Second,
		KeepAlive:           30 * time.Second,
		EnableHTTP2:         false,
	}
}
