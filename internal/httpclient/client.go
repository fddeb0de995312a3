package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aleister1102/discohook/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// HTTPRequest describes a single outbound request.
type HTTPRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    io.Reader
	Context context.Context
	// DiscardBody drains the response body without buffering it.
	DiscardBody bool
}

// HTTPResponse is the buffered result of a request.
type HTTPResponse struct {
	StatusCode int
	Status     string // status text without the numeric code
	Headers    http.Header
	Body       []byte
	// Truncated is set when the body went past MaxResponseBytes and was cut.
	Truncated bool
}

// HTTPClient wraps net/http.Client with logging, default headers and typed errors
type HTTPClient struct {
	client     *http.Client
	config     HTTPClientConfig
	logger     zerolog.Logger
	bufferPool sync.Pool
}

// NewHTTPClient creates a new HTTP client with the given configuration using net/http
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DisableKeepAlives:   config.DisableKeepAlives,
		TLSHandshakeTimeout: config.TLSHandshakeTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		} else {
			logger.Debug().Msg("HTTP/2 support enabled")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Info().Str("proxy", config.Proxy).Msg("HTTP client configured with proxy")
	}

	// Redirects are reported to the caller, never followed: following one
	// would turn the POST into a GET.
	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("keep_alives", !config.DisableKeepAlives).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: config,
		logger: logger,
		bufferPool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, 0, 4*1024)
				return &b
			},
		},
	}, nil
}

// Config returns a copy of the client's configuration.
func (c *HTTPClient) Config() HTTPClientConfig {
	return c.config
}

// Do performs a single HTTP request. It never retries. The response body is
// always closed before Do returns, whatever the outcome.
//
// Transport failures, including an unparseable URL, are returned as
// *errorwrapper.NetworkError. Any status code is a successful Do; callers
// decide which codes they accept.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, req.Body)
	if err != nil {
		return nil, errorwrapper.NewNetworkError(RedactURL(req.URL), "failed to create HTTP request", redactError(err))
	}

	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if httpReq.Header.Get("User-Agent") == "" && c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		err = redactError(err)
		c.logger.Debug().
			Err(err).
			Str("method", req.Method).
			Str("url", RedactURL(req.URL)).
			Dur("duration", time.Since(start)).
			Msg("HTTP request failed")
		return nil, errorwrapper.NewNetworkError(RedactURL(req.URL), "HTTP request failed", err)
	}
	defer resp.Body.Close()

	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Status:     statusText(resp),
		Headers:    resp.Header,
	}

	if req.DiscardBody {
		_, _ = io.Copy(io.Discard, resp.Body)
	} else {
		body, truncated, err := c.readBody(resp.Body)
		if err != nil {
			return nil, errorwrapper.NewNetworkError(RedactURL(req.URL), "failed to read response body", redactError(err))
		}
		httpResp.Body = body
		httpResp.Truncated = truncated
	}

	c.logger.Debug().
		Int("status_code", resp.StatusCode).
		Str("method", req.Method).
		Str("url", RedactURL(req.URL)).
		Dur("duration", time.Since(start)).
		Msg("HTTP request completed")

	return httpResp, nil
}

// readBody buffers at most MaxResponseBytes of body through a pooled buffer
// and reports whether anything past the cap was dropped.
func (c *HTTPClient) readBody(body io.Reader) ([]byte, bool, error) {
	bufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(bufPtr)
	buf := bytes.NewBuffer((*bufPtr)[:0])

	reader := body
	if c.config.MaxResponseBytes > 0 {
		reader = io.LimitReader(body, c.config.MaxResponseBytes)
	}
	if _, err := io.Copy(buf, reader); err != nil {
		return nil, false, err
	}
	// drain whatever the limit cut off so the connection can close cleanly
	dropped, _ := io.Copy(io.Discard, body)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, dropped > 0, nil
}

// statusText extracts the reason phrase sent by the server, falling back to
// the standard text for the code when the server sent none.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}

// redactError rewrites the URL net/http embeds in its errors, which would
// otherwise carry the webhook token.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactURL(urlErr.URL)
	}
	return err
}

// RedactURL strips the last path segment (the webhook token) from URLs
// that end up in logs and errors.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return raw
	}
	idx := strings.LastIndex(strings.TrimSuffix(u.Path, "/"), "/")
	if idx <= 0 {
		return raw
	}
	u.Path = u.Path[:idx] + "/redacted"
	u.RawPath = ""
	u.RawQuery = ""
	return u.String()
}
