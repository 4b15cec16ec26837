// Package gateway is the HTTP client for the platform API. Its error
// contract carries the whole panel: a missing token is the only hard error
// and it is raised once, at construction. After that every failure (broken
// transport, timeout, 401, 500) is logged and degraded to an empty Payload,
// so callers check emptiness and never handle errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"go.uber.org/zap"
)

// DefaultTimeout bounds every call; a slow backend blocks the request that
// issued the call, nothing else.
const DefaultTimeout = 10 * time.Second

// ErrMissingToken is returned by New when no bearer token is configured.
// This is a configuration fault and fails startup.
var ErrMissingToken = errors.New("gateway: admin API token is not configured")

// Config holds the client settings.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client performs authenticated calls against the platform API. One Client
// is constructed at startup and shared by all handlers; it keeps no
// per-request state.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

// New validates the configuration and builds the client. TLS verification
// stays at the http.Client default (on).
func New(cfg Config, log *zap.Logger) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, ErrMissingToken
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) Payload {
	return c.Request(ctx, http.MethodGet, endpoint, nil, params)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any) Payload {
	return c.Request(ctx, http.MethodPut, endpoint, body, nil)
}

// Request performs one API call. Fail-soft: any transport error or non-2xx
// status is logged and produces an empty Payload. A 2xx body that is not
// JSON is wrapped as {"message": <raw text>} instead of failing.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any, params url.Values) Payload {
	target := c.baseURL + endpoint

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.log.Error("encode request body", zap.String("url", target), zap.Error(err))
			return Payload{}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		c.log.Error("build request", zap.String("url", target), zap.Error(err))
		return Payload{}
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	var seg *newrelic.ExternalSegment
	if txn := newrelic.FromContext(ctx); txn != nil {
		seg = newrelic.StartExternalSegment(txn, req)
	}

	resp, err := c.http.Do(req)
	if seg != nil {
		seg.Response = resp
		seg.End()
	}
	if err != nil {
		c.log.Error("api request failed",
			zap.String("method", method), zap.String("url", target), zap.Error(err))
		return Payload{}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("read response body", zap.String("url", target), zap.Error(err))
		return Payload{}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logStatus(method, target, resp.StatusCode, raw)
		return Payload{}
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		c.log.Warn("response body is not JSON, wrapping as message",
			zap.String("url", target))
		return Payload{value: map[string]any{"message": string(raw)}}
	}
	return Payload{value: value}
}

// logStatus gives the statuses the API is known to answer with their own
// message; everything else shares a generic one. All of them degrade the
// same way.
func (c *Client) logStatus(method, target string, status int, body []byte) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", status),
		zap.ByteString("body", body),
	}
	switch status {
	case http.StatusUnauthorized:
		c.log.Error("api rejected credentials", fields...)
	case http.StatusForbidden:
		c.log.Error("api denied access", fields...)
	case http.StatusNotFound:
		c.log.Error("api resource not found", fields...)
	case http.StatusInternalServerError:
		c.log.Error("api internal error", fields...)
	default:
		c.log.Error("api returned unexpected status", fields...)
	}
}
