// Package upstream fetches country and exchange rate data from external HTTP APIs.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/chainsafe/country-mirror/internal/metrics"
	"github.com/chainsafe/country-mirror/pkg/config"
)

// maxBodySize bounds upstream payloads; the full country list is ~100KB.
const maxBodySize = 16 << 20

// ErrUnavailable is returned when an upstream responds with a failure status
// or a payload of the wrong shape.
var ErrUnavailable = errors.New("upstream unavailable")

// Client performs rate limited GET requests against one upstream.
type Client struct {
	name      string
	url       string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLimiter overrides the outbound request limiter.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithLogger sets the client logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func newClient(name, url string, cfg *config.UpstreamConfig, opts ...Option) *Client {
	c := &Client{
		name:      name,
		url:       url,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1)),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get returns the body of a successful response.
// Non-2xx statuses are reported as ErrUnavailable.
func (c *Client) get(ctx context.Context) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: rate limiter: %w", c.name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(c.name, "error").Inc()
		return nil, fmt.Errorf("%s: %w: %w", c.name, ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.UpstreamDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(c.name, "error").Inc()
		return nil, fmt.Errorf("%s: %w: read body: %w", c.name, ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequests.WithLabelValues(c.name, "bad_status").Inc()
		c.logger.Warn("Upstream returned failure status",
			zap.String("upstream", c.name),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%s: %w: status %d", c.name, ErrUnavailable, resp.StatusCode)
	}

	metrics.UpstreamRequests.WithLabelValues(c.name, "ok").Inc()
	c.logger.Debug("Upstream response received",
		zap.String("upstream", c.name),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
	)
	return body, nil
}
