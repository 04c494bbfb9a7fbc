// Package fetcher issues outbound requests with rotated identity headers,
// bounded timeouts and status-based backoff. Fetch failure is a routine
// outcome here, not an exception: callers are expected to move on to the
// next page or query rather than re-issue the same request.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"contactscraper/internal/config"
	"contactscraper/internal/identity"
	"contactscraper/internal/monitoring"
)

// StatusError reports a response with a non-200 status code.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Code)
}

// ErrBadStatus lets callers test for status failures with errors.Is.
var ErrBadStatus = errors.New("bad status")

func (e *StatusError) Is(target error) bool { return target == ErrBadStatus }

// Client fetches pages with a rotated identity per request.
type Client struct {
	http       *http.Client
	identities *identity.Pool
	cfg        *config.Config
	metrics    *monitoring.Metrics
	logger     *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewClient(cfg *config.Config, m *monitoring.Metrics, logger *zap.Logger) *Client {
	return &Client{
		http:       &http.Client{Timeout: cfg.FetchTimeout()},
		identities: identity.NewPool(),
		cfg:        cfg,
		metrics:    m,
		logger:     logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Fetch retrieves the raw body of url. On a non-200 status or transport
// error it applies the configured randomized backoff before returning the
// failure, so the caller can advance without further pacing logic.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}
	for k, v := range c.identities.Headers() {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.IncFetch("transport_error")
		c.logger.Warn("fetch failed", zap.String("url", url), zap.Error(err))
		min, max := c.cfg.ErrorBackoff()
		c.pause(ctx, min, max)
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.IncFetch("bad_status")
		c.logger.Warn("fetch returned bad status",
			zap.String("url", url), zap.Int("status", resp.StatusCode))
		min, max := c.cfg.StatusBackoff()
		c.pause(ctx, min, max)
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.IncFetch("transport_error")
		min, max := c.cfg.ErrorBackoff()
		c.pause(ctx, min, max)
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}

	c.metrics.IncFetch("success")
	return string(body), nil
}

// Pause sleeps for a random duration within [min, max], or until ctx is
// canceled. Exported so the orchestrator shares the same jittered policy.
func (c *Client) Pause(ctx context.Context, min, max time.Duration) {
	c.pause(ctx, min, max)
}

func (c *Client) pause(ctx context.Context, min, max time.Duration) {
	if max <= 0 {
		return
	}
	span := max - min
	c.mu.Lock()
	d := min
	if span > 0 {
		d += time.Duration(c.rng.Int63n(int64(span)))
	}
	c.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
