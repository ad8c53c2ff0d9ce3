// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch issues arXiv API requests. A Fetcher performs exactly one GET
// per call, enforces a minimum delay between its own calls, and returns the
// raw Atom payload or a classified transport error.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/pdiddy/arxiv-mcp/internal/httputil"
	"github.com/pdiddy/arxiv-mcp/internal/query"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Observer receives one notification per completed request. outcome is "ok",
// "canceled", or the error kind of the failure.
type Observer interface {
	ObserveFetch(outcome string, elapsed time.Duration)
}

// Fetcher retrieves raw feeds from the arXiv API. It is safe for concurrent
// use; its limiter is its only mutable state.
type Fetcher struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	log       *zap.Logger
	observer  Observer
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient replaces the HTTP client built from the configured timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithLimiter makes the fetcher share l with other fetchers. Without it each
// Fetcher throttles only its own calls.
func WithLimiter(l *rate.Limiter) Option {
	return func(f *Fetcher) { f.limiter = l }
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) { f.log = l }
}

// WithObserver registers o to receive request outcomes.
func WithObserver(o Observer) Option {
	return func(f *Fetcher) { f.observer = o }
}

// New creates a Fetcher from cfg. Zero values in cfg fall back to the
// package defaults in types.
func New(cfg types.FetchConfig, opts ...Option) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = types.DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = types.DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = types.DefaultUserAgent
	}
	ua := cfg.UserAgent
	if cfg.ContactEmail != "" {
		ua = fmt.Sprintf("%s (mailto:%s)", ua, cfg.ContactEmail)
	}

	f := &Fetcher{
		baseURL:   cfg.BaseURL,
		userAgent: ua,
		client:    &http.Client{Timeout: cfg.Timeout},
		log:       zap.NewNop(),
	}
	if cfg.RateDelay > 0 {
		f.limiter = rate.NewLimiter(rate.Every(cfg.RateDelay), 1)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch waits for the rate limiter, then issues one GET for req and returns
// the response body. It never retries.
func (f *Fetcher) Fetch(ctx context.Context, req query.Request) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	url := f.baseURL + "?" + req.String()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("User-Agent", f.userAgent)
	httpReq.Header.Set("Accept", "application/atom+xml")

	start := time.Now()
	body, err := httputil.Do(ctx, f.client, httpReq)
	elapsed := time.Since(start)

	outcome := "ok"
	switch {
	case err == nil:
	case types.KindOf(err) != "":
		outcome = string(types.KindOf(err))
	default:
		outcome = "canceled"
	}
	if f.observer != nil {
		f.observer.ObserveFetch(outcome, elapsed)
	}
	f.log.Debug("arxiv request",
		zap.String("url", url),
		zap.String("outcome", outcome),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", elapsed),
	)

	if err != nil {
		return nil, err
	}
	return body, nil
}
