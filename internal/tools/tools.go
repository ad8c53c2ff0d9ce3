// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools implements the arXiv capabilities exposed as MCP tools. Each
// method of Service validates its parameters (no request is made when they
// are invalid), builds a query, fetches and parses the feed, then applies
// its own post-processing. Calls are strictly sequential: multi-paper tools
// issue one request per id, one after another.
package tools

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-mcp/internal/analysis"
	"github.com/pdiddy/arxiv-mcp/internal/feed"
	"github.com/pdiddy/arxiv-mcp/internal/query"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Fetcher retrieves the raw feed for a request. *fetch.Fetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, req query.Request) ([]byte, error)
}

// Service runs the tools against one Fetcher.
type Service struct {
	fetcher  Fetcher
	now      func() time.Time
	log      *zap.Logger
	scorer   analysis.Scorer
	validate *validate
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now; used for the recent-papers window, trend
// windows and citation ages.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithScorer replaces the keyword scorer used by RelatedPapers.
func WithScorer(sc analysis.Scorer) Option {
	return func(s *Service) { s.scorer = sc }
}

// New creates a Service that fetches through f.
func New(f Fetcher, opts ...Option) *Service {
	s := &Service{
		fetcher:  f,
		now:      time.Now,
		log:      zap.NewNop(),
		scorer:   analysis.DefaultScorer,
		validate: newValidate(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run fetches and parses one request.
func (s *Service) run(ctx context.Context, req query.Request) (feed.Result, error) {
	raw, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return feed.Result{}, err
	}
	res, err := feed.Parse(raw)
	if err != nil {
		return feed.Result{}, err
	}
	for _, w := range res.Warnings {
		s.log.Warn("feed entry skipped", zap.String("query", req.String()), zap.String("warning", w))
	}
	return res, nil
}

// search runs req and packages the parsed feed as a SearchResult.
func (s *Service) search(ctx context.Context, req query.Request) (types.SearchResult, error) {
	res, err := s.run(ctx, req)
	if err != nil {
		return types.SearchResult{}, err
	}
	return types.SearchResult{
		Query:        req.SearchQuery,
		TotalResults: res.TotalResults,
		Papers:       res.Papers,
		Warnings:     res.Warnings,
	}, nil
}

// fetchPaper retrieves the paper with the given (already validated) id. A
// feed without a matching entry yields PaperNotFound.
func (s *Service) fetchPaper(ctx context.Context, id string) (types.Paper, error) {
	req, err := query.ByID(id)
	if err != nil {
		return types.Paper{}, err
	}
	res, err := s.run(ctx, req)
	if err != nil {
		return types.Paper{}, fmt.Errorf("fetching %s: %w", id, err)
	}
	base, _ := query.SplitVersion(id)
	for _, p := range res.Papers {
		if p.ID == base {
			return p, nil
		}
	}
	return types.Paper{}, types.PaperNotFound(id)
}

// paper validates raw and fetches it.
func (s *Service) paper(ctx context.Context, raw string) (types.Paper, error) {
	id, err := query.ValidateID(raw)
	if err != nil {
		return types.Paper{}, err
	}
	return s.fetchPaper(ctx, id)
}
