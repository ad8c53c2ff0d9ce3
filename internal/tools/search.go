// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/pdiddy/arxiv-mcp/internal/query"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// endOfDay extends a calendar date to its last minute, the resolution of
// arXiv date ranges.
const endOfDay = 24*time.Hour - time.Minute

// Search runs a free-text search with optional author, category and date
// filters (search_arxiv).
func (s *Service) Search(ctx context.Context, in SearchParams) (types.SearchResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.SearchResult{}, err
	}
	return s.SearchQuery(ctx, in.QueryParams())
}

// QueryParams maps validated search_arxiv inputs onto query parameters. The
// date_to day is included in full.
func (in SearchParams) QueryParams() query.Params {
	p := query.Params{
		FreeText:   in.Query,
		Author:     in.Author,
		Category:   in.Category,
		SortBy:     in.SortBy,
		SortOrder:  in.SortOrder,
		Start:      in.Start,
		MaxResults: intOr(in.MaxResults, DefaultSearchResults),
	}
	if in.DateFrom != "" {
		p.DateFrom, _ = time.Parse(types.DateLayout, in.DateFrom)
	}
	if in.DateTo != "" {
		to, _ := time.Parse(types.DateLayout, in.DateTo)
		p.DateTo = to.Add(endOfDay)
	}
	return p
}

// SearchQuery runs already assembled query parameters. It backs Search and
// the CLI's saved query files.
func (s *Service) SearchQuery(ctx context.Context, p query.Params) (types.SearchResult, error) {
	req, err := query.Build(p)
	if err != nil {
		return types.SearchResult{}, err
	}
	return s.search(ctx, req)
}

// SearchByAuthor lists an author's papers, newest submissions first
// (search_by_author).
func (s *Service) SearchByAuthor(ctx context.Context, in AuthorParams) (types.SearchResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.SearchResult{}, err
	}
	return s.SearchQuery(ctx, query.Params{
		Author:     in.Author,
		SortBy:     string(query.SortSubmitted),
		MaxResults: intOr(in.MaxResults, DefaultAuthorResults),
	})
}

// SearchByCategory browses a category, newest submissions first unless
// sort_by selects the last-updated date (search_by_category).
func (s *Service) SearchByCategory(ctx context.Context, in CategoryParams) (types.SearchResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.SearchResult{}, err
	}
	sortBy := in.SortBy
	if sortBy == "" {
		sortBy = string(query.SortSubmitted)
	}
	return s.SearchQuery(ctx, query.Params{
		Category:   in.Category,
		SortBy:     sortBy,
		MaxResults: intOr(in.MaxResults, DefaultCategoryResults),
	})
}

// RecentPapers returns papers published within the last days_back days
// (get_recent_papers). The upstream date window is coarse, so parsed papers
// are filtered again against the exact cutoff and each drop is reported as a
// warning. TotalResults stays the upstream match count.
func (s *Service) RecentPapers(ctx context.Context, in RecentParams) (types.SearchResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.SearchResult{}, err
	}
	days := intOr(in.DaysBack, DefaultRecentDays)
	now := s.now().UTC()
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	res, err := s.SearchQuery(ctx, query.Params{
		Category:   in.Category,
		DateFrom:   cutoff,
		DateTo:     now,
		SortBy:     string(query.SortSubmitted),
		MaxResults: intOr(in.MaxResults, DefaultRecentResults),
	})
	if err != nil {
		return types.SearchResult{}, err
	}
	kept := PublishedSince(res.Papers, cutoff)
	if dropped := len(res.Papers) - len(kept); dropped > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"dropped %d paper(s) published before %s; total_results is the upstream match count",
			dropped, cutoff.Format(time.RFC3339)))
	}
	res.Papers = kept
	return res, nil
}

// PublishedSince keeps the papers published at or after cutoff, in order.
func PublishedSince(papers []types.Paper, cutoff time.Time) []types.Paper {
	out := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if !p.Published.IsZero() && !p.Published.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out
}
