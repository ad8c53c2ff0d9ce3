// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"time"

	"github.com/pdiddy/arxiv-mcp/internal/analysis"
	"github.com/pdiddy/arxiv-mcp/internal/query"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// AnalyzeTrends samples up to TrendSampleSize recent submissions of a
// category within the period and aggregates them (analyze_trends).
func (s *Service) AnalyzeTrends(ctx context.Context, in TrendParams) (types.TrendReport, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.TrendReport{}, err
	}
	period := types.TimePeriod(in.TimePeriod)
	if period == "" {
		period = types.Period3Months
	}
	days, ok := period.Days()
	if !ok {
		return types.TrendReport{}, types.InvalidParameter("unknown time_period %q", in.TimePeriod)
	}
	kind := types.AnalysisType(in.AnalysisType)
	if kind == "" {
		kind = types.AnalysisPublicationCount
	}

	end := s.now().UTC()
	start := end.Add(-time.Duration(days) * 24 * time.Hour)
	req, err := query.Build(query.Params{
		Category:   in.Category,
		DateFrom:   start,
		DateTo:     end,
		SortBy:     string(query.SortSubmitted),
		MaxResults: TrendSampleSize,
	})
	if err != nil {
		return types.TrendReport{}, err
	}
	res, err := s.run(ctx, req)
	if err != nil {
		return types.TrendReport{}, err
	}

	report := types.TrendReport{
		Category:     in.Category,
		TimePeriod:   period,
		AnalysisType: kind,
		WindowStart:  start,
		WindowEnd:    end,
		TotalPapers:  len(res.Papers),
		Warnings:     res.Warnings,
	}
	switch kind {
	case types.AnalysisPublicationCount:
		report.MonthlyCounts = analysis.PublicationCounts(res.Papers)
	case types.AnalysisTopAuthors:
		report.TopAuthors = analysis.TopAuthors(res.Papers, analysis.TopAuthorsLimit)
	case types.AnalysisKeywordFrequency:
		report.TopKeywords = analysis.KeywordFrequency(res.Papers, analysis.TopKeywordsLimit)
	default:
		return types.TrendReport{}, types.InvalidParameter("unknown analysis_type %q", in.AnalysisType)
	}
	return report, nil
}
