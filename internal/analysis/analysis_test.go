// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

func paper(id, title string, published time.Time, authors ...string) types.Paper {
	return types.Paper{ID: id, Title: title, Authors: authors, Categories: []string{}, Published: published}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestTopAuthorsRanksByCountThenName(t *testing.T) {
	papers := []types.Paper{
		paper("1", "t", day(2024, 1, 1), "A", "B"),
		paper("2", "t", day(2024, 1, 2), "A"),
		paper("3", "t", day(2024, 1, 3), "B", "A"),
		paper("4", "t", day(2024, 1, 4), "C"),
		paper("5", "t", day(2024, 1, 5), "D"),
	}

	got := TopAuthors(papers, TopAuthorsLimit)
	require.Len(t, got, 4)
	assert.Equal(t, types.AuthorCount{Author: "A", PaperCount: 3}, got[0])
	assert.Equal(t, types.AuthorCount{Author: "B", PaperCount: 2}, got[1])
	assert.Equal(t, "C", got[2].Author, "ties are alphabetical")
	assert.Equal(t, "D", got[3].Author)
}

func TestTopAuthorsLimit(t *testing.T) {
	var papers []types.Paper
	for _, a := range []string{"k", "j", "i", "h", "g", "f", "e", "d", "c", "b", "a", "z"} {
		papers = append(papers, paper(a, "t", day(2024, 1, 1), a))
	}
	got := TopAuthors(papers, TopAuthorsLimit)
	require.Len(t, got, 10)
	assert.Equal(t, "a", got[0].Author)
}

func TestPublicationCounts(t *testing.T) {
	papers := []types.Paper{
		paper("1", "t", day(2024, 3, 5)),
		paper("2", "t", day(2024, 1, 9)),
		paper("3", "t", day(2024, 3, 28)),
		paper("4", "t", time.Time{}),
	}
	assert.Equal(t, []types.MonthCount{
		{Month: "2024-01", Count: 1},
		{Month: "2024-03", Count: 2},
	}, PublicationCounts(papers))
}

func TestKeywordFrequency(t *testing.T) {
	papers := []types.Paper{
		paper("1", "Graph Neural Networks for Molecules", time.Time{}),
		paper("2", "Scaling Graph Transformers", time.Time{}),
		paper("3", "Molecules, graphs and GRAPH kernels", time.Time{}),
	}

	got := KeywordFrequency(papers, TopKeywordsLimit)
	require.NotEmpty(t, got)
	assert.Equal(t, types.KeywordCount{Keyword: "graph", Frequency: 3}, got[0])
	assert.Equal(t, types.KeywordCount{Keyword: "molecules", Frequency: 2}, got[1])
	// Frequency-1 words keep first-seen order.
	var rest []string
	for _, k := range got[2:] {
		rest = append(rest, k.Keyword)
	}
	assert.Equal(t, []string{"neural", "networks", "scaling", "transformers", "graphs", "kernels"}, rest)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"attention", "need"}, Tokenize("Attention Is All You Need"))
	assert.Equal(t, []string{"transformer", "models", "data"}, Tokenize("Transformer-based models with GPT4 data"))
	assert.Empty(t, Tokenize("A is on the"))
}

func TestTermFrequencyWeightsTitle(t *testing.T) {
	p := types.Paper{
		Title:    "Sparse Attention",
		Abstract: "Efficient kernels for efficient inference. Efficient decoding.",
	}
	got := DefaultScorer.Keywords(p, 3)
	assert.Equal(t, []string{"sparse", "attention", "efficient"}, got)

	assert.Len(t, TermFrequency{}.Keywords(p, 10), 6)
}

func TestScorerFunc(t *testing.T) {
	var s Scorer = ScorerFunc(func(types.Paper, int) []string { return []string{"fixed"} })
	assert.Equal(t, []string{"fixed"}, s.Keywords(types.Paper{}, 1))
}

func TestEstimateCitations(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	plain := types.Paper{ID: "2301.00001", Title: "Plain", Categories: []string{"math.AG"}, Published: day(2023, 6, 1)}
	est := EstimateCitations(plain, now)
	assert.True(t, est.Estimate)
	assert.False(t, est.PopularCategory)
	assert.Equal(t, 35, est.EstimatedCitations)
	assert.Equal(t, 11.7, est.CitationsPerYear)
	assert.Equal(t, 10, est.HIndexContribution)
	assert.Equal(t, 3.0, est.AgeYears)
	assert.Equal(t, EstimateMethod, est.Method)
	assert.NotEmpty(t, est.Note)

	popular := plain
	popular.Categories = []string{"cs.LG"}
	assert.Equal(t, 52, EstimateCitations(popular, now).EstimatedCitations)

	assert.Equal(t, est, EstimateCitations(plain, now), "deterministic for a fixed clock")
}

func TestEstimateCitationsYoungAndUndated(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	fresh := EstimateCitations(types.Paper{ID: "2605.00001", Published: day(2026, 5, 20)}, now)
	assert.Equal(t, 5, fresh.EstimatedCitations)
	assert.Equal(t, 5, fresh.HIndexContribution)

	undated := EstimateCitations(types.Paper{ID: "x"}, now)
	assert.True(t, undated.Estimate)
	assert.Zero(t, undated.EstimatedCitations)
	assert.Contains(t, undated.Note, "publication date")
}
