// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analysis aggregates paper sets into trend reports and derives
// heuristic signals (keywords, citation estimates) from paper metadata.
// Everything here is pure and deterministic for a given input.
package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Result limits for the ranked aggregations.
const (
	TopAuthorsLimit  = 10
	TopKeywordsLimit = 20
)

// PublicationCounts buckets papers by YYYY-MM of their published date,
// ascending by month. Papers without a date are ignored.
func PublicationCounts(papers []types.Paper) []types.MonthCount {
	counts := make(map[string]int)
	for _, p := range papers {
		if p.Published.IsZero() {
			continue
		}
		counts[p.Published.UTC().Format("2006-01")]++
	}

	out := make([]types.MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, types.MonthCount{Month: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// TopAuthors ranks authors by descending paper count, breaking ties by
// name, and returns at most limit entries. An author listed twice on the
// same paper counts once.
func TopAuthors(papers []types.Paper, limit int) []types.AuthorCount {
	counts := make(map[string]int)
	for _, p := range papers {
		seen := make(map[string]bool, len(p.Authors))
		for _, a := range p.Authors {
			if a == "" || seen[a] {
				continue
			}
			seen[a] = true
			counts[a]++
		}
	}

	out := make([]types.AuthorCount, 0, len(counts))
	for a, n := range counts {
		out = append(out, types.AuthorCount{Author: a, PaperCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PaperCount != out[j].PaperCount {
			return out[i].PaperCount > out[j].PaperCount
		}
		return out[i].Author < out[j].Author
	})
	return truncate(out, limit)
}

// KeywordFrequency counts title words (lowercased, letters only, at least
// four letters, stop words removed) and ranks them by descending frequency.
// Ties keep the order in which words were first seen.
func KeywordFrequency(papers []types.Paper, limit int) []types.KeywordCount {
	var order []string
	counts := make(map[string]int)
	for _, p := range papers {
		for _, w := range Tokenize(p.Title) {
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	out := make([]types.KeywordCount, 0, len(order))
	for _, w := range order {
		out = append(out, types.KeywordCount{Keyword: w, Frequency: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Frequency > out[j].Frequency })
	return truncate(out, limit)
}

var word = regexp.MustCompile(`\b[a-z]{4,}\b`)

// Tokenize lowercases text and returns its words of four or more ASCII
// letters that are not stop words, in order of appearance.
func Tokenize(text string) []string {
	var out []string
	for _, w := range word.FindAllString(strings.ToLower(text), -1) {
		if !IsStopWord(w) {
			out = append(out, w)
		}
	}
	return out
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
