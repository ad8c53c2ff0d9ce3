// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"sort"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Scorer picks the salient keywords of a paper. Implementations are
// approximations; callers must not treat the result as a similarity measure.
type Scorer interface {
	Keywords(p types.Paper, n int) []string
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(p types.Paper, n int) []string

// Keywords calls f.
func (f ScorerFunc) Keywords(p types.Paper, n int) []string { return f(p, n) }

// TermFrequency scores words by frequency over title and abstract, with title
// occurrences weighted by TitleWeight. Ties keep first-seen order, title
// first.
type TermFrequency struct {
	TitleWeight int
}

// DefaultScorer is the Scorer used when none is configured.
var DefaultScorer Scorer = TermFrequency{TitleWeight: 3}

// Keywords returns at most n keywords of p.
func (s TermFrequency) Keywords(p types.Paper, n int) []string {
	weight := s.TitleWeight
	if weight < 1 {
		weight = 1
	}

	var order []string
	scores := make(map[string]int)
	add := func(words []string, w int) {
		for _, word := range words {
			if _, ok := scores[word]; !ok {
				order = append(order, word)
			}
			scores[word] += w
		}
	}
	add(Tokenize(p.Title), weight)
	add(Tokenize(p.Abstract), 1)

	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })
	return truncate(order, n)
}
