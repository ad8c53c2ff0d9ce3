// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"strings"

	"github.com/pdiddy/arxiv-mcp/internal/query"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// RelatedNote labels every related-papers result.
const RelatedNote = "Heuristic: related papers are found by keyword overlap with the source paper's title and abstract within its categories. This is an approximation, not a citation or similarity graph."

// RelatedPapers finds papers sharing salient keywords and categories with
// the source paper (find_related_papers). The source itself is never part
// of the result.
func (s *Service) RelatedPapers(ctx context.Context, in RelatedParams) (types.RelatedPapers, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.RelatedPapers{}, err
	}
	limit := intOr(in.MaxResults, DefaultRelatedResults)

	src, err := s.paper(ctx, in.ArxivID)
	if err != nil {
		return types.RelatedPapers{}, err
	}

	keywords := s.scorer.Keywords(src, relatedKeywords)
	out := types.RelatedPapers{
		Source:   src,
		Related:  []types.Paper{},
		Keywords: keywords,
		Note:     RelatedNote,
	}

	expr := relatedExpression(keywords, src.Categories)
	if expr == "" {
		return out, nil
	}
	out.Query = expr

	// One extra result makes room for the source paper when it matches.
	req, err := query.Build(query.Params{
		FreeText:   expr,
		MaxResults: min(limit+1, query.MaxResults),
	})
	if err != nil {
		return types.RelatedPapers{}, err
	}
	res, err := s.run(ctx, req)
	if err != nil {
		return types.RelatedPapers{}, err
	}
	out.Warnings = res.Warnings
	for _, p := range res.Papers {
		if p.ID == src.ID {
			continue
		}
		if len(out.Related) == limit {
			break
		}
		out.Related = append(out.Related, p)
	}
	return out, nil
}

// relatedExpression builds (all:k1 OR all:k2 ...) AND (cat:c1 OR cat:c2).
// Either side is dropped when empty.
func relatedExpression(keywords, categories []string) string {
	var parts []string
	if len(keywords) > 0 {
		terms := make([]string, len(keywords))
		for i, k := range keywords {
			terms[i] = "all:" + k
		}
		parts = append(parts, query.Or(terms...))
	}
	if len(categories) > relatedCategories {
		categories = categories[:relatedCategories]
	}
	if len(categories) > 0 {
		terms := make([]string, len(categories))
		for i, c := range categories {
			terms[i] = "cat:" + c
		}
		parts = append(parts, query.Or(terms...))
	}
	return strings.Join(parts, " AND ")
}
