// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analysis

import (
	"math"
	"time"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Citation heuristic constants. arXiv exposes no citation data, so the
// estimate is a fixed per-year baseline scaled by category popularity.
const (
	baselinePerYear   = 15
	baselineOffset    = 10
	popularMultiplier = 1.5
	hIndexCap         = 10

	EstimateMethod = "age_category_baseline"
	EstimateNote   = "Heuristic estimate from paper age and category popularity. arXiv does not track citations; these numbers are not comparable to a citation index."
)

// PopularCategories are the categories whose papers get the popularity
// multiplier.
var PopularCategories = []string{"cs.AI", "cs.LG", "cs.CV", "cs.CL"}

// EstimateCitations derives a citation estimate for p as of now. The result
// is deterministic and always marked as an estimate.
func EstimateCitations(p types.Paper, now time.Time) types.CitationEstimate {
	est := types.CitationEstimate{
		ID:         p.ID,
		Title:      p.Title,
		Categories: p.Categories,
		Estimate:   true,
		Method:     EstimateMethod,
		Note:       EstimateNote,
	}
	for _, c := range PopularCategories {
		if p.HasCategory(c) {
			est.PopularCategory = true
			break
		}
	}
	if p.Published.IsZero() {
		est.Note = "Could not determine publication date. " + EstimateNote
		return est
	}

	age := now.Sub(p.Published).Hours() / 24 / 365.25
	if age < 0 {
		age = 0
	}
	est.AgeYears = round1(age)

	years := now.UTC().Year() - p.Published.UTC().Year()
	if years < 1 {
		years = 1
	}
	citations := years*baselinePerYear - baselineOffset
	if citations < 0 {
		citations = 0
	}
	if est.PopularCategory {
		citations = int(float64(citations) * popularMultiplier)
	}

	est.EstimatedCitations = citations
	est.CitationsPerYear = round1(float64(citations) / float64(years))
	est.HIndexContribution = min(citations, hIndexCap)
	return est
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
