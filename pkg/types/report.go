// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AnalysisType selects the aggregation performed by a trend analysis.
type AnalysisType string

const (
	AnalysisPublicationCount AnalysisType = "publication_count"
	AnalysisTopAuthors       AnalysisType = "top_authors"
	AnalysisKeywordFrequency AnalysisType = "keyword_frequency"
)

// TimePeriod is one of the supported trend windows.
type TimePeriod string

const (
	Period1Month  TimePeriod = "1_month"
	Period3Months TimePeriod = "3_months"
	Period6Months TimePeriod = "6_months"
	Period1Year   TimePeriod = "1_year"
)

// Days returns the window length in days and whether the period is known.
func (p TimePeriod) Days() (int, bool) {
	switch p {
	case Period1Month:
		return 30, true
	case Period3Months:
		return 90, true
	case Period6Months:
		return 180, true
	case Period1Year:
		return 365, true
	}
	return 0, false
}

// MonthCount is the number of papers published in one YYYY-MM bucket.
type MonthCount struct {
	Month string `json:"month" yaml:"month"`
	Count int    `json:"count" yaml:"count"`
}

// AuthorCount is an author's paper count within the analyzed window.
type AuthorCount struct {
	Author     string `json:"author" yaml:"author"`
	PaperCount int    `json:"paper_count" yaml:"paper_count"`
}

// KeywordCount is a title keyword's frequency within the analyzed window.
type KeywordCount struct {
	Keyword   string `json:"keyword" yaml:"keyword"`
	Frequency int    `json:"frequency" yaml:"frequency"`
}

// TrendReport is derived from one bounded search over a category and time
// window. Only the payload matching AnalysisType is populated.
type TrendReport struct {
	Category     string       `json:"category" yaml:"category"`
	TimePeriod   TimePeriod   `json:"time_period" yaml:"time_period"`
	AnalysisType AnalysisType `json:"analysis_type" yaml:"analysis_type"`
	WindowStart  time.Time    `json:"window_start" yaml:"window_start"`
	WindowEnd    time.Time    `json:"window_end" yaml:"window_end"`
	TotalPapers  int          `json:"total_papers" yaml:"total_papers"`

	MonthlyCounts []MonthCount   `json:"monthly_counts,omitempty" yaml:"monthly_counts,omitempty"`
	TopAuthors    []AuthorCount  `json:"top_authors,omitempty" yaml:"top_authors,omitempty"`
	TopKeywords   []KeywordCount `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// CitationEstimate carries proxy signals for a paper's citation impact.
// arXiv metadata has no citation counts; every number here is derived from
// the paper's age and category popularity and is not comparable to a real
// citation index.
type CitationEstimate struct {
	ID                 string   `json:"arxiv_id" yaml:"arxiv_id"`
	Title              string   `json:"title" yaml:"title"`
	AgeYears           float64  `json:"age_years" yaml:"age_years"`
	Categories         []string `json:"categories" yaml:"categories"`
	PopularCategory    bool     `json:"popular_category" yaml:"popular_category"`
	EstimatedCitations int      `json:"estimated_citations" yaml:"estimated_citations"`
	CitationsPerYear   float64  `json:"citations_per_year" yaml:"citations_per_year"`
	HIndexContribution int      `json:"h_index_contribution" yaml:"h_index_contribution"`

	// Estimate is always true.
	Estimate bool   `json:"estimate" yaml:"estimate"`
	Method   string `json:"method" yaml:"method"`
	Note     string `json:"note" yaml:"note"`
}
