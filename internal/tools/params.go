// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

// Default and maximum page sizes per tool.
const (
	DefaultSearchResults   = 10
	DefaultAuthorResults   = 20
	DefaultCategoryResults = 20
	DefaultRecentResults   = 15
	DefaultRecentDays      = 7
	MaxRecentDays          = 30
	DefaultRelatedResults  = 10
	MaxRelatedResults      = 50
	TrendSampleSize        = 100
	MaxExportPapers        = 50
	relatedKeywords        = 5
	relatedCategories      = 2
)

// The parameter structs below double as MCP tool inputs: json names are the
// wire names, jsonschema tags describe them, validate tags are checked before
// any request is made. Optional numbers are pointers so an omitted value can
// be told apart from zero.

// SearchParams are the inputs of search_arxiv.
type SearchParams struct {
	Query      string `json:"query" jsonschema:"Search terms, a quoted phrase, or an arXiv query expression such as ti:attention AND cat:cs.CL" validate:"required"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Number of results to return, 1 to 100 (default 10)" validate:"omitempty,min=1,max=100"`
	Start      int    `json:"start,omitempty" jsonschema:"Offset of the first result for paging (default 0)" validate:"min=0"`
	Author     string `json:"author,omitempty" jsonschema:"Restrict to papers by this author"`
	Category   string `json:"category,omitempty" jsonschema:"Restrict to an arXiv category such as cs.AI"`
	DateFrom   string `json:"date_from,omitempty" jsonschema:"Earliest submission date as YYYY-MM-DD" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `json:"date_to,omitempty" jsonschema:"Latest submission date as YYYY-MM-DD" validate:"omitempty,datetime=2006-01-02"`
	SortBy     string `json:"sort_by,omitempty" jsonschema:"relevance, date (last updated) or submitted (default relevance)"`
	SortOrder  string `json:"sort_order,omitempty" jsonschema:"ascending or descending (default descending)"`
}

// AuthorParams are the inputs of search_by_author.
type AuthorParams struct {
	Author     string `json:"author" jsonschema:"Author name, e.g. Geoffrey Hinton" validate:"required"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Number of results to return, 1 to 100 (default 20)" validate:"omitempty,min=1,max=100"`
}

// CategoryParams are the inputs of search_by_category.
type CategoryParams struct {
	Category   string `json:"category" jsonschema:"arXiv category code, e.g. cs.LG or quant-ph" validate:"required"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Number of results to return, 1 to 100 (default 20)" validate:"omitempty,min=1,max=100"`
	SortBy     string `json:"sort_by,omitempty" jsonschema:"submitted or date (last updated), default submitted"`
}

// RecentParams are the inputs of get_recent_papers.
type RecentParams struct {
	Category   string `json:"category,omitempty" jsonschema:"Optional arXiv category code"`
	DaysBack   *int   `json:"days_back,omitempty" jsonschema:"Look-back window in days, 1 to 30 (default 7)" validate:"omitempty,min=1,max=30"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Number of results to return, 1 to 100 (default 15)" validate:"omitempty,min=1,max=100"`
}

// PaperParams identify a single paper; used by get_paper, summarize_paper
// and get_paper_citations.
type PaperParams struct {
	ArxivID string `json:"arxiv_id" jsonschema:"arXiv identifier, e.g. 2301.07041 or hep-th/9901001" validate:"required"`
}

// CompareParams are the inputs of compare_papers.
type CompareParams struct {
	PaperIDs []string `json:"paper_ids" jsonschema:"Two to five arXiv identifiers" validate:"min=2,max=5,dive,required"`
	Fields   []string `json:"comparison_fields,omitempty" jsonschema:"Fields to compare: authors, categories, abstract, published, citations (default all but citations)" validate:"omitempty,dive,comparison_field"`
}

// RelatedParams are the inputs of find_related_papers.
type RelatedParams struct {
	ArxivID    string `json:"arxiv_id" jsonschema:"arXiv identifier of the source paper" validate:"required"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"Number of related papers, 1 to 50 (default 10)" validate:"omitempty,min=1,max=50"`
}

// TrendParams are the inputs of analyze_trends.
type TrendParams struct {
	Category     string `json:"category" jsonschema:"arXiv category code to analyze" validate:"required"`
	TimePeriod   string `json:"time_period,omitempty" jsonschema:"1_month, 3_months, 6_months or 1_year (default 3_months)" validate:"omitempty,oneof=1_month 3_months 6_months 1_year"`
	AnalysisType string `json:"analysis_type,omitempty" jsonschema:"publication_count, top_authors or keyword_frequency (default publication_count)" validate:"omitempty,oneof=publication_count top_authors keyword_frequency"`
}

// ExportParams are the inputs of export_papers.
type ExportParams struct {
	PaperIDs        []string `json:"paper_ids" jsonschema:"arXiv identifiers to export" validate:"min=1,max=50,dive,required"`
	Format          string   `json:"format,omitempty" jsonschema:"bibtex, json, csv or markdown (default bibtex)"`
	IncludeAbstract *bool    `json:"include_abstract,omitempty" jsonschema:"Include abstracts (default true; CSV never includes them)"`
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
