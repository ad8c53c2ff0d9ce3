// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchResult is the outcome of one search-type tool call: the matching
// papers in feed order, the upstream match count and the expression that
// was sent.
type SearchResult struct {
	// Query echoes the arXiv search expression that produced the results.
	Query string `json:"query" yaml:"query"`

	// TotalResults is the number of matches reported by arXiv, which may
	// exceed len(Papers).
	TotalResults int `json:"total_results" yaml:"total_results"`

	Papers []Paper `json:"papers" yaml:"papers"`

	// Warnings lists feed entries that were skipped during parsing.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// RelatedPapers is the result of the related-papers heuristic. Related is
// an approximation built from keyword overlap, not a citation graph.
type RelatedPapers struct {
	Source   Paper    `json:"source" yaml:"source"`
	Related  []Paper  `json:"related" yaml:"related"`
	Keywords []string `json:"keywords" yaml:"keywords"`
	Query    string   `json:"query" yaml:"query"`
	Note     string   `json:"note" yaml:"note"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ItemError reports the failure of one id inside a batch operation.
type ItemError struct {
	ID      string `json:"id" yaml:"id"`
	Error   string `json:"error" yaml:"error"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ComparisonEntry is one column of a paper comparison. Exactly one of the
// projected fields or Error is meaningful.
type ComparisonEntry struct {
	ID         string            `json:"id" yaml:"id"`
	Title      string            `json:"title,omitempty" yaml:"title,omitempty"`
	Authors    []string          `json:"authors,omitempty" yaml:"authors,omitempty"`
	Categories []string          `json:"categories,omitempty" yaml:"categories,omitempty"`
	Abstract   string            `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Published  string            `json:"published,omitempty" yaml:"published,omitempty"`
	Citations  *CitationEstimate `json:"citations,omitempty" yaml:"citations,omitempty"`

	// Error holds the error kind (e.g. "PaperNotFound") when the id failed.
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Failed reports whether the entry carries an error instead of paper fields.
func (e ComparisonEntry) Failed() bool { return e.Error != "" }

// Comparison is the result of compare_papers.
type Comparison struct {
	Fields  []string          `json:"fields" yaml:"fields"`
	Entries []ComparisonEntry `json:"entries" yaml:"entries"`

	// Report is a Markdown rendering of the successful entries.
	Report string `json:"report" yaml:"report"`
}

// Export is the result of export_papers.
type Export struct {
	Format  string      `json:"format" yaml:"format"`
	Count   int         `json:"count" yaml:"count"`
	Content string      `json:"content" yaml:"content"`
	Errors  []ItemError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Summary is the result of summarize_paper.
type Summary struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
}
