// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

// Descriptor names and describes one MCP tool.
type Descriptor struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Tool names.
const (
	ToolSearch         = "search_arxiv"
	ToolGetPaper       = "get_paper"
	ToolSummarize      = "summarize_paper"
	ToolSearchAuthor   = "search_by_author"
	ToolSearchCategory = "search_by_category"
	ToolRecent         = "get_recent_papers"
	ToolCompare        = "compare_papers"
	ToolRelated        = "find_related_papers"
	ToolCitations      = "get_paper_citations"
	ToolAnalyzeTrends  = "analyze_trends"
	ToolExport         = "export_papers"
)

// Tools lists every tool the server registers, in registration order.
var Tools = []Descriptor{
	{ToolSearch, "Search arXiv papers by free text or arXiv query syntax, optionally filtered by author, category and submission date."},
	{ToolGetPaper, "Get the full metadata of one arXiv paper by its identifier."},
	{ToolSummarize, "Render a Markdown summary of one arXiv paper."},
	{ToolSearchAuthor, "List papers by an author, newest first."},
	{ToolSearchCategory, "Browse an arXiv category, newest submissions first."},
	{ToolRecent, "List papers submitted in the last few days, optionally within one category."},
	{ToolCompare, "Compare two to five papers side by side on authors, categories, abstract, publication date or estimated citations."},
	{ToolRelated, "Find papers related to a given paper by shared keywords and categories. Heuristic, not a citation graph."},
	{ToolCitations, "Estimate the citation impact of a paper from its age and category. A heuristic estimate, not real citation data."},
	{ToolAnalyzeTrends, "Analyze publication counts, top authors or title keywords in a category over a recent time period."},
	{ToolExport, "Export papers as BibTeX, JSON, CSV or Markdown."},
}

func description(name string) string {
	for _, d := range Tools {
		if d.Name == name {
			return d.Description
		}
	}
	return ""
}
