// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Comparison field names.
const (
	FieldAuthors    = "authors"
	FieldCategories = "categories"
	FieldAbstract   = "abstract"
	FieldPublished  = "published"
	FieldCitations  = "citations"
)

// ComparisonFields lists every field compare_papers can project.
var ComparisonFields = []string{FieldAuthors, FieldCategories, FieldAbstract, FieldPublished, FieldCitations}

// DefaultComparisonFields is used when the caller names no fields.
var DefaultComparisonFields = []string{FieldAuthors, FieldCategories, FieldAbstract, FieldPublished}

// IsComparisonField reports whether name is a known comparison field.
func IsComparisonField(name string) bool {
	for _, f := range ComparisonFields {
		if f == name {
			return true
		}
	}
	return false
}

// Markdown renders papers as a Markdown document with one numbered section
// per paper.
func Markdown(papers []types.Paper, includeAbstract bool) string {
	var sb strings.Builder
	sb.WriteString("# arXiv Papers Export\n\n")
	for i, p := range papers {
		fmt.Fprintf(&sb, "## %d. %s\n\n", i+1, p.Title)
		fmt.Fprintf(&sb, "- **Authors:** %s\n", strings.Join(p.Authors, ", "))
		fmt.Fprintf(&sb, "- **arXiv ID:** [%s](%s)\n", p.ID, absURL(p.ID))
		fmt.Fprintf(&sb, "- **Published:** %s\n", p.PublishedDate())
		if len(p.Categories) > 0 {
			fmt.Fprintf(&sb, "- **Categories:** %s\n", strings.Join(p.Categories, ", "))
		}
		fmt.Fprintf(&sb, "- **PDF:** [Download](%s)\n", pdfURL(p))
		sb.WriteString("\n")
		if includeAbstract && p.Abstract != "" {
			fmt.Fprintf(&sb, "**Abstract:**\n\n%s\n\n", p.Abstract)
		}
		sb.WriteString("---\n\n")
	}
	return sb.String()
}

// Summary renders a single paper as a readable Markdown summary.
func Summary(p types.Paper) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", p.Title)
	fmt.Fprintf(&sb, "**Authors:** %s\n", strings.Join(p.Authors, ", "))
	fmt.Fprintf(&sb, "**Published:** %s\n", p.PublishedDate())
	if !p.Updated.IsZero() && p.Updated.UTC().Format(types.DateLayout) != p.PublishedDate() {
		fmt.Fprintf(&sb, "**Updated:** %s\n", p.Updated.UTC().Format(types.DateLayout))
	}
	fmt.Fprintf(&sb, "**arXiv ID:** %s%s\n", p.ID, p.Version)
	if len(p.Categories) > 0 {
		fmt.Fprintf(&sb, "**Categories:** %s\n", strings.Join(p.Categories, ", "))
	}
	if p.JournalRef != "" {
		fmt.Fprintf(&sb, "**Journal:** %s\n", p.JournalRef)
	}
	if p.DOI != "" {
		fmt.Fprintf(&sb, "**DOI:** %s\n", p.DOI)
	}
	if p.Comment != "" {
		fmt.Fprintf(&sb, "**Comment:** %s\n", p.Comment)
	}
	fmt.Fprintf(&sb, "\n## Abstract\n\n%s\n\n", p.Abstract)
	fmt.Fprintf(&sb, "**PDF:** %s\n", pdfURL(p))
	fmt.Fprintf(&sb, "**arXiv Page:** %s\n", absURL(p.ID))
	return sb.String()
}

const (
	titlePreview    = 60
	abstractPreview = 200
	authorPreview   = 3
)

// ComparisonReport renders successful entries grouped by field. Failed
// entries are listed at the end with their error.
func ComparisonReport(entries []types.ComparisonEntry, fields []string) string {
	var ok, failed []types.ComparisonEntry
	for _, e := range entries {
		if e.Failed() {
			failed = append(failed, e)
		} else {
			ok = append(ok, e)
		}
	}

	var sb strings.Builder
	sb.WriteString("# Paper Comparison\n\n")
	if len(ok) == 0 {
		sb.WriteString("No papers could be compared.\n\n")
	}
	for _, f := range fields {
		if len(ok) == 0 {
			break
		}
		fmt.Fprintf(&sb, "## %s\n\n", heading(f))
		for i, e := range ok {
			fmt.Fprintf(&sb, "**Paper %d** (%s): %s\n", i+1, e.ID, preview(e.Title, titlePreview))
			fmt.Fprintf(&sb, "- %s: %s\n\n", heading(f), fieldValue(e, f))
		}
		sb.WriteString("---\n\n")
	}
	if len(failed) > 0 {
		sb.WriteString("## Not Compared\n\n")
		for _, e := range failed {
			fmt.Fprintf(&sb, "- %s: %s", e.ID, e.Error)
			if e.Message != "" {
				fmt.Fprintf(&sb, " (%s)", e.Message)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func fieldValue(e types.ComparisonEntry, f string) string {
	switch f {
	case FieldAuthors:
		authors := e.Authors
		more := ""
		if len(authors) > authorPreview {
			authors, more = authors[:authorPreview], ", ..."
		}
		return strings.Join(authors, ", ") + more
	case FieldCategories:
		return strings.Join(e.Categories, ", ")
	case FieldAbstract:
		return preview(e.Abstract, abstractPreview)
	case FieldPublished:
		return e.Published
	case FieldCitations:
		if e.Citations == nil {
			return "n/a"
		}
		return fmt.Sprintf("~%d (estimate, %.1f/year)", e.Citations.EstimatedCitations, e.Citations.CitationsPerYear)
	}
	return ""
}

func heading(f string) string {
	if f == "" {
		return f
	}
	return strings.ToUpper(f[:1]) + f[1:]
}

// preview shortens s to at most n runes plus an ellipsis.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
