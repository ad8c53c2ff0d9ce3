// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders papers as BibTeX, JSON, CSV or Markdown, and builds
// the Markdown summary and comparison documents returned by the tools. All
// renderers are pure: the same input always yields byte-identical output,
// with records in the order supplied.
package export

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Format is an export format name.
type Format string

const (
	FormatBibTeX   Format = "bibtex"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats in documentation order.
var Formats = []Format{FormatBibTeX, FormatJSON, FormatCSV, FormatMarkdown}

// ParseFormat resolves a format name case-insensitively; "" means bibtex.
// "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bibtex", "bib":
		return FormatBibTeX, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", types.InvalidParameter("format must be one of %s; got %q", FormatNames(), s)
}

// FormatNames joins Formats for help and error texts.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Render writes papers in format f. includeAbstract controls the BibTeX note,
// the JSON abstract field and the Markdown abstract block; CSV never carries
// abstracts.
func Render(papers []types.Paper, f Format, includeAbstract bool) (string, error) {
	switch f {
	case FormatBibTeX:
		return BibTeX(papers, includeAbstract), nil
	case FormatJSON:
		return JSON(papers, includeAbstract)
	case FormatCSV:
		return CSV(papers)
	case FormatMarkdown:
		return Markdown(papers, includeAbstract), nil
	}
	return "", types.InvalidParameter("unsupported export format %q", f)
}

// absURL is the canonical, version-free abstract page of id.
func absURL(id string) string { return "https://arxiv.org/abs/" + id }

func pdfURL(p types.Paper) string {
	if p.PDFURL != "" {
		return p.PDFURL
	}
	return fmt.Sprintf("https://arxiv.org/pdf/%s", p.ID)
}
