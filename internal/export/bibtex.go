// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"strconv"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

var keyReplacer = strings.NewReplacer(".", "_", "-", "_", "/", "_")

// BibTeXKey derives the citation key from an arXiv id: "2301.07041" becomes
// "2301_07041" and "hep-th/9901001" becomes "hep_th_9901001".
func BibTeXKey(id string) string { return keyReplacer.Replace(id) }

// BibTeX renders one @article entry per paper, separated by a blank line.
func BibTeX(papers []types.Paper, includeAbstract bool) string {
	entries := make([]string, 0, len(papers))
	for _, p := range papers {
		entries = append(entries, bibtexEntry(p, includeAbstract))
	}
	return strings.Join(entries, "\n\n")
}

func bibtexEntry(p types.Paper, includeAbstract bool) string {
	year := ""
	if y := p.Year(); y > 0 {
		year = strconv.Itoa(y)
	}

	var sb strings.Builder
	sb.WriteString("@article{" + BibTeXKey(p.ID) + ",\n")
	field(&sb, "title", p.Title)
	field(&sb, "author", strings.Join(p.Authors, " and "))
	field(&sb, "journal", "arXiv preprint arXiv:"+p.ID)
	field(&sb, "year", year)
	if includeAbstract && p.Abstract != "" {
		field(&sb, "url", absURL(p.ID))
		last(&sb, "note", p.Abstract)
	} else {
		last(&sb, "url", absURL(p.ID))
	}
	sb.WriteString("}")
	return sb.String()
}

func field(sb *strings.Builder, name, value string) {
	sb.WriteString("  " + name + "={" + escapeBibTeX(value) + "},\n")
}

func last(sb *strings.Builder, name, value string) {
	sb.WriteString("  " + name + "={" + escapeBibTeX(value) + "}\n")
}

var braceEscaper = strings.NewReplacer("{", `\{`, "}", `\}`)

// escapeBibTeX escapes braces so values cannot close their field early.
func escapeBibTeX(s string) string { return braceEscaper.Replace(s) }
