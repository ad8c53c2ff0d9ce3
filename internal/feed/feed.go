// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed decodes arXiv API Atom responses into Paper records.
// Entries that cannot be turned into a Paper are skipped and reported as
// warnings; only an undecodable payload fails the whole parse.
package feed

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"

	"github.com/pdiddy/arxiv-mcp/internal/query"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Extension namespaces as keyed by gofeed (the document's prefix).
const (
	nsArxiv      = "arxiv"
	nsOpenSearch = "opensearch"
)

// errorIDMarker identifies the pseudo-entries arXiv returns for a rejected
// query (e.g. "http://arxiv.org/api/errors#incorrect_id_format_for_1234").
const errorIDMarker = "/api/errors"

// Result is the decoded content of one feed.
type Result struct {
	Papers []types.Paper

	// TotalResults is the opensearch match count; it falls back to
	// len(Papers) when the feed omits it.
	TotalResults int
	StartIndex   int
	ItemsPerPage int

	Warnings []string
}

// Parse decodes raw. It fails with MalformedFeed only when raw is not an
// Atom document; individual bad entries become warnings.
func Parse(raw []byte) (Result, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Result{}, types.MalformedFeed(fmt.Errorf("empty payload"))
	}
	fp := &atom.Parser{}
	f, err := fp.Parse(bytes.NewReader(raw))
	if err != nil {
		return Result{}, types.MalformedFeed(err)
	}

	res := Result{Papers: make([]types.Paper, 0, len(f.Entries))}
	for i, entry := range f.Entries {
		if entry == nil {
			continue
		}
		if strings.Contains(entry.ID, errorIDMarker) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("arXiv reported an error: %s", collapse(entry.Summary)))
			continue
		}
		p, err := toPaper(entry)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skipped entry %d: %v", i+1, err))
			continue
		}
		res.Papers = append(res.Papers, p)
	}

	res.TotalResults = len(res.Papers)
	if n, ok := intExt(f.Extensions, nsOpenSearch, "totalResults"); ok {
		res.TotalResults = n
	}
	res.StartIndex, _ = intExt(f.Extensions, nsOpenSearch, "startIndex")
	res.ItemsPerPage, _ = intExt(f.Extensions, nsOpenSearch, "itemsPerPage")
	return res, nil
}

func toPaper(e *atom.Entry) (types.Paper, error) {
	versioned := ExtractID(e.ID)
	if versioned == "" {
		return types.Paper{}, fmt.Errorf("no arXiv id in %q", e.ID)
	}
	id, version := query.SplitVersion(versioned)

	p := types.Paper{
		ID:         id,
		Version:    version,
		Title:      collapse(e.Title),
		Abstract:   collapse(e.Summary),
		Authors:    []string{},
		Categories: []string{},
		Comment:    collapse(textExt(e.Extensions, nsArxiv, "comment")),
		JournalRef: collapse(textExt(e.Extensions, nsArxiv, "journal_ref")),
		DOI:        strings.TrimSpace(textExt(e.Extensions, nsArxiv, "doi")),
	}
	if p.Title == "" {
		return types.Paper{}, fmt.Errorf("entry %s has no title", id)
	}

	for _, a := range e.Authors {
		if a == nil {
			continue
		}
		if name := collapse(a.Name); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}

	seen := make(map[string]bool)
	for _, c := range e.Categories {
		if c == nil {
			continue
		}
		term := strings.TrimSpace(c.Term)
		if term == "" || seen[term] {
			continue
		}
		seen[term] = true
		p.Categories = append(p.Categories, term)
	}
	if pc, ok := firstExt(e.Extensions, nsArxiv, "primary_category"); ok {
		p.PrimaryCategory = strings.TrimSpace(pc.Attrs["term"])
	}
	if p.PrimaryCategory == "" && len(p.Categories) > 0 {
		p.PrimaryCategory = p.Categories[0]
	}
	if p.PrimaryCategory != "" && !seen[p.PrimaryCategory] {
		p.Categories = append([]string{p.PrimaryCategory}, p.Categories...)
	}

	p.Published = parseTime(e.PublishedParsed, e.Published)
	p.Updated = parseTime(e.UpdatedParsed, e.Updated)
	if p.Published.IsZero() {
		p.Published = p.Updated
	}

	for _, l := range e.Links {
		if l == nil {
			continue
		}
		switch {
		case l.Type == "application/pdf" || l.Title == "pdf":
			p.PDFURL = l.Href
		case l.Rel == "alternate" || (l.Rel == "" && p.AbsURL == ""):
			p.AbsURL = l.Href
		}
	}
	if p.AbsURL == "" {
		p.AbsURL = "https://arxiv.org/abs/" + versioned
	}
	if p.PDFURL == "" {
		p.PDFURL = "https://arxiv.org/pdf/" + versioned
	}
	return p, nil
}

// ExtractID pulls the versioned arXiv id out of an entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" yields "2301.07041v1"). It
// returns "" when the URL carries no well-formed id.
func ExtractID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := strings.TrimSpace(idURL[idx+len(prefix):])
	if !query.IsValidID(id) {
		return ""
	}
	return id
}

func parseTime(parsed *time.Time, raw string) time.Time {
	if parsed != nil {
		return parsed.UTC()
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(raw)); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

// collapse joins s on single spaces; arXiv wraps titles and abstracts at
// fixed widths.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func firstExt(exts ext.Extensions, ns, name string) (ext.Extension, bool) {
	if exts == nil {
		return ext.Extension{}, false
	}
	vals := exts[ns][name]
	if len(vals) == 0 {
		return ext.Extension{}, false
	}
	return vals[0], true
}

func textExt(exts ext.Extensions, ns, name string) string {
	e, ok := firstExt(exts, ns, name)
	if !ok {
		return ""
	}
	return e.Value
}

func intExt(exts ext.Extensions, ns, name string) (int, bool) {
	e, ok := firstExt(exts, ns, name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(e.Value))
	if err != nil {
		return 0, false
	}
	return n, true
}
