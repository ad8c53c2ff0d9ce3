// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/arxiv-mcp/internal/query"
)

// entry is the test description of one Atom entry.
type entry struct {
	id         string
	title      string
	abstract   string
	authors    []string
	categories []string
	published  time.Time
}

// atomFeed renders entries as an arXiv-style Atom feed.
func atomFeed(entries ...entry) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:opensearch="http://a9.com/-/spec/opensearch/1.1/" xmlns:arxiv="http://arxiv.org/schemas/atom">
  <title>ArXiv Query</title>
  <id>http://arxiv.org/api/test</id>
  <updated>2024-05-01T00:00:00Z</updated>
`)
	fmt.Fprintf(&sb, "  <opensearch:totalResults>%d</opensearch:totalResults>\n", len(entries))
	for _, e := range entries {
		pub := e.published
		if pub.IsZero() {
			pub = time.Date(2023, 1, 17, 0, 0, 0, 0, time.UTC)
		}
		sb.WriteString("  <entry>\n")
		fmt.Fprintf(&sb, "    <id>http://arxiv.org/abs/%sv1</id>\n", e.id)
		fmt.Fprintf(&sb, "    <published>%s</published>\n", pub.Format(time.RFC3339))
		fmt.Fprintf(&sb, "    <updated>%s</updated>\n", pub.Format(time.RFC3339))
		fmt.Fprintf(&sb, "    <title>%s</title>\n", html.EscapeString(e.title))
		fmt.Fprintf(&sb, "    <summary>%s</summary>\n", html.EscapeString(e.abstract))
		for _, a := range e.authors {
			fmt.Fprintf(&sb, "    <author><name>%s</name></author>\n", html.EscapeString(a))
		}
		for i, c := range e.categories {
			if i == 0 {
				fmt.Fprintf(&sb, "    <arxiv:primary_category term=%q scheme=\"http://arxiv.org/schemas/atom\"/>\n", c)
			}
			fmt.Fprintf(&sb, "    <category term=%q scheme=\"http://arxiv.org/schemas/atom\"/>\n", c)
		}
		sb.WriteString("  </entry>\n")
	}
	sb.WriteString("</feed>\n")
	return sb.String()
}

// fakeFetcher serves single-id requests from byID and everything else from
// search. It records every request.
type fakeFetcher struct {
	mu     sync.Mutex
	calls  []query.Request
	byID   map[string]entry
	errs   map[string]error
	search func(req query.Request) (string, error)
}

func newFakeFetcher(papers ...entry) *fakeFetcher {
	f := &fakeFetcher{byID: make(map[string]entry), errs: make(map[string]error)}
	for _, p := range papers {
		f.byID[p.id] = p
	}
	return f
}

func (f *fakeFetcher) Fetch(ctx context.Context, req query.Request) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.IDList) == 1 && req.SearchQuery == "" {
		id, _ := query.SplitVersion(req.IDList[0])
		if err, ok := f.errs[id]; ok {
			return nil, err
		}
		if e, ok := f.byID[id]; ok {
			return []byte(atomFeed(e)), nil
		}
		return []byte(atomFeed()), nil
	}
	if f.search != nil {
		body, err := f.search(req)
		return []byte(body), err
	}
	return []byte(atomFeed()), nil
}

func (f *fakeFetcher) requests() []query.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]query.Request(nil), f.calls...)
}

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

var planners = entry{
	id:         "2301.07041",
	title:      "Language Models as Zero-Shot Planners",
	abstract:   "Large language models can plan household tasks. Planning with language models needs grounding.",
	authors:    []string{"Alice Smith", "Bob Jones"},
	categories: []string{"cs.CL", "cs.AI"},
	published:  time.Date(2023, 1, 17, 18, 59, 0, 0, time.UTC),
}
