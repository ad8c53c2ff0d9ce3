// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Record is the JSON export shape of one paper.
type Record struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Authors    []string `json:"authors"`
	Abstract   *string  `json:"abstract,omitempty"`
	Published  string   `json:"published"`
	Categories []string `json:"categories"`
}

// JSON renders papers as an indented JSON array of Record.
func JSON(papers []types.Paper, includeAbstract bool) (string, error) {
	recs := make([]Record, 0, len(papers))
	for _, p := range papers {
		r := Record{
			ID:         p.ID,
			Title:      p.Title,
			Authors:    nonNil(p.Authors),
			Published:  p.PublishedDate(),
			Categories: nonNil(p.Categories),
		}
		if includeAbstract {
			abstract := p.Abstract
			r.Abstract = &abstract
		}
		recs = append(recs, r)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return "", fmt.Errorf("encoding json export: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
