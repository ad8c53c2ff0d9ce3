// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// CSVHeader is the fixed column set of the CSV export.
var CSVHeader = []string{"id", "title", "authors", "published", "categories", "url"}

// listSep joins multi-valued CSV columns.
const listSep = "; "

// CSV renders papers with CSVHeader. Fields containing commas, quotes or
// newlines are quoted per RFC 4180.
func CSV(papers []types.Paper) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range papers {
		row := []string{
			p.ID,
			p.Title,
			strings.Join(p.Authors, listSep),
			p.PublishedDate(),
			strings.Join(p.Categories, listSep),
			absURL(p.ID),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row for %s: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return sb.String(), nil
}
