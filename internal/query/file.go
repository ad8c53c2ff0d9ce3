// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// File is the on-disk form of a search and its results, so a search can be
// saved and inspected or re-run later.
type File struct {
	Query   FileParams    `yaml:"query"`
	Results []types.Paper `yaml:"results"`
	Summary FileSummary   `yaml:"summary"`
}

// FileParams stores Params in a serializable form.
type FileParams struct {
	FreeText   string   `yaml:"free_text,omitempty"`
	Author     string   `yaml:"author,omitempty"`
	Category   string   `yaml:"category,omitempty"`
	DateFrom   string   `yaml:"date_from,omitempty"`
	DateTo     string   `yaml:"date_to,omitempty"`
	IDs        []string `yaml:"ids,omitempty"`
	SortBy     string   `yaml:"sort_by,omitempty"`
	SortOrder  string   `yaml:"sort_order,omitempty"`
	MaxResults int      `yaml:"max_results"`
}

// FileSummary stores result statistics and the time of the search.
type FileSummary struct {
	Expression   string    `yaml:"expression"`
	TotalResults int       `yaml:"total_results"`
	Returned     int       `yaml:"returned"`
	Warnings     []string  `yaml:"warnings,omitempty"`
	Timestamp    time.Time `yaml:"timestamp"`
}

// NewFile captures p and its result.
func NewFile(p Params, res types.SearchResult, at time.Time) File {
	f := File{
		Query: FileParams{
			FreeText:   p.FreeText,
			Author:     p.Author,
			Category:   p.Category,
			IDs:        p.IDs,
			SortBy:     p.SortBy,
			SortOrder:  p.SortOrder,
			MaxResults: p.MaxResults,
		},
		Results: res.Papers,
		Summary: FileSummary{
			Expression:   res.Query,
			TotalResults: res.TotalResults,
			Returned:     len(res.Papers),
			Warnings:     res.Warnings,
			Timestamp:    at,
		},
	}
	if !p.DateFrom.IsZero() {
		f.Query.DateFrom = p.DateFrom.Format(types.DateLayout)
	}
	if !p.DateTo.IsZero() {
		f.Query.DateTo = p.DateTo.Format(types.DateLayout)
	}
	return f
}

// WriteFile saves f as YAML.
func WriteFile(path string, f File) error {
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFile loads a query file written by WriteFile.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &f, nil
}

// Params converts the stored parameters back into Params. The date_to day is
// included in full.
func (p FileParams) Params() (Params, error) {
	q := Params{
		FreeText:   p.FreeText,
		Author:     p.Author,
		Category:   p.Category,
		IDs:        p.IDs,
		SortBy:     p.SortBy,
		SortOrder:  p.SortOrder,
		MaxResults: p.MaxResults,
	}
	if p.DateFrom != "" {
		t, err := time.Parse(types.DateLayout, p.DateFrom)
		if err != nil {
			return q, fmt.Errorf("invalid date_from %q: %w", p.DateFrom, err)
		}
		q.DateFrom = t
	}
	if p.DateTo != "" {
		t, err := time.Parse(types.DateLayout, p.DateTo)
		if err != nil {
			return q, fmt.Errorf("invalid date_to %q: %w", p.DateTo, err)
		}
		q.DateTo = t.Add(24*time.Hour - time.Minute)
	}
	return q, nil
}
