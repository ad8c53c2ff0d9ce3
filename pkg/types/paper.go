// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the query, fetch,
// parse, tool and export stages of arxiv-mcp.
package types

import "time"

// DateLayout is the calendar-date form used for published dates in tool
// results and exports.
const DateLayout = "2006-01-02"

// Paper holds the normalized metadata of one arXiv entry. A Paper is built by
// the feed parser and never modified afterwards.
type Paper struct {
	// ID is the canonical arXiv identifier without version suffix
	// (e.g. "2301.07041" or "hep-th/9901001").
	ID string `json:"id" yaml:"id"`

	// Version is the version suffix reported by the feed (e.g. "v2").
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	Abstract string `json:"abstract" yaml:"abstract"`

	// Categories holds the category codes in feed order without duplicates.
	// It is never nil.
	Categories []string `json:"categories" yaml:"categories"`

	PrimaryCategory string `json:"primary_category,omitempty" yaml:"primary_category,omitempty"`

	Published time.Time `json:"published" yaml:"published"`
	Updated   time.Time `json:"updated" yaml:"updated"`

	// AbsURL is the abstract page; PDFURL the PDF download link.
	AbsURL string `json:"abs_url" yaml:"abs_url"`
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`

	Comment    string `json:"comment,omitempty" yaml:"comment,omitempty"`
	JournalRef string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`
	DOI        string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// PublishedDate returns the published date as YYYY-MM-DD, or "" when unknown.
func (p Paper) PublishedDate() string {
	if p.Published.IsZero() {
		return ""
	}
	return p.Published.UTC().Format(DateLayout)
}

// Year returns the publication year, or 0 when unknown.
func (p Paper) Year() int {
	if p.Published.IsZero() {
		return 0
	}
	return p.Published.UTC().Year()
}

// HasCategory reports whether code is one of the paper's categories.
func (p Paper) HasCategory(code string) bool {
	for _, c := range p.Categories {
		if c == code {
			return true
		}
	}
	return false
}
