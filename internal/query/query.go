// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query turns high-level search parameters into an arXiv API
// request: a search_query expression, an optional id_list, and paging and
// sorting parameters. It performs no I/O.
package query

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// MaxResults is the largest page size a caller may request.
const MaxResults = 100

// dateLayout is the timestamp form accepted inside submittedDate ranges.
const dateLayout = "200601021504"

// Open ends of a date window.
var (
	earliestSubmission = time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC)
	latestSubmission   = time.Date(2099, 12, 31, 23, 59, 0, 0, time.UTC)
)

// SortBy is the arXiv sortBy parameter.
type SortBy string

const (
	SortRelevance   SortBy = "relevance"
	SortLastUpdated SortBy = "lastUpdatedDate"
	SortSubmitted   SortBy = "submittedDate"
)

// SortOrder is the arXiv sortOrder parameter.
type SortOrder string

const (
	OrderAscending  SortOrder = "ascending"
	OrderDescending SortOrder = "descending"
)

// ParseSortBy accepts the arXiv names and the short forms "date" and
// "submitted". The empty string means relevance.
func ParseSortBy(s string) (SortBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relevance":
		return SortRelevance, nil
	case "date", "updated", "lastupdateddate":
		return SortLastUpdated, nil
	case "submitted", "submitteddate":
		return SortSubmitted, nil
	}
	return "", types.InvalidParameter("sort_by must be one of relevance, date, submitted; got %q", s)
}

// ParseSortOrder accepts ascending or descending; the empty string means
// descending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "descending", "desc":
		return OrderDescending, nil
	case "ascending", "asc":
		return OrderAscending, nil
	}
	return "", types.InvalidParameter("sort_order must be ascending or descending; got %q", s)
}

// Params holds the caller-facing search parameters. All filters that are
// set are combined conjunctively.
type Params struct {
	FreeText string
	Author   string
	Category string
	DateFrom time.Time
	DateTo   time.Time
	IDs      []string

	SortBy    string
	SortOrder string

	Start      int
	MaxResults int
}

// Request is a validated arXiv API request.
type Request struct {
	SearchQuery string
	IDList      []string
	Start       int
	MaxResults  int
	SortBy      SortBy
	SortOrder   SortOrder
}

// Values encodes the request as arXiv query parameters.
func (r Request) Values() url.Values {
	v := url.Values{}
	if r.SearchQuery != "" {
		v.Set("search_query", r.SearchQuery)
	}
	if len(r.IDList) > 0 {
		v.Set("id_list", strings.Join(r.IDList, ","))
	}
	v.Set("start", strconv.Itoa(r.Start))
	v.Set("max_results", strconv.Itoa(r.MaxResults))
	if r.SearchQuery != "" {
		if r.SortBy != "" {
			v.Set("sortBy", string(r.SortBy))
		}
		if r.SortOrder != "" {
			v.Set("sortOrder", string(r.SortOrder))
		}
	}
	return v
}

// String returns the encoded query string.
func (r Request) String() string { return r.Values().Encode() }

// Build validates p and produces the arXiv request. It fails with
// InvalidParameter when the page size is outside [1, MaxResults], when no
// filter and no id is given, or when any id or sort option is malformed.
func Build(p Params) (Request, error) {
	if p.MaxResults < 1 || p.MaxResults > MaxResults {
		return Request{}, types.InvalidParameter("max_results must be in [1,%d], got %d", MaxResults, p.MaxResults)
	}
	if p.Start < 0 {
		return Request{}, types.InvalidParameter("start must not be negative, got %d", p.Start)
	}
	sortBy, err := ParseSortBy(p.SortBy)
	if err != nil {
		return Request{}, err
	}
	sortOrder, err := ParseSortOrder(p.SortOrder)
	if err != nil {
		return Request{}, err
	}

	ids := make([]string, 0, len(p.IDs))
	for _, raw := range p.IDs {
		id, err := ValidateID(raw)
		if err != nil {
			return Request{}, err
		}
		ids = append(ids, id)
	}

	expr, err := Expression(p)
	if err != nil {
		return Request{}, err
	}
	if expr == "" && len(ids) == 0 {
		return Request{}, types.InvalidParameter("provide a query, author, category, date range or paper id")
	}

	return Request{
		SearchQuery: expr,
		IDList:      ids,
		Start:       p.Start,
		MaxResults:  p.MaxResults,
		SortBy:      sortBy,
		SortOrder:   sortOrder,
	}, nil
}

// ByID builds a request for exactly one paper.
func ByID(id string) (Request, error) {
	return Build(Params{IDs: []string{id}, MaxResults: 1})
}

// Expression combines the text, author, category and date filters of p into
// one search_query expression. It returns "" when none is set.
func Expression(p Params) (string, error) {
	var parts []string

	if text := strings.TrimSpace(p.FreeText); text != "" {
		if IsExpression(text) {
			parts = append(parts, text)
		} else {
			parts = append(parts, freeTextTerms(text))
		}
	}
	if author := strings.TrimSpace(p.Author); author != "" {
		parts = append(parts, `au:"`+strings.Trim(author, `"`)+`"`)
	}
	if cat := strings.TrimSpace(p.Category); cat != "" {
		parts = append(parts, "cat:"+cat)
	}
	if !p.DateFrom.IsZero() || !p.DateTo.IsZero() {
		r, err := dateRange(p.DateFrom, p.DateTo)
		if err != nil {
			return "", err
		}
		parts = append(parts, r)
	}

	if len(parts) > 1 {
		for i, part := range parts {
			if strings.Contains(part, " OR ") || strings.Contains(part, " ANDNOT ") {
				parts[i] = "(" + part + ")"
			}
		}
	}
	return strings.Join(parts, " AND "), nil
}

// Or joins terms into a parenthesized disjunction. A single term is
// returned unchanged.
func Or(terms ...string) string {
	switch len(terms) {
	case 0:
		return ""
	case 1:
		return terms[0]
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}

var (
	fieldPrefix = regexp.MustCompile(`(?:^|[\s(])(ti|au|abs|co|jr|cat|rn|id|all|submittedDate|lastUpdatedDate):`)
	boolOp      = regexp.MustCompile(`\b(AND|OR|ANDNOT)\b`)
)

// IsExpression reports whether text already uses arXiv query syntax, in
// which case it is passed through untouched.
func IsExpression(text string) bool {
	return fieldPrefix.MatchString(text) || boolOp.MatchString(text)
}

// freeTextTerms maps plain text to all: terms joined with AND. Quoted
// phrases keep their quotes so arXiv matches them exactly.
func freeTextTerms(text string) string {
	var terms []string
	for _, tok := range tokenize(text) {
		terms = append(terms, "all:"+tok)
	}
	return strings.Join(terms, " AND ")
}

// tokenize splits text on whitespace, keeping "quoted phrases" whole and
// quoted. An unterminated quote runs to the end of the text.
func tokenize(text string) []string {
	var tokens []string
	for {
		text = strings.TrimSpace(text)
		if text == "" {
			return tokens
		}
		if text[0] == '"' {
			end := strings.IndexByte(text[1:], '"')
			if end < 0 {
				tokens = append(tokens, text+`"`)
				return tokens
			}
			phrase := text[:end+2]
			if strings.TrimSpace(strings.Trim(phrase, `"`)) != "" {
				tokens = append(tokens, phrase)
			}
			text = text[end+2:]
			continue
		}
		end := strings.IndexAny(text, " \t\n\"")
		if end < 0 {
			tokens = append(tokens, text)
			return tokens
		}
		tokens = append(tokens, text[:end])
		text = text[end:]
	}
}

func dateRange(from, to time.Time) (string, error) {
	if from.IsZero() {
		from = earliestSubmission
	}
	if to.IsZero() {
		to = latestSubmission
	}
	if from.After(to) {
		return "", types.InvalidParameter("date_from %s is after date_to %s", from.Format(types.DateLayout), to.Format(types.DateLayout))
	}
	return "submittedDate:[" + from.UTC().Format(dateLayout) + " TO " + to.UTC().Format(dateLayout) + "]", nil
}
