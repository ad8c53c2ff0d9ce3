// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-mcp/internal/analysis"
	"github.com/pdiddy/arxiv-mcp/internal/export"
	"github.com/pdiddy/arxiv-mcp/internal/query"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// GetPaper returns the metadata of one paper (get_paper). A malformed id
// fails with InvalidParameter before any request; an unknown id fails with
// PaperNotFound.
func (s *Service) GetPaper(ctx context.Context, in PaperParams) (types.Paper, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.Paper{}, err
	}
	return s.paper(ctx, in.ArxivID)
}

// SummarizePaper renders one paper as a Markdown summary (summarize_paper).
func (s *Service) SummarizePaper(ctx context.Context, in PaperParams) (types.Summary, error) {
	p, err := s.GetPaper(ctx, in)
	if err != nil {
		return types.Summary{}, err
	}
	return types.Summary{ID: p.ID, Title: p.Title, Summary: export.Summary(p)}, nil
}

// CitationEstimate derives heuristic impact signals for one paper
// (get_paper_citations). The result is always labeled an estimate.
func (s *Service) CitationEstimate(ctx context.Context, in PaperParams) (types.CitationEstimate, error) {
	p, err := s.GetPaper(ctx, in)
	if err != nil {
		return types.CitationEstimate{}, err
	}
	return analysis.EstimateCitations(p, s.now()), nil
}

// ComparePapers fetches each id in turn and projects it onto the requested
// fields (compare_papers). Per-id failures become error entries; only
// caller cancellation aborts the comparison.
func (s *Service) ComparePapers(ctx context.Context, in CompareParams) (types.Comparison, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.Comparison{}, err
	}
	fields := in.Fields
	if len(fields) == 0 {
		fields = export.DefaultComparisonFields
	}
	want := make(map[string]bool, len(fields))
	for _, f := range fields {
		want[f] = true
	}

	entries := make([]types.ComparisonEntry, 0, len(in.PaperIDs))
	for _, raw := range in.PaperIDs {
		p, err := s.paper(ctx, raw)
		if err != nil {
			if isAbandoned(ctx, err) {
				return types.Comparison{}, err
			}
			entries = append(entries, failedEntry(query.NormalizeID(raw), err))
			continue
		}

		e := types.ComparisonEntry{ID: p.ID, Title: p.Title}
		if want[export.FieldAuthors] {
			e.Authors = p.Authors
		}
		if want[export.FieldCategories] {
			e.Categories = p.Categories
		}
		if want[export.FieldAbstract] {
			e.Abstract = p.Abstract
		}
		if want[export.FieldPublished] {
			e.Published = p.PublishedDate()
		}
		if want[export.FieldCitations] {
			est := analysis.EstimateCitations(p, s.now())
			e.Citations = &est
		}
		entries = append(entries, e)
	}

	return types.Comparison{
		Fields:  fields,
		Entries: entries,
		Report:  export.ComparisonReport(entries, fields),
	}, nil
}

// ExportPapers fetches each id in turn and renders the found papers
// (export_papers). Ids that fail are listed in Errors; the call fails only
// when nothing could be exported, with the kind of the underlying failures.
func (s *Service) ExportPapers(ctx context.Context, in ExportParams) (types.Export, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.Export{}, err
	}
	format, err := export.ParseFormat(in.Format)
	if err != nil {
		return types.Export{}, err
	}

	var (
		papers []types.Paper
		items  []types.ItemError
		causes []error
	)
	for _, raw := range in.PaperIDs {
		p, err := s.paper(ctx, raw)
		if err != nil {
			if isAbandoned(ctx, err) {
				return types.Export{}, err
			}
			items = append(items, itemError(query.NormalizeID(raw), err))
			causes = append(causes, err)
			continue
		}
		papers = append(papers, p)
	}
	if len(papers) == 0 {
		return types.Export{}, exportFailure(items, causes)
	}

	content, err := export.Render(papers, format, boolOr(in.IncludeAbstract, true))
	if err != nil {
		return types.Export{}, err
	}
	return types.Export{
		Format:  string(format),
		Count:   len(papers),
		Content: content,
		Errors:  items,
	}, nil
}

// isAbandoned reports whether err stems from the caller giving up rather
// than from the paper or the upstream service.
func isAbandoned(ctx context.Context, err error) bool {
	return ctx.Err() != nil && types.KindOf(err) == ""
}

func itemError(id string, err error) types.ItemError {
	kind := types.KindOf(err)
	if kind == "" {
		kind = "Error"
	}
	var e *types.Error
	msg := err.Error()
	if errors.As(err, &e) && e.Message != "" {
		msg = e.Message
	}
	return types.ItemError{ID: id, Error: string(kind), Message: msg}
}

func failedEntry(id string, err error) types.ComparisonEntry {
	ie := itemError(id, err)
	return types.ComparisonEntry{ID: ie.ID, Error: ie.Error, Message: ie.Message}
}

// exportFailure reports an export where no id succeeded. When every id
// failed with the same kind the first cause is returned as is. Otherwise the
// aggregate takes a transport kind if any id hit one, so the caller knows a
// retry may help, and the first item's kind else.
func exportFailure(items []types.ItemError, causes []error) error {
	same := true
	for _, it := range items[1:] {
		if it.Error != items[0].Error {
			same = false
			break
		}
	}
	if same {
		return fmt.Errorf("none of the requested papers could be exported: %w", causes[0])
	}

	kind := types.KindOf(causes[0])
	for _, err := range causes {
		if types.IsTransport(err) {
			kind = types.KindOf(err)
			break
		}
	}
	if kind == "" {
		kind = types.KindPaperNotFound
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = it.ID + ": " + it.Error + ": " + it.Message
	}
	return &types.Error{
		Kind:    kind,
		Message: "none of the requested papers could be exported (" + strings.Join(lines, "; ") + ")",
		Err:     errors.Join(causes...),
	}
}
