// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")
	p := Params{
		FreeText:   "retrieval augmented generation",
		Category:   "cs.CL",
		DateFrom:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxResults: 5,
	}
	res := types.SearchResult{
		Query:        "all:retrieval AND cat:cs.CL",
		TotalResults: 42,
		Papers:       []types.Paper{{ID: "2401.00001", Title: "RAG"}},
	}
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, WriteFile(path, NewFile(p, res, at)))

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 42, f.Summary.TotalResults)
	assert.Equal(t, 1, f.Summary.Returned)
	assert.True(t, at.Equal(f.Summary.Timestamp))
	require.Len(t, f.Results, 1)
	assert.Equal(t, "2401.00001", f.Results[0].ID)

	back, err := f.Query.Params()
	require.NoError(t, err)
	assert.Equal(t, p.FreeText, back.FreeText)
	assert.Equal(t, p.Category, back.Category)
	assert.True(t, p.DateFrom.Equal(back.DateFrom))
	assert.True(t, back.DateTo.IsZero())
	assert.Equal(t, 5, back.MaxResults)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestFileParamsBadDate(t *testing.T) {
	_, err := FileParams{DateFrom: "yesterday"}.Params()
	assert.Error(t, err)
}

func TestFileParamsIncludeWholeDateToDay(t *testing.T) {
	p, err := FileParams{DateTo: "2024-03-31", MaxResults: 10}.Params()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC), p.DateTo)
}
