// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecentNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	calls := []Entry{
		{Tool: "search_arxiv", Arguments: `{"query":"llm"}`, Outcome: "ok", Duration: 1500 * time.Millisecond, CalledAt: base},
		{Tool: "get_paper", Arguments: `{"arxiv_id":"bad"}`, Outcome: "InvalidParameter", Message: "malformed arXiv id", CalledAt: base.Add(time.Minute)},
		{Tool: "search_arxiv", Arguments: `{"query":"rag"}`, Outcome: "ok", CalledAt: base.Add(2 * time.Minute)},
	}
	for _, c := range calls {
		id, err := s.Record(ctx, c)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	got, err := s.Recent(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, `{"query":"rag"}`, got[0].Arguments)
	assert.Equal(t, "get_paper", got[1].Tool)
	assert.Equal(t, "malformed arXiv id", got[1].Message)
	assert.Equal(t, 1500*time.Millisecond, got[2].Duration)
	assert.True(t, base.Equal(got[2].CalledAt))

	onlySearch, err := s.Recent(ctx, "search_arxiv", 1)
	require.NoError(t, err)
	require.Len(t, onlySearch, 1)
	assert.Equal(t, `{"query":"rag"}`, onlySearch[0].Arguments)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for _, outcome := range []string{"ok", "ok", "HTTPError"} {
		_, err := s.Record(ctx, Entry{Tool: "get_paper", Arguments: "{}", Outcome: outcome})
		require.NoError(t, err)
	}
	_, err := s.Record(ctx, Entry{Tool: "analyze_trends", Arguments: "{}", Outcome: "ok"})
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ToolStat{
		{Tool: "analyze_trends", Calls: 1, Errors: 0},
		{Tool: "get_paper", Calls: 3, Errors: 1},
	}, stats)
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := NewStore(path)
	require.NoError(t, err)
	_, err = s.Record(context.Background(), Entry{Tool: "export_papers", Arguments: "{}", Outcome: "ok"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStore(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Recent(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "export_papers", got[0].Tool)
}
