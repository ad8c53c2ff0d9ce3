// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-mcp/internal/fetch"
	"github.com/pdiddy/arxiv-mcp/internal/history"
	"github.com/pdiddy/arxiv-mcp/internal/metrics"
	"github.com/pdiddy/arxiv-mcp/internal/tools"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

type fixture struct {
	session  *mcp.ClientSession
	server   *Server
	upstream *atomic.Int32
	recorder *metrics.Recorder
	journal  *history.Store
}

// newFixture serves the search.xml feed for every upstream request and
// connects a client to the server over in-memory transports.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	feed, err := os.ReadFile(filepath.Join("..", "feed", "testdata", "search.xml"))
	require.NoError(t, err)

	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write(feed)
	}))
	t.Cleanup(upstream.Close)

	journal, err := history.NewStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { journal.Close() })

	rec := metrics.New()
	svc := tools.New(fetch.New(types.FetchConfig{BaseURL: upstream.URL}, fetch.WithObserver(rec)))
	srv := New(svc,
		WithObserver(rec),
		WithJournal(journal),
		WithMetricsHandler(rec.Handler()),
		WithVersion("test"),
	)

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := srv.MCP().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() })

	return &fixture{session: cs, server: srv, upstream: &hits, recorder: rec, journal: journal}
}

func (f *fixture) call(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := f.session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	return res
}

func text(t *testing.T, c mcp.Content) string {
	t.Helper()
	tc, ok := c.(*mcp.TextContent)
	require.True(t, ok, "content is %T", c)
	return tc.Text
}

func TestListTools(t *testing.T) {
	f := newFixture(t)

	res, err := f.session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var got []string
	for _, tool := range res.Tools {
		got = append(got, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
	}
	var want []string
	for _, d := range Tools {
		want = append(want, d.Name)
	}
	assert.Len(t, got, 11)
	assert.ElementsMatch(t, want, got)
}

func TestInvalidIDReturnsErrorResultWithoutFetching(t *testing.T) {
	f := newFixture(t)

	res := f.call(t, ToolGetPaper, map[string]any{"arxiv_id": "not-an-id"})

	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res.Content[0]), "InvalidParameter: malformed arXiv id")
	assert.Zero(t, f.upstream.Load())

	entries, err := f.journal.Recent(context.Background(), ToolGetPaper, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "InvalidParameter", entries[0].Outcome)
	assert.JSONEq(t, `{"arxiv_id":"not-an-id"}`, entries[0].Arguments)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.recorder.ToolCalls.WithLabelValues(ToolGetPaper, "InvalidParameter")))
}

func TestGetPaper(t *testing.T) {
	f := newFixture(t)

	res := f.call(t, ToolGetPaper, map[string]any{"arxiv_id": "arXiv:2301.07041"})

	require.False(t, res.IsError, text(t, res.Content[0]))
	body := text(t, res.Content[0])
	assert.Contains(t, body, `"title": "Language Models as Zero-Shot Planners"`)
	assert.Contains(t, body, `"Alice Smith"`)
	assert.Equal(t, int32(1), f.upstream.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.recorder.FetchTotal.WithLabelValues("ok")))
}

func TestSummarizePaperReturnsMarkdown(t *testing.T) {
	f := newFixture(t)

	res := f.call(t, ToolSummarize, map[string]any{"arxiv_id": "2301.07041"})

	require.False(t, res.IsError)
	body := text(t, res.Content[0])
	assert.Contains(t, body, "# Language Models as Zero-Shot Planners")
	assert.Contains(t, body, "## Abstract")
}

func TestUnknownPaper(t *testing.T) {
	f := newFixture(t)

	res := f.call(t, ToolCitations, map[string]any{"arxiv_id": "2402.00001"})

	assert.True(t, res.IsError)
	assert.Equal(t, `PaperNotFound: no paper with id "2402.00001"`, text(t, res.Content[0]))
}

func TestExportReportsPartialFailures(t *testing.T) {
	f := newFixture(t)

	res := f.call(t, ToolExport, map[string]any{
		"paper_ids": []string{"2301.07041", "2402.00001"},
		"format":    "bibtex",
	})

	require.False(t, res.IsError)
	require.Len(t, res.Content, 2)
	assert.Contains(t, text(t, res.Content[0]), "@article{2301_07041,")
	assert.Contains(t, text(t, res.Content[1]), "2402.00001")

	stats, err := f.journal.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []history.ToolStat{{Tool: ToolExport, Calls: 1, Errors: 0}}, stats)
}

func TestHandlerServesMetrics(t *testing.T) {
	f := newFixture(t)
	f.call(t, ToolGetPaper, map[string]any{"arxiv_id": "bad id"})

	ts := httptest.NewServer(f.server.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `arxiv_mcp_tool_calls_total{outcome="InvalidParameter",tool="get_paper"} 1`)
}

func TestOutcomeOf(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want string
	}{
		{"ok", context.Background(), nil, "ok"},
		{"typed", context.Background(), fmt.Errorf("fetching: %w", &types.Error{Kind: types.KindHTTP, StatusCode: 503}), "HTTPError"},
		{"canceled", canceled, fmt.Errorf("fetching: %w", context.Canceled), "canceled"},
		{"unclassified", context.Background(), errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeOf(tt.ctx, tt.err))
		})
	}
}

func TestErrorResultStripsWrapping(t *testing.T) {
	res := errorResult(fmt.Errorf("fetching 2301.07041: %w", &types.Error{Kind: types.KindTimeout, Message: "request timed out"}))
	assert.True(t, res.IsError)
	assert.Equal(t, "TimeoutError: request timed out", res.Content[0].(*mcp.TextContent).Text)
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	srv := New(tools.New(nil))
	err := srv.Run(context.Background(), types.ServerConfig{Transport: "carrier-pigeon"})
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}
