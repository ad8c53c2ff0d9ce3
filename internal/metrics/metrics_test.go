// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.ObserveFetch("ok", 120*time.Millisecond)
	r.ObserveFetch("ok", 80*time.Millisecond)
	r.ObserveFetch("HTTPError", time.Second)
	r.ObserveTool("get_paper", "ok", time.Second)
	r.ObserveTool("get_paper", "InvalidParameter", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.FetchTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.FetchTotal.WithLabelValues("HTTPError")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ToolCalls.WithLabelValues("get_paper", "InvalidParameter")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.FetchDuration))
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ObserveTool("search_arxiv", "ok", time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ToolCalls.WithLabelValues("search_arxiv", "ok")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := New()
	r.ObserveTool("export_papers", "ok", time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `arxiv_mcp_tool_calls_total{outcome="ok",tool="export_papers"} 1`)
}
