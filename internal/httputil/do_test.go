// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

func newRequest(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	return req
}

func TestDo_Success(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte("<feed/>"))
	}))
	defer ts.Close()

	body, err := Do(context.Background(), ts.Client(), newRequest(t, ts.URL))
	require.NoError(t, err)
	assert.Equal(t, "<feed/>", string(body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDo_StatusIsHTTPErrorWithoutRetry(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			atomic.AddInt32(&calls, 1)
			http.Error(w, "upstream says no", code)
		}))

		_, err := Do(context.Background(), ts.Client(), newRequest(t, ts.URL))
		ts.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrHTTP)
		var e *types.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, code, e.StatusCode)
		assert.Contains(t, e.Error(), "upstream says no")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retry on %d", code)
	}
}

func TestDo_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	client := ts.Client()
	client.Timeout = 20 * time.Millisecond

	_, err := Do(context.Background(), client, newRequest(t, ts.URL))
	assert.ErrorIs(t, err, types.ErrTimeout)
}

func TestDo_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := Do(context.Background(), &http.Client{Timeout: time.Second}, newRequest(t, url))
	assert.ErrorIs(t, err, types.ErrNetwork)
}

func TestDo_CancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Do(ctx, ts.Client(), newRequest(t, ts.URL))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, types.ErrorKind(""), types.KindOf(err))
}
