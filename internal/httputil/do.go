// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// MaxBodyBytes caps how much of a response body Do reads. Tests override
// this to exercise truncation.
var MaxBodyBytes int64 = 32 << 20

// errorSnippet is how much of a non-2xx body is quoted in the error.
const errorSnippet = 200

// Do executes req once and returns the body of a 2xx response. Failures are
// classified into the transport taxonomy:
//
//   - non-2xx status: KindHTTP with StatusCode set
//   - client timeout or deadline: KindTimeout
//   - any other connection failure: KindNetwork
//
// When ctx is cancelled by the caller, ctx.Err() is returned unwrapped so
// callers can tell abandonment from failure. Do never retries.
func Do(ctx context.Context, client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, classify(ctx, fmt.Errorf("reading response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.Error{
			Kind:       types.KindHTTP,
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp.StatusCode, body),
		}
	}
	return body, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	if isTimeout(err) {
		return &types.Error{Kind: types.KindTimeout, Message: "request timed out", Err: err}
	}
	return &types.Error{Kind: types.KindNetwork, Message: err.Error(), Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func statusMessage(code int, body []byte) string {
	msg := fmt.Sprintf("status %d %s", code, http.StatusText(code))
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > errorSnippet {
		snippet = snippet[:errorSnippet] + "..."
	}
	if snippet != "" {
		msg += ": " + snippet
	}
	return msg
}
