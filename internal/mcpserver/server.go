// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mcpserver exposes the arXiv tools over the Model Context Protocol.
// It decodes tool arguments, runs the matching tools.Service method, and
// turns the outcome into a tool result. Failures are reported as error
// results ("Kind: detail") rather than protocol errors, so the client model
// sees them.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-mcp/internal/history"
	"github.com/pdiddy/arxiv-mcp/internal/tools"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Name is the implementation name announced to clients.
const Name = "arxiv-mcp"

// shutdownTimeout bounds the graceful stop of the HTTP transport.
const shutdownTimeout = 5 * time.Second

// Observer receives one observation per tool call. *metrics.Recorder
// satisfies it.
type Observer interface {
	ObserveTool(tool, outcome string, elapsed time.Duration)
}

// Journal persists tool calls. *history.Store satisfies it.
type Journal interface {
	Record(ctx context.Context, e history.Entry) (int64, error)
}

// Server wraps an mcp.Server with the arXiv tools registered.
type Server struct {
	svc      *tools.Service
	mcp      *mcp.Server
	log      *zap.Logger
	observer Observer
	journal  Journal
	metrics  http.Handler
	version  string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for per-call logging.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithObserver records per-call metrics.
func WithObserver(o Observer) Option {
	return func(s *Server) { s.observer = o }
}

// WithJournal records every call in j.
func WithJournal(j Journal) Option {
	return func(s *Server) { s.journal = j }
}

// WithMetricsHandler mounts h at /metrics on the HTTP transport.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithVersion sets the implementation version announced to clients.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// New creates a Server and registers all tools against svc.
func New(svc *tools.Service, opts ...Option) *Server {
	s := &Server{
		svc:     svc,
		log:     zap.NewNop(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{Name: Name, Version: s.version}, nil)
	s.register()
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcp.Server { return s.mcp }

func (s *Server) register() {
	addTool(s, ToolSearch, s.svc.Search, renderJSON)
	addTool(s, ToolGetPaper, s.svc.GetPaper, renderJSON)
	addTool(s, ToolSummarize, s.svc.SummarizePaper, renderSummary)
	addTool(s, ToolSearchAuthor, s.svc.SearchByAuthor, renderJSON)
	addTool(s, ToolSearchCategory, s.svc.SearchByCategory, renderJSON)
	addTool(s, ToolRecent, s.svc.RecentPapers, renderJSON)
	addTool(s, ToolCompare, s.svc.ComparePapers, renderJSON)
	addTool(s, ToolRelated, s.svc.RelatedPapers, renderJSON)
	addTool(s, ToolCitations, s.svc.CitationEstimate, renderJSON)
	addTool(s, ToolAnalyzeTrends, s.svc.AnalyzeTrends, renderJSON)
	addTool(s, ToolExport, s.svc.ExportPapers, renderExport)
}

// addTool registers one tool whose handler runs call and renders its result
// with render.
func addTool[In, Out any](s *Server, name string, call func(context.Context, In) (Out, error), render func(Out) ([]mcp.Content, error)) {
	tool := &mcp.Tool{Name: name, Description: description(name)}
	mcp.AddTool(s.mcp, tool, func(ctx context.Context, _ *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		out, err := call(ctx, in)
		elapsed := time.Since(start)
		s.finish(ctx, name, in, elapsed, err)
		if err != nil {
			return errorResult(err), nil, nil
		}
		content, err := render(out)
		if err != nil {
			return errorResult(fmt.Errorf("rendering %s result: %w", name, err)), nil, nil
		}
		return &mcp.CallToolResult{Content: content}, nil, nil
	})
}

// finish logs, observes and journals one call.
func (s *Server) finish(ctx context.Context, name string, in any, elapsed time.Duration, err error) {
	outcome := outcomeOf(ctx, err)
	fields := []zap.Field{
		zap.String("tool", name),
		zap.Duration("elapsed", elapsed),
		zap.String("outcome", outcome),
	}
	if err != nil {
		s.log.Warn("tool call failed", append(fields, zap.Error(err))...)
	} else {
		s.log.Info("tool call", fields...)
	}

	if s.observer != nil {
		s.observer.ObserveTool(name, outcome, elapsed)
	}
	if s.journal == nil {
		return
	}
	args, jerr := json.Marshal(in)
	if jerr != nil {
		args = []byte("{}")
	}
	e := history.Entry{
		Tool:      name,
		Arguments: string(args),
		Outcome:   outcome,
		Duration:  elapsed,
		CalledAt:  time.Now(),
	}
	if err != nil {
		e.Message = err.Error()
	}
	if _, jerr := s.journal.Record(context.WithoutCancel(ctx), e); jerr != nil {
		s.log.Warn("journaling tool call", zap.String("tool", name), zap.Error(jerr))
	}
}

// outcomeOf labels a call for metrics and the journal: "ok", the error kind,
// "canceled", or "error" for anything unclassified.
func outcomeOf(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return "ok"
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return "canceled"
	}
	if kind := types.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

// errorResult reports err to the client. A typed error is shown as
// "Kind: detail" without the wrapping context added on the way up.
func errorResult(err error) *mcp.CallToolResult {
	msg := err.Error()
	var te *types.Error
	if errors.As(err, &te) {
		msg = te.Error()
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}

func renderJSON[T any](v T) ([]mcp.Content, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.Content{&mcp.TextContent{Text: string(data)}}, nil
}

func renderSummary(s types.Summary) ([]mcp.Content, error) {
	return []mcp.Content{&mcp.TextContent{Text: s.Summary}}, nil
}

// renderExport returns the rendered document and, when some ids failed, a
// second content block listing them.
func renderExport(e types.Export) ([]mcp.Content, error) {
	content := []mcp.Content{&mcp.TextContent{Text: e.Content}}
	if len(e.Errors) == 0 {
		return content, nil
	}
	data, err := json.MarshalIndent(map[string]any{"errors": e.Errors}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(content, &mcp.TextContent{Text: string(data)}), nil
}

// Run serves the tools on the configured transport until ctx is done or
// the transport closes.
func (s *Server) Run(ctx context.Context, cfg types.ServerConfig) error {
	switch cfg.Transport {
	case "", types.TransportStdio:
		s.log.Info("serving MCP on stdio")
		return s.mcp.Run(ctx, &mcp.StdioTransport{})
	case types.TransportHTTP:
		return s.serveHTTP(ctx, cfg.Addr)
	}
	return types.InvalidParameter("unknown transport %q (expected stdio or http)", cfg.Transport)
}

// Handler returns the HTTP handler serving the streamable MCP endpoint at
// /mcp and, when configured, Prometheus metrics at /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return s.mcp }, nil))
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics)
	}
	return mux
}

func (s *Server) serveHTTP(ctx context.Context, addr string) error {
	if addr == "" {
		addr = types.DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("serving MCP over HTTP", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http transport: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http transport: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
