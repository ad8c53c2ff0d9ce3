// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics provides Prometheus metrics for arxiv-mcp.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "arxiv_mcp"

// Recorder owns a private registry so that several servers (or tests) in one
// process do not collide on metric names.
type Recorder struct {
	registry *prometheus.Registry

	// FetchTotal counts upstream requests by outcome.
	FetchTotal *prometheus.CounterVec

	// FetchDuration measures upstream request latency.
	FetchDuration prometheus.Histogram

	// ToolCalls counts tool invocations by tool and outcome.
	ToolCalls *prometheus.CounterVec

	// ToolDuration measures tool latency, including rate-limit waits.
	ToolDuration *prometheus.HistogramVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_requests_total",
				Help:      "Total number of arXiv API requests",
			},
			[]string{"outcome"},
		),
		FetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Duration of arXiv API requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tool_calls_total",
				Help:      "Total number of tool calls",
			},
			[]string{"tool", "outcome"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "tool_call_duration_seconds",
				Help:      "Duration of tool calls in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30, 60},
			},
			[]string{"tool"},
		),
	}
}

// ObserveFetch records one upstream request.
func (r *Recorder) ObserveFetch(outcome string, elapsed time.Duration) {
	r.FetchTotal.WithLabelValues(outcome).Inc()
	r.FetchDuration.Observe(elapsed.Seconds())
}

// ObserveTool records one tool call.
func (r *Recorder) ObserveTool(tool, outcome string, elapsed time.Duration) {
	r.ToolCalls.WithLabelValues(tool, outcome).Inc()
	r.ToolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
