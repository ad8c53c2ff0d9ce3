package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-mcp/internal/fetch"
	"github.com/pdiddy/arxiv-mcp/internal/history"
	"github.com/pdiddy/arxiv-mcp/internal/mcpserver"
	"github.com/pdiddy/arxiv-mcp/internal/metrics"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Serve registers the arXiv tools and serves them over stdio (default) or,
with --http, over streamable HTTP at /mcp with Prometheus metrics at /metrics.
Logs go to stderr so they never mix with the stdio protocol stream.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("http", "", "serve over HTTP on this address (e.g. :8080) instead of stdio")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr, _ := cmd.Flags().GetString("http"); addr != "" {
		viper.Set("server.transport", string(types.TransportHTTP))
		viper.Set("server.addr", addr)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	rec := metrics.New()
	svc := newService(cfg, log, fetch.WithObserver(rec))
	opts := []mcpserver.Option{
		mcpserver.WithLogger(log),
		mcpserver.WithObserver(rec),
		mcpserver.WithMetricsHandler(rec.Handler()),
		mcpserver.WithVersion(version),
	}
	if cfg.History.Path != "" {
		store, err := history.NewStore(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()
		opts = append(opts, mcpserver.WithJournal(store))
		log.Info("journaling tool calls", zap.String("path", cfg.History.Path))
	}

	return mcpserver.New(svc, opts...).Run(cmd.Context(), cfg.Server)
}
