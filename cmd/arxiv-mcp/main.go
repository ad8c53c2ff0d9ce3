// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-mcp CLI. The serve
// subcommand runs the MCP server; the other subcommands run the same tools
// from a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv-mcp/internal/fetch"
	"github.com/pdiddy/arxiv-mcp/internal/logging"
	"github.com/pdiddy/arxiv-mcp/internal/tools"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-mcp CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-mcp",
	Short: "Search and analyze arXiv papers, as an MCP server or from the shell",
	Long: `arxiv-mcp exposes arXiv search, paper lookup, comparison, related-paper
discovery, citation estimates, trend analysis and export as Model Context
Protocol tools. Run "arxiv-mcp serve" to start the server on stdio (or HTTP
with --http); the remaining subcommands call the same tools directly.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-mcp.yaml or ~/.config/arxiv-mcp/arxiv-mcp.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().String("contact-email", "", "contact address added to the User-Agent sent to arXiv")
	rootCmd.PersistentFlags().String("history", "", "SQLite file journaling tool calls (empty disables the journal)")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("fetch.contact_email", rootCmd.PersistentFlags().Lookup("contact-email"))
	viper.BindPFlag("history.path", rootCmd.PersistentFlags().Lookup("history"))
}

func initConfig() {
	setDefaults(types.DefaultConfig())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-mcp"))
		}
	}

	bindEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// bindEnv maps keys such as fetch.rate_delay to ARXIV_MCP_FETCH_RATE_DELAY.
func bindEnv() {
	viper.SetEnvPrefix("ARXIV_MCP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// setDefaults registers every configuration key so that environment
// variables are picked up by Unmarshal.
func setDefaults(d types.Config) {
	viper.SetDefault("fetch.base_url", d.Fetch.BaseURL)
	viper.SetDefault("fetch.timeout", d.Fetch.Timeout)
	viper.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	viper.SetDefault("fetch.rate_delay", d.Fetch.RateDelay)
	viper.SetDefault("fetch.contact_email", d.Fetch.ContactEmail)
	viper.SetDefault("server.transport", string(d.Server.Transport))
	viper.SetDefault("server.addr", d.Server.Addr)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("history.path", d.History.Path)
}

// loadConfig decodes the merged flag, environment, file and default values.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// newLogger logs to stderr; stdout carries command output and the stdio
// MCP transport.
func newLogger(cfg types.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log.Level, os.Stderr)
}

// newService wires a fetcher and the tools for one command.
func newService(cfg types.Config, log *zap.Logger, opts ...fetch.Option) *tools.Service {
	opts = append([]fetch.Option{fetch.WithLogger(log)}, opts...)
	return tools.New(fetch.New(cfg.Fetch, opts...), tools.WithLogger(log))
}

// setup loads the configuration and builds the logger and service shared by
// the one-shot subcommands.
func setup() (types.Config, *zap.Logger, *tools.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, log, newService(cfg, log), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
