package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled tool calls",
	Long: `History reads the call journal written by "serve" when history.path (or
--history) is set. It lists the most recent calls, newest first, or with
--stats the number of calls and failures per tool.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("tool", "", "only show calls of this tool")
	historyCmd.Flags().Int("limit", history.DefaultLimit, "maximum number of calls to show")
	historyCmd.Flags().Bool("stats", false, "show per-tool call and error counts")
	addOutputFlag(historyCmd)

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.History.Path == "" {
		return fmt.Errorf("no history configured: set history.path or pass --history")
	}
	store, err := history.NewStore(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	if stats, _ := cmd.Flags().GetBool("stats"); stats {
		st, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}
		return render(cmd, st, func(w io.Writer) error {
			rows := make([][]string, 0, len(st))
			for _, s := range st {
				rows = append(rows, []string{s.Tool, strconv.Itoa(s.Calls), strconv.Itoa(s.Errors)})
			}
			return writeTable(w, []string{"Tool", "Calls", "Errors"}, rows)
		})
	}

	tool, _ := cmd.Flags().GetString("tool")
	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(cmd.Context(), tool, limit)
	if err != nil {
		return err
	}
	return render(cmd, entries, func(w io.Writer) error {
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				e.CalledAt.Local().Format("2006-01-02 15:04:05"),
				e.Tool,
				e.Outcome,
				e.Duration.String(),
				shorten(e.Arguments, 60),
			})
		}
		return writeTable(w, []string{"Called at", "Tool", "Outcome", "Duration", "Arguments"}, rows)
	})
}
