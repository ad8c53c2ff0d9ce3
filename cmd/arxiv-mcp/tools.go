package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/mcpserver"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools the server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(cmd, mcpserver.Tools, func(w io.Writer) error {
			rows := make([][]string, 0, len(mcpserver.Tools))
			for _, d := range mcpserver.Tools {
				rows = append(rows, []string{d.Name, d.Description})
			}
			return writeTable(w, []string{"Tool", "Description"}, rows)
		})
	},
}

func init() {
	addOutputFlag(toolsCmd)

	rootCmd.AddCommand(toolsCmd)
}
