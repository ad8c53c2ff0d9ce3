package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// titleWidth truncates titles in table cells.
const titleWidth = 70

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", outputTable, "output format: table, json, yaml")
}

// render writes v as JSON or YAML, or calls table for the table format.
func render(cmd *cobra.Command, v any, table func(w io.Writer) error) error {
	format, _ := cmd.Flags().GetString("output")
	w := cmd.OutOrStdout()
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputTable, "":
		return table(w)
	}
	return fmt.Errorf("unknown output format %q (expected table, json or yaml)", format)
}

// newTable returns a borderless, left-aligned table.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	t := newTable(w)
	t.Header(header)
	if err := t.Bulk(rows); err != nil {
		return err
	}
	return t.Render()
}

func paperTable(w io.Writer, papers []types.Paper) error {
	rows := make([][]string, 0, len(papers))
	for _, p := range papers {
		rows = append(rows, []string{
			p.ID,
			p.PublishedDate(),
			p.PrimaryCategory,
			shorten(p.Title, titleWidth),
			authorList(p.Authors),
		})
	}
	return writeTable(w, []string{"ID", "Published", "Category", "Title", "Authors"}, rows)
}

func authorList(authors []string) string {
	if len(authors) > 3 {
		return strings.Join(authors[:3], ", ") + " et al."
	}
	return strings.Join(authors, ", ")
}

func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// warn prints warnings to stderr in yellow.
func warn(cmd *cobra.Command, warnings ...string) {
	yellow := color.New(color.FgYellow)
	for _, w := range warnings {
		yellow.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
}

// printErrors prints per-item failures to stderr in red.
func printErrors(cmd *cobra.Command, errs []types.ItemError) {
	red := color.New(color.FgRed)
	for _, e := range errs {
		red.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", e.ID, e.Error, e.Message)
	}
}
