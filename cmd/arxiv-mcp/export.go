package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/export"
	"github.com/pdiddy/arxiv-mcp/internal/tools"
)

var exportCmd = &cobra.Command{
	Use:   "export <arxiv-id>...",
	Short: "Export papers as BibTeX, JSON, CSV or Markdown",
	Long: `Export fetches each paper in turn and renders them in one document
(export_papers). Ids that cannot be fetched are reported on stderr; the
command fails only when none could be exported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", string(export.FormatBibTeX), "output format: "+export.FormatNames())
	exportCmd.Flags().Bool("no-abstract", false, "omit abstracts")
	exportCmd.Flags().String("out", "", "write to this file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	_, log, svc, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	format, _ := cmd.Flags().GetString("format")
	noAbstract, _ := cmd.Flags().GetBool("no-abstract")
	includeAbstract := !noAbstract

	res, err := svc.ExportPapers(cmd.Context(), tools.ExportParams{
		PaperIDs:        args,
		Format:          format,
		IncludeAbstract: &includeAbstract,
	})
	if err != nil {
		return err
	}
	printErrors(cmd, res.Errors)

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Content)
		return nil
	}
	if err := os.WriteFile(out, []byte(res.Content+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d paper(s) to %s\n", res.Count, out)
	return nil
}
