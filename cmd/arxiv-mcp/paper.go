package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/tools"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

var paperCmd = &cobra.Command{
	Use:   "paper <arxiv-id>",
	Short: "Show one paper",
	Long: `Paper looks up one arXiv paper (get_paper). With --summary it prints the
Markdown summary, with --citations the heuristic citation estimate, and with
--related the papers found by keyword and category overlap.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaper,
}

var compareCmd = &cobra.Command{
	Use:   "compare <arxiv-id> <arxiv-id>...",
	Short: "Compare two to five papers",
	Args:  cobra.RangeArgs(2, 5),
	RunE:  runCompare,
}

func init() {
	paperCmd.Flags().Bool("summary", false, "print a Markdown summary")
	paperCmd.Flags().Bool("citations", false, "print the heuristic citation estimate")
	paperCmd.Flags().Int("related", 0, "list up to this many related papers")
	addOutputFlag(paperCmd)

	compareCmd.Flags().StringSlice("fields", nil, "fields to compare: authors, categories, abstract, published, citations")
	addOutputFlag(compareCmd)

	rootCmd.AddCommand(paperCmd)
	rootCmd.AddCommand(compareCmd)
}

func runPaper(cmd *cobra.Command, args []string) error {
	_, log, svc, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()
	in := tools.PaperParams{ArxivID: args[0]}
	summary, _ := cmd.Flags().GetBool("summary")
	citations, _ := cmd.Flags().GetBool("citations")
	related, _ := cmd.Flags().GetInt("related")

	switch {
	case summary:
		s, err := svc.SummarizePaper(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s.Summary)
		return nil

	case citations:
		est, err := svc.CitationEstimate(ctx, in)
		if err != nil {
			return err
		}
		return render(cmd, est, func(w io.Writer) error {
			return citationTable(w, est)
		})

	case related > 0:
		rel, err := svc.RelatedPapers(ctx, tools.RelatedParams{ArxivID: args[0], MaxResults: &related})
		if err != nil {
			return err
		}
		warn(cmd, rel.Warnings...)
		return render(cmd, rel, func(w io.Writer) error {
			fmt.Fprintf(w, "Related to %s: %s\nKeywords: %s\n%s\n\n",
				rel.Source.ID, rel.Source.Title, strings.Join(rel.Keywords, ", "), rel.Note)
			return paperTable(w, rel.Related)
		})
	}

	p, err := svc.GetPaper(ctx, in)
	if err != nil {
		return err
	}
	return render(cmd, p, func(w io.Writer) error {
		rows := [][]string{
			{"ID", p.ID + p.Version},
			{"Title", p.Title},
			{"Authors", strings.Join(p.Authors, ", ")},
			{"Published", p.PublishedDate()},
			{"Categories", strings.Join(p.Categories, ", ")},
			{"Abstract page", p.AbsURL},
			{"PDF", p.PDFURL},
		}
		if p.DOI != "" {
			rows = append(rows, []string{"DOI", p.DOI})
		}
		if p.JournalRef != "" {
			rows = append(rows, []string{"Journal", p.JournalRef})
		}
		return writeTable(w, []string{"Field", "Value"}, rows)
	})
}

func citationTable(w io.Writer, est types.CitationEstimate) error {
	rows := [][]string{
		{"ID", est.ID},
		{"Title", est.Title},
		{"Age (years)", strconv.FormatFloat(est.AgeYears, 'f', 1, 64)},
		{"Popular category", strconv.FormatBool(est.PopularCategory)},
		{"Estimated citations", strconv.Itoa(est.EstimatedCitations)},
		{"Citations per year", strconv.FormatFloat(est.CitationsPerYear, 'f', 1, 64)},
		{"h-index contribution", strconv.Itoa(est.HIndexContribution)},
		{"Method", est.Method},
	}
	if err := writeTable(w, []string{"Signal", "Value"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", est.Note)
	return err
}

func runCompare(cmd *cobra.Command, args []string) error {
	_, log, svc, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	fields, _ := cmd.Flags().GetStringSlice("fields")
	cmp, err := svc.ComparePapers(cmd.Context(), tools.CompareParams{PaperIDs: args, Fields: fields})
	if err != nil {
		return err
	}
	for _, e := range cmp.Entries {
		if e.Failed() {
			printErrors(cmd, []types.ItemError{{ID: e.ID, Error: e.Error, Message: e.Message}})
		}
	}
	return render(cmd, cmp, func(w io.Writer) error {
		_, err := fmt.Fprint(w, cmp.Report)
		return err
	})
}
