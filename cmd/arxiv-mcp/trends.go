package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/tools"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

var trendsCmd = &cobra.Command{
	Use:   "trends <category>",
	Short: "Analyze publication trends in a category",
	Long: `Trends samples recent submissions of a category (analyze_trends) and
reports monthly publication counts, the most prolific authors, or the most
frequent title keywords.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrends,
}

var recentCmd = &cobra.Command{
	Use:   "recent [category]",
	Short: "List papers submitted in the last few days",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRecent,
}

func init() {
	trendsCmd.Flags().String("period", string(types.Period3Months), "1_month, 3_months, 6_months or 1_year")
	trendsCmd.Flags().String("type", string(types.AnalysisPublicationCount), "publication_count, top_authors or keyword_frequency")
	addOutputFlag(trendsCmd)

	recentCmd.Flags().Int("days", tools.DefaultRecentDays, "look-back window in days (1-30)")
	recentCmd.Flags().Int("max-results", tools.DefaultRecentResults, "maximum number of results to return (1-100)")
	addOutputFlag(recentCmd)

	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(recentCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	_, log, svc, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	period, _ := cmd.Flags().GetString("period")
	kind, _ := cmd.Flags().GetString("type")
	report, err := svc.AnalyzeTrends(cmd.Context(), tools.TrendParams{
		Category:     args[0],
		TimePeriod:   period,
		AnalysisType: kind,
	})
	if err != nil {
		return err
	}
	warn(cmd, report.Warnings...)

	return render(cmd, report, func(w io.Writer) error {
		fmt.Fprintf(w, "%s, %s to %s, %d paper(s) sampled\n\n", report.Category,
			report.WindowStart.Format(types.DateLayout), report.WindowEnd.Format(types.DateLayout), report.TotalPapers)
		var rows [][]string
		switch report.AnalysisType {
		case types.AnalysisTopAuthors:
			for _, a := range report.TopAuthors {
				rows = append(rows, []string{a.Author, strconv.Itoa(a.PaperCount)})
			}
			return writeTable(w, []string{"Author", "Papers"}, rows)
		case types.AnalysisKeywordFrequency:
			for _, k := range report.TopKeywords {
				rows = append(rows, []string{k.Keyword, strconv.Itoa(k.Frequency)})
			}
			return writeTable(w, []string{"Keyword", "Frequency"}, rows)
		}
		for _, m := range report.MonthlyCounts {
			rows = append(rows, []string{m.Month, strconv.Itoa(m.Count)})
		}
		return writeTable(w, []string{"Month", "Papers"}, rows)
	})
}

func runRecent(cmd *cobra.Command, args []string) error {
	_, log, svc, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	in := tools.RecentParams{}
	if len(args) == 1 {
		in.Category = args[0]
	}
	days, _ := cmd.Flags().GetInt("days")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	in.DaysBack, in.MaxResults = &days, &maxResults

	res, err := svc.RecentPapers(cmd.Context(), in)
	if err != nil {
		return err
	}
	warn(cmd, res.Warnings...)
	return render(cmd, res, func(w io.Writer) error {
		return paperTable(w, res.Papers)
	})
}
