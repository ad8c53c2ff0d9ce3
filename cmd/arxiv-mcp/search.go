package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-mcp/internal/query"
	"github.com/pdiddy/arxiv-mcp/internal/tools"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Search arXiv",
	Long: `Search runs search_arxiv. Terms may be plain words, "quoted phrases", or an
arXiv query expression such as 'ti:attention AND cat:cs.CL'. Use --save to
write the query and its results to a YAML file, and --load to re-run a saved
query.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("author", "", "filter by author name")
	searchCmd.Flags().String("category", "", "filter by arXiv category (e.g. cs.LG)")
	searchCmd.Flags().String("from", "", "submission date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "submission date range end (YYYY-MM-DD)")
	searchCmd.Flags().Int("max-results", tools.DefaultSearchResults, "maximum number of results to return (1-100)")
	searchCmd.Flags().Int("start", 0, "offset of the first result")
	searchCmd.Flags().String("sort-by", "", "relevance, date or submitted")
	searchCmd.Flags().String("sort-order", "", "ascending or descending")
	searchCmd.Flags().String("save", "", "write the query and results to this YAML file")
	searchCmd.Flags().String("load", "", "re-run the query stored in this YAML file")
	addOutputFlag(searchCmd)

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	_, log, svc, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	var (
		params query.Params
		res    types.SearchResult
	)
	if path, _ := cmd.Flags().GetString("load"); path != "" {
		f, err := query.ReadFile(path)
		if err != nil {
			return err
		}
		if params, err = f.Query.Params(); err != nil {
			return err
		}
		res, err = svc.SearchQuery(cmd.Context(), params)
		if err != nil {
			return err
		}
	} else {
		in := tools.SearchParams{Query: strings.Join(args, " ")}
		in.Author, _ = cmd.Flags().GetString("author")
		in.Category, _ = cmd.Flags().GetString("category")
		in.DateFrom, _ = cmd.Flags().GetString("from")
		in.DateTo, _ = cmd.Flags().GetString("to")
		in.Start, _ = cmd.Flags().GetInt("start")
		in.SortBy, _ = cmd.Flags().GetString("sort-by")
		in.SortOrder, _ = cmd.Flags().GetString("sort-order")
		maxResults, _ := cmd.Flags().GetInt("max-results")
		in.MaxResults = &maxResults

		res, err = svc.Search(cmd.Context(), in)
		if err != nil {
			return err
		}
		params = in.QueryParams()
	}

	warn(cmd, res.Warnings...)
	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := query.WriteFile(path, query.NewFile(params, res, time.Now())); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d result(s) to %s\n", len(res.Papers), path)
	}

	return render(cmd, res, func(w io.Writer) error {
		fmt.Fprintf(w, "%s\n%d of %d result(s)\n\n", res.Query, len(res.Papers), res.TotalResults)
		return paperTable(w, res.Papers)
	})
}
