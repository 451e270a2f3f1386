package cli

import (
	"fmt"
	"strings"

	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/provider"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var translation string
	var page int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search in one translation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			if translation == "" {
				translation = app.State.Snapshot().SelectedTranslation
			}
			query := strings.Join(args, " ")

			res, err := app.Search.Find(cmd.Context(), query, translation, page)
			if err != nil {
				return err
			}
			printSearch(cmd, res, page)
			return nil
		},
	}

	cmd.Flags().StringVarP(&translation, "translation", "t", "", "translation to search (default: selected)")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "result page")
	return cmd
}

func printSearch(cmd *cobra.Command, res model.SearchResult, page int) {
	w := cmd.OutOrStdout()
	if len(res.Results) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	for _, hit := range res.Results {
		fmt.Fprintf(w, "%-20s %s\n", hit.Reference, hit.Text)
	}
	fmt.Fprintf(w, "\nPage %d, %s result(s), %s exact\n", page, humanize.Comma(int64(res.Total)), humanize.Comma(int64(res.ExactMatches)))
	if res.Total > page*provider.SearchPageSize {
		fmt.Fprintf(w, "Use --page %d for more.\n", page+1)
	}
}
