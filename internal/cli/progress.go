package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show where reading stopped",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := appFrom(cmd).Bookmarks.LoadProgress()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No reading progress yet.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d (%s), %s\n", p.BookName, p.Chapter, p.TranslationID, humanize.Time(p.LastReadAt))
			return nil
		},
	}
}
