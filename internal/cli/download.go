package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/validator"
	"github.com/spf13/cobra"
)

func newDownloadCmd() *cobra.Command {
	var translation string

	cmd := &cobra.Command{
		Use:     "download",
		Aliases: []string{"dl"},
		Short:   "Manage books downloaded for offline reading",
	}
	cmd.PersistentFlags().StringVarP(&translation, "translation", "t", "", "translation (default: selected)")

	resolveTranslation := func(app *App) (string, error) {
		tr := translation
		if tr == "" {
			tr = app.State.Snapshot().SelectedTranslation
		}
		return tr, validator.ValidateTranslationID(tr)
	}

	book := &cobra.Command{
		Use:   "book <book>",
		Short: "Download every chapter of a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			tr, err := resolveTranslation(app)
			if err != nil {
				return err
			}
			report, err := app.Downloads.DownloadBook(cmd.Context(), tr, strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s: %d/%d chapter(s) saved\n", report.TranslationID, report.BookID, report.Saved, report.Total)
			if !report.Complete() {
				fmt.Fprintf(w, "Missing chapters: %v\n", report.Missing)
			}
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "List downloaded books",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := appFrom(cmd).Downloads.Downloaded()
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing downloaded.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TRANSLATION\tBOOK\tCHAPTERS\tCOMPLETE")
			for _, s := range list {
				b := catalog.FindByID(s.BookID)
				fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%t\n", s.TranslationID, b.Name, s.Chapters, b.TotalChapters, s.Complete)
			}
			return tw.Flush()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <book>",
		Short: "Delete a downloaded book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			tr, err := resolveTranslation(app)
			if err != nil {
				return err
			}
			return app.Downloads.RemoveDownloadedBook(strings.ToUpper(args[0]), tr)
		},
	}

	cmd.AddCommand(book, status, remove)
	return cmd
}
