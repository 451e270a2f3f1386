package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Xunop/e-verse/internal/model"
	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	var translations []string
	var verses []int

	cmd := &cobra.Command{
		Use:   "read [book] [chapter]",
		Short: "Print a chapter",
		Long: `Print a chapter in one or more translations side by side.

Without arguments the chapter from the last session is shown.

Examples:
  e-verse read JHN 3
  e-verse read PSA 23 --translations KJV,ESV
  e-verse read ROM 8 --verse 28 --verse 29`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			ctx := cmd.Context()

			if len(args) > 0 {
				chapter := 1
				if len(args) == 2 {
					n, err := strconv.Atoi(args[1])
					if err != nil {
						return fmt.Errorf("invalid chapter %q", args[1])
					}
					chapter = n
				}
				if err := app.State.Open(ctx, strings.ToUpper(args[0]), chapter, translations); err != nil {
					return err
				}
			} else {
				if len(translations) > 0 {
					app.State.SetSelectedTranslations(ctx, translations)
				} else {
					app.State.LoadChapter(ctx)
				}
			}
			for _, v := range verses {
				app.State.ToggleVerse(v)
			}

			snap := app.State.Snapshot()
			printChapter(cmd.OutOrStdout(), snap.Book, snap.Chapter, app.State.SelectedTranslationsInOrder(), app.State.FilteredVerses())
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&translations, "translations", "t", nil, "translations to show, comma separated")
	cmd.Flags().IntSliceVar(&verses, "verse", nil, "only print these verses")
	return cmd
}

func printChapter(w io.Writer, book model.Book, chapter int, translations []string, verses []model.Verse) {
	fmt.Fprintf(w, "%s %d (%s)\n\n", book.Name, chapter, strings.Join(translations, ", "))
	if len(verses) == 0 {
		fmt.Fprintln(w, "No verses available. Check the connection or download the book for offline reading.")
		return
	}
	for _, v := range verses {
		if len(translations) <= 1 {
			fmt.Fprintf(w, "%3d  %s\n", v.VerseNumber, v.Text)
			continue
		}
		fmt.Fprintf(w, "%3d\n", v.VerseNumber)
		for _, id := range translations {
			if text, ok := v.Translations[id]; ok {
				fmt.Fprintf(w, "     [%s] %s\n", id, text)
			}
		}
	}
}
