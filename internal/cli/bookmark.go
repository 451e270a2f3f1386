package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/store"
	"github.com/Xunop/e-verse/internal/validator"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bm"},
		Short:   "Manage bookmarks",
	}
	cmd.AddCommand(
		newBookmarkAddCmd(),
		newBookmarkListCmd(),
		newBookmarkRemoveCmd(),
		newBookmarkOpenCmd(),
		newBookmarkExportCmd(),
		newBookmarkImportCmd(),
	)
	return cmd
}

func newBookmarkAddCmd() *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   "add <book> <chapter> [verse]",
		Short: "Bookmark a verse",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.BookmarkCreateRequest{BookID: strings.ToUpper(args[0]), Note: note}
			var err error
			if req.Chapter, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid chapter %q", args[1])
			}
			req.Verse = 1
			if len(args) == 3 {
				if req.Verse, err = strconv.Atoi(args[2]); err != nil {
					return fmt.Errorf("invalid verse %q", args[2])
				}
			}
			if err := validator.ValidateBookmarkCreateRequest(&req); err != nil {
				return err
			}

			book := catalog.FindByID(req.BookID)
			bm, err := appFrom(cmd).Bookmarks.Add(model.Bookmark{
				BookID:   book.ID,
				BookName: book.Name,
				Chapter:  req.Chapter,
				Verse:    req.Verse,
				Note:     req.Note,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bookmarked %s %d:%d (%s)\n", bm.BookName, bm.Chapter, bm.Verse, bm.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "note to attach")
	return cmd
}

func newBookmarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := appFrom(cmd).Bookmarks.List()
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No bookmarks yet.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tREFERENCE\tADDED\tNOTE")
			for _, bm := range list {
				fmt.Fprintf(tw, "%s\t%s %d:%d\t%s\t%s\n", bm.ID, bm.BookName, bm.Chapter, bm.Verse, humanize.Time(bm.CreatedAt), bm.Note)
			}
			return tw.Flush()
		},
	}
}

func newBookmarkRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove"},
		Short:   "Remove bookmarks",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			for _, id := range args {
				if err := app.State.RemoveBookmark(id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newBookmarkOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open the chapter of a bookmark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			for _, bm := range app.State.Bookmarks() {
				if bm.ID != args[0] {
					continue
				}
				if !app.State.NavigateToBookmark(cmd.Context(), bm.BookID, bm.Chapter, bm.Verse) {
					return errors.Wrapf(catalog.ErrUnknownBook, "bookmark %s", bm.ID)
				}
				snap := app.State.Snapshot()
				printChapter(cmd.OutOrStdout(), snap.Book, snap.Chapter, app.State.SelectedTranslationsInOrder(), app.State.FilteredVerses())
				return nil
			}
			return errors.Errorf("bookmark %s not found", args[0])
		},
	}
}

func newBookmarkExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export bookmarks as json or yaml",
		Long: `Export bookmarks as json or yaml. Without a file they are written to stdout.
A bare file name is placed in the exports folder of the data directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			if len(args) == 0 || args[0] == "-" {
				return app.Bookmarks.Export(cmd.OutOrStdout(), formatFor("", format))
			}
			path, err := app.Files.Save(args[0], func(w io.Writer) error {
				return app.Bookmarks.Export(w, formatFor(args[0], format))
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmark(s) to %s\n", len(app.Bookmarks.List()), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from file extension, else json)")
	return cmd
}

func newBookmarkImportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import bookmarks, skipping ids already present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			rc, err := app.Files.Open(args[0])
			if err != nil {
				return err
			}
			defer rc.Close()

			n, err := app.Bookmarks.Import(rc, formatFor(args[0], format))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d bookmark(s)\n", n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "json or yaml (default from file extension, else json)")
	return cmd
}

// formatFor picks the explicit format, else the one implied by the file name.
func formatFor(file, explicit string) string {
	if explicit != "" {
		return strings.ToLower(explicit)
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return store.FormatYAML
	}
	return store.FormatJSON
}
