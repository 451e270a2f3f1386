package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTranslationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "translations",
		Aliases: []string{"tr"},
		Short:   "List or refresh the available translations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List the known translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			snap := app.State.Snapshot()
			selected := map[string]bool{}
			for _, id := range snap.SelectedTranslations {
				selected[id] = true
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "\tID\tNAME\tLANGUAGE")
			for _, t := range snap.Translations {
				mark := ""
				if selected[t.ID] {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", mark, t.ID, t.Name, t.Language)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d translation(s), catalog %s\n", len(snap.Translations), app.Registry.State())
			return nil
		},
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the translation catalog from the provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appFrom(cmd).State.RefreshTranslations(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d translation(s) available\n", len(list))
			return nil
		},
	}

	cmd.AddCommand(list, refresh)
	return cmd
}
