package cli

import (
	"fmt"

	"github.com/Xunop/e-verse/internal/util"
	"github.com/spf13/cobra"
)

func newDefineCmd() *cobra.Command {
	var dict string

	cmd := &cobra.Command{
		Use:   "define <term>",
		Short: "Look up a word or Strong's number",
		Long: `Look up a word or a Strong's number (H1-H8674, G1-G5624) in a lexicon.

Examples:
  e-verse define H430
  e-verse define love --dict RUSD`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := appFrom(cmd).Dictionary.Lookup(cmd.Context(), args[0], dict)
			w := cmd.OutOrStdout()
			if len(defs) == 0 {
				fmt.Fprintln(w, "No definitions found.")
				return nil
			}
			for _, d := range defs {
				fmt.Fprintf(w, "%s  %s", d.Topic, d.Lexeme)
				if d.Transliteration != "" {
					fmt.Fprintf(w, " (%s)", d.Transliteration)
				}
				fmt.Fprintln(w)
				if d.ShortDefinition != "" {
					fmt.Fprintf(w, "  %s\n", d.ShortDefinition)
				}
				fmt.Fprintf(w, "  %s\n\n", util.CleanText(d.Definition))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dict, "dict", "d", "", "dictionary id (default from config)")
	return cmd
}
