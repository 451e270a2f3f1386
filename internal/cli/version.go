package cli

import (
	"fmt"

	"github.com/Xunop/e-verse/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "e-verse %s (schema %s)\n", version.GetCurrentVersion(), version.GetSchemaVersion(version.GetCurrentVersion()))
		},
	}
}
