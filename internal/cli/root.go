package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Xunop/e-verse/internal/config"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const greetingBanner = `
███████       ██    ██ ███████ ██████  ███████ ███████
██            ██    ██ ██      ██   ██ ██      ██
█████   █████ ██    ██ █████   ██████  ███████ █████
██             ██  ██  ██      ██   ██      ██ ██
███████         ████   ███████ ██   ██ ███████ ███████
`

type rootFlags struct {
	configFile string
	offline    bool
	logLevel   string
}

type appKey struct{}

// NewRootCmd builds the command tree. Subcommands find the App in their context.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var app *App

	root := &cobra.Command{
		Use:           "e-verse",
		Short:         "E-Verse is a scripture reader with offline downloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd, flags)
			if err != nil {
				return err
			}
			log.Init(opts)
			app = NewApp(cmd.Context(), opts)
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, app))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer log.Sync()
			if app == nil {
				return nil
			}
			return app.Close()
		},
	}

	root.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "config file (toml, yaml or json)")
	root.PersistentFlags().BoolVar(&flags.offline, "offline", false, "never contact the remote provider")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newReadCmd(),
		newTranslationsCmd(),
		newSearchCmd(),
		newBookmarkCmd(),
		newProgressCmd(),
		newDownloadCmd(),
		newDefineCmd(),
		newSettingsCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
	return root
}

func loadOptions(cmd *cobra.Command, flags *rootFlags) (*config.Options, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, err
	}
	var (
		opts *config.Options
		err  error
	)
	if flags.configFile != "" {
		opts, err = config.ParseFile(flags.configFile)
	} else {
		opts, err = config.GetConfig("")
	}
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("offline") {
		opts.Offline = flags.offline
	}
	if flags.logLevel != "" {
		opts.LogLevel = flags.logLevel
	}
	return opts, nil
}

func appFrom(cmd *cobra.Command) *App {
	app, _ := cmd.Context().Value(appKey{}).(*App)
	return app
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error("Command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
