package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/validator"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change reader settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			snap := app.State.Snapshot()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "translation\t%s\n", snap.SelectedTranslation)
			fmt.Fprintf(tw, "order\t%s\n", strings.Join(snap.TranslationsOrder, ","))
			fmt.Fprintf(tw, "font-size\t%g\n", snap.FontSize)
			fmt.Fprintf(tw, "theme\t%s\n", snap.ThemeMode)
			fmt.Fprintf(tw, "sepia\t%t\n", snap.SepiaMode)
			fmt.Fprintf(tw, "high-contrast\t%t\n", snap.HighContrast)
			fmt.Fprintf(tw, "offline\t%t\n", !app.Net.Online())
			if app.Store != nil {
				count, size, err := app.Store.Size()
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "storage\t%s (%d entries, %s)\n", app.Opts.DSN, count, humanize.Bytes(uint64(size)))
			} else {
				fmt.Fprintf(tw, "storage\tmemory\n")
			}
			return tw.Flush()
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Long: `Change a setting. Keys:
  translation    primary translation id
  order          comma separated display order of translations
  font-size      12 to 32, values outside are clamped
  theme          light, dark or sepia
  sepia          true or false
  high-contrast  true or false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applySetting(cmd, appFrom(cmd), args[0], args[1])
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

func applySetting(cmd *cobra.Command, app *App, key, value string) error {
	s := app.State
	switch key {
	case "translation":
		if err := validator.ValidateTranslationID(value); err != nil {
			return err
		}
		if err := app.Settings.SetSelectedTranslation(value); err != nil {
			return err
		}
	case "order":
		ids := strings.Split(value, ",")
		if err := validator.ValidateTranslationIDs(ids); err != nil {
			return err
		}
		s.SetTranslationsOrder(ids)
	case "font-size":
		size, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.Errorf("invalid font size %q", value)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "font-size set to %g\n", s.SetFontSize(size))
	case "theme":
		mode := model.ThemeMode(strings.ToLower(value))
		if !mode.Valid() {
			return errors.Errorf("invalid theme %q", value)
		}
		s.SetThemeMode(mode)
	case "sepia", "high-contrast":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Errorf("invalid boolean %q", value)
		}
		if key == "sepia" {
			s.SetSepiaMode(enabled)
		} else {
			s.SetHighContrast(enabled)
		}
	default:
		return errors.Errorf("unknown setting %q", key)
	}
	return nil
}
