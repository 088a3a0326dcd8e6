package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifedash/internal/dashboard"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the dark/light preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(_ *cobra.Command, args []string) error {
	return withSession(func(s *session) error {
		var (
			pref dashboard.Theme
			err  error
		)
		switch {
		case len(args) == 0:
			pref, err = s.svc.Theme()
		case args[0] == "toggle":
			pref, err = s.svc.ToggleTheme()
		default:
			pref, err = dashboard.ParseTheme(args[0])
			if err == nil {
				err = s.svc.SetTheme(pref)
			}
		}
		if err != nil {
			return err
		}

		fmt.Printf("  Theme: %s (palette %s)\n", pref, s.cfg.Appearance.Palette)
		return nil
	})
}
