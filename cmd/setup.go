package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifedash/internal/config"
	"github.com/theirongolddev/lifedash/internal/dashboard"
	"github.com/theirongolddev/lifedash/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		logf("  Ignoring unreadable config: %s\n", err)
		cfg = config.DefaultConfig()
	}

	// Seed the dark/light answer from the current store when it opens.
	dark := false
	if s, err := openSession(); err == nil {
		pref, _ := s.svc.Theme()
		dark = pref == dashboard.ThemeDark
		_ = s.Close()
	}

	vals := tui.SetupValuesFrom(cfg, dark)
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	cfg = vals.Apply(cfg)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	pref := dashboard.ThemeLight
	if vals.Dark {
		pref = dashboard.ThemeDark
	}
	if err := withSession(func(s *session) error { return s.svc.SetTheme(pref) }); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `lifedash setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
