package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifedash/internal/config"
	"github.com/theirongolddev/lifedash/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		// Force TrueColor profile so all background styling produces ANSI codes
		lipgloss.SetColorProfile(termenv.TrueColor)

		app := tui.NewApp(s.svc, s.cfg, !config.Exists())
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	})
}
