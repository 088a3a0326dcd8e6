package components

import (
	"strings"

	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the last status message and theme on the right.
func RenderStatusBar(width int, status string, isErr bool) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	statusStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	if isErr {
		statusStyle = statusStyle.Foreground(t.Red)
	}
	themeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	left := hintStyle.Render(" [?]help  [s]core  [T]heme  [q]uit")
	right := ""
	if status != "" {
		right = statusStyle.Render(status) + barStyle.Render("  ")
	}
	right += themeStyle.Render(t.Name + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return left + barStyle.Render(strings.Repeat(" ", padding)) + right
}
