package components

import (
	"fmt"

	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct maps a 0-100 score to red/orange/yellow/green.
func ColorForPct(pct int) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 80:
		return t.Green
	case pct >= 70:
		return t.Yellow
	case pct >= 60:
		return t.Orange
	default:
		return t.Red
	}
}

// ScoreBar renders a labelled bar for a 0-100 percentage.
func ScoreBar(label string, pct, labelW, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if barWidth < 4 {
		barWidth = 4
	}

	color := ColorForPct(pct)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	out := ""
	if label != "" {
		out = labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + spaceStyle.Render(" ")
	}
	return out + bar.ViewAs(float64(pct)/100) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3d%%", pct))
}

// PartBar renders got/max as a labelled bar, e.g. habit points.
func PartBar(label string, got, max float64, labelW, barWidth int) string {
	pct := 0
	if max > 0 {
		pct = int(got/max*100 + 0.5)
	}
	return ScoreBar(label, pct, labelW, barWidth)
}
