package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline of 0-100 scores.
func Sparkline(pcts []int) string {
	if len(pcts) == 0 {
		return ""
	}
	t := theme.Active
	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for _, p := range pcts {
		idx := clampInt(p, 0, 100) * (len(blocks) - 1) / 100
		style := lipgloss.NewStyle().Foreground(ColorForPct(p)).Background(t.Surface)
		b.WriteString(style.Render(string(blocks[idx])))
	}
	return b.String()
}

// ScoreChart renders a vertical bar chart of 0-100 scores on a fixed axis,
// one bar per day, coloured by score band. labels run under the bars and
// may be nil. Falls back to a sparkline when the area is too small.
func ScoreChart(pcts []int, labels []string, width, height int) string {
	if len(pcts) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(pcts)
	}

	t := theme.Active
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	const yLabelW = 4 // "100%"
	chartW := width - yLabelW - 1

	// Keep the most recent days when they don't fit at one column + gap each.
	if maxBars := (chartW + 1) / 2; len(pcts) > maxBars {
		pcts = pcts[len(pcts)-maxBars:]
		if labels != nil {
			labels = labels[len(labels)-maxBars:]
		}
	}
	n := len(pcts)
	barW := (chartW - (n - 1)) / n
	if barW > 4 {
		barW = 4
	}
	if barW < 1 {
		barW = 1
	}

	partial := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := 100 * row / height
		bottom := 100 * (row - 1) / height

		label := ""
		switch row {
		case height:
			label = "100%"
		case (height + 1) / 2:
			label = fmt.Sprintf("%d%%", top)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, p := range pcts {
			if i > 0 {
				b.WriteString(blank.Render(" "))
			}
			style := lipgloss.NewStyle().Foreground(ColorForPct(p)).Background(t.Surface)
			switch {
			case p >= top:
				b.WriteString(style.Render(strings.Repeat("█", barW)))
			case p > bottom:
				idx := (p - bottom) * 8 / (top - bottom)
				idx = clampInt(idx, 1, 8)
				b.WriteString(style.Render(strings.Repeat(string(partial[idx]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	axisLen := n*barW + n - 1
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		buf := []rune(strings.Repeat(" ", axisLen))
		lastEnd := -1
		for i, lbl := range labels {
			pos := i * (barW + 1)
			r := []rune(lbl)
			if pos <= lastEnd || pos+len(r) > axisLen {
				continue
			}
			copy(buf[pos:], r)
			lastEnd = pos + len(r)
		}
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
