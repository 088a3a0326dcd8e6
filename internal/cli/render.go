package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/tui/theme"
)

// styles are rebuilt from the active theme on every render so a theme
// change made earlier in the same process takes effect.
type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
	dim    lipgloss.Style
	border lipgloss.Color
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		good:   lipgloss.NewStyle().Foreground(t.Green),
		warn:   lipgloss.NewStyle().Foreground(t.Orange),
		bad:    lipgloss.NewStyle().Foreground(t.Red),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
		border: t.Border,
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title      string
	Headers    []string
	Rows       [][]string
	Widths     []int // optional column widths, auto-calculated if nil
	RightAlign []int // column indexes rendered right-aligned
}

func (t Table) rightAligned(col int) bool {
	for _, c := range t.RightAlign {
		if c == col {
			return true
		}
	}
	return false
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	st := currentStyles()
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(st.border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(st.title.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	st := currentStyles()

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if lipgloss.Width(h) > widths[i] {
				widths[i] = lipgloss.Width(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(st.header.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(st.dim.Render("╭"))
	for i, w := range widths {
		b.WriteString(st.dim.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(st.dim.Render("┬"))
		}
	}
	b.WriteString(st.dim.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(st.dim.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(st.header.Render(padded))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(st.dim.Render("├"))
		for i, w := range widths {
			b.WriteString(st.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("┼"))
			}
		}
		b.WriteString(st.dim.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(st.dim.Render("├"))
			for i, w := range widths {
				b.WriteString(st.dim.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(st.dim.Render("┼"))
				}
			}
			b.WriteString(st.dim.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(st.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align columns listed in RightAlign
			var padded string
			if t.rightAligned(i) {
				padded = fmt.Sprintf(" %*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			}
			b.WriteString(st.value.Render(padded))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(st.dim.Render("╰"))
	for i, w := range widths {
		b.WriteString(st.dim.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(st.dim.Render("┴"))
		}
	}
	b.WriteString(st.dim.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderProgressBar renders a score bar coloured by how full it is.
func RenderProgressBar(pct int, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	st := currentStyles()
	style := st.bad
	switch {
	case pct >= 80:
		style = st.good
	case pct >= 60:
		style = st.warn
	}
	return fmt.Sprintf("[%s] %s", style.Render(bar), FormatPercent(pct))
}

// RenderGrade renders a letter grade in its grade colour.
func RenderGrade(g model.Grade) string {
	st := currentStyles()
	switch g {
	case model.GradeA:
		return st.good.Bold(true).Render(string(g))
	case model.GradeB:
		return st.header.Render(string(g))
	case model.GradeC:
		return st.warn.Render(string(g))
	default:
		return st.bad.Render(string(g))
	}
}

// RenderMuted renders secondary text.
func RenderMuted(s string) string {
	return currentStyles().muted.Render(s)
}

// RenderHeader renders a section header.
func RenderHeader(s string) string {
	return currentStyles().header.Render(s)
}

// RenderSparklineMax renders a sparkline against a fixed ceiling, e.g. 100
// for percentages.
func RenderSparklineMax(values []float64, max float64) string {
	if len(values) == 0 {
		return ""
	}
	if max <= 0 {
		max = 1
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}
