package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/tui/components"
	"github.com/theirongolddev/lifedash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) updateHabitsKey(key string) (bool, tea.Cmd) {
	habits := a.svc.Habits()
	switch key {
	case "j", "down":
		a.habitCursor = clamp(a.habitCursor+1, 0, len(habits)-1)
		return true, nil
	case "k", "up":
		a.habitCursor = clamp(a.habitCursor-1, 0, len(habits)-1)
		return true, nil
	case " ", "space", "enter":
		if len(habits) == 0 {
			return true, nil
		}
		h := habits[a.habitCursor]
		done := !a.rec.HabitDone(h.ID)
		svc := a.svc
		verb := "Unchecked"
		if done {
			verb = "Checked"
		}
		return true, a.runOK(verb+" "+h.Name, func() error {
			return svc.SaveHabitState(h.ID, done)
		})
	}
	return false, nil
}

func (a App) renderHabitsTab(cw int) string {
	t := theme.Active
	habits := a.svc.Habits()

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)
	nameW := innerW - 16
	if nameW < 10 {
		nameW = 10
	}

	var b strings.Builder
	for i, h := range habits {
		style := rowStyle
		cursor := "  "
		if i == a.habitCursor {
			style = selStyle
			cursor = "▸ "
		}
		box := style.Render("[ ]")
		if a.rec.HabitDone(h.ID) {
			box = doneStyle.Render("[x]")
		}
		line := fmt.Sprintf(" %-*s  w%-2d", nameW, cli.Truncate(h.Name, nameW), h.Weight)
		b.WriteString(style.Render(cursor) + box + style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d points   space toggle · j/k move",
		a.preview.HabitPoints, a.preview.HabitWeight)))

	return components.ContentCard("Habits", b.String(), cw)
}
