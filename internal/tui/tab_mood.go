package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/tui/components"
	"github.com/theirongolddev/lifedash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	moodFieldMood = iota
	moodFieldStress
)

// moodState is the unsaved mood/stress draft.
type moodState struct {
	field  int
	mood   int
	stress int
	dirty  bool
}

// reset loads the draft from rec unless the user has unsaved edits.
func (m *moodState) reset(rec model.DailyRecord) {
	if m.dirty {
		return
	}
	m.mood = rec.MoodOrDefault()
	m.stress = rec.StressOrDefault()
}

func (m *moodState) adjust(delta int) {
	if m.field == moodFieldMood {
		m.mood = clamp(m.mood+delta, model.MoodMin, model.MoodMax)
	} else {
		m.stress = clamp(m.stress+delta, model.StressMin, model.StressMax)
	}
	m.dirty = true
}

func (a *App) updateMoodKey(key string) (bool, tea.Cmd) {
	switch key {
	case "j", "down", "k", "up":
		a.mood.field = 1 - a.mood.field
		return true, nil
	case "right", "+", "=", "l":
		a.mood.adjust(1)
		return true, nil
	case "left", "-", "_":
		a.mood.adjust(-1)
		return true, nil
	case "esc":
		a.mood.dirty = false
		a.mood.reset(a.rec)
		return true, nil
	case "enter":
		mood, stress := a.mood.mood, a.mood.stress
		a.mood.dirty = false
		svc := a.svc
		return true, a.runOK(fmt.Sprintf("Saved mood %d, stress %d", mood, stress), func() error {
			return svc.SaveMoodStress(mood, stress)
		})
	}
	return false, nil
}

func (a App) renderMoodTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selLabel := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	onStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	offStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	scale := func(field int, label string, v, max int, hint string) string {
		ls := labelStyle
		cursor := "  "
		if a.mood.field == field {
			ls = selLabel
			cursor = "▸ "
		}
		var dots strings.Builder
		for i := 1; i <= max; i++ {
			if i <= v {
				dots.WriteString(onStyle.Render("● "))
			} else {
				dots.WriteString(offStyle.Render("○ "))
			}
		}
		return ls.Render(fmt.Sprintf("%s%-7s", cursor, label)) + dots.String() +
			valueStyle.Render(fmt.Sprintf("%d/%d", v, max)) + hintStyle.Render("  "+hint)
	}

	lines := []string{
		scale(moodFieldMood, "Mood", a.mood.mood, model.MoodMax, "higher is better"),
		"",
		scale(moodFieldStress, "Stress", a.mood.stress, model.StressMax, "lower is better"),
		"",
	}

	switch {
	case a.mood.dirty:
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).
			Render("Unsaved changes. enter to save, esc to revert."))
	case a.rec.Mood == nil && a.rec.Stress == nil:
		lines = append(lines, hintStyle.Render("Not recorded yet. Showing defaults."))
	default:
		lines = append(lines, hintStyle.Render(fmt.Sprintf("Scoring %.0f + %.0f of 20 points.",
			a.preview.MoodScore, a.preview.StressScore)))
	}
	lines = append(lines, "", hintStyle.Render("j/k field · ←/→ adjust · enter save"))

	return components.ContentCard("Mood & stress", strings.Join(lines, "\n"), cw)
}
