package tui

import (
	"strings"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/tui/components"
	"github.com/theirongolddev/lifedash/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// mealsState holds the inline meals form while it is open.
type mealsState struct {
	form *huh.Form
	vals *model.Meals
}

func newMealsForm(vals *model.Meals) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Breakfast").Value(&vals.Breakfast),
			huh.NewInput().Title("Lunch").Value(&vals.Lunch),
			huh.NewInput().Title("Dinner").Value(&vals.Dinner),
			huh.NewInput().Title("Calories").Placeholder("e.g. 1800").Value(&vals.Calories),
		),
	).WithShowHelp(true)
}

func (a *App) updateMealsKey(key string) (bool, tea.Cmd) {
	switch key {
	case "enter":
		vals := a.rec.Meals
		a.meals.vals = &vals
		a.meals.form = newMealsForm(a.meals.vals).WithWidth(a.contentWidth())
		return true, a.meals.form.Init()
	case "p":
		svc := a.svc
		return true, a.runOK("Generated a simple meal plan", func() error {
			_, err := svc.GenerateSimplePlan()
			return err
		})
	}
	return false, nil
}

func (a App) updateMealsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		a.meals.form = nil
		return a, nil
	}

	form, cmd := a.meals.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.meals.form = f
	}

	switch a.meals.form.State {
	case huh.StateCompleted:
		a.meals.form = nil
		meals := *a.meals.vals
		svc := a.svc
		cmd = a.runOK("Saved meals", func() error {
			return svc.SaveMeals(meals)
		})
		return a, cmd
	case huh.StateAborted:
		a.meals.form = nil
		return a, nil
	}
	return a, cmd
}

func (a App) renderMealsTab(cw int) string {
	if a.meals.form != nil {
		return components.ContentCard("Edit meals", a.meals.form.View(), cw)
	}

	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Italic(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	m := a.rec.Meals
	fields := []struct{ label, value string }{
		{"Breakfast", m.Breakfast},
		{"Lunch", m.Lunch},
		{"Dinner", m.Dinner},
		{"Calories", m.Calories},
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(labelStyle.Render(padRight(f.label, 11)))
		if strings.TrimSpace(f.value) == "" {
			b.WriteString(emptyStyle.Render("not planned"))
		} else {
			b.WriteString(valueStyle.Render(f.value))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter edit · p simple plan"))

	return components.ContentCard("Meals", b.String(), cw)
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
