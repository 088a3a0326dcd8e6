package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/scoring"
	"github.com/theirongolddev/lifedash/internal/tui/components"
	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderTodayTab(cw, h int) string {
	t := theme.Active
	p := a.preview

	metrics := []components.Metric{
		{
			Label:  "Projected",
			Value:  fmt.Sprintf("%s  %d%%", p.Grade, p.Percentage),
			Detail: cli.Truncate(p.Message, cw/4-4),
			Color:  components.ColorForPct(p.Percentage),
		},
		{Label: "Habits", Value: fmt.Sprintf("%d/%d", p.HabitPoints, p.HabitWeight), Detail: "points"},
		{
			Label: "Mood · Stress",
			Value: fmt.Sprintf("%d/%d · %d/%d", a.rec.MoodOrDefault(), model.MoodMax, a.rec.StressOrDefault(), model.StressMax),
		},
		{Label: "To-dos", Value: fmt.Sprintf("%d/%d", p.TodosDone, p.TodosTotal), Detail: "done"},
	}
	row := components.MetricCardRow(metrics, cw)

	widths := components.LayoutRow(cw, 2)
	breakdown := components.ContentCard("Score breakdown", a.renderBreakdown(components.CardInnerWidth(widths[0])), widths[0])

	chartH := h - lipgloss.Height(row) - 6
	if chartH < 3 {
		chartH = 3
	}
	if chartH > 10 {
		chartH = 10
	}
	historyBody := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
		Render("No saved scores yet.")
	if len(a.history) > 0 {
		pcts := make([]int, len(a.history))
		labels := make([]string, len(a.history))
		for i, e := range a.history {
			pcts[i] = e.Percentage
			labels[i] = strconv.Itoa(e.Day().Day())
		}
		historyBody = components.ScoreChart(pcts, labels, components.CardInnerWidth(widths[1]), chartH)
	}
	history := components.ContentCard(fmt.Sprintf("Last %d days", a.cfg.General.HistoryDays), historyBody, widths[1])

	return row + "\n" + components.CardRow([]string{breakdown, history})
}

func (a App) renderBreakdown(innerW int) string {
	t := theme.Active
	p := a.preview

	const labelW = 7
	barW := innerW - labelW - 6
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	lines := []string{
		components.PartBar("Habits", float64(p.HabitPoints), float64(p.HabitWeight), labelW, barW),
		components.PartBar("Mood", p.MoodScore, scoring.MoodScoreMax, labelW, barW),
		components.PartBar("Stress", p.StressScore, scoring.StressScoreMax, labelW, barW),
		components.PartBar("To-dos", p.TodoPoints, scoring.TodoMax, labelW, barW),
		"",
		muted.Render("Total " + cli.FormatPoints(p.TotalPoints, p.MaxPoints)),
	}

	if s := a.rec.DailyScore; s != nil {
		lines = append(lines, muted.Render(fmt.Sprintf("Saved %s %d%% on %s", s.Grade, s.Percentage, s.Date)))
	} else {
		lines = append(lines, muted.Render("Not scored yet. Press s to save a score."))
	}
	return strings.Join(lines, "\n")
}
