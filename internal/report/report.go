// Package report builds the markdown day report and renders it for the
// terminal with glamour.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/theirongolddev/lifedash/internal/dashboard"
	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/scoring"
)

// Day is everything a report covers.
type Day struct {
	Date    string
	Habits  []model.HabitDefinition
	Record  model.DailyRecord
	Score   scoring.Result
	History []dashboard.HistoryEntry
}

// Markdown renders d as a markdown document.
func Markdown(d Day) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Daily report: %s\n\n", d.Date)
	fmt.Fprintf(&b, "**Grade %s** at %d%%. %s\n\n", d.Score.Grade, d.Score.Percentage, d.Score.Message)

	b.WriteString("## Habits\n\n")
	for _, h := range d.Habits {
		mark := " "
		if d.Record.HabitDone(h.ID) {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s (weight %d)\n", mark, escape(h.Name), h.Weight)
	}
	fmt.Fprintf(&b, "\n%d of %d habit points.\n\n", d.Score.HabitPoints, d.Score.HabitWeight)

	b.WriteString("## Wellbeing\n\n")
	b.WriteString("| | Level | Points |\n|---|---|---|\n")
	fmt.Fprintf(&b, "| Mood | %s | %s |\n", level(d.Record.Mood, model.MoodMax), points(d.Score.MoodScore))
	fmt.Fprintf(&b, "| Stress | %s | %s |\n\n", level(d.Record.Stress, model.StressMax), points(d.Score.StressScore))

	b.WriteString("## Meals\n\n")
	meals := d.Record.Meals
	if meals == (model.Meals{}) {
		b.WriteString("_No meals planned._\n\n")
	} else {
		fmt.Fprintf(&b, "- **Breakfast:** %s\n", orNone(meals.Breakfast))
		fmt.Fprintf(&b, "- **Lunch:** %s\n", orNone(meals.Lunch))
		fmt.Fprintf(&b, "- **Dinner:** %s\n", orNone(meals.Dinner))
		fmt.Fprintf(&b, "- **Calories:** %s\n\n", orNone(meals.Calories))
	}

	b.WriteString("## To-dos\n\n")
	if len(d.Record.Todos) == 0 {
		b.WriteString("_Nothing on the list._\n\n")
	} else {
		for _, t := range d.Record.Todos {
			mark := " "
			if t.Done {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, escape(t.Text))
		}
		fmt.Fprintf(&b, "\n%d of %d done.\n\n", d.Score.TodosDone, d.Score.TodosTotal)
	}

	if len(d.History) > 0 {
		b.WriteString("## Recent days\n\n")
		b.WriteString("| Day | Grade | Score |\n|---|---|---|\n")
		for i := len(d.History) - 1; i >= 0; i-- {
			e := d.History[i]
			fmt.Fprintf(&b, "| %s | %s | %d%% |\n", e.Date, e.Grade, e.Percentage)
		}
		st := dashboard.Summarize(d.History)
		fmt.Fprintf(&b, "\nAverage %.0f%% over %d days.\n", st.AveragePct, st.Days)
	}

	return b.String()
}

// Render styles md for a terminal of the given width. dark selects
// glamour's dark or light style.
func Render(md string, dark bool, width int) (string, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return out, nil
}

func level(v *int, max int) string {
	if v == nil {
		return "not recorded"
	}
	return fmt.Sprintf("%d/%d", *v, max)
}

func points(f float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", f), ".0")
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "_none_"
	}
	return escape(s)
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "|", `\|`, "#", `\#`,
)

// escape keeps user text from being read as markdown.
func escape(s string) string {
	return mdEscaper.Replace(s)
}
