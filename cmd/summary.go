package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/dashboard"
	"github.com/theirongolddev/lifedash/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Today's dashboard at a glance",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		rec, err := s.svc.LoadRecord()
		if err != nil {
			return err
		}
		res, err := s.svc.Preview()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("LIFEDASH  " + time.Now().Format(dashboard.ScoreDateLayout)))
		fmt.Println()

		habitsDone := 0
		for _, h := range s.svc.Habits() {
			if rec.HabitDone(h.ID) {
				habitsDone++
			}
		}
		todosDone, todosTotal := rec.CompletedTodos()

		rows := [][]string{
			{"Habits", fmt.Sprintf("%d of %d", habitsDone, len(s.svc.Habits()))},
			{"Mood", cli.FormatLevel(rec.Mood, model.MoodMax)},
			{"Stress", cli.FormatLevel(rec.Stress, model.StressMax)},
			{"---"},
			{"Breakfast", orDash(rec.Meals.Breakfast)},
			{"Lunch", orDash(rec.Meals.Lunch)},
			{"Dinner", orDash(rec.Meals.Dinner)},
			{"Calories", orDash(rec.Meals.Calories)},
			{"---"},
			{"To-dos", fmt.Sprintf("%d of %d done", todosDone, todosTotal)},
		}
		if rec.DailyScore != nil {
			rows = append(rows, []string{"Last score", fmt.Sprintf("%s %s (%s)",
				rec.DailyScore.Grade, cli.FormatPercent(rec.DailyScore.Percentage), rec.DailyScore.Date)})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Today", "Value"},
			Rows:    rows,
		}))

		fmt.Println()
		fmt.Printf("  Projected  %s  %s\n", cli.RenderGrade(res.Grade), cli.RenderProgressBar(res.Percentage, 30))
		fmt.Printf("  %s\n", cli.RenderMuted(res.Message))
		fmt.Println()
		return nil
	})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
