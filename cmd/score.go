package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/scoring"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute and save today's score",
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		sc, err := s.svc.ComputeScore()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle("DAILY SCORE  " + sc.Date))
		fmt.Println()
		fmt.Print(cli.RenderTable(scoreTable(sc.Result)))
		fmt.Println()
		fmt.Printf("  Grade %s  %s\n", cli.RenderGrade(sc.Grade), cli.RenderProgressBar(sc.Percentage, 30))
		fmt.Printf("  %s\n", cli.RenderMuted(sc.Message))
		fmt.Println()
		return nil
	})
}

func scoreTable(res scoring.Result) cli.Table {
	return cli.Table{
		Headers: []string{"Component", "Points"},
		Rows: [][]string{
			{"Habits", cli.FormatPoints(float64(res.HabitPoints), float64(res.HabitWeight))},
			{"Mood", cli.FormatPoints(res.MoodScore, scoring.MoodScoreMax)},
			{"Stress", cli.FormatPoints(res.StressScore, scoring.StressScoreMax)},
			{"To-dos", fmt.Sprintf("%s  (%d of %d)",
				cli.FormatPoints(res.TodoPoints, scoring.TodoMax), res.TodosDone, res.TodosTotal)},
			{"---"},
			{"Total", cli.FormatPoints(res.TotalPoints, res.MaxPoints)},
		},
		RightAlign: []int{1},
	}
}
