package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/model"

	"github.com/spf13/cobra"
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "List today's habits",
	Args:  cobra.NoArgs,
	RunE:  runHabits,
}

var habitsCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Mark a habit done",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setHabit(args[0], true)
	},
}

var habitsUncheckCmd = &cobra.Command{
	Use:   "uncheck <id>",
	Short: "Mark a habit not done",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return setHabit(args[0], false)
	},
}

func init() {
	habitsCmd.AddCommand(habitsCheckCmd, habitsUncheckCmd)
	rootCmd.AddCommand(habitsCmd)
}

func runHabits(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		rec, err := s.svc.LoadRecord()
		if err != nil {
			return err
		}
		printHabits(s.svc.Habits(), rec)
		return nil
	})
}

func setHabit(id string, done bool) error {
	return withSession(func(s *session) error {
		if _, ok := model.FindHabit(s.svc.Habits(), id); !ok {
			fmt.Fprintf(os.Stderr, "  Warning: %q is not a configured habit and will not be scored\n", id)
		}
		if err := s.svc.SaveHabitState(id, done); err != nil {
			return err
		}
		rec, err := s.svc.LoadRecord()
		if err != nil {
			return err
		}
		printHabits(s.svc.Habits(), rec)
		return nil
	})
}

func printHabits(habits []model.HabitDefinition, rec model.DailyRecord) {
	rows := make([][]string, 0, len(habits))
	points := 0
	for _, h := range habits {
		done := rec.HabitDone(h.ID)
		if done {
			points += h.Weight
		}
		rows = append(rows, []string{cli.FormatCheck(done), h.ID, h.Name, fmt.Sprintf("%d", h.Weight)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:      fmt.Sprintf("Habits  %d/%d points", points, model.TotalWeight(habits)),
		Headers:    []string{"", "ID", "Habit", "Weight"},
		Rows:       rows,
		RightAlign: []int{3},
	}))
}
