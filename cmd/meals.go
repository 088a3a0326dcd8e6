package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagBreakfast string
	flagLunch     string
	flagDinner    string
	flagCalories  string
)

var mealsCmd = &cobra.Command{
	Use:   "meals",
	Short: "Show today's meal plan",
	Args:  cobra.NoArgs,
	RunE:  runMeals,
}

var mealsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update meal fields (unset flags keep their value)",
	Args:  cobra.NoArgs,
	RunE:  runMealsSet,
}

var mealsPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Fill in a simple meal plan",
	Args:  cobra.NoArgs,
	RunE:  runMealsPlan,
}

func init() {
	mealsSetCmd.Flags().StringVar(&flagBreakfast, "breakfast", "", "Breakfast")
	mealsSetCmd.Flags().StringVar(&flagLunch, "lunch", "", "Lunch")
	mealsSetCmd.Flags().StringVar(&flagDinner, "dinner", "", "Dinner")
	mealsSetCmd.Flags().StringVar(&flagCalories, "calories", "", "Calorie target (free text)")

	mealsCmd.AddCommand(mealsSetCmd, mealsPlanCmd)
	rootCmd.AddCommand(mealsCmd)
}

func runMeals(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		rec, err := s.svc.LoadRecord()
		if err != nil {
			return err
		}
		printMeals(rec.Meals)
		return nil
	})
}

func runMealsSet(cmd *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		rec, err := s.svc.LoadRecord()
		if err != nil {
			return err
		}

		m := rec.Meals
		flags := cmd.Flags()
		if flags.Changed("breakfast") {
			m.Breakfast = flagBreakfast
		}
		if flags.Changed("lunch") {
			m.Lunch = flagLunch
		}
		if flags.Changed("dinner") {
			m.Dinner = flagDinner
		}
		if flags.Changed("calories") {
			m.Calories = flagCalories
		}

		if err := s.svc.SaveMeals(m); err != nil {
			return err
		}
		logf("  Saved meals\n")
		printMeals(m)
		return nil
	})
}

func runMealsPlan(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		m, err := s.svc.GenerateSimplePlan()
		if err != nil {
			return err
		}
		logf("  Generated a simple plan\n")
		printMeals(m)
		return nil
	})
}

func printMeals(m model.Meals) {
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Meals",
		Headers: []string{"Meal", "Plan"},
		Rows: [][]string{
			{"Breakfast", orDash(m.Breakfast)},
			{"Lunch", orDash(m.Lunch)},
			{"Dinner", orDash(m.Dinner)},
			{"Calories", orDash(m.Calories)},
		},
	}))
}
