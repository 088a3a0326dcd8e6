package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear today's habits, mood, meals, to-dos and score",
	Long:  "Replace the daily record with an empty one. The theme preference and score history are kept.",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagResetYes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Clear today's record?").
			Description("Habits, mood, meals, to-dos and the saved score will be erased.").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !confirmed {
			logf("  Cancelled\n")
			return nil
		}
	}

	return withSession(func(s *session) error {
		if err := s.svc.Reset(); err != nil {
			return err
		}
		fmt.Println("  Record cleared.")
		return nil
	})
}
