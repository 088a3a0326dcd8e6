package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/model"

	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood [<mood 1-5> <stress 1-10>]",
	Short: "Show or record mood and stress",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runMood,
}

func init() {
	rootCmd.AddCommand(moodCmd)
}

func runMood(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		return errors.New("mood needs both <mood> and <stress>")
	}

	return withSession(func(s *session) error {
		if len(args) == 2 {
			mood, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mood %q: not a whole number", args[0])
			}
			stress, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("stress %q: not a whole number", args[1])
			}
			if err := s.svc.SaveMoodStress(mood, stress); err != nil {
				if errors.Is(err, model.ErrOutOfRange) {
					return fmt.Errorf("%w (mood %d-%d, stress %d-%d)", err,
						model.MoodMin, model.MoodMax, model.StressMin, model.StressMax)
				}
				return err
			}
			logf("  Saved mood and stress\n")
		}

		rec, err := s.svc.LoadRecord()
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("  Mood    %s\n", cli.FormatLevel(model.IntPtr(rec.MoodOrDefault()), model.MoodMax))
		fmt.Printf("  Stress  %s\n", cli.FormatLevel(model.IntPtr(rec.StressOrDefault()), model.StressMax))
		if rec.Mood == nil && rec.Stress == nil {
			fmt.Printf("  %s\n", cli.RenderMuted("not recorded yet, showing defaults"))
		}
		fmt.Println()
		return nil
	})
}
