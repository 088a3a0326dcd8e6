package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/dashboard"
	"github.com/theirongolddev/lifedash/internal/model"

	"github.com/spf13/cobra"
)

var flagHistoryDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Per-day grades over recent days",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryDays, "days", "n", 0, "Days to show (default from config, 0 or less shows all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		days := s.cfg.General.HistoryDays
		if cmd.Flags().Changed("days") {
			days = flagHistoryDays
		}

		entries, err := s.svc.History(days)
		if err != nil {
			return err
		}

		fmt.Println()
		if len(entries) == 0 {
			fmt.Println("  No scores yet. Run `lifedash score` to grade today.")
			fmt.Println()
			return nil
		}

		title := "Score history"
		if days > 0 {
			title = fmt.Sprintf("Score history  last %dd", days)
		}

		rows := make([][]string, 0, len(entries))
		values := make([]float64, 0, len(entries))
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			rows = append(rows, []string{cli.FormatDay(e.Day()), string(e.Grade), cli.FormatPercent(e.Percentage)})
		}
		for _, e := range entries {
			values = append(values, float64(e.Percentage))
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Title:      title,
			Headers:    []string{"Day", "Grade", "Score"},
			Rows:       rows,
			RightAlign: []int{2},
		}))

		st := dashboard.Summarize(entries)
		fmt.Println()
		fmt.Printf("  Trend    %s\n", cli.RenderSparklineMax(values, 100))
		fmt.Printf("  Average  %.0f%%   Best %s %s   Worst %s %s\n",
			st.AveragePct,
			cli.FormatDay(st.Best.Day()), cli.FormatPercent(st.Best.Percentage),
			cli.FormatDay(st.Worst.Day()), cli.FormatPercent(st.Worst.Percentage))
		fmt.Printf("  Grades   A:%d  B:%d  C:%d  D:%d\n",
			st.GradeCounts[model.GradeA], st.GradeCounts[model.GradeB],
			st.GradeCounts[model.GradeC], st.GradeCounts[model.GradeD])
		fmt.Println()
		return nil
	})
}
