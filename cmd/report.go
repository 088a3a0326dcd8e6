package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/lifedash/internal/dashboard"
	"github.com/theirongolddev/lifedash/internal/report"

	"github.com/spf13/cobra"
)

var (
	flagReportRaw   bool
	flagReportWidth int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Markdown report of today",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagReportRaw, "raw", false, "Print markdown without terminal styling")
	reportCmd.Flags().IntVarP(&flagReportWidth, "width", "w", 80, "Wrap width")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	return withSession(func(s *session) error {
		rec, err := s.svc.LoadRecord()
		if err != nil {
			return err
		}
		res, err := s.svc.Preview()
		if err != nil {
			return err
		}
		history, err := s.svc.History(s.cfg.General.HistoryDays)
		if err != nil {
			return err
		}

		md := report.Markdown(report.Day{
			Date:    time.Now().Format(dashboard.ScoreDateLayout),
			Habits:  s.svc.Habits(),
			Record:  rec,
			Score:   res,
			History: history,
		})
		if flagReportRaw {
			fmt.Print(md)
			return nil
		}

		pref, err := s.svc.Theme()
		if err != nil {
			return err
		}
		out, err := report.Render(md, pref == dashboard.ThemeDark, flagReportWidth)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	})
}
