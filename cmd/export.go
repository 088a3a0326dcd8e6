package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/theirongolddev/lifedash/internal/dashboard"
	"github.com/theirongolddev/lifedash/internal/model"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the record, theme and history",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "json", "Output format: json or yaml")
	rootCmd.AddCommand(exportCmd)
}

// exportDoc is the export envelope.
type exportDoc struct {
	Record  model.DailyRecord        `json:"record" yaml:"record"`
	Theme   dashboard.Theme          `json:"theme" yaml:"theme"`
	History []dashboard.HistoryEntry `json:"history" yaml:"history"`
}

func runExport(_ *cobra.Command, _ []string) error {
	if flagExportFormat != "json" && flagExportFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want json or yaml)", flagExportFormat)
	}

	return withSession(func(s *session) error {
		doc, err := buildExport(s.svc)
		if err != nil {
			return err
		}
		return writeExport(doc, flagExportFormat)
	})
}

func buildExport(svc *dashboard.Service) (exportDoc, error) {
	rec, err := svc.LoadRecord()
	if err != nil {
		return exportDoc{}, err
	}
	pref, err := svc.Theme()
	if err != nil {
		return exportDoc{}, err
	}
	history, err := svc.History(0)
	if err != nil {
		return exportDoc{}, err
	}
	if history == nil {
		history = []dashboard.HistoryEntry{}
	}
	return exportDoc{Record: rec, Theme: pref, History: history}, nil
}

func writeExport(doc exportDoc, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
