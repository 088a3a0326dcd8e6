package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifedash/internal/config"
	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the setup form.
type SetupValues struct {
	Palette     string
	Dark        bool
	HistoryDays int
	DBPath      string
}

// SetupValuesFrom seeds the form from an existing config and preference.
func SetupValuesFrom(cfg config.Config, dark bool) SetupValues {
	return SetupValues{
		Palette:     cfg.Appearance.Palette,
		Dark:        dark,
		HistoryDays: cfg.General.HistoryDays,
		DBPath:      cfg.General.DBPath,
	}
}

// Apply copies the answers onto cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.Appearance.Palette = theme.PaletteByName(v.Palette).Name
	if v.HistoryDays > 0 {
		cfg.General.HistoryDays = v.HistoryDays
	}
	cfg.General.DBPath = strings.TrimSpace(v.DBPath)
	return cfg
}

var historyOptions = []int{7, 14, 30, 90}

// NewSetupForm builds the first-run form writing into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	palettes := make([]huh.Option[string], 0, len(theme.Palettes))
	for _, p := range theme.Palettes {
		palettes = append(palettes, huh.NewOption(p.Name, p.Name))
	}

	days := make([]huh.Option[int], 0, len(historyOptions))
	for _, d := range historyOptions {
		days = append(days, huh.NewOption(fmt.Sprintf("%d days", d), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to lifedash").
				Description("Track habits, mood, meals and to-dos, then grade your day.\nYou can rerun `lifedash setup` at any time."),
			huh.NewSelect[string]().
				Title("Colour palette").
				Options(palettes...).
				Value(&vals.Palette),
			huh.NewConfirm().
				Title("Use the dark variant?").
				Affirmative("Dark").
				Negative("Light").
				Value(&vals.Dark),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("History window").
				Description("Days shown by `lifedash history` and the report.").
				Options(days...).
				Value(&vals.HistoryDays),
			huh.NewInput().
				Title("Database path").
				Description("Leave blank for " + config.DataDir() + "/lifedash.db").
				Value(&vals.DBPath),
		),
	).WithShowHelp(true)
}
