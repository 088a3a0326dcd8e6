package tui

import (
	"testing"

	"github.com/theirongolddev/lifedash/internal/config"
)

func TestSetupValuesApply(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := SetupValuesFrom(cfg, true)
	if !vals.Dark || vals.Palette != "flexoki" || vals.HistoryDays != 14 {
		t.Fatalf("seeded values = %+v", vals)
	}

	vals.Palette = "tokyo-night"
	vals.HistoryDays = 30
	vals.DBPath = "  ~/life.db  "
	got := vals.Apply(cfg)

	if got.Appearance.Palette != "tokyo-night" {
		t.Fatalf("palette = %q", got.Appearance.Palette)
	}
	if got.General.HistoryDays != 30 {
		t.Fatalf("history days = %d", got.General.HistoryDays)
	}
	if got.General.DBPath != "~/life.db" {
		t.Fatalf("db path = %q", got.General.DBPath)
	}
}

func TestSetupValuesApplyUnknownPalette(t *testing.T) {
	vals := SetupValues{Palette: "neon", HistoryDays: 0}
	got := vals.Apply(config.DefaultConfig())
	if got.Appearance.Palette != "flexoki" {
		t.Fatalf("unknown palette should fall back to flexoki, got %q", got.Appearance.Palette)
	}
	if got.General.HistoryDays != 14 {
		t.Fatalf("zero history days should keep the existing value, got %d", got.General.HistoryDays)
	}
}

func TestNewSetupFormBuilds(t *testing.T) {
	vals := SetupValuesFrom(config.DefaultConfig(), false)
	if NewSetupForm(&vals) == nil {
		t.Fatal("NewSetupForm returned nil")
	}
}
