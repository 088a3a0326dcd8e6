// Package config reads and writes the lifedash TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/lifedash/internal/model"
)

// ErrInvalidHabit is returned when the config defines an unusable habit.
var ErrInvalidHabit = errors.New("invalid habit definition")

// Config holds all lifedash configuration.
type Config struct {
	General    GeneralConfig           `toml:"general"`
	Appearance AppearanceConfig        `toml:"appearance"`
	Habits     []model.HabitDefinition `toml:"habits,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath      string `toml:"db_path,omitempty"`
	HistoryDays int    `toml:"history_days"`
}

// AppearanceConfig holds the colour palette. Light or dark is a separate
// preference kept in the data store.
type AppearanceConfig struct {
	Palette string `toml:"palette"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			HistoryDays: 14,
		},
		Appearance: AppearanceConfig{
			Palette: "flexoki",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lifedash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lifedash")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "lifedash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "lifedash")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate checks the habit table: every habit needs a unique non-empty id
// and a positive weight.
func Validate(cfg Config) error {
	seen := make(map[string]bool, len(cfg.Habits))
	for i, h := range cfg.Habits {
		id := strings.TrimSpace(h.ID)
		switch {
		case id == "":
			return fmt.Errorf("habit #%d: empty id: %w", i+1, ErrInvalidHabit)
		case h.Weight <= 0:
			return fmt.Errorf("habit %q: weight %d must be positive: %w", id, h.Weight, ErrInvalidHabit)
		case seen[id]:
			return fmt.Errorf("habit %q: duplicate id: %w", id, ErrInvalidHabit)
		}
		seen[id] = true
	}
	return nil
}

// Habits returns the configured habits, or model.DefaultHabits when the
// config defines none. Missing names fall back to the id.
func Habits(cfg Config) []model.HabitDefinition {
	if len(cfg.Habits) == 0 {
		return append([]model.HabitDefinition(nil), model.DefaultHabits...)
	}
	out := make([]model.HabitDefinition, len(cfg.Habits))
	for i, h := range cfg.Habits {
		h.ID = strings.TrimSpace(h.ID)
		if strings.TrimSpace(h.Name) == "" {
			h.Name = h.ID
		}
		out[i] = h
	}
	return out
}

// DBPath returns the store location: $LIFEDASH_DB, then the config value,
// then DataDir()/lifedash.db. A leading ~ is expanded.
func DBPath(cfg Config) string {
	p := os.Getenv("LIFEDASH_DB")
	if p == "" {
		p = cfg.General.DBPath
	}
	if p == "" {
		return filepath.Join(DataDir(), "lifedash.db")
	}
	return expandHome(p)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
