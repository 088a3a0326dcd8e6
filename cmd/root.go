package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/lifedash/internal/config"
	"github.com/theirongolddev/lifedash/internal/dashboard"
	"github.com/theirongolddev/lifedash/internal/store"
	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:           "lifedash",
	Short:         "Personal daily dashboard",
	Long:          "Track habits, mood, meals and to-dos, and grade your day.",
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %s\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Store path (default $LIFEDASH_DB or ~/.local/share/lifedash/lifedash.db)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// session bundles what every command needs: the loaded config, the open
// store and the dashboard built over it.
type session struct {
	cfg config.Config
	st  *store.SQLite
	svc *dashboard.Service
}

// openSession loads config, opens the store and applies the stored
// dark/light preference to the configured palette. Callers must Close it.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}
	logf("  Opening %s\n", dbPath)

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	svc := dashboard.New(st, config.Habits(cfg))

	pref, err := svc.Theme()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	theme.SetActive(cfg.Appearance.Palette, pref == dashboard.ThemeDark)

	return &session{cfg: cfg, st: st, svc: svc}, nil
}

func (s *session) Close() error {
	return s.st.Close()
}

// withSession opens a session for the duration of fn.
func withSession(fn func(*session) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// logf writes a progress line to stderr unless --quiet is set.
func logf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
