// Package cmd implements the lifedash CLI commands.
package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/theirongolddev/lifedash/internal/cli"
	"github.com/theirongolddev/lifedash/internal/config"
	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	fmt.Println("  " + cli.RenderHeader("General"))
	fmt.Printf("    Database:     %s\n", dbPath)
	fmt.Printf("    History days: %d\n", cfg.General.HistoryDays)
	fmt.Println()

	fmt.Println("  " + cli.RenderHeader("Appearance"))
	fmt.Printf("    Palette: %s\n", cfg.Appearance.Palette)
	fmt.Println()

	habits := config.Habits(cfg)
	src := "configured"
	if len(cfg.Habits) == 0 {
		src = "defaults"
	}
	fmt.Printf("  %s %s\n", cli.RenderHeader("Habits"), cli.RenderMuted(fmt.Sprintf("(%s, %d points)", src, model.TotalWeight(habits))))
	for _, h := range habits {
		fmt.Printf("    %-10s w%-2d %s\n", h.ID, h.Weight, h.Name)
	}
	fmt.Println()

	printStoreKeys(dbPath)

	fmt.Println("  Run `lifedash setup` to reconfigure.")
	return nil
}

// printStoreKeys lists what the store holds, without creating it.
func printStoreKeys(dbPath string) {
	fmt.Println("  " + cli.RenderHeader("Store"))
	if _, err := os.Stat(dbPath); err != nil {
		fmt.Println("    (not created yet)")
		fmt.Println()
		return
	}

	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Printf("    unreadable: %s\n", err)
		fmt.Println()
		return
	}
	defer func() { _ = st.Close() }()

	keys, err := st.Keys()
	if err != nil {
		fmt.Printf("    unreadable: %s\n", err)
		fmt.Println()
		return
	}
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("    %-18s updated %s\n", k, keys[k].Local().Format("2006-01-02 15:04"))
	}
	if len(names) == 0 {
		fmt.Println("    (empty)")
	}
	fmt.Println()
}
