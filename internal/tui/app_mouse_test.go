package tui

import (
	"testing"

	"github.com/theirongolddev/lifedash/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w + 1 // separator
		}

		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d x past the last tab -> %d, want -1", active, got)
		}
	}
}

func TestTabWidthsIncludeShortcutBrackets(t *testing.T) {
	// Inactive tabs show the shortcut as "[x]" plus one column of padding each side.
	for _, tab := range components.Tabs {
		want := len(tab.Name) + 2 + 2
		if got := components.TabVisualWidth(tab, false); got != want {
			t.Fatalf("%s inactive width = %d, want %d", tab.Name, got, want)
		}
		// Active tabs are padded by one column each side.
		if got := components.TabVisualWidth(tab, true); got != len(tab.Name)+2 {
			t.Fatalf("%s active width = %d, want %d", tab.Name, got, len(tab.Name)+2)
		}
	}
}
