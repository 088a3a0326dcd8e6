package components

import (
	"strings"

	"github.com/theirongolddev/lifedash/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs. Digits 1-5 select them too.
var Tabs = []Tab{
	{Name: "Today", Key: 't', KeyPos: 0},
	{Name: "Habits", Key: 'h', KeyPos: 0},
	{Name: "Mood", Key: 'm', KeyPos: 0},
	{Name: "Meals", Key: 'e', KeyPos: 1},
	{Name: "To-Dos", Key: 'd', KeyPos: 3},
}

// Tab indexes.
const (
	TabToday = iota
	TabHabits
	TabMood
	TabMeals
	TabTodos
)

func tabStyles() (active, inactive, key, dimKey lipgloss.Style) {
	t := theme.Active
	active = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)
	inactive = lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	key = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)
	dimKey = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)
	return
}

func renderTab(tab Tab, isActive bool) string {
	active, inactive, key, dimKey := tabStyles()
	if isActive {
		return active.Render(tab.Name)
	}

	pad := inactive.Render(" ")
	if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
		return pad + inactive.Render(tab.Name[:tab.KeyPos]) +
			dimKey.Render("[") + key.Render(string(tab.Name[tab.KeyPos])) + dimKey.Render("]") +
			inactive.Render(tab.Name[tab.KeyPos+1:]) + pad
	}
	return pad + inactive.Render(tab.Name) +
		dimKey.Render("[") + key.Render(string(tab.Key)) + dimKey.Render("]") + pad
}

// TabVisualWidth returns the rendered width of a tab, matching RenderTabBar.
func TabVisualWidth(tab Tab, isActive bool) int {
	return lipgloss.Width(renderTab(tab, isActive))
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}

	row := strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	if key >= '1' && key < '1'+rune(len(Tabs)) {
		return int(key - '1')
	}
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
