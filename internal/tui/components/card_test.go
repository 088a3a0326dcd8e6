package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/lifedash/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, total := range []int{80, 81, 119, 180} {
		for n := 1; n <= 5; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if LayoutRow(80, 0) != nil {
		t.Fatal("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowPadsShortCards(t *testing.T) {
	theme.SetActive("flexoki", true)

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	// Padding below the short card must carry background styling.
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Fatalf("line %d has no ANSI codes: %q", i, lines[i])
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki", false)

	row := MetricCardRow([]Metric{
		{Label: "Score", Value: "72%"},
		{Label: "Habits", Value: "7/12"},
		{Label: "To-dos", Value: "2/3", Detail: "1 left"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Fatalf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'t', TabToday},
		{'h', TabHabits},
		{'e', TabMeals},
		{'d', TabTodos},
		{'1', TabToday},
		{'5', TabTodos},
		{'6', -1},
		{'z', -1},
	}
	for _, tt := range tests {
		if got := TabIdxByKey(tt.key); got != tt.want {
			t.Fatalf("TabIdxByKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestScoreChartHeight(t *testing.T) {
	theme.SetActive("flexoki", true)

	out := ScoreChart([]int{20, 55, 100}, []string{"17", "18", "19"}, 40, 6)
	lines := strings.Split(out, "\n")
	// 6 bar rows + axis + labels
	if len(lines) != 8 {
		t.Fatalf("chart has %d lines, want 8:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[len(lines)-1], "19") {
		t.Fatalf("label row missing last day: %q", lines[len(lines)-1])
	}
}

func TestScoreChartFallsBackToSparkline(t *testing.T) {
	theme.SetActive("terminal", true)
	if out := ScoreChart([]int{10, 90}, nil, 10, 2); strings.Contains(out, "\n") {
		t.Fatalf("small chart should be a one-line sparkline, got %q", out)
	}
}
