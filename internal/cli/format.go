// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatPercent formats a whole-number percentage.
func FormatPercent(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// FormatPoints formats earned points out of a maximum, keeping one
// decimal only when the value is fractional.
// e.g., (7, 12) -> "7/12", (4.5, 8) -> "4.5/8"
func FormatPoints(got, max float64) string {
	return trimFloat(got) + "/" + trimFloat(max)
}

func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatCheck renders a boolean as a checkbox.
func FormatCheck(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// FormatLevel formats an optional 1..max level, "-" when unset.
func FormatLevel(v *int, max int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d/%d", *v, max)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatDay formats a calendar day as "Mon 01-02".
func FormatDay(t time.Time) string {
	return FormatDayOfWeek(int(t.Weekday())) + " " + t.Format("01-02")
}

// Truncate shortens s to at most n runes, marking the cut with "…".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
