package dashboard

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/store"
)

const (
	historyDateLayout = "2006-01-02"

	// historyLimit caps the stored history at roughly one year of days.
	historyLimit = 366
)

// HistoryEntry is the last score computed on a calendar day.
type HistoryEntry struct {
	Date       string      `json:"date" yaml:"date"`
	Grade      model.Grade `json:"grade" yaml:"grade"`
	Percentage int         `json:"percentage" yaml:"percentage"`
}

// Day parses Date in the local time zone.
func (e HistoryEntry) Day() time.Time {
	d, _ := time.ParseInLocation(historyDateLayout, e.Date, time.Local)
	return d
}

// History returns entries from the last days calendar days, oldest first.
// days <= 0 returns everything stored.
func (s *Service) History(days int) ([]HistoryEntry, error) {
	entries, err := s.loadHistory()
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return entries, nil
	}

	since := s.now().AddDate(0, 0, -(days - 1)).Format(historyDateLayout)
	i := sort.Search(len(entries), func(i int) bool { return entries[i].Date >= since })
	return entries[i:], nil
}

// loadHistory reads the stored history. A malformed blob or entry is
// dropped rather than reported.
func (s *Service) loadHistory() ([]HistoryEntry, error) {
	raw, ok, err := s.st.Get(store.KeyHistory)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var stored []HistoryEntry
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, nil
	}

	entries := stored[:0]
	for _, e := range stored {
		if _, err := time.Parse(historyDateLayout, e.Date); err != nil {
			continue
		}
		if !e.Grade.Valid() || e.Percentage < 0 || e.Percentage > 100 {
			continue
		}
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	return entries, nil
}

func (s *Service) appendHistory(e HistoryEntry) error {
	entries, err := s.loadHistory()
	if err != nil {
		return err
	}
	entries = upsertHistory(entries, e)

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := s.st.Set(store.KeyHistory, string(data)); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// upsertHistory inserts e keeping entries sorted by date, replacing any
// entry for the same day, and trims to historyLimit newest entries.
func upsertHistory(entries []HistoryEntry, e HistoryEntry) []HistoryEntry {
	i := sort.Search(len(entries), func(i int) bool { return entries[i].Date >= e.Date })
	switch {
	case i < len(entries) && entries[i].Date == e.Date:
		entries[i] = e
	default:
		entries = append(entries, HistoryEntry{})
		copy(entries[i+1:], entries[i:])
		entries[i] = e
	}
	if len(entries) > historyLimit {
		entries = entries[len(entries)-historyLimit:]
	}
	return entries
}

// HistoryStats summarizes a run of history entries.
type HistoryStats struct {
	Days        int
	AveragePct  float64
	Best        HistoryEntry
	Worst       HistoryEntry
	GradeCounts map[model.Grade]int
}

// Summarize aggregates entries. The zero value is returned for none.
func Summarize(entries []HistoryEntry) HistoryStats {
	stats := HistoryStats{GradeCounts: make(map[model.Grade]int)}
	if len(entries) == 0 {
		return stats
	}

	total := 0
	stats.Best, stats.Worst = entries[0], entries[0]
	for _, e := range entries {
		total += e.Percentage
		stats.GradeCounts[e.Grade]++
		if e.Percentage > stats.Best.Percentage {
			stats.Best = e
		}
		if e.Percentage < stats.Worst.Percentage {
			stats.Worst = e
		}
	}
	stats.Days = len(entries)
	stats.AveragePct = float64(total) / float64(len(entries))
	return stats
}
