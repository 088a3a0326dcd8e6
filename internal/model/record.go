// Package model defines the lifedash domain types and their wire format.
package model

import (
	"errors"
	"fmt"
)

// Mood and stress bounds and load-time defaults.
const (
	MoodMin       = 1
	MoodMax       = 5
	StressMin     = 1
	StressMax     = 10
	DefaultMood   = 5
	DefaultStress = 5
)

// ErrOutOfRange is returned when a mood or stress value is outside its scale.
var ErrOutOfRange = errors.New("value out of range")

// Grade is the letter derived from a daily score percentage.
type Grade string

// Grades, best first.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Valid reports whether g is one of the four known grades.
func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD:
		return true
	}
	return false
}

// Meals holds the planned meals for the day. Calories is free text, as entered.
type Meals struct {
	Breakfast string `json:"breakfast" yaml:"breakfast"`
	Lunch     string `json:"lunch" yaml:"lunch"`
	Dinner    string `json:"dinner" yaml:"dinner"`
	Calories  string `json:"calories" yaml:"calories"`
}

// Todo is one entry of the ordered to-do list. Its position in the list is
// the key used to manipulate it; ID is a stable handle for re-resolving an
// item after the list changes and may be empty for older records.
type Todo struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}

// DailyScore is the last computed score.
type DailyScore struct {
	Grade      Grade  `json:"grade" yaml:"grade"`
	Percentage int    `json:"percentage" yaml:"percentage"`
	Date       string `json:"date" yaml:"date"`
}

// DailyRecord is the single persisted aggregate.
//
// Mood and Stress are nil when never set. Display code should use
// MoodOrDefault and StressOrDefault; scoring applies its own defaults.
type DailyRecord struct {
	HabitStates map[string]bool `json:"habitStates,omitempty" yaml:"habitStates,omitempty"`
	Mood        *int            `json:"mood,omitempty" yaml:"mood,omitempty"`
	Stress      *int            `json:"stress,omitempty" yaml:"stress,omitempty"`
	Meals       Meals           `json:"meals" yaml:"meals"`
	Todos       []Todo          `json:"todos,omitempty" yaml:"todos,omitempty"`
	DailyScore  *DailyScore     `json:"dailyScore,omitempty" yaml:"dailyScore,omitempty"`

	// extra keeps top-level fields this version does not know about so a
	// read-modify-write does not drop them.
	extra map[string][]byte
}

// MoodOrDefault returns the mood, or DefaultMood when unset.
func (r DailyRecord) MoodOrDefault() int {
	if r.Mood == nil {
		return DefaultMood
	}
	return *r.Mood
}

// StressOrDefault returns the stress level, or DefaultStress when unset.
func (r DailyRecord) StressOrDefault() int {
	if r.Stress == nil {
		return DefaultStress
	}
	return *r.Stress
}

// HabitDone reports the completion state of habit id.
func (r DailyRecord) HabitDone(id string) bool {
	return r.HabitStates[id]
}

// CompletedTodos returns the number of done items and the list length.
func (r DailyRecord) CompletedTodos() (done, total int) {
	for _, t := range r.Todos {
		if t.Done {
			done++
		}
	}
	return done, len(r.Todos)
}

// Clone returns a deep copy of r.
func (r DailyRecord) Clone() DailyRecord {
	out := r
	if r.HabitStates != nil {
		out.HabitStates = make(map[string]bool, len(r.HabitStates))
		for k, v := range r.HabitStates {
			out.HabitStates[k] = v
		}
	}
	if r.Mood != nil {
		m := *r.Mood
		out.Mood = &m
	}
	if r.Stress != nil {
		s := *r.Stress
		out.Stress = &s
	}
	if r.Todos != nil {
		out.Todos = append([]Todo(nil), r.Todos...)
	}
	if r.DailyScore != nil {
		ds := *r.DailyScore
		out.DailyScore = &ds
	}
	if r.extra != nil {
		out.extra = make(map[string][]byte, len(r.extra))
		for k, v := range r.extra {
			out.extra[k] = append([]byte(nil), v...)
		}
	}
	return out
}

// SetHabit records the completion state of habit id.
func (r *DailyRecord) SetHabit(id string, done bool) {
	if r.HabitStates == nil {
		r.HabitStates = make(map[string]bool)
	}
	r.HabitStates[id] = done
}

// SetMoodStress validates and stores mood and stress.
func (r *DailyRecord) SetMoodStress(mood, stress int) error {
	if mood < MoodMin || mood > MoodMax {
		return fmt.Errorf("mood %d not in [%d,%d]: %w", mood, MoodMin, MoodMax, ErrOutOfRange)
	}
	if stress < StressMin || stress > StressMax {
		return fmt.Errorf("stress %d not in [%d,%d]: %w", stress, StressMin, StressMax, ErrOutOfRange)
	}
	r.Mood = &mood
	r.Stress = &stress
	return nil
}

// IntPtr is a convenience for building records in code and tests.
func IntPtr(v int) *int { return &v }
