// Package scoring turns a DailyRecord into a graded daily score.
package scoring

import (
	"math"

	"github.com/theirongolddev/lifedash/internal/model"
)

const (
	// MoodScoreMax and StressScoreMax cap the two wellbeing sub-scores.
	MoodScoreMax   = 5.0
	StressScoreMax = 5.0

	// MoodStressMax is the combined ceiling of the mood and stress sub-scores.
	MoodStressMax = MoodScoreMax + StressScoreMax

	// TodoMax is the ceiling of the to-do sub-score.
	TodoMax = 8.0

	// ScoringMoodDefault is the mood assumed when none is recorded. It is
	// lower than model.DefaultMood, which is what the dashboard displays.
	ScoringMoodDefault = 3

	// ScoringStressDefault is the stress assumed when none is recorded.
	ScoringStressDefault = 5
)

// Result is a computed score with its breakdown.
type Result struct {
	HabitPoints int
	HabitWeight int
	MoodScore   float64
	StressScore float64
	TodoPoints  float64
	TodosDone   int
	TodosTotal  int
	TotalPoints float64
	MaxPoints   float64
	Percentage  int
	Grade       model.Grade
	Message     string
}

// Engine scores records against a fixed habit set.
type Engine struct {
	habits []model.HabitDefinition
}

// New returns an engine for the given habits. The slice is copied.
func New(habits []model.HabitDefinition) *Engine {
	return &Engine{habits: append([]model.HabitDefinition(nil), habits...)}
}

// Habits returns the engine's habit definitions.
func (e *Engine) Habits() []model.HabitDefinition {
	return append([]model.HabitDefinition(nil), e.habits...)
}

// Score computes the daily score. It does not modify rec.
func (e *Engine) Score(rec model.DailyRecord) Result {
	var r Result

	// Habits contribute their raw weight; unknown ids in the record are ignored.
	for _, h := range e.habits {
		r.HabitWeight += h.Weight
		if rec.HabitStates[h.ID] {
			r.HabitPoints += h.Weight
		}
	}

	mood := ScoringMoodDefault
	if rec.Mood != nil {
		mood = *rec.Mood
	}
	stress := ScoringStressDefault
	if rec.Stress != nil {
		stress = *rec.Stress
	}
	r.MoodScore = float64(mood) / model.MoodMax * MoodScoreMax
	r.StressScore = float64(model.StressMax-stress+1) / model.StressMax * StressScoreMax

	r.TodosDone, r.TodosTotal = rec.CompletedTodos()
	if r.TodosTotal > 0 {
		r.TodoPoints = float64(r.TodosDone) / float64(r.TodosTotal) * TodoMax
	}

	r.TotalPoints = float64(r.HabitPoints) + r.MoodScore + r.StressScore + r.TodoPoints
	r.MaxPoints = float64(r.HabitWeight) + MoodStressMax + TodoMax
	r.Percentage = percentage(r.TotalPoints, r.MaxPoints)
	r.Grade, r.Message = GradeFor(r.Percentage)
	return r
}

func percentage(total, max float64) int {
	if max <= 0 {
		return 0
	}
	pct := int(math.Round(total / max * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

var gradeBands = []struct {
	min     int
	grade   model.Grade
	message string
}{
	{90, model.GradeA, "Outstanding day! You crushed your goals."},
	{80, model.GradeB, "Great job! A productive and balanced day."},
	{65, model.GradeC, "Solid effort! Keep pushing for more consistency."},
}

// GradeFor maps a percentage to its grade and message.
func GradeFor(pct int) (model.Grade, string) {
	for _, b := range gradeBands {
		if pct >= b.min {
			return b.grade, b.message
		}
	}
	return model.GradeD, "You have a little work to do today. You got this!"
}
