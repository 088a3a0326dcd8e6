package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/theirongolddev/lifedash/internal/model"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScoreEmptyRecord(t *testing.T) {
	r := New(model.DefaultHabits).Score(model.DailyRecord{})

	if r.HabitPoints != 0 {
		t.Fatalf("HabitPoints = %d, want 0", r.HabitPoints)
	}
	if !approx(r.MoodScore, 3) {
		t.Fatalf("MoodScore = %.2f, want 3 (scoring default mood)", r.MoodScore)
	}
	if !approx(r.StressScore, 3) {
		t.Fatalf("StressScore = %.2f, want 3", r.StressScore)
	}
	if !approx(r.TodoPoints, 0) {
		t.Fatalf("TodoPoints = %.2f, want 0", r.TodoPoints)
	}
	if !approx(r.TotalPoints, 6) || !approx(r.MaxPoints, 30) {
		t.Fatalf("total/max = %.2f/%.2f, want 6/30", r.TotalPoints, r.MaxPoints)
	}
	if r.Percentage != 20 || r.Grade != model.GradeD {
		t.Fatalf("got %d%% %s, want 20%% D", r.Percentage, r.Grade)
	}
}

func TestScorePerfectDay(t *testing.T) {
	rec := model.DailyRecord{
		HabitStates: map[string]bool{"water": true, "exercise": true, "read": true, "sleep": true},
		Mood:        model.IntPtr(5),
		Stress:      model.IntPtr(1),
		Todos:       []model.Todo{{Text: "a", Done: true}, {Text: "b", Done: true}},
	}
	r := New(model.DefaultHabits).Score(rec)

	if r.HabitPoints != 12 || !approx(r.MoodScore, 5) || !approx(r.StressScore, 5) || !approx(r.TodoPoints, 8) {
		t.Fatalf("breakdown = %+v", r)
	}
	if r.Percentage != 100 || r.Grade != model.GradeA {
		t.Fatalf("got %d%% %s, want 100%% A", r.Percentage, r.Grade)
	}
	if r.Message != "Outstanding day! You crushed your goals." {
		t.Fatalf("Message = %q", r.Message)
	}
}

func TestStressScale(t *testing.T) {
	e := New(model.DefaultHabits)
	low := e.Score(model.DailyRecord{Stress: model.IntPtr(1)})
	high := e.Score(model.DailyRecord{Stress: model.IntPtr(10)})
	if !approx(low.StressScore, 5) {
		t.Fatalf("stress 1 -> %.2f, want 5", low.StressScore)
	}
	if !approx(high.StressScore, 0.5) {
		t.Fatalf("stress 10 -> %.2f, want 0.5", high.StressScore)
	}
}

func TestRecordedMoodOverridesScoringDefault(t *testing.T) {
	r := New(model.DefaultHabits).Score(model.DailyRecord{Mood: model.IntPtr(1)})
	if !approx(r.MoodScore, 1) {
		t.Fatalf("MoodScore = %.2f, want 1", r.MoodScore)
	}
}

func TestUnknownHabitIgnored(t *testing.T) {
	e := New(model.DefaultHabits)
	base := e.Score(model.DailyRecord{})
	withUnknown := e.Score(model.DailyRecord{HabitStates: map[string]bool{"meditate": true}})
	if base != withUnknown {
		t.Fatalf("unknown habit changed score: %+v vs %+v", base, withUnknown)
	}
}

func TestTodoFraction(t *testing.T) {
	rec := model.DailyRecord{Todos: []model.Todo{{Done: true}, {}, {}, {Done: true}}}
	r := New(model.DefaultHabits).Score(rec)
	if !approx(r.TodoPoints, 4) || r.TodosDone != 2 || r.TodosTotal != 4 {
		t.Fatalf("todo breakdown = %.2f (%d/%d), want 4 (2/4)", r.TodoPoints, r.TodosDone, r.TodosTotal)
	}
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		pct  int
		want model.Grade
	}{
		{100, model.GradeA},
		{90, model.GradeA},
		{89, model.GradeB},
		{80, model.GradeB},
		{79, model.GradeC},
		{65, model.GradeC},
		{64, model.GradeD},
		{0, model.GradeD},
	}
	for _, tt := range tests {
		if got, _ := GradeFor(tt.pct); got != tt.want {
			t.Errorf("GradeFor(%d) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestPercentageAlwaysInRange(t *testing.T) {
	e := New(model.DefaultHabits)
	for mask := 0; mask < 16; mask++ {
		states := map[string]bool{}
		for i, h := range model.DefaultHabits {
			states[h.ID] = mask&(1<<i) != 0
		}
		for mood := model.MoodMin; mood <= model.MoodMax; mood++ {
			for stress := model.StressMin; stress <= model.StressMax; stress++ {
				for done := 0; done <= 3; done++ {
					todos := make([]model.Todo, 3)
					for i := 0; i < done; i++ {
						todos[i].Done = true
					}
					rec := model.DailyRecord{
						HabitStates: states,
						Mood:        model.IntPtr(mood),
						Stress:      model.IntPtr(stress),
						Todos:       todos,
					}
					r := e.Score(rec)
					if r.Percentage < 0 || r.Percentage > 100 {
						t.Fatalf("percentage %d out of range for %+v", r.Percentage, rec)
					}
				}
			}
		}
	}
}

func TestHabitPointsMonotonic(t *testing.T) {
	e := New(model.DefaultHabits)
	states := map[string]bool{}
	prev := e.Score(model.DailyRecord{HabitStates: states}).HabitPoints

	for _, h := range model.DefaultHabits {
		states[h.ID] = true
		got := e.Score(model.DailyRecord{HabitStates: states}).HabitPoints
		if got < prev {
			t.Fatalf("marking %s dropped habit points %d -> %d", h.ID, prev, got)
		}
		prev = got
	}
	if prev != 12 {
		t.Fatalf("all habits done = %d points, want 12", prev)
	}
}

func TestScoreIsPure(t *testing.T) {
	e := New(model.DefaultHabits)
	rec := model.DailyRecord{
		HabitStates: map[string]bool{"read": true},
		Mood:        model.IntPtr(4),
		Todos:       []model.Todo{{Text: "a", Done: true}, {Text: "b"}},
	}
	before := rec.Clone()

	first := e.Score(rec)
	second := e.Score(rec)
	if first != second {
		t.Fatalf("Score not deterministic: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(rec, before) {
		t.Fatal("Score mutated its input")
	}
}

func TestNoHabitsConfigured(t *testing.T) {
	r := New(nil).Score(model.DailyRecord{Mood: model.IntPtr(5), Stress: model.IntPtr(1)})
	if r.HabitWeight != 0 || !approx(r.MaxPoints, 18) {
		t.Fatalf("weight/max = %d/%.0f, want 0/18", r.HabitWeight, r.MaxPoints)
	}
	if r.Percentage != 56 {
		t.Fatalf("Percentage = %d, want 56", r.Percentage)
	}
}
