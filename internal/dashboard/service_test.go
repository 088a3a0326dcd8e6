package dashboard

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/store"
)

type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time { return c.t }

func newTestService(t *testing.T) (*Service, *store.Memory, *fixedClock) {
	t.Helper()
	mem := store.NewMemory()
	clock := &fixedClock{t: time.Date(2026, time.October, 19, 21, 30, 0, 0, time.Local)}
	return New(mem, model.DefaultHabits, WithClock(clock.now)), mem, clock
}

// brokenStore reads fine and fails every write.
type brokenStore struct{ *store.Memory }

var errQuota = errors.New("quota exceeded")

func (brokenStore) Set(string, string) error { return errQuota }

func TestComputeScoreEmptyRecord(t *testing.T) {
	svc, _, _ := newTestService(t)

	score, err := svc.ComputeScore()
	if err != nil {
		t.Fatalf("ComputeScore: %v", err)
	}
	if score.Percentage != 20 || score.Grade != model.GradeD {
		t.Fatalf("score = %d%% %s, want 20%% D", score.Percentage, score.Grade)
	}
	if score.Message != "You have a little work to do today. You got this!" {
		t.Fatalf("Message = %q", score.Message)
	}

	rec, err := svc.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	want := &model.DailyScore{Grade: model.GradeD, Percentage: 20, Date: "Mon Oct 19 2026"}
	if !reflect.DeepEqual(rec.DailyScore, want) {
		t.Fatalf("persisted dailyScore = %+v, want %+v", rec.DailyScore, want)
	}
	// Loading for display still shows the load-time mood default.
	if rec.MoodOrDefault() != 5 {
		t.Fatalf("display mood = %d, want 5", rec.MoodOrDefault())
	}
}

func TestComputeScorePerfectDay(t *testing.T) {
	svc, _, _ := newTestService(t)
	for _, h := range svc.Habits() {
		if err := svc.SaveHabitState(h.ID, true); err != nil {
			t.Fatalf("SaveHabitState: %v", err)
		}
	}
	if err := svc.SaveMoodStress(5, 1); err != nil {
		t.Fatalf("SaveMoodStress: %v", err)
	}
	for _, text := range []string{"a", "b"} {
		if _, err := svc.AddTodo(text); err != nil {
			t.Fatalf("AddTodo: %v", err)
		}
	}
	_, _ = svc.ToggleTodo(0)
	_, _ = svc.ToggleTodo(1)

	score, err := svc.ComputeScore()
	if err != nil {
		t.Fatalf("ComputeScore: %v", err)
	}
	if score.Percentage != 100 || score.Grade != model.GradeA {
		t.Fatalf("score = %d%% %s, want 100%% A", score.Percentage, score.Grade)
	}
}

func TestComputeScoreOverwrites(t *testing.T) {
	svc, _, clock := newTestService(t)

	if _, err := svc.ComputeScore(); err != nil {
		t.Fatalf("first: %v", err)
	}
	_ = svc.SaveMoodStress(5, 1)
	clock.t = clock.t.AddDate(0, 0, 1)
	second, err := svc.ComputeScore()
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	rec, _ := svc.LoadRecord()
	if rec.DailyScore.Percentage != second.Percentage || rec.DailyScore.Date != "Tue Oct 20 2026" {
		t.Fatalf("dailyScore = %+v, want latest computation", rec.DailyScore)
	}
}

func TestPreviewDoesNotPersist(t *testing.T) {
	svc, mem, _ := newTestService(t)

	res, err := svc.Preview()
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if res.Percentage != 20 {
		t.Fatalf("Preview percentage = %d, want 20", res.Percentage)
	}
	if _, ok, _ := mem.Get(store.KeyRecord); ok {
		t.Fatal("Preview wrote the record")
	}
}

func TestSaveMoodStressRejectsOutOfRange(t *testing.T) {
	svc, mem, _ := newTestService(t)

	if err := svc.SaveMoodStress(6, 5); !errors.Is(err, model.ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
	if _, ok, _ := mem.Get(store.KeyRecord); ok {
		t.Fatal("rejected mood was written")
	}
}

func TestFeaturesOnlyTouchTheirOwnField(t *testing.T) {
	svc, _, _ := newTestService(t)

	_ = svc.SaveHabitState("read", true)
	_ = svc.SaveMoodStress(2, 8)
	if _, err := svc.GenerateSimplePlan(); err != nil {
		t.Fatalf("GenerateSimplePlan: %v", err)
	}
	_, _ = svc.AddTodo("call mom")
	_ = svc.SaveHabitState("legacy-habit", true)

	rec, err := svc.LoadRecord()
	if err != nil {
		t.Fatalf("LoadRecord: %v", err)
	}
	if !rec.HabitDone("read") || !rec.HabitDone("legacy-habit") {
		t.Fatalf("habitStates = %v", rec.HabitStates)
	}
	if *rec.Mood != 2 || *rec.Stress != 8 {
		t.Fatalf("mood/stress = %d/%d", *rec.Mood, *rec.Stress)
	}
	if rec.Meals != SimplePlan {
		t.Fatalf("meals = %+v", rec.Meals)
	}
	if len(rec.Todos) != 1 || rec.Todos[0].Text != "call mom" || rec.Todos[0].ID == "" {
		t.Fatalf("todos = %+v", rec.Todos)
	}
}

func TestStorageFailuresSurface(t *testing.T) {
	svc := New(brokenStore{store.NewMemory()}, model.DefaultHabits)

	checks := map[string]error{
		"SaveHabitState": svc.SaveHabitState("water", true),
		"SaveMoodStress": svc.SaveMoodStress(3, 3),
		"SaveMeals":      svc.SaveMeals(model.Meals{Lunch: "x"}),
		"SetTheme":       svc.SetTheme(ThemeDark),
		"Reset":          svc.Reset(),
	}
	_, checks["AddTodo"] = svc.AddTodo("x")
	_, checks["ComputeScore"] = svc.ComputeScore()

	for name, err := range checks {
		if !errors.Is(err, errQuota) {
			t.Errorf("%s err = %v, want quota exceeded", name, err)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	svc, mem, _ := newTestService(t)

	if th, _ := svc.Theme(); th != ThemeLight {
		t.Fatalf("default theme = %s, want light", th)
	}
	th, err := svc.ToggleTheme()
	if err != nil || th != ThemeDark {
		t.Fatalf("toggle = %s, %v; want dark", th, err)
	}
	if v, _, _ := mem.Get(store.KeyTheme); v != "dark" {
		t.Fatalf("stored theme = %q, want dark", v)
	}
	if th, _ := svc.ToggleTheme(); th != ThemeLight {
		t.Fatalf("second toggle = %s, want light", th)
	}

	_ = mem.Set(store.KeyTheme, "solarized")
	if th, _ := svc.Theme(); th != ThemeLight {
		t.Fatalf("unknown stored theme read as %s, want light", th)
	}
	if err := svc.SetTheme("sepia"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("SetTheme(sepia) err = %v", err)
	}
}

func TestParseTheme(t *testing.T) {
	if th, err := ParseTheme(" DARK "); err != nil || th != ThemeDark {
		t.Fatalf("ParseTheme(DARK) = %s, %v", th, err)
	}
	if _, err := ParseTheme(""); !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("ParseTheme(\"\") err = %v", err)
	}
}

func TestResetKeepsThemeAndHistory(t *testing.T) {
	svc, _, _ := newTestService(t)
	_ = svc.SetTheme(ThemeDark)
	_ = svc.SaveMoodStress(1, 1)
	if _, err := svc.ComputeScore(); err != nil {
		t.Fatalf("ComputeScore: %v", err)
	}

	if err := svc.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	rec, _ := svc.LoadRecord()
	if rec.Mood != nil || rec.DailyScore != nil {
		t.Fatalf("record not reset: %+v", rec)
	}
	if th, _ := svc.Theme(); th != ThemeDark {
		t.Fatalf("theme = %s after reset", th)
	}
	if h, _ := svc.History(0); len(h) != 1 {
		t.Fatalf("history len = %d after reset, want 1", len(h))
	}
}

func TestRecordJSONUsesWireNames(t *testing.T) {
	svc, mem, _ := newTestService(t)
	_ = svc.SaveMoodStress(4, 2)
	_ = svc.SaveHabitState("water", true)

	raw, _, _ := mem.Get(store.KeyRecord)
	for _, field := range []string{`"habitStates"`, `"mood":4`, `"stress":2`, `"meals"`} {
		if !strings.Contains(raw, field) {
			t.Fatalf("stored record %s missing %s", raw, field)
		}
	}
}
