package record

import (
	"errors"
	"reflect"
	"testing"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/store"
)

// failingStore fails every call with err.
type failingStore struct {
	err     error
	getOK   bool
	written int
}

func (f *failingStore) Get(string) (string, bool, error) {
	if f.getOK {
		return "{}", true, nil
	}
	return "", false, f.err
}

func (f *failingStore) Set(string, string) error {
	f.written++
	return f.err
}

func TestLoadMissingIsEmpty(t *testing.T) {
	mem := store.NewMemory()
	rec, err := New(mem).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(rec, model.DailyRecord{}) {
		t.Fatalf("rec = %+v, want empty", rec)
	}
	if _, ok, _ := mem.Get(store.KeyRecord); ok {
		t.Fatal("Load wrote to the store")
	}
}

func TestLoadGarbageIsEmpty(t *testing.T) {
	mem := store.NewMemory()
	_ = mem.Set(store.KeyRecord, "not json at all")

	rec, err := New(mem).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.MoodOrDefault() != model.DefaultMood || len(rec.Todos) != 0 {
		t.Fatalf("rec = %+v, want defaults", rec)
	}
	if v, _, _ := mem.Get(store.KeyRecord); v != "not json at all" {
		t.Fatalf("Load modified stored value: %q", v)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := New(store.NewMemory())
	rec := model.DailyRecord{
		HabitStates: map[string]bool{"read": true},
		Mood:        model.IntPtr(1),
		Stress:      model.IntPtr(10),
		Meals:       model.Meals{Dinner: "Soup"},
		Todos:       []model.Todo{{Text: "x"}, {Text: "y", Done: true}},
		DailyScore:  &model.DailyScore{Grade: model.GradeD, Percentage: 20, Date: "Mon Oct 19 2026"},
	}
	if err := repo.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
}

func TestUpdateSkipsWriteWhenUnchanged(t *testing.T) {
	fs := &failingStore{getOK: true, err: errors.New("disk full")}
	repo := New(fs)

	_, err := repo.Update(func(*model.DailyRecord) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("unchanged update: %v", err)
	}
	if fs.written != 0 {
		t.Fatalf("store written %d times, want 0", fs.written)
	}
}

func TestStoreErrorsSurface(t *testing.T) {
	diskFull := errors.New("disk full")

	if _, err := New(&failingStore{err: diskFull}).Load(); !errors.Is(err, diskFull) {
		t.Fatalf("Load err = %v, want wrapped disk full", err)
	}

	repo := New(&failingStore{getOK: true, err: diskFull})
	if err := repo.Save(model.DailyRecord{}); !errors.Is(err, diskFull) {
		t.Fatalf("Save err = %v, want wrapped disk full", err)
	}
	_, err := repo.Update(func(rec *model.DailyRecord) (bool, error) {
		rec.SetHabit("water", true)
		return true, nil
	})
	if !errors.Is(err, diskFull) {
		t.Fatalf("Update err = %v, want wrapped disk full", err)
	}
}
