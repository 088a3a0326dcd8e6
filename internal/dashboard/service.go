// Package dashboard is the core facade the presentation layer talks to.
//
// A Service owns no state of its own beyond its collaborators; every call
// is a synchronous read-modify-write against the injected store. It is meant
// for a single caller at a time.
package dashboard

import (
	"time"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/record"
	"github.com/theirongolddev/lifedash/internal/scoring"
	"github.com/theirongolddev/lifedash/internal/store"
	"github.com/theirongolddev/lifedash/internal/todo"
)

// ScoreDateLayout formats DailyScore.Date, e.g. "Mon Oct 19 2026".
const ScoreDateLayout = "Mon Jan 02 2006"

// SimplePlan is the canned meal plan written by GenerateSimplePlan.
var SimplePlan = model.Meals{
	Breakfast: "Oatmeal, Fruit",
	Lunch:     "Chicken Salad",
	Dinner:    "Stir-fry Vegetables",
	Calories:  "1800",
}

// Service implements the dashboard operations over a Store.
type Service struct {
	st     store.Store
	repo   *record.Repository
	todos  *todo.Manager
	engine *scoring.Engine
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for score dates and history.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New returns a Service persisting to st and scoring against habits.
func New(st store.Store, habits []model.HabitDefinition, opts ...Option) *Service {
	repo := record.New(st)
	s := &Service{
		st:     st,
		repo:   repo,
		todos:  todo.New(repo),
		engine: scoring.New(habits),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Habits returns the habit definitions in display order.
func (s *Service) Habits() []model.HabitDefinition {
	return s.engine.Habits()
}

// LoadRecord returns the current record with defaults applied.
func (s *Service) LoadRecord() (model.DailyRecord, error) {
	return s.repo.Load()
}

// SaveHabitState records whether habit id is done today. Ids outside the
// configured set are stored but never scored.
func (s *Service) SaveHabitState(id string, done bool) error {
	_, err := s.repo.Update(func(rec *model.DailyRecord) (bool, error) {
		rec.SetHabit(id, done)
		return true, nil
	})
	return err
}

// SaveMoodStress stores mood (1-5) and stress (1-10). Values outside those
// scales return model.ErrOutOfRange and nothing is written.
func (s *Service) SaveMoodStress(mood, stress int) error {
	_, err := s.repo.Update(func(rec *model.DailyRecord) (bool, error) {
		if err := rec.SetMoodStress(mood, stress); err != nil {
			return false, err
		}
		return true, nil
	})
	return err
}

// SaveMeals replaces the meal plan.
func (s *Service) SaveMeals(m model.Meals) error {
	_, err := s.repo.Update(func(rec *model.DailyRecord) (bool, error) {
		rec.Meals = m
		return true, nil
	})
	return err
}

// GenerateSimplePlan saves SimplePlan as today's meals.
func (s *Service) GenerateSimplePlan() (model.Meals, error) {
	if err := s.SaveMeals(SimplePlan); err != nil {
		return model.Meals{}, err
	}
	return SimplePlan, nil
}

// Todos returns the ordered to-do list.
func (s *Service) Todos() ([]model.Todo, error) {
	return s.todos.List()
}

// AddTodo appends a to-do; blank text is ignored.
func (s *Service) AddTodo(text string) ([]model.Todo, error) {
	return s.todos.Add(text)
}

// ToggleTodo flips the item at index; out-of-range is ignored.
func (s *Service) ToggleTodo(index int) ([]model.Todo, error) {
	return s.todos.Toggle(index)
}

// DeleteTodo removes the item at index; out-of-range is ignored.
func (s *Service) DeleteTodo(index int) ([]model.Todo, error) {
	return s.todos.Delete(index)
}

// ClearTodos removes all items, or only completed ones.
func (s *Service) ClearTodos(onlyDone bool) ([]model.Todo, error) {
	return s.todos.Clear(onlyDone)
}

// Preview scores the current record without persisting anything.
func (s *Service) Preview() (scoring.Result, error) {
	rec, err := s.repo.Load()
	if err != nil {
		return scoring.Result{}, err
	}
	return s.engine.Score(rec), nil
}

// Score is a computed and persisted daily score.
type Score struct {
	scoring.Result
	Date string
}

// ComputeScore scores the current record, stores the result in the
// record's dailyScore slot (overwriting any previous one) and appends it to
// the per-day history.
func (s *Service) ComputeScore() (Score, error) {
	now := s.now()
	var res scoring.Result

	_, err := s.repo.Update(func(rec *model.DailyRecord) (bool, error) {
		res = s.engine.Score(*rec)
		rec.DailyScore = &model.DailyScore{
			Grade:      res.Grade,
			Percentage: res.Percentage,
			Date:       now.Format(ScoreDateLayout),
		}
		return true, nil
	})
	if err != nil {
		return Score{}, err
	}

	entry := HistoryEntry{
		Date:       now.Format(historyDateLayout),
		Grade:      res.Grade,
		Percentage: res.Percentage,
	}
	if err := s.appendHistory(entry); err != nil {
		return Score{}, err
	}

	return Score{Result: res, Date: now.Format(ScoreDateLayout)}, nil
}

// Reset replaces the record with an empty one. Theme and history are kept.
func (s *Service) Reset() error {
	return s.repo.Save(model.DailyRecord{})
}
