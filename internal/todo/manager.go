// Package todo manages the ordered to-do list inside the DailyRecord.
//
// Items are addressed by their 0-based position. Deleting an item shifts
// every later item down by one, so an index must be re-resolved from the
// current list after any mutation, never cached across one.
package todo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/record"
)

// Manager performs read-modify-write operations on the to-do list.
// Every mutating call persists the whole record before returning.
type Manager struct {
	repo  *record.Repository
	newID func() string
}

// New returns a Manager over repo.
func New(repo *record.Repository) *Manager {
	return &Manager{repo: repo, newID: uuid.NewString}
}

// List returns the current to-do list.
func (m *Manager) List() ([]model.Todo, error) {
	rec, err := m.repo.Load()
	if err != nil {
		return nil, err
	}
	return rec.Todos, nil
}

// Add appends text, trimmed, as a new open item. Blank text is ignored.
func (m *Manager) Add(text string) ([]model.Todo, error) {
	rec, err := m.repo.Update(func(rec *model.DailyRecord) (bool, error) {
		if strings.TrimSpace(text) == "" {
			return false, nil
		}
		rec.Todos, _ = Append(rec.Todos, text, m.newID())
		return true, nil
	})
	return rec.Todos, err
}

// Toggle flips the done state of the item at index. Out-of-range indices
// are ignored.
func (m *Manager) Toggle(index int) ([]model.Todo, error) {
	rec, err := m.repo.Update(func(rec *model.DailyRecord) (bool, error) {
		return ToggleAt(rec.Todos, index), nil
	})
	return rec.Todos, err
}

// Delete removes the item at index. Out-of-range indices are ignored.
func (m *Manager) Delete(index int) ([]model.Todo, error) {
	rec, err := m.repo.Update(func(rec *model.DailyRecord) (bool, error) {
		todos, ok := RemoveAt(rec.Todos, index)
		rec.Todos = todos
		return ok, nil
	})
	return rec.Todos, err
}

// Clear removes every item, or only completed ones when onlyDone is set.
func (m *Manager) Clear(onlyDone bool) ([]model.Todo, error) {
	rec, err := m.repo.Update(func(rec *model.DailyRecord) (bool, error) {
		before := len(rec.Todos)
		if !onlyDone {
			rec.Todos = nil
			return before > 0, nil
		}
		kept := rec.Todos[:0:0]
		for _, t := range rec.Todos {
			if !t.Done {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			kept = nil
		}
		rec.Todos = kept
		return len(kept) != before, nil
	})
	return rec.Todos, err
}

// IndexOf returns the current position of the item with the given id, or -1.
func IndexOf(todos []model.Todo, id string) int {
	if id == "" {
		return -1
	}
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Append returns todos with a new open item for text. ok is false, and
// todos is returned unchanged, when text is blank.
func Append(todos []model.Todo, text, id string) ([]model.Todo, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return todos, false
	}
	return append(todos, model.Todo{ID: id, Text: text}), true
}

// ToggleAt flips todos[index].Done in place and reports whether it did.
func ToggleAt(todos []model.Todo, index int) bool {
	if index < 0 || index >= len(todos) {
		return false
	}
	todos[index].Done = !todos[index].Done
	return true
}

// RemoveAt returns todos without the item at index.
func RemoveAt(todos []model.Todo, index int) ([]model.Todo, bool) {
	if index < 0 || index >= len(todos) {
		return todos, false
	}
	out := append(todos[:index:index], todos[index+1:]...)
	if len(out) == 0 {
		out = nil
	}
	return out, true
}
