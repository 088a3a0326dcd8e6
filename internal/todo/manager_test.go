package todo

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/record"
	"github.com/theirongolddev/lifedash/internal/store"
)

// countingStore wraps Memory and counts writes.
type countingStore struct {
	*store.Memory
	sets int
	err  error
}

func (c *countingStore) Set(key, value string) error {
	c.sets++
	if c.err != nil {
		return c.err
	}
	return c.Memory.Set(key, value)
}

func newTestManager(t *testing.T) (*Manager, *countingStore) {
	t.Helper()
	st := &countingStore{Memory: store.NewMemory()}
	m := New(record.New(st))
	n := 0
	m.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return m, st
}

func texts(todos []model.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.Text
	}
	return out
}

func mustAdd(t *testing.T, m *Manager, text string) {
	t.Helper()
	if _, err := m.Add(text); err != nil {
		t.Fatalf("add %q: %v", text, err)
	}
}

func TestAddBlankIsNoop(t *testing.T) {
	m, st := newTestManager(t)

	for _, text := range []string{"", "   ", "\t\n"} {
		todos, err := m.Add(text)
		if err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
		if len(todos) != 0 {
			t.Fatalf("add %q appended: %+v", text, todos)
		}
	}
	if st.sets != 0 {
		t.Fatalf("blank adds wrote the store %d times", st.sets)
	}
}

func TestAddTrimsAndAppends(t *testing.T) {
	m, _ := newTestManager(t)
	mustAdd(t, m, "first")
	todos, err := m.Add(" x ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	want := []model.Todo{{ID: "id-1", Text: "first"}, {ID: "id-2", Text: "x"}}
	if !reflect.DeepEqual(todos, want) {
		t.Fatalf("todos = %+v, want %+v", todos, want)
	}

	listed, err := m.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(listed, want) {
		t.Fatalf("persisted todos = %+v, want %+v", listed, want)
	}
}

func TestToggle(t *testing.T) {
	m, st := newTestManager(t)
	mustAdd(t, m, "a")

	todos, err := m.Toggle(0)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !todos[0].Done {
		t.Fatal("item not marked done")
	}
	todos, _ = m.Toggle(0)
	if todos[0].Done {
		t.Fatal("second toggle did not reopen item")
	}

	writes := st.sets
	for _, idx := range []int{-1, 1, 99} {
		if _, err := m.Toggle(idx); err != nil {
			t.Fatalf("toggle(%d): %v", idx, err)
		}
	}
	if st.sets != writes {
		t.Fatal("out-of-range toggle wrote the store")
	}
}

func TestDeleteShiftsIndices(t *testing.T) {
	m, _ := newTestManager(t)
	for _, s := range []string{"a", "b", "c"} {
		mustAdd(t, m, s)
	}

	todos, err := m.Delete(1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := texts(todos); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("after delete = %v, want [a c]", got)
	}

	// Index 1 now refers to "c", the item that shifted down.
	todos, err = m.Toggle(1)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if todos[1].Text != "c" || !todos[1].Done {
		t.Fatalf("toggle(1) after delete = %+v, want c done", todos[1])
	}
	if todos[0].Done {
		t.Fatal("toggle touched the wrong item")
	}
}

func TestDeleteOutOfRangeIsNoop(t *testing.T) {
	m, st := newTestManager(t)
	mustAdd(t, m, "a")
	writes := st.sets

	for _, idx := range []int{-1, 1, 5} {
		todos, err := m.Delete(idx)
		if err != nil {
			t.Fatalf("delete(%d): %v", idx, err)
		}
		if len(todos) != 1 {
			t.Fatalf("delete(%d) changed list: %+v", idx, todos)
		}
	}
	if st.sets != writes {
		t.Fatal("out-of-range delete wrote the store")
	}
}

func TestClear(t *testing.T) {
	m, _ := newTestManager(t)
	for _, s := range []string{"a", "b", "c"} {
		mustAdd(t, m, s)
	}
	_, _ = m.Toggle(0)
	_, _ = m.Toggle(2)

	todos, err := m.Clear(true)
	if err != nil {
		t.Fatalf("clear done: %v", err)
	}
	if got := texts(todos); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("after clear done = %v, want [b]", got)
	}

	todos, err = m.Clear(false)
	if err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("after clear all = %+v", todos)
	}
}

func TestIndexOfReResolvesAfterDelete(t *testing.T) {
	m, _ := newTestManager(t)
	for _, s := range []string{"a", "b", "c"} {
		mustAdd(t, m, s)
	}
	todos, _ := m.List()
	cID := todos[2].ID

	todos, _ = m.Delete(0)
	if got := IndexOf(todos, cID); got != 1 {
		t.Fatalf("IndexOf(c) = %d, want 1", got)
	}
	if got := IndexOf(todos, ""); got != -1 {
		t.Fatalf("IndexOf(\"\") = %d, want -1", got)
	}
}

func TestStoreErrorSurfaces(t *testing.T) {
	m, st := newTestManager(t)
	quota := errors.New("quota exceeded")
	st.err = quota

	if _, err := m.Add("a"); !errors.Is(err, quota) {
		t.Fatalf("Add err = %v, want quota exceeded", err)
	}
	if st.sets != 1 {
		t.Fatalf("store written %d times, want exactly 1 (no retry)", st.sets)
	}
}

func TestRemoveAtDoesNotAliasInput(t *testing.T) {
	in := []model.Todo{{Text: "a"}, {Text: "b"}, {Text: "c"}}
	out, ok := RemoveAt(in, 0)
	if !ok {
		t.Fatal("RemoveAt returned !ok")
	}
	if got := texts(in); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("input modified: %v", got)
	}
	if got := texts(out); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("output = %v", got)
	}
}
