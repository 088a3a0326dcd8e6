package store

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "lifedash-test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteGetMissing(t *testing.T) {
	db := openTestDB(t)

	v, ok, err := db.Get(KeyRecord)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("Get on empty db = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestSQLiteSetOverwrites(t *testing.T) {
	db := openTestDB(t)

	if err := db.Set(KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := db.Set(KeyTheme, "light"); err != nil {
		t.Fatalf("set again: %v", err)
	}

	v, ok, err := db.Get(KeyTheme)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != "light" {
		t.Fatalf("Get = (%q, %v), want (\"light\", true)", v, ok)
	}

	keys, err := db.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("keys len = %d, want 1", len(keys))
	}
	if keys[KeyTheme].IsZero() {
		t.Fatal("updated_at not recorded")
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Set(KeyRecord, `{"mood":4}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	_ = db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	v, ok, err := db.Get(KeyRecord)
	if err != nil || !ok || v != `{"mood":4}` {
		t.Fatalf("Get after reopen = (%q, %v, %v)", v, ok, err)
	}
}

func TestSQLiteClosedSurfacesError(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = db.Close()

	if err := db.Set(KeyRecord, "{}"); err == nil {
		t.Fatal("Set on closed db returned nil error")
	}
	if _, _, err := db.Get(KeyRecord); err == nil {
		t.Fatal("Get on closed db returned nil error")
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	var _ Store = m

	if _, ok, _ := m.Get("x"); ok {
		t.Fatal("empty memory store reported key present")
	}
	_ = m.Set("x", "1")
	if v, ok, _ := m.Get("x"); !ok || v != "1" {
		t.Fatalf("Get = (%q, %v)", v, ok)
	}
	_ = m.Set("x", "2")
	if v, _, _ := m.Get("x"); v != "2" {
		t.Fatalf("overwrite: Get = %q", v)
	}
}
