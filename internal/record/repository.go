// Package record loads and saves the DailyRecord through a key-value store.
package record

import (
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/lifedash/internal/model"
	"github.com/theirongolddev/lifedash/internal/store"
)

// Repository is the read-modify-write unit for the single DailyRecord.
// It is not safe for concurrent use.
type Repository struct {
	st  store.Store
	key string
}

// New returns a repository storing the record under store.KeyRecord.
func New(st store.Store) *Repository {
	return &Repository{st: st, key: store.KeyRecord}
}

// Load returns the stored record with defaults for anything absent.
// A missing or unparseable value yields the empty record; only store
// failures are returned as errors. Load never writes.
func (r *Repository) Load() (model.DailyRecord, error) {
	raw, ok, err := r.st.Get(r.key)
	if err != nil {
		return model.DailyRecord{}, fmt.Errorf("loading record: %w", err)
	}
	if !ok || raw == "" {
		return model.DailyRecord{}, nil
	}

	var rec model.DailyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return model.DailyRecord{}, nil
	}
	return rec, nil
}

// Save overwrites the stored record.
func (r *Repository) Save(rec model.DailyRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	if err := r.st.Set(r.key, string(data)); err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// Update loads the record, applies fn, and saves the result. If fn returns
// changed=false or an error, nothing is written.
func (r *Repository) Update(fn func(rec *model.DailyRecord) (changed bool, err error)) (model.DailyRecord, error) {
	rec, err := r.Load()
	if err != nil {
		return rec, err
	}
	changed, err := fn(&rec)
	if err != nil {
		return rec, err
	}
	if !changed {
		return rec, nil
	}
	if err := r.Save(rec); err != nil {
		return rec, err
	}
	return rec, nil
}
