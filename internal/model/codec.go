package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// recordFields mirrors DailyRecord without its methods so the default
// encoder can be reused inside MarshalJSON.
type recordFields DailyRecord

// MarshalJSON encodes the record, including any unknown top-level fields
// carried over from the stored value.
func (r DailyRecord) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(recordFields(r))
	if err != nil {
		return nil, err
	}
	if len(r.extra) == 0 {
		return known, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	merged := make(map[string]json.RawMessage, len(fields)+len(r.extra))
	for k, v := range r.extra {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON decodes a stored record leniently. Each known field is
// decoded on its own; a field of the wrong type or out of range is left at
// its zero value. The only error is a top-level value that is not an object.
func (r *DailyRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("record is not an object: %w", err)
	}

	*r = DailyRecord{}
	for key, raw := range fields {
		switch key {
		case "habitStates":
			r.HabitStates = decodeHabitStates(raw)
		case "mood":
			r.Mood = decodeLevel(raw, MoodMin, MoodMax)
		case "stress":
			r.Stress = decodeLevel(raw, StressMin, StressMax)
		case "meals":
			r.Meals = decodeMeals(raw)
		case "todos":
			r.Todos = decodeTodos(raw)
		case "dailyScore":
			r.DailyScore = decodeScore(raw)
		default:
			if r.extra == nil {
				r.extra = make(map[string][]byte)
			}
			r.extra[key] = append([]byte(nil), raw...)
		}
	}
	return nil
}

func decodeHabitStates(raw json.RawMessage) map[string]bool {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil || len(entries) == 0 {
		return nil
	}
	out := make(map[string]bool, len(entries))
	for id, v := range entries {
		var done bool
		if err := json.Unmarshal(v, &done); err != nil {
			continue
		}
		out[id] = done
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// decodeLevel accepts a JSON integer or a numeric string within [lo, hi].
func decodeLevel(raw json.RawMessage, lo, hi int) *int {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	var n int
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) {
			return nil
		}
		n = int(x)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}

	if n < lo || n > hi {
		return nil
	}
	return &n
}

func decodeMeals(raw json.RawMessage) Meals {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return Meals{}
	}
	str := func(key string) string {
		var s string
		if v, ok := entries[key]; ok {
			_ = json.Unmarshal(v, &s)
		}
		return s
	}
	return Meals{
		Breakfast: str("breakfast"),
		Lunch:     str("lunch"),
		Dinner:    str("dinner"),
		Calories:  str("calories"),
	}
}

// decodeTodos keeps every object entry in order. Non-object entries are
// dropped; fields of the wrong type fall back to their zero value.
func decodeTodos(raw json.RawMessage) []Todo {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return nil
	}

	out := make([]Todo, 0, len(items))
	for _, item := range items {
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(item, &entries); err != nil || entries == nil {
			continue
		}
		var t Todo
		if v, ok := entries["id"]; ok {
			_ = json.Unmarshal(v, &t.ID)
		}
		if v, ok := entries["text"]; ok {
			_ = json.Unmarshal(v, &t.Text)
		}
		if v, ok := entries["done"]; ok {
			_ = json.Unmarshal(v, &t.Done)
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeScore(raw json.RawMessage) *DailyScore {
	var ds DailyScore
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil
	}
	if !ds.Grade.Valid() || ds.Percentage < 0 || ds.Percentage > 100 {
		return nil
	}
	return &ds
}
