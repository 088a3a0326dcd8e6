package model

// HabitDefinition is a tracked daily habit. Definitions are fixed for the
// life of the process; only their completion state is persisted.
type HabitDefinition struct {
	ID     string `toml:"id" json:"id" yaml:"id"`
	Name   string `toml:"name" json:"name" yaml:"name"`
	Weight int    `toml:"weight" json:"weight" yaml:"weight"`
}

// DefaultHabits is the built-in habit set, used when the config file does
// not define its own.
var DefaultHabits = []HabitDefinition{
	{ID: "water", Name: "Drink 8 Glasses of Water", Weight: 3},
	{ID: "exercise", Name: "30 min Exercise", Weight: 4},
	{ID: "read", Name: "Read for 15 min", Weight: 2},
	{ID: "sleep", Name: "Bed before 11 PM", Weight: 3},
}

// TotalWeight sums the weights of habits.
func TotalWeight(habits []HabitDefinition) int {
	total := 0
	for _, h := range habits {
		total += h.Weight
	}
	return total
}

// FindHabit returns the definition with the given id.
func FindHabit(habits []HabitDefinition, id string) (HabitDefinition, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return HabitDefinition{}, false
}
