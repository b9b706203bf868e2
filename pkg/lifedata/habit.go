package lifedata

// Habit tracks a recurring practice. History maps a YYYY-MM-DD date to
// whether the habit was completed that day. Streak never goes negative.
type Habit struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Streak   int             `json:"streak"`
	History  map[string]bool `json:"history"`
	Category string          `json:"category"`
}

// toggle flips the completion flag for a date and adjusts the streak:
// +1 when the date becomes done, -1 (floored at 0) when it becomes undone.
func (h Habit) toggle(date string) Habit {
	history := make(map[string]bool, len(h.History)+1)
	for k, v := range h.History {
		history[k] = v
	}
	history[date] = !history[date]

	streak := h.Streak
	if history[date] {
		streak++
	} else {
		streak--
		if streak < 0 {
			streak = 0
		}
	}

	h.History = history
	h.Streak = streak
	return h
}
