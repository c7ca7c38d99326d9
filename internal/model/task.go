package model

import (
	"fmt"
	"time"
)

// Task is one timed activity interval with a description. A Task with no
// end time is the active task of its day; a day has at most one.
type Task struct {
	ID          int64      `json:"id"`
	Day         DayRef     `json:"day_id"`
	Start       TimeOfDay  `json:"start"`
	End         *TimeOfDay `json:"end"`
	Description string     `json:"description"`
}

// DayID returns the id of the owning day.
func (t Task) DayID() int64 {
	return t.Day.ID()
}

// WithDay returns a copy of the task with the full Day value attached.
func (t Task) WithDay(day Day) Task {
	t.Day = DayByValue(day)
	return t
}

// IsActive reports whether the task is still running.
func (t Task) IsActive() bool {
	return t.End == nil
}

// EffectiveEnd returns the task's end time, or the owning day's effective
// clock time while the task is active. It reports false when the task only
// references its day by id, since the day's date is needed.
func (t Task) EffectiveEnd(now time.Time) (TimeOfDay, bool) {
	if t.End != nil {
		return *t.End, true
	}
	day, ok := t.Day.Value()
	if !ok {
		return 0, false
	}
	return day.TimeAt(now), true
}

// Delta returns the elapsed duration between start and the effective end.
func (t Task) Delta(now time.Time) (time.Duration, bool) {
	end, ok := t.EffectiveEnd(now)
	if !ok {
		return 0, false
	}
	return end.Sub(t.Start), true
}

func (t Task) String() string {
	end := "..."
	if t.End != nil {
		end = t.End.Short()
	}
	return fmt.Sprintf("task %q id=%d start=%s end=%s", t.Description, t.ID, t.Start.Short(), end)
}
