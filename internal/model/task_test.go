package model

import (
	"testing"
	"time"
)

func testDay(id int64, year int, month time.Month, day int) Day {
	return NewDay(id, time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

func TestEffectiveEndEnded(t *testing.T) {
	end := NewTimeOfDay(11, 0, 0)
	task := Task{
		ID:    1,
		Day:   DayByValue(testDay(1, 2026, time.August, 20)),
		Start: NewTimeOfDay(10, 0, 0),
		End:   &end,
	}
	now := time.Date(2026, time.August, 28, 14, 0, 0, 0, time.Local)
	got, ok := task.EffectiveEnd(now)
	if !ok || got != end {
		t.Errorf("EffectiveEnd = %v/%v, want %v/true", got, ok, end)
	}
	delta, _ := task.Delta(now)
	if delta != time.Hour {
		t.Errorf("Delta = %v, want 1h", delta)
	}
}

func TestEffectiveEndActiveToday(t *testing.T) {
	task := Task{
		ID:    1,
		Day:   DayByValue(testDay(1, 2026, time.August, 28)),
		Start: NewTimeOfDay(10, 0, 0),
	}
	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.Local)
	got, ok := task.EffectiveEnd(now)
	if !ok || got != NewTimeOfDay(14, 30, 0) {
		t.Errorf("EffectiveEnd = %v/%v, want 14:30:00/true", got, ok)
	}
	delta, _ := task.Delta(now)
	if delta != 4*time.Hour+30*time.Minute {
		t.Errorf("Delta = %v, want 4h30m", delta)
	}
}

func TestEffectiveEndActivePastDay(t *testing.T) {
	task := Task{
		ID:    1,
		Day:   DayByValue(testDay(1, 2026, time.August, 20)),
		Start: NewTimeOfDay(10, 0, 0),
	}
	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.Local)
	got, ok := task.EffectiveEnd(now)
	if !ok || got != EndOfDay {
		t.Errorf("EffectiveEnd = %v/%v, want %v/true", got, ok, EndOfDay)
	}
}

func TestEffectiveEndWithoutDayValue(t *testing.T) {
	task := Task{
		ID:    1,
		Day:   DayByID(7),
		Start: NewTimeOfDay(10, 0, 0),
	}
	now := time.Now()
	if _, ok := task.EffectiveEnd(now); ok {
		t.Error("EffectiveEnd of an active task without a day value should report false")
	}
	if task.DayID() != 7 {
		t.Errorf("DayID = %d, want 7", task.DayID())
	}
}

func TestWithDayUpgradesReference(t *testing.T) {
	day := testDay(7, 2026, time.August, 28)
	task := Task{ID: 1, Day: DayByID(7), Start: NewTimeOfDay(9, 0, 0)}
	upgraded := task.WithDay(day)
	got, ok := upgraded.Day.Value()
	if !ok || got.ID != 7 {
		t.Fatalf("Day.Value() = %v/%v, want day 7/true", got, ok)
	}
	if !task.IsActive() || !upgraded.IsActive() {
		t.Error("tasks without an end should be active")
	}
}
