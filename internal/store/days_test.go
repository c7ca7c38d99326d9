package store

import (
	"errors"
	"testing"
	"time"
)

func localDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestResolveCreatesOnce(t *testing.T) {
	days, _, _ := newTestRepos(t, localDate(2026, time.August, 28))
	date := localDate(2026, time.August, 20)

	first, err := days.Resolve(date)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := days.Resolve(date)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("resolve created a second row: ids %d and %d", first.ID, second.ID)
	}
	if first.DateString() != "2026-08-20" {
		t.Errorf("date = %s, want 2026-08-20", first.DateString())
	}
}

func TestTodayYesterdayAndDaysAgo(t *testing.T) {
	now := time.Date(2026, time.August, 28, 14, 30, 0, 0, time.Local)
	days, _, _ := newTestRepos(t, now)

	today, err := days.Today()
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if !today.IsToday(now) {
		t.Error("Today() should resolve the current date")
	}

	yesterday, err := days.Yesterday()
	if err != nil {
		t.Fatalf("yesterday: %v", err)
	}
	if yesterday.DateString() != "2026-08-27" {
		t.Errorf("yesterday = %s, want 2026-08-27", yesterday.DateString())
	}

	back, err := days.FromDaysAgo(3)
	if err != nil {
		t.Fatalf("from days ago: %v", err)
	}
	if back.DateString() != "2026-08-25" {
		t.Errorf("three days ago = %s, want 2026-08-25", back.DateString())
	}
}

func TestByID(t *testing.T) {
	days, _, _ := newTestRepos(t, localDate(2026, time.August, 28))

	day, err := days.Today()
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	got, err := days.ByID(day.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got.DateString() != day.DateString() {
		t.Errorf("by id date = %s, want %s", got.DateString(), day.DateString())
	}

	if _, err := days.ByID(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id error = %v, want ErrNotFound", err)
	}
}

func TestWeekThroughTodayOnWednesday(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	now := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.Local)
	days, _, _ := newTestRepos(t, now)

	week, err := days.WeekThroughToday()
	if err != nil {
		t.Fatalf("week through today: %v", err)
	}
	want := []string{"2026-08-26", "2026-08-25", "2026-08-24"}
	if len(week) != len(want) {
		t.Fatalf("got %d days, want %d", len(week), len(want))
	}
	for i, day := range week {
		if day.DateString() != want[i] {
			t.Errorf("week[%d] = %s, want %s", i, day.DateString(), want[i])
		}
	}
}

func TestCompleteWeekOnMonday(t *testing.T) {
	days, _, _ := newTestRepos(t, localDate(2026, time.August, 28))

	// 2026-08-24 is a Monday: the walk stops immediately.
	week, err := days.CompleteWeek(localDate(2026, time.August, 24))
	if err != nil {
		t.Fatalf("complete week: %v", err)
	}
	if len(week) != 1 || week[0].DateString() != "2026-08-24" {
		t.Fatalf("week = %v, want the single Monday", week)
	}
}

func TestCompleteWeekOnSunday(t *testing.T) {
	days, _, _ := newTestRepos(t, localDate(2026, time.September, 4))

	// 2026-08-30 is a Sunday: the full seven days back to Monday the 24th.
	week, err := days.CompleteWeek(localDate(2026, time.August, 30))
	if err != nil {
		t.Fatalf("complete week: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("got %d days, want 7", len(week))
	}
	if week[0].DateString() != "2026-08-30" || week[6].DateString() != "2026-08-24" {
		t.Errorf("week spans %s..%s, want 2026-08-30..2026-08-24",
			week[0].DateString(), week[6].DateString())
	}
}

func TestListPassed(t *testing.T) {
	days, _, _ := newTestRepos(t, localDate(2026, time.August, 28))

	for _, date := range []time.Time{
		localDate(2026, time.August, 20),
		localDate(2026, time.August, 22),
		localDate(2026, time.August, 21),
	} {
		if _, err := days.Resolve(date); err != nil {
			t.Fatalf("resolve %s: %v", date, err)
		}
	}

	listed, err := days.ListPassed(2)
	if err != nil {
		t.Fatalf("list passed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("got %d days, want 2", len(listed))
	}
	if listed[0].DateString() != "2026-08-22" || listed[1].DateString() != "2026-08-21" {
		t.Errorf("list = %s, %s; want newest first 2026-08-22, 2026-08-21",
			listed[0].DateString(), listed[1].DateString())
	}
}
