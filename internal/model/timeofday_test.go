package model

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
		ok   bool
	}{
		{"09:30:15", NewTimeOfDay(9, 30, 15), true},
		{"09:30", NewTimeOfDay(9, 30, 0), true},
		{"00:00:00", 0, true},
		{"23:59:59", EndOfDay, true},
		{"24:00:00", 0, false},
		{"09:60", 0, false},
		{"garbage", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayStringRoundTrip(t *testing.T) {
	want := NewTimeOfDay(14, 5, 9)
	got, err := ParseTimeOfDay(want.String())
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q): %v", want.String(), err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
	if want.String() != "14:05:09" {
		t.Errorf("String() = %q, want %q", want.String(), "14:05:09")
	}
	if want.Short() != "14:05" {
		t.Errorf("Short() = %q, want %q", want.Short(), "14:05")
	}
}

func TestTimeOfDayAddClamps(t *testing.T) {
	if got := NewTimeOfDay(23, 50, 0).Add(20 * time.Minute); got != EndOfDay {
		t.Errorf("add past midnight = %v, want %v", got, EndOfDay)
	}
	if got := NewTimeOfDay(0, 5, 0).Add(-10 * time.Minute); got != 0 {
		t.Errorf("subtract past midnight = %v, want 0", got)
	}
	if got := NewTimeOfDay(10, 0, 0).Add(90 * time.Minute); got != NewTimeOfDay(11, 30, 0) {
		t.Errorf("add = %v, want 11:30:00", got)
	}
}

func TestTimeOfDaySub(t *testing.T) {
	a := NewTimeOfDay(10, 30, 0)
	b := NewTimeOfDay(10, 0, 0)
	if got := a.Sub(b); got != 30*time.Minute {
		t.Errorf("Sub = %v, want 30m", got)
	}
}
