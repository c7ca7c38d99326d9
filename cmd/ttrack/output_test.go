package main

import (
	"testing"
	"time"
)

func TestDateLabel(t *testing.T) {
	now := time.Date(2026, time.August, 28, 14, 0, 0, 0, time.Local)
	cases := []struct {
		date time.Time
		want string
	}{
		{now, "Today"},
		{now.AddDate(0, 0, -1), "Yesterday"},
		{now.AddDate(0, 0, 1), "Tomorrow"},
		{now.AddDate(0, 0, -3), "Tuesday"},
		{now.AddDate(0, 0, -6), "Saturday"},
		{now.AddDate(0, 0, -7), "2026.08.21"},
		{now.AddDate(0, 0, -30), "2026.07.29"},
	}
	for _, tc := range cases {
		if got := dateLabel(now, tc.date); got != tc.want {
			t.Errorf("dateLabel(%s) = %q, want %q", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}
