// Package timeutil parses the CLI time argument grammar and formats
// durations for display.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fentz26/ttrack/internal/model"
)

// TimeOrDelta is a parsed time argument: either an absolute time of day or
// a relative shift in minutes.
type TimeOrDelta struct {
	time    model.TimeOfDay
	delta   time.Duration
	isDelta bool
}

// Parse reads the compact time grammar: one or two digits are an hour
// ("9" -> 09:00), three or four digits are HHMM ("930" -> 09:30), a
// leading + or - is a shift in minutes, and "15:04"/"15:04:05" forms are
// accepted verbatim.
func Parse(s string) (TimeOrDelta, error) {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		minutes, err := strconv.Atoi(s[1:])
		if err != nil || minutes < 0 {
			return TimeOrDelta{}, fmt.Errorf("invalid time shift %q", s)
		}
		delta := time.Duration(minutes) * time.Minute
		if s[0] == '-' {
			delta = -delta
		}
		return TimeOrDelta{delta: delta, isDelta: true}, nil
	}
	if isDigits(s) {
		switch len(s) {
		case 1, 2:
			hour, err := strconv.Atoi(s)
			if err != nil || hour > 23 {
				return TimeOrDelta{}, fmt.Errorf("invalid time %q", s)
			}
			return TimeOrDelta{time: model.NewTimeOfDay(hour, 0, 0)}, nil
		case 3, 4:
			split := len(s) - 2
			hour, _ := strconv.Atoi(s[:split])
			minute, _ := strconv.Atoi(s[split:])
			if hour > 23 || minute > 59 {
				return TimeOrDelta{}, fmt.Errorf("invalid time %q", s)
			}
			return TimeOrDelta{time: model.NewTimeOfDay(hour, minute, 0)}, nil
		}
	}
	if parsed, err := model.ParseTimeOfDay(s); err == nil {
		return TimeOrDelta{time: parsed}, nil
	}
	return TimeOrDelta{}, fmt.Errorf("cannot parse %q as a time or shift", s)
}

// Time returns the absolute time of day, if the argument was one.
func (v TimeOrDelta) Time() (model.TimeOfDay, bool) {
	return v.time, !v.isDelta
}

// Delta returns the relative shift, if the argument was one.
func (v TimeOrDelta) Delta() (time.Duration, bool) {
	return v.delta, v.isDelta
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatDelta formats a duration compactly: "45s", "12m 30s", "3h 12m".
func FormatDelta(d time.Duration) string {
	seconds := int64(d / time.Second)
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	seconds = seconds % 60
	switch {
	case hours == 0 && minutes == 0:
		return fmt.Sprintf("%ds", seconds)
	case hours == 0 && seconds == 0:
		return fmt.Sprintf("%dm", minutes)
	case hours > 0 && minutes == 0:
		return fmt.Sprintf("%dh", hours)
	case hours == 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}
