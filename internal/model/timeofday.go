package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a clock time within a single calendar day, at second
// granularity. It round-trips through storage as "15:04:05" text.
type TimeOfDay int

// EndOfDay is the last representable time of a day, 23:59:59.
const EndOfDay TimeOfDay = 24*60*60 - 1

// NewTimeOfDay builds a TimeOfDay from clock components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

// TimeOfDayFrom extracts the time-of-day of t in its own location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

// ParseTimeOfDay parses "15:04:05" or "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute, second int
	if _, err := fmt.Sscanf(s, "%2d:%2d:%2d", &hour, &minute, &second); err != nil {
		second = 0
		if _, err := fmt.Sscanf(s, "%2d:%2d", &hour, &minute); err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	if hour > 23 || minute > 59 || second > 59 || hour < 0 || minute < 0 || second < 0 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return NewTimeOfDay(hour, minute, second), nil
}

// Clock returns the hour, minute and second components.
func (t TimeOfDay) Clock() (hour, minute, second int) {
	return int(t) / 3600, int(t) % 3600 / 60, int(t) % 60
}

// Add shifts t by d, clamped to the owning day's bounds.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	shifted := t + TimeOfDay(d/time.Second)
	if shifted < 0 {
		return 0
	}
	if shifted > EndOfDay {
		return EndOfDay
	}
	return shifted
}

// Sub returns the duration from o to t.
func (t TimeOfDay) Sub(o TimeOfDay) time.Duration {
	return time.Duration(t-o) * time.Second
}

// String formats t as "15:04:05".
func (t TimeOfDay) String() string {
	hour, minute, second := t.Clock()
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

// Short formats t as "15:04".
func (t TimeOfDay) Short() string {
	hour, minute, _ := t.Clock()
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// MarshalJSON encodes t as its "15:04:05" string form.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the "15:04:05" string form.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
