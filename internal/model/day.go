package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the storage and display form of a Day's date.
const DateLayout = "2006-01-02"

// Day is one calendar date's record, the grouping unit for tasks. A Day is
// created the first time its date is resolved and is immutable afterwards.
type Day struct {
	ID   int64     `json:"id"`
	Date time.Time `json:"date"`
}

// NewDay builds a Day, normalizing the date to midnight in its location.
func NewDay(id int64, date time.Time) Day {
	year, month, day := date.Date()
	return Day{
		ID:   id,
		Date: time.Date(year, month, day, 0, 0, 0, 0, date.Location()),
	}
}

// IsToday reports whether the day is the calendar date of now.
func (d Day) IsToday(now time.Time) bool {
	ny, nm, nd := now.Date()
	dy, dm, dd := d.Date.Date()
	return ny == dy && nm == dm && nd == dd
}

// TimeAt returns the day's effective clock time: the current time-of-day
// while the day is today, 23:59:59 once it has passed.
func (d Day) TimeAt(now time.Time) TimeOfDay {
	if d.IsToday(now) {
		return TimeOfDayFrom(now)
	}
	return EndOfDay
}

// DateString formats the date as "2006-01-02".
func (d Day) DateString() string {
	return d.Date.Format(DateLayout)
}

func (d Day) String() string {
	return fmt.Sprintf("day id=%d date=%s", d.ID, d.DateString())
}

// DayRef refers to a Day either by id alone or with the full value
// attached. Rows reference their day by id; the value is attached
// explicitly once the Day is known, never looked up implicitly.
type DayRef struct {
	id  int64
	day *Day
}

// DayByID builds an id-only reference.
func DayByID(id int64) DayRef {
	return DayRef{id: id}
}

// DayByValue builds a reference carrying the full Day.
func DayByValue(day Day) DayRef {
	return DayRef{id: day.ID, day: &day}
}

// ID returns the referenced day's id regardless of representation.
func (r DayRef) ID() int64 {
	return r.id
}

// Value returns the attached Day, if any.
func (r DayRef) Value() (Day, bool) {
	if r.day == nil {
		return Day{}, false
	}
	return *r.day, true
}

// MarshalJSON encodes the reference as the numeric day id.
func (r DayRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.id)
}
