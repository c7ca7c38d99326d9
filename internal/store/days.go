package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fentz26/ttrack/internal/model"
)

// Days is the repository owning day rows: one row per calendar date ever
// referenced, created lazily on first resolution and never deleted.
type Days struct {
	store *Store
	clock model.Clock
}

// NewDays creates a Days repository on the shared store.
func NewDays(store *Store, clock model.Clock) *Days {
	return &Days{store: store, clock: clock}
}

// Resolve returns the Day for date, creating the row on first reference.
func (r *Days) Resolve(date time.Time) (model.Day, error) {
	day, err := r.byDate(date)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return model.Day{}, err
	}
	if _, err := r.store.db.Exec(
		`INSERT INTO days (date) VALUES (?)`,
		date.Format(model.DateLayout),
	); err != nil {
		return model.Day{}, fmt.Errorf("insert day %s: %w", date.Format(model.DateLayout), err)
	}
	return r.byDate(date)
}

// Today resolves the current calendar date.
func (r *Days) Today() (model.Day, error) {
	return r.Resolve(r.clock.Now())
}

// Yesterday resolves the previous calendar date.
func (r *Days) Yesterday() (model.Day, error) {
	return r.FromDaysAgo(1)
}

// FromDaysAgo resolves the date n calendar days before today.
func (r *Days) FromDaysAgo(n int) (model.Day, error) {
	return r.Resolve(r.clock.Now().AddDate(0, 0, -n))
}

// WeekThroughToday resolves every date from today backward to the most
// recent Monday, inclusive, newest first.
func (r *Days) WeekThroughToday() ([]model.Day, error) {
	return r.CompleteWeek(r.clock.Now())
}

// CompleteWeek walks from anchor backward to that week's Monday, resolving
// every visited date. Produces at most seven entries, newest first.
func (r *Days) CompleteWeek(anchor time.Time) ([]model.Day, error) {
	var week []model.Day
	date := anchor
	for {
		day, err := r.Resolve(date)
		if err != nil {
			return nil, err
		}
		week = append(week, day)
		if date.Weekday() == time.Monday {
			break
		}
		date = date.AddDate(0, 0, -1)
	}
	return week, nil
}

// ByID returns the day with id, or ErrNotFound.
func (r *Days) ByID(id int64) (model.Day, error) {
	return r.get(`SELECT id, date FROM days WHERE id = ?`, id)
}

// ListPassed returns the most recent count recorded days, newest first.
func (r *Days) ListPassed(count int) ([]model.Day, error) {
	rows, err := r.store.db.Query(
		`SELECT id, date FROM days ORDER BY date DESC LIMIT ?`, count)
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}
	defer rows.Close()

	var days []model.Day
	for rows.Next() {
		var (
			id       int64
			dateText string
		)
		if err := rows.Scan(&id, &dateText); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		day, err := dayFromRow(id, dateText)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (r *Days) byDate(date time.Time) (model.Day, error) {
	return r.get(`SELECT id, date FROM days WHERE date = ?`, date.Format(model.DateLayout))
}

func (r *Days) get(query string, args ...any) (model.Day, error) {
	var (
		id       int64
		dateText string
	)
	err := r.store.db.QueryRow(query, args...).Scan(&id, &dateText)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Day{}, ErrNotFound
	}
	if err != nil {
		return model.Day{}, fmt.Errorf("query day: %w", err)
	}
	return dayFromRow(id, dateText)
}

func dayFromRow(id int64, dateText string) (model.Day, error) {
	date, err := time.ParseInLocation(model.DateLayout, dateText, time.Local)
	if err != nil {
		return model.Day{}, fmt.Errorf("parse date of day %d: %w", id, err)
	}
	return model.NewDay(id, date), nil
}
