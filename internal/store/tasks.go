package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fentz26/ttrack/internal/model"
)

// Tasks is the repository owning task rows. It enforces the per-day state
// machine: a day is either idle or has exactly one active task.
type Tasks struct {
	store *Store
	clock model.Clock
}

// NewTasks creates a Tasks repository on the shared store.
func NewTasks(store *Store, clock model.Clock) *Tasks {
	return &Tasks{store: store, clock: clock}
}

const taskColumns = `id, day_id, start, end, description`

// DayWithTasks loads every task of day in stored order, with the day
// value attached.
func (r *Tasks) DayWithTasks(day model.Day) (model.DayWithTasks, error) {
	tasks, err := r.query(`SELECT `+taskColumns+` FROM tasks WHERE day_id = ?`, day.ID)
	if err != nil {
		return model.DayWithTasks{}, fmt.Errorf("query tasks of day %d: %w", day.ID, err)
	}
	return model.NewDayWithTasks(day, tasks), nil
}

// Start begins a new task on day at the current time. An already active
// task is stopped first: starting supersedes, it is never rejected.
func (r *Tasks) Start(day model.Day, description string) (model.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Task{}, ErrEmptyDescription
	}
	if _, err := r.Current(day); err == nil {
		if _, err := r.Stop(day); err != nil {
			return model.Task{}, fmt.Errorf("stop current task before starting a new one: %w", err)
		}
	} else if !errors.Is(err, ErrNoActiveTask) {
		return model.Task{}, err
	}
	now := model.TimeOfDayFrom(r.clock.Now())
	if _, err := r.store.db.Exec(
		`INSERT INTO tasks (day_id, start, end, description) VALUES (?, ?, NULL, ?)`,
		day.ID, now.String(), description,
	); err != nil {
		return model.Task{}, fmt.Errorf("insert task %q: %w", description, err)
	}
	return r.Current(day)
}

// Stop closes day's active task at the current time.
func (r *Tasks) Stop(day model.Day) (model.Task, error) {
	current, err := r.Current(day)
	if err != nil {
		return model.Task{}, err
	}
	if current.End != nil {
		// Unreachable while the single-active invariant holds.
		return model.Task{}, fmt.Errorf("stop task %d: %w", current.ID, ErrTaskEnded)
	}
	now := model.TimeOfDayFrom(r.clock.Now())
	current.End = &now
	if err := r.save(current); err != nil {
		return model.Task{}, err
	}
	return current, nil
}

// Current returns day's active task, or ErrNoActiveTask.
func (r *Tasks) Current(day model.Day) (model.Task, error) {
	task, err := r.get(`SELECT `+taskColumns+` FROM tasks WHERE day_id = ? AND end IS NULL`, day.ID)
	if errors.Is(err, ErrNotFound) {
		return model.Task{}, ErrNoActiveTask
	}
	if err != nil {
		return model.Task{}, err
	}
	return task.WithDay(day), nil
}

// Rename replaces the task's description in place. Start, end and day are
// untouched.
func (r *Tasks) Rename(task model.Task, description string) (model.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Task{}, ErrEmptyDescription
	}
	task.Description = description
	if err := r.save(task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// RenameCurrent renames day's active task.
func (r *Tasks) RenameCurrent(day model.Day, description string) (model.Task, error) {
	current, err := r.Current(day)
	if err != nil {
		return model.Task{}, err
	}
	return r.Rename(current, description)
}

// SetStart moves the task's start time. When the move would leave a gap
// against or overlap the immediately preceding task on the same day, that
// predecessor's end is rewritten to the new start; predecessor and primary
// write commit in one transaction or not at all. The task must carry its
// day value.
func (r *Tasks) SetStart(task model.Task, at model.TimeOfDay) (model.Task, error) {
	if at == task.Start {
		return task, nil
	}
	if _, ok := task.Day.Value(); !ok {
		return model.Task{}, fmt.Errorf("set start of task %d: day not attached", task.ID)
	}
	now := r.clock.Now()
	if at > task.Start {
		end, _ := task.EffectiveEnd(now)
		if at >= end {
			return model.Task{}, fmt.Errorf("set start of task %d to %s: %w", task.ID, at, ErrInvalidRange)
		}
	}
	prev, found, err := r.previous(task, now)
	if err != nil {
		return model.Task{}, err
	}
	cascade := false
	if found {
		prevEnd, _ := prev.EffectiveEnd(now)
		cascade = prevEnd == task.Start || prevEnd > at
		// The cascade precondition is checked before anything is written,
		// so a rejected repair leaves both tasks untouched.
		if cascade && at <= prev.Start {
			return model.Task{}, fmt.Errorf(
				"set start of task %d to %s: preceding task %d starts at %s: %w",
				task.ID, at, prev.ID, prev.Start, ErrInvalidRange)
		}
	}

	tx, err := r.store.db.Begin()
	if err != nil {
		return model.Task{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if cascade {
		end := at
		prev.End = &end
		if err := saveTask(tx, prev); err != nil {
			return model.Task{}, err
		}
	}
	task.Start = at
	if err := saveTask(tx, task); err != nil {
		return model.Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Task{}, fmt.Errorf("commit start change of task %d: %w", task.ID, err)
	}
	return task, nil
}

// SetEnd sets the task's end time. End edits never cascade to the
// following task.
func (r *Tasks) SetEnd(task model.Task, at model.TimeOfDay) (model.Task, error) {
	if at <= task.Start {
		return model.Task{}, fmt.Errorf("set end of task %d to %s: %w", task.ID, at, ErrInvalidRange)
	}
	end := at
	task.End = &end
	if err := r.save(task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// ShiftStart moves the task's start time by delta.
func (r *Tasks) ShiftStart(task model.Task, delta time.Duration) (model.Task, error) {
	return r.SetStart(task, task.Start.Add(delta))
}

// ByID returns the task with id, referencing its day by id only.
func (r *Tasks) ByID(id int64) (model.Task, error) {
	return r.get(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
}

// previous finds the most recently ended task before task's current start:
// the one whose effective end is the latest value not after that start.
func (r *Tasks) previous(task model.Task, now time.Time) (model.Task, bool, error) {
	day, ok := task.Day.Value()
	if !ok {
		return model.Task{}, false, fmt.Errorf("find predecessor of task %d: day not attached", task.ID)
	}
	loaded, err := r.DayWithTasks(day)
	if err != nil {
		return model.Task{}, false, err
	}
	var (
		prev    model.Task
		prevEnd model.TimeOfDay
		found   bool
	)
	for _, candidate := range loaded.Tasks {
		if candidate.ID == task.ID {
			continue
		}
		end, ok := candidate.EffectiveEnd(now)
		if !ok || end > task.Start {
			continue
		}
		if !found || end > prevEnd {
			prev = candidate
			prevEnd = end
			found = true
		}
	}
	return prev, found, nil
}

func (r *Tasks) get(query string, args ...any) (model.Task, error) {
	task, err := scanTask(r.store.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("query task: %w", err)
	}
	return task, nil
}

func (r *Tasks) query(query string, args ...any) ([]model.Task, error) {
	rows, err := r.store.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		id, dayID   int64
		startText   string
		endText     sql.NullString
		description string
	)
	if err := row.Scan(&id, &dayID, &startText, &endText, &description); err != nil {
		return model.Task{}, err
	}
	start, err := model.ParseTimeOfDay(startText)
	if err != nil {
		return model.Task{}, fmt.Errorf("start of task %d: %w", id, err)
	}
	task := model.Task{
		ID:          id,
		Day:         model.DayByID(dayID),
		Start:       start,
		Description: description,
	}
	if endText.Valid {
		end, err := model.ParseTimeOfDay(endText.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("end of task %d: %w", id, err)
		}
		task.End = &end
	}
	return task, nil
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (r *Tasks) save(task model.Task) error {
	return saveTask(r.store.db, task)
}

func saveTask(db execer, task model.Task) error {
	var end any
	if task.End != nil {
		end = task.End.String()
	}
	if _, err := db.Exec(
		`UPDATE tasks SET day_id = ?, start = ?, end = ?, description = ? WHERE id = ?`,
		task.DayID(), task.Start.String(), end, task.Description, task.ID,
	); err != nil {
		return fmt.Errorf("update task %d: %w", task.ID, err)
	}
	return nil
}
