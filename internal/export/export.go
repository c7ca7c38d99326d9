// Package export builds portable snapshots of recorded days for use in
// other tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fentz26/ttrack/internal/model"
)

// Document is a self-describing export of recorded days. The generated id
// lets downstream tools de-duplicate repeated imports.
type Document struct {
	ID          string               `json:"id"`
	GeneratedAt time.Time            `json:"generated_at"`
	Days        []model.DayWithTasks `json:"days"`
}

// NewDocument wraps days into a document stamped with a fresh id.
func NewDocument(days []model.DayWithTasks, now time.Time) Document {
	return Document{
		ID:          uuid.New().String(),
		GeneratedAt: now,
		Days:        days,
	}
}

// WriteJSON writes the document as indented JSON.
func (d Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteCSV writes one row per task: date, start, end, description and
// elapsed seconds. Active tasks get an empty end column.
func (d Document) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "start", "end", "description", "duration_seconds"}); err != nil {
		return err
	}
	for _, day := range d.Days {
		for _, task := range day.Tasks {
			end := ""
			if task.End != nil {
				end = task.End.String()
			}
			seconds := ""
			if delta, ok := task.Delta(d.GeneratedAt); ok {
				seconds = strconv.FormatInt(int64(delta/time.Second), 10)
			}
			row := []string{day.Day.DateString(), task.Start.String(), end, task.Description, seconds}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
