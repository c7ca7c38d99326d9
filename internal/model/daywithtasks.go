package model

import (
	"sort"
	"time"
)

// DayWithTasks pairs a Day with the tasks recorded on it, in stored order.
// It is derived for display and computation, never persisted.
type DayWithTasks struct {
	Day   Day    `json:"day"`
	Tasks []Task `json:"tasks"`
}

// NewDayWithTasks attaches the day value to every task and bundles them.
func NewDayWithTasks(day Day, tasks []Task) DayWithTasks {
	attached := make([]Task, len(tasks))
	for i, task := range tasks {
		attached[i] = task.WithDay(day)
	}
	return DayWithTasks{Day: day, Tasks: attached}
}

// IsEmpty reports whether the day has no tasks recorded.
func (d DayWithTasks) IsEmpty() bool {
	return len(d.Tasks) == 0
}

// TotalDelta sums the elapsed duration of every task.
func (d DayWithTasks) TotalDelta(now time.Time) time.Duration {
	var total time.Duration
	for _, task := range d.Tasks {
		if delta, ok := task.Delta(now); ok {
			total += delta
		}
	}
	return total
}

// TaskGroups partitions the tasks by description, ordered by each group's
// latest activity, earliest-finishing group first. Groups with equal latest
// times keep their first-encountered order.
func (d DayWithTasks) TaskGroups(now time.Time) []TaskGroup {
	var groups []TaskGroup
	index := make(map[string]int)
	for _, task := range d.Tasks {
		i, ok := index[task.Description]
		if !ok {
			i = len(groups)
			index[task.Description] = i
			groups = append(groups, TaskGroup{Description: task.Description})
		}
		groups[i].Tasks = append(groups[i].Tasks, task)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		a, _ := groups[i].LatestTime(now)
		b, _ := groups[j].LatestTime(now)
		return a < b
	})
	return groups
}

// TaskGroup is the subsequence of a day's tasks sharing one description,
// used for summary totals.
type TaskGroup struct {
	Description string `json:"description"`
	Tasks       []Task `json:"tasks"`
}

// Delta sums the elapsed duration of the group's tasks.
func (g TaskGroup) Delta(now time.Time) time.Duration {
	var total time.Duration
	for _, task := range g.Tasks {
		if delta, ok := task.Delta(now); ok {
			total += delta
		}
	}
	return total
}

// LatestTime returns the latest effective end time over the group's tasks.
func (g TaskGroup) LatestTime(now time.Time) (TimeOfDay, bool) {
	var latest TimeOfDay
	found := false
	for _, task := range g.Tasks {
		end, ok := task.EffectiveEnd(now)
		if !ok {
			continue
		}
		if !found || end > latest {
			latest = end
			found = true
		}
	}
	return latest, found
}
