package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/ttrack/internal/model"
	"github.com/fentz26/ttrack/internal/timeutil"
)

var (
	dayLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	taskLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	activeArrow    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Render("->")
	endedArrow     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("->")
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printTask(now time.Time, task model.Task) error {
	if jsonOutput {
		return printJSON(task)
	}
	fmt.Printf("%s %s\n", taskLabelStyle.Render("Task"), task.Description)
	fmt.Println(taskBody(now, task))
	return nil
}

func printDay(now time.Time, day model.DayWithTasks) error {
	if jsonOutput {
		return printJSON(day)
	}
	fmt.Printf("%s %s %s\n",
		dayLabelStyle.Render("Day"),
		dateLabel(now, day.Day.Date),
		mutedStyle.Render(fmt.Sprintf("(%s)", timeutil.FormatDelta(day.TotalDelta(now)))),
	)
	if day.IsEmpty() {
		fmt.Printf(" %s %s\n", endedArrow, mutedStyle.Render("no tasks recorded"))
		return nil
	}
	for _, group := range day.TaskGroups(now) {
		fmt.Printf("%s %s %s\n",
			taskLabelStyle.Render("Task"),
			group.Description,
			mutedStyle.Render(fmt.Sprintf("(%s)", timeutil.FormatDelta(group.Delta(now)))),
		)
		for _, task := range group.Tasks {
			fmt.Println(taskBody(now, task))
		}
	}
	return nil
}

func printWeek(now time.Time, week []model.DayWithTasks) error {
	if jsonOutput {
		return printJSON(week)
	}
	for i, day := range week {
		if i > 0 {
			fmt.Println()
		}
		if err := printDay(now, day); err != nil {
			return err
		}
	}
	return nil
}

func taskBody(now time.Time, task model.Task) string {
	arrow := endedArrow
	if task.IsActive() {
		arrow = activeArrow
	}
	elapsed := "running ..."
	if delta, ok := task.Delta(now); ok {
		elapsed = timeutil.FormatDelta(delta)
	}
	end := "..."
	if task.End != nil {
		end = task.End.Short()
	}
	span := mutedStyle.Render(fmt.Sprintf("(%s - %s)", task.Start.Short(), end))
	return fmt.Sprintf(" %s %s %s", arrow, elapsed, span)
}

// dateLabel renders a date relative to now: Today, Yesterday, the weekday
// name within the past six days, otherwise "2006.01.02".
func dateLabel(now time.Time, date time.Time) string {
	day := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}
	today := day(now)
	target := day(date)
	switch {
	case target.Equal(today):
		return "Today"
	case target.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	case target.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case target.Before(today) && target.After(today.AddDate(0, 0, -7)):
		return target.Weekday().String()
	default:
		return target.Format("2006.01.02")
	}
}

func warn(message string) {
	fmt.Fprintln(os.Stderr, mutedStyle.Render(message))
}
