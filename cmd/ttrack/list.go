package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fentz26/ttrack/internal/model"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List the tasks of today",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

var yesterdayCmd = &cobra.Command{
	Use:   "yesterday",
	Short: "List the tasks of yesterday",
	Args:  cobra.NoArgs,
	RunE:  runYesterday,
}

var dayAgo int

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "List the tasks of a past day",
	Args:  cobra.NoArgs,
	RunE:  runDay,
}

var weekDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "List the tasks of the week, Monday through today",
	Args:  cobra.NoArgs,
	RunE:  runWeek,
}

func init() {
	dayCmd.Flags().IntVar(&dayAgo, "ago", 1, "How many days back to look")
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Anchor date (2006-01-02) for the week instead of today")
}

func runToday(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	day, err := env.days.Today()
	if err != nil {
		return err
	}
	return printLoadedDay(env, day)
}

func runYesterday(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	day, err := env.days.Yesterday()
	if err != nil {
		return err
	}
	return printLoadedDay(env, day)
}

func runDay(cmd *cobra.Command, args []string) error {
	if dayAgo < 0 {
		return fmt.Errorf("--ago must not be negative")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	day, err := env.days.FromDaysAgo(dayAgo)
	if err != nil {
		return err
	}
	return printLoadedDay(env, day)
}

func runWeek(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	var days []model.Day
	if weekDate == "" {
		days, err = env.days.WeekThroughToday()
	} else {
		var anchor time.Time
		anchor, err = time.ParseInLocation(model.DateLayout, weekDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: expected 2006-01-02", weekDate)
		}
		days, err = env.days.CompleteWeek(anchor)
	}
	if err != nil {
		return err
	}

	week := make([]model.DayWithTasks, 0, len(days))
	for _, day := range days {
		loaded, err := env.tasks.DayWithTasks(day)
		if err != nil {
			return err
		}
		week = append(week, loaded)
	}
	return printWeek(env.clock.Now(), week)
}

func printLoadedDay(env *env, day model.Day) error {
	loaded, err := env.tasks.DayWithTasks(day)
	if err != nil {
		return err
	}
	return printDay(env.clock.Now(), loaded)
}
