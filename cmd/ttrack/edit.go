package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fentz26/ttrack/internal/model"
	"github.com/fentz26/ttrack/internal/timeutil"
)

var (
	editName  string
	editStart string
	editEnd   string
	editTask  int64
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the running task or a task addressed by id",
	Long: `Edit renames a task or moves its boundaries. Times accept "9"
(09:00), "0930" (09:30), "15:04" and shifts like "+15" or "-15" minutes.
Moving a start time adjusts the end of the immediately preceding task so
the day stays free of gaps and overlaps.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editName, "name", "n", "", "New description of the task")
	editCmd.Flags().StringVar(&editStart, "start", "", "New start time, or +/- shift in minutes")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end time, or +/- shift in minutes")
	editCmd.Flags().Int64Var(&editTask, "task", 0, "Task id to edit (default: the running task)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editName == "" && editStart == "" && editEnd == "" {
		return fmt.Errorf("nothing to edit: pass --name, --start or --end")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	task, err := resolveEditTarget(env)
	if err != nil {
		return err
	}

	if editName != "" {
		task, err = env.tasks.Rename(task, editName)
		if err != nil {
			return err
		}
	}
	if editStart != "" {
		arg, err := timeutil.Parse(editStart)
		if err != nil {
			return err
		}
		if delta, ok := arg.Delta(); ok {
			task, err = env.tasks.ShiftStart(task, delta)
		} else {
			at, _ := arg.Time()
			task, err = env.tasks.SetStart(task, at)
		}
		if err != nil {
			return err
		}
	}
	if editEnd != "" {
		arg, err := timeutil.Parse(editEnd)
		if err != nil {
			return err
		}
		at, ok := arg.Time()
		if !ok {
			delta, _ := arg.Delta()
			if task.End == nil {
				return fmt.Errorf("task %d is still running, it has no end time to shift", task.ID)
			}
			at = task.End.Add(delta)
		}
		task, err = env.tasks.SetEnd(task, at)
		if err != nil {
			return err
		}
	}
	return printTask(env.clock.Now(), task)
}

// resolveEditTarget picks the task addressed by --task, or the running
// task of today, and attaches its day value.
func resolveEditTarget(env *env) (model.Task, error) {
	if editTask == 0 {
		today, err := env.days.Today()
		if err != nil {
			return model.Task{}, err
		}
		return env.tasks.Current(today)
	}
	task, err := env.tasks.ByID(editTask)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %d: %w", editTask, err)
	}
	day, err := env.days.ByID(task.DayID())
	if err != nil {
		return model.Task{}, fmt.Errorf("day of task %d: %w", editTask, err)
	}
	return task.WithDay(day), nil
}
