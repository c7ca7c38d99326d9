package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fentz26/ttrack/internal/store"
)

var startCmd = &cobra.Command{
	Use:   "start <description>",
	Short: "Start a new task, stopping the running one first",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	today, err := env.days.Today()
	if err != nil {
		return err
	}
	if _, err := env.tasks.Current(today); err == nil {
		warn("stopping the running task")
	} else if !errors.Is(err, store.ErrNoActiveTask) {
		return err
	}
	task, err := env.tasks.Start(today, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return printTask(env.clock.Now(), task)
}
