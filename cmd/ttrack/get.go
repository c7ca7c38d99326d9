package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fentz26/ttrack/internal/store"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the currently running task",
	Args:  cobra.NoArgs,
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	today, err := env.days.Today()
	if err != nil {
		return err
	}
	task, err := env.tasks.Current(today)
	if errors.Is(err, store.ErrNoActiveTask) {
		// Idle is a normal outcome for get, not a failure.
		fmt.Println("no task is currently running")
		return nil
	}
	if err != nil {
		return err
	}
	return printTask(env.clock.Now(), task)
}
