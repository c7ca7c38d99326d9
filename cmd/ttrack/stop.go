package main

import (
	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the currently running task",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	today, err := env.days.Today()
	if err != nil {
		return err
	}
	task, err := env.tasks.Stop(today)
	if err != nil {
		return err
	}
	return printTask(env.clock.Now(), task)
}
