package main

import (
	"github.com/spf13/cobra"

	"github.com/fentz26/ttrack/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive view of today's tasks",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	app := tui.New(env.days, env.tasks, env.clock)
	return app.Run()
}
