package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fentz26/ttrack/internal/config"
	"github.com/fentz26/ttrack/internal/model"
	"github.com/fentz26/ttrack/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ttrack",
	Short: "ttrack - track the time you spend on projects and tasks",
	Long: `ttrack is a single-binary personal time tracker. Tasks occupy
non-overlapping intervals within a day; starting a task stops the running
one, and reports group durations by description per day or week.`,
	SilenceUsage: true,
}

var jsonOutput bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print machine-readable JSON instead of styled output")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(yesterdayCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(tuiCmd)
}

// env bundles everything one command invocation needs: the configuration,
// the shared store handle and the repositories built on it.
type env struct {
	cfg   config.Config
	store *store.Store
	days  *store.Days
	tasks *store.Tasks
	clock model.Clock
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, err
	}
	clock := model.SystemClock()
	return &env{
		cfg:   cfg,
		store: st,
		days:  store.NewDays(st, clock),
		tasks: store.NewTasks(st, clock),
		clock: clock,
	}, nil
}

func (e *env) Close() error {
	return e.store.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
