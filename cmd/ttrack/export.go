package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fentz26/ttrack/internal/export"
	"github.com/fentz26/ttrack/internal/model"
)

var (
	exportFormat string
	exportDays   int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded days to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format: json, csv")
	exportCmd.Flags().IntVar(&exportDays, "days", 7, "How many recorded days to export, newest first")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportDays <= 0 {
		return fmt.Errorf("--days must be positive")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	days, err := env.days.ListPassed(exportDays)
	if err != nil {
		return err
	}
	loaded := make([]model.DayWithTasks, 0, len(days))
	for _, day := range days {
		withTasks, err := env.tasks.DayWithTasks(day)
		if err != nil {
			return err
		}
		loaded = append(loaded, withTasks)
	}

	doc := export.NewDocument(loaded, env.clock.Now())
	switch exportFormat {
	case "json":
		return doc.WriteJSON(os.Stdout)
	case "csv":
		return doc.WriteCSV(os.Stdout)
	default:
		return fmt.Errorf("unknown export format %q", exportFormat)
	}
}
