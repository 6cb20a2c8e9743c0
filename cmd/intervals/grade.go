package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/intervals"
)

var (
	gradeJSON    bool
	gradeStats   bool
	gradeWorkers int
)

var gradeCmd = &cobra.Command{
	Use:   "grade [file|dir|glob...]",
	Short: "Grade worksheet files",
	Long: `Grade YAML, JSON or CSV worksheets. Directories are searched with the configured
pattern (default **/*.{yaml,yml,json,csv}). Exits non-zero when any exercise fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		svc := newService(intervals.WithWorkers(gradeWorkers))

		paths, err := svc.Expand(args)
		if err != nil {
			fatal("Error finding worksheets", err)
		}
		if len(paths) == 0 {
			fatal("Error finding worksheets", fmt.Errorf("no worksheets match %v", args))
		}

		slog.Debug("grading", "sheets", len(paths), "workers", svc.Settings().Workers)
		report, err := svc.GradeAll(cmd.Context(), paths)
		if err != nil {
			fatal("Error grading worksheets", err)
		}

		if gradeJSON {
			err = writeJSON(cmd.OutOrStdout(), report)
		} else {
			err = report.WriteText(cmd.OutOrStdout())
		}
		if err != nil {
			fatal("Error writing report", err)
		}

		if gradeStats {
			if err := writeJSON(cmd.ErrOrStderr(), svc.State()); err != nil {
				fatal("Error encoding stats", err)
			}
		}

		if !report.OK() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(gradeCmd)
	gradeCmd.Flags().BoolVar(&gradeJSON, "json", false, "Output in JSON format")
	gradeCmd.Flags().BoolVar(&gradeStats, "stats", false, "Print service counters to stderr")
	gradeCmd.Flags().IntVar(&gradeWorkers, "workers", 0, "Sheets graded concurrently (default from config, 4)")
}
