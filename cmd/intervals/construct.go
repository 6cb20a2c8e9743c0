package main

import (
	"github.com/spf13/cobra"
)

var constructJSON bool

var constructCmd = &cobra.Command{
	Use:   "construct <interval> <note> [asc|dsc]",
	Short: "Find the note an interval away from a start note",
	Long: `Construct the end note of an interval. Intervals: m2 M2 m3 M3 P4 P5 m6 M6 m7 M7 P8.
The start note may carry one sharp or flat. Direction defaults to asc.`,
	Example: "  intervals construct P5 B\n  intervals construct M3 Cb dsc",
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		note, err := newService().IntervalConstruction(args)
		printAnswer(cmd, constructJSON, "construct", args, note, err)
	},
}

func init() {
	rootCmd.AddCommand(constructCmd)
	constructCmd.Flags().BoolVar(&constructJSON, "json", false, "Output in JSON format")
}
