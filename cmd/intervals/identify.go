package main

import (
	"github.com/spf13/cobra"
)

var identifyJSON bool

var identifyCmd = &cobra.Command{
	Use:   "identify <note> <note> [asc|dsc]",
	Short: "Name the interval between two notes",
	Long: `Identify the interval from the first note to the second. Notes may carry up to
two sharps or flats. Direction defaults to asc.`,
	Example: "  intervals identify C D\n  intervals identify G# D# dsc",
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		name, err := newService().IntervalIdentification(args)
		printAnswer(cmd, identifyJSON, "identify", args, name, err)
	},
}

func init() {
	rootCmd.AddCommand(identifyCmd)
	identifyCmd.Flags().BoolVar(&identifyJSON, "json", false, "Output in JSON format")
}
