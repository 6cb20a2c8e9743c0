package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/intervals"
)

var tableJSON bool

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List the supported intervals",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		list := intervals.Intervals()

		if tableJSON {
			if err := writeJSON(cmd.OutOrStdout(), list); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSEMITONES\tDEGREE")
		for _, iv := range list {
			fmt.Fprintf(tw, "%s\t%d\t%d\n", iv.Name, iv.Semitones, iv.Degree)
		}
		if err := tw.Flush(); err != nil {
			fatal("Error writing table", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "Output in JSON format")
}
