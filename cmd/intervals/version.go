package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/intervals"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of intervals",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "intervals version %s\n", strings.TrimSpace(intervals.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
