package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/intervals/pkg/adapters/midi"
	"github.com/aretw0/intervals/pkg/core"
)

var (
	exportOutput string
	exportOctave int
	exportBPM    float64
	exportBeats  int
	exportPair   bool
)

var exportCmd = &cobra.Command{
	Use:   "export <interval> <note> [asc|dsc]",
	Short: "Write an interval as a MIDI file",
	Long: `Write the start note and the constructed end note as a one-track Standard MIDI File.
With --pair the arguments are two notes and the interval between them is identified first.`,
	Example: "  intervals export P5 B -o fifth.mid\n  intervals export --pair G# D# dsc -o fourth.mid",
	Args:    cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		dir := core.Ascending
		if len(args) == 3 {
			d, err := core.ParseDirection(args[2])
			if err != nil {
				fatal("Error", err)
			}
			dir = d
		}

		var (
			track midi.Track
			err   error
		)
		if exportPair {
			track, err = midi.PairTrack(args[0], args[1], dir, exportOctave)
		} else {
			track, err = midi.IntervalTrack(args[0], args[1], dir, exportOctave)
		}
		if err != nil {
			fatal("Error building track", err)
		}

		output := exportOutput
		if output == "" {
			output = strings.NewReplacer(" = ", "_", "#", "s", " ", "_").Replace(track.Name) + ".mid"
		}

		opts := midi.DefaultOptions()
		opts.BPM = exportBPM
		opts.Beats = exportBeats
		if err := midi.Export(output, track, opts); err != nil {
			fatal("Error writing MIDI file", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s written to %s\n", track.Name, output)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default derived from the interval)")
	exportCmd.Flags().IntVar(&exportOctave, "octave", 4, "Octave of the start note (C4 = middle C)")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", 120, "Tempo in beats per minute")
	exportCmd.Flags().IntVar(&exportBeats, "beats", 1, "Length of each note in beats")
	exportCmd.Flags().BoolVar(&exportPair, "pair", false, "Treat the arguments as two notes")
}
