// Package midi writes intervals as Standard MIDI Files so they can be
// auditioned in any player or DAW.
package midi

import (
	"errors"
	"fmt"

	"gitlab.com/gomidi/midi/smf"
	"gitlab.com/gomidi/midi/writer"

	"github.com/aretw0/intervals/pkg/core"
)

// quarterTicks matches the writer's default metric resolution.
const quarterTicks = 960

// Options controls how a Track is rendered.
type Options struct {
	BPM float64
	// Velocity is 0..127.
	Velocity uint8
	// Channel is 0..15.
	Channel uint8
	// Beats is the length of each note in quarter notes.
	Beats int
}

// DefaultOptions returns 120 BPM, velocity 100, channel 0, one beat per note.
func DefaultOptions() Options {
	return Options{BPM: 120, Velocity: 100, Channel: 0, Beats: 1}
}

// Track is a melodic interval: the start key followed by the end key.
type Track struct {
	Name  string
	Start uint8
	End   uint8
}

// IntervalTrack builds the track for the note interval away from start,
// with start placed in octave (C4 = 60).
func IntervalTrack(interval, start string, dir core.Direction, octave int) (Track, error) {
	end, err := core.Construct(interval, start, dir)
	if err != nil {
		return Track{}, err
	}
	iv, err := core.LookupInterval(interval)
	if err != nil {
		return Track{}, err
	}
	note, err := core.ParseNote(start, core.MaxConstructionAccidentals)
	if err != nil {
		return Track{}, err
	}
	return newTrack(fmt.Sprintf("%s %s %s = %s", interval, start, dir, end), note, iv, dir, octave)
}

// PairTrack builds the track for two notes whose interval Identify names.
func PairTrack(start, end string, dir core.Direction, octave int) (Track, error) {
	name, err := core.Identify(start, end, dir)
	if err != nil {
		return Track{}, err
	}
	iv, err := core.LookupInterval(name)
	if err != nil {
		return Track{}, err
	}
	note, err := core.ParseNote(start, core.MaxIdentificationAccidentals)
	if err != nil {
		return Track{}, err
	}
	return newTrack(fmt.Sprintf("%s %s %s = %s", start, end, dir, name), note, iv, dir, octave)
}

func newTrack(name string, start core.Note, iv core.Interval, dir core.Direction, octave int) (Track, error) {
	from := start.MIDIKey(octave)
	to := from + dir.Step()*iv.Semitones
	for _, k := range []int{from, to} {
		if k < 0 || k > 127 {
			return Track{}, fmt.Errorf("key %d out of MIDI range in octave %d", k, octave)
		}
	}
	return Track{Name: name, Start: uint8(from), End: uint8(to)}, nil
}

// Validate reports options the writer cannot encode.
func (o Options) Validate() error {
	if o.Channel > 15 {
		return fmt.Errorf("channel %d out of range 0..15", o.Channel)
	}
	if o.Velocity > 127 {
		return fmt.Errorf("velocity %d out of range 0..127", o.Velocity)
	}
	return nil
}

// Export writes t to path as a single-track SMF.
func Export(path string, t Track, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	if opts.Beats < 1 {
		opts.Beats = 1
	}
	length := uint32(opts.Beats * quarterTicks)

	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		if err := writer.TrackSequenceName(wr, t.Name); err != nil {
			return err
		}
		if opts.BPM > 0 {
			if err := writer.TempoBPM(wr, opts.BPM); err != nil {
				return err
			}
		}
		wr.SetChannel(opts.Channel)

		for _, key := range []uint8{t.Start, t.End} {
			if err := writer.NoteOn(wr, key, opts.Velocity); err != nil {
				return err
			}
			wr.SetDelta(length)
			if err := writer.NoteOff(wr, key); err != nil {
				return err
			}
		}
		// Closing the last track reports smf.ErrFinished.
		if err := writer.EndOfTrack(wr); err != nil && !errors.Is(err, smf.ErrFinished) {
			return err
		}
		return nil
	})
}
