package midi_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/intervals/pkg/adapters/midi"
	"github.com/aretw0/intervals/pkg/core"
)

func TestIntervalTrack(t *testing.T) {
	track, err := midi.IntervalTrack("P5", "B", core.Ascending, 3)
	require.NoError(t, err)
	assert.Equal(t, uint8(59), track.Start)
	assert.Equal(t, uint8(66), track.End)
	assert.Equal(t, "P5 B asc = F#", track.Name)

	track, err = midi.IntervalTrack("M3", "Cb", core.Descending, 4)
	require.NoError(t, err)
	assert.Equal(t, uint8(59), track.Start)
	assert.Equal(t, uint8(55), track.End)

	_, err = midi.IntervalTrack("M9", "C", core.Ascending, 4)
	assert.ErrorIs(t, err, core.ErrUnknownInterval)

	_, err = midi.IntervalTrack("P8", "C", core.Descending, -1)
	assert.ErrorContains(t, err, "out of MIDI range")
}

func TestPairTrack(t *testing.T) {
	track, err := midi.PairTrack("G#", "D#", core.Descending, 4)
	require.NoError(t, err)
	assert.Equal(t, uint8(68), track.Start)
	assert.Equal(t, uint8(63), track.End)

	_, err = midi.PairTrack("C", "C", core.Ascending, 4)
	assert.ErrorIs(t, err, core.ErrUnidentifiableInterval)
}

func TestExport(t *testing.T) {
	track, err := midi.IntervalTrack("M2", "C", core.Ascending, 4)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "m2.mid")
	require.NoError(t, midi.Export(path, track, midi.DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("MThd")))
	assert.True(t, bytes.Contains(data, []byte("MTrk")))
	assert.True(t, bytes.Contains(data, []byte(track.Name)))
}

func TestExport_Options(t *testing.T) {
	track, err := midi.PairTrack("G#", "D#", core.Descending, 4)
	require.NoError(t, err)
	dir := t.TempDir()

	opts := midi.DefaultOptions()
	opts.Channel = 15
	opts.Velocity = 127
	opts.Beats = 0
	require.NoError(t, midi.Export(filepath.Join(dir, "edge.mid"), track, opts))

	tests := []struct {
		name string
		opts midi.Options
		want string
	}{
		{"channel", midi.Options{Channel: 16, Velocity: 100}, "channel 16 out of range"},
		{"velocity", midi.Options{Velocity: 128}, "velocity 128 out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".mid")
			err := midi.Export(path, track, tt.opts)
			assert.ErrorContains(t, err, tt.want)
			assert.NoFileExists(t, path)
		})
	}
}
