package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/intervals/pkg/core"
)

func TestIntervals_Table(t *testing.T) {
	list := core.Intervals()
	require.Len(t, list, 11)

	names := make([]string, 0, len(list))
	for _, iv := range list {
		names = append(names, iv.Name)
	}
	assert.Equal(t, []string{"m2", "M2", "m3", "M3", "P4", "P5", "m6", "M6", "m7", "M7", "P8"}, names)
}

func TestLookupInterval(t *testing.T) {
	iv, err := core.LookupInterval("P5")
	require.NoError(t, err)
	assert.Equal(t, core.Interval{Name: "P5", Semitones: 7, Degree: 5}, iv)

	_, err = core.LookupInterval("A4")
	assert.ErrorIs(t, err, core.ErrUnknownInterval)
}

func TestIntervalBySemitones(t *testing.T) {
	for _, iv := range core.Intervals() {
		got, err := core.IntervalBySemitones(iv.Semitones)
		require.NoError(t, err)
		assert.Equal(t, iv, got)
	}

	// 6 semitones (the tritone) has no entry.
	for _, n := range []int{-1, 0, 6, 13} {
		_, err := core.IntervalBySemitones(n)
		assert.ErrorIs(t, err, core.ErrUnidentifiableInterval, n)
	}
}

func TestParseDirection(t *testing.T) {
	d, err := core.ParseDirection("dsc")
	require.NoError(t, err)
	assert.Equal(t, core.Descending, d)
	assert.Equal(t, -1, d.Step())
	assert.Equal(t, 1, core.Ascending.Step())

	_, err = core.ParseDirection("desc")
	assert.ErrorIs(t, err, core.ErrInvalidDirection)
}
