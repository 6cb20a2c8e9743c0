package core

import (
	"fmt"
	"sort"
)

// Interval names.
const (
	MinorSecond   = "m2"
	MajorSecond   = "M2"
	MinorThird    = "m3"
	MajorThird    = "M3"
	PerfectFourth = "P4"
	PerfectFifth  = "P5"
	MinorSixth    = "m6"
	MajorSixth    = "M6"
	MinorSeventh  = "m7"
	MajorSeventh  = "M7"
	PerfectOctave = "P8"
)

const (
	circleSize     = 12
	maxSemitoneKey = 12
)

var intervals = map[string]Interval{
	MinorSecond:   {Name: MinorSecond, Semitones: 1, Degree: 2},
	MajorSecond:   {Name: MajorSecond, Semitones: 2, Degree: 2},
	MinorThird:    {Name: MinorThird, Semitones: 3, Degree: 3},
	MajorThird:    {Name: MajorThird, Semitones: 4, Degree: 3},
	PerfectFourth: {Name: PerfectFourth, Semitones: 5, Degree: 4},
	PerfectFifth:  {Name: PerfectFifth, Semitones: 7, Degree: 5},
	MinorSixth:    {Name: MinorSixth, Semitones: 8, Degree: 6},
	MajorSixth:    {Name: MajorSixth, Semitones: 9, Degree: 6},
	MinorSeventh:  {Name: MinorSeventh, Semitones: 10, Degree: 7},
	MajorSeventh:  {Name: MajorSeventh, Semitones: 11, Degree: 7},
	PerfectOctave: {Name: PerfectOctave, Semitones: 12, Degree: 8},
}

// circle is one octave, one semitone per slot: C-D-EF-G-A-B
var circle = [circleSize]string{"C", "", "D", "", "E", "F", "", "G", "", "A", "", "B"}

// bySemitones[n] names the interval spanning n semitones; "" marks no entry.
var bySemitones [maxSemitoneKey + 1]string

var letterPositions = map[string]int{}

func init() {
	for _, iv := range intervals {
		bySemitones[iv.Semitones] = iv.Name
	}
	for pos, letter := range circle {
		if letter != "" {
			letterPositions[letter] = pos
		}
	}
}

// LookupInterval returns the table entry for name.
func LookupInterval(name string) (Interval, error) {
	iv, ok := intervals[name]
	if !ok {
		return Interval{}, fmt.Errorf("%w: %q", ErrUnknownInterval, name)
	}
	return iv, nil
}

// IntervalBySemitones returns the interval spanning exactly n semitones.
func IntervalBySemitones(n int) (Interval, error) {
	if n < 1 || n > maxSemitoneKey || bySemitones[n] == "" {
		return Interval{}, fmt.Errorf("%w: no interval spans %d semitones", ErrUnidentifiableInterval, n)
	}
	return intervals[bySemitones[n]], nil
}

// Intervals returns the table ordered by semitone count.
func Intervals() []Interval {
	list := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		list = append(list, iv)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Semitones < list[j].Semitones
	})
	return list
}

// wrap maps any position onto the circle.
func wrap(pos int) int {
	pos %= circleSize
	if pos < 0 {
		pos += circleSize
	}
	return pos
}
