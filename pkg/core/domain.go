// Package core holds the interval arithmetic: the note circle, the interval
// table, note parsing and the construction/identification algorithms.
package core

import "fmt"

// Direction is the traversal order on the note circle.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "dsc"
)

// ParseDirection validates a direction token.
func ParseDirection(token string) (Direction, error) {
	switch d := Direction(token); d {
	case Ascending, Descending:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, token)
}

// Step returns +1 for Ascending and -1 for Descending.
func (d Direction) Step() int {
	if d == Descending {
		return -1
	}
	return 1
}

// Interval is an entry of the interval table.
type Interval struct {
	Name      string `json:"name" yaml:"name"`
	Semitones int    `json:"semitones" yaml:"semitones"`
	// Degree counts natural letters spanned, both endpoints included.
	Degree int `json:"degree" yaml:"degree"`
}

func (i Interval) String() string {
	return i.Name
}

// Note is a parsed note token.
type Note struct {
	Letter string
	// Position is the letter's slot on the note circle.
	Position int
	// Accidentals is positive for sharps, negative for flats.
	Accidentals int
}

func (n Note) String() string {
	return RenderNote(n.Letter, n.Accidentals)
}

// PitchClass returns the sounding semitone of the note within an octave, 0 for C.
func (n Note) PitchClass() int {
	return wrap(n.Position + n.Accidentals)
}

// MIDIKey returns the MIDI key number of the note in the given octave, with
// C4 = 60. Accidentals may cross the octave boundary: Cb4 is 59.
func (n Note) MIDIKey(octave int) int {
	return (octave+1)*circleSize + n.Position + n.Accidentals
}
