package core

// Construct returns the note lying interval away from start in direction dir.
//
// The walk steps one semitone slot at a time and counts a degree on every
// lettered slot. The slot distance covered is the span the letters alone
// account for; the end note's accidental makes up the difference to the
// interval's semitone count, corrected by the start note's own accidental.
func Construct(interval, start string, dir Direction) (string, error) {
	if _, err := ParseDirection(string(dir)); err != nil {
		return "", err
	}
	note, err := ParseNote(start, MaxConstructionAccidentals)
	if err != nil {
		return "", err
	}
	iv, err := LookupInterval(interval)
	if err != nil {
		return "", err
	}

	step := dir.Step()
	pos := note.Position
	distance := 0
	for degree := 1; degree != iv.Degree; {
		pos = wrap(pos + step)
		distance++
		if circle[pos] != "" {
			degree++
		}
	}

	var offset int
	if dir == Ascending {
		offset = iv.Semitones + note.Accidentals - distance
	} else {
		offset = distance - iv.Semitones + note.Accidentals
	}

	return RenderNote(circle[pos], offset), nil
}
