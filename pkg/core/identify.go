package core

// Identify names the interval from start to end in direction dir.
// Notes may carry up to two accidentals. Equal letters count as zero
// semitones, so identical notes never identify.
func Identify(start, end string, dir Direction) (string, error) {
	if _, err := ParseDirection(string(dir)); err != nil {
		return "", err
	}
	from, err := ParseNote(start, MaxIdentificationAccidentals)
	if err != nil {
		return "", err
	}
	to, err := ParseNote(end, MaxIdentificationAccidentals)
	if err != nil {
		return "", err
	}

	semitones := span(from.Position, to.Position, dir)
	if dir == Ascending {
		semitones += to.Accidentals - from.Accidentals
	} else {
		semitones += from.Accidentals - to.Accidentals
	}

	iv, err := IntervalBySemitones(semitones)
	if err != nil {
		return "", err
	}
	return iv.Name, nil
}

// span counts the slots walked from one circle position to another.
func span(from, to int, dir Direction) int {
	n := 0
	for pos := from; pos != to; pos = wrap(pos + dir.Step()) {
		n++
	}
	return n
}
