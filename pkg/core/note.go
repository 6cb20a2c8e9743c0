package core

import (
	"fmt"
	"strings"
)

// Accidental limits per operation.
const (
	MaxConstructionAccidentals   = 1
	MaxIdentificationAccidentals = 2
)

const (
	sharp = '#'
	flat  = 'b'
)

// ParseNote validates token against ^[A-G](#{0,n}|b{0,n})$ with n = maxAccidentals
// and resolves its circle position and signed accidental count.
func ParseNote(token string, maxAccidentals int) (Note, error) {
	if token == "" {
		return Note{}, fmt.Errorf("%w: empty token", ErrInvalidNote)
	}

	letter := token[:1]
	pos, ok := letterPositions[letter]
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, token)
	}

	rest := token[1:]
	if len(rest) > maxAccidentals {
		return Note{}, fmt.Errorf("%w: %q has more than %d accidentals", ErrInvalidNote, token, maxAccidentals)
	}

	accidentals := 0
	if rest != "" {
		symbol := rest[0]
		if symbol != sharp && symbol != flat {
			return Note{}, fmt.Errorf("%w: %q", ErrInvalidNote, token)
		}
		if strings.Count(rest, string(symbol)) != len(rest) {
			return Note{}, fmt.Errorf("%w: %q mixes accidentals", ErrInvalidNote, token)
		}
		accidentals = len(rest)
		if symbol == flat {
			accidentals = -accidentals
		}
	}

	return Note{
		Letter:      letter,
		Position:    pos,
		Accidentals: accidentals,
	}, nil
}

// RenderNote appends offset sharps (offset > 0) or |offset| flats (offset < 0)
// to letter.
func RenderNote(letter string, offset int) string {
	switch {
	case offset > 0:
		return letter + strings.Repeat(string(sharp), offset)
	case offset < 0:
		return letter + strings.Repeat(string(flat), -offset)
	}
	return letter
}
