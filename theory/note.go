package theory

import (
	"fmt"
	"strings"
)

// PitchClassNames are the 12 canonical note labels, accidentals spelled as
// enharmonic pairs. Index is the pitch class (C = 0).
var PitchClassNames = [12]string{
	"C", "C#/Db", "D", "D#/Eb", "E", "F",
	"F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B",
}

// Note is a single pitch: a display label plus an absolute semitone value
// (C4 = 60). Notes are values, never mutated; Transpose returns a new one.
type Note struct {
	Name  string
	Value int
}

// mod12 uses floor division so negative values still land in 0..11.
func mod12(v int) int {
	return ((v % 12) + 12) % 12
}

// NoteAt returns the canonical note for an absolute semitone value.
func NoteAt(value int) Note {
	return Note{Name: PitchClassNames[mod12(value)], Value: value}
}

// Transpose returns the note a number of semitones away. Negative amounts
// wrap correctly via floor modulo.
func (n Note) Transpose(semitones int) Note {
	return NoteAt(n.Value + semitones)
}

// PitchClass is the note's index into PitchClassNames.
func (n Note) PitchClass() int {
	return mod12(n.Value)
}

// ParseNote resolves user input like "C", "f#" or "Bb" to a canonical note
// in the octave at middle C. Exact label matches win; otherwise the input
// may match inside an enharmonic pair, so "C#" finds "C#/Db".
func ParseNote(input string) (Note, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return Note{}, fmt.Errorf("empty note name")
	}
	for i, name := range PitchClassNames {
		if strings.EqualFold(name, needle) {
			return Note{Name: name, Value: 60 + i}, nil
		}
	}
	for i, name := range PitchClassNames {
		if strings.Contains(strings.ToLower(name), needle) {
			return Note{Name: name, Value: 60 + i}, nil
		}
	}
	return Note{}, fmt.Errorf("unknown note name %q", input)
}
