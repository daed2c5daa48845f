package fretboard

import (
	"fmt"

	"github.com/fretwise/fretwise/constants"
	"github.com/fretwise/fretwise/theory"
)

// Fretboard is the immutable grid of notes sounded at each string/fret
// position in standard tuning. Strings are ordered high E first, the way
// tab is written; column 0 is the open string.
type Fretboard struct {
	Frets int
	grid  [constants.NumStrings][]theory.Note
}

// New builds a fretboard with the given number of frets.
func New(frets int) Fretboard {
	fb := Fretboard{Frets: frets}
	for s := 0; s < constants.NumStrings; s++ {
		fb.grid[s] = make([]theory.Note, frets+1)
		for f := 0; f <= frets; f++ {
			fb.grid[s][f] = theory.NoteAt(constants.OpenStringValues[s] + f)
		}
	}
	return fb
}

// NoteAt returns the note at a position, string 0 being the high E.
func (fb Fretboard) NoteAt(str, fret int) (theory.Note, error) {
	if str < 0 || str >= constants.NumStrings {
		return theory.Note{}, fmt.Errorf("string %v out of range 0-%v", str, constants.NumStrings-1)
	}
	if fret < 0 || fret > fb.Frets {
		return theory.Note{}, fmt.Errorf("fret %v out of range 0-%v", fret, fb.Frets)
	}
	return fb.grid[str][fret], nil
}

// Highlight marks every cell whose pitch class appears in notes. Matching
// compares pitch-class indices, not label text, so enharmonic spellings
// can't produce false hits.
func (fb Fretboard) Highlight(notes []theory.Note) [][]bool {
	classes := make(map[int]bool)
	for _, n := range notes {
		classes[n.PitchClass()] = true
	}
	res := make([][]bool, constants.NumStrings)
	for s, row := range fb.grid {
		res[s] = make([]bool, len(row))
		for f, note := range row {
			res[s][f] = classes[note.PitchClass()]
		}
	}
	return res
}
