package fretboard

import (
	"testing"

	"github.com/fretwise/fretwise/constants"
	"github.com/fretwise/fretwise/theory"
	"github.com/stretchr/testify/assert"
)

func TestEveryCellIsOpenValuePlusFret(t *testing.T) {
	assert := assert.New(t)
	fb := New(constants.DefaultFrets)
	for s := 0; s < constants.NumStrings; s++ {
		for f := 0; f <= fb.Frets; f++ {
			note, err := fb.NoteAt(s, f)
			assert.NoError(err)
			assert.Equal(constants.OpenStringValues[s]+f, note.Value)
		}
	}
}

func TestOpenHighEString(t *testing.T) {
	assert := assert.New(t)
	fb := New(12)
	note, err := fb.NoteAt(0, 0)
	assert.NoError(err)
	assert.Equal("E", note.Name)
	assert.Equal(64, note.Value)
}

func TestNoteAtBounds(t *testing.T) {
	assert := assert.New(t)
	fb := New(12)

	// the last column is a real fret
	note, err := fb.NoteAt(3, 12)
	assert.NoError(err)
	assert.Equal(50+12, note.Value)

	_, err = fb.NoteAt(3, 13)
	assert.Error(err)
	_, err = fb.NoteAt(3, -1)
	assert.Error(err)
	_, err = fb.NoteAt(6, 0)
	assert.Error(err)
	_, err = fb.NoteAt(-1, 0)
	assert.Error(err)
}

func TestHighlightMatchesPitchClasses(t *testing.T) {
	assert := assert.New(t)
	fb := New(12)
	chord := theory.MajorChord(theory.Note{Name: "C", Value: 60})
	marks := fb.Highlight(chord.Notes())

	// B string fret 1 is C
	assert.True(marks[1][1])
	// open G string
	assert.True(marks[2][0])
	// open high E string
	assert.True(marks[0][0])
	// high E fret 1 is F, not a C major tone
	assert.False(marks[0][1])

	for s := 0; s < constants.NumStrings; s++ {
		for f := 0; f <= 12; f++ {
			note, err := fb.NoteAt(s, f)
			assert.NoError(err)
			class := note.PitchClass()
			want := class == 0 || class == 4 || class == 7
			assert.Equal(want, marks[s][f])
		}
	}
}

func TestHighlightIgnoresOctaves(t *testing.T) {
	assert := assert.New(t)
	fb := New(12)
	// same pitch class two octaves apart
	marks := fb.Highlight([]theory.Note{theory.NoteAt(36)})
	note, _ := fb.NoteAt(1, 1) // C on the B string
	assert.Equal(0, note.PitchClass())
	assert.True(marks[1][1])
}

func TestRenderWindow(t *testing.T) {
	assert := assert.New(t)
	fb := New(12)

	out, err := fb.Render(0, 12, nil)
	assert.NoError(err)
	assert.Contains(out, "E | ")
	assert.Contains(out, "12")

	_, err = fb.Render(5, 13, nil)
	assert.Error(err)
	_, err = fb.Render(-1, 5, nil)
	assert.Error(err)
	_, err = fb.Render(8, 3, nil)
	assert.Error(err)
}

func TestRenderHighlights(t *testing.T) {
	assert := assert.New(t)
	fb := New(12)
	scale := theory.MajorScale(theory.Note{Name: "C", Value: 60})

	out, err := fb.Render(0, 5, fb.Highlight(scale.Notes()))
	assert.NoError(err)
	assert.Contains(out, "[C]")
	assert.Contains(out, ".")
}
