package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMajorScaleNotes(t *testing.T) {
	assert := assert.New(t)
	scale := MajorScale(Note{Name: "C", Value: 60})
	notes := scale.Notes()

	assert.Len(notes, 8)
	wantOffsets := []int{0, 2, 4, 5, 7, 9, 11, 12}
	wantNames := []string{"C", "D", "E", "F", "G", "A", "B", "C"}
	for i, n := range notes {
		assert.Equal(60+wantOffsets[i], n.Value)
		assert.Equal(wantNames[i], n.Name)
	}
}

func TestMajorScaleValuesStrictlyIncrease(t *testing.T) {
	assert := assert.New(t)
	notes := MajorScale(NoteAt(66)).Notes()
	for i := 1; i < len(notes); i++ {
		assert.Greater(notes[i].Value, notes[i-1].Value)
	}
}

func TestMinorScaleNotes(t *testing.T) {
	assert := assert.New(t)
	notes := MinorScale(Note{Name: "A", Value: 69}).Notes()
	wantNames := []string{"A", "B", "C", "D", "E", "F", "G", "A"}
	assert.Len(notes, 8)
	for i, n := range notes {
		assert.Equal(wantNames[i], n.Name)
	}
}

func TestPentatonicAndBluesLengths(t *testing.T) {
	assert := assert.New(t)
	root := Note{Name: "E", Value: 64}
	assert.Len(PentatonicMajorScale(root).Notes(), 6)
	assert.Len(PentatonicMinorScale(root).Notes(), 6)
	assert.Len(BluesScale(root).Notes(), 7)
}

func TestScaleLabels(t *testing.T) {
	assert := assert.New(t)
	root := Note{Name: "G", Value: 67}
	assert.Equal("G Major", MajorScale(root).Name)
	assert.Equal("G Pentatonic Minor", PentatonicMinorScale(root).Name)
	assert.Equal("G Blues", BluesScale(root).Name)
}

func TestBluesScaleNotes(t *testing.T) {
	assert := assert.New(t)
	notes := BluesScale(Note{Name: "A", Value: 69}).Notes()
	wantNames := []string{"A", "C", "D", "D#/Eb", "E", "G", "A"}
	assert.Len(notes, 7)
	for i, n := range notes {
		assert.Equal(wantNames[i], n.Name)
	}
}
