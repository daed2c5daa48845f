package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDominant7Notes(t *testing.T) {
	assert := assert.New(t)
	root := Note{Name: "C", Value: 60}
	notes := Dominant7Chord(root).Notes()

	want := []Note{root, root.Transpose(4), root.Transpose(7), root.Transpose(10)}
	assert.Equal(want, notes)
}

func TestChordPresetIntervals(t *testing.T) {
	assert := assert.New(t)
	root := Note{Name: "A", Value: 69}

	assert.Equal([]int{4, 7}, MajorChord(root).Intervals)
	assert.Equal([]int{3, 7}, MinorChord(root).Intervals)
	assert.Equal([]int{4, 7, 10}, Dominant7Chord(root).Intervals)
	assert.Equal([]int{4, 7, 11}, Major7Chord(root).Intervals)
	assert.Equal([]int{3, 7, 10}, Minor7Chord(root).Intervals)
}

func TestChordLabels(t *testing.T) {
	assert := assert.New(t)
	root := Note{Name: "C", Value: 60}
	assert.Equal("C Major", MajorChord(root).Name)
	assert.Equal("C Minor", MinorChord(root).Name)
	assert.Equal("C7", Dominant7Chord(root).Name)
	assert.Equal("CMaj7", Major7Chord(root).Name)
	assert.Equal("Cmin7", Minor7Chord(root).Name)
}

func TestChordNotesKeepDeclaredOrder(t *testing.T) {
	assert := assert.New(t)
	chord := Chord{Name: "weird", Root: NoteAt(60), Intervals: []int{7, 4, 4}}
	notes := chord.Notes()
	assert.Equal([]int{60, 67, 64, 64}, []int{notes[0].Value, notes[1].Value, notes[2].Value, notes[3].Value})
}

func TestChordByQuality(t *testing.T) {
	assert := assert.New(t)
	root := Note{Name: "D", Value: 62}

	chord, err := ChordByQuality("Minor 7", root)
	assert.NoError(err)
	assert.Equal("Dmin7", chord.Name)

	_, err = ChordByQuality("Diminished", root)
	assert.Error(err)
}

func TestIdentifyChord(t *testing.T) {
	assert := assert.New(t)

	name, ok := IdentifyChord([]int{67, 71, 74})
	assert.True(ok)
	assert.Equal("G Major", name)

	// octave doublings don't change the answer
	name, ok = IdentifyChord([]int{55, 67, 71, 74, 79})
	assert.True(ok)
	assert.Equal("G Major", name)

	name, ok = IdentifyChord([]int{60, 64, 67, 70})
	assert.True(ok)
	assert.Equal("C Dominant 7", name)

	_, ok = IdentifyChord([]int{60, 61})
	assert.False(ok)

	_, ok = IdentifyChord(nil)
	assert.False(ok)
}
