package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOneFourFiveInCMajor(t *testing.T) {
	assert := assert.New(t)
	scale := MajorScale(Note{Name: "C", Value: 60})

	prog, err := FromRomanNumerals(scale, []string{"I", "IV", "V"}, "C Major I-IV-V")
	assert.NoError(err)
	assert.Len(prog.Chords, 3)

	assert.Equal("C Major", prog.Chords[0].Name)
	assert.Equal("F Major", prog.Chords[1].Name)
	assert.Equal("G Major", prog.Chords[2].Name)
	for _, chord := range prog.Chords {
		assert.Equal([]int{4, 7}, chord.Intervals)
	}
}

func TestPopProgressionMixesFamilies(t *testing.T) {
	assert := assert.New(t)
	scale := MajorScale(Note{Name: "C", Value: 60})

	prog, err := FromRomanNumerals(scale, []string{"I", "V", "vi", "IV"}, "Pop")
	assert.NoError(err)
	assert.Equal("C Major", prog.Chords[0].Name)
	assert.Equal("G Major", prog.Chords[1].Name)
	assert.Equal("A Minor", prog.Chords[2].Name)
	assert.Equal("F Major", prog.Chords[3].Name)
}

func TestSeventhNumeralsPickSeventhChords(t *testing.T) {
	assert := assert.New(t)
	scale := MajorScale(Note{Name: "C", Value: 60})

	prog, err := FromRomanNumerals(scale, []string{"ii7", "V7", "I"}, "Jazz")
	assert.NoError(err)
	assert.Equal("Dmin7", prog.Chords[0].Name)
	assert.Equal("G7", prog.Chords[1].Name)
	assert.Equal("C Major", prog.Chords[2].Name)
}

func TestUnknownNumeralIsAnError(t *testing.T) {
	assert := assert.New(t)
	scale := MajorScale(Note{Name: "C", Value: 60})

	_, err := FromRomanNumerals(scale, []string{"I", "VIII"}, "bad")
	assert.Error(err)
	assert.Contains(err.Error(), "VIII")

	_, err = FromRomanNumerals(scale, []string{"X"}, "bad")
	assert.Error(err)

	_, err = FromRomanNumerals(scale, []string{""}, "bad")
	assert.Error(err)
}

func TestDegreeBeyondScaleIsAnError(t *testing.T) {
	assert := assert.New(t)
	scale := PentatonicMajorScale(Note{Name: "C", Value: 60})

	// a pentatonic scale has no 7th degree
	_, err := FromRomanNumerals(scale, []string{"vii"}, "bad")
	assert.Error(err)
	assert.Contains(err.Error(), "degree")
}
