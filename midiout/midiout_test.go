package midiout

import (
	"bytes"
	"testing"

	"github.com/fretwise/fretwise/theory"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func roundTrip(t *testing.T, s *smf.SMF) *smf.SMF {
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	assert.NoError(t, err)

	read, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, err)
	return read
}

func countNoteOns(s *smf.SMF) ([]uint8, int) {
	var keys []uint8
	var offs int
	for _, track := range s.Tracks {
		for _, event := range track {
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				keys = append(keys, key)
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				offs++
			}
		}
	}
	return keys, offs
}

func TestScaleSMF(t *testing.T) {
	assert := assert.New(t)
	scale := theory.MajorScale(theory.Note{Name: "C", Value: 60})

	read := roundTrip(t, ScaleSMF(scale))
	keys, offs := countNoteOns(read)

	assert.Equal([]uint8{60, 62, 64, 65, 67, 69, 71, 72}, keys)
	assert.Equal(8, offs)
}

func TestChordSMF(t *testing.T) {
	assert := assert.New(t)
	chord := theory.Dominant7Chord(theory.Note{Name: "G", Value: 67})

	read := roundTrip(t, ChordSMF(chord))
	keys, offs := countNoteOns(read)

	// held block then arpeggio: each tone sounds twice
	assert.Len(keys, 8)
	assert.Equal(8, offs)
	assert.Equal(uint8(67), keys[0])
}

func TestProgressionSMF(t *testing.T) {
	assert := assert.New(t)
	scale := theory.MajorScale(theory.Note{Name: "C", Value: 60})
	prog, err := theory.FromRomanNumerals(scale, []string{"I", "IV", "V"}, "I-IV-V")
	assert.NoError(err)

	read := roundTrip(t, ProgressionSMF(prog))
	keys, offs := countNoteOns(read)

	// three triads, one bar each
	assert.Len(keys, 9)
	assert.Equal(9, offs)
	assert.Equal(uint8(60), keys[0])
	assert.Equal(uint8(65), keys[3])
	assert.Equal(uint8(67), keys[6])
}
