package midiout

import (
	"github.com/fretwise/fretwise/theory"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	channel         = 0
	velocity        = 90
	// General MIDI acoustic guitar (nylon)
	guitarProgram = 24
)

func newSMF() (*smf.SMF, smf.Track) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, midi.ProgramChange(channel, guitarProgram))
	return s, tr
}

// ScaleSMF plays the scale degrees in order, a quarter note each.
func ScaleSMF(scale theory.Scale) *smf.SMF {
	s, tr := newSMF()
	for _, note := range scale.Notes() {
		tr.Add(0, midi.NoteOn(channel, uint8(note.Value), velocity))
		tr.Add(ticksPerQuarter, midi.NoteOff(channel, uint8(note.Value)))
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

// ChordSMF holds the chord for a whole note, then arpeggiates it in
// eighth notes.
func ChordSMF(chord theory.Chord) *smf.SMF {
	s, tr := newSMF()
	notes := chord.Notes()

	for _, note := range notes {
		tr.Add(0, midi.NoteOn(channel, uint8(note.Value), velocity))
	}
	for i, note := range notes {
		var delta uint32
		if i == 0 {
			delta = ticksPerQuarter * 4
		}
		tr.Add(delta, midi.NoteOff(channel, uint8(note.Value)))
	}

	for _, note := range notes {
		tr.Add(0, midi.NoteOn(channel, uint8(note.Value), velocity))
		tr.Add(ticksPerQuarter/2, midi.NoteOff(channel, uint8(note.Value)))
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

// ProgressionSMF strums each chord of the progression for one bar.
func ProgressionSMF(prog theory.Progression) *smf.SMF {
	s, tr := newSMF()
	for _, chord := range prog.Chords {
		notes := chord.Notes()
		for _, note := range notes {
			tr.Add(0, midi.NoteOn(channel, uint8(note.Value), velocity))
		}
		for i, note := range notes {
			var delta uint32
			if i == 0 {
				delta = ticksPerQuarter * 4
			}
			tr.Add(delta, midi.NoteOff(channel, uint8(note.Value)))
		}
	}
	tr.Close(0)
	s.Add(tr)
	return s
}

// WriteFile renders the SMF to a .mid file on disk.
func WriteFile(s *smf.SMF, path string) error {
	return s.WriteFile(path)
}
