package trainer

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/fretwise/fretwise/constants"
	"github.com/fretwise/fretwise/fretboard"
	"github.com/fretwise/fretwise/theory"
)

// Kind tags the quiz families the practice menu offers.
type Kind string

const (
	KindInterval     Kind = "interval"
	KindFretboard    Kind = "fretboard"
	KindChordBuild   Kind = "chord-build"
	KindChordQuality Kind = "chord-quality"
)

// Kinds lists the quiz families in menu order.
var Kinds = []Kind{KindInterval, KindFretboard, KindChordBuild, KindChordQuality}

// Label is the menu title for a quiz kind.
func Label(kind Kind) string {
	switch kind {
	case KindInterval:
		return "Interval Recognition"
	case KindFretboard:
		return "Fretboard Note Recognition"
	case KindChordBuild:
		return "Chord Construction"
	case KindChordQuality:
		return "Chord Quality Recognition"
	}
	return string(kind)
}

// Question is one prompt/answer pair. Answer is what gets shown back to the
// user; Notes carries the underlying pitches for fuzzy grading.
type Question struct {
	Kind   Kind
	Prompt string
	Answer string
	Notes  []theory.Note
}

func randomRoot(r *rand.Rand) theory.Note {
	idx := r.Intn(12)
	return theory.Note{Name: theory.PitchClassNames[idx], Value: 60 + idx}
}

// NewIntervalQuestion asks for the name of a random interval of 1-12
// semitones above a random root.
func NewIntervalQuestion(r *rand.Rand) Question {
	root := randomRoot(r)
	size := 1 + r.Intn(12)
	end := root.Transpose(size)
	name, _ := theory.IntervalName(size)
	return Question{
		Kind:   KindInterval,
		Prompt: fmt.Sprintf("What interval is %v up to %v?", root.Name, end.Name),
		Answer: fmt.Sprintf("%v (%v semitones)", name, size),
		Notes:  []theory.Note{root, end},
	}
}

// NewFretboardQuestion asks for the note at a random position within the
// first 12 frets. Strings are numbered 1-6 from the low E, the way players
// count them.
func NewFretboardQuestion(r *rand.Rand, fb fretboard.Fretboard) Question {
	str := r.Intn(constants.NumStrings)
	fret := r.Intn(12)
	note, _ := fb.NoteAt(str, fret)
	return Question{
		Kind:   KindFretboard,
		Prompt: fmt.Sprintf("Name the note on string %v at fret %v.", constants.NumStrings-str, fret),
		Answer: note.Name,
		Notes:  []theory.Note{note},
	}
}

// NewChordBuildQuestion asks for the tones of a random preset chord.
func NewChordBuildQuestion(r *rand.Rand) Question {
	root := randomRoot(r)
	quality := theory.ChordQualities[r.Intn(len(theory.ChordQualities))]
	chord, _ := theory.ChordByQuality(quality, root)
	notes := chord.Notes()
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name
	}
	return Question{
		Kind:   KindChordBuild,
		Prompt: fmt.Sprintf("Spell the %v %v chord (notes separated by spaces).", root.Name, quality),
		Answer: strings.Join(names, " "),
		Notes:  notes,
	}
}

// NewChordQualityQuestion shows the tones of a random preset chord and asks
// for its quality.
func NewChordQualityQuestion(r *rand.Rand) Question {
	root := randomRoot(r)
	quality := theory.ChordQualities[r.Intn(len(theory.ChordQualities))]
	chord, _ := theory.ChordByQuality(quality, root)
	notes := chord.Notes()
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name
	}
	return Question{
		Kind:   KindChordQuality,
		Prompt: fmt.Sprintf("What quality is this chord: %v?", strings.Join(names, " ")),
		Answer: quality,
		Notes:  notes,
	}
}

// New produces a question of the given kind.
func New(kind Kind, r *rand.Rand, fb fretboard.Fretboard) Question {
	switch kind {
	case KindFretboard:
		return NewFretboardQuestion(r, fb)
	case KindChordBuild:
		return NewChordBuildQuestion(r)
	case KindChordQuality:
		return NewChordQualityQuestion(r)
	default:
		return NewIntervalQuestion(r)
	}
}

// Check grades a raw answer. Note answers run through the same fuzzy name
// matching the explorer input uses, so "c#" counts for "C#/Db"; everything
// else compares case-insensitively against the display answer.
func Check(q Question, answer string) bool {
	answer = strings.TrimSpace(answer)
	switch q.Kind {
	case KindFretboard:
		n, err := theory.ParseNote(answer)
		return err == nil && n.PitchClass() == q.Notes[0].PitchClass()
	case KindChordBuild:
		want := make(map[int]bool)
		for _, n := range q.Notes {
			want[n.PitchClass()] = true
		}
		got := make(map[int]bool)
		for _, field := range strings.Fields(answer) {
			n, err := theory.ParseNote(field)
			if err != nil {
				return false
			}
			got[n.PitchClass()] = true
		}
		if len(got) != len(want) {
			return false
		}
		for class := range want {
			if !got[class] {
				return false
			}
		}
		return true
	case KindInterval:
		// accept the bare interval name without the semitone count
		return strings.EqualFold(answer, q.Answer) ||
			strings.EqualFold(answer, strings.SplitN(q.Answer, " (", 2)[0])
	default:
		return strings.EqualFold(answer, q.Answer)
	}
}
