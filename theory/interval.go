package theory

import "github.com/fretwise/fretwise/util"

// Interval is a named semitone distance.
type Interval struct {
	Name      string
	Semitones int
}

// Intervals lists the common intervals in ascending size.
var Intervals = []Interval{
	{"Minor 2nd", 1},
	{"Major 2nd", 2},
	{"Minor 3rd", 3},
	{"Major 3rd", 4},
	{"Perfect 4th", 5},
	{"Tritone", 6},
	{"Perfect 5th", 7},
	{"Minor 6th", 8},
	{"Major 6th", 9},
	{"Minor 7th", 10},
	{"Major 7th", 11},
	{"Octave", 12},
}

// IntervalName returns the common name for a semitone count, if it has one.
func IntervalName(semitones int) (string, bool) {
	for _, iv := range Intervals {
		if iv.Semitones == semitones {
			return iv.Name, true
		}
	}
	return "", false
}

// IdentifyInterval names the distance between two notes, folded into one
// octave. A nonzero distance that folds to 0 reads as an octave.
func IdentifyInterval(a, b Note) string {
	diff := util.Abs(b.Value - a.Value)
	semitones := diff % 12
	if semitones == 0 && diff != 0 {
		semitones = 12
	}
	if name, ok := IntervalName(semitones); ok {
		return name
	}
	return "Unknown interval"
}
