package theory

import (
	"fmt"
	"strings"
	"unicode"
)

// Progression is an ordered run of chords built over one scale.
type Progression struct {
	Name   string
	Chords []Chord
}

var numeralDegrees = map[string]int{
	"I": 0, "II": 1, "III": 2, "IV": 3, "V": 4, "VI": 5, "VII": 6,
}

// FromRomanNumerals maps numerals like "ii" or "V7" onto scale degrees.
// Uppercase picks the major family, lowercase the minor family, and a '7'
// anywhere selects the seventh variant (dominant for upper, minor 7 for
// lower). Unknown numerals and degrees the scale doesn't have are errors.
func FromRomanNumerals(scale Scale, numerals []string, name string) (Progression, error) {
	prog := Progression{Name: name}
	degrees := scale.Notes()
	for _, numeral := range numerals {
		letters := strings.ToUpper(strings.ReplaceAll(numeral, "7", ""))
		degree, ok := numeralDegrees[letters]
		if !ok {
			return Progression{}, fmt.Errorf("unknown roman numeral %q", numeral)
		}
		if degree >= len(degrees) {
			return Progression{}, fmt.Errorf("%v has no degree %v for numeral %q", scale.Name, degree+1, numeral)
		}
		root := degrees[degree]
		major := unicode.IsUpper(rune(numeral[0]))
		seventh := strings.ContainsRune(numeral, '7')

		var chord Chord
		switch {
		case seventh && major:
			chord = Dominant7Chord(root)
		case seventh:
			chord = Minor7Chord(root)
		case major:
			chord = MajorChord(root)
		default:
			chord = MinorChord(root)
		}
		prog.Chords = append(prog.Chords, chord)
	}
	return prog, nil
}

// ProgressionPresets are the progressions the explorer menu offers, each
// built over the named scale preset in whatever key the user picks.
var ProgressionPresets = []struct {
	Label    string
	Scale    string
	Numerals []string
}{
	{"I-IV-V (Major)", "major", []string{"I", "IV", "V"}},
	{"I-V-vi-IV (Pop)", "major", []string{"I", "V", "vi", "IV"}},
	{"ii-V-I (Jazz)", "major", []string{"ii", "V", "I"}},
	{"i-iv-v (Minor)", "minor", []string{"i", "iv", "v"}},
}
