package theory

import "fmt"

// Chord is a root note plus semitone offsets from that root. Offsets keep
// their declared order; no sorting or dedup.
type Chord struct {
	Name      string
	Root      Note
	Intervals []int
}

// Notes returns the chord tones, root first, one per offset in order.
func (c Chord) Notes() []Note {
	notes := make([]Note, 0, len(c.Intervals)+1)
	notes = append(notes, c.Root)
	for _, offset := range c.Intervals {
		notes = append(notes, c.Root.Transpose(offset))
	}
	return notes
}

func MajorChord(root Note) Chord {
	return Chord{Name: root.Name + " Major", Root: root, Intervals: []int{4, 7}}
}

func MinorChord(root Note) Chord {
	return Chord{Name: root.Name + " Minor", Root: root, Intervals: []int{3, 7}}
}

func Dominant7Chord(root Note) Chord {
	return Chord{Name: root.Name + "7", Root: root, Intervals: []int{4, 7, 10}}
}

func Major7Chord(root Note) Chord {
	return Chord{Name: root.Name + "Maj7", Root: root, Intervals: []int{4, 7, 11}}
}

func Minor7Chord(root Note) Chord {
	return Chord{Name: root.Name + "min7", Root: root, Intervals: []int{3, 7, 10}}
}

// ChordPresets maps CLI/menu preset keys to constructors.
var ChordPresets = map[string]func(Note) Chord{
	"major": MajorChord,
	"minor": MinorChord,
	"dom7":  Dominant7Chord,
	"maj7":  Major7Chord,
	"min7":  Minor7Chord,
}

// ChordQualities are the preset quality labels in menu order.
var ChordQualities = []string{"Major", "Minor", "Dominant 7", "Major 7", "Minor 7"}

// ChordByQuality builds a preset chord from its quality label.
func ChordByQuality(quality string, root Note) (Chord, error) {
	switch quality {
	case "Major":
		return MajorChord(root), nil
	case "Minor":
		return MinorChord(root), nil
	case "Dominant 7":
		return Dominant7Chord(root), nil
	case "Major 7":
		return Major7Chord(root), nil
	case "Minor 7":
		return Minor7Chord(root), nil
	}
	return Chord{}, fmt.Errorf("unknown chord quality %q", quality)
}

var chordShapes = []struct {
	quality string
	offsets []int
}{
	{"Major", []int{0, 4, 7}},
	{"Minor", []int{0, 3, 7}},
	{"Dominant 7", []int{0, 4, 7, 10}},
	{"Major 7", []int{0, 4, 7, 11}},
	{"Minor 7", []int{0, 3, 7, 10}},
}

// IdentifyChord names a set of held notes if their pitch classes form one
// of the preset shapes over any root. Octave doublings are ignored.
func IdentifyChord(values []int) (string, bool) {
	held := make(map[int]bool)
	for _, v := range values {
		held[mod12(v)] = true
	}
	if len(held) == 0 {
		return "", false
	}
	for root := range held {
		for _, shape := range chordShapes {
			if len(shape.offsets) != len(held) {
				continue
			}
			match := true
			for _, offset := range shape.offsets {
				if !held[mod12(root+offset)] {
					match = false
					break
				}
			}
			if match {
				return PitchClassNames[root] + " " + shape.quality, true
			}
		}
	}
	return "", false
}
