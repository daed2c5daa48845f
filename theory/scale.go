package theory

// Scale is a root note plus the semitone steps between consecutive degrees.
// Immutable once built; a different scale means building a new one.
type Scale struct {
	Name      string
	Root      Note
	Intervals []int
}

// Notes returns the scale degrees in declared order, root first. When the
// steps sum to 12 the octave comes back as the last entry.
func (s Scale) Notes() []Note {
	notes := make([]Note, 0, len(s.Intervals)+1)
	notes = append(notes, s.Root)
	value := s.Root.Value
	for _, step := range s.Intervals {
		value += step
		notes = append(notes, NoteAt(value))
	}
	return notes
}

func MajorScale(root Note) Scale {
	return Scale{Name: root.Name + " Major", Root: root, Intervals: []int{2, 2, 1, 2, 2, 2, 1}}
}

func MinorScale(root Note) Scale {
	return Scale{Name: root.Name + " Minor", Root: root, Intervals: []int{2, 1, 2, 2, 1, 2, 2}}
}

func PentatonicMajorScale(root Note) Scale {
	return Scale{Name: root.Name + " Pentatonic Major", Root: root, Intervals: []int{2, 2, 3, 2, 3}}
}

func PentatonicMinorScale(root Note) Scale {
	return Scale{Name: root.Name + " Pentatonic Minor", Root: root, Intervals: []int{3, 2, 2, 3, 2}}
}

func BluesScale(root Note) Scale {
	return Scale{Name: root.Name + " Blues", Root: root, Intervals: []int{3, 2, 1, 1, 3, 2}}
}

// ScalePresets maps CLI/menu preset keys to constructors.
var ScalePresets = map[string]func(Note) Scale{
	"major":            MajorScale,
	"minor":            MinorScale,
	"pentatonic-major": PentatonicMajorScale,
	"pentatonic-minor": PentatonicMinorScale,
	"blues":            BluesScale,
}
