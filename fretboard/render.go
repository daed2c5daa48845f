package fretboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fretwise/fretwise/constants"
)

const cellWidth = 6

var (
	fretNumStyle   = lipgloss.NewStyle().Faint(true)
	stringStyle    = lipgloss.NewStyle().Bold(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	restStyle      = lipgloss.NewStyle().Faint(true)
)

// Render draws frets start..end as text, one line per string. Cells marked
// in highlight come out bracketed and colored; with a nil highlight every
// note is shown plain.
func (fb Fretboard) Render(start, end int, highlight [][]bool) (string, error) {
	if start < 0 || end > fb.Frets || start > end {
		return "", fmt.Errorf("fret window %v-%v out of range 0-%v", start, end, fb.Frets)
	}

	var b strings.Builder

	b.WriteString("    ")
	for fret := start; fret <= end; fret++ {
		b.WriteString(fretNumStyle.Render(fmt.Sprintf("%*v", cellWidth, fret)))
	}
	b.WriteString("\n    ")
	b.WriteString(fretNumStyle.Render(strings.Repeat("-", cellWidth*(end-start+1))))
	b.WriteString("\n")

	for s := 0; s < constants.NumStrings; s++ {
		b.WriteString(stringStyle.Render(constants.OpenStringNames[s]))
		b.WriteString(" | ")
		for fret := start; fret <= end; fret++ {
			note := fb.grid[s][fret]
			if highlight != nil && highlight[s][fret] {
				cell := fmt.Sprintf("%*s", cellWidth, "["+note.Name+"]")
				b.WriteString(highlightStyle.Render(cell))
			} else if highlight == nil {
				b.WriteString(fmt.Sprintf("%*s", cellWidth, note.Name))
			} else {
				b.WriteString(restStyle.Render(fmt.Sprintf("%*s", cellWidth, ".")))
			}
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}
