package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fretwise/fretwise/constants"
	"github.com/fretwise/fretwise/fretboard"
	"github.com/fretwise/fretwise/theory"
	"github.com/fretwise/fretwise/trainer"
)

type screen int

const (
	screenMain screen = iota
	screenScaleMenu
	screenChordMenu
	screenProgressionMenu
	screenTrainMenu
	screenRootInput
	screenResult
	screenQuiz
	screenQuizFeedback
	screenQuizDone
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

var mainItems = []string{
	"View Fretboard",
	"Explore Scales",
	"Explore Chords",
	"Chord Progressions",
	"Practice",
	"Quit",
}

var scaleItems = []struct {
	label  string
	preset string
}{
	{"Major", "major"},
	{"Minor", "minor"},
	{"Pentatonic Major", "pentatonic-major"},
	{"Pentatonic Minor", "pentatonic-minor"},
	{"Blues", "blues"},
}

var chordItems = []struct {
	label  string
	preset string
}{
	{"Major", "major"},
	{"Minor", "minor"},
	{"Dominant 7th", "dom7"},
	{"Major 7th", "maj7"},
	{"Minor 7th", "min7"},
}

// Model drives the whole interactive session: nested menus, root-note
// input, rendered results and the practice quizzes.
type Model struct {
	screen screen
	cursor int
	input  textinput.Model
	rng    *rand.Rand
	board  fretboard.Fretboard

	// which explorer the pending root input feeds
	pending    screen
	pendingIdx int

	result string
	errMsg string

	quiz quizState
}

func New() Model {
	ti := textinput.New()
	ti.Placeholder = "C"
	ti.CharLimit = 5
	ti.Width = 12
	return Model{
		screen: screenMain,
		input:  ti,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		board:  fretboard.New(constants.DefaultFrets),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) menuLen() int {
	switch m.screen {
	case screenMain:
		return len(mainItems)
	case screenScaleMenu:
		return len(scaleItems)
	case screenChordMenu:
		return len(chordItems)
	case screenProgressionMenu:
		return len(theory.ProgressionPresets)
	case screenTrainMenu:
		// quiz kinds plus the interval reference listing
		return len(trainer.Kinds) + 1
	}
	return 0
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.screen {
	case screenRootInput:
		return m.updateRootInput(keyMsg)
	case screenQuiz, screenQuizFeedback, screenQuizDone:
		return m.updateQuiz(keyMsg)
	case screenResult:
		switch {
		case key.Matches(keyMsg, keys.Quit):
			return m, tea.Quit
		default:
			m.screen = screenMain
			m.cursor = 0
			m.result = ""
			return m, nil
		}
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < m.menuLen()-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Back):
		if m.screen != screenMain {
			m.screen = screenMain
			m.cursor = 0
		}
	case key.Matches(keyMsg, keys.Enter):
		return m.selectItem()
	}
	return m, nil
}

func (m Model) selectItem() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMain:
		switch m.cursor {
		case 0:
			m.result = m.renderFretboard()
			m.screen = screenResult
		case 1:
			m.screen = screenScaleMenu
			m.cursor = 0
		case 2:
			m.screen = screenChordMenu
			m.cursor = 0
		case 3:
			m.screen = screenProgressionMenu
			m.cursor = 0
		case 4:
			m.screen = screenTrainMenu
			m.cursor = 0
		case 5:
			return m, tea.Quit
		}
	case screenScaleMenu, screenChordMenu, screenProgressionMenu:
		m.pending = m.screen
		m.pendingIdx = m.cursor
		m.errMsg = ""
		m.input.SetValue("")
		m.input.Placeholder = "C"
		m.input.Width = 12
		m.input.CharLimit = 5
		m.input.Focus()
		m.screen = screenRootInput
	case screenTrainMenu:
		if m.cursor < len(trainer.Kinds) {
			return m.startQuiz(trainer.Kinds[m.cursor])
		}
		m.result = renderIntervalReference()
		m.screen = screenResult
	}
	return m, nil
}

func (m Model) updateRootInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.screen = m.pending
		m.errMsg = ""
		return m, nil
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, keys.Enter):
		root, err := theory.ParseNote(m.input.Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.result = m.buildResult(root)
		m.screen = screenResult
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) buildResult(root theory.Note) string {
	switch m.pending {
	case screenScaleMenu:
		scale := theory.ScalePresets[scaleItems[m.pendingIdx].preset](root)
		return m.renderScale(scale)
	case screenChordMenu:
		chord := theory.ChordPresets[chordItems[m.pendingIdx].preset](root)
		return m.renderChord(chord)
	case screenProgressionMenu:
		preset := theory.ProgressionPresets[m.pendingIdx]
		scale := theory.ScalePresets[preset.Scale](root)
		name := fmt.Sprintf("%v %v", root.Name, preset.Label)
		prog, err := theory.FromRomanNumerals(scale, preset.Numerals, name)
		if err != nil {
			return errStyle.Render(err.Error())
		}
		return renderProgression(prog)
	}
	return ""
}

func noteNames(notes []theory.Note) string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name
	}
	return strings.Join(names, " ")
}

func (m Model) renderFretboard() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Fretboard (standard tuning)") + "\n\n")
	low, err := m.board.Render(0, 12, nil)
	if err == nil {
		b.WriteString(low)
	}
	b.WriteString("\n")
	high, err := m.board.Render(12, constants.DefaultFrets, nil)
	if err == nil {
		b.WriteString(high)
	}
	return b.String()
}

func (m Model) renderScale(scale theory.Scale) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(scale.Name+" Scale") + ": " + noteNames(scale.Notes()) + "\n\n")
	grid, err := m.board.Render(0, 12, m.board.Highlight(scale.Notes()))
	if err == nil {
		b.WriteString(grid)
	}
	return b.String()
}

func (m Model) renderChord(chord theory.Chord) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(chord.Name+" Chord") + ": " + noteNames(chord.Notes()) + "\n\n")
	grid, err := m.board.Render(0, 12, m.board.Highlight(chord.Notes()))
	if err == nil {
		b.WriteString(grid)
	}
	return b.String()
}

func renderProgression(prog theory.Progression) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(prog.Name) + "\n\n")
	for i, chord := range prog.Chords {
		b.WriteString(fmt.Sprintf("  %v. %v: %v\n", i+1, chord.Name, noteNames(chord.Notes())))
	}
	return b.String()
}

func renderIntervalReference() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Interval Reference") + "\n\n")
	for _, iv := range theory.Intervals {
		b.WriteString(fmt.Sprintf("  %2v  %v\n", iv.Semitones, iv.Name))
	}
	return b.String()
}

func renderMenu(title string, items []string, cursor int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	for i, item := range items {
		if i == cursor {
			b.WriteString(cursorStyle.Render("> "+item) + "\n")
		} else {
			b.WriteString("  " + item + "\n")
		}
	}
	b.WriteString("\n" + hintStyle.Render("j/k move · enter select · esc back · q quit"))
	return b.String()
}

func (m Model) View() string {
	switch m.screen {
	case screenMain:
		return renderMenu("Guitar Music Theory Companion", mainItems, m.cursor)
	case screenScaleMenu:
		items := make([]string, len(scaleItems))
		for i, it := range scaleItems {
			items[i] = it.label
		}
		return renderMenu("Scales Explorer", items, m.cursor)
	case screenChordMenu:
		items := make([]string, len(chordItems))
		for i, it := range chordItems {
			items[i] = it.label
		}
		return renderMenu("Chords Explorer", items, m.cursor)
	case screenProgressionMenu:
		items := make([]string, len(theory.ProgressionPresets))
		for i, p := range theory.ProgressionPresets {
			items[i] = p.Label
		}
		return renderMenu("Chord Progressions", items, m.cursor)
	case screenTrainMenu:
		items := make([]string, 0, len(trainer.Kinds)+1)
		for _, kind := range trainer.Kinds {
			items = append(items, trainer.Label(kind))
		}
		items = append(items, "Interval Reference")
		return renderMenu("Practice", items, m.cursor)
	case screenRootInput:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Root note") + "\n\n")
		b.WriteString("Enter root note (e.g. C, F#, Bb): " + m.input.View() + "\n")
		if m.errMsg != "" {
			b.WriteString(errStyle.Render(m.errMsg) + "\n")
		}
		b.WriteString("\n" + hintStyle.Render("enter confirm · esc back"))
		return b.String()
	case screenResult:
		return m.result + "\n" + hintStyle.Render("any key for menu · q quit")
	case screenQuiz, screenQuizFeedback, screenQuizDone:
		return m.viewQuiz()
	}
	return ""
}
