package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fretwise/fretwise/stats"
	"github.com/fretwise/fretwise/trainer"
)

const questionsPerSession = 5

type quizState struct {
	kind     trainer.Kind
	question trainer.Question
	number   int
	feedback string
	correct  bool
	session  *stats.Session
	saveNote string
}

func (m Model) startQuiz(kind trainer.Kind) (tea.Model, tea.Cmd) {
	m.quiz = quizState{
		kind:     kind,
		session:  stats.NewSession(),
		number:   1,
		question: trainer.New(kind, m.rng, m.board),
	}
	m.input.SetValue("")
	m.input.Placeholder = ""
	m.input.Width = 30
	m.input.CharLimit = 40
	m.input.Focus()
	m.screen = screenQuiz
	return m, nil
}

func (m Model) finishQuiz() (tea.Model, tea.Cmd) {
	if asked, _ := m.quiz.session.Totals(); asked > 0 {
		if err := stats.Save(m.quiz.session); err != nil {
			m.quiz.saveNote = "could not save session: " + err.Error()
		}
	}
	m.screen = screenQuizDone
	return m, nil
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenQuizDone:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		default:
			m.screen = screenMain
			m.cursor = 0
			return m, nil
		}
	case screenQuizFeedback:
		if key.Matches(msg, keys.Back) {
			return m.finishQuiz()
		}
		if m.quiz.number >= questionsPerSession {
			return m.finishQuiz()
		}
		m.quiz.number++
		m.quiz.question = trainer.New(m.quiz.kind, m.rng, m.board)
		m.quiz.feedback = ""
		m.input.SetValue("")
		m.screen = screenQuiz
		return m, nil
	}

	// screenQuiz
	switch {
	case key.Matches(msg, keys.Back):
		return m.finishQuiz()
	case key.Matches(msg, keys.Enter):
		answer := m.input.Value()
		correct := trainer.Check(m.quiz.question, answer)
		m.quiz.session.Record(m.quiz.question.Kind, correct)
		m.quiz.correct = correct
		if correct {
			m.quiz.feedback = goodStyle.Render("Correct!") + " " + m.quiz.question.Answer
		} else {
			m.quiz.feedback = badStyle.Render("Not quite.") + " The answer is " + m.quiz.question.Answer
		}
		m.screen = screenQuizFeedback
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) viewQuiz() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(trainer.Label(m.quiz.kind)) + "\n\n")

	switch m.screen {
	case screenQuizDone:
		asked, correct := m.quiz.session.Totals()
		b.WriteString(fmt.Sprintf("Session over: %v of %v correct.\n", correct, asked))
		if m.quiz.saveNote != "" {
			b.WriteString(errStyle.Render(m.quiz.saveNote) + "\n")
		}
		b.WriteString("\n" + hintStyle.Render("any key for menu · q quit"))
	case screenQuizFeedback:
		b.WriteString(fmt.Sprintf("Question %v/%v: %v\n\n", m.quiz.number, questionsPerSession, m.quiz.question.Prompt))
		b.WriteString(m.quiz.feedback + "\n")
		b.WriteString("\n" + hintStyle.Render("any key to continue · esc end session"))
	default:
		b.WriteString(fmt.Sprintf("Question %v/%v: %v\n\n", m.quiz.number, questionsPerSession, m.quiz.question.Prompt))
		b.WriteString("Your answer: " + m.input.View() + "\n")
		b.WriteString("\n" + hintStyle.Render("enter submit · esc end session"))
	}
	return b.String()
}
