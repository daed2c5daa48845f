package tui

import (
	"testing"

	"github.com/fretwise/fretwise/trainer"
	"github.com/stretchr/testify/assert"
)

func TestInitStartsCursorBlink(t *testing.T) {
	assert.NotNil(t, New().Init())
}

func TestPracticeMenuOffersIntervalReference(t *testing.T) {
	assert := assert.New(t)
	m := New()
	m.screen = screenTrainMenu

	view := m.View()
	for _, kind := range trainer.Kinds {
		assert.Contains(view, trainer.Label(kind))
	}
	assert.Contains(view, "Interval Reference")
}

func TestSelectingIntervalReferenceShowsListing(t *testing.T) {
	assert := assert.New(t)
	m := New()
	m.screen = screenTrainMenu
	m.cursor = len(trainer.Kinds)

	next, _ := m.selectItem()
	got := next.(Model)
	assert.Equal(screenResult, got.screen)
	assert.Contains(got.result, "Minor 2nd")
	assert.Contains(got.result, "Octave")
	assert.Contains(got.result, "12")
}
