package stats

import (
	"testing"

	"github.com/fretwise/fretwise/trainer"
	"github.com/stretchr/testify/assert"
)

func TestSessionRecording(t *testing.T) {
	assert := assert.New(t)
	s := NewSession()
	assert.NotEmpty(s.ID)

	s.Record(trainer.KindInterval, true)
	s.Record(trainer.KindInterval, false)
	s.Record(trainer.KindFretboard, true)

	assert.Equal(2, s.Asked[trainer.KindInterval])
	assert.Equal(1, s.Correct[trainer.KindInterval])

	asked, correct := s.Totals()
	assert.Equal(3, asked)
	assert.Equal(2, correct)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("FRETWISE_DATA", t.TempDir())

	sessions, err := Load()
	assert.NoError(err)
	assert.Empty(sessions)

	first := NewSession()
	first.Record(trainer.KindChordBuild, true)
	assert.NoError(Save(first))

	second := NewSession()
	second.Record(trainer.KindChordBuild, false)
	second.Record(trainer.KindInterval, true)
	assert.NoError(Save(second))

	sessions, err = Load()
	assert.NoError(err)
	assert.Len(sessions, 2)
	assert.Equal(first.ID, sessions[0].ID)
	assert.Equal(second.ID, sessions[1].ID)

	sum := Summarize(sessions)
	assert.Equal(2, sum.Sessions)
	assert.Equal(2, sum.Asked[trainer.KindChordBuild])
	assert.Equal(1, sum.Correct[trainer.KindChordBuild])
	assert.Equal(1, sum.Asked[trainer.KindInterval])
}
