package stats

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fretwise/fretwise/constants"
	"github.com/fretwise/fretwise/trainer"
	"github.com/fretwise/fretwise/util"
	"github.com/google/uuid"
)

const sessionsFile = "sessions.dat"

// Session is one sitting of practice questions.
type Session struct {
	ID        string
	StartedAt time.Time
	Asked     map[trainer.Kind]int
	Correct   map[trainer.Kind]int
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		Asked:     make(map[trainer.Kind]int),
		Correct:   make(map[trainer.Kind]int),
	}
}

func (s *Session) Record(kind trainer.Kind, correct bool) {
	s.Asked[kind]++
	if correct {
		s.Correct[kind]++
	}
}

func (s *Session) Totals() (asked, correct int) {
	for _, v := range s.Asked {
		asked += v
	}
	for _, v := range s.Correct {
		correct += v
	}
	return asked, correct
}

func sessionsPath() string {
	return filepath.Join(constants.GetDataDir(), sessionsFile)
}

// Save appends the session to the local history file.
func Save(s *Session) error {
	sessions, err := Load()
	if err != nil {
		return err
	}
	sessions = append(sessions, *s)
	if err := os.MkdirAll(constants.GetDataDir(), 0777); err != nil {
		return err
	}
	return util.WriteBinary(sessionsPath(), sessions)
}

// Load reads all saved sessions. No history yet is not an error.
func Load() ([]Session, error) {
	var sessions []Session
	err := util.ReadBinary(sessionsPath(), &sessions)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Summary aggregates per-kind counts over a set of sessions.
type Summary struct {
	Sessions int
	Asked    map[trainer.Kind]int
	Correct  map[trainer.Kind]int
}

func Summarize(sessions []Session) Summary {
	sum := Summary{
		Sessions: len(sessions),
		Asked:    make(map[trainer.Kind]int),
		Correct:  make(map[trainer.Kind]int),
	}
	for _, s := range sessions {
		for kind, n := range s.Asked {
			sum.Asked[kind] += n
		}
		for kind, n := range s.Correct {
			sum.Correct[kind] += n
		}
	}
	return sum
}
