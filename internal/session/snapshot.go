package session

import "github.com/vovakirdan/t2048/internal/engine"

// State is the session's position in its state machine.
type State string

const (
	StatePlaying  State = "playing"
	StateTerminal State = "terminal"
)

// Snapshot captures the complete game state for renderers, tests and replay.
type Snapshot struct {
	Board   engine.Board `yaml:"board,flow"`
	Score   int          `yaml:"score"`
	Best    int          `yaml:"best"`
	Moves   int          `yaml:"moves"`
	MaxTile int          `yaml:"max_tile"`
	State   State        `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:   s.board,
		Score:   s.score,
		Best:    s.best,
		Moves:   s.moves,
		MaxTile: engine.MaxTile(s.board),
		State:   s.state,
	}
}
