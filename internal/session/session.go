// Package session runs one game of 2048 on top of the engine: it owns the
// board, the score and the best score, and decides when the game is over.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/tracking"
)

// DefaultBestKey is the key the best score is stored under when none is set.
const DefaultBestKey = "bestScore"

// BestScoreStore persists a single best score per key.
// *storage.Store satisfies it.
type BestScoreStore interface {
	BestScore(key string) (int, error)
	SetBestScore(key string, score int) error
}

// Options configures a Session.
type Options struct {
	Seed       int64         // 0 = time based; ignored when Source is set
	Source     engine.Source // optional randomness override
	BestKey    string
	Store      BestScoreStore // optional
	Logger     *log.Logger    // optional
	TrackTiles bool
}

// Outcome reports what one call to Move did.
type Outcome struct {
	Accepted bool // false when the game is over or the direction is invalid
	Result   engine.MoveResult
	Spawned  *engine.Placement
	Ops      []tracking.Op // only with TrackTiles
	State    State
}

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	src     engine.Source
	bestKey string
	store   BestScoreStore
	logger  *log.Logger
	tracker *tracking.Tracker

	board     engine.Board
	score     int
	best      int
	moves     int
	state     State
	lastSpawn *engine.Placement
}

// New creates a session. Call Start before the first Move.
func New(opts Options) *Session {
	src := opts.Source
	if src == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		src = rand.New(rand.NewSource(seed))
	}

	key := opts.BestKey
	if key == "" {
		key = DefaultBestKey
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		src:     src,
		bestKey: key,
		store:   opts.Store,
		logger:  logger,
		state:   StateTerminal,
	}
	if opts.TrackTiles {
		s.tracker = tracking.New()
	}
	return s
}

// Start begins a new game: empty board, zero score, two spawned tiles.
// The best score is reloaded from the store.
func (s *Session) Start() {
	s.board = engine.Board{}
	s.score = 0
	s.moves = 0
	s.state = StatePlaying
	s.lastSpawn = nil

	if s.tracker != nil {
		s.tracker.Reset(s.board)
	}

	s.spawn()
	s.spawn()

	s.loadBest()
	s.logger.Debug("game started", "board", s.board.String(), "best", s.best)
}

// Move applies dir. A move that changes nothing does not spawn and does
// not count. Once the game is over every move is rejected until Start.
func (s *Session) Move(dir engine.Direction) Outcome {
	if s.state != StatePlaying || dir < engine.Up || dir > engine.Right {
		return Outcome{State: s.state, Result: engine.MoveResult{Board: s.board}}
	}

	res := engine.ApplyMove(s.board, dir)
	out := Outcome{Accepted: true, Result: res, State: s.state}
	if !res.Changed {
		return out
	}

	if s.tracker != nil {
		out.Ops = s.tracker.Apply(s.board, dir)
	}

	s.board = res.Board
	s.score += res.ScoreGain
	s.moves++

	out.Spawned = s.spawn()

	if engine.IsTerminal(s.board) {
		s.state = StateTerminal
		s.logger.Debug("game over", "score", s.score, "max_tile", engine.MaxTile(s.board), "moves", s.moves)
	}

	if s.score > s.best {
		s.best = s.score
		s.saveBest()
	}

	s.logger.Debug("move", "dir", dir, "gain", res.ScoreGain, "score", s.score)

	out.State = s.state
	return out
}

// Board returns a copy of the current board.
func (s *Session) Board() engine.Board { return s.board }

// Score returns the score of the current game.
func (s *Session) Score() int { return s.score }

// Best returns the best score known to this session.
func (s *Session) Best() int { return s.best }

// Moves returns the number of accepted moves that changed the board.
func (s *Session) Moves() int { return s.moves }

// State returns the current state.
func (s *Session) State() State { return s.state }

// LastSpawn returns the most recently spawned tile, if any.
func (s *Session) LastSpawn() (engine.Placement, bool) {
	if s.lastSpawn == nil {
		return engine.Placement{}, false
	}
	return *s.lastSpawn, true
}

// TileID returns the identity of the tile at p. It is zero when tile
// tracking is off or the cell is empty.
func (s *Session) TileID(p engine.Pos) tracking.ID {
	if s.tracker == nil {
		return 0
	}
	return s.tracker.At(p)
}

// BestKey returns the storage key of the best score.
func (s *Session) BestKey() string { return s.bestKey }

func (s *Session) spawn() *engine.Placement {
	next, placed, ok := engine.Spawn(s.board, s.src)
	if !ok {
		return nil
	}
	s.board = next
	if s.tracker != nil {
		s.tracker.Place(placed.Pos)
	}
	s.lastSpawn = &placed
	return &placed
}

func (s *Session) loadBest() {
	if s.store == nil {
		return
	}
	best, err := s.store.BestScore(s.bestKey)
	if err != nil {
		s.logger.Warn("cannot load best score", "key", s.bestKey, "err", err)
		return
	}
	if best > s.best {
		s.best = best
	}
}

func (s *Session) saveBest() {
	if s.store == nil {
		return
	}
	if err := s.store.SetBestScore(s.bestKey, s.best); err != nil {
		s.logger.Warn("cannot save best score", "key", s.bestKey, "err", err)
	}
}
