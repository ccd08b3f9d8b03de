// Package session runs one game of 2048 on top of the board engine: it
// applies turns, spawns tiles, keeps move and merge statistics and produces
// the final result handed to the score keeper.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge2048/internal/board"
)

// DefaultBoardSize is the classic 4x4 board.
const DefaultBoardSize = 4

// ErrSessionOver is returned by Turn once the session has ended.
var ErrSessionOver = errors.New("session: game is over")

// EndReason explains why a session finished.
type EndReason string

const (
	EndNone      EndReason = ""
	EndBoardFull EndReason = "board_full"
	EndQuit      EndReason = "quit"
)

// Options configure a new session.
type Options struct {
	Size      int              // board dimension, DefaultBoardSize when 0
	Rand      board.RandSource // spawn randomness, time-seeded when nil
	HighScore int              // previously stored high score
	Logger    *log.Logger      // optional
}

// Session owns one board and its statistics for the length of a game.
type Session struct {
	board      *board.Board
	rng        board.RandSource
	logger     *log.Logger
	moves      int
	collisions int
	histogram  board.Histogram
	highScore  int
	reason     EndReason
}

// TurnResult describes what one requested direction did.
type TurnResult struct {
	Direction board.Direction
	Moved     bool // the board changed
	Merges    int  // merge events this turn
	Spawned   int  // flat index of the new tile, -1 if none
	Over      bool // the session ended on this turn
}

// New creates a session with an empty board and spawns the first tile.
func New(opts Options) (*Session, error) {
	size := opts.Size
	if size == 0 {
		size = DefaultBoardSize
	}
	b, err := board.New(size)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		board:     b,
		rng:       rng,
		logger:    opts.Logger,
		highScore: opts.HighScore,
	}
	board.Spawn(s.board, s.rng)
	s.histogram = board.NewHistogram(s.board)
	return s, nil
}

// Turn applies one swipe. A move that changes nothing leaves the session
// untouched unless the board is full and stuck, in which case the refused
// spawn ends the game.
func (s *Session) Turn(d board.Direction) (TurnResult, error) {
	res := TurnResult{Direction: d, Spawned: -1}
	if s.Over() {
		return res, ErrSessionOver
	}

	mv, err := board.ApplyMove(s.board, d)
	if err != nil {
		return res, fmt.Errorf("session: %w", err)
	}

	if !mv.Moved {
		if !board.CanMove(s.board) {
			if _, ok := board.Spawn(s.board, s.rng); !ok {
				s.finish(EndBoardFull)
				res.Over = true
			}
		}
		s.debug("no-op turn", "direction", d, "over", res.Over)
		return res, nil
	}

	s.board = mv.Board
	res.Moved = true
	res.Merges = mv.Merges

	index, ok := board.Spawn(s.board, s.rng)
	if !ok {
		s.finish(EndBoardFull)
		res.Over = true
		return res, nil
	}
	res.Spawned = index

	s.histogram = board.NewHistogram(s.board)
	s.moves++
	s.collisions += mv.Merges
	s.debug("turn", "direction", d, "merges", mv.Merges, "spawned", index, "moves", s.moves)
	return res, nil
}

// Quit ends the session immediately and returns its result.
func (s *Session) Quit() Result {
	if !s.Over() {
		s.finish(EndQuit)
	}
	return s.Result()
}

func (s *Session) finish(reason EndReason) {
	s.reason = reason
	if s.logger != nil {
		s.logger.Info("game finished",
			"reason", reason,
			"score", board.Score(s.board),
			"moves", s.moves,
			"collisions", s.collisions,
		)
	}
}

func (s *Session) debug(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.reason != EndNone
}

// Reason returns why the session ended, or EndNone while it is running.
func (s *Session) Reason() EndReason {
	return s.reason
}

// Stuck reports whether the board is full with no possible merge. The next
// requested move will end the session.
func (s *Session) Stuck() bool {
	return !board.CanMove(s.board)
}

// Board returns a copy of the current board.
func (s *Session) Board() *board.Board {
	return s.board.Clone()
}

// Moves returns the number of effective moves made.
func (s *Session) Moves() int { return s.moves }

// Collisions returns the number of merge events so far.
func (s *Session) Collisions() int { return s.collisions }

// Histogram returns the tile distribution after the last effective move.
func (s *Session) Histogram() board.Histogram {
	return append(board.Histogram(nil), s.histogram...)
}

// HighScore returns the high score the session started with.
func (s *Session) HighScore() int { return s.highScore }

// Score returns the current board score.
func (s *Session) Score() int {
	return board.Score(s.board)
}
