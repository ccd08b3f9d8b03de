package session

import "github.com/vovakirdan/merge2048/internal/board"

// Result is the final accounting of a session.
type Result struct {
	Score        int
	PreviousHigh int
	NewRecord    bool
	MaxTile      int
	Moves        int
	Collisions   int
	BoardSize    int
	Reason       EndReason
	Histogram    board.Histogram
}

// AvgCollisions returns merge events per effective move.
func (r Result) AvgCollisions() float64 {
	if r.Moves == 0 {
		return 0
	}
	return float64(r.Collisions) / float64(r.Moves)
}

// Result computes the score from the board as it stands. It is valid at any
// time but only final once Over reports true.
func (s *Session) Result() Result {
	score := board.Score(s.board)
	return Result{
		Score:        score,
		PreviousHigh: s.highScore,
		NewRecord:    score > s.highScore,
		MaxTile:      s.board.MaxRank().Value(),
		Moves:        s.moves,
		Collisions:   s.collisions,
		BoardSize:    s.board.Size(),
		Reason:       s.reason,
		Histogram:    s.Histogram(),
	}
}

// Snapshot is a read-only view of a session for renderers.
type Snapshot struct {
	Rows       [][]board.Rank
	Score      int
	HighScore  int
	Moves      int
	Collisions int
	Histogram  board.Histogram
	Over       bool
	Stuck      bool
	Reason     EndReason
}

// Snapshot captures the current state for display.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Rows:       s.board.Rows(),
		Score:      board.Score(s.board),
		HighScore:  s.highScore,
		Moves:      s.moves,
		Collisions: s.collisions,
		Histogram:  s.Histogram(),
		Over:       s.Over(),
		Stuck:      s.Stuck(),
		Reason:     s.reason,
	}
}
