package t2048

import "github.com/vovakirdan/merge2048/internal/board"

// GameStateType names the phase the game is in.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateStuck       GameStateType = "stuck"
	StateGameOver    GameStateType = "game_over"
	StateQuit        GameStateType = "quit"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game for determinism tests and replays.
type Snapshot struct {
	Variant    string
	Score      int
	Moves      int
	Collisions int
	Board      [][]board.Rank
	MaxTile    int
	State      GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()

	state := StatePlaying
	switch {
	case g.quit:
		state = StateQuit
	case snap.Over:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case snap.Stuck:
		state = StateStuck
	}

	maxTile := 0
	for _, row := range snap.Rows {
		for _, r := range row {
			maxTile = max(maxTile, r.Value())
		}
	}

	return Snapshot{
		Variant:    g.variant.ID,
		Score:      snap.Score,
		Moves:      snap.Moves,
		Collisions: snap.Collisions,
		Board:      snap.Rows,
		MaxTile:    maxTile,
		State:      state,
	}
}
