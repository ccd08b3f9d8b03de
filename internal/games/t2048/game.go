package t2048

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge2048/internal/board"
	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/session"
)

// Game implements registry.Game on top of a session.
type Game struct {
	variant Variant
	session *session.Session
	theme   Theme
	logger  *log.Logger

	screenW int
	screenH int

	tooSmall  bool
	showStats bool
	quit      bool
	lastTurn  session.TurnResult
	lastKnown bool // lastTurn is set
}

// New creates a game for the given variant. Reset must be called before use.
func New(v Variant) *Game {
	return &Game{
		variant:   v,
		theme:     DefaultTheme(),
		showStats: true,
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Name
}

// SetTheme replaces the tile colors.
func (g *Game) SetTheme(t Theme) {
	g.theme = t
}

// SetLogger sets the logger handed to sessions started by later resets.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Reset starts a new session on the variant's board.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := session.New(session.Options{
		Size:      g.variant.Size,
		Rand:      rand.New(rand.NewSource(seed)),
		HighScore: cfg.HighScore,
		Logger:    g.logger,
	})
	if err != nil {
		return err
	}

	g.session = s
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.quit = false
	g.lastKnown = false
	g.checkScreenSize()
	return nil
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	n := g.session.Board().Size()
	minW := n*cellWidth + 3
	minH := n*cellHeight + 1 + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies at most one direction per call. Quit ends the session even
// while the window is too small.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.session.Quit()
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionStats) {
		g.showStats = !g.showStats
	}

	if g.tooSmall || g.session.Over() {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		// Turn only fails once the session is over, which was checked above.
		res, err := g.session.Turn(dir)
		if err == nil {
			g.lastTurn = res
			g.lastKnown = true
		}
	}

	return core.StepResult{State: g.State()}
}

// directionFor picks the swipe from an input frame.
func directionFor(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.North, true
	case in.Has(core.ActionDown):
		return board.South, true
	case in.Has(core.ActionLeft):
		return board.West, true
	case in.Has(core.ActionRight):
		return board.East, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.session.Over(),
		Quit:      g.quit,
	}
}

// Result returns the session result.
func (g *Game) Result() session.Result {
	return g.session.Result()
}
