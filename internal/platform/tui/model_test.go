package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/games/t2048"
	"github.com/vovakirdan/merge2048/internal/session"
)

type memKeeper struct {
	high  int
	saved []session.Result
}

func (k *memKeeper) HighScore(string) (int, error) { return k.high, nil }

func (k *memKeeper) SaveResult(_ string, res session.Result) error {
	k.saved = append(k.saved, res)
	if res.Score > k.high {
		k.high = res.Score
	}
	return nil
}

func newTestModel(t *testing.T, size int, keeper session.ScoreKeeper) Model {
	t.Helper()
	v := t2048.VariantFor(size)
	game := t2048.New(v)
	m, err := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7}, Options{Keeper: keeper})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelLoadsHighScore(t *testing.T) {
	m := newTestModel(t, 4, &memKeeper{high: 512})
	if m.gameState.HighScore != 512 {
		t.Errorf("HighScore = %d, want 512", m.gameState.HighScore)
	}
}

func TestModelQuitSavesOnce(t *testing.T) {
	keeper := &memKeeper{}
	m := newTestModel(t, 4, keeper)

	dirs := []tea.KeyMsg{
		{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}, {Type: tea.KeyDown},
	}
	for i := 0; i < 8; i++ {
		m, _ = press(t, m, dirs[i%len(dirs)])
	}

	m, cmd := press(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if !m.Quitting() {
		t.Error("model should be quitting")
	}
	if len(keeper.saved) != 1 {
		t.Fatalf("saved %d results, want 1", len(keeper.saved))
	}
	if keeper.saved[0].Reason != session.EndQuit {
		t.Errorf("reason = %q, want quit", keeper.saved[0].Reason)
	}
	if keeper.saved[0].Score != m.Result().Score {
		t.Errorf("saved score %d, result score %d", keeper.saved[0].Score, m.Result().Score)
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	m := newTestModel(t, 4, nil)
	before := m.Result()

	m, cmd := press(t, m, runeKey("x"))
	if cmd != nil {
		t.Error("unbound key should not return a command")
	}
	if m.Result().Moves != before.Moves {
		t.Error("unbound key should not play a move")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	keeper := &memKeeper{}
	m := newTestModel(t, 2, keeper)

	m, _ = press(t, m, runeKey("r"))
	if m.gameState.GameOver {
		t.Fatal("fresh game should not be over")
	}

	// A 2x2 board fills up quickly; cycle directions until it ends.
	dirs := []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyUp}, {Type: tea.KeyRight}, {Type: tea.KeyDown}}
	for i := 0; i < 400 && !m.gameState.GameOver; i++ {
		m, _ = press(t, m, dirs[i%len(dirs)])
	}
	if !m.gameState.GameOver {
		t.Fatal("2x2 game did not end")
	}
	if len(keeper.saved) != 1 {
		t.Fatalf("saved %d results at game over, want 1", len(keeper.saved))
	}

	m, _ = press(t, m, runeKey("r"))
	if m.gameState.GameOver {
		t.Error("restart should start a new game")
	}
	if m.gameState.HighScore != keeper.high {
		t.Errorf("restarted high score = %d, want %d", m.gameState.HighScore, keeper.high)
	}
	if m.Result().Moves != 0 {
		t.Errorf("restarted game has %d moves", m.Result().Moves)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, 4, nil)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	moves := m.Result().Moves

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if m.Result().Moves != moves {
		t.Errorf("resize reset the game: moves %d, want %d", m.Result().Moves, moves)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, 4, nil)
	view := m.View()
	if !strings.Contains(view, "Score") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help line")
	}
}
