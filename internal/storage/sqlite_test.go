package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/merge2048/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 500, 300, 200, 400} {
		if err := store.SaveResult("2048", session.Result{Score: score}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	if err := store.SaveResult("2048_3x3", session.Result{Score: 900, BoardSize: 3}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores("2048", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].BoardSize != session.DefaultBoardSize {
		t.Errorf("unsized result board size = %d, want %d", scores[0].BoardSize, session.DefaultBoardSize)
	}
}

func TestStoreSaveResult(t *testing.T) {
	store := openTestStore(t)

	res := session.Result{
		Score:      2048,
		MaxTile:    512,
		Moves:      40,
		Collisions: 30,
		BoardSize:  5,
		Reason:     session.EndBoardFull,
	}
	if err := store.SaveResult("2048_5x5", res); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	scores, err := store.TopScores("2048_5x5", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 2048 || got.MaxTile != 512 || got.Moves != 40 ||
		got.Collisions != 30 || got.BoardSize != 5 || got.EndReason != "board_full" {
		t.Errorf("stored entry = %+v", got)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		store.SaveResult("2048", session.Result{Score: score})
	}

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreAsScoreKeeper(t *testing.T) {
	store := openTestStore(t)

	session.Record(store, "2048", session.Result{Score: 64, Moves: 5})
	session.Record(store, "2048", session.Result{Score: 0})

	high, err := session.LoadHighScore(store, "2048")
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 64 {
		t.Errorf("high score = %d, want 64", high)
	}

	scores, _ := store.TopScores("2048", 10)
	if len(scores) != 1 {
		t.Errorf("zero-score result should not be recorded, got %d rows", len(scores))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult("2048", session.Result{Score: 100})
	store.SaveResult("2048", session.Result{Score: 200})
	store.SaveResult("2048_3x3", session.Result{Score: 300, BoardSize: 3})

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("2048", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	other, _ := store.TopScores("2048_3x3", 10)
	if len(other) != 1 {
		t.Errorf("2048_3x3 scores should not be affected by clearing 2048")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.AvgCollisions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveResult("2048", session.Result{Score: 100, MaxTile: 32, Moves: 10, Collisions: 4, BoardSize: 4})
	store.SaveResult("2048", session.Result{Score: 300, MaxTile: 128, Moves: 30, Collisions: 16, BoardSize: 4})

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.BestTile != 128 {
		t.Errorf("BestTile = %d, want 128", stats.BestTile)
	}
	if stats.TotalMoves != 40 {
		t.Errorf("TotalMoves = %d, want 40", stats.TotalMoves)
	}
	if stats.AvgCollisions != 0.5 {
		t.Errorf("AvgCollisions = %v, want 0.5", stats.AvgCollisions)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
