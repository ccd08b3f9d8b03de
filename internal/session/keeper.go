package session

import "fmt"

// ScoreKeeper persists results and knows the stored high score. A keeper
// overwrites its stored high score when a saved result exceeds it.
type ScoreKeeper interface {
	HighScore(gameID string) (int, error)
	SaveResult(gameID string, res Result) error
}

// LoadHighScore reads the stored high score, treating a nil keeper as 0.
func LoadHighScore(k ScoreKeeper, gameID string) (int, error) {
	if k == nil {
		return 0, nil
	}
	hs, err := k.HighScore(gameID)
	if err != nil {
		return 0, fmt.Errorf("session: load high score: %w", err)
	}
	return hs, nil
}

// Record hands a finished result to the keeper. Empty games (score 0) are
// not recorded.
func Record(k ScoreKeeper, gameID string, res Result) error {
	if k == nil || res.Score == 0 {
		return nil
	}
	if err := k.SaveResult(gameID, res); err != nil {
		return fmt.Errorf("session: save result: %w", err)
	}
	return nil
}
