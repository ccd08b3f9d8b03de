package core

// RuntimeConfig is passed to games when they start or restart.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	Seed      int64 // RNG seed, 0 means time-based
	HighScore int   // Stored high score for this game
}

// GameState is what the platform needs to know after each step.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
	Quit      bool // the game ended because the player quit
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
