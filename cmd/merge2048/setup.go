package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge2048/internal/config"
	"github.com/vovakirdan/merge2048/internal/games/t2048"
	"github.com/vovakirdan/merge2048/internal/registry"
	"github.com/vovakirdan/merge2048/internal/session"
	"github.com/vovakirdan/merge2048/internal/storage"
)

// loadConfig reads the configuration and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Board.Seed = flagSeed
	}
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
		cfg.Storage.HighscoreFile = ""
	}
	return cfg, cfg.Validate()
}

// newLogger builds the stderr logger at the --log-level level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openKeeper opens the configured score keeper. The returned close function
// is never nil.
func openKeeper(cfg config.Config) (session.ScoreKeeper, func(), error) {
	if cfg.Storage.HighscoreFile != "" {
		fs, err := storage.OpenFile(cfg.Storage.HighscoreFile)
		if err != nil {
			return nil, func() {}, err
		}
		return fs, func() {}, nil
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return nil, func() {}, err
	}
	return store, func() { store.Close() }, nil
}

// gameID picks the variant from the argument, or from the configured board
// size when no argument was given.
func gameID(cmd *cobra.Command, args []string, cfg config.Config) (string, error) {
	if len(args) == 0 {
		return t2048.VariantFor(cfg.Board.Size).ID, nil
	}
	if cmd.Flags().Changed("size") {
		return "", fmt.Errorf("give either a variant or --size, not both")
	}
	id := args[0]
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q, run 'merge2048 list' to see available variants", id)
	}
	return id, nil
}

// newGame creates the game for id with the configured theme. Sizes without
// a registered variant get an ad-hoc one.
func newGame(id string, cfg config.Config) (registry.Game, error) {
	var game registry.Game
	if registry.Exists(id) {
		g, err := registry.Create(id)
		if err != nil {
			return nil, err
		}
		game = g
	} else {
		game = t2048.New(t2048.VariantFor(cfg.Board.Size))
	}

	if g, ok := game.(*t2048.Game); ok {
		g.SetTheme(cfg.GameTheme())
	}
	return game, nil
}

// printResult writes the end-of-game summary.
func printResult(res session.Result) {
	fmt.Printf("Score: %d", res.Score)
	if res.NewRecord {
		fmt.Print("  (personal record!)")
	}
	fmt.Println()
	fmt.Printf("Highest tile: %d  Moves: %d  Merges per move: %.2f\n",
		res.MaxTile, res.Moves, res.AvgCollisions())
}
