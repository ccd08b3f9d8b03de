package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the full-screen terminal UI",
	Long: `Start a game in the full-screen terminal UI.

Without a variant the board size comes from --size or the config.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  Tab              - Toggle statistics panel
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit (score is saved)

Examples:
  merge2048 play
  merge2048 play 2048_3x3
  merge2048 play --size 7
  merge2048 play --seed 42 --config ./my-merge2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	id, err := gameID(cmd, args, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger("merge2048")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := newGame(id, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	keeper, closeKeeper, err := openKeeper(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score storage: %v\n", err)
		// Continue without storage - game still works
		keeper = nil
	}

	res, runErr := tui.Run(game, core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    cfg.Board.Seed,
	}, tui.Options{
		Keeper: keeper,
		Logger: logger,
	})

	closeKeeper()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	printResult(res)
}
