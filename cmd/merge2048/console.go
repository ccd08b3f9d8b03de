package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge2048/internal/games/t2048"
	"github.com/vovakirdan/merge2048/internal/platform/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console [variant]",
	Short: "Play with line commands",
	Long: `Play on standard input and output, one command per line.

Commands:
  H or a  - Left
  C or w  - Up
  T or s  - Down
  N or d  - Right
  STOP    - Quit (score is saved)

Input can be piped, which makes seeded games scriptable:
  printf 'H\nC\nN\nSTOP\n' | merge2048 console --seed 1`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) {
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

	keeper, closeKeeper, err := openKeeper(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score storage: %v\n", err)
		keeper = nil
	}
	defer closeKeeper()

	seed := cfg.Board.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	size := cfg.Board.Size
	if v, ok := t2048.Lookup(id); ok {
		size = v.Size
	}

	_, err = console.Run(os.Stdin, os.Stdout, console.Options{
		GameID: id,
		Size:   size,
		Rand:   rand.New(rand.NewSource(seed)),
		Keeper: keeper,
		Logger: logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeKeeper()
		os.Exit(1)
	}
}
