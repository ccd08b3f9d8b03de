// merge2048 is the sliding-tile merge puzzle in the terminal.
//
// Usage:
//
//	merge2048 list              - List the board variants
//	merge2048 play [variant]    - Play in the full-screen terminal UI
//	merge2048 console [variant] - Play with line commands (H/C/T/N, STOP)
//	merge2048 serve             - Start SSH server for remote play
//	merge2048 scores [variant]  - Show high scores
//
// Global flags:
//
//	--config <path>    - Configuration file (default: search ~/.merge2048, ./configs)
//	--seed <value>     - Set RNG seed for reproducible games
//	--size <n>         - Board dimension, overrides the variant
//	--db <path>        - Set database path (default: ~/.merge2048/scores.db)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/merge2048/internal/games/t2048"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagSize     int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "merge2048",
	Short: "merge2048 - slide and merge tiles in your terminal",
	Long: `merge2048 is the 2048 sliding-tile puzzle for the terminal.

Every move slides all tiles one way; equal tiles that meet merge once.
A new 2 appears after each move that changed the board. The game ends
when no tile can be placed.

Available commands:
  list     - Show the board variants
  play     - Full-screen game
  console  - Line-oriented game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  merge2048 play
  merge2048 play 2048_5x5
  merge2048 play --size 8 --seed 42
  merge2048 console
  merge2048 serve --ssh :2222
  merge2048 scores 2048`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size, overrides the variant (minimum 2)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
