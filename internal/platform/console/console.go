// Package console is the line-oriented front end: it prints the board as
// labelled cells and reads one command per line.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/merge2048/internal/board"
	"github.com/vovakirdan/merge2048/internal/session"
)

// Usage lists the commands accepted at the prompt.
const Usage = `Usage:
H - Left
C - Up
T - Down
N - Right
(w/a/s/d and direction names also work, STOP quits)`

// Options configure a console game.
type Options struct {
	GameID string
	Size   int
	Rand   board.RandSource // time-seeded when nil
	Keeper session.ScoreKeeper
	Logger *log.Logger
}

// command is one parsed input line.
type command struct {
	dir  board.Direction
	quit bool
}

// parseCommand accepts the letter bindings case-insensitively, then the
// direction names (left, north, ...).
func parseCommand(line string) (command, bool) {
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "H", "A":
		return command{dir: board.West}, true
	case "C", "W":
		return command{dir: board.North}, true
	case "T", "S":
		return command{dir: board.South}, true
	case "N", "D":
		return command{dir: board.East}, true
	case "STOP":
		return command{quit: true}, true
	}
	if d, err := board.ParseDirection(line); err == nil {
		return command{dir: d}, true
	}
	return command{}, false
}

// Run plays one game reading commands from r and writing to w. End of input
// quits the game. The result is recorded with opts.Keeper before returning.
func Run(r io.Reader, w io.Writer, opts Options) (session.Result, error) {
	hs, err := session.LoadHighScore(opts.Keeper, opts.GameID)
	if err != nil && opts.Logger != nil {
		opts.Logger.Warn("could not load high score", "error", err)
	}

	s, err := session.New(session.Options{
		Size:      opts.Size,
		Rand:      opts.Rand,
		HighScore: hs,
		Logger:    opts.Logger,
	})
	if err != nil {
		return session.Result{}, err
	}

	out := &writer{w: w}
	out.println(Usage)
	out.println()

	in := bufio.NewScanner(r)
	for !s.Over() {
		printBoard(out, s.Board())
		cmd, ok := readCommand(in, out)
		if !ok || cmd.quit {
			s.Quit()
			break
		}

		res, err := s.Turn(cmd.dir)
		if err != nil {
			return s.Result(), err
		}
		if !res.Moved && !res.Over {
			out.println("No change")
		}
		if res.Over {
			printBoard(out, s.Board())
			out.println("Game over")
		}
	}
	if err := in.Err(); err != nil {
		return s.Result(), fmt.Errorf("console: read input: %w", err)
	}

	res := s.Result()
	printResult(out, res, s.Board().MaxRank())

	if err := session.Record(opts.Keeper, opts.GameID, res); err != nil {
		return res, err
	}
	return res, out.err
}

// readCommand prompts until a valid command arrives. It reports false at
// end of input.
func readCommand(in *bufio.Scanner, out *writer) (command, bool) {
	out.println("Input?")
	for in.Scan() {
		if cmd, ok := parseCommand(in.Text()); ok {
			return cmd, true
		}
		out.println("Invalid")
	}
	return command{}, false
}

func printBoard(out *writer, b *board.Board) {
	for _, row := range b.Rows() {
		labels := make([]string, len(row))
		for i, r := range row {
			labels[i] = r.Label()
		}
		out.println(strings.Join(labels, " "))
		out.println()
	}
}

func printResult(out *writer, res session.Result, maxRank board.Rank) {
	out.println("Score:", res.Score)
	if res.NewRecord {
		out.println("Personal record!")
	} else {
		out.println("High score:", res.PreviousHigh)
	}
	out.println("Your highest tile was:", maxRank.Label())
	out.println("Moves:", res.Moves)
	out.printf("Average merges per move: %.2f\n", res.AvgCollisions())
	out.println("Distribution of tiles:")
	for _, e := range res.Histogram {
		out.printf("  %s x %d\n", e.Rank.Label(), e.Count)
	}
}

// writer keeps the first write error so printing code stays linear.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) println(a ...any) {
	if w.err == nil {
		_, w.err = fmt.Fprintln(w.w, a...)
	}
}

func (w *writer) printf(format string, a ...any) {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.w, format, a...)
	}
}
