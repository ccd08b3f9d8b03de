// Package config holds the YAML configuration of the game and its front ends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/merge2048/internal/board"
	"github.com/vovakirdan/merge2048/internal/core"
	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config is the root of merge2048.yaml.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Theme   ThemeConfig   `yaml:"theme"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// BoardConfig selects the board dimension and the spawn seed.
type BoardConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"` // 0 = time-based
}

// StorageConfig locates the score store. A non-empty HighscoreFile selects
// the plain file store instead of SQLite.
type StorageConfig struct {
	DBPath        string `yaml:"db_path"`
	HighscoreFile string `yaml:"highscore_file"`
}

// ThemeConfig maps tile ranks to ANSI 256 colors.
type ThemeConfig struct {
	Grid  int         `yaml:"grid"`
	Tiles map[int]int `yaml:"tiles"`
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate checks the values a game cannot start without.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("config: board.size %d must be at least 2: %w", c.Board.Size, ErrInvalid)
	}
	for rank, color := range c.Theme.Tiles {
		if rank < 1 {
			return fmt.Errorf("config: theme rank %d must be positive: %w", rank, ErrInvalid)
		}
		if color < 0 || color > 255 {
			return fmt.Errorf("config: theme color %d for rank %d out of range: %w", color, rank, ErrInvalid)
		}
	}
	if c.Theme.Grid < 0 || c.Theme.Grid > 255 {
		return fmt.Errorf("config: theme grid color %d out of range: %w", c.Theme.Grid, ErrInvalid)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative: %w", ErrInvalid)
	}
	return nil
}

// GameTheme converts the theme section for the renderer. Missing values
// fall back to the default palette.
func (c Config) GameTheme() t2048.Theme {
	theme := t2048.DefaultTheme()
	if c.Theme.Grid > 0 {
		theme.Grid = core.Color(c.Theme.Grid)
	}
	if len(c.Theme.Tiles) > 0 {
		theme.Tiles = make(map[board.Rank]core.Color, len(c.Theme.Tiles))
		for r, col := range c.Theme.Tiles {
			theme.Tiles[board.Rank(r)] = core.Color(col)
		}
	}
	return theme
}

// IdleTimeout returns the SSH idle timeout, 0 meaning none.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}
