package config

import (
	_ "embed"

	"github.com/vovakirdan/merge2048/internal/games/t2048"
)

//go:embed defaults/merge2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration used when the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	theme := t2048.DefaultTheme()
	tiles := make(map[int]int, len(theme.Tiles))
	for r, c := range theme.Tiles {
		tiles[int(r)] = int(c)
	}

	return Config{
		Board: BoardConfig{
			Size: 4,
		},
		Storage: StorageConfig{
			DBPath: "~/.merge2048/scores.db",
		},
		Theme: ThemeConfig{
			Grid:  int(theme.Grid),
			Tiles: tiles,
		},
		SSH: SSHConfig{
			Address:            ":23234",
			HostKey:            ".ssh/merge2048_ed25519",
			IdleTimeoutMinutes: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
