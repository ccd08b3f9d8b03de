package t2048

import (
	"github.com/vovakirdan/merge2048/internal/board"
	"github.com/vovakirdan/merge2048/internal/core"
)

// Theme maps tile ranks to foreground colors.
type Theme struct {
	Tiles map[board.Rank]core.Color
	Grid  core.Color
	Empty core.Color
}

// DefaultTheme spreads the hues of the tiles around the color wheel, the
// way the graphical variant of the game picks one hue per rank.
func DefaultTheme() Theme {
	return Theme{
		Tiles: map[board.Rank]core.Color{
			1:  250,
			2:  223,
			3:  215,
			4:  209,
			5:  203,
			6:  196,
			7:  227,
			8:  221,
			9:  214,
			10: 208,
			11: 226,
			12: 51,
			13: 45,
		},
		Grid:  core.ColorGray,
		Empty: core.ColorDefault,
	}
}

// TileColor returns the color of a rank. Ranks past the palette reuse the
// highest configured color.
func (t Theme) TileColor(r board.Rank) core.Color {
	if r <= 0 {
		return t.Empty
	}
	if c, ok := t.Tiles[r]; ok {
		return c
	}
	var best board.Rank
	for k := range t.Tiles {
		if k <= r && k > best {
			best = k
		}
	}
	if best == 0 {
		return core.ColorWhite
	}
	return t.Tiles[best]
}
