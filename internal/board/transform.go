package board

import "fmt"

// cellFor returns the board position that feeds position pos of line l when
// sliding in direction d. Position 0 is always the leading edge.
func cellFor(d Direction, n, l, pos int) (row, col int) {
	switch d {
	case West:
		return l, pos
	case East:
		return l, n - 1 - pos
	case North:
		return pos, l
	default: // South
		return n - 1 - pos, l
	}
}

// Lines decomposes the board into N lines ordered from the edge tiles slide
// toward to the opposite edge. West/East lines are rows, North/South lines
// are columns.
func Lines(b *Board, d Direction) ([][]Rank, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	n := b.size
	lines := make([][]Rank, n)
	for l := range n {
		lines[l] = make([]Rank, n)
		for pos := range n {
			row, col := cellFor(d, n, l, pos)
			lines[l][pos] = b.cells[row*n+col]
		}
	}
	return lines, nil
}

// Restore writes lines produced by Lines back to the cells they were read from.
// The matrix shape is checked before any cell is written.
func Restore(b *Board, lines [][]Rank, d Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	n := b.size
	if len(lines) != n {
		return fmt.Errorf("%w: %d lines, want %d", ErrShape, len(lines), n)
	}
	for l, line := range lines {
		if len(line) != n {
			return fmt.Errorf("%w: line %d has %d cells, want %d", ErrShape, l, len(line), n)
		}
		for _, v := range line {
			if v < 0 {
				return fmt.Errorf("%w: %d in line %d", ErrInvalidRank, v, l)
			}
		}
	}

	for l, line := range lines {
		for pos, v := range line {
			row, col := cellFor(d, n, l, pos)
			b.cells[row*n+col] = v
		}
	}
	return nil
}
