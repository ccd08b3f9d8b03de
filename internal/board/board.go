// Package board implements the 2048 board engine: the grid model, the
// direction transform, the slide-and-merge algorithm, tile spawning and
// scoring. It has no I/O and is not safe for concurrent mutation.
package board

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// MinSize is the smallest supported board dimension.
const MinSize = 2

// MaxValueRank is the largest rank whose value 2^k fits in an int.
const MaxValueRank = Rank(bits.UintSize - 2)

var (
	ErrOutOfRange       = errors.New("board: position out of range")
	ErrInvalidSize      = errors.New("board: invalid size")
	ErrInvalidRank      = errors.New("board: invalid rank")
	ErrInvalidDirection = errors.New("board: invalid direction")
	ErrShape            = errors.New("board: line matrix shape mismatch")
)

// Rank is a tile exponent: 0 is an empty cell, k >= 1 is a tile showing 2^k.
type Rank int

// Value returns the displayed tile value (0 for an empty cell). Ranks above
// MaxValueRank saturate at math.MaxInt.
func (r Rank) Value() int {
	if r <= 0 {
		return 0
	}
	if r > MaxValueRank {
		return math.MaxInt
	}
	return 1 << r
}

// Board is an N×N grid of ranks stored row-major.
type Board struct {
	size  int
	cells []Rank
}

// New creates an empty board of the given size.
func New(size int) (*Board, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}
	return &Board{
		size:  size,
		cells: make([]Rank, size*size),
	}, nil
}

// FromRows builds a board from a square matrix of ranks.
func FromRows(rows [][]Rank) (*Board, error) {
	b, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), b.size)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidRank, v, r, c)
			}
			b.cells[r*b.size+c] = v
		}
	}
	return b, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// Index maps (row, col) to the flat cell index.
func (b *Board) Index(row, col int) (int, error) {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfRange, row, col, b.size, b.size)
	}
	return row*b.size + col, nil
}

// Coords maps a flat index back to (row, col).
func (b *Board) Coords(index int) (row, col int, err error) {
	if index < 0 || index >= len(b.cells) {
		return 0, 0, fmt.Errorf("%w: index %d on %dx%d board", ErrOutOfRange, index, b.size, b.size)
	}
	return index / b.size, index % b.size, nil
}

// Get returns the rank at (row, col).
func (b *Board) Get(row, col int) (Rank, error) {
	i, err := b.Index(row, col)
	if err != nil {
		return 0, err
	}
	return b.cells[i], nil
}

// Set stores a rank at (row, col).
func (b *Board) Set(row, col int, v Rank) error {
	i, err := b.Index(row, col)
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRank, v)
	}
	b.cells[i] = v
	return nil
}

// IsEmpty reports whether (row, col) holds no tile.
func (b *Board) IsEmpty(row, col int) (bool, error) {
	v, err := b.Get(row, col)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}

// EmptyCells returns the flat indices of all empty cells in ascending order.
func (b *Board) EmptyCells() []int {
	var empty []int
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// Full reports whether every cell holds a tile.
func (b *Board) Full() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// TileCount returns the number of non-empty cells.
func (b *Board) TileCount() int {
	n := 0
	for _, v := range b.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// MaxRank returns the highest rank on the board (0 for an empty board).
func (b *Board) MaxRank() Rank {
	var maxRank Rank
	for _, v := range b.cells {
		if v > maxRank {
			maxRank = v
		}
	}
	return maxRank
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Rank, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether two boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns a row-major snapshot of the board for renderers.
func (b *Board) Rows() [][]Rank {
	rows := make([][]Rank, b.size)
	for r := range b.size {
		rows[r] = make([]Rank, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// String renders ranks as a compact grid, mainly for test failures.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%2d", b.cells[r*b.size+c])
		}
	}
	return sb.String()
}
