package board

// Move is the outcome of applying a direction to a board.
type Move struct {
	Board  *Board // resulting board; equal to the input when Moved is false
	Moved  bool   // at least one cell changed
	Merges int    // merge events across all lines
}

// ApplyMove slides every line of b in direction d and returns the new board.
// b itself is left unchanged.
func ApplyMove(b *Board, d Direction) (Move, error) {
	lines, err := Lines(b, d)
	if err != nil {
		return Move{}, err
	}

	var res Move
	for _, line := range lines {
		moved, merges := MergeLine(line)
		res.Moved = res.Moved || moved
		res.Merges += merges
	}

	out := &Board{size: b.size, cells: make([]Rank, len(b.cells))}
	if err := Restore(out, lines, d); err != nil {
		return Move{}, err
	}
	res.Board = out
	return res, nil
}

// CanMove reports whether any direction would change the board: an empty
// cell exists or two equal tiles are adjacent in a row or column.
func CanMove(b *Board) bool {
	if !b.Full() {
		return true
	}
	n := b.size
	for r := range n {
		for c := range n {
			v := b.cells[r*n+c]
			if c < n-1 && b.cells[r*n+c+1] == v {
				return true
			}
			if r < n-1 && b.cells[(r+1)*n+c] == v {
				return true
			}
		}
	}
	return false
}
