package board

import (
	"slices"
	"testing"
)

func TestMergeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    []Rank
		expected []Rank
		moved    bool
		merges   int
	}{
		{
			name:     "gap then pair then blocked by merged cell",
			input:    []Rank{0, 1, 1, 2},
			expected: []Rank{2, 2, 0, 0},
			moved:    true,
			merges:   1,
		},
		{
			name:     "three equal tiles merge once",
			input:    []Rank{1, 1, 1, 0},
			expected: []Rank{2, 1, 0, 0},
			moved:    true,
			merges:   1,
		},
		{
			name:     "two pairs",
			input:    []Rank{1, 1, 1, 1},
			expected: []Rank{2, 2, 0, 0},
			moved:    true,
			merges:   2,
		},
		{
			name:     "no merge possible",
			input:    []Rank{1, 2, 3, 4},
			expected: []Rank{1, 2, 3, 4},
		},
		{
			name:     "slide with gap",
			input:    []Rank{0, 0, 1, 1},
			expected: []Rank{2, 0, 0, 0},
			moved:    true,
			merges:   1,
		},
		{
			name:     "merge across gaps",
			input:    []Rank{1, 0, 0, 1},
			expected: []Rank{2, 0, 0, 0},
			moved:    true,
			merges:   1,
		},
		{
			name:     "already packed",
			input:    []Rank{2, 1, 0, 0},
			expected: []Rank{2, 1, 0, 0},
		},
		{
			name:     "empty line",
			input:    []Rank{0, 0, 0, 0},
			expected: []Rank{0, 0, 0, 0},
		},
		{
			name:     "single tile slides to edge",
			input:    []Rank{0, 0, 0, 2},
			expected: []Rank{2, 0, 0, 0},
			moved:    true,
		},
		{
			name:     "tile stops behind blocker",
			input:    []Rank{3, 0, 0, 1},
			expected: []Rank{3, 1, 0, 0},
			moved:    true,
		},
		{
			name:     "merged cell does not absorb a later equal tile",
			input:    []Rank{2, 1, 1, 2},
			expected: []Rank{2, 2, 2, 0},
			moved:    true,
			merges:   1,
		},
		{
			name:     "length two",
			input:    []Rank{4, 4},
			expected: []Rank{5, 0},
			moved:    true,
			merges:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := slices.Clone(tt.input)
			moved, merges := MergeLine(line)
			if !slices.Equal(line, tt.expected) {
				t.Errorf("MergeLine(%v) = %v, want %v", tt.input, line, tt.expected)
			}
			if moved != tt.moved {
				t.Errorf("MergeLine(%v) moved = %v, want %v", tt.input, moved, tt.moved)
			}
			if merges != tt.merges {
				t.Errorf("MergeLine(%v) merges = %d, want %d", tt.input, merges, tt.merges)
			}
		})
	}
}

func lineValue(line []Rank) int {
	total := 0
	for _, v := range line {
		total += v.Value()
	}
	return total
}

// allLines enumerates every line of the given length over ranks 0..maxRank.
func allLines(length int, maxRank Rank) [][]Rank {
	var out [][]Rank
	cur := make([]Rank, length)
	var rec func(i int)
	rec = func(i int) {
		if i == length {
			out = append(out, slices.Clone(cur))
			return
		}
		for r := Rank(0); r <= maxRank; r++ {
			cur[i] = r
			rec(i + 1)
		}
	}
	rec(0)
	return out
}

func TestMergeLineConservesValue(t *testing.T) {
	for _, input := range allLines(4, 3) {
		line := slices.Clone(input)
		moved, _ := MergeLine(line)

		if lineValue(line) != lineValue(input) {
			t.Fatalf("MergeLine(%v) = %v changed total value %d -> %d",
				input, line, lineValue(input), lineValue(line))
		}
		if !moved && !slices.Equal(line, input) {
			t.Fatalf("MergeLine(%v) reported no move but produced %v", input, line)
		}
		if moved && slices.Equal(line, input) {
			t.Fatalf("MergeLine(%v) reported a move but line is unchanged", input)
		}
	}
}

func TestMergeLinePacksTowardEdge(t *testing.T) {
	for _, input := range allLines(4, 2) {
		line := slices.Clone(input)
		MergeLine(line)

		seenEmpty := false
		for _, v := range line {
			if v == 0 {
				seenEmpty = true
			} else if seenEmpty {
				t.Fatalf("MergeLine(%v) = %v leaves a gap before a tile", input, line)
			}
		}
	}
}
