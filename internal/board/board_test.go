package board

import (
	"errors"
	"math"
	"testing"
)

func TestNewRejectsSmallSizes(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) error = %v, want ErrInvalidSize", size, err)
		}
	}

	b, err := New(4)
	if err != nil {
		t.Fatalf("New(4) failed: %v", err)
	}
	if b.Size() != 4 || len(b.EmptyCells()) != 16 {
		t.Errorf("New(4) = size %d with %d empty cells", b.Size(), len(b.EmptyCells()))
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	b, _ := New(3)

	tests := []struct {
		name     string
		row, col int
	}{
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"row too large", 3, 0},
		{"col too large", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Get(tt.row, tt.col); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Get(%d, %d) error = %v, want ErrOutOfRange", tt.row, tt.col, err)
			}
			if err := b.Set(tt.row, tt.col, 1); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Set(%d, %d) error = %v, want ErrOutOfRange", tt.row, tt.col, err)
			}
			if _, err := b.IsEmpty(tt.row, tt.col); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("IsEmpty(%d, %d) error = %v, want ErrOutOfRange", tt.row, tt.col, err)
			}
		})
	}

	if b.TileCount() != 0 {
		t.Errorf("failed Set mutated the board:\n%v", b)
	}
}

func TestIndexMapping(t *testing.T) {
	b, _ := New(4)
	seen := make(map[int]bool)
	for r := range 4 {
		for c := range 4 {
			i, err := b.Index(r, c)
			if err != nil {
				t.Fatalf("Index(%d, %d) failed: %v", r, c, err)
			}
			if i != r*4+c {
				t.Errorf("Index(%d, %d) = %d, want %d", r, c, i, r*4+c)
			}
			gr, gc, err := b.Coords(i)
			if err != nil || gr != r || gc != c {
				t.Errorf("Coords(%d) = (%d, %d, %v), want (%d, %d)", i, gr, gc, err, r, c)
			}
			seen[i] = true
		}
	}
	if len(seen) != 16 {
		t.Errorf("mapping is not bijective: %d distinct indices", len(seen))
	}
}

func TestSetGetAndEmptyCells(t *testing.T) {
	b, _ := New(2)
	if err := b.Set(0, 1, 3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Set(1, 0, -2); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("Set negative rank error = %v, want ErrInvalidRank", err)
	}

	v, err := b.Get(0, 1)
	if err != nil || v != 3 {
		t.Errorf("Get(0, 1) = %d, %v; want 3", v, err)
	}
	empty, _ := b.IsEmpty(0, 1)
	if empty {
		t.Error("IsEmpty(0, 1) = true after Set")
	}

	got := b.EmptyCells()
	want := []int{0, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("EmptyCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmptyCells() = %v, want %v", got, want)
		}
	}
}

func TestFromRows(t *testing.T) {
	b, err := FromRows([][]Rank{
		{1, 0},
		{0, 2},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if b.MaxRank() != 2 || b.TileCount() != 2 {
		t.Errorf("MaxRank=%d TileCount=%d, want 2 and 2", b.MaxRank(), b.TileCount())
	}

	if _, err := FromRows([][]Rank{{1, 0}, {0}}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("ragged rows error = %v, want ErrInvalidSize", err)
	}
	if _, err := FromRows([][]Rank{{1, -1}, {0, 0}}); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("negative rank error = %v, want ErrInvalidRank", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, _ := FromRows([][]Rank{{1, 2}, {3, 4}})
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.Set(0, 0, 5)
	if b.Equal(c) {
		t.Error("mutating the clone changed the original")
	}
}

func TestRankValueAndLabel(t *testing.T) {
	tests := []struct {
		rank  Rank
		value int
		label string
	}{
		{0, 0, "[    ]"},
		{1, 2, "[  2 ]"},
		{7, 128, "[ 128]"},
		{13, 8192, "[8192]"},
		{14, 16384, "[16384]"},
		{MaxValueRank, 1 << MaxValueRank, ""},
		{MaxValueRank + 1, math.MaxInt, ""},
		{200, math.MaxInt, ""},
	}
	for _, tt := range tests {
		if got := tt.rank.Value(); got != tt.value {
			t.Errorf("Rank(%d).Value() = %d, want %d", tt.rank, got, tt.value)
		}
		if tt.label == "" {
			continue
		}
		if got := tt.rank.Label(); got != tt.label {
			t.Errorf("Rank(%d).Label() = %q, want %q", tt.rank, got, tt.label)
		}
	}
}
