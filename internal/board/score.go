package board

import (
	"math"
	"sort"
)

// Score sums the displayed values of every tile on the board, saturating at
// math.MaxInt.
func Score(b *Board) int {
	total := 0
	for _, v := range b.cells {
		val := v.Value()
		if total > math.MaxInt-val {
			return math.MaxInt
		}
		total += val
	}
	return total
}

// HistogramEntry counts the tiles of one rank.
type HistogramEntry struct {
	Rank  Rank
	Count int
}

// Histogram is a tile distribution ordered by ascending rank.
type Histogram []HistogramEntry

// NewHistogram counts the non-empty tiles of b.
func NewHistogram(b *Board) Histogram {
	counts := make(map[Rank]int)
	for _, v := range b.cells {
		if v > 0 {
			counts[v]++
		}
	}

	h := make(Histogram, 0, len(counts))
	for r, n := range counts {
		h = append(h, HistogramEntry{Rank: r, Count: n})
	}
	sort.Slice(h, func(i, j int) bool {
		return h[i].Rank < h[j].Rank
	})
	return h
}

// Count returns the number of tiles with rank r.
func (h Histogram) Count(r Rank) int {
	for _, e := range h {
		if e.Rank == r {
			return e.Count
		}
	}
	return 0
}

// Total returns the number of tiles counted.
func (h Histogram) Total() int {
	n := 0
	for _, e := range h {
		n += e.Count
	}
	return n
}
