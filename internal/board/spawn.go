package board

// RandSource is the randomness Spawn needs. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// SpawnRank is the rank of every spawned tile (value 2).
const SpawnRank Rank = 1

// Spawn places a rank-1 tile on an empty cell chosen uniformly at random.
// It returns the flat index used, or ok=false without touching the board
// when no cell is empty.
func Spawn(b *Board, rng RandSource) (index int, ok bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return -1, false
	}
	index = empty[rng.Intn(len(empty))]
	b.cells[index] = SpawnRank
	return index, true
}
