package board

// MergeLine slides the tiles of one line toward index 0, merging equal
// neighbors. A cell absorbs at most one merge per call, so [2 2 2 _]
// becomes [4 2 _ _]. The line is modified in place.
func MergeLine(line []Rank) (moved bool, merges int) {
	consumed := make([]bool, len(line))

	for i := 1; i < len(line); i++ {
		if line[i] == 0 {
			continue
		}

		// Nearest tile toward the leading edge; 0 when the prefix is empty.
		target := i - 1
		for target >= 0 && line[target] == 0 {
			target--
		}
		if target < 0 {
			target = 0
		}
		collide := line[target]

		switch {
		case line[i] == collide && !consumed[target]:
			line[target]++
			consumed[target] = true
			line[i] = 0
			moved = true
			merges++
		case collide != 0 && target+1 != i:
			line[target+1] = line[i]
			line[i] = 0
			moved = true
		case collide == 0 && target != i:
			line[target] = line[i]
			line[i] = 0
			moved = true
		}
	}

	return moved, merges
}
