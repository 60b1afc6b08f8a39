package rules

const (
	// FreshAge is the counter of a cell that was born or survived this generation
	FreshAge uint8 = 1
	// MaxAge is the oldest counter a cell can carry before it is dropped
	MaxAge uint8 = 100
)

/*
Age advances a cell's counter by one generation.

Cells already at MaxAge die of old age regardless of their neighbors, so the
second return value is false for them.
*/
func Age(counter uint8) (uint8, bool) {
	if counter >= MaxAge {
		return 0, false
	}
	return counter + 1, true
}

// CanInfluence reports whether a neighbor count can ever produce a birth or survival
func CanInfluence(neighbors int) bool {
	return neighbors > 1 && neighbors < 4
}

/*
Decide reports whether a cell is (re)set to FreshAge in the next generation.

Only fresh cells are counted as neighbors. A count of 3 always yields a fresh
cell; a count of 2 keeps the cell fresh only if it was itself fresh in the
pre-step grid. Older cells are never refreshed by the count-2 branch.
*/
func Decide(neighbors int, prev uint8, present bool) bool {
	return neighbors == 3 || (neighbors == 2 && present && prev == FreshAge)
}
