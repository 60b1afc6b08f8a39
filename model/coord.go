package model

// neighborOffsets are the 8 compass directions at unit distance
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Coord identifies a cell on the unbounded grid
type Coord struct {
	X int32
	Y int32
}

// Add returns the component-wise sum of two coordinates
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Key packs both fields into a single value. Distinct coordinates never share a key.
func (c Coord) Key() uint64 {
	return uint64(uint32(c.X))<<32 | uint64(uint32(c.Y))
}

// Neighbors returns the 8 cells adjacent to c
func (c Coord) Neighbors() [8]Coord {
	var out [8]Coord
	for i, d := range neighborOffsets {
		out[i] = c.Add(d)
	}
	return out
}
