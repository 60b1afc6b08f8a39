package model

import "testing"

func TestKeyDistinguishesCoordinates(t *testing.T) {
	coords := []Coord{
		{0, 0}, {0, 1}, {1, 0}, {-1, 0}, {0, -1}, {-1, -1},
		{1 << 20, -(1 << 20)}, {-(1 << 20), 1 << 20},
		{2147483647, -2147483648}, {-2147483648, 2147483647},
	}
	seen := map[uint64]Coord{}
	for _, c := range coords {
		if prev, ok := seen[c.Key()]; ok {
			t.Fatalf("%v and %v share key %x", prev, c, c.Key())
		}
		seen[c.Key()] = c
	}
	if (Coord{3, -4}).Key() != (Coord{3, -4}).Key() {
		t.Fatal("equal coordinates must share a key")
	}
}

func TestNeighbors(t *testing.T) {
	c := Coord{X: 10, Y: -3}
	got := c.Neighbors()

	seen := map[Coord]bool{}
	for _, n := range got {
		dx, dy := n.X-c.X, n.Y-c.Y
		if n == c || dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("%v is not adjacent to %v", n, c)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct neighbors, got %d", len(seen))
	}
}
