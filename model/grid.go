package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"slices"

	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/agelife/rules"
)

// Cell is a single live entry of a grid
type Cell struct {
	Pos Coord
	Age uint8
}

// Bounds is the inclusive bounding box of the live cells
type Bounds struct {
	MinX, MaxX, MinY, MaxY int32
	Valid                  bool
}

// Area returns the number of cells covered by the box
func (b Bounds) Area() int {
	if !b.Valid {
		return 0
	}
	return int(b.MaxX-b.MinX+1) * int(b.MaxY-b.MinY+1)
}

// Grid is one generation of the sparse board. It is never mutated after it is built.
type Grid struct {
	cells map[Coord]uint8
}

// NewGrid returns an empty grid
func NewGrid() *Grid {
	return &Grid{cells: map[Coord]uint8{}}
}

// Get returns the counter stored at pos and whether pos is alive
func (g *Grid) Get(pos Coord) (uint8, bool) {
	age, ok := g.cells[pos]
	return age, ok
}

// CountLivingCells returns the total number of live or aging cells
func (g *Grid) CountLivingCells() int {
	return len(g.cells)
}

// CountFresh returns the number of cells born or refreshed in the last step
func (g *Grid) CountFresh() (count int) {
	for _, age := range g.cells {
		if age == rules.FreshAge {
			count++
		}
	}
	return
}

// Cells returns a snapshot of the grid contents in unspecified order
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for pos, age := range g.cells {
		out = append(out, Cell{Pos: pos, Age: age})
	}
	return out
}

// Bounds calculates the bounding box of living cells
func (g *Grid) Bounds() Bounds {
	var b Bounds
	for pos := range g.cells {
		if !b.Valid {
			b = Bounds{MinX: pos.X, MaxX: pos.X, MinY: pos.Y, MaxY: pos.Y, Valid: true}
			continue
		}
		b.MinX = min(b.MinX, pos.X)
		b.MaxX = max(b.MaxX, pos.X)
		b.MinY = min(b.MinY, pos.Y)
		b.MaxY = max(b.MaxY, pos.Y)
	}
	return b
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	return g.Bounds().Area()
}

// GetGridHash returns an MD5 hash of the grid contents, independent of map order
func (g *Grid) GetGridHash() string {
	cells := g.Cells()
	slices.SortFunc(cells, func(a, b Cell) int {
		ka, kb := a.Pos.Key(), b.Pos.Key()
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})

	var (
		h   = md5.New()
		buf [9]byte
	)
	for _, c := range cells {
		binary.LittleEndian.PutUint64(buf[:8], c.Pos.Key())
		buf[8] = c.Age
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both grids hold exactly the same cells and counters
func (g *Grid) Equal(other *Grid) bool {
	if len(g.cells) != len(other.cells) {
		return false
	}
	for pos, age := range g.cells {
		if o, ok := other.cells[pos]; !ok || o != age {
			return false
		}
	}
	return true
}

// Builder assembles a grid. It is the only mutable form of a board.
type Builder struct {
	cells map[Coord]uint8
}

// NewBuilder returns an empty builder
func NewBuilder() *Builder {
	return &Builder{cells: map[Coord]uint8{}}
}

// Set marks a cell as freshly alive (true) or removes it (false)
func (b *Builder) Set(x, y int32, alive bool) {
	if alive {
		b.cells[Coord{X: x, Y: y}] = rules.FreshAge
		return
	}
	delete(b.cells, Coord{X: x, Y: y})
}

// SetAge stores an explicit counter, clamped to [FreshAge, MaxAge]
func (b *Builder) SetAge(pos Coord, age uint8) {
	b.cells[pos] = min(max(age, rules.FreshAge), rules.MaxAge)
}

// Len returns the number of cells placed so far
func (b *Builder) Len() int {
	return len(b.cells)
}

// Build hands the cells over to a new grid and leaves the builder empty
func (b *Builder) Build() *Grid {
	g := &Grid{cells: b.cells}
	b.cells = map[Coord]uint8{}
	return g
}

// AddGlider adds a glider pattern at the specified position
func (b *Builder) AddGlider(startX, startY int32) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			if cell {
				b.Set(startX+int32(x), startY+int32(y), true)
			}
		}
	}
}

// AddOscillator adds a blinker oscillator pattern
func (b *Builder) AddOscillator(startX, startY int32) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX+2, startY, true)
}

// Randomize fills a width x height region centered on the origin with random living cells
func (b *Builder) Randomize(width, height int, density float64, seed uint64) {
	var (
		rng  = rand.New(rand.NewSource(seed))
		left = int32(-width / 2)
		top  = int32(-height / 2)
	)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < density {
				b.Set(left+int32(x), top+int32(y), true)
			}
		}
	}
}

// InterestingPatterns builds a random soup with a couple of known patterns around it
func InterestingPatterns(width, height int, density float64, seed uint64) *Grid {
	b := NewBuilder()
	b.Randomize(width, height, density, seed)

	if width >= 10 && height >= 10 {
		var (
			left  = int32(-width / 2)
			top   = int32(-height / 2)
			right = left + int32(width)
		)
		b.AddGlider(left-8, top-8)
		b.AddOscillator(right+4, top-4)
	}
	return b.Build()
}
