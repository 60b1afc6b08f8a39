package model

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	seedBlockMarker = "#P"
	seedLiveCell    = '*'
)

// ErrMalformedSeed is returned when a block origin cannot be parsed
var ErrMalformedSeed = errors.New("malformed seed")

// LoadSeedFile reads a seed document from disk and builds generation 0
func LoadSeedFile(filename string) (*Grid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadSeedFile] failed to read file: %+v", filename)
	}

	g, err := FromSeed(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadSeedFile] failed to parse file: %+v", filename)
	}
	return g, nil
}

/*
FromSeed parses a seed document into a grid of fresh cells.

The document is a sequence of blocks, each opened by a "#P <x> <y>" line. A '*'
at column j of the i-th row after the marker is a live cell at (x+j, y+i);
every other character is ignored. Any text before the first marker is skipped.
A bad origin fails the whole load.
*/
func FromSeed(text string) (*Grid, error) {
	b := NewBuilder()

	blocks := strings.Split(text, seedBlockMarker)
	for i, block := range blocks[1:] {
		lines := strings.Split(block, "\n")
		origin, err := parseOrigin(lines[0])
		if err != nil {
			return nil, errors.Wrapf(err, "[FromSeed] block %d", i)
		}

		for row, line := range lines[1:] {
			line = strings.TrimSuffix(line, "\r")
			for col, ch := range []rune(line) {
				if ch == seedLiveCell {
					b.Set(origin.X+int32(col), origin.Y+int32(row), true)
				}
			}
		}
	}

	return b.Build(), nil
}

// parseOrigin reads the "<x> <y>" tail of a block marker line
func parseOrigin(line string) (Coord, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Coord{}, errors.Wrapf(ErrMalformedSeed, "origin %q needs two integers", line)
	}

	x, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return Coord{}, errors.Wrapf(ErrMalformedSeed, "origin x %q: %v", fields[0], err)
	}
	y, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return Coord{}, errors.Wrapf(ErrMalformedSeed, "origin y %q: %v", fields[1], err)
	}
	return Coord{X: int32(x), Y: int32(y)}, nil
}
