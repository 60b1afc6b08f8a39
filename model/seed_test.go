package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestFromSeedDiagonal(t *testing.T) {
	g, err := FromSeed("#P 0 0\n*.\n.*")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	expectCells(t, g, map[Coord]uint8{{0, 0}: 1, {1, 1}: 1})
}

func TestFromSeedMultipleBlocks(t *testing.T) {
	text := "comment line with * ignored\n#P 10 -5\n**\n#P -3 2\r\n .*\r\n"
	g, err := FromSeed(text)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	expectCells(t, g, map[Coord]uint8{{10, -5}: 1, {11, -5}: 1, {-1, 2}: 1})
}

func TestFromSeedEmpty(t *testing.T) {
	for _, text := range []string{"", "no blocks here\n"} {
		g, err := FromSeed(text)
		if err != nil {
			t.Fatalf("parse %q failed: %v", text, err)
		}
		if g.CountLivingCells() != 0 {
			t.Fatalf("parse %q produced %d cells", text, g.CountLivingCells())
		}
	}
}

func TestFromSeedMalformedOrigin(t *testing.T) {
	for _, text := range []string{
		"#P a 0\n*",
		"#P 0 1.5\n*",
		"#P 5\n*",
		"#P 0 0\n*\n#P x y\n*",
	} {
		g, err := FromSeed(text)
		if err == nil {
			t.Fatalf("parse %q should fail", text)
		}
		if g != nil {
			t.Fatalf("parse %q returned a partial grid", text)
		}
		if !errors.Is(err, ErrMalformedSeed) {
			t.Fatalf("parse %q: unexpected error %v", text, err)
		}
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	if err := os.WriteFile(path, []byte("#P 1 1\n***\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	expectCells(t, g, map[Coord]uint8{{1, 1}: 1, {2, 1}: 1, {3, 1}: 1})

	if _, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.txt")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file should report not-exist, got %v", err)
	}
}
