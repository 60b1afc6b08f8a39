package model

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sheikhrachel/agelife/rules"
)

const (
	gridPosFresh = "██"
	gridPosYoung = "▓▓"
	gridPosOld   = "░░"
	gridPosEmpty = "  "

	// youngAgeLimit is the last counter drawn with the young glyph
	youngAgeLimit = 8

	ansiClear = "\033[H\033[2J"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// glyph picks the two-character cell drawing for a counter
func glyph(age uint8) string {
	switch {
	case age == rules.FreshAge:
		return gridPosFresh
	case age <= youngAgeLimit:
		return gridPosYoung
	default:
		return gridPosOld
	}
}

// Display renders a cols x rows window of the grid centered on the camera
func (r *TerminalRenderer) Display(g *Grid, cam Camera, cols, rows int) {
	var (
		w    = bufio.NewWriter(r.Out)
		left = cam.CenterX - int32(cols/2)
		top  = cam.CenterY - int32(rows/2)
	)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if age, ok := g.Get(Coord{X: left + int32(x), Y: top + int32(y)}); ok {
				w.WriteString(glyph(age))
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing grid:", err)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	if _, err := io.WriteString(r.Out, ansiClear); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
