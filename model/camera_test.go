package model

import (
	"math"
	"testing"
)

func TestZoomBy(t *testing.T) {
	cam := NewCamera(0, 0, 0)
	if cam.Zoom != DefaultZoom {
		t.Fatalf("non-positive zoom should fall back to %v, got %v", DefaultZoom, cam.Zoom)
	}

	cam.ZoomBy(2)
	if math.Abs(cam.Zoom-11.25) > 1e-9 {
		t.Fatalf("two notches in: zoom=%v, expected 11.25", cam.Zoom)
	}
	cam.ZoomBy(-3)
	if math.Abs(cam.Zoom-5/1.5) > 1e-9 {
		t.Fatalf("three notches out: zoom=%v, expected %v", cam.Zoom, 5/1.5)
	}
}

func TestDragAccumulatesWholeCells(t *testing.T) {
	var (
		cam  = NewCamera(0, 0, 5)
		drag Drag
	)

	drag.Move(&cam, 50, 50)
	if cam.CenterX != 0 || cam.CenterY != 0 {
		t.Fatal("moving without a pressed button must not pan")
	}

	drag.Press(100, 100)
	drag.Move(&cam, 103, 100)
	if cam.CenterX != 0 {
		t.Fatalf("sub-cell drag should not pan yet, center x=%d", cam.CenterX)
	}

	// Anchor stayed at 100, so 4 pixels * 1.3 / 5 = 1.04 cells.
	drag.Move(&cam, 104, 100)
	if cam.CenterX != -1 || cam.CenterY != 0 {
		t.Fatalf("center = (%d,%d), expected (-1,0)", cam.CenterX, cam.CenterY)
	}

	drag.Move(&cam, 104, 90)
	if cam.CenterX != -1 || cam.CenterY != 2 {
		t.Fatalf("center = (%d,%d), expected (-1,2)", cam.CenterX, cam.CenterY)
	}

	drag.Release()
	if drag.Active() {
		t.Fatal("drag still active after release")
	}
	drag.Move(&cam, 0, 0)
	if cam.CenterX != -1 || cam.CenterY != 2 {
		t.Fatal("released drag must not pan")
	}
}
