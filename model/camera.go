package model

import "math"

const (
	// DefaultZoom is the pixels-per-cell factor of a fresh camera
	DefaultZoom = 5.0
	// ZoomStep is the zoom multiplier applied per wheel notch
	ZoomStep = 1.5
	// dragSpeed scales cursor movement into cell movement
	dragSpeed = 1.3
)

// Camera selects which part of the unbounded grid is visible
type Camera struct {
	CenterX int32
	CenterY int32
	Zoom    float64 // pixels per cell
}

// NewCamera returns a camera looking at (x, y); a non-positive zoom falls back to DefaultZoom
func NewCamera(x, y int32, zoom float64) Camera {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return Camera{CenterX: x, CenterY: y, Zoom: zoom}
}

// ZoomBy scales the zoom by ZoomStep^notches
func (c *Camera) ZoomBy(notches int) {
	c.Zoom *= math.Pow(ZoomStep, float64(notches))
}

// Drag pans a camera while a mouse button is held
type Drag struct {
	anchorX, anchorY int
	active           bool
}

// Press starts a drag at the cursor position
func (d *Drag) Press(x, y int) {
	d.anchorX, d.anchorY, d.active = x, y, true
}

// Release ends the drag
func (d *Drag) Release() {
	d.active = false
}

// Active reports whether a drag is in progress
func (d *Drag) Active() bool {
	return d.active
}

/*
Move pans cam to follow the cursor.

Cursor deltas are converted to whole cells; an axis that has not yet moved a
full cell keeps its anchor so slow drags still accumulate.
*/
func (d *Drag) Move(cam *Camera, x, y int) {
	if !d.active {
		return
	}
	dx := int32(float64(x-d.anchorX) / cam.Zoom * dragSpeed)
	dy := int32(float64(y-d.anchorY) / cam.Zoom * dragSpeed)
	cam.CenterX -= dx
	cam.CenterY -= dy
	if dx != 0 {
		d.anchorX = x
	}
	if dy != 0 {
		d.anchorY = y
	}
}
