package model

import (
	"image"
	"image/color"
	"math"
)

// bytesPerPixel of a packed RGB frame
const bytesPerPixel = 3

// Frame is a packed RGB pixel buffer, row-major, 3 bytes per pixel
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a black frame of the given size
func NewFrame(w, h int) *Frame {
	w, h = max(w, 0), max(h, 0)
	return &Frame{W: w, H: h, Pix: make([]byte, w*h*bytesPerPixel)}
}

// Resize changes the frame dimensions, reusing the backing buffer when it is large enough
func (f *Frame) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	n := w * h * bytesPerPixel
	if cap(f.Pix) < n {
		f.Pix = make([]byte, n)
	}
	f.W, f.H, f.Pix = w, h, f.Pix[:n]
}

// Fill paints every pixel with c
func (f *Frame) Fill(c color.RGBA) {
	for i := 0; i < len(f.Pix); i += bytesPerPixel {
		f.Pix[i+0] = c.R
		f.Pix[i+1] = c.G
		f.Pix[i+2] = c.B
	}
}

// At returns the color of pixel (x, y)
func (f *Frame) At(x, y int) color.RGBA {
	base := (y*f.W + x) * bytesPerPixel
	return color.RGBA{R: f.Pix[base+0], G: f.Pix[base+1], B: f.Pix[base+2], A: 255}
}

// set paints pixel (x, y), silently clipping anything outside the frame
func (f *Frame) set(x, y int, c color.RGBA) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	base := (y*f.W + x) * bytesPerPixel
	f.Pix[base+0] = c.R
	f.Pix[base+1] = c.G
	f.Pix[base+2] = c.B
}

// FillRGBA expands the frame into an opaque RGBA buffer of len W*H*4
func (f *Frame) FillRGBA(buf []byte) {
	for i, j := 0, 0; i+2 < len(f.Pix) && j+3 < len(buf); i, j = i+bytesPerPixel, j+4 {
		buf[j+0] = f.Pix[i+0]
		buf[j+1] = f.Pix[i+1]
		buf[j+2] = f.Pix[i+2]
		buf[j+3] = 0xff
	}
}

// ToImage copies the frame into an opaque RGBA image
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	f.FillRGBA(img.Pix)
	return img
}

// Project returns the top-left pixel of a cell on a w x h screen
func (c Camera) Project(pos Coord, w, h int) (int, int) {
	xRaw := float64(pos.X-c.CenterX)*c.Zoom + float64(w)/2
	yRaw := float64(pos.Y-c.CenterY)*c.Zoom + float64(h)/2
	return int(math.Round(xRaw)), int(math.Round(yRaw))
}

/*
Rasterize draws every cell of g into f as seen through cam.

Below 2 pixels per cell each cell is a single pixel. Otherwise it is a square
covering offsets 1 through int(Zoom)-1 from the projected corner, leaving a one
pixel gap on the top and left. Loops only visit the on-screen part of a square,
so the cost per cell is bounded by the frame size. The frame is not cleared first.
*/
func Rasterize(g *Grid, f *Frame, cam Camera) {
	side := int(cam.Zoom)
	for pos, age := range g.cells {
		var (
			x, y = cam.Project(pos, f.W, f.H)
			c    = ColorOf(age)
		)
		if cam.Zoom < 2 {
			f.set(x, y, c)
			continue
		}
		for j := max(1, -y); j < min(side, f.H-y); j++ {
			for i := max(1, -x); i < min(side, f.W-x); i++ {
				f.set(x+i, y+j, c)
			}
		}
	}
}

// Render returns a new black frame with g rasterized into it
func Render(g *Grid, w, h int, cam Camera) *Frame {
	f := NewFrame(w, h)
	Rasterize(g, f, cam)
	return f
}
