package model

import (
	"image/color"
	"sync"
)

// FrameToPool returns a frame to the pool for reuse
func FrameToPool(frame *Frame, pool *FramePool) {
	if pool == nil || frame == nil {
		return
	}

	pool.Put(frame)
}

// FramePool for memory efficiency
type FramePool struct {
	pool       sync.Pool
	background color.RGBA
}

// NewFramePool returns a pool whose frames come back filled with background
func NewFramePool(background color.RGBA) *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Frame{}
			},
		},
		background: background,
	}
}

// Get retrieves a frame from the pool, resized and cleared to the background
func (p *FramePool) Get(width, height int) *Frame {
	f := p.pool.Get().(*Frame)
	f.Resize(width, height)
	f.Fill(p.background)
	return f
}

// Put returns a frame to the pool
func (p *FramePool) Put(f *Frame) {
	p.pool.Put(f)
}

// RenderFrame rasterizes g into a frame taken from pool, or a new one when pool is nil
func RenderFrame(g *Grid, pool *FramePool, w, h int, cam Camera) *Frame {
	if pool == nil {
		return Render(g, w, h, cam)
	}
	f := pool.Get(w, h)
	Rasterize(g, f, cam)
	return f
}
