// Package framebuf is an in-memory drivers.Displayer for host builds: the
// simulator shows it in a window and tests inspect its pixels.
package framebuf

import (
	"image"
	"image/color"
	"sync"
)

// Buffer implements tinygo.org/x/drivers.Displayer over an image.RGBA.
type Buffer struct {
	mu     sync.Mutex
	back   *image.RGBA
	frames int

	// OnDisplay, if set, receives a copy of every flushed frame.
	OnDisplay func(frame *image.RGBA)
}

// New returns a w x h buffer cleared to transparent black.
func New(w, h int16) *Buffer {
	return &Buffer{back: image.NewRGBA(image.Rect(0, 0, int(w), int(h)))}
}

func (b *Buffer) Size() (x, y int16) {
	r := b.back.Bounds()
	return int16(r.Dx()), int16(r.Dy())
}

// SetPixel ignores coordinates outside the panel, as the panel drivers do.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	b.mu.Lock()
	b.back.SetRGBA(int(x), int(y), c)
	b.mu.Unlock()
}

// FillScreen paints every pixel; used instead of per-pixel clears.
func (b *Buffer) FillScreen(c color.RGBA) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := b.back.Pix
	for i := 0; i < len(p); i += 4 {
		p[i], p[i+1], p[i+2], p[i+3] = c.R, c.G, c.B, c.A
	}
}

func (b *Buffer) Display() error {
	b.mu.Lock()
	b.frames++
	snap := b.snapshot()
	cb := b.OnDisplay
	b.mu.Unlock()
	if cb != nil {
		cb(snap)
	}
	return nil
}

// RGBAAt returns the pixel at x,y of the working buffer.
func (b *Buffer) RGBAAt(x, y int16) color.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.back.RGBAAt(int(x), int(y))
}

// Frames counts Display calls.
func (b *Buffer) Frames() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

// Snapshot copies the working buffer.
func (b *Buffer) Snapshot() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *Buffer) snapshot() *image.RGBA {
	img := image.NewRGBA(b.back.Rect)
	copy(img.Pix, b.back.Pix)
	return img
}
