// Package pixel provides the color type and the pixel buffer that the
// rasterizer writes into.
package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a row-major grid of colors with its origin in the top-left
// corner. The cell for (x, y) lives at Pix[x+y*Width].
type Buffer struct {
	Width, Height int
	Pix           []Color
}

// NewBuffer allocates a zeroed w×h buffer.
func NewBuffer(w, h int) *Buffer {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Buffer{
		Width:  w,
		Height: h,
		Pix:    make([]Color, w*h),
	}
}

// Wrap returns a buffer backed by pix. The caller keeps ownership of pix;
// writes to the buffer are visible through it.
func Wrap(w, h int, pix []Color) (*Buffer, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("invalid buffer dimensions: %dx%d", w, h)
	}
	if len(pix) != w*h {
		return nil, fmt.Errorf("buffer size mismatch: expected(%d) != actual(%d)", w*h, len(pix))
	}
	return &Buffer{Width: w, Height: h, Pix: pix}, nil
}

// InBounds reports whether 0 <= x < Width and 0 <= y < Height.
func (buf *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < buf.Width && y < buf.Height
}

// SetPixel overwrites the cell at (x, y). Out of bounds writes are ignored.
func (buf *Buffer) SetPixel(x, y int, c Color) {
	if !buf.InBounds(x, y) {
		return
	}
	buf.Pix[x+y*buf.Width] = c
}

// ColorAt returns the cell at (x, y), or the zero Color when out of bounds.
func (buf *Buffer) ColorAt(x, y int) Color {
	if !buf.InBounds(x, y) {
		return Color{}
	}
	return buf.Pix[x+y*buf.Width]
}

func (buf *Buffer) Clear(c Color) {
	for i, max := 0, len(buf.Pix); i < max; i++ {
		buf.Pix[i] = c
	}
}

func (buf *Buffer) ColorModel() color.Model { return Model }

func (buf *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, buf.Width, buf.Height) }

func (buf *Buffer) At(x, y int) color.Color { return buf.ColorAt(x, y) }

// Set implements draw.Image.
func (buf *Buffer) Set(x, y int, c color.Color) { buf.SetPixel(x, y, toColor(c)) }
