// Package raster draws pixels, lines, anti-aliased lines and circles into a
// pixel surface in software.
//
// Every draw call is synchronous and writes straight through the surface's
// bounds-checked setter, so primitives that leave the surface are clipped one
// pixel at a time. Draw calls never fail.
//
// The rasterizer does no locking. A surface must not be drawn on from more
// than one goroutine at a time.
package raster

import (
	"image"

	"github.com/32bitkid/raster/pixel"
)

// Surface is the writable pixel store the rasterizer draws on.
// Implementations ignore writes outside of their bounds; *pixel.Buffer
// is the canonical one.
type Surface interface {
	SetPixel(x, y int, c pixel.Color)
}

// Coordinate is a position in pixel space.
type Coordinate struct {
	X, Y int
}

// Pt is shorthand for Coordinate{x, y}.
func Pt(x, y int) Coordinate { return Coordinate{X: x, Y: y} }

func (c Coordinate) Point() image.Point { return image.Pt(c.X, c.Y) }

type Line struct {
	Start, End Coordinate
	Color      pixel.Color
}

// Degenerate reports whether the line has zero length.
func (l Line) Degenerate() bool { return l.Start == l.End }

// Circle is an unfilled circle outline. A radius of 0 is a single point.
type Circle struct {
	Center Coordinate
	Radius int
	Color  pixel.Color
}

// DrawPixel writes a single pixel. It is a no-op outside of the surface.
func DrawPixel(c Coordinate, col pixel.Color, s Surface) {
	s.SetPixel(c.X, c.Y, col)
}
