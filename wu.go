package raster

import (
	"math"

	"github.com/32bitkid/raster/pixel"
)

// DefaultBackground is the backdrop anti-aliased lines are usually blended
// against.
var DefaultBackground = pixel.White

// DrawLineAA draws l with Xiaolin Wu's algorithm. Each step covers the two
// pixels straddling the ideal line, blending l.Color into bg by their share
// of coverage.
//
// The surface is never read: bg stands in for whatever is underneath, so
// overlapping anti-aliased lines do not composite with each other. Pixels
// that receive no coverage are left untouched.
func DrawLineAA(l Line, bg pixel.Color, s Surface) {
	x0, y0 := float64(l.Start.X), float64(l.Start.Y)
	x1, y1 := float64(l.End.X), float64(l.End.Y)

	if l.Degenerate() {
		s.SetPixel(l.Start.X, l.Start.Y, l.Color)
		return
	}

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	p := wuPlotter{
		surface: s,
		fg:      l.Color,
		bg:      bg,
		steep:   steep,
	}

	slope := (y1 - y0) / (x1 - x0)

	// first endpoint
	xEnd := math.Round(x0)
	yEnd := y0 + slope*(xEnd-x0)
	xPixel1 := int(xEnd)
	p.straddle(xPixel1, yEnd)
	intery := yEnd + slope

	// second endpoint
	xEnd = math.Round(x1)
	yEnd = y1 + slope*(xEnd-x1)
	xPixel2 := int(xEnd)
	p.straddle(xPixel2, yEnd)

	for x := xPixel1 + 1; x < xPixel2; x++ {
		p.straddle(x, intery)
		intery += slope
	}
}

type wuPlotter struct {
	surface Surface
	fg, bg  pixel.Color
	steep   bool
}

// straddle blends the two pixels on either side of the passive position y at
// driving position x.
func (p wuPlotter) straddle(x int, y float64) {
	upper, lower := coverage(y)
	row := int(math.Floor(y))
	p.plot(x, row, upper)
	p.plot(x, row+1, lower)
}

func (p wuPlotter) plot(x, y int, c float64) {
	if c <= 0 {
		return
	}
	if p.steep {
		x, y = y, x
	}
	p.surface.SetPixel(x, y, pixel.Blend(p.bg, p.fg, c))
}

// coverage splits a fractional row position between the pixel at floor(y)
// and the one below it. The two weights always sum to 1.
func coverage(y float64) (upper, lower float64) {
	return rfpart(y), fpart(y)
}

// fpart is the fractional part of x. Negative inputs wrap to the upward
// rounding convention: 1 - (x - floor(x)). A negative whole number therefore
// has fpart 1 and its coverage lands on the next pixel up, e.g. -1 draws on 0.
func fpart(x float64) float64 {
	if x < 0 {
		return 1 - (x - math.Floor(x))
	}
	return x - math.Floor(x)
}

func rfpart(x float64) float64 {
	return 1 - fpart(x)
}
