package raster

import "github.com/32bitkid/raster/pixel"

// DrawLine draws a solid line from l.Start towards l.End.
//
// A zero-length line draws the single shared point. Horizontal and vertical
// lines include both endpoints. Every other line steps its driving axis one
// pixel at a time and stops before the end pixel, so the end coordinate is
// not drawn; a closed polyline has to plot its final vertex itself.
func DrawLine(l Line, s Surface) {
	var (
		x1, y1 = l.Start.X, l.Start.Y
		x2, y2 = l.End.X, l.End.Y
		color  = l.Color
	)

	switch {
	case x1 == x2 && y1 == y2:
		s.SetPixel(x1, y1, color)
	case x1 == x2:
		swapIf(&y1, &y2, y1 > y2)
		for y := y1; y <= y2; y++ {
			s.SetPixel(x1, y, color)
		}
	case y1 == y2:
		swapIf(&x1, &x2, x1 > x2)
		for x := x1; x <= x2; x++ {
			s.SetPixel(x, y1, color)
		}
	default:
		drawSlopedLine(x1, y1, x2, y2, color, s)
	}
}

// drawSlopedLine is an error accumulating DDA. The driving axis is the one
// with the larger delta; the passive axis advances whenever the error
// reaches zero.
func drawSlopedLine(x1, y1, x2, y2 int, color pixel.Color, s Surface) {
	dx, dy := x2-x1, y2-y1

	var (
		driving, dEnd, dInc int
		passive, pInc       int
		flipped             bool
		slope               float64
	)

	if absInt(dx) >= absInt(dy) {
		driving, dEnd, dInc = x1, x2, sign(dx)
		passive, pInc = y1, sign(dy)
		slope = float64(dy) / float64(dx)
	} else {
		driving, dEnd, dInc = y1, y2, sign(dy)
		passive, pInc = x1, sign(dx)
		slope = float64(dx) / float64(dy)
		flipped = true
	}

	m := absFloat(slope)
	e := m - 1

	for driving != dEnd {
		if flipped {
			s.SetPixel(passive, driving, color)
		} else {
			s.SetPixel(driving, passive, color)
		}

		if e >= 0 {
			passive += pInc
			e--
		}
		driving += dInc
		e += m
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}
