package raster

// DrawCircle draws the outline of c with the midpoint circle algorithm,
// plotting all eight octants from one walk of the first. A negative radius
// draws nothing.
func DrawCircle(c Circle, s Surface) {
	var (
		cx, cy = c.Center.X, c.Center.Y
		color  = c.Color
		x, y   = c.Radius, 0
		err    = 0
	)

	for x >= y {
		s.SetPixel(cx+x, cy+y, color)
		s.SetPixel(cx+y, cy+x, color)
		s.SetPixel(cx-y, cy+x, color)
		s.SetPixel(cx-x, cy+y, color)
		s.SetPixel(cx-x, cy-y, color)
		s.SetPixel(cx-y, cy-x, color)
		s.SetPixel(cx+y, cy-x, color)
		s.SetPixel(cx+x, cy-y, color)

		y++
		err += 1 + 2*y
		if 2*(err-x)+1 > 0 {
			x--
			err += 1 - 2*x
		}
	}
}
