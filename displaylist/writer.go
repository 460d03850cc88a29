package displaylist

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/32bitkid/raster"
	"github.com/32bitkid/raster/pixel"
)

// Writer encodes draw calls into a display list. Pen and background changes
// are only emitted when a call needs a different color than the last one
// written. Calls with more primitives than an op can carry are split.
//
// The first write error is sticky: every later call returns it.
type Writer struct {
	w   io.Writer
	err error
	buf []byte

	color, background       pixel.Color
	hasColor, hasBackground bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) flush() error {
	if w.err != nil {
		return w.err
	}
	if len(w.buf) == 0 {
		return nil
	}
	_, w.err = w.w.Write(w.buf)
	w.buf = w.buf[:0]
	return w.err
}

func (w *Writer) op(op OpCode) {
	w.buf = append(w.buf, uint8(op))
}

func (w *Writer) point(c raster.Coordinate) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(int16(c.X)))
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(int16(c.Y)))
}

func (w *Writer) setColor(c pixel.Color) {
	if w.hasColor && w.color == c {
		return
	}
	w.op(OpSetColor)
	w.buf = binary.BigEndian.AppendUint32(w.buf, c.Pack())
	w.color, w.hasColor = c, true
}

func (w *Writer) setBackground(c pixel.Color) {
	if w.hasBackground && w.background == c {
		return
	}
	w.op(OpSetBackground)
	w.buf = binary.BigEndian.AppendUint32(w.buf, c.Pack())
	w.background, w.hasBackground = c, true
}

func checkPoint(c raster.Coordinate) error {
	if c.X < math.MinInt16 || c.X > math.MaxInt16 || c.Y < math.MinInt16 || c.Y > math.MaxInt16 {
		return fmt.Errorf("coordinate out of range: (%d,%d)", c.X, c.Y)
	}
	return nil
}

// Pixels records single pixels drawn in col.
func (w *Writer) Pixels(col pixel.Color, pts ...raster.Coordinate) error {
	if w.err != nil {
		return w.err
	}
	for _, p := range pts {
		if err := checkPoint(p); err != nil {
			return err
		}
	}
	if len(pts) == 0 {
		return nil
	}
	w.setColor(col)
	for len(pts) > 0 {
		n := min(len(pts), maxBatch)
		w.op(OpPixels)
		w.buf = append(w.buf, uint8(n))
		for _, p := range pts[:n] {
			w.point(p)
		}
		pts = pts[n:]
	}
	return w.flush()
}

// Lines records solid lines.
func (w *Writer) Lines(lines ...raster.Line) error {
	return w.lines(OpLines, lines)
}

// LinesAA records anti-aliased lines blended against bg.
func (w *Writer) LinesAA(bg pixel.Color, lines ...raster.Line) error {
	if w.err != nil {
		return w.err
	}
	if err := checkLines(lines); err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	w.setBackground(bg)
	return w.lines(OpAALines, lines)
}

func checkLines(lines []raster.Line) error {
	for _, l := range lines {
		if err := checkPoint(l.Start); err != nil {
			return err
		}
		if err := checkPoint(l.End); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) lines(op OpCode, lines []raster.Line) error {
	if w.err != nil {
		return w.err
	}
	if err := checkLines(lines); err != nil {
		return err
	}

	for len(lines) > 0 {
		// a run shares one color and fits in a single op
		n := 1
		for n < len(lines) && n < maxBatch && lines[n].Color == lines[0].Color {
			n++
		}
		w.setColor(lines[0].Color)
		w.op(op)
		w.buf = append(w.buf, uint8(n))
		for _, l := range lines[:n] {
			w.point(l.Start)
			w.point(l.End)
		}
		lines = lines[n:]
	}
	return w.flush()
}

// Polyline records a connected path through pts. Consecutive vertices may be
// at most 7 pixels apart on either axis. The path includes its last vertex.
func (w *Writer) Polyline(col pixel.Color, pts ...raster.Coordinate) error {
	if w.err != nil {
		return w.err
	}
	if len(pts) == 0 {
		return nil
	}
	codes := make([]delta8, 0, len(pts)-1)
	for i, p := range pts {
		if err := checkPoint(p); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		code, ok := makeDelta8(p.X-pts[i-1].X, p.Y-pts[i-1].Y)
		if !ok {
			return fmt.Errorf("polyline step %d too long: (%d,%d) -> (%d,%d)", i, pts[i-1].X, pts[i-1].Y, p.X, p.Y)
		}
		codes = append(codes, code)
	}

	w.setColor(col)
	start := pts[0]
	for {
		n := min(len(codes), maxBatch)
		w.op(OpPolyline)
		w.point(start)
		w.buf = append(w.buf, uint8(n))
		for _, code := range codes[:n] {
			w.buf = append(w.buf, uint8(code))
			dx, dy := code.offsets()
			start = raster.Pt(start.X+dx, start.Y+dy)
		}
		codes = codes[n:]
		if len(codes) == 0 {
			break
		}
	}
	return w.flush()
}

// Circles records circle outlines. Radii must fit in 16 bits.
func (w *Writer) Circles(circles ...raster.Circle) error {
	if w.err != nil {
		return w.err
	}
	for _, c := range circles {
		if err := checkPoint(c.Center); err != nil {
			return err
		}
		if c.Radius < 0 || c.Radius > math.MaxUint16 {
			return fmt.Errorf("radius out of range: %d", c.Radius)
		}
	}

	for len(circles) > 0 {
		n := 1
		for n < len(circles) && n < maxBatch && circles[n].Color == circles[0].Color {
			n++
		}
		w.setColor(circles[0].Color)
		w.op(OpCircles)
		w.buf = append(w.buf, uint8(n))
		for _, c := range circles[:n] {
			w.point(c.Center)
			w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(c.Radius))
		}
		circles = circles[n:]
	}
	return w.flush()
}

// Clear records filling the whole surface with bg.
func (w *Writer) Clear(bg pixel.Color) error {
	if w.err != nil {
		return w.err
	}
	w.setBackground(bg)
	w.op(OpClear)
	return w.flush()
}

// Close terminates the list with OpDone. It does not close the underlying
// writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	w.op(OpDone)
	return w.flush()
}
