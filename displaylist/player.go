package displaylist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/raster"
	"github.com/32bitkid/raster/pixel"
)

// Clearer is implemented by surfaces that can be filled in one call.
// *pixel.Buffer is a Clearer.
type Clearer interface {
	Clear(c pixel.Color)
}

type DebugCallback func(*State)

type Options struct {
	// DebugFn is called after every op that touched the surface.
	DebugFn DebugCallback
}

// State is the player state as seen by a DebugCallback.
type State struct {
	Surface    raster.Surface
	Color      pixel.Color
	Background pixel.Color

	// Op is the op-code that was executed last, Ops the number executed so far.
	Op  OpCode
	Ops int

	debugFn DebugCallback
}

func (s *State) debugger() {
	if s.debugFn != nil {
		s.debugFn(s)
	}
}

type listReader struct {
	bits bitreader.BitReader
}

func (r listReader) op() (OpCode, error) {
	op, err := r.bits.Read8(8)
	return OpCode(op), err
}

func (r listReader) count() (int, error) {
	n, err := r.bits.Read8(8)
	return int(n), err
}

func (r listReader) color() (pixel.Color, error) {
	v, err := r.bits.Read32(32)
	if err != nil {
		return pixel.Color{}, err
	}
	return pixel.Unpack(v), nil
}

func (r listReader) word() (int, error) {
	v, err := r.bits.Read32(16)
	if err != nil {
		return 0, err
	}
	return int(int16(uint16(v))), nil
}

// point reads an absolute position from the stream. The format is 32-bits
// long:
//
//	bits  |
//	 0-15 | x, two's complement
//	16-31 | y, two's complement
func (r listReader) point() (raster.Coordinate, error) {
	x, err := r.word()
	if err != nil {
		return raster.Coordinate{}, err
	}
	y, err := r.word()
	if err != nil {
		return raster.Coordinate{}, err
	}
	return raster.Pt(x, y), nil
}

func (r listReader) segment() (start, end raster.Coordinate, err error) {
	if start, err = r.point(); err != nil {
		return
	}
	end, err = r.point()
	return
}

// Play decodes the display list in src and draws it on s. Drawing starts with
// a black pen and raster.DefaultBackground as the background.
//
// Play stops at OpDone. A stream that ends before OpDone fails with
// io.ErrUnexpectedEOF; everything drawn up to that point stays on s.
func Play(src io.Reader, s raster.Surface, options ...Options) (State, error) {
	var debugFn DebugCallback
	for _, opts := range options {
		if opts.DebugFn != nil {
			debugFn = opts.DebugFn
		}
	}

	r := listReader{bitreader.NewReader(bufio.NewReader(src))}
	state := State{
		Surface:    s,
		Color:      pixel.Black,
		Background: raster.DefaultBackground,
		debugFn:    debugFn,
	}

	err := play(r, &state)
	return state, err
}

func play(r listReader, state *State) error {
	log := raster.Logger()
	s := state.Surface

	for {
		op, err := r.op()
		if err != nil {
			return truncated(err)
		}

		state.Op = op
		state.Ops++
		log.Debug("display list op", "op", op, "index", state.Ops)

		switch op {
		case OpSetColor:
			if state.Color, err = r.color(); err != nil {
				return truncated(err)
			}
		case OpSetBackground:
			if state.Background, err = r.color(); err != nil {
				return truncated(err)
			}

		case OpPixels:
			n, err := r.count()
			if err != nil {
				return truncated(err)
			}
			for i := 0; i < n; i++ {
				p, err := r.point()
				if err != nil {
					return truncated(err)
				}
				raster.DrawPixel(p, state.Color, s)
			}
			state.debugger()

		case OpLines, OpAALines:
			n, err := r.count()
			if err != nil {
				return truncated(err)
			}
			for i := 0; i < n; i++ {
				start, end, err := r.segment()
				if err != nil {
					return truncated(err)
				}
				l := raster.Line{Start: start, End: end, Color: state.Color}
				if op == OpAALines {
					raster.DrawLineAA(l, state.Background, s)
				} else {
					raster.DrawLine(l, s)
				}
			}
			state.debugger()

		case OpPolyline:
			p1, err := r.point()
			if err != nil {
				return truncated(err)
			}
			n, err := r.count()
			if err != nil {
				return truncated(err)
			}
			for i := 0; i < n; i++ {
				code, err := r.bits.Read8(8)
				if err != nil {
					return truncated(err)
				}
				dx, dy := delta8(code).offsets()
				p2 := raster.Pt(p1.X+dx, p1.Y+dy)
				raster.DrawLine(raster.Line{Start: p1, End: p2, Color: state.Color}, s)
				p1 = p2
			}
			// segments stop short of their end; close the path on the last vertex
			raster.DrawPixel(p1, state.Color, s)
			state.debugger()

		case OpCircles:
			n, err := r.count()
			if err != nil {
				return truncated(err)
			}
			for i := 0; i < n; i++ {
				center, err := r.point()
				if err != nil {
					return truncated(err)
				}
				radius, err := r.bits.Read32(16)
				if err != nil {
					return truncated(err)
				}
				raster.DrawCircle(raster.Circle{Center: center, Radius: int(radius), Color: state.Color}, s)
			}
			state.debugger()

		case OpClear:
			c, ok := s.(Clearer)
			if !ok {
				log.Warn("display list clear ignored", "surface", fmt.Sprintf("%T", s))
				continue
			}
			c.Clear(state.Background)
			state.debugger()

		case OpDone:
			return nil

		default:
			return fmt.Errorf("unhandled OP 0x%02x", uint8(op))
		}
	}
}

func truncated(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
