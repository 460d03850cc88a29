// Package displaylist records draw calls as a compact binary stream and plays
// them back against a raster surface.
//
// A stream is a sequence of op-codes, each followed by its operands, and is
// terminated by OpDone. All multi-byte values are big-endian. Points are two
// signed 16-bit words (x, y).
//
//	op   | operands
//	0xf0 | color (0xAARRGGBB)
//	0xf1 | background (0xAARRGGBB)
//	0xf2 | n, n × point
//	0xf3 | n, n × (point, point)
//	0xf4 | point, n, n × delta8
//	0xf5 | n, n × (point, point)
//	0xf6 | n, n × (point, radius:16)
//	0xf7 |
//	0xff |
//
// A delta8 packs an x and a y offset into one nibble each: bit 3 is the sign,
// bits 0-2 the magnitude.
package displaylist

import "fmt"

// OpCode identifies a display list command.
type OpCode uint8

const (
	OpSetColor      OpCode = 0xf0
	OpSetBackground OpCode = 0xf1
	OpPixels        OpCode = 0xf2
	OpLines         OpCode = 0xf3
	OpPolyline      OpCode = 0xf4
	OpAALines       OpCode = 0xf5
	OpCircles       OpCode = 0xf6
	OpClear         OpCode = 0xf7
	OpDone          OpCode = 0xff
)

var opNames = map[OpCode]string{
	OpSetColor:      "set-color",
	OpSetBackground: "set-background",
	OpPixels:        "pixels",
	OpLines:         "lines",
	OpPolyline:      "polyline",
	OpAALines:       "aa-lines",
	OpCircles:       "circles",
	OpClear:         "clear",
	OpDone:          "done",
}

func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OpCode(0x%02x)", uint8(op))
}

// maxBatch is the largest count a single op can carry.
const maxBatch = 0xff

// maxDelta is the largest magnitude a delta8 nibble can hold.
const maxDelta = 7

type delta8 uint8

func (code delta8) offsets() (dx, dy int) {
	dx, dy = int((code>>4)&0x7), int(code&0x7)
	if (code>>4)&0x8 != 0 {
		dx = -dx
	}
	if code&0x8 != 0 {
		dy = -dy
	}
	return dx, dy
}

func makeDelta8(dx, dy int) (delta8, bool) {
	if dx < -maxDelta || dx > maxDelta || dy < -maxDelta || dy > maxDelta {
		return 0, false
	}
	return delta8(nybble(dx)<<4 | nybble(dy)), true
}

func nybble(v int) uint8 {
	if v < 0 {
		return 0x8 | uint8(-v)
	}
	return uint8(v)
}
