package pixel

import (
	"image/color"
	"math"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Color is a 32-bit color. The channels are laid out in memory as
// B, G, R, A which is the byte order of a little-endian 0xAARRGGBB word.
//
// Channels are straight (not alpha-premultiplied).
type Color struct {
	B, G, R, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// Unpack decodes a 0xAARRGGBB word.
func Unpack(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v >> 0),
	}
}

// Pack encodes c as a 0xAARRGGBB word.
func (c Color) Pack() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Model converts any color.Color into a Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	return toColor(c)
})

func toColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

func clampChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

func clampUnit(t float64) float64 {
	switch {
	case t < 0 || math.IsNaN(t):
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}

// Scale multiplies every channel of c by f. Results are clamped to [0,255].
func Scale(c Color, f float64) Color {
	return Color{
		B: clampChannel(float64(c.B) * f),
		G: clampChannel(float64(c.G) * f),
		R: clampChannel(float64(c.R) * f),
		A: clampChannel(float64(c.A) * f),
	}
}

// Add sums two colors channel by channel, saturating at 255.
func Add(a, b Color) Color {
	return Color{
		B: addChannel(a.B, b.B),
		G: addChannel(a.G, b.G),
		R: addChannel(a.R, b.R),
		A: addChannel(a.A, b.A),
	}
}

func addChannel(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 0xFF {
		return uint8(s)
	}
	return 0xFF
}

func colorful(c Color) clr.Color {
	return clr.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Blend mixes fg over bg by coverage:
//
//	bg*(1-coverage) + fg*coverage
//
// coverage is clamped to [0,1]. Color channels are interpolated in RGB space;
// alpha is interpolated the same way.
func Blend(bg, fg Color, coverage float64) Color {
	t := clampUnit(coverage)
	r, g, b := colorful(bg).BlendRgb(colorful(fg), t).Clamped().RGB255()
	return Color{
		B: b,
		G: g,
		R: r,
		A: clampChannel(float64(bg.A)*(1-t) + float64(fg.A)*t),
	}
}
