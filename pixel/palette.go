package pixel

var (
	Black   = RGB(0x00, 0x00, 0x00)
	Red     = RGB(0xFF, 0x00, 0x00)
	Green   = RGB(0x00, 0xFF, 0x00)
	Blue    = RGB(0x00, 0x00, 0xFF)
	Yellow  = RGB(0xFF, 0xFF, 0x00)
	Magenta = RGB(0xFF, 0x00, 0xFF)
	Cyan    = RGB(0x00, 0xFF, 0xFF)
	White   = RGB(0xFF, 0xFF, 0xFF)
)

// Palette groups the named colors.
var Palette = struct {
	Black, Red, Green, Blue, Yellow, Magenta, Cyan, White Color
}{
	Black:   Black,
	Red:     Red,
	Green:   Green,
	Blue:    Blue,
	Yellow:  Yellow,
	Magenta: Magenta,
	Cyan:    Cyan,
	White:   White,
}

// Named returns the palette entry for name, e.g. "red".
func Named(name string) (Color, bool) {
	c, ok := named[name]
	return c, ok
}

var named = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
}
