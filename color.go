package sketch

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// ErrInvalidHex is returned when a hex colour string is malformed.
var ErrInvalidHex = errors.New("sketch: invalid hex color")

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// RGBA implements color.Color. The result is alpha-premultiplied, 16 bits
// per channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clampUnit(c.A) * 0xffff)
	r = uint32(clampUnit(c.R) * clampUnit(c.A) * 0xffff)
	g = uint32(clampUnit(c.G) * clampUnit(c.A) * 0xffff)
	b = uint32(clampUnit(c.B) * clampUnit(c.A) * 0xffff)
	return r, g, b, a
}

// NRGBA converts the color to 8-bit non-premultiplied channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clampUnit(c.R)*255 + 0.5),
		G: uint8(clampUnit(c.G)*255 + 0.5),
		B: uint8(clampUnit(c.B)*255 + 0.5),
		A: uint8(clampUnit(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	if sc, ok := c.(Color); ok {
		return sc
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB8 creates an opaque color from 8-bit channels.
func RGB8(r, g, b int) Color {
	return RGBA8(r, g, b, 255)
}

// RGBA8 creates a color from 8-bit channels.
func RGBA8(r, g, b, a int) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Number creates an opaque color from a packed 0xRRGGBB value.
func Number(v uint32) Color {
	return RGB8(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff))
}

// NumberWithAlpha creates a color from a packed 0xAARRGGBB value.
func NumberWithAlpha(v uint32) Color {
	return RGBA8(int(v>>16&0xff), int(v>>8&0xff), int(v&0xff), int(v>>24&0xff))
}

// Grey creates an opaque grey with all channels set to shade.
func Grey(shade float64) Color {
	return RGB(shade, shade, shade)
}

// Grey8 creates an opaque grey from an 8-bit shade.
func Grey8(shade int) Color {
	return Grey(float64(shade) / 255)
}

// HSV creates an opaque color from hue, saturation and value.
// h is hue in degrees [0, 360), s and v are in [0, 1].
func HSV(h, s, v float64) Color {
	h /= 360
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(math.Mod(i, 6)) {
	case 0:
		return RGB(v, t, p)
	case 1:
		return RGB(q, v, p)
	case 2:
		return RGB(p, v, t)
	case 3:
		return RGB(p, q, v)
	case 4:
		return RGB(t, p, v)
	case 5:
		return RGB(v, p, q)
	default:
		// Negative hues land here.
		return RGB(0, 0, 0)
	}
}

// RandomRGB returns an opaque color with uniformly random channels.
func RandomRGB(rnd *Random) Color {
	r := rnd.Float(0, 1)
	g := rnd.Float(0, 1)
	b := rnd.Float(0, 1)
	return RGB(r, g, b)
}

// RandomGrey returns an opaque grey with a uniformly random shade.
func RandomGrey(rnd *Random) Color {
	return RandomGreyRange(rnd, 0, 1)
}

// RandomGreyRange returns an opaque grey with a shade drawn from [lo, hi).
func RandomGreyRange(rnd *Random, lo, hi float64) Color {
	return Grey(rnd.Float(lo, hi))
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA". The leading
// '#' is optional and digits are case-insensitive.
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) &&
			parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) &&
			parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		return Color{}, fmt.Errorf("%w %q: length %d", ErrInvalidHex, s, len(hex))
	}
	if !ok {
		return Color{}, fmt.Errorf("%w %q: non-hex digit", ErrInvalidHex, s)
	}

	return RGBA8(int(r), int(g), int(b), int(a)), nil
}

// parseHex accumulates the hex digits of s into val.
// It reports false on the first non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// extraNames holds CSS names missing from the SVG 1.1 table in colornames.
var extraNames = map[string]color.RGBA{
	"rebeccapurple": {R: 102, G: 51, B: 153, A: 255},
}

// LookupName returns the CSS color with the given lower-case name.
// Lookup is case-sensitive.
func LookupName(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		c, ok = extraNames[name]
	}
	if !ok {
		return Color{}, false
	}
	return RGBA8(int(c.R), int(c.G), int(c.B), int(c.A)), true
}

// Named returns the CSS color with the given name, or opaque black when the
// name is unknown.
func Named(name string) Color {
	c, ok := LookupName(name)
	if !ok {
		Logger().Debug("unknown color name, using black", "name", name)
		return Black
	}
	return c
}

// ParseColor parses a hex string starting with '#' or a CSS color name.
// Malformed hex is an error; unknown names yield opaque black.
func ParseColor(spec string) (Color, error) {
	if spec != "" && spec[0] == '#' {
		return ParseHex(spec)
	}
	return Named(spec), nil
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clampUnit restricts a value to the [0, 1] range.
func clampUnit(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
