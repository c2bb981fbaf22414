package shapes

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	icolor "github.com/gogpu/shapes/internal/color"
	"golang.org/x/image/math/f32"
)

// Color is an sRGB color with straight (non-premultiplied) alpha.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from sRGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from sRGB components and alpha.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("shapes: invalid hex color")

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Malformed strings yield opaque black.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex is Hex that reports malformed strings instead of returning black.
func ParseHex(hex string) (Color, error) {
	digits := hex
	if digits != "" && digits[0] == '#' {
		digits = digits[1:]
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, fmt.Errorf("%q: %w", hex, ErrInvalidHex)
		}
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(digits) {
	case 3:
		r, g, b = parseHex(digits[0:1])*17, parseHex(digits[1:2])*17, parseHex(digits[2:3])*17
	case 4:
		r, g, b = parseHex(digits[0:1])*17, parseHex(digits[1:2])*17, parseHex(digits[2:3])*17
		a = parseHex(digits[3:4]) * 17
	case 6:
		r, g, b = parseHex(digits[0:2]), parseHex(digits[2:4]), parseHex(digits[4:6])
	case 8:
		r, g, b, a = parseHex(digits[0:2]), parseHex(digits[2:4]), parseHex(digits[4:6]), parseHex(digits[6:8])
	default:
		return Color{}, fmt.Errorf("%q: want 3, 4, 6 or 8 digits: %w", hex, ErrInvalidHex)
	}

	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func parseHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		}
	}
	return v
}

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float32) Color {
	hh := math.Mod(float64(h), 360)
	if hh < 0 {
		hh += 360
	}
	hh /= 360

	c := (1 - math.Abs(2*float64(l)-1)) * float64(s)
	x := c * (1 - math.Abs(math.Mod(hh*6, 2)-1))
	m := float64(l) - c/2

	var r, g, b float64
	switch {
	case hh < 1.0/6:
		r, g, b = c, x, 0
	case hh < 2.0/6:
		r, g, b = x, c, 0
	case hh < 3.0/6:
		r, g, b = 0, c, x
	case hh < 4.0/6:
		r, g, b = 0, x, c
	case hh < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB(float32(r+m), float32(g+m), float32(b+m))
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp performs linear interpolation in sRGB space.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Linear returns the color as linear RGBA, the form records carry.
func (c Color) Linear() f32.Vec4 {
	l := icolor.ToLinear(c.R, c.G, c.B, c.A)
	return f32.Vec4{l.R, l.G, l.B, l.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}.RGBA()
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Gray        = RGB(0.5, 0.5, 0.5)
	Transparent = RGBA(0, 0, 0, 0)
)
