package math2d

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/chewxy/math32"
)

// ColorF is a straight-alpha color with float32 components in [0, 1].
// Components are sRGB encoded.
type ColorF struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) ColorF {
	return ColorF{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a float32) ColorF {
	return ColorF{R: r, G: g, B: b, A: a}
}

// ColorFromRGB returns an opaque color from a packed 0xRRGGBB value.
func ColorFromRGB(rgb uint32) ColorF {
	return ColorF{
		R: float32((rgb>>16)&0xff) / 255,
		G: float32((rgb>>8)&0xff) / 255,
		B: float32(rgb&0xff) / 255,
		A: 1,
	}
}

// ColorFromHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional.
func ColorFromHex(hex string) (ColorF, error) {
	s := strings.TrimPrefix(hex, "#")
	var v [4]uint8
	v[3] = 255
	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return ColorF{}, fmt.Errorf("math2d: invalid hex color %q", hex)
			}
			v[i] = d<<4 | d
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return ColorF{}, fmt.Errorf("math2d: invalid hex color %q", hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return ColorF{}, fmt.Errorf("math2d: invalid hex color %q", hex)
	}
	return ColorF{
		R: float32(v[0]) / 255,
		G: float32(v[1]) / 255,
		B: float32(v[2]) / 255,
		A: float32(v[3]) / 255,
	}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// FromColor converts any image/color value to a ColorF.
func FromColor(c color.Color) ColorF {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorF{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// Color converts c to a straight-alpha 8-bit color.
func (c ColorF) Color() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// RGBA implements color.Color.
func (c ColorF) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// WithAlpha returns c with its alpha replaced.
func (c ColorF) WithAlpha(a float32) ColorF {
	c.A = a
	return c
}

// ApproxEqual reports whether every component of c and d differs by less
// than eps.
func (c ColorF) ApproxEqual(d ColorF, eps float32) bool {
	return math32.Abs(c.R-d.R) < eps &&
		math32.Abs(c.G-d.G) < eps &&
		math32.Abs(c.B-d.B) < eps &&
		math32.Abs(c.A-d.A) < eps
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

// Named colors.
var (
	Transparent    = ColorF{}
	Black          = RGB(0, 0, 0)
	White          = RGB(1, 1, 1)
	Red            = RGB(1, 0, 0)
	Green          = RGB(0, 0.5, 0)
	Lime           = RGB(0, 1, 0)
	Blue           = RGB(0, 0, 1)
	Yellow         = RGB(1, 1, 0)
	Cyan           = RGB(0, 1, 1)
	Magenta        = RGB(1, 0, 1)
	Gray           = RGB(0.5, 0.5, 0.5)
	Orange         = ColorFromRGB(0xFFA500)
	CornflowerBlue = ColorFromRGB(0x6495ED)
)
