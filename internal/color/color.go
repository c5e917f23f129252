// Package color provides the float32 color arithmetic used by the software
// engine: sRGB transfer functions, premultiplication and interpolation.
package color

// Gamma selects the space gradient stops are interpolated in.
type Gamma uint8

const (
	// GammaSRGB interpolates the sRGB-encoded components directly.
	GammaSRGB Gamma = iota
	// GammaLinear converts to linear light, interpolates, and converts back.
	GammaLinear
)

// ColorF32 is a color with float32 components in [0,1].
// Whether it is premultiplied depends on context.
type ColorF32 struct {
	R, G, B, A float32
}

// Premultiply multiplies the color channels by alpha.
func (c ColorF32) Premultiply() ColorF32 {
	return ColorF32{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Scale multiplies every channel, alpha included, by s.
// Applied to a premultiplied color this scales its opacity.
func (c ColorF32) Scale(s float32) ColorF32 {
	return ColorF32{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Over composites premultiplied src over premultiplied dst.
func Over(src, dst ColorF32) ColorF32 {
	inv := 1 - src.A
	return ColorF32{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: src.A + dst.A*inv,
	}
}

// Lerp interpolates straight-alpha colors a and b in the given space.
func Lerp(a, b ColorF32, t float32, g Gamma) ColorF32 {
	if g == GammaLinear {
		a = SRGBToLinearColor(a)
		b = SRGBToLinearColor(b)
	}
	c := ColorF32{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
	if g == GammaLinear {
		c = LinearToSRGBColor(c)
	}
	return c
}
