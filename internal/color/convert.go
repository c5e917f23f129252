package color

import "github.com/chewxy/math32"

// SRGBToLinear converts an sRGB component in [0,1] to linear light.
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math32.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component in [0,1] to sRGB.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinearColor converts the color channels of c to linear light.
// Alpha is never gamma-encoded and is copied unchanged.
func SRGBToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B), A: c.A}
}

// LinearToSRGBColor converts the color channels of c to sRGB.
func LinearToSRGBColor(c ColorF32) ColorF32 {
	return ColorF32{R: LinearToSRGB(c.R), G: LinearToSRGB(c.G), B: LinearToSRGB(c.B), A: c.A}
}

// FromU8 converts 8-bit channels to ColorF32.
func FromU8(r, g, b, a uint8) ColorF32 {
	return ColorF32{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// ToU8 converts c to 8-bit channels with rounding.
func (c ColorF32) ToU8() (r, g, b, a uint8) {
	return ClampU8(c.R), ClampU8(c.G), ClampU8(c.B), ClampU8(c.A)
}

// ClampU8 clamps v to [0,1] and converts it to uint8 with rounding.
func ClampU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
