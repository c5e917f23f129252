package blend

import "github.com/gogpu/d2d/internal/color"

// weighted returns s*fs + d*fd.
func weighted(s color.ColorF32, fs float32, d color.ColorF32, fd float32) color.ColorF32 {
	return color.ColorF32{
		R: s.R*fs + d.R*fd,
		G: s.G*fs + d.G*fd,
		B: s.B*fs + d.B*fd,
		A: s.A*fs + d.A*fd,
	}
}

func destinationOver(s, d color.ColorF32) color.ColorF32 { return weighted(s, 1-d.A, d, 1) }
func sourceIn(s, d color.ColorF32) color.ColorF32        { return s.Scale(d.A) }
func destinationIn(s, d color.ColorF32) color.ColorF32   { return d.Scale(s.A) }
func sourceOut(s, d color.ColorF32) color.ColorF32       { return s.Scale(1 - d.A) }
func destinationOut(s, d color.ColorF32) color.ColorF32  { return d.Scale(1 - s.A) }
func sourceAtop(s, d color.ColorF32) color.ColorF32      { return weighted(s, d.A, d, 1-s.A) }
func destinationAtop(s, d color.ColorF32) color.ColorF32 { return weighted(s, 1-d.A, d, s.A) }
func xor(s, d color.ColorF32) color.ColorF32             { return weighted(s, 1-d.A, d, 1-s.A) }
func sourceCopy(s, _ color.ColorF32) color.ColorF32      { return s }

// plus adds source and destination, clamped to 1.
func plus(s, d color.ColorF32) color.ColorF32 {
	return color.ColorF32{
		R: min(s.R+d.R, 1),
		G: min(s.G+d.G, 1),
		B: min(s.B+d.B, 1),
		A: min(s.A+d.A, 1),
	}
}

// maskInvert inverts the destination color in proportion to the source
// alpha. Destination alpha is kept.
func maskInvert(s, d color.ColorF32) color.ColorF32 {
	inv := 1 - s.A
	return color.ColorF32{
		R: (d.A-d.R)*s.A + d.R*inv,
		G: (d.A-d.G)*s.A + d.G*inv,
		B: (d.A-d.B)*s.A + d.B*inv,
		A: d.A,
	}
}
