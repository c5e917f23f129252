// Package blend implements the Porter-Duff compositing operators used when
// drawing images onto a device context.
//
// All operators work on premultiplied colors with float32 components in
// [0,1].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/d2d/internal/color"

// Op is a compositing operator. The values match CompositeMode.
type Op uint8

const (
	SourceOver        Op = iota // S + D*(1-Sa)
	DestinationOver             // S*(1-Da) + D
	SourceIn                    // S*Da
	DestinationIn               // D*Sa
	SourceOut                   // S*(1-Da)
	DestinationOut              // D*(1-Sa)
	SourceAtop                  // S*Da + D*(1-Sa)
	DestinationAtop             // S*(1-Da) + D*Sa
	Xor                         // S*(1-Da) + D*(1-Sa)
	Plus                        // S + D
	SourceCopy                  // S
	BoundedSourceCopy           // S inside the source bounds
	MaskInvert                  // D inverted by Sa
)

// Func combines a premultiplied source with a premultiplied destination.
type Func func(src, dst color.ColorF32) color.ColorF32

// FuncFor returns the function for op. Unknown operators composite
// source over.
func FuncFor(op Op) Func {
	switch op {
	case DestinationOver:
		return destinationOver
	case SourceIn:
		return sourceIn
	case DestinationIn:
		return destinationIn
	case SourceOut:
		return sourceOut
	case DestinationOut:
		return destinationOut
	case SourceAtop:
		return sourceAtop
	case DestinationAtop:
		return destinationAtop
	case Xor:
		return xor
	case Plus:
		return plus
	case SourceCopy, BoundedSourceCopy:
		return sourceCopy
	case MaskInvert:
		return maskInvert
	default:
		return color.Over
	}
}

// Apply blends src onto dst with op and then keeps only cov of the result,
// so pixels outside the source's coverage are left untouched.
func Apply(f Func, src, dst color.ColorF32, cov float32) color.ColorF32 {
	out := f(src, dst)
	if cov >= 1 {
		return out
	}
	return lerp(dst, out, cov)
}

func lerp(a, b color.ColorF32, t float32) color.ColorF32 {
	return color.ColorF32{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
