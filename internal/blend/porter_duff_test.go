package blend

import (
	"math"
	"testing"

	"github.com/gogpu/d2d/internal/color"
)

func near(a, b color.ColorF32) bool {
	const eps = 1e-6
	return math.Abs(float64(a.R-b.R)) < eps && math.Abs(float64(a.G-b.G)) < eps &&
		math.Abs(float64(a.B-b.B)) < eps && math.Abs(float64(a.A-b.A)) < eps
}

func TestOperators(t *testing.T) {
	red := color.ColorF32{R: 1, A: 1}
	halfBlue := color.ColorF32{B: 0.5, A: 0.5}
	clear := color.ColorF32{}

	tests := []struct {
		name     string
		op       Op
		src, dst color.ColorF32
		want     color.ColorF32
	}{
		{"source over opaque", SourceOver, red, halfBlue, red},
		{"source over translucent", SourceOver, halfBlue, red, color.ColorF32{R: 0.5, B: 0.5, A: 1}},
		{"destination over", DestinationOver, red, halfBlue, color.ColorF32{R: 0.5, B: 0.5, A: 1}},
		{"source in", SourceIn, red, halfBlue, color.ColorF32{R: 0.5, A: 0.5}},
		{"source in transparent", SourceIn, red, clear, clear},
		{"destination in", DestinationIn, halfBlue, red, color.ColorF32{R: 0.5, A: 0.5}},
		{"source out", SourceOut, red, halfBlue, color.ColorF32{R: 0.5, A: 0.5}},
		{"destination out", DestinationOut, red, halfBlue, clear},
		{"source atop", SourceAtop, red, halfBlue, color.ColorF32{R: 0.5, A: 0.5}},
		{"destination atop", DestinationAtop, halfBlue, red, color.ColorF32{R: 0.5, A: 0.5}},
		{"xor", Xor, red, halfBlue, color.ColorF32{R: 0.5, A: 0.5}},
		{"xor opaque", Xor, red, red, clear},
		{"plus", Plus, red, red, red},
		{"source copy", SourceCopy, halfBlue, red, halfBlue},
		{"bounded source copy", BoundedSourceCopy, halfBlue, red, halfBlue},
		{"mask invert", MaskInvert, color.ColorF32{A: 1}, red, color.ColorF32{G: 1, B: 1, A: 1}},
		{"mask invert transparent source", MaskInvert, clear, red, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuncFor(tt.op)(tt.src, tt.dst); !near(got, tt.want) {
				t.Errorf("%v = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestApplyCoverage(t *testing.T) {
	red := color.ColorF32{R: 1, A: 1}
	blue := color.ColorF32{B: 1, A: 1}
	f := FuncFor(SourceCopy)

	if got := Apply(f, red, blue, 1); got != red {
		t.Errorf("full coverage = %+v, want %+v", got, red)
	}
	if got := Apply(f, red, blue, 0); got != blue {
		t.Errorf("zero coverage = %+v, want %+v", got, blue)
	}
	want := color.ColorF32{R: 0.25, B: 0.75, A: 1}
	if got := Apply(f, red, blue, 0.25); !near(got, want) {
		t.Errorf("quarter coverage = %+v, want %+v", got, want)
	}
}

func TestUnknownOpIsSourceOver(t *testing.T) {
	src := color.ColorF32{G: 0.5, A: 0.5}
	dst := color.ColorF32{R: 1, A: 1}
	if got, want := FuncFor(Op(200))(src, dst), color.Over(src, dst); got != want {
		t.Errorf("FuncFor(200) = %+v, want %+v", got, want)
	}
}
