package native

import (
	"image"
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/d2d/internal/color"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/math2d"
)

// shader computes the premultiplied color of a brush at a device pixel
// center, brush opacity included.
type shader interface {
	shade(x, y float64) color.ColorF32
}

func premultiplied(c math2d.ColorF) color.ColorF32 {
	return color.ColorF32{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}.Premultiply()
}

func clamp01(v float32) float32 {
	switch {
	case v < 0 || math32.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

type solidShader struct {
	c color.ColorF32
}

func newSolidShader(c math2d.ColorF, opacity float32) shader {
	return solidShader{c: premultiplied(c).Scale(clamp01(opacity))}
}

func (s solidShader) shade(_, _ float64) color.ColorF32 { return s.c }

const rampSize = 256

// ramp is a gradient sampled into a table of premultiplied colors.
type ramp struct {
	lut [rampSize]color.ColorF32
}

func newRamp(stops []GradientStop, gamma Gamma) *ramp {
	g := color.GammaSRGB
	if gamma == Gamma1_0 {
		g = color.GammaLinear
	}
	r := &ramp{}
	last := len(stops) - 1
	k := 0
	for i := range r.lut {
		t := float32(i) / (rampSize - 1)
		for k < last && stops[k+1].Position <= t {
			k++
		}
		var c color.ColorF32
		switch {
		case t <= stops[0].Position:
			c = straight(stops[0].Color)
		case k == last:
			c = straight(stops[last].Color)
		default:
			s0, s1 := stops[k], stops[k+1]
			u := (t - s0.Position) / (s1.Position - s0.Position)
			c = color.Lerp(straight(s0.Color), straight(s1.Color), u, g)
		}
		r.lut[i] = c.Premultiply()
	}
	return r
}

func straight(c math2d.ColorF) color.ColorF32 {
	return color.ColorF32{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// at returns the color at gradient position t after applying extend.
func (r *ramp) at(t float64, extend ExtendMode) color.ColorF32 {
	t = extendCoord(t, 1, extend)
	i := int(t*(rampSize-1) + 0.5)
	return r.lut[min(max(i, 0), rampSize-1)]
}

// extendCoord maps v into [0, size] according to extend.
func extendCoord(v, size float64, extend ExtendMode) float64 {
	switch extend {
	case ExtendModeWrap:
		v = math.Mod(v, size)
		if v < 0 {
			v += size
		}
	case ExtendModeMirror:
		v = math.Mod(math.Abs(v), 2*size)
		if v > size {
			v = 2*size - v
		}
	default:
		v = math.Max(0, math.Min(size, v))
	}
	return v
}

type linearShader struct {
	inv     path.Affine
	p0, d   path.Point
	invLen2 float64
	ramp    *ramp
	extend  ExtendMode
	opacity float32
}

func newLinearShader(toDevice path.Affine, props LinearGradientBrushProperties, stops *gradientStopCollection, opacity float32) shader {
	inv, ok := toDevice.Invert()
	if !ok {
		return nil
	}
	p0, p1 := toPath(props.StartPoint), toPath(props.EndPoint)
	s := &linearShader{inv: inv, p0: p0, d: p1.Sub(p0), ramp: stops.ramp, extend: stops.extend, opacity: clamp01(opacity)}
	if l2 := s.d.Dot(s.d); l2 > 0 {
		s.invLen2 = 1 / l2
	}
	return s
}

func (s *linearShader) shade(x, y float64) color.ColorF32 {
	p := s.inv.Apply(path.Point{X: x, Y: y})
	t := p.Sub(s.p0).Dot(s.d) * s.invLen2
	return s.ramp.at(t, s.extend).Scale(s.opacity)
}

// radialShader evaluates the gradient in a space where the ellipse is the
// unit circle centered at the origin.
type radialShader struct {
	inv     path.Affine
	origin  path.Point
	ramp    *ramp
	extend  ExtendMode
	opacity float32
}

func newRadialShader(toDevice path.Affine, props RadialGradientBrushProperties, stops *gradientStopCollection, opacity float32) shader {
	rx, ry := math.Abs(float64(props.RadiusX)), math.Abs(float64(props.RadiusY))
	if rx == 0 || ry == 0 {
		return nil
	}
	unit := path.Affine{A: rx, C: float64(props.Center.X), E: ry, F: float64(props.Center.Y)}
	inv, ok := unit.Then(toDevice).Invert()
	if !ok {
		return nil
	}
	o := path.Point{X: float64(props.GradientOriginOffset.X) / rx, Y: float64(props.GradientOriginOffset.Y) / ry}
	if l := o.Length(); l > 0.9999 {
		o = o.Mul(0.9999 / l)
	}
	return &radialShader{inv: inv, origin: o, ramp: stops.ramp, extend: stops.extend, opacity: clamp01(opacity)}
}

func (s *radialShader) shade(x, y float64) color.ColorF32 {
	p := s.inv.Apply(path.Point{X: x, Y: y})
	d := p.Sub(s.origin)
	dd := d.Dot(d)
	var t float64
	if dd > 0 {
		// Solve |origin + d/t| = 1 for the circle point on the ray through p.
		od := s.origin.Dot(d)
		c := s.origin.Dot(s.origin) - 1
		k := (-od + math.Sqrt(od*od-dd*c)) / dd
		t = 1 / k
	}
	return s.ramp.at(t, s.extend).Scale(s.opacity)
}

type bitmapShader struct {
	inv        path.Affine
	img        *image.RGBA
	extX, extY ExtendMode
	linear     bool
	opacity    float32
}

func newBitmapShader(toDevice path.Affine, bmp *bitmap, props BitmapBrushProperties, opacity float32) shader {
	inv, ok := toDevice.Invert()
	if !ok {
		return nil
	}
	return &bitmapShader{
		inv:     inv.Then(dpiScale(bmp.dpiX, bmp.dpiY)),
		img:     bmp.img,
		extX:    props.ExtendModeX,
		extY:    props.ExtendModeY,
		linear:  props.InterpolationMode == BitmapInterpolationModeLinear,
		opacity: clamp01(opacity),
	}
}

func (s *bitmapShader) shade(x, y float64) color.ColorF32 {
	p := s.inv.Apply(path.Point{X: x, Y: y})
	if !s.linear {
		return s.texel(int(math.Floor(p.X)), int(math.Floor(p.Y))).Scale(s.opacity)
	}
	fx, fy := p.X-0.5, p.Y-0.5
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := float32(fx-x0), float32(fy-y0)
	ix, iy := int(x0), int(y0)
	c00, c10 := s.texel(ix, iy), s.texel(ix+1, iy)
	c01, c11 := s.texel(ix, iy+1), s.texel(ix+1, iy+1)
	top := mix(c00, c10, tx)
	bottom := mix(c01, c11, tx)
	return mix(top, bottom, ty).Scale(s.opacity)
}

func (s *bitmapShader) texel(x, y int) color.ColorF32 {
	b := s.img.Rect
	x = extendIndex(x, b.Dx(), s.extX)
	y = extendIndex(y, b.Dy(), s.extY)
	i := s.img.PixOffset(b.Min.X+x, b.Min.Y+y)
	p := s.img.Pix[i : i+4 : i+4]
	return color.FromU8(p[0], p[1], p[2], p[3])
}

func extendIndex(i, n int, extend ExtendMode) int {
	switch extend {
	case ExtendModeWrap:
		i %= n
		if i < 0 {
			i += n
		}
	case ExtendModeMirror:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
	default:
		i = min(max(i, 0), n-1)
	}
	return i
}

func mix(a, b color.ColorF32, t float32) color.ColorF32 {
	return color.ColorF32{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
