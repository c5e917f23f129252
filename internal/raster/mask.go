package raster

import (
	"image"
	"math"
)

// Mask is a coverage map over a pixel rectangle. Pixels outside Rect have
// zero coverage.
type Mask struct {
	Rect image.Rectangle
	Cov  []float32
}

// NewMask returns an all-zero mask covering r.
func NewMask(r image.Rectangle) *Mask {
	if r.Empty() {
		return &Mask{}
	}
	return &Mask{Rect: r, Cov: make([]float32, r.Dx()*r.Dy())}
}

// FullMask returns a mask with full coverage over r.
func FullMask(r image.Rectangle) *Mask {
	m := NewMask(r)
	for i := range m.Cov {
		m.Cov[i] = 1
	}
	return m
}

// RectMask returns the coverage of the axis-aligned rectangle
// [x0,x1)×[y0,y1) restricted to clip. With aa set, partially covered edge
// pixels get fractional coverage; otherwise a pixel is covered when its
// center is inside.
func RectMask(x0, y0, x1, y1 float64, aa bool, clip image.Rectangle) *Mask {
	if !aa {
		x0, x1 = math.Ceil(x0-0.5), math.Ceil(x1-0.5)
		y0, y1 = math.Ceil(y0-0.5), math.Ceil(y1-0.5)
	}
	r := image.Rect(floorInt(x0), floorInt(y0), ceilInt(x1), ceilInt(y1)).Intersect(clip)
	m := NewMask(r)
	if r.Empty() {
		return m
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		cy := overlap(float64(y), float64(y+1), y0, y1)
		if cy <= 0 {
			continue
		}
		base := (y - r.Min.Y) * r.Dx()
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Cov[base+x-r.Min.X] = float32(cy * overlap(float64(x), float64(x+1), x0, x1))
		}
	}
	return m
}

func overlap(a0, a1, b0, b1 float64) float64 {
	return math.Max(0, math.Min(a1, b1)-math.Max(a0, b0))
}

// Empty reports whether the mask covers no pixels.
func (m *Mask) Empty() bool {
	return m == nil || m.Rect.Empty()
}

// At returns the coverage at (x, y).
func (m *Mask) At(x, y int) float32 {
	if m == nil || !image.Pt(x, y).In(m.Rect) {
		return 0
	}
	return m.Cov[(y-m.Rect.Min.Y)*m.Rect.Dx()+x-m.Rect.Min.X]
}

// Intersect returns the product of m and o over the overlap of their
// rectangles.
func (m *Mask) Intersect(o *Mask) *Mask {
	if m.Empty() || o.Empty() {
		return &Mask{}
	}
	r := m.Rect.Intersect(o.Rect)
	out := NewMask(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out.Cov[(y-r.Min.Y)*r.Dx()+x-r.Min.X] = m.At(x, y) * o.At(x, y)
		}
	}
	return out
}

// Scale multiplies every coverage value by s.
func (m *Mask) Scale(s float32) {
	for i := range m.Cov {
		m.Cov[i] *= s
	}
}

// addSpan adds w times the horizontal coverage of [xa, xb) on row y.
func (m *Mask) addSpan(y int, xa, xb float64, w float32) {
	xa = math.Max(xa, float64(m.Rect.Min.X))
	xb = math.Min(xb, float64(m.Rect.Max.X))
	if xb <= xa {
		return
	}
	base := (y-m.Rect.Min.Y)*m.Rect.Dx() - m.Rect.Min.X
	ia, ib := floorInt(xa), floorInt(xb)
	if ia == ib {
		m.Cov[base+ia] += float32(xb-xa) * w
		return
	}
	m.Cov[base+ia] += float32(float64(ia+1)-xa) * w
	for x := ia + 1; x < ib; x++ {
		m.Cov[base+x] += w
	}
	if ib < m.Rect.Max.X {
		m.Cov[base+ib] += float32(xb-float64(ib)) * w
	}
}

// setSpan marks the pixels of row y whose centers lie in [xa, xb).
func (m *Mask) setSpan(y int, xa, xb float64) {
	ia := max(ceilInt(xa-0.5), m.Rect.Min.X)
	ib := min(ceilInt(xb-0.5), m.Rect.Max.X)
	base := (y-m.Rect.Min.Y)*m.Rect.Dx() - m.Rect.Min.X
	for x := ia; x < ib; x++ {
		m.Cov[base+x] = 1
	}
}

// coordLimit keeps pixel coordinates of huge or infinite shapes
// representable as int.
const coordLimit = 1 << 30

func floorInt(v float64) int { return int(math.Max(-coordLimit, math.Min(coordLimit, math.Floor(v)))) }
func ceilInt(v float64) int  { return int(math.Max(-coordLimit, math.Min(coordLimit, math.Ceil(v)))) }
