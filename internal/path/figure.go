package path

import "math"

// SegmentKind identifies the curve type of a Segment.
type SegmentKind uint8

const (
	Line SegmentKind = iota
	Quad
	Cubic
)

// Segment is one piece of a figure. The start point is the end point of the
// previous segment (or the figure start). P holds the remaining points:
//
//	Line:  P[0] end
//	Quad:  P[0] control, P[1] end
//	Cubic: P[0], P[1] controls, P[2] end
type Segment struct {
	Kind SegmentKind
	P    [3]Point
}

// LineSeg returns a line segment ending at p.
func LineSeg(p Point) Segment { return Segment{Kind: Line, P: [3]Point{p}} }

// QuadSeg returns a quadratic segment.
func QuadSeg(c, p Point) Segment { return Segment{Kind: Quad, P: [3]Point{c, p}} }

// CubicSeg returns a cubic segment.
func CubicSeg(c1, c2, p Point) Segment { return Segment{Kind: Cubic, P: [3]Point{c1, c2, p}} }

// End returns the end point of s.
func (s Segment) End() Point {
	switch s.Kind {
	case Quad:
		return s.P[1]
	case Cubic:
		return s.P[2]
	}
	return s.P[0]
}

// Figure is a connected sequence of segments.
// Filled figures take part in fills; hollow ones are only stroked.
type Figure struct {
	Start    Point
	Segments []Segment
	Closed   bool
	Filled   bool
}

// End returns the last point of the figure.
func (f Figure) End() Point {
	if len(f.Segments) == 0 {
		return f.Start
	}
	return f.Segments[len(f.Segments)-1].End()
}

// Transform returns a copy of f with every point mapped by m.
func (f Figure) Transform(m Affine) Figure {
	out := Figure{Start: m.Apply(f.Start), Closed: f.Closed, Filled: f.Filled}
	out.Segments = make([]Segment, len(f.Segments))
	for i, s := range f.Segments {
		out.Segments[i] = Segment{Kind: s.Kind, P: [3]Point{m.Apply(s.P[0]), m.Apply(s.P[1]), m.Apply(s.P[2])}}
	}
	return out
}

// TransformAll transforms every figure in figs.
func TransformAll(figs []Figure, m Affine) []Figure {
	if m.IsIdentity() {
		return figs
	}
	out := make([]Figure, len(figs))
	for i, f := range figs {
		out[i] = f.Transform(m)
	}
	return out
}

// kappa is the cubic control-point distance for a quarter circle.
const kappa = 0.5522847498307936

// RectFigure returns a closed clockwise rectangle.
func RectFigure(l, t, r, b float64) Figure {
	return Figure{
		Start: Point{l, t},
		Segments: []Segment{
			LineSeg(Point{r, t}),
			LineSeg(Point{r, b}),
			LineSeg(Point{l, b}),
		},
		Closed: true,
		Filled: true,
	}
}

// EllipseFigure returns a closed clockwise ellipse built from four cubics.
func EllipseFigure(cx, cy, rx, ry float64) Figure {
	kx, ky := rx*kappa, ry*kappa
	return Figure{
		Start: Point{cx + rx, cy},
		Segments: []Segment{
			CubicSeg(Point{cx + rx, cy + ky}, Point{cx + kx, cy + ry}, Point{cx, cy + ry}),
			CubicSeg(Point{cx - kx, cy + ry}, Point{cx - rx, cy + ky}, Point{cx - rx, cy}),
			CubicSeg(Point{cx - rx, cy - ky}, Point{cx - kx, cy - ry}, Point{cx, cy - ry}),
			CubicSeg(Point{cx + kx, cy - ry}, Point{cx + rx, cy - ky}, Point{cx + rx, cy}),
		},
		Closed: true,
		Filled: true,
	}
}

// RoundedRectFigure returns a closed clockwise rectangle with elliptical
// corners. Radii are clamped to half the rectangle's size.
func RoundedRectFigure(l, t, r, b, rx, ry float64) Figure {
	w, h := math.Abs(r-l), math.Abs(b-t)
	rx = math.Min(math.Abs(rx), w/2)
	ry = math.Min(math.Abs(ry), h/2)
	if rx == 0 || ry == 0 {
		return RectFigure(l, t, r, b)
	}
	kx, ky := rx*kappa, ry*kappa
	return Figure{
		Start: Point{l + rx, t},
		Segments: []Segment{
			LineSeg(Point{r - rx, t}),
			CubicSeg(Point{r - rx + kx, t}, Point{r, t + ry - ky}, Point{r, t + ry}),
			LineSeg(Point{r, b - ry}),
			CubicSeg(Point{r, b - ry + ky}, Point{r - rx + kx, b}, Point{r - rx, b}),
			LineSeg(Point{l + rx, b}),
			CubicSeg(Point{l + rx - kx, b}, Point{l, b - ry + ky}, Point{l, b - ry}),
			LineSeg(Point{l, t + ry}),
			CubicSeg(Point{l, t + ry - ky}, Point{l + rx - kx, t}, Point{l + rx, t}),
		},
		Closed: true,
		Filled: true,
	}
}

// QuadToCubic elevates a quadratic segment starting at p0 to a cubic.
func QuadToCubic(p0 Point, s Segment) Segment {
	c, e := s.P[0], s.P[1]
	return CubicSeg(p0.Add(c.Sub(p0).Mul(2.0/3)), e.Add(c.Sub(e).Mul(2.0/3)), e)
}

// ArcToCubics converts an elliptical arc from p0 to p1 into cubic segments.
// rotation is in degrees. sweep selects the clockwise direction (in a Y-down
// coordinate system) and large selects the arc spanning more than 180 degrees.
// Degenerate radii produce a straight line; coincident end points produce
// nothing.
func ArcToCubics(p0, p1 Point, rx, ry, rotation float64, sweep, large bool) []Segment {
	if p0 == p1 {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx < 1e-12 || ry < 1e-12 {
		return []Segment{LineSeg(p1)}
	}

	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx2 := (p0.X - p1.X) / 2
	dy2 := (p0.Y - p1.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Scale radii up when the end points cannot be joined.
	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den > 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	dtheta := theta2 - theta1
	if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	} else if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dtheta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	delta := dtheta / float64(n)
	k := 4.0 / 3 * math.Tan(delta/4)

	mapPt := func(x, y float64) Point {
		x *= rx
		y *= ry
		return Point{X: cosPhi*x - sinPhi*y + cx, Y: sinPhi*x + cosPhi*y + cy}
	}

	segs := make([]Segment, 0, n)
	a := theta1
	for i := 0; i < n; i++ {
		sinA, cosA := math.Sincos(a)
		sinB, cosB := math.Sincos(a + delta)
		c1 := mapPt(cosA-k*sinA, sinA+k*cosA)
		c2 := mapPt(cosB+k*sinB, sinB-k*cosB)
		e := mapPt(cosB, sinB)
		if i == n-1 {
			e = p1
		}
		segs = append(segs, CubicSeg(c1, c2, e))
		a += delta
	}
	return segs
}
