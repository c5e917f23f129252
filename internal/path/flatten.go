// Package path holds the engine's internal figure representation and the
// algorithms that turn figures into polylines and measure them.
package path

import "math"

// Point is a point in float64 precision.
type Point struct {
	X, Y float64
}

// Tolerance is the default flattening tolerance in device pixels.
const Tolerance = 0.1

// maxDepth bounds curve subdivision for degenerate input (NaN, huge values).
const maxDepth = 16

// Contour is a flattened figure.
type Contour struct {
	Points []Point
	Closed bool
	Filled bool
}

// Flatten transforms figs by m and converts every curve into line segments
// no further than tolerance from the curve.
func Flatten(figs []Figure, m Affine, tolerance float64) []Contour {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	out := make([]Contour, 0, len(figs))
	for _, f := range figs {
		current := m.Apply(f.Start)
		pts := []Point{current}
		for _, s := range f.Segments {
			switch s.Kind {
			case Line:
				current = m.Apply(s.P[0])
				pts = append(pts, current)
			case Quad:
				c, e := m.Apply(s.P[0]), m.Apply(s.P[1])
				flattenQuadRec(current, c, e, tolerance, 0, &pts)
				current = e
			case Cubic:
				c1, c2, e := m.Apply(s.P[0]), m.Apply(s.P[1]), m.Apply(s.P[2])
				flattenCubicRec(current, c1, c2, e, tolerance, 0, &pts)
				current = e
			}
		}
		out = append(out, Contour{Points: pts, Closed: f.Closed, Filled: f.Filled})
	}
	return out
}

// Helper methods for Point

func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

func flattenQuadRec(p0, p1, p2 Point, tolerance float64, depth int, points *[]Point) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadRec(p0, q0, q2, tolerance, depth+1, points)
	flattenQuadRec(q2, q1, p2, tolerance, depth+1, points)
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || d < tolerance {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t=0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToLine calculates the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
