package path

import (
	"math"
	"sort"
)

// Bounds returns the bounding box of every point in cs.
// ok is false when cs holds no points.
func Bounds(cs []Contour) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range cs {
		for _, p := range c.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}

// SignedArea returns the shoelace area of the closed polygon pts.
// Clockwise polygons (in Y-down coordinates) have positive area.
func SignedArea(pts []Point) float64 {
	var a float64
	n := len(pts)
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Winding returns the winding number of the filled contours of cs around pt.
// Every filled contour is treated as closed.
func Winding(cs []Contour, pt Point) int {
	var w int
	for _, c := range cs {
		if !c.Filled || len(c.Points) < 2 {
			continue
		}
		n := len(c.Points)
		for i := 0; i < n; i++ {
			w += lineWinding(c.Points[i], c.Points[(i+1)%n], pt)
		}
	}
	return w
}

// Contains reports whether pt is inside the filled region of cs.
func Contains(cs []Contour, pt Point, evenOdd bool) bool {
	w := Winding(cs, pt)
	if evenOdd {
		return w&1 != 0
	}
	return w != 0
}

func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

type edge struct {
	p0, p1 Point
	dir    int
}

// filledEdges returns the non-horizontal edges of the filled contours,
// oriented downwards.
func filledEdges(cs []Contour) []edge {
	var edges []edge
	for _, c := range cs {
		if !c.Filled || len(c.Points) < 3 {
			continue
		}
		n := len(c.Points)
		for i := 0; i < n; i++ {
			p0, p1 := c.Points[i], c.Points[(i+1)%n]
			switch {
			case p0.Y < p1.Y:
				edges = append(edges, edge{p0, p1, 1})
			case p0.Y > p1.Y:
				edges = append(edges, edge{p1, p0, -1})
			}
		}
	}
	return edges
}

// Area returns the area of the region filled by cs under the given fill
// rule. Self-intersections and overlapping contours are handled exactly:
// the plane is cut into horizontal slabs at every vertex and every edge
// crossing, and inside each slab the filled region is a set of trapezoids.
func Area(cs []Contour, evenOdd bool) float64 {
	edges := filledEdges(cs)
	if len(edges) == 0 {
		return 0
	}

	ys := make([]float64, 0, 2*len(edges))
	for _, e := range edges {
		ys = append(ys, e.p0.Y, e.p1.Y)
	}
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if y, ok := crossingY(edges[i], edges[j]); ok {
				ys = append(ys, y)
			}
		}
	}
	sort.Float64s(ys)

	type crossing struct {
		x   float64
		dir int
	}
	var xs []crossing
	var area float64
	for i := 0; i+1 < len(ys); i++ {
		y0, y1 := ys[i], ys[i+1]
		h := y1 - y0
		if h <= 1e-12 {
			continue
		}
		ym := (y0 + y1) / 2
		xs = xs[:0]
		for _, e := range edges {
			if e.p0.Y <= ym && ym < e.p1.Y {
				t := (ym - e.p0.Y) / (e.p1.Y - e.p0.Y)
				xs = append(xs, crossing{e.p0.X + t*(e.p1.X-e.p0.X), e.dir})
			}
		}
		sort.Slice(xs, func(a, b int) bool { return xs[a].x < xs[b].x })

		w := 0
		for k := 0; k+1 < len(xs); k++ {
			w += xs[k].dir
			inside := w != 0
			if evenOdd {
				inside = w&1 != 0
			}
			if inside {
				area += (xs[k+1].x - xs[k].x) * h
			}
		}
	}
	return area
}

// crossingY returns the y coordinate where a and b cross strictly inside
// both of them.
func crossingY(a, b edge) (float64, bool) {
	d1 := a.p1.Sub(a.p0)
	d2 := b.p1.Sub(b.p0)
	den := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(den) < 1e-15 {
		return 0, false
	}
	w := b.p0.Sub(a.p0)
	t := (w.X*d2.Y - w.Y*d2.X) / den
	u := (w.X*d1.Y - w.Y*d1.X) / den
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return 0, false
	}
	return a.p0.Y + t*d1.Y, true
}

// segments calls fn for every line segment of cs in order, including the
// closing segment of closed contours.
func segments(cs []Contour, fn func(p0, p1 Point) bool) {
	for _, c := range cs {
		n := len(c.Points)
		for i := 0; i+1 < n; i++ {
			if !fn(c.Points[i], c.Points[i+1]) {
				return
			}
		}
		if c.Closed && n > 1 && c.Points[n-1] != c.Points[0] {
			if !fn(c.Points[n-1], c.Points[0]) {
				return
			}
		}
	}
}

// Length returns the total length of cs.
func Length(cs []Contour) float64 {
	var l float64
	segments(cs, func(p0, p1 Point) bool {
		l += p0.Distance(p1)
		return true
	})
	return l
}

// PointAtLength returns the point at distance d along cs and the unit
// tangent there. d is clamped to [0, Length(cs)]. ok is false when cs has
// no points.
func PointAtLength(cs []Contour, d float64) (pt, tangent Point, ok bool) {
	if len(cs) == 0 || len(cs[0].Points) == 0 {
		return Point{}, Point{}, false
	}
	if d < 0 {
		d = 0
	}
	pt = cs[0].Points[0]
	segments(cs, func(p0, p1 Point) bool {
		l := p0.Distance(p1)
		if l == 0 {
			return true
		}
		tangent = p1.Sub(p0).Mul(1 / l)
		if d <= l {
			pt = p0.Lerp(p1, d/l)
			return false
		}
		d -= l
		pt = p1
		return true
	})
	return pt, tangent, true
}

// Distance returns the distance from pt to the nearest segment of cs, or
// +Inf when cs has no segments.
func Distance(cs []Contour, pt Point) float64 {
	d := math.Inf(1)
	segments(cs, func(p0, p1 Point) bool {
		d = math.Min(d, distanceToLine(pt, p0, p1))
		return true
	})
	return d
}
