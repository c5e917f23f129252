package stroke

import "math"

// Cap specifies the shape at the end of an open polyline or a dash.
type Cap int

const (
	// CapFlat ends the stroke exactly at the end point.
	CapFlat Cap = iota
	// CapSquare extends the stroke by half its width.
	CapSquare
	// CapRound adds a half disc.
	CapRound
	// CapTriangle adds a triangle whose height is half the stroke width.
	CapTriangle
)

// Join specifies how segments of a polyline are connected.
type Join int

const (
	// JoinMiter extends the outer edges until they meet. A miter longer
	// than the limit is cut off at the limit.
	JoinMiter Join = iota
	// JoinBevel connects the outer corners with a straight line.
	JoinBevel
	// JoinRound connects the outer corners with an arc.
	JoinRound
	// JoinMiterOrBevel uses a miter, or a bevel when the miter limit is exceeded.
	JoinMiterOrBevel
)

// DefaultMiterLimit is the miter limit used when none is given.
const DefaultMiterLimit = 10.0

// Polyline is a sequence of points to be stroked.
type Polyline struct {
	Points   []Point
	Closed   bool
	StartCap Cap
	EndCap   Cap
	// Dir orients the caps when every point coincides.
	Dir Vec2
}

// Style describes the geometry of a stroke.
type Style struct {
	Width      float64
	Join       Join
	MiterLimit float64
	// Tolerance bounds the error of round joins and caps.
	Tolerance float64
}

// Expand returns the polygons covered by stroking lines with s. The union of
// the polygons under the non-zero rule is the stroke.
func Expand(lines []Polyline, s Style) [][]Point {
	hw := s.Width / 2
	if !(hw > 0) {
		return nil
	}
	e := expander{hw: hw, style: s}
	if e.style.MiterLimit < 1 {
		e.style.MiterLimit = DefaultMiterLimit
	}
	if e.style.Tolerance <= 0 {
		e.style.Tolerance = 0.1
	}
	for _, l := range lines {
		e.polyline(l)
	}
	return e.out
}

type expander struct {
	hw    float64
	style Style
	out   [][]Point
}

func (e *expander) emit(poly []Point) {
	if len(poly) < 3 {
		return
	}
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	e.out = append(e.out, poly)
}

func (e *expander) polyline(l Polyline) {
	pts := dedupe(l.Points)
	if l.Closed && len(pts) > 1 && pts[0].Distance(pts[len(pts)-1]) < 1e-9 {
		pts = pts[:len(pts)-1]
	}
	switch len(pts) {
	case 0:
		return
	case 1:
		if l.Closed {
			return
		}
		d := l.Dir.Normalize()
		if d == (Vec2{}) {
			d = Vec2{X: 1}
		}
		e.cap(pts[0], d.Neg(), l.StartCap)
		e.cap(pts[0], d, l.EndCap)
		return
	}

	n := len(pts)
	segs := n - 1
	if l.Closed {
		segs = n
	}
	dirs := make([]Vec2, segs)
	for i := 0; i < segs; i++ {
		p0, p1 := pts[i], pts[(i+1)%n]
		dirs[i] = p1.Sub(p0).Normalize()
		nrm := dirs[i].Perp().Scale(e.hw)
		e.emit([]Point{p0.Add(nrm), p1.Add(nrm), p1.Add(nrm.Neg()), p0.Add(nrm.Neg())})
	}

	if l.Closed {
		for i := 0; i < n; i++ {
			e.join(pts[i], dirs[(i+segs-1)%segs], dirs[i])
		}
		return
	}
	for i := 1; i < n-1; i++ {
		e.join(pts[i], dirs[i-1], dirs[i])
	}
	e.cap(pts[0], dirs[0].Neg(), l.StartCap)
	e.cap(pts[n-1], dirs[segs-1], l.EndCap)
}

// join emits the join piece at p between incoming direction d0 and
// outgoing direction d1.
func (e *expander) join(p Point, d0, d1 Vec2) {
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return
	}
	// The outer side is opposite to the turn.
	side := 1.0
	if cross > 0 {
		side = -1
	}
	n0 := d0.Perp().Scale(side)
	n1 := d1.Perp().Scale(side)
	a := p.Add(n0.Scale(e.hw))
	b := p.Add(n1.Scale(e.hw))

	switch e.style.Join {
	case JoinBevel:
		e.emit([]Point{p, a, b})
	case JoinRound:
		e.emit(append([]Point{p}, e.arc(p, a, b)...))
	default:
		e.miter(p, a, b, n0, n1, d0)
	}
}

func (e *expander) miter(p, a, b Point, n0, n1, d0 Vec2) {
	cosHalf := n0.Add(n1).Length() / 2 // cos of half the angle between the normals
	if cosHalf < 1e-9 {
		// 180 degree turn: the miter is infinitely long.
		if e.style.Join == JoinMiter {
			ext := d0.Scale(e.style.MiterLimit * e.hw)
			e.emit([]Point{a, a.Add(ext), b.Add(ext), b})
		}
		return
	}
	ratio := 1 / cosHalf
	tip := p.Add(n0.Add(n1).Scale(e.hw / (1 + n0.Dot(n1))))
	if ratio <= e.style.MiterLimit {
		e.emit([]Point{p, a, tip, b})
		return
	}
	if e.style.Join == JoinMiterOrBevel {
		e.emit([]Point{p, a, b})
		return
	}
	t := (e.style.MiterLimit - cosHalf) / (ratio - cosHalf)
	q0 := a.Lerp(tip, t)
	q1 := b.Lerp(tip, t)
	e.emit([]Point{p, a, q0, q1, b})
}

// cap emits the cap at p facing outwards along the unit vector d.
func (e *expander) cap(p Point, d Vec2, c Cap) {
	n := d.Perp().Scale(e.hw)
	ext := d.Scale(e.hw)
	a, b := p.Add(n), p.Add(n.Neg())
	switch c {
	case CapSquare:
		e.emit([]Point{a, a.Add(ext), b.Add(ext), b})
	case CapTriangle:
		e.emit([]Point{a, p.Add(ext), b})
	case CapRound:
		// Half disc from a through p+ext to b.
		mid := p.Add(ext)
		arc := e.arc(p, a, mid)
		arc = append(arc, e.arc(p, mid, b)[1:]...)
		e.emit(arc)
	}
}

// arc returns points on the circle around c from a to b, taking the short
// way round.
func (e *expander) arc(c, a, b Point) []Point {
	a0 := a.Sub(c).Angle()
	a1 := b.Sub(c).Angle()
	delta := a1 - a0
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	steps := arcSteps(e.hw, math.Abs(delta), e.style.Tolerance)
	pts := make([]Point, 0, steps+1)
	pts = append(pts, a)
	for i := 1; i < steps; i++ {
		ang := a0 + delta*float64(i)/float64(steps)
		s, co := math.Sincos(ang)
		pts = append(pts, Point{X: c.X + e.hw*co, Y: c.Y + e.hw*s})
	}
	return append(pts, b)
}

// arcSteps returns the number of chords approximating an arc of radius r
// and the given angle within tol.
func arcSteps(r, angle, tol float64) int {
	if r <= tol {
		return max(1, int(math.Ceil(angle/(math.Pi/2))))
	}
	step := 2 * math.Acos(1-tol/r)
	n := int(math.Ceil(angle / step))
	return min(max(n, 1), 256)
}

func dedupe(pts []Point) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p.Distance(out[len(out)-1]) > 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
