package stroke

import (
	"math"
	"testing"
)

// coverage reports whether pt lies in the non-zero union of polys.
func coverage(polys [][]Point, pt Point) bool {
	w := 0
	for _, poly := range polys {
		n := len(poly)
		for i := 0; i < n; i++ {
			p0, p1 := poly[i], poly[(i+1)%n]
			isLeft := (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
			if p0.Y <= pt.Y && p1.Y > pt.Y && isLeft > 0 {
				w++
			} else if p0.Y > pt.Y && p1.Y <= pt.Y && isLeft < 0 {
				w--
			}
		}
	}
	return w != 0
}

func line(pts ...Point) Polyline {
	return Polyline{Points: pts}
}

func TestExpandOrientation(t *testing.T) {
	l := line(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10})
	for _, poly := range Expand([]Polyline{l}, Style{Width: 2, Join: JoinRound}) {
		if signedArea(poly) <= 0 {
			t.Fatalf("piece %v has non-positive orientation", poly)
		}
	}
}

func TestExpandCaps(t *testing.T) {
	tests := []struct {
		name string
		cap  Cap
		pt   Point
		want bool
	}{
		{"flat excludes beyond end", CapFlat, Point{10.5, 0}, false},
		{"square covers beyond end", CapSquare, Point{10.9, 0.9}, true},
		{"round covers axis", CapRound, Point{10.9, 0}, true},
		{"round excludes corner", CapRound, Point{10.9, 0.9}, false},
		{"triangle covers tip area", CapTriangle, Point{10.4, 0}, true},
		{"triangle excludes corner", CapTriangle, Point{10.9, 0.9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Polyline{Points: []Point{{0, 0}, {10, 0}}, StartCap: tt.cap, EndCap: tt.cap}
			polys := Expand([]Polyline{l}, Style{Width: 2})
			if got := coverage(polys, tt.pt); got != tt.want {
				t.Errorf("covers %v = %v, want %v", tt.pt, got, tt.want)
			}
			if !coverage(polys, Point{5, 0.9}) {
				t.Error("body not covered")
			}
		})
	}
}

func TestExpandJoins(t *testing.T) {
	// Right angle at (10, 0); the outer corner is at (11, -1).
	corner := Point{10.9, -0.9}
	tests := []struct {
		join  Join
		limit float64
		want  bool
	}{
		{JoinMiter, 10, true},
		{JoinBevel, 10, false},
		{JoinRound, 10, false},
		{JoinMiterOrBevel, 10, true},
		{JoinMiterOrBevel, 1.2, false},
	}
	for _, tt := range tests {
		l := line(Point{0, 0}, Point{10, 0}, Point{10, 10})
		polys := Expand([]Polyline{l}, Style{Width: 2, Join: tt.join, MiterLimit: tt.limit})
		if got := coverage(polys, corner); got != tt.want {
			t.Errorf("join %v limit %v covers corner = %v, want %v", tt.join, tt.limit, got, tt.want)
		}
		if !coverage(polys, Point{10.5, -0.3}) {
			t.Errorf("join %v: area next to the corner not covered", tt.join)
		}
	}
}

func TestExpandClippedMiter(t *testing.T) {
	// A sharp turn whose miter exceeds the limit is cut, not removed.
	l := line(Point{0, 0}, Point{10, 0}, Point{0, 1})
	polys := Expand([]Polyline{l}, Style{Width: 2, Join: JoinMiter, MiterLimit: 2})
	if !coverage(polys, Point{11.5, 0.5}) {
		t.Error("clipped miter does not extend past the vertex")
	}
	if coverage(polys, Point{13, 0.5}) {
		t.Error("clipped miter extends beyond the limit")
	}
}

func TestExpandClosed(t *testing.T) {
	l := Polyline{Points: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, Closed: true, StartCap: CapSquare, EndCap: CapSquare}
	polys := Expand([]Polyline{l}, Style{Width: 2})
	if !coverage(polys, Point{0, 5}) {
		t.Error("closing segment not stroked")
	}
	if coverage(polys, Point{5, 5}) {
		t.Error("interior covered")
	}
	if !coverage(polys, Point{-0.9, -0.9}) {
		t.Error("closing join missing")
	}
}

func TestExpandZeroWidth(t *testing.T) {
	if polys := Expand([]Polyline{line(Point{0, 0}, Point{1, 1})}, Style{}); polys != nil {
		t.Errorf("zero width produced %d polygons", len(polys))
	}
}

func TestDash(t *testing.T) {
	l := Polyline{Points: []Point{{0, 0}, {10, 0}}, StartCap: CapRound, EndCap: CapSquare}
	got := Dash([]Polyline{l}, []float64{2, 2}, 0, CapFlat)
	if len(got) != 3 {
		t.Fatalf("len(dashes) = %d, want 3", len(got))
	}
	wantStarts := []float64{0, 4, 8}
	for i, d := range got {
		if d.Points[0].X != wantStarts[i] {
			t.Errorf("dash %d starts at %v, want %v", i, d.Points[0].X, wantStarts[i])
		}
		end := d.Points[len(d.Points)-1].X
		if math.Abs(end-d.Points[0].X-2) > 1e-9 {
			t.Errorf("dash %d has length %v, want 2", i, end-d.Points[0].X)
		}
	}
	if got[0].StartCap != CapRound || got[0].EndCap != CapFlat {
		t.Errorf("first dash caps = (%v, %v), want (round, flat)", got[0].StartCap, got[0].EndCap)
	}
	if got[2].StartCap != CapFlat || got[2].EndCap != CapFlat {
		t.Errorf("last dash caps = (%v, %v), want (flat, flat)", got[2].StartCap, got[2].EndCap)
	}
}

func TestDashOffsetAndCorner(t *testing.T) {
	l := line(Point{0, 0}, Point{4, 0}, Point{4, 4})
	got := Dash([]Polyline{l}, []float64{3, 1}, 1, CapFlat)
	// Offset 1: first dash runs 2 units, then a gap, then a dash around the corner.
	if len(got) < 2 {
		t.Fatalf("len(dashes) = %d, want at least 2", len(got))
	}
	if end := got[0].Points[len(got[0].Points)-1]; end != (Point{2, 0}) {
		t.Errorf("first dash ends at %v, want (2, 0)", end)
	}
	second := got[1]
	if second.Points[0] != (Point{3, 0}) || len(second.Points) != 3 {
		t.Errorf("second dash = %v, want to start at (3, 0) and turn the corner", second.Points)
	}
}

func TestDashZeroLengthDots(t *testing.T) {
	l := line(Point{0, 0}, Point{10, 0})
	got := Dash([]Polyline{l}, []float64{0, 5}, 0, CapRound)
	// Dots at 0, 5 and 10.
	if len(got) != 3 {
		t.Fatalf("len(dots) = %d, want 3", len(got))
	}
	polys := Expand(got, Style{Width: 2})
	if !coverage(polys, Point{5, 0.5}) {
		t.Error("dot at x=5 not drawn")
	}
	if coverage(polys, Point{2.5, 0}) {
		t.Error("gap between dots covered")
	}
}
