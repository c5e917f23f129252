package path

import (
	"math"
	"testing"
)

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestFlattenRect(t *testing.T) {
	cs := Flatten([]Figure{RectFigure(0, 0, 10, 5)}, Identity(), Tolerance)
	if len(cs) != 1 {
		t.Fatalf("len(contours) = %d, want 1", len(cs))
	}
	if got := len(cs[0].Points); got != 4 {
		t.Errorf("len(points) = %d, want 4", got)
	}
	if got := SignedArea(cs[0].Points); !near(got, 50, 1e-9) {
		t.Errorf("SignedArea = %v, want 50", got)
	}
}

func TestFlattenEllipseTolerance(t *testing.T) {
	cs := Flatten([]Figure{EllipseFigure(50, 50, 40, 40)}, Identity(), 0.05)
	for _, p := range cs[0].Points {
		if d := p.Distance(Point{50, 50}); !near(d, 40, 0.1) {
			t.Fatalf("point %v at distance %v from center, want ~40", p, d)
		}
	}
	if got := Area(cs, false); !near(got, math.Pi*1600, 5) {
		t.Errorf("circle area = %v, want ~%v", got, math.Pi*1600)
	}
}

func TestFlattenTransformed(t *testing.T) {
	m := Affine{A: 2, E: 3, C: 10, F: 20}
	cs := Flatten([]Figure{RectFigure(0, 0, 1, 1)}, m, Tolerance)
	minX, minY, maxX, maxY, ok := Bounds(cs)
	if !ok || minX != 10 || minY != 20 || maxX != 12 || maxY != 23 {
		t.Errorf("Bounds = (%v, %v, %v, %v, %v), want (10, 20, 12, 23, true)", minX, minY, maxX, maxY, ok)
	}
}

func TestAreaFillRules(t *testing.T) {
	outer := RectFigure(0, 0, 10, 10)
	inner := RectFigure(2, 2, 8, 8) // same orientation as outer

	tests := []struct {
		name    string
		figs    []Figure
		evenOdd bool
		want    float64
	}{
		{"nonzero nested", []Figure{outer, inner}, false, 100},
		{"evenodd nested", []Figure{outer, inner}, true, 64},
		{"overlapping", []Figure{RectFigure(0, 0, 10, 10), RectFigure(5, 0, 15, 10)}, false, 150},
		{"overlapping evenodd", []Figure{RectFigure(0, 0, 10, 10), RectFigure(5, 0, 15, 10)}, true, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := Flatten(tt.figs, Identity(), Tolerance)
			if got := Area(cs, tt.evenOdd); !near(got, tt.want, 1e-9) {
				t.Errorf("Area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAreaSelfIntersecting(t *testing.T) {
	// Bow tie: two triangles of area 25 each.
	bow := Figure{
		Start: Point{0, 0},
		Segments: []Segment{
			LineSeg(Point{10, 10}),
			LineSeg(Point{10, 0}),
			LineSeg(Point{0, 10}),
		},
		Closed: true,
		Filled: true,
	}
	cs := Flatten([]Figure{bow}, Identity(), Tolerance)
	if got := Area(cs, false); !near(got, 50, 1e-9) {
		t.Errorf("bow tie Area = %v, want 50", got)
	}
}

func TestContains(t *testing.T) {
	cs := Flatten([]Figure{RectFigure(0, 0, 10, 10), RectFigure(2, 2, 8, 8)}, Identity(), Tolerance)
	tests := []struct {
		p       Point
		evenOdd bool
		want    bool
	}{
		{Point{1, 1}, false, true},
		{Point{5, 5}, false, true},
		{Point{5, 5}, true, false},
		{Point{11, 5}, false, false},
	}
	for _, tt := range tests {
		if got := Contains(cs, tt.p, tt.evenOdd); got != tt.want {
			t.Errorf("Contains(%v, evenOdd=%v) = %v, want %v", tt.p, tt.evenOdd, got, tt.want)
		}
	}
}

func TestHollowFiguresAreNotFilled(t *testing.T) {
	f := RectFigure(0, 0, 10, 10)
	f.Filled = false
	cs := Flatten([]Figure{f}, Identity(), Tolerance)
	if Contains(cs, Point{5, 5}, false) {
		t.Error("hollow figure contains its interior")
	}
	if got := Area(cs, false); got != 0 {
		t.Errorf("hollow Area = %v, want 0", got)
	}
}

func TestLengthAndPointAtLength(t *testing.T) {
	open := Figure{Start: Point{0, 0}, Segments: []Segment{LineSeg(Point{10, 0}), LineSeg(Point{10, 5})}}
	cs := Flatten([]Figure{open}, Identity(), Tolerance)
	if got := Length(cs); got != 15 {
		t.Errorf("Length = %v, want 15", got)
	}

	tests := []struct {
		d       float64
		pt, tan Point
	}{
		{0, Point{0, 0}, Point{1, 0}},
		{4, Point{4, 0}, Point{1, 0}},
		{12, Point{10, 2}, Point{0, 1}},
		{100, Point{10, 5}, Point{0, 1}},
	}
	for _, tt := range tests {
		pt, tan, ok := PointAtLength(cs, tt.d)
		if !ok || pt != tt.pt || tan != tt.tan {
			t.Errorf("PointAtLength(%v) = (%v, %v, %v), want (%v, %v, true)", tt.d, pt, tan, ok, tt.pt, tt.tan)
		}
	}

	closed := Flatten([]Figure{RectFigure(0, 0, 10, 10)}, Identity(), Tolerance)
	if got := Length(closed); got != 40 {
		t.Errorf("closed Length = %v, want 40", got)
	}
}

func TestArcToCubics(t *testing.T) {
	p0, p1 := Point{0, 0}, Point{10, 10}
	tests := []struct {
		name   string
		sweep  bool
		center Point
	}{
		{"clockwise", true, Point{0, 10}},
		{"counter-clockwise", false, Point{10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := ArcToCubics(p0, p1, 10, 10, 0, tt.sweep, false)
			if len(segs) == 0 {
				t.Fatal("no segments")
			}
			if end := segs[len(segs)-1].End(); end != p1 {
				t.Errorf("end = %v, want %v", end, p1)
			}
			cs := Flatten([]Figure{{Start: p0, Segments: segs}}, Identity(), 0.01)
			for _, p := range cs[0].Points {
				if d := p.Distance(tt.center); !near(d, 10, 0.05) {
					t.Fatalf("point %v at distance %v from %v, want 10", p, d, tt.center)
				}
			}
		})
	}

	if segs := ArcToCubics(p0, p0, 5, 5, 0, true, false); segs != nil {
		t.Errorf("coincident end points produced %d segments, want none", len(segs))
	}
	if segs := ArcToCubics(p0, p1, 0, 5, 0, true, false); len(segs) != 1 || segs[0].Kind != Line {
		t.Errorf("zero radius arc = %v, want single line", segs)
	}
	// A large arc spans three quarters of the circle.
	large := ArcToCubics(p0, p1, 10, 10, 0, true, true)
	cs := Flatten([]Figure{{Start: p0, Segments: large}}, Identity(), 0.01)
	if got, want := Length(cs), 1.5*math.Pi*10; !near(got, want, 0.1) {
		t.Errorf("large arc length = %v, want ~%v", got, want)
	}
}

func TestAffineInvert(t *testing.T) {
	m := Affine{A: 2, B: 1, C: 3, D: -1, E: 4, F: 5}
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported singular")
	}
	p := Point{7, -2}
	got := inv.Apply(m.Apply(p))
	if !near(got.X, p.X, 1e-9) || !near(got.Y, p.Y, 1e-9) {
		t.Errorf("round trip = %v, want %v", got, p)
	}
	if s := (Affine{A: 3, E: 2}).MaxScale(); !near(s, 3, 1e-9) {
		t.Errorf("MaxScale = %v, want 3", s)
	}
}

func TestDistance(t *testing.T) {
	cs := Flatten([]Figure{RectFigure(0, 0, 10, 10)}, Identity(), Tolerance)
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{5, 5}, 5},
		{Point{-3, 5}, 3},
		{Point{5, 12}, 2},
		{Point{13, 14}, 5},
	}
	for _, tt := range tests {
		if got := Distance(cs, tt.p); !near(got, tt.want, 1e-9) {
			t.Errorf("Distance(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := Distance(nil, Point{}); !math.IsInf(got, 1) {
		t.Errorf("Distance(nil) = %v, want +Inf", got)
	}
}
