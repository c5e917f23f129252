package native

import (
	"math"
	"testing"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/math2d"
)

func near32(a, b, eps float32) bool { return math.Abs(float64(a-b)) <= float64(eps) }

func rectNear(a, b math2d.RectF, eps float32) bool {
	return near32(a.Left, b.Left, eps) && near32(a.Top, b.Top, eps) &&
		near32(a.Right, b.Right, eps) && near32(a.Bottom, b.Bottom, eps)
}

// recordingSink counts what a geometry writes to a SimplifiedGeometrySink.
type recordingSink struct {
	mode            FillMode
	figures, closed int
	lines, beziers  int
	points          []math2d.Point2F
}

func (s *recordingSink) SetFillMode(mode FillMode)               { s.mode = mode }
func (s *recordingSink) AddBeziers(beziers []BezierSegment)      { s.beziers += len(beziers) }
func (s *recordingSink) Close() com.Status                       { return com.OK }
func (s *recordingSink) BeginFigure(math2d.Point2F, FigureBegin) { s.figures++ }

func (s *recordingSink) SetSegmentFlags(PathSegment) {}

func (s *recordingSink) AddLines(points []math2d.Point2F) {
	s.lines += len(points)
	s.points = append(s.points, points...)
}

func (s *recordingSink) EndFigure(end FigureEnd) {
	if end == FigureEndClosed {
		s.closed++
	}
}

func TestRectangleGeometry(t *testing.T) {
	f := testFactory(t)
	g, st := f.CreateRectangleGeometry(math2d.Rect(0, 0, 10, 20))
	if st.Failed() {
		t.Fatalf("CreateRectangleGeometry() = %v", st)
	}
	defer g.Release()

	if got := g.GetRect(); got != math2d.Rect(0, 0, 10, 20) {
		t.Errorf("GetRect() = %v", got)
	}
	if got, _ := g.GetBounds(nil); got != math2d.Rect(0, 0, 10, 20) {
		t.Errorf("GetBounds(nil) = %v, want (0, 0, 10, 20)", got)
	}
	m := math2d.Translation(5, 5)
	if got, _ := g.GetBounds(&m); got != math2d.Rect(5, 5, 15, 25) {
		t.Errorf("GetBounds(translate) = %v, want (5, 5, 15, 25)", got)
	}
	if got, _ := g.ComputeArea(nil, 0); got != 200 {
		t.Errorf("ComputeArea() = %v, want 200", got)
	}
	if got, _ := g.ComputeLength(nil, 0); got != 60 {
		t.Errorf("ComputeLength() = %v, want 60", got)
	}

	contains := []struct {
		pt   math2d.Point2F
		want bool
	}{
		{math2d.Pt(5, 5), true},
		{math2d.Pt(11, 5), false},
		{math2d.Pt(5, -3), false},
	}
	for _, tt := range contains {
		if got, _ := g.FillContainsPoint(tt.pt, nil, 0); got != tt.want {
			t.Errorf("FillContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
	if got, _ := g.StrokeContainsPoint(math2d.Pt(0, 10), 2, nil, nil, 0); !got {
		t.Error("StrokeContainsPoint on the edge = false, want true")
	}
	if got, _ := g.StrokeContainsPoint(math2d.Pt(5, 10), 2, nil, nil, 0); got {
		t.Error("StrokeContainsPoint in the interior = true, want false")
	}

	if _, st := g.ComputeArea(nil, -1); st != com.InvalidArg {
		t.Errorf("ComputeArea(tolerance -1) = %v, want %v", st, com.InvalidArg)
	}
}

func TestWidenedBounds(t *testing.T) {
	f := testFactory(t)
	g, _ := f.CreateRectangleGeometry(math2d.Rect(0, 0, 10, 20))
	defer g.Release()

	got, st := g.GetWidenedBounds(2, nil, nil, 0)
	if st.Failed() {
		t.Fatalf("GetWidenedBounds() = %v", st)
	}
	if want := math2d.Rect(-1, -1, 11, 21); !rectNear(got, want, 0.01) {
		t.Errorf("GetWidenedBounds() = %v, want %v", got, want)
	}
	if _, st := g.GetWidenedBounds(-1, nil, nil, 0); st != com.InvalidArg {
		t.Errorf("GetWidenedBounds(width -1) = %v, want %v", st, com.InvalidArg)
	}
}

func TestEllipseArea(t *testing.T) {
	f := testFactory(t)
	g, _ := f.CreateEllipseGeometry(math2d.Circle(math2d.Pt(50, 50), 10))
	defer g.Release()

	area, _ := g.ComputeArea(nil, 0.01)
	if want := float32(math.Pi * 100); !near32(area, want, 1) {
		t.Errorf("ComputeArea() = %v, want ~%v", area, want)
	}
	length, _ := g.ComputeLength(nil, 0.01)
	if want := float32(2 * math.Pi * 10); !near32(length, want, 0.5) {
		t.Errorf("ComputeLength() = %v, want ~%v", length, want)
	}
	b, _ := g.GetBounds(nil)
	if want := math2d.Rect(40, 40, 60, 60); !rectNear(b, want, 0.01) {
		t.Errorf("GetBounds() = %v, want %v", b, want)
	}
}

func TestPointAtLength(t *testing.T) {
	f := testFactory(t)
	g, _ := f.CreateRectangleGeometry(math2d.Rect(0, 0, 10, 10))
	defer g.Release()

	pt, tan, st := g.ComputePointAtLength(15, nil, 0)
	if st.Failed() {
		t.Fatalf("ComputePointAtLength() = %v", st)
	}
	if pt != math2d.Pt(10, 5) || tan != (math2d.Vector2F{X: 0, Y: 1}) {
		t.Errorf("ComputePointAtLength(15) = (%v, %v), want ((10, 5), (0, 1))", pt, tan)
	}
}

func buildSquare(t *testing.T, f Factory) PathGeometry {
	t.Helper()
	p, st := f.CreatePathGeometry()
	if st.Failed() {
		t.Fatalf("CreatePathGeometry() = %v", st)
	}
	sink, st := p.Open()
	if st.Failed() {
		t.Fatalf("Open() = %v", st)
	}
	sink.BeginFigure(math2d.Pt(0, 0), FigureBeginFilled)
	sink.AddLines([]math2d.Point2F{{X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	sink.EndFigure(FigureEndClosed)
	if st := sink.Close(); st.Failed() {
		t.Fatalf("Close() = %v", st)
	}
	sink.Release()
	return p
}

func TestPathGeometry(t *testing.T) {
	f := testFactory(t)
	p := buildSquare(t, f)
	defer p.Release()

	if n, st := p.GetFigureCount(); n != 1 || st.Failed() {
		t.Errorf("GetFigureCount() = (%d, %v), want (1, OK)", n, st)
	}
	if n, st := p.GetSegmentCount(); n != 3 || st.Failed() {
		t.Errorf("GetSegmentCount() = (%d, %v), want (3, OK)", n, st)
	}
	if got, _ := p.ComputeArea(nil, 0); got != 100 {
		t.Errorf("ComputeArea() = %v, want 100", got)
	}
	if _, st := p.Open(); st != com.WrongState {
		t.Errorf("second Open() = %v, want %v", st, com.WrongState)
	}
}

func TestPathGeometryBeforeClose(t *testing.T) {
	f := testFactory(t)
	p, _ := f.CreatePathGeometry()
	defer p.Release()

	if _, st := p.GetFigureCount(); st != com.WrongState {
		t.Errorf("GetFigureCount() before Open = %v, want %v", st, com.WrongState)
	}
	sink, _ := p.Open()
	defer sink.Release()
	if _, st := p.ComputeArea(nil, 0); st != com.WrongState {
		t.Errorf("ComputeArea() while open = %v, want %v", st, com.WrongState)
	}
}

func TestGeometrySinkMisuse(t *testing.T) {
	tests := []struct {
		name  string
		build func(GeometrySink)
	}{
		{"line before figure", func(s GeometrySink) {
			s.AddLine(math2d.Pt(1, 1))
		}},
		{"nested figure", func(s GeometrySink) {
			s.BeginFigure(math2d.Pt(0, 0), FigureBeginFilled)
			s.BeginFigure(math2d.Pt(1, 1), FigureBeginFilled)
			s.EndFigure(FigureEndClosed)
		}},
		{"figure left open", func(s GeometrySink) {
			s.BeginFigure(math2d.Pt(0, 0), FigureBeginFilled)
			s.AddLine(math2d.Pt(1, 1))
		}},
		{"fill mode after figure", func(s GeometrySink) {
			s.BeginFigure(math2d.Pt(0, 0), FigureBeginFilled)
			s.EndFigure(FigureEndOpen)
			s.SetFillMode(FillModeWinding)
		}},
		{"end without figure", func(s GeometrySink) {
			s.EndFigure(FigureEndClosed)
		}},
	}
	f := testFactory(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := f.CreatePathGeometry()
			defer p.Release()
			sink, _ := p.Open()
			defer sink.Release()
			tt.build(sink)
			if st := sink.Close(); st != com.WrongState {
				t.Errorf("Close() = %v, want %v", st, com.WrongState)
			}
			if st := sink.Close(); st != com.WrongState {
				t.Errorf("second Close() = %v, want %v", st, com.WrongState)
			}
		})
	}
}

func TestArcSegment(t *testing.T) {
	f := testFactory(t)
	p, _ := f.CreatePathGeometry()
	defer p.Release()
	sink, _ := p.Open()
	sink.BeginFigure(math2d.Pt(0, 0), FigureBeginFilled)
	sink.AddArc(ArcSegment{
		Point:          math2d.Pt(20, 0),
		Size:           math2d.SizeF{Width: 10, Height: 10},
		SweepDirection: SweepDirectionClockwise,
		ArcSize:        ArcSizeSmall,
	})
	sink.EndFigure(FigureEndClosed)
	if st := sink.Close(); st.Failed() {
		t.Fatalf("Close() = %v", st)
	}
	sink.Release()

	area, _ := p.ComputeArea(nil, 0.01)
	if want := float32(math.Pi * 50); !near32(area, want, 0.5) {
		t.Errorf("half circle ComputeArea() = %v, want ~%v", area, want)
	}
	if n, _ := p.GetSegmentCount(); n != 1 {
		t.Errorf("GetSegmentCount() = %d, want 1", n)
	}
}

func TestStream(t *testing.T) {
	f := testFactory(t)
	src := buildSquare(t, f)
	defer src.Release()

	dst, _ := f.CreatePathGeometry()
	defer dst.Release()
	sink, _ := dst.Open()
	if st := src.Stream(sink); st.Failed() {
		t.Fatalf("Stream() = %v", st)
	}
	if st := sink.Close(); st.Failed() {
		t.Fatalf("Close() = %v", st)
	}
	sink.Release()
	if got, _ := dst.ComputeArea(nil, 0); got != 100 {
		t.Errorf("streamed ComputeArea() = %v, want 100", got)
	}
}

func TestGeometryGroup(t *testing.T) {
	f := testFactory(t)
	a, _ := f.CreateRectangleGeometry(math2d.Rect(0, 0, 10, 10))
	defer a.Release()
	b, _ := f.CreateRectangleGeometry(math2d.Rect(5, 0, 15, 10))
	defer b.Release()

	tests := []struct {
		mode FillMode
		want float32
	}{
		{FillModeAlternate, 100},
		{FillModeWinding, 150},
	}
	for _, tt := range tests {
		g, st := f.CreateGeometryGroup(tt.mode, []Geometry{a, b})
		if st.Failed() {
			t.Fatalf("CreateGeometryGroup(%v) = %v", tt.mode, st)
		}
		if got, _ := g.ComputeArea(nil, 0); got != tt.want {
			t.Errorf("mode %v: ComputeArea() = %v, want %v", tt.mode, got, tt.want)
		}
		if got := g.GetSourceGeometryCount(); got != 2 {
			t.Errorf("GetSourceGeometryCount() = %d, want 2", got)
		}
		srcs := g.GetSourceGeometries()
		for _, s := range srcs {
			s.Release()
		}
		g.Release()
	}

	if _, st := f.CreateGeometryGroup(FillMode(9), nil); st != com.InvalidArg {
		t.Errorf("CreateGeometryGroup(bad mode) = %v, want %v", st, com.InvalidArg)
	}
}

func TestTransformedGeometry(t *testing.T) {
	f := testFactory(t)
	src, _ := f.CreateRectangleGeometry(math2d.Rect(0, 0, 1, 1))
	defer src.Release()

	m := math2d.Scale(2, 3, math2d.Point2F{})
	g, st := f.CreateTransformedGeometry(src, m)
	if st.Failed() {
		t.Fatalf("CreateTransformedGeometry() = %v", st)
	}
	defer g.Release()

	if got, _ := g.GetBounds(nil); got != math2d.Rect(0, 0, 2, 3) {
		t.Errorf("GetBounds() = %v, want (0, 0, 2, 3)", got)
	}
	if got := g.GetTransform(); got != m {
		t.Errorf("GetTransform() = %v, want %v", got, m)
	}
	s := g.GetSourceGeometry()
	if s != Geometry(src) {
		t.Error("GetSourceGeometry() did not return the source")
	}
	s.Release()
}

func TestForeignGeometry(t *testing.T) {
	f1 := testFactory(t)
	f2 := testFactory(t)
	g, _ := f1.CreateRectangleGeometry(math2d.Rect(0, 0, 1, 1))
	defer g.Release()

	if _, st := f2.CreateTransformedGeometry(g, math2d.Identity()); st != com.WrongFactory {
		t.Errorf("CreateTransformedGeometry(foreign) = %v, want %v", st, com.WrongFactory)
	}
	if _, st := f2.CreateGeometryGroup(FillModeWinding, []Geometry{g}); st != com.WrongFactory {
		t.Errorf("CreateGeometryGroup(foreign) = %v, want %v", st, com.WrongFactory)
	}
	if _, st := f1.CreateTransformedGeometry(nil, math2d.Identity()); st != com.InvalidArg {
		t.Errorf("CreateTransformedGeometry(nil) = %v, want %v", st, com.InvalidArg)
	}
}

func TestSimplify(t *testing.T) {
	f := testFactory(t)
	g, _ := f.CreateEllipseGeometry(math2d.Circle(math2d.Pt(0, 0), 10))
	defer g.Release()

	var curves recordingSink
	if st := g.Simplify(GeometrySimplificationOptionCubicsAndLines, nil, 0, &curves); st.Failed() {
		t.Fatalf("Simplify(cubics) = %v", st)
	}
	if curves.beziers != 4 || curves.lines != 0 || curves.figures != 1 || curves.closed != 1 {
		t.Errorf("Simplify(cubics) wrote %d beziers, %d lines, %d figures (%d closed), want 4, 0, 1 (1)",
			curves.beziers, curves.lines, curves.figures, curves.closed)
	}

	var lines recordingSink
	if st := g.Simplify(GeometrySimplificationOptionLines, nil, 0.01, &lines); st.Failed() {
		t.Fatalf("Simplify(lines) = %v", st)
	}
	if lines.beziers != 0 || lines.lines < 16 {
		t.Errorf("Simplify(lines) wrote %d beziers, %d lines, want 0 and at least 16", lines.beziers, lines.lines)
	}
	for _, p := range lines.points {
		if d := p.Distance(math2d.Point2F{}); !near32(d, 10, 0.05) {
			t.Fatalf("point %v at distance %v, want ~10", p, d)
		}
	}

	if st := g.Simplify(GeometrySimplificationOptionLines, nil, 0, nil); st != com.InvalidArg {
		t.Errorf("Simplify(nil sink) = %v, want %v", st, com.InvalidArg)
	}
}

func TestWiden(t *testing.T) {
	f := testFactory(t)
	g, _ := f.CreateRectangleGeometry(math2d.Rect(0, 0, 10, 10))
	defer g.Release()

	var sink recordingSink
	sink.mode = FillModeAlternate
	if st := g.Widen(2, nil, nil, 0, &sink); st.Failed() {
		t.Fatalf("Widen() = %v", st)
	}
	if sink.mode != FillModeWinding {
		t.Errorf("Widen fill mode = %v, want %v", sink.mode, FillModeWinding)
	}
	if sink.figures == 0 || sink.closed != sink.figures {
		t.Errorf("Widen wrote %d figures, %d closed; want all closed", sink.figures, sink.closed)
	}
}

func TestStrokeStyle(t *testing.T) {
	f := testFactory(t)
	tests := []struct {
		name   string
		props  StrokeStyleProperties
		dashes []float32
		want   com.Status
	}{
		{"solid", StrokeStyleProperties{MiterLimit: 10}, nil, com.OK},
		{"custom", StrokeStyleProperties{DashStyle: DashStyleCustom}, []float32{1, 2}, com.OK},
		{"custom without dashes", StrokeStyleProperties{DashStyle: DashStyleCustom}, nil, com.InvalidArg},
		{"dashes on predefined style", StrokeStyleProperties{DashStyle: DashStyleDash}, []float32{1}, com.InvalidArg},
		{"negative dash", StrokeStyleProperties{DashStyle: DashStyleCustom}, []float32{-1}, com.InvalidArg},
		{"bad cap", StrokeStyleProperties{StartCap: CapStyle(7)}, nil, com.InvalidArg},
		{"bad join", StrokeStyleProperties{LineJoin: LineJoin(7)}, nil, com.InvalidArg},
		{"NaN miter", StrokeStyleProperties{MiterLimit: float32(math.NaN())}, nil, com.InvalidArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, st := f.CreateStrokeStyle(tt.props, tt.dashes)
			if st != tt.want {
				t.Fatalf("CreateStrokeStyle() = %v, want %v", st, tt.want)
			}
			if s == nil {
				return
			}
			defer s.Release()
			if got := s.GetDashesCount(); got != uint32(len(tt.dashes)) {
				t.Errorf("GetDashesCount() = %d, want %d", got, len(tt.dashes))
			}
		})
	}

	s, _ := f.CreateStrokeStyle(StrokeStyleProperties{DashStyle: DashStyleCustom, LineJoin: LineJoinRound}, []float32{3, 1})
	defer s.Release()
	d := s.GetDashes()
	d[0] = 99
	if got := s.GetDashes(); got[0] != 3 {
		t.Errorf("GetDashes() shares storage with the caller")
	}
	if s.GetLineJoin() != LineJoinRound || s.GetMiterLimit() != 1 {
		t.Errorf("GetLineJoin, GetMiterLimit = %v, %v, want %v, 1", s.GetLineJoin(), s.GetMiterLimit(), LineJoinRound)
	}
}
