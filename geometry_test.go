package d2d

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/d2d/math2d"
)

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func nearRect(a, b math2d.RectF, eps float32) bool {
	return near(a.Left, b.Left, eps) && near(a.Top, b.Top, eps) &&
		near(a.Right, b.Right, eps) && near(a.Bottom, b.Bottom, eps)
}

func TestRectangleGeometry(t *testing.T) {
	f := testFactory(t)
	r := math2d.Rect(10, 20, 50, 80)
	g := rectGeometry(t, f, r)

	if got := g.Rect(); got != r {
		t.Errorf("Rect() = %v, want %v", got, r)
	}
	b, err := g.Bounds(nil)
	if err != nil || !nearRect(b, r, 0.01) {
		t.Errorf("Bounds(nil) = %v, %v, want %v", b, err, r)
	}
	m := math2d.Translation(5, 5)
	b, err = g.Bounds(&m)
	if want := math2d.Rect(15, 25, 55, 85); err != nil || !nearRect(b, want, 0.01) {
		t.Errorf("Bounds(translate) = %v, %v, want %v", b, err, want)
	}
	area, err := g.ComputeArea(nil, 0)
	if err != nil || !near(area, 40*60, 0.5) {
		t.Errorf("ComputeArea() = %v, %v, want 2400", area, err)
	}
	length, err := g.ComputeLength(nil, 0)
	if err != nil || !near(length, 200, 0.5) {
		t.Errorf("ComputeLength() = %v, %v, want 200", length, err)
	}
}

func TestFillContainsPoint(t *testing.T) {
	f := testFactory(t)
	e, err := f.CreateEllipseGeometry(math2d.Circle(math2d.Pt(50, 50), 20))
	if err != nil {
		t.Fatalf("CreateEllipseGeometry() error = %v", err)
	}
	defer e.Release()

	tests := []struct {
		name string
		pt   math2d.Point2F
		want bool
	}{
		{"center", math2d.Pt(50, 50), true},
		{"inside edge", math2d.Pt(69, 50), true},
		{"outside", math2d.Pt(75, 50), false},
		{"corner of bounds", math2d.Pt(31, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.FillContainsPoint(tt.pt, nil, 0)
			if err != nil {
				t.Fatalf("FillContainsPoint() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FillContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestStrokeContainsPoint(t *testing.T) {
	f := testFactory(t)
	g := rectGeometry(t, f, math2d.Rect(0, 0, 100, 100))

	on, err := g.StrokeContainsPoint(math2d.Pt(100, 50), 4, nil, nil, 0)
	if err != nil || !on {
		t.Errorf("StrokeContainsPoint(edge) = %v, %v, want true", on, err)
	}
	off, err := g.StrokeContainsPoint(math2d.Pt(50, 50), 4, nil, nil, 0)
	if err != nil || off {
		t.Errorf("StrokeContainsPoint(center) = %v, %v, want false", off, err)
	}
}

func TestPathGeometry(t *testing.T) {
	f := testFactory(t)
	p, err := f.CreatePathGeometry()
	if err != nil {
		t.Fatalf("CreatePathGeometry() error = %v", err)
	}
	defer p.Release()

	sink, err := p.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	sink.SetFillMode(FillModeWinding)
	sink.BeginFigure(math2d.Pt(0, 0), FigureBeginFilled)
	sink.AddLines([]math2d.Point2F{{X: 10, Y: 0}, {X: 10, Y: 10}})
	sink.EndFigure(FigureEndClosed)
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	sink.Release()

	if n, err := p.FigureCount(); err != nil || n != 1 {
		t.Errorf("FigureCount() = %d, %v, want 1", n, err)
	}
	if n, err := p.SegmentCount(); err != nil || n != 2 {
		t.Errorf("SegmentCount() = %d, %v, want 2", n, err)
	}
	if area, err := p.ComputeArea(nil, 0); err != nil || !near(area, 50, 0.01) {
		t.Errorf("ComputeArea() = %v, %v, want 50", area, err)
	}

	if _, err := p.Open(); !errors.Is(err, StatusWrongState) {
		t.Errorf("second Open() error = %v, want %v", err, StatusWrongState)
	}
}

func TestGeometrySinkMisuse(t *testing.T) {
	f := testFactory(t)
	p, err := f.CreatePathGeometry()
	if err != nil {
		t.Fatalf("CreatePathGeometry() error = %v", err)
	}
	defer p.Release()
	sink, err := p.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer sink.Release()

	// A segment outside a figure.
	sink.AddLine(math2d.Pt(1, 1))
	if err := sink.Close(); !errors.Is(err, StatusWrongState) {
		t.Errorf("Close() error = %v, want %v", err, StatusWrongState)
	}
}

func TestSimplify(t *testing.T) {
	f := testFactory(t)
	g := rectGeometry(t, f, math2d.Rect(0, 0, 10, 10))

	var sink recordingSink
	if err := g.Simplify(GeometrySimplificationOptionLines, nil, 0, &sink); err != nil {
		t.Fatalf("Simplify() error = %v", err)
	}
	if sink.figures != 1 {
		t.Errorf("figures = %d, want 1", sink.figures)
	}
	if sink.lines == 0 {
		t.Error("Simplify() wrote no lines")
	}
	if sink.beziers != 0 {
		t.Errorf("beziers = %d, want 0 for lines-only simplification", sink.beziers)
	}
	if sink.closed {
		t.Error("Simplify() closed the sink; closing is up to the caller")
	}

	if err := g.Simplify(GeometrySimplificationOptionLines, nil, 0, nil); !errors.Is(err, StatusInvalidArg) {
		t.Errorf("Simplify(nil sink) error = %v, want %v", err, StatusInvalidArg)
	}
}

func TestWiden(t *testing.T) {
	f := testFactory(t)
	g := rectGeometry(t, f, math2d.Rect(0, 0, 10, 10))

	var sink recordingSink
	if err := g.Widen(2, nil, nil, 0, &sink); err != nil {
		t.Fatalf("Widen() error = %v", err)
	}
	if sink.figures == 0 {
		t.Error("Widen() wrote no figures")
	}
	b, err := g.WidenedBounds(2, nil, nil, 0)
	if want := math2d.Rect(-1, -1, 11, 11); err != nil || !nearRect(b, want, 0.05) {
		t.Errorf("WidenedBounds() = %v, %v, want %v", b, err, want)
	}
}

func TestGeometryGroup(t *testing.T) {
	f := testFactory(t)
	r := rectGeometry(t, f, math2d.Rect(0, 0, 10, 10))
	e, err := f.CreateEllipseGeometry(math2d.Circle(math2d.Pt(30, 30), 5))
	if err != nil {
		t.Fatalf("CreateEllipseGeometry() error = %v", err)
	}
	defer e.Release()

	g, err := f.CreateGeometryGroup(FillModeWinding, r, e)
	if err != nil {
		t.Fatalf("CreateGeometryGroup() error = %v", err)
	}
	defer g.Release()

	if got := g.FillMode(); got != FillModeWinding {
		t.Errorf("FillMode() = %v, want %v", got, FillModeWinding)
	}
	if got := g.SourceGeometryCount(); got != 2 {
		t.Fatalf("SourceGeometryCount() = %d, want 2", got)
	}
	srcs := g.SourceGeometries()
	defer func() {
		for _, s := range srcs {
			s.Release()
		}
	}()
	want := []GeometryKind{GeometryKindRectangle, GeometryKindEllipse}
	for i, s := range srcs {
		if got := s.Kind(); got != want[i] {
			t.Errorf("SourceGeometries()[%d].Kind() = %v, want %v", i, got, want[i])
		}
	}

	rect := srcs[0].AsRectangle()
	defer rect.Release()
	if got := rect.Rect(); got != math2d.Rect(0, 0, 10, 10) {
		t.Errorf("AsRectangle().Rect() = %v", got)
	}

	b, err := g.Bounds(nil)
	if want := math2d.Rect(0, 0, 35, 35); err != nil || !nearRect(b, want, 0.05) {
		t.Errorf("Bounds() = %v, %v, want %v", b, err, want)
	}
}

func TestTransformedGeometry(t *testing.T) {
	f := testFactory(t)
	r := rectGeometry(t, f, math2d.Rect(0, 0, 10, 10))
	m := math2d.Scale(2, 3, math2d.Point2F{})

	g, err := f.CreateTransformedGeometry(r, m)
	if err != nil {
		t.Fatalf("CreateTransformedGeometry() error = %v", err)
	}
	defer g.Release()

	if got := g.Transform(); got != m {
		t.Errorf("Transform() = %v, want %v", got, m)
	}
	src := g.SourceGeometry()
	defer src.Release()
	if got := src.Kind(); got != GeometryKindRectangle {
		t.Errorf("SourceGeometry().Kind() = %v, want %v", got, GeometryKindRectangle)
	}
	area, err := g.ComputeArea(nil, 0)
	if err != nil || !near(area, 600, 0.5) {
		t.Errorf("ComputeArea() = %v, %v, want 600", area, err)
	}
}

func TestGenericGeometryCasts(t *testing.T) {
	f := testFactory(t)
	r := rectGeometry(t, f, math2d.Rect(0, 0, 1, 1))

	generic := NewGenericGeometry(r)
	defer generic.Release()

	if got := generic.Kind(); got != GeometryKindRectangle {
		t.Errorf("Kind() = %v, want %v", got, GeometryKindRectangle)
	}
	mustPanic(t, "AsEllipse", func() { generic.AsEllipse() })
	mustPanic(t, "AsPath", func() { generic.AsPath() })
	mustPanic(t, "AsGroup", func() { generic.AsGroup() })

	// The generic handle holds its own reference.
	r.Release()
	rect := generic.AsRectangle()
	defer rect.Release()
	if got := rect.Rect(); got != math2d.Rect(0, 0, 1, 1) {
		t.Errorf("Rect() = %v after releasing the original", got)
	}
}

func TestGeometryKindString(t *testing.T) {
	tests := []struct {
		k    GeometryKind
		want string
	}{
		{GeometryKindUnknown, "unknown"},
		{GeometryKindRoundedRectangle, "rounded rectangle"},
		{GeometryKindTransformed, "transformed"},
		{GeometryKind(42), "GeometryKind(42)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
