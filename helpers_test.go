package d2d

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/d2d/math2d"
)

// testWindow records presented frames.
type testWindow struct {
	w, h     int
	occluded bool
	fail     bool
	presents int
	last     [4]uint8
}

func (w *testWindow) ClientSize() (int, int) { return w.w, w.h }
func (w *testWindow) Occluded() bool         { return w.occluded }

func (w *testWindow) Present(img *image.RGBA) error {
	if w.fail {
		return errors.New("device lost")
	}
	w.presents++
	copy(w.last[:], img.Pix[:4])
	return nil
}

// recordingSink collects the output of Simplify and Widen.
type recordingSink struct {
	figures int
	lines   int
	beziers int
	closed  bool
}

func (s *recordingSink) SetFillMode(FillMode)                    {}
func (s *recordingSink) SetSegmentFlags(PathSegment)             {}
func (s *recordingSink) BeginFigure(math2d.Point2F, FigureBegin) { s.figures++ }
func (s *recordingSink) AddLines(points []math2d.Point2F)        { s.lines += len(points) }
func (s *recordingSink) AddBeziers(beziers []BezierSegment)      { s.beziers += len(beziers) }
func (s *recordingSink) EndFigure(FigureEnd)                     {}

func (s *recordingSink) Close() error {
	s.closed = true
	return nil
}

func testFactory(t *testing.T, opts ...FactoryOption) *Factory {
	t.Helper()
	f, err := NewFactory(opts...)
	if err != nil {
		t.Fatalf("NewFactory() error = %v", err)
	}
	t.Cleanup(f.Release)
	return f
}

func testTarget(t *testing.T, f *Factory, w, h int) (*SurfaceRenderTarget, *MemorySurface) {
	t.Helper()
	s := NewMemorySurface(w, h, gputypes.TextureFormatBGRA8Unorm)
	rt, err := f.CreateSurfaceRenderTarget(s, DefaultRenderTargetProperties())
	if err != nil {
		t.Fatalf("CreateSurfaceRenderTarget() error = %v", err)
	}
	t.Cleanup(rt.Release)
	return rt, s
}

func solid(t *testing.T, rc ResourceCreator, c math2d.ColorF) *SolidColorBrush {
	t.Helper()
	b, err := NewSolidColorBrushBuilder(c).Build(rc)
	if err != nil {
		t.Fatalf("SolidColorBrushBuilder.Build() error = %v", err)
	}
	t.Cleanup(b.Release)
	return b
}

func rectGeometry(t *testing.T, f *Factory, r math2d.RectF) *RectangleGeometry {
	t.Helper()
	g, err := f.CreateRectangleGeometry(r)
	if err != nil {
		t.Fatalf("CreateRectangleGeometry() error = %v", err)
	}
	t.Cleanup(g.Release)
	return g
}

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

// isField reports whether err is a *FieldError for field wrapping want.
func isField(err error, field string, want error) bool {
	var fe *FieldError
	return errors.As(err, &fe) && fe.Field == field && errors.Is(err, want)
}
