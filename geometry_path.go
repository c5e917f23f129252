package d2d

import (
	"slices"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// PathGeometry is a geometry made of figures of lines, Béziers and arcs.
//
// A path is described once: Open returns a GeometrySink, and after the
// sink is closed the path is immutable and cannot be opened again.
//
// Example:
//
//	p, _ := f.CreatePathGeometry()
//	sink, _ := p.Open()
//	sink.BeginFigure(math2d.Pt(0, 0), d2d.FigureBeginFilled)
//	sink.AddLines([]math2d.Point2F{{X: 10, Y: 0}, {X: 10, Y: 10}})
//	sink.EndFigure(d2d.FigureEndClosed)
//	err := sink.Close()
//	sink.Release()
type PathGeometry struct {
	geometryOps[native.PathGeometry]
}

func (g *PathGeometry) Clone() *PathGeometry { return &PathGeometry{newGeometry(g.clone())} }

// Open returns the sink describing the path. It fails with
// StatusWrongState when the path has already been opened.
func (g *PathGeometry) Open() (*GeometrySink, error) {
	defer g.lock()()
	raw, st := g.raw().Open()
	h, err := adopt("Open", raw, st)
	if err != nil {
		return nil, err
	}
	return &GeometrySink{h}, nil
}

// Stream replays the figures of a closed path into sink.
func (g *PathGeometry) Stream(sink *GeometrySink) error {
	if sink == nil {
		return &StatusError{Op: "Stream", Code: StatusInvalidArg}
	}
	defer g.lock()()
	return check("Stream", g.raw().Stream(sink.raw()))
}

// SegmentCount returns the number of segments of a closed path.
func (g *PathGeometry) SegmentCount() (int, error) {
	defer g.lock()()
	n, st := g.raw().GetSegmentCount()
	return int(n), check("GetSegmentCount", st)
}

// FigureCount returns the number of figures of a closed path.
func (g *PathGeometry) FigureCount() (int, error) {
	defer g.lock()()
	n, st := g.raw().GetFigureCount()
	return int(n), check("GetFigureCount", st)
}

// SimplifiedGeometrySink receives figures made only of lines and cubic
// Béziers, as produced by Geometry.Simplify and Geometry.Widen.
// A *GeometrySink is also a SimplifiedGeometrySink.
type SimplifiedGeometrySink interface {
	SetFillMode(mode FillMode)
	SetSegmentFlags(flags PathSegment)
	BeginFigure(start math2d.Point2F, begin FigureBegin)
	AddLines(points []math2d.Point2F)
	AddBeziers(beziers []BezierSegment)
	EndFigure(end FigureEnd)
	Close() error
}

// sinkRecorder stores what the engine writes to a simplified sink so it can
// be replayed into a SimplifiedGeometrySink later. The engine never closes
// the sink it is given.
type sinkRecorder struct {
	calls []func(SimplifiedGeometrySink)
}

func (r *sinkRecorder) add(fn func(SimplifiedGeometrySink)) { r.calls = append(r.calls, fn) }

func (r *sinkRecorder) SetFillMode(mode FillMode) {
	r.add(func(s SimplifiedGeometrySink) { s.SetFillMode(mode) })
}

func (r *sinkRecorder) SetSegmentFlags(flags PathSegment) {
	r.add(func(s SimplifiedGeometrySink) { s.SetSegmentFlags(flags) })
}

func (r *sinkRecorder) BeginFigure(start math2d.Point2F, begin FigureBegin) {
	r.add(func(s SimplifiedGeometrySink) { s.BeginFigure(start, begin) })
}

func (r *sinkRecorder) AddLines(points []math2d.Point2F) {
	points = slices.Clone(points)
	r.add(func(s SimplifiedGeometrySink) { s.AddLines(points) })
}

func (r *sinkRecorder) AddBeziers(beziers []BezierSegment) {
	beziers = slices.Clone(beziers)
	r.add(func(s SimplifiedGeometrySink) { s.AddBeziers(beziers) })
}

func (r *sinkRecorder) EndFigure(end FigureEnd) {
	r.add(func(s SimplifiedGeometrySink) { s.EndFigure(end) })
}

func (r *sinkRecorder) Close() com.Status { return com.OK }

func (r *sinkRecorder) replay(sink SimplifiedGeometrySink) {
	for _, call := range r.calls {
		call(sink)
	}
}

var _ native.SimplifiedGeometrySink = (*sinkRecorder)(nil)

// GeometrySink describes a PathGeometry.
//
// Calls must follow BeginFigure, segments, EndFigure for each figure, and
// SetFillMode may only precede the first figure. Misuse does not panic: it
// makes Close fail with StatusWrongState. Close does not release the sink.
type GeometrySink struct {
	handle[native.GeometrySink]
}

func (s *GeometrySink) SetFillMode(mode FillMode)         { set(s.handle, native.GeometrySink.SetFillMode, mode) }
func (s *GeometrySink) SetSegmentFlags(flags PathSegment) { set(s.handle, native.GeometrySink.SetSegmentFlags, flags) }

// BeginFigure starts a figure at start.
func (s *GeometrySink) BeginFigure(start math2d.Point2F, begin FigureBegin) {
	defer s.lock()()
	s.raw().BeginFigure(start, begin)
}

func (s *GeometrySink) AddLine(point math2d.Point2F)                         { set(s.handle, native.GeometrySink.AddLine, point) }
func (s *GeometrySink) AddLines(points []math2d.Point2F)                     { set(s.handle, native.GeometrySink.AddLines, points) }
func (s *GeometrySink) AddBezier(bezier BezierSegment)                       { set(s.handle, native.GeometrySink.AddBezier, bezier) }
func (s *GeometrySink) AddBeziers(beziers []BezierSegment)                   { set(s.handle, native.GeometrySink.AddBeziers, beziers) }
func (s *GeometrySink) AddQuadraticBezier(bezier QuadraticBezierSegment)     { set(s.handle, native.GeometrySink.AddQuadraticBezier, bezier) }
func (s *GeometrySink) AddQuadraticBeziers(beziers []QuadraticBezierSegment) { set(s.handle, native.GeometrySink.AddQuadraticBeziers, beziers) }

// AddArc adds an elliptical arc. It is stored as cubic Béziers.
func (s *GeometrySink) AddArc(arc ArcSegment) { set(s.handle, native.GeometrySink.AddArc, arc) }

func (s *GeometrySink) EndFigure(end FigureEnd) { set(s.handle, native.GeometrySink.EndFigure, end) }

// Close finishes the path. It reports the first misuse of the sink.
func (s *GeometrySink) Close() error {
	defer s.lock()()
	return check("Close", s.raw().Close())
}
