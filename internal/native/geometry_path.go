package native

import (
	"sync"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/math2d"
)

type pathState uint8

const (
	pathEmpty pathState = iota
	pathOpen
	pathClosed
)

type pathGeometry struct {
	geometry

	mu       sync.Mutex
	state    pathState
	mode     FillMode
	figs     []path.Figure
	segments uint32
}

func newPathGeometry(f *factory) *pathGeometry {
	g := &pathGeometry{}
	g.outline = func() ([]path.Figure, FillMode, com.Status) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.state != pathClosed {
			return nil, g.mode, com.WrongState
		}
		return g.figs, g.mode, com.OK
	}
	g.initResource(g, f, nil, IIDGeometry, IIDPathGeometry)
	return g
}

// Open returns the sink describing g. A path can be opened only once.
func (g *pathGeometry) Open() (GeometrySink, com.Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != pathEmpty {
		return nil, com.WrongState
	}
	g.state = pathOpen
	return newGeometrySink(g), com.OK
}

func (g *pathGeometry) Stream(sink GeometrySink) com.Status {
	if sink == nil {
		return com.InvalidArg
	}
	figs, mode, st := g.outline()
	if st.Failed() {
		return st
	}
	sink.SetFillMode(mode)
	for _, f := range figs {
		sink.BeginFigure(fromPath(f.Start), figureBegin(f.Filled))
		for _, s := range f.Segments {
			switch s.Kind {
			case path.Line:
				sink.AddLine(fromPath(s.P[0]))
			case path.Quad:
				sink.AddQuadraticBezier(QuadraticBezierSegment{Point1: fromPath(s.P[0]), Point2: fromPath(s.P[1])})
			case path.Cubic:
				sink.AddBezier(BezierSegment{Point1: fromPath(s.P[0]), Point2: fromPath(s.P[1]), Point3: fromPath(s.P[2])})
			}
		}
		sink.EndFigure(figureEnd(f.Closed))
	}
	return com.OK
}

func (g *pathGeometry) GetSegmentCount() (uint32, com.Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != pathClosed {
		return 0, com.WrongState
	}
	return g.segments, com.OK
}

func (g *pathGeometry) GetFigureCount() (uint32, com.Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != pathClosed {
		return 0, com.WrongState
	}
	return uint32(len(g.figs)), com.OK
}

// commit stores the figures described by a sink. A failed sink leaves the
// path closed and unusable.
func (g *pathGeometry) commit(mode FillMode, figs []path.Figure, segments uint32, st com.Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = pathClosed
	if st.Failed() {
		return
	}
	g.mode, g.figs, g.segments = mode, figs, segments
}

type sinkState uint8

const (
	sinkReady sinkState = iota
	sinkInFigure
	sinkClosed
)

// geometrySink records figures for a path geometry. Misuse is remembered
// and reported by Close.
type geometrySink struct {
	object
	path *pathGeometry

	state    sinkState
	err      com.Status
	mode     FillMode
	flags    PathSegment
	figs     []path.Figure
	cur      path.Figure
	segments uint32
}

func (s *geometrySink) lock() func() { return s.path.lock() }

func newGeometrySink(g *pathGeometry) *geometrySink {
	g.AddRef()
	s := &geometrySink{path: g}
	s.init(s, func() {
		if s.state != sinkClosed {
			g.commit(0, nil, 0, com.WrongState)
		}
		g.Release()
	}, IIDSimplifiedGeometrySink, IIDGeometrySink)
	return s
}

func (s *geometrySink) fail(st com.Status) {
	if s.err.Succeeded() {
		s.err = st
	}
}

// inFigure reports whether a segment may be added now.
func (s *geometrySink) inFigure() bool {
	if s.state != sinkInFigure {
		s.fail(com.WrongState)
		return false
	}
	return true
}

func (s *geometrySink) SetFillMode(mode FillMode) {
	switch {
	case s.state != sinkReady || len(s.figs) > 0:
		s.fail(com.WrongState)
	case mode > FillModeWinding:
		s.fail(com.InvalidArg)
	default:
		s.mode = mode
	}
}

// SetSegmentFlags records flags for the following segments. The software
// engine strokes every segment and honours the figure's line join.
func (s *geometrySink) SetSegmentFlags(flags PathSegment) {
	if s.state == sinkClosed {
		s.fail(com.WrongState)
		return
	}
	s.flags = flags
}

func (s *geometrySink) BeginFigure(start math2d.Point2F, begin FigureBegin) {
	if s.state != sinkReady {
		s.fail(com.WrongState)
		return
	}
	s.cur = path.Figure{Start: toPath(start), Filled: begin == FigureBeginFilled}
	s.state = sinkInFigure
}

func (s *geometrySink) AddLine(point math2d.Point2F) {
	if s.inFigure() {
		s.cur.Segments = append(s.cur.Segments, path.LineSeg(toPath(point)))
		s.segments++
	}
}

func (s *geometrySink) AddLines(points []math2d.Point2F) {
	for _, p := range points {
		s.AddLine(p)
	}
}

func (s *geometrySink) AddBezier(b BezierSegment) {
	if s.inFigure() {
		s.cur.Segments = append(s.cur.Segments, path.CubicSeg(toPath(b.Point1), toPath(b.Point2), toPath(b.Point3)))
		s.segments++
	}
}

func (s *geometrySink) AddBeziers(beziers []BezierSegment) {
	for _, b := range beziers {
		s.AddBezier(b)
	}
}

func (s *geometrySink) AddQuadraticBezier(b QuadraticBezierSegment) {
	if s.inFigure() {
		s.cur.Segments = append(s.cur.Segments, path.QuadSeg(toPath(b.Point1), toPath(b.Point2)))
		s.segments++
	}
}

func (s *geometrySink) AddQuadraticBeziers(beziers []QuadraticBezierSegment) {
	for _, b := range beziers {
		s.AddQuadraticBezier(b)
	}
}

func (s *geometrySink) AddArc(arc ArcSegment) {
	if !s.inFigure() {
		return
	}
	p0 := s.cur.End()
	p1 := toPath(arc.Point)
	segs := path.ArcToCubics(p0, p1,
		float64(arc.Size.Width), float64(arc.Size.Height), float64(arc.RotationAngle),
		arc.SweepDirection == SweepDirectionClockwise, arc.ArcSize == ArcSizeLarge)
	s.cur.Segments = append(s.cur.Segments, segs...)
	s.segments++
}

func (s *geometrySink) EndFigure(end FigureEnd) {
	if s.state != sinkInFigure {
		s.fail(com.WrongState)
		return
	}
	s.cur.Closed = end == FigureEndClosed
	s.figs = append(s.figs, s.cur)
	s.cur = path.Figure{}
	s.state = sinkReady
}

// Close finishes the path. It reports the first misuse of the sink; a
// figure left open is a misuse.
func (s *geometrySink) Close() com.Status {
	if s.state == sinkClosed {
		return com.WrongState
	}
	if s.state == sinkInFigure {
		s.fail(com.WrongState)
	}
	s.state = sinkClosed
	s.path.commit(s.mode, s.figs, s.segments, s.err)
	return s.err
}
