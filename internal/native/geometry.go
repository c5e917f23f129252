package native

import (
	"math"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/math2d"
)

// geometry implements the operations shared by every geometry on top of
// the figures produced by outline.
type geometry struct {
	resource
	outline func() ([]path.Figure, FillMode, com.Status)
}

func (g *geometry) base() *geometry { return g }

// flatten returns the figures of g transformed by m and flattened.
func (g *geometry) flatten(m *math2d.Matrix3x2F, tol float64) ([]path.Contour, FillMode, com.Status) {
	figs, mode, st := g.outline()
	if st.Failed() {
		return nil, mode, st
	}
	return path.Flatten(figs, affineOf(m), tol), mode, com.OK
}

// widen returns the stroke polygons of g after transformation by m.
// The pen is not transformed.
func (g *geometry) widen(width float32, style StrokeStyle, m *math2d.Matrix3x2F, tol float64) ([][]path.Point, com.Status) {
	if !(width >= 0) || !validFloat(width) {
		return nil, com.InvalidArg
	}
	pen, st := newPen(width, style, tol)
	if st.Failed() {
		return nil, st
	}
	cs, _, st := g.flatten(m, tol)
	if st.Failed() {
		return nil, st
	}
	return pen.stroke(cs), com.OK
}

func (g *geometry) GetBounds(m *math2d.Matrix3x2F) (math2d.RectF, com.Status) {
	cs, _, st := g.flatten(m, 0.001)
	if st.Failed() {
		return math2d.RectF{}, st
	}
	return boundsOf(cs), com.OK
}

func (g *geometry) GetWidenedBounds(width float32, style StrokeStyle, m *math2d.Matrix3x2F, tolerance float32) (math2d.RectF, com.Status) {
	tol, ok := validTolerance(tolerance)
	if !ok {
		return math2d.RectF{}, com.InvalidArg
	}
	polys, st := g.widen(width, style, m, tol)
	if st.Failed() {
		return math2d.RectF{}, st
	}
	return boundsOf(polygonContours(polys)), com.OK
}

func (g *geometry) StrokeContainsPoint(pt math2d.Point2F, width float32, style StrokeStyle, m *math2d.Matrix3x2F, tolerance float32) (bool, com.Status) {
	tol, ok := validTolerance(tolerance)
	if !ok {
		return false, com.InvalidArg
	}
	polys, st := g.widen(width, style, m, tol)
	if st.Failed() {
		return false, st
	}
	cs := polygonContours(polys)
	p := toPath(pt)
	return path.Contains(cs, p, false) || path.Distance(cs, p) < tol, com.OK
}

func (g *geometry) FillContainsPoint(pt math2d.Point2F, m *math2d.Matrix3x2F, tolerance float32) (bool, com.Status) {
	tol, ok := validTolerance(tolerance)
	if !ok {
		return false, com.InvalidArg
	}
	cs, mode, st := g.flatten(m, tol)
	if st.Failed() {
		return false, st
	}
	p := toPath(pt)
	if path.Contains(cs, p, mode == FillModeAlternate) {
		return true, com.OK
	}
	return path.Distance(filledOnly(cs), p) < tol, com.OK
}

func (g *geometry) ComputeArea(m *math2d.Matrix3x2F, tolerance float32) (float32, com.Status) {
	tol, ok := validTolerance(tolerance)
	if !ok {
		return 0, com.InvalidArg
	}
	cs, mode, st := g.flatten(m, tol)
	if st.Failed() {
		return 0, st
	}
	return float32(path.Area(cs, mode == FillModeAlternate)), com.OK
}

func (g *geometry) ComputeLength(m *math2d.Matrix3x2F, tolerance float32) (float32, com.Status) {
	tol, ok := validTolerance(tolerance)
	if !ok {
		return 0, com.InvalidArg
	}
	cs, _, st := g.flatten(m, tol)
	if st.Failed() {
		return 0, st
	}
	return float32(path.Length(cs)), com.OK
}

func (g *geometry) ComputePointAtLength(length float32, m *math2d.Matrix3x2F, tolerance float32) (math2d.Point2F, math2d.Vector2F, com.Status) {
	tol, ok := validTolerance(tolerance)
	if !ok || !validFloat(length) {
		return math2d.Point2F{}, math2d.Vector2F{}, com.InvalidArg
	}
	cs, _, st := g.flatten(m, tol)
	if st.Failed() {
		return math2d.Point2F{}, math2d.Vector2F{}, st
	}
	pt, tan, ok := path.PointAtLength(cs, float64(length))
	if !ok {
		return math2d.Point2F{}, math2d.Vector2F{}, com.InvalidArg
	}
	return fromPath(pt), math2d.Vector2F{X: float32(tan.X), Y: float32(tan.Y)}, com.OK
}

func (g *geometry) Simplify(option GeometrySimplificationOption, m *math2d.Matrix3x2F, tolerance float32, sink SimplifiedGeometrySink) com.Status {
	tol, ok := validTolerance(tolerance)
	if !ok || sink == nil || option > GeometrySimplificationOptionLines {
		return com.InvalidArg
	}
	figs, mode, st := g.outline()
	if st.Failed() {
		return st
	}
	figs = path.TransformAll(figs, affineOf(m))

	sink.SetFillMode(mode)
	for _, f := range figs {
		sink.BeginFigure(fromPath(f.Start), figureBegin(f.Filled))
		if option == GeometrySimplificationOptionLines {
			c := path.Flatten([]path.Figure{f}, path.Identity(), tol)[0]
			if len(c.Points) > 1 {
				sink.AddLines(pointsOf(c.Points[1:]))
			}
		} else {
			emitCubicsAndLines(sink, f)
		}
		sink.EndFigure(figureEnd(f.Closed))
	}
	return com.OK
}

// emitCubicsAndLines writes the segments of f to sink, batching runs of
// lines and runs of curves. Quadratic segments are elevated to cubics.
func emitCubicsAndLines(sink SimplifiedGeometrySink, f path.Figure) {
	var lines []math2d.Point2F
	var curves []BezierSegment
	flush := func() {
		if len(lines) > 0 {
			sink.AddLines(lines)
			lines = nil
		}
		if len(curves) > 0 {
			sink.AddBeziers(curves)
			curves = nil
		}
	}
	cur := f.Start
	for _, s := range f.Segments {
		switch s.Kind {
		case path.Line:
			if len(curves) > 0 {
				flush()
			}
			lines = append(lines, fromPath(s.P[0]))
		default:
			if len(lines) > 0 {
				flush()
			}
			if s.Kind == path.Quad {
				s = path.QuadToCubic(cur, s)
			}
			curves = append(curves, BezierSegment{
				Point1: fromPath(s.P[0]),
				Point2: fromPath(s.P[1]),
				Point3: fromPath(s.P[2]),
			})
		}
		cur = s.End()
	}
	flush()
}

func (g *geometry) Widen(width float32, style StrokeStyle, m *math2d.Matrix3x2F, tolerance float32, sink SimplifiedGeometrySink) com.Status {
	tol, ok := validTolerance(tolerance)
	if !ok || sink == nil {
		return com.InvalidArg
	}
	polys, st := g.widen(width, style, m, tol)
	if st.Failed() {
		return st
	}
	sink.SetFillMode(FillModeWinding)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		sink.BeginFigure(fromPath(poly[0]), FigureBeginFilled)
		sink.AddLines(pointsOf(poly[1:]))
		sink.EndFigure(FigureEndClosed)
	}
	return com.OK
}

func figureBegin(filled bool) FigureBegin {
	if filled {
		return FigureBeginFilled
	}
	return FigureBeginHollow
}

func figureEnd(closed bool) FigureEnd {
	if closed {
		return FigureEndClosed
	}
	return FigureEndOpen
}

func pointsOf(pts []path.Point) []math2d.Point2F {
	out := make([]math2d.Point2F, len(pts))
	for i, p := range pts {
		out[i] = fromPath(p)
	}
	return out
}

func polygonContours(polys [][]path.Point) []path.Contour {
	cs := make([]path.Contour, len(polys))
	for i, p := range polys {
		cs[i] = path.Contour{Points: p, Closed: true, Filled: true}
	}
	return cs
}

func filledOnly(cs []path.Contour) []path.Contour {
	out := make([]path.Contour, 0, len(cs))
	for _, c := range cs {
		if c.Filled {
			c.Closed = true
			out = append(out, c)
		}
	}
	return out
}

type rectangleGeometry struct {
	geometry
	rect math2d.RectF
}

func newRectangleGeometry(f *factory, r math2d.RectF) *rectangleGeometry {
	g := &rectangleGeometry{rect: r}
	g.outline = func() ([]path.Figure, FillMode, com.Status) {
		return []path.Figure{path.RectFigure(float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom))}, FillModeAlternate, com.OK
	}
	g.initResource(g, f, nil, IIDGeometry, IIDRectangleGeometry)
	return g
}

func (g *rectangleGeometry) GetRect() math2d.RectF { return g.rect }

type roundedRectangleGeometry struct {
	geometry
	rr math2d.RoundedRect
}

func newRoundedRectangleGeometry(f *factory, rr math2d.RoundedRect) *roundedRectangleGeometry {
	g := &roundedRectangleGeometry{rr: rr}
	g.outline = func() ([]path.Figure, FillMode, com.Status) {
		return []path.Figure{roundedRectFigure(rr)}, FillModeAlternate, com.OK
	}
	g.initResource(g, f, nil, IIDGeometry, IIDRoundedRectangleGeometry)
	return g
}

func (g *roundedRectangleGeometry) GetRoundedRect() math2d.RoundedRect { return g.rr }

func roundedRectFigure(rr math2d.RoundedRect) path.Figure {
	r := rr.Rect
	return path.RoundedRectFigure(float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom),
		float64(rr.RadiusX), float64(rr.RadiusY))
}

type ellipseGeometry struct {
	geometry
	e math2d.Ellipse
}

func newEllipseGeometry(f *factory, e math2d.Ellipse) *ellipseGeometry {
	g := &ellipseGeometry{e: e}
	g.outline = func() ([]path.Figure, FillMode, com.Status) {
		return []path.Figure{ellipseFigure(e)}, FillModeAlternate, com.OK
	}
	g.initResource(g, f, nil, IIDGeometry, IIDEllipseGeometry)
	return g
}

func (g *ellipseGeometry) GetEllipse() math2d.Ellipse { return g.e }

func ellipseFigure(e math2d.Ellipse) path.Figure {
	return path.EllipseFigure(float64(e.Center.X), float64(e.Center.Y),
		math.Abs(float64(e.RadiusX)), math.Abs(float64(e.RadiusY)))
}

type geometryGroup struct {
	geometry
	mode     FillMode
	sources  []Geometry
	children []*geometry
}

func newGeometryGroup(f *factory, mode FillMode, sources []Geometry, children []*geometry) *geometryGroup {
	g := &geometryGroup{mode: mode, sources: append([]Geometry(nil), sources...), children: children}
	for _, s := range g.sources {
		s.AddRef()
	}
	g.outline = func() ([]path.Figure, FillMode, com.Status) {
		var figs []path.Figure
		for _, c := range g.children {
			cf, _, st := c.outline()
			if st.Failed() {
				return nil, mode, st
			}
			figs = append(figs, cf...)
		}
		return figs, mode, com.OK
	}
	g.initResource(g, f, func() {
		for _, s := range g.sources {
			s.Release()
		}
	}, IIDGeometry, IIDGeometryGroup)
	return g
}

func (g *geometryGroup) GetFillMode() FillMode { return g.mode }

func (g *geometryGroup) GetSourceGeometryCount() uint32 { return uint32(len(g.sources)) }

func (g *geometryGroup) GetSourceGeometries() []Geometry {
	out := make([]Geometry, len(g.sources))
	for i, s := range g.sources {
		s.AddRef()
		out[i] = s
	}
	return out
}

type transformedGeometry struct {
	geometry
	source Geometry
	m      math2d.Matrix3x2F
}

func newTransformedGeometry(f *factory, source Geometry, child *geometry, m math2d.Matrix3x2F) *transformedGeometry {
	source.AddRef()
	g := &transformedGeometry{source: source, m: m}
	g.outline = func() ([]path.Figure, FillMode, com.Status) {
		figs, mode, st := child.outline()
		if st.Failed() {
			return nil, mode, st
		}
		return path.TransformAll(figs, affine(m)), mode, com.OK
	}
	g.initResource(g, f, func() { source.Release() }, IIDGeometry, IIDTransformedGeometry)
	return g
}

func (g *transformedGeometry) GetSourceGeometry() Geometry {
	g.source.AddRef()
	return g.source
}

func (g *transformedGeometry) GetTransform() math2d.Matrix3x2F { return g.m }
