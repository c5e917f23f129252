package native

import (
	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/internal/stroke"
)

// Dash patterns of the predefined dash styles, in multiples of the stroke
// width.
var dashPatterns = map[DashStyle][]float64{
	DashStyleDash:       {2, 2},
	DashStyleDot:        {0, 2},
	DashStyleDashDot:    {2, 2, 0, 2},
	DashStyleDashDotDot: {2, 2, 0, 2, 0, 2},
}

type strokeStyle struct {
	resource
	props  StrokeStyleProperties
	dashes []float32
}

func newStrokeStyle(f *factory, props StrokeStyleProperties, dashes []float32) (*strokeStyle, com.Status) {
	if props.StartCap > CapStyleTriangle || props.EndCap > CapStyleTriangle || props.DashCap > CapStyleTriangle ||
		props.LineJoin > LineJoinMiterOrBevel || props.DashStyle > DashStyleCustom {
		return nil, com.InvalidArg
	}
	if !validFloat(props.MiterLimit) || !validFloat(props.DashOffset) {
		return nil, com.InvalidArg
	}
	if props.MiterLimit < 1 {
		props.MiterLimit = 1
	}
	if props.DashStyle == DashStyleCustom {
		if len(dashes) == 0 {
			return nil, com.InvalidArg
		}
		for _, d := range dashes {
			if !(d >= 0) || !validFloat(d) {
				return nil, com.InvalidArg
			}
		}
	} else if len(dashes) > 0 {
		return nil, com.InvalidArg
	}

	s := &strokeStyle{props: props, dashes: append([]float32(nil), dashes...)}
	s.initResource(s, f, nil, IIDStrokeStyle)
	return s, com.OK
}

func (s *strokeStyle) GetStartCap() CapStyle   { return s.props.StartCap }
func (s *strokeStyle) GetEndCap() CapStyle     { return s.props.EndCap }
func (s *strokeStyle) GetDashCap() CapStyle    { return s.props.DashCap }
func (s *strokeStyle) GetMiterLimit() float32  { return s.props.MiterLimit }
func (s *strokeStyle) GetLineJoin() LineJoin   { return s.props.LineJoin }
func (s *strokeStyle) GetDashOffset() float32  { return s.props.DashOffset }
func (s *strokeStyle) GetDashStyle() DashStyle { return s.props.DashStyle }
func (s *strokeStyle) GetDashesCount() uint32  { return uint32(len(s.dashes)) }

func (s *strokeStyle) GetDashes() []float32 {
	return append([]float32(nil), s.dashes...)
}

var capStyles = [...]stroke.Cap{
	CapStyleFlat:     stroke.CapFlat,
	CapStyleSquare:   stroke.CapSquare,
	CapStyleRound:    stroke.CapRound,
	CapStyleTriangle: stroke.CapTriangle,
}

var lineJoins = [...]stroke.Join{
	LineJoinMiter:        stroke.JoinMiter,
	LineJoinBevel:        stroke.JoinBevel,
	LineJoinRound:        stroke.JoinRound,
	LineJoinMiterOrBevel: stroke.JoinMiterOrBevel,
}

// pen is a stroke width combined with a resolved stroke style.
type pen struct {
	style                  stroke.Style
	startCap, endCap, dash stroke.Cap
	dashes                 []float64
	dashOffset             float64
}

// newPen resolves style for strokes of the given width. A nil style is
// a solid line with flat caps and miter joins.
func newPen(width float32, style StrokeStyle, tol float64) (pen, com.Status) {
	w := float64(width)
	p := pen{style: stroke.Style{
		Width:      w,
		Join:       stroke.JoinMiter,
		MiterLimit: stroke.DefaultMiterLimit,
		Tolerance:  tol,
	}}
	if style == nil {
		return p, com.OK
	}
	s, ok := style.(*strokeStyle)
	if !ok {
		return pen{}, com.InvalidArg
	}
	p.startCap = capStyles[s.props.StartCap]
	p.endCap = capStyles[s.props.EndCap]
	p.dash = capStyles[s.props.DashCap]
	p.style.Join = lineJoins[s.props.LineJoin]
	p.style.MiterLimit = float64(s.props.MiterLimit)

	var pattern []float64
	if s.props.DashStyle == DashStyleCustom {
		pattern = make([]float64, len(s.dashes))
		for i, d := range s.dashes {
			pattern[i] = float64(d)
		}
	} else {
		pattern = dashPatterns[s.props.DashStyle]
	}
	if len(pattern) > 0 {
		p.dashes = make([]float64, len(pattern))
		for i, d := range pattern {
			p.dashes[i] = d * w
		}
		p.dashOffset = float64(s.props.DashOffset) * w
	}
	return p, com.OK
}

// stroke returns the polygons covering the stroke of cs. Their union
// under the non-zero rule is the stroke.
func (p pen) stroke(cs []path.Contour) [][]path.Point {
	lines := make([]stroke.Polyline, 0, len(cs))
	for _, c := range cs {
		if len(c.Points) == 0 {
			continue
		}
		pts := make([]stroke.Point, len(c.Points))
		for i, pt := range c.Points {
			pts[i] = stroke.Point(pt)
		}
		lines = append(lines, stroke.Polyline{Points: pts, Closed: c.Closed, StartCap: p.startCap, EndCap: p.endCap})
	}
	if len(p.dashes) > 0 {
		lines = stroke.Dash(lines, p.dashes, p.dashOffset, p.dash)
	}
	polys := stroke.Expand(lines, p.style)
	out := make([][]path.Point, len(polys))
	for i, poly := range polys {
		q := make([]path.Point, len(poly))
		for j, pt := range poly {
			q[j] = path.Point(pt)
		}
		out[i] = q
	}
	return out
}
