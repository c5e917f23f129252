package d2d

import (
	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// GradientStopCollection is an immutable, position-sorted set of gradient
// stops shared by gradient brushes.
type GradientStopCollection struct {
	resource[native.GradientStopCollection]
}

func (c *GradientStopCollection) Clone() *GradientStopCollection {
	return &GradientStopCollection{resource[native.GradientStopCollection]{c.clone()}}
}

// Stops returns a copy of the stops sorted by position.
func (c *GradientStopCollection) Stops() []GradientStop { return get(c.handle, native.GradientStopCollection.GetGradientStops) }

func (c *GradientStopCollection) Count() int {
	defer c.lock()()
	return int(c.raw().GetGradientStopCount())
}

// Gamma returns the color space the stops are interpolated in.
func (c *GradientStopCollection) Gamma() Gamma { return get(c.handle, native.GradientStopCollection.GetColorInterpolationGamma) }

func (c *GradientStopCollection) ExtendMode() ExtendMode { return get(c.handle, native.GradientStopCollection.GetExtendMode) }

// GradientStopCollectionBuilder configures a GradientStopCollection.
// Stops may be added in any order.
//
// Example:
//
//	stops, err := d2d.NewGradientStopCollectionBuilder().
//		Stop(0, math2d.Red).
//		Stop(1, math2d.Blue).
//		ExtendMode(d2d.ExtendModeMirror).
//		Build(rt)
type GradientStopCollectionBuilder struct {
	stops  []GradientStop
	gamma  Gamma
	extend ExtendMode
}

// NewGradientStopCollectionBuilder returns a builder interpolating in
// gamma 2.2 and clamping outside the stops.
func NewGradientStopCollectionBuilder() *GradientStopCollectionBuilder {
	return &GradientStopCollectionBuilder{gamma: Gamma2_2, extend: ExtendModeClamp}
}

// Stop adds a stop of color c at position pos.
func (b *GradientStopCollectionBuilder) Stop(pos float32, c math2d.ColorF) *GradientStopCollectionBuilder {
	b.stops = append(b.stops, GradientStop{Position: pos, Color: c})
	return b
}

// Stops adds several stops.
func (b *GradientStopCollectionBuilder) Stops(stops ...GradientStop) *GradientStopCollectionBuilder {
	b.stops = append(b.stops, stops...)
	return b
}

func (b *GradientStopCollectionBuilder) Gamma(g Gamma) *GradientStopCollectionBuilder {
	b.gamma = g
	return b
}

func (b *GradientStopCollectionBuilder) ExtendMode(m ExtendMode) *GradientStopCollectionBuilder {
	b.extend = m
	return b
}

// Build validates the configuration and creates the collection with rc.
func (b *GradientStopCollectionBuilder) Build(rc ResourceCreator) (*GradientStopCollection, error) {
	const name = "GradientStopCollectionBuilder"
	if len(b.stops) == 0 {
		return nil, missingField(name, "Stops")
	}
	for _, s := range b.stops {
		if !finite(s.Position) {
			return nil, invalidField(name, "Stops", "positions must be finite")
		}
	}
	if b.gamma > Gamma1_0 {
		return nil, invalidField(name, "Gamma", "unknown gamma")
	}
	if b.extend > ExtendModeMirror {
		return nil, invalidField(name, "ExtendMode", "unknown extend mode")
	}
	t := targetOf(rc)
	if t == nil {
		return nil, &StatusError{Op: "CreateGradientStopCollection", Code: StatusInvalidArg}
	}
	defer native.Lock(t)()
	raw, st := t.CreateGradientStopCollection(b.stops, b.gamma, b.extend)
	h, err := adopt("CreateGradientStopCollection", raw, st)
	if err != nil {
		return nil, err
	}
	return &GradientStopCollection{resource[native.GradientStopCollection]{h}}, nil
}

// LinearGradientBrush paints a gradient along the line from StartPoint to
// EndPoint.
type LinearGradientBrush struct {
	brushOps[native.LinearGradientBrush]
}

func (b *LinearGradientBrush) Clone() *LinearGradientBrush {
	return &LinearGradientBrush{newBrush(b.clone())}
}

func (b *LinearGradientBrush) StartPoint() math2d.Point2F     { return get(b.handle, native.LinearGradientBrush.GetStartPoint) }
func (b *LinearGradientBrush) EndPoint() math2d.Point2F       { return get(b.handle, native.LinearGradientBrush.GetEndPoint) }
func (b *LinearGradientBrush) SetStartPoint(p math2d.Point2F) { set(b.handle, native.LinearGradientBrush.SetStartPoint, p) }
func (b *LinearGradientBrush) SetEndPoint(p math2d.Point2F)   { set(b.handle, native.LinearGradientBrush.SetEndPoint, p) }

// GradientStopCollection returns the stops of the brush. The caller must
// Release the result.
func (b *LinearGradientBrush) GradientStopCollection() *GradientStopCollection {
	defer b.lock()()
	return &GradientStopCollection{resource[native.GradientStopCollection]{wrap(b.raw().GetGradientStopCollection())}}
}

// LinearGradientBrushBuilder configures a LinearGradientBrush.
type LinearGradientBrushBuilder struct {
	lprops LinearGradientBrushProperties
	stops  *GradientStopCollection
	props  brushProps
}

// NewLinearGradientBrushBuilder returns a builder for a gradient from start
// to end. Stops must be set before Build.
func NewLinearGradientBrushBuilder(start, end math2d.Point2F) *LinearGradientBrushBuilder {
	return &LinearGradientBrushBuilder{
		lprops: LinearGradientBrushProperties{StartPoint: start, EndPoint: end},
		props:  defaultBrushProps(),
	}
}

// Stops sets the gradient stops. The brush takes its own reference.
func (b *LinearGradientBrushBuilder) Stops(c *GradientStopCollection) *LinearGradientBrushBuilder {
	b.stops = c
	return b
}

func (b *LinearGradientBrushBuilder) Opacity(opacity float32) *LinearGradientBrushBuilder {
	b.props.opacity = opacity
	return b
}

func (b *LinearGradientBrushBuilder) Transform(m math2d.Matrix3x2F) *LinearGradientBrushBuilder {
	b.props.transform = m
	return b
}

// Build validates the configuration and creates the brush with rc.
func (b *LinearGradientBrushBuilder) Build(rc ResourceCreator) (*LinearGradientBrush, error) {
	const name = "LinearGradientBrushBuilder"
	if b.stops == nil {
		return nil, missingField(name, "Stops")
	}
	if err := b.props.validate(name); err != nil {
		return nil, err
	}
	t := targetOf(rc)
	if t == nil {
		return nil, &StatusError{Op: "CreateLinearGradientBrush", Code: StatusInvalidArg}
	}
	defer native.Lock(t)()
	raw, st := t.CreateLinearGradientBrush(b.lprops, b.props.native(), b.stops.raw())
	h, err := adopt("CreateLinearGradientBrush", raw, st)
	if err != nil {
		return nil, err
	}
	return &LinearGradientBrush{newBrush(h)}, nil
}

// RadialGradientBrush paints a gradient over an ellipse. The gradient
// starts at Center plus GradientOriginOffset and ends on the ellipse.
type RadialGradientBrush struct {
	brushOps[native.RadialGradientBrush]
}

func (b *RadialGradientBrush) Clone() *RadialGradientBrush {
	return &RadialGradientBrush{newBrush(b.clone())}
}

func (b *RadialGradientBrush) Center() math2d.Point2F                   { return get(b.handle, native.RadialGradientBrush.GetCenter) }
func (b *RadialGradientBrush) GradientOriginOffset() math2d.Point2F     { return get(b.handle, native.RadialGradientBrush.GetGradientOriginOffset) }
func (b *RadialGradientBrush) RadiusX() float32                         { return get(b.handle, native.RadialGradientBrush.GetRadiusX) }
func (b *RadialGradientBrush) RadiusY() float32                         { return get(b.handle, native.RadialGradientBrush.GetRadiusY) }
func (b *RadialGradientBrush) SetCenter(p math2d.Point2F)               { set(b.handle, native.RadialGradientBrush.SetCenter, p) }
func (b *RadialGradientBrush) SetGradientOriginOffset(p math2d.Point2F) { set(b.handle, native.RadialGradientBrush.SetGradientOriginOffset, p) }
func (b *RadialGradientBrush) SetRadiusX(r float32)                     { set(b.handle, native.RadialGradientBrush.SetRadiusX, r) }
func (b *RadialGradientBrush) SetRadiusY(r float32)                     { set(b.handle, native.RadialGradientBrush.SetRadiusY, r) }

// GradientStopCollection returns the stops of the brush. The caller must
// Release the result.
func (b *RadialGradientBrush) GradientStopCollection() *GradientStopCollection {
	defer b.lock()()
	return &GradientStopCollection{resource[native.GradientStopCollection]{wrap(b.raw().GetGradientStopCollection())}}
}

// RadialGradientBrushBuilder configures a RadialGradientBrush.
type RadialGradientBrushBuilder struct {
	rprops RadialGradientBrushProperties
	stops  *GradientStopCollection
	props  brushProps
}

// NewRadialGradientBrushBuilder returns a builder for a gradient over the
// ellipse at center with radii rx and ry. Stops must be set before Build.
func NewRadialGradientBrushBuilder(center math2d.Point2F, rx, ry float32) *RadialGradientBrushBuilder {
	return &RadialGradientBrushBuilder{
		rprops: RadialGradientBrushProperties{Center: center, RadiusX: rx, RadiusY: ry},
		props:  defaultBrushProps(),
	}
}

// GradientOriginOffset moves the start of the gradient relative to the
// center.
func (b *RadialGradientBrushBuilder) GradientOriginOffset(p math2d.Point2F) *RadialGradientBrushBuilder {
	b.rprops.GradientOriginOffset = p
	return b
}

// Stops sets the gradient stops. The brush takes its own reference.
func (b *RadialGradientBrushBuilder) Stops(c *GradientStopCollection) *RadialGradientBrushBuilder {
	b.stops = c
	return b
}

func (b *RadialGradientBrushBuilder) Opacity(opacity float32) *RadialGradientBrushBuilder {
	b.props.opacity = opacity
	return b
}

func (b *RadialGradientBrushBuilder) Transform(m math2d.Matrix3x2F) *RadialGradientBrushBuilder {
	b.props.transform = m
	return b
}

// Build validates the configuration and creates the brush with rc.
func (b *RadialGradientBrushBuilder) Build(rc ResourceCreator) (*RadialGradientBrush, error) {
	const name = "RadialGradientBrushBuilder"
	if b.stops == nil {
		return nil, missingField(name, "Stops")
	}
	if !finite(b.rprops.RadiusX) || b.rprops.RadiusX < 0 || !finite(b.rprops.RadiusY) || b.rprops.RadiusY < 0 {
		return nil, invalidField(name, "Radius", "radii must be finite and non-negative")
	}
	if err := b.props.validate(name); err != nil {
		return nil, err
	}
	t := targetOf(rc)
	if t == nil {
		return nil, &StatusError{Op: "CreateRadialGradientBrush", Code: StatusInvalidArg}
	}
	defer native.Lock(t)()
	raw, st := t.CreateRadialGradientBrush(b.rprops, b.props.native(), b.stops.raw())
	h, err := adopt("CreateRadialGradientBrush", raw, st)
	if err != nil {
		return nil, err
	}
	return &RadialGradientBrush{newBrush(h)}, nil
}
