package native

import (
	"slices"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/math2d"
)

// brush holds the state shared by every brush. Brushes belong to the
// domain of the render target that created them.
type brush struct {
	resource
	dom       *domain
	opacity   float32
	transform math2d.Matrix3x2F
	// shade builds the shader for one drawing call; toDevice maps brush
	// space to device pixels.
	shade func(toDevice path.Affine) shader
}

func (b *brush) brushBase() *brush { return b }

func (b *brush) initBrush(self com.Unknown, f *factory, dom *domain, props *BrushProperties, destroy func(), iids ...com.IID) {
	b.dom = dom
	b.opacity = 1
	b.transform = math2d.Identity()
	if props != nil {
		b.opacity = props.Opacity
		b.transform = props.Transform
	}
	b.initResource(self, f, destroy, append(iids, IIDBrush)...)
}

func (b *brush) SetOpacity(opacity float32)       { b.opacity = opacity }
func (b *brush) SetTransform(m math2d.Matrix3x2F) { b.transform = m }
func (b *brush) GetOpacity() float32              { return b.opacity }
func (b *brush) GetTransform() math2d.Matrix3x2F  { return b.transform }

func validBrushProperties(props *BrushProperties) bool {
	return props == nil || validFloat(props.Opacity)
}

type solidColorBrush struct {
	brush
	color math2d.ColorF
}

func newSolidColorBrush(f *factory, dom *domain, c math2d.ColorF, props *BrushProperties) *solidColorBrush {
	b := &solidColorBrush{color: c}
	b.shade = func(path.Affine) shader { return newSolidShader(b.color, b.opacity) }
	b.initBrush(b, f, dom, props, nil, IIDSolidColorBrush)
	return b
}

func (b *solidColorBrush) SetColor(c math2d.ColorF) { b.color = c }
func (b *solidColorBrush) GetColor() math2d.ColorF  { return b.color }

type gradientStopCollection struct {
	resource
	dom    *domain
	stops  []GradientStop
	gamma  Gamma
	extend ExtendMode
	ramp   *ramp
}

func newGradientStopCollection(f *factory, dom *domain, stops []GradientStop, gamma Gamma, extend ExtendMode) (*gradientStopCollection, com.Status) {
	if len(stops) == 0 || gamma > Gamma1_0 || extend > ExtendModeMirror {
		return nil, com.InvalidArg
	}
	for _, s := range stops {
		if !validFloat(s.Position) {
			return nil, com.InvalidArg
		}
	}
	sorted := slices.Clone(stops)
	slices.SortStableFunc(sorted, func(a, b GradientStop) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})
	c := &gradientStopCollection{dom: dom, stops: sorted, gamma: gamma, extend: extend}
	c.ramp = newRamp(sorted, gamma)
	c.initResource(c, f, nil, IIDGradientStopCollection)
	return c, com.OK
}

func (c *gradientStopCollection) GetGradientStopCount() uint32 { return uint32(len(c.stops)) }

func (c *gradientStopCollection) GetGradientStops() []GradientStop {
	return slices.Clone(c.stops)
}

func (c *gradientStopCollection) GetColorInterpolationGamma() Gamma { return c.gamma }
func (c *gradientStopCollection) GetExtendMode() ExtendMode         { return c.extend }

type linearGradientBrush struct {
	brush
	props LinearGradientBrushProperties
	stops *gradientStopCollection
}

func newLinearGradientBrush(f *factory, dom *domain, lprops LinearGradientBrushProperties, props *BrushProperties, stops *gradientStopCollection) *linearGradientBrush {
	stops.AddRef()
	b := &linearGradientBrush{props: lprops, stops: stops}
	b.shade = func(toDevice path.Affine) shader {
		return newLinearShader(toDevice, b.props, b.stops, b.opacity)
	}
	b.initBrush(b, f, dom, props, func() { stops.Release() }, IIDLinearGradientBrush)
	return b
}

func (b *linearGradientBrush) SetStartPoint(p math2d.Point2F) { b.props.StartPoint = p }
func (b *linearGradientBrush) SetEndPoint(p math2d.Point2F)   { b.props.EndPoint = p }
func (b *linearGradientBrush) GetStartPoint() math2d.Point2F  { return b.props.StartPoint }
func (b *linearGradientBrush) GetEndPoint() math2d.Point2F    { return b.props.EndPoint }

func (b *linearGradientBrush) GetGradientStopCollection() GradientStopCollection {
	b.stops.AddRef()
	return b.stops
}

type radialGradientBrush struct {
	brush
	props RadialGradientBrushProperties
	stops *gradientStopCollection
}

func newRadialGradientBrush(f *factory, dom *domain, rprops RadialGradientBrushProperties, props *BrushProperties, stops *gradientStopCollection) *radialGradientBrush {
	stops.AddRef()
	b := &radialGradientBrush{props: rprops, stops: stops}
	b.shade = func(toDevice path.Affine) shader {
		return newRadialShader(toDevice, b.props, b.stops, b.opacity)
	}
	b.initBrush(b, f, dom, props, func() { stops.Release() }, IIDRadialGradientBrush)
	return b
}

func (b *radialGradientBrush) SetCenter(p math2d.Point2F)               { b.props.Center = p }
func (b *radialGradientBrush) SetGradientOriginOffset(p math2d.Point2F) { b.props.GradientOriginOffset = p }
func (b *radialGradientBrush) SetRadiusX(r float32)                     { b.props.RadiusX = r }
func (b *radialGradientBrush) SetRadiusY(r float32)                     { b.props.RadiusY = r }
func (b *radialGradientBrush) GetCenter() math2d.Point2F                { return b.props.Center }
func (b *radialGradientBrush) GetGradientOriginOffset() math2d.Point2F  { return b.props.GradientOriginOffset }
func (b *radialGradientBrush) GetRadiusX() float32                      { return b.props.RadiusX }
func (b *radialGradientBrush) GetRadiusY() float32                      { return b.props.RadiusY }

func (b *radialGradientBrush) GetGradientStopCollection() GradientStopCollection {
	b.stops.AddRef()
	return b.stops
}

type bitmapBrush struct {
	brush
	props  BitmapBrushProperties
	bitmap *bitmap
}

func newBitmapBrush(f *factory, dom *domain, bmp *bitmap, bprops *BitmapBrushProperties, props *BrushProperties) *bitmapBrush {
	b := &bitmapBrush{}
	if bprops != nil {
		b.props = *bprops
	}
	b.setBitmap(bmp)
	b.shade = func(toDevice path.Affine) shader {
		if b.bitmap == nil {
			return nil
		}
		return newBitmapShader(toDevice, b.bitmap, b.props, b.opacity)
	}
	b.initBrush(b, f, dom, props, func() { b.setBitmap(nil) }, IIDBitmapBrush)
	return b
}

func (b *bitmapBrush) setBitmap(bmp *bitmap) {
	if bmp != nil {
		bmp.AddRef()
	}
	if b.bitmap != nil {
		b.bitmap.Release()
	}
	b.bitmap = bmp
}

func (b *bitmapBrush) SetExtendModeX(m ExtendMode)                    { b.props.ExtendModeX = m }
func (b *bitmapBrush) SetExtendModeY(m ExtendMode)                    { b.props.ExtendModeY = m }
func (b *bitmapBrush) SetInterpolationMode(m BitmapInterpolationMode) { b.props.InterpolationMode = m }
func (b *bitmapBrush) GetExtendModeX() ExtendMode                     { return b.props.ExtendModeX }
func (b *bitmapBrush) GetExtendModeY() ExtendMode                     { return b.props.ExtendModeY }
func (b *bitmapBrush) GetInterpolationMode() BitmapInterpolationMode  { return b.props.InterpolationMode }

// SetBitmap replaces the brush's bitmap. Bitmaps from other engines are
// ignored.
func (b *bitmapBrush) SetBitmap(bmp Bitmap) {
	if bmp == nil {
		b.setBitmap(nil)
		return
	}
	if own, ok := bmp.(*bitmap); ok {
		b.setBitmap(own)
	}
}

func (b *bitmapBrush) GetBitmap() Bitmap {
	if b.bitmap == nil {
		return nil
	}
	b.bitmap.AddRef()
	return b.bitmap
}
