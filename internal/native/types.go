package native

import (
	"github.com/gogpu/d2d/math2d"
)

// BezierSegment is a cubic Bézier segment starting at the current point.
type BezierSegment struct {
	Point1, Point2, Point3 math2d.Point2F
}

// QuadraticBezierSegment is a quadratic Bézier segment starting at the
// current point.
type QuadraticBezierSegment struct {
	Point1, Point2 math2d.Point2F
}

// ArcSegment is an elliptical arc from the current point to Point.
type ArcSegment struct {
	Point          math2d.Point2F
	Size           math2d.SizeF
	RotationAngle  float32 // degrees
	SweepDirection SweepDirection
	ArcSize        ArcSize
}

// GradientStop is a color at a position in [0,1] of a gradient.
type GradientStop struct {
	Position float32
	Color    math2d.ColorF
}

// BrushProperties are the properties shared by every brush.
type BrushProperties struct {
	Opacity   float32
	Transform math2d.Matrix3x2F
}

// LinearGradientBrushProperties are the end points of a linear gradient.
type LinearGradientBrushProperties struct {
	StartPoint, EndPoint math2d.Point2F
}

// RadialGradientBrushProperties describe the ellipse of a radial gradient.
// GradientOriginOffset is relative to Center.
type RadialGradientBrushProperties struct {
	Center               math2d.Point2F
	GradientOriginOffset math2d.Point2F
	RadiusX, RadiusY     float32
}

// BitmapBrushProperties describe how a bitmap brush tiles and samples.
type BitmapBrushProperties struct {
	ExtendModeX       ExtendMode
	ExtendModeY       ExtendMode
	InterpolationMode BitmapInterpolationMode
}

// StrokeStyleProperties describe the caps, joins and dashes of a stroke.
type StrokeStyleProperties struct {
	StartCap   CapStyle
	EndCap     CapStyle
	DashCap    CapStyle
	LineJoin   LineJoin
	MiterLimit float32
	DashStyle  DashStyle
	DashOffset float32
}

// PixelFormat is a memory layout together with its alpha interpretation.
type PixelFormat struct {
	Format    Format
	AlphaMode AlphaMode
}

// BitmapProperties describe a new bitmap. A zero DPI means 96.
type BitmapProperties struct {
	PixelFormat PixelFormat
	DpiX, DpiY  float32
	Options     BitmapOptions
}

// RenderTargetProperties describe a new render target. A zero DPI means
// the factory's desktop DPI.
type RenderTargetProperties struct {
	Type        RenderTargetType
	PixelFormat PixelFormat
	DpiX, DpiY  float32
	Usage       RenderTargetUsage
	MinLevel    FeatureLevel
}

// WindowRenderTargetProperties bind a render target to a window.
// A zero PixelSize means the window's client size.
type WindowRenderTargetProperties struct {
	Window         Window
	PixelSize      math2d.SizeU
	PresentOptions PresentOptions
}

// LayerParameters describe the content of a pushed layer.
type LayerParameters struct {
	ContentBounds     math2d.RectF
	GeometricMask     Geometry
	MaskAntialiasMode AntialiasMode
	MaskTransform     math2d.Matrix3x2F
	Opacity           float32
	OpacityBrush      Brush
	LayerOptions      LayerOptions
}

// MappedRect is the memory of a mapped bitmap.
type MappedRect struct {
	Pitch uint32
	Bits  []byte
}

// TextFormatProperties describe a new text format. Nil FontData selects
// the built-in font.
type TextFormatProperties struct {
	FontData           []byte
	FontSize           float32
	TextAlignment      TextAlignment
	ParagraphAlignment ParagraphAlignment
	WordWrapping       WordWrapping
	ReadingDirection   ReadingDirection
	// LineSpacing is the distance between baselines. Zero uses the font's
	// line height.
	LineSpacing float32
}

// DeviceCapabilities describes what a device can do.
type DeviceCapabilities struct {
	// MaxTextureSize is the largest bitmap width or height.
	MaxTextureSize uint32
	// SurfaceFormat is the format bitmaps default to.
	SurfaceFormat Format
	// Software is set when the host supplied no GPU device or a software
	// adapter.
	Software bool
}
