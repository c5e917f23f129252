package native

import (
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/math2d"
)

// Methods returning an object hand the caller one new reference, which the
// caller must Release. Methods taking an object never consume the caller's
// reference.

// Resource is an object created by a factory.
type Resource interface {
	com.Unknown
	GetFactory() Factory
}

// Factory creates device-independent resources and render targets.
type Factory interface {
	com.Unknown
	GetType() FactoryType
	GetDesktopDpi() (dpiX, dpiY float32)
	ReloadSystemMetrics() com.Status
	CreateRectangleGeometry(r math2d.RectF) (RectangleGeometry, com.Status)
	CreateRoundedRectangleGeometry(rr math2d.RoundedRect) (RoundedRectangleGeometry, com.Status)
	CreateEllipseGeometry(e math2d.Ellipse) (EllipseGeometry, com.Status)
	CreatePathGeometry() (PathGeometry, com.Status)
	CreateGeometryGroup(mode FillMode, geometries []Geometry) (GeometryGroup, com.Status)
	CreateTransformedGeometry(source Geometry, m math2d.Matrix3x2F) (TransformedGeometry, com.Status)
	CreateStrokeStyle(props StrokeStyleProperties, dashes []float32) (StrokeStyle, com.Status)
	CreateTextFormat(props TextFormatProperties) (TextFormat, com.Status)
	CreateSurfaceRenderTarget(surface Surface, props RenderTargetProperties) (RenderTarget, com.Status)
	CreateWindowRenderTarget(props RenderTargetProperties, window WindowRenderTargetProperties) (WindowRenderTarget, com.Status)
	CreateDevice(provider gpucontext.DeviceProvider) (Device, com.Status)
}

// Geometry is a shape. A nil transform means identity; a zero flattening
// tolerance means DefaultFlatteningTolerance.
type Geometry interface {
	Resource
	GetBounds(m *math2d.Matrix3x2F) (math2d.RectF, com.Status)
	GetWidenedBounds(width float32, style StrokeStyle, m *math2d.Matrix3x2F, tolerance float32) (math2d.RectF, com.Status)
	StrokeContainsPoint(pt math2d.Point2F, width float32, style StrokeStyle, m *math2d.Matrix3x2F, tolerance float32) (bool, com.Status)
	FillContainsPoint(pt math2d.Point2F, m *math2d.Matrix3x2F, tolerance float32) (bool, com.Status)
	ComputeArea(m *math2d.Matrix3x2F, tolerance float32) (float32, com.Status)
	ComputeLength(m *math2d.Matrix3x2F, tolerance float32) (float32, com.Status)
	ComputePointAtLength(length float32, m *math2d.Matrix3x2F, tolerance float32) (math2d.Point2F, math2d.Vector2F, com.Status)
	Simplify(option GeometrySimplificationOption, m *math2d.Matrix3x2F, tolerance float32, sink SimplifiedGeometrySink) com.Status
	Widen(width float32, style StrokeStyle, m *math2d.Matrix3x2F, tolerance float32, sink SimplifiedGeometrySink) com.Status
}

type RectangleGeometry interface {
	Geometry
	GetRect() math2d.RectF
}

type RoundedRectangleGeometry interface {
	Geometry
	GetRoundedRect() math2d.RoundedRect
}

type EllipseGeometry interface {
	Geometry
	GetEllipse() math2d.Ellipse
}

type GeometryGroup interface {
	Geometry
	GetFillMode() FillMode
	GetSourceGeometryCount() uint32
	GetSourceGeometries() []Geometry
}

type TransformedGeometry interface {
	Geometry
	GetSourceGeometry() Geometry
	GetTransform() math2d.Matrix3x2F
}

// PathGeometry is a geometry described through a GeometrySink. It can be
// opened once; counts are available after the sink is closed.
type PathGeometry interface {
	Geometry
	Open() (GeometrySink, com.Status)
	Stream(sink GeometrySink) com.Status
	GetSegmentCount() (uint32, com.Status)
	GetFigureCount() (uint32, com.Status)
}

// SimplifiedGeometrySink receives figures made of lines and cubic Béziers.
// Errors are reported by Close.
type SimplifiedGeometrySink interface {
	SetFillMode(mode FillMode)
	SetSegmentFlags(flags PathSegment)
	BeginFigure(start math2d.Point2F, begin FigureBegin)
	AddLines(points []math2d.Point2F)
	AddBeziers(beziers []BezierSegment)
	EndFigure(end FigureEnd)
	Close() com.Status
}

// GeometrySink is the sink returned by PathGeometry.Open.
type GeometrySink interface {
	com.Unknown
	SimplifiedGeometrySink
	AddLine(point math2d.Point2F)
	AddBezier(bezier BezierSegment)
	AddQuadraticBezier(bezier QuadraticBezierSegment)
	AddQuadraticBeziers(beziers []QuadraticBezierSegment)
	AddArc(arc ArcSegment)
}

type StrokeStyle interface {
	Resource
	GetStartCap() CapStyle
	GetEndCap() CapStyle
	GetDashCap() CapStyle
	GetMiterLimit() float32
	GetLineJoin() LineJoin
	GetDashOffset() float32
	GetDashStyle() DashStyle
	GetDashesCount() uint32
	GetDashes() []float32
}

// Brush paints an area.
type Brush interface {
	Resource
	SetOpacity(opacity float32)
	SetTransform(m math2d.Matrix3x2F)
	GetOpacity() float32
	GetTransform() math2d.Matrix3x2F
}

type SolidColorBrush interface {
	Brush
	SetColor(c math2d.ColorF)
	GetColor() math2d.ColorF
}

type GradientStopCollection interface {
	Resource
	GetGradientStopCount() uint32
	GetGradientStops() []GradientStop
	GetColorInterpolationGamma() Gamma
	GetExtendMode() ExtendMode
}

type LinearGradientBrush interface {
	Brush
	SetStartPoint(p math2d.Point2F)
	SetEndPoint(p math2d.Point2F)
	GetStartPoint() math2d.Point2F
	GetEndPoint() math2d.Point2F
	GetGradientStopCollection() GradientStopCollection
}

type RadialGradientBrush interface {
	Brush
	SetCenter(p math2d.Point2F)
	SetGradientOriginOffset(p math2d.Point2F)
	SetRadiusX(r float32)
	SetRadiusY(r float32)
	GetCenter() math2d.Point2F
	GetGradientOriginOffset() math2d.Point2F
	GetRadiusX() float32
	GetRadiusY() float32
	GetGradientStopCollection() GradientStopCollection
}

type BitmapBrush interface {
	Brush
	SetExtendModeX(m ExtendMode)
	SetExtendModeY(m ExtendMode)
	SetInterpolationMode(m BitmapInterpolationMode)
	SetBitmap(b Bitmap)
	GetExtendModeX() ExtendMode
	GetExtendModeY() ExtendMode
	GetInterpolationMode() BitmapInterpolationMode
	// GetBitmap returns nil when the brush has no bitmap.
	GetBitmap() Bitmap
}

// Image is anything a device context can draw or draw into.
type Image interface {
	Resource
	isImage()
}

type Bitmap interface {
	Image
	GetSize() math2d.SizeF
	GetPixelSize() math2d.SizeU
	GetPixelFormat() PixelFormat
	GetDpi() (dpiX, dpiY float32)
	GetOptions() BitmapOptions
	CopyFromBitmap(dst *math2d.Point2U, src Bitmap, srcRect *math2d.RectU) com.Status
	CopyFromRenderTarget(dst *math2d.Point2U, rt RenderTarget, srcRect *math2d.RectU) com.Status
	CopyFromMemory(dstRect *math2d.RectU, src []byte, pitch uint32) com.Status
	Map(options MapOptions) (MappedRect, com.Status)
	Unmap() com.Status
}

type Layer interface {
	Resource
	GetSize() math2d.SizeF
}

type TextFormat interface {
	com.Unknown
	GetFontSize() float32
	GetLineSpacing() float32
	GetTextAlignment() TextAlignment
	GetParagraphAlignment() ParagraphAlignment
	GetWordWrapping() WordWrapping
	GetReadingDirection() ReadingDirection
	SetTextAlignment(a TextAlignment) com.Status
	SetParagraphAlignment(a ParagraphAlignment) com.Status
	SetWordWrapping(w WordWrapping) com.Status
	SetReadingDirection(d ReadingDirection) com.Status
}

// RenderTarget draws into pixels. Drawing calls are only valid between
// BeginDraw and EndDraw; failures are recorded and reported by EndDraw or
// Flush together with the tags active when the first one happened.
type RenderTarget interface {
	Resource

	CreateBitmap(size math2d.SizeU, src []byte, pitch uint32, props BitmapProperties) (Bitmap, com.Status)
	CreateBitmapBrush(bitmap Bitmap, bprops *BitmapBrushProperties, props *BrushProperties) (BitmapBrush, com.Status)
	CreateSolidColorBrush(c math2d.ColorF, props *BrushProperties) (SolidColorBrush, com.Status)
	CreateGradientStopCollection(stops []GradientStop, gamma Gamma, extend ExtendMode) (GradientStopCollection, com.Status)
	CreateLinearGradientBrush(lprops LinearGradientBrushProperties, props *BrushProperties, stops GradientStopCollection) (LinearGradientBrush, com.Status)
	CreateRadialGradientBrush(rprops RadialGradientBrushProperties, props *BrushProperties, stops GradientStopCollection) (RadialGradientBrush, com.Status)
	CreateCompatibleRenderTarget(size *math2d.SizeF, pixelSize *math2d.SizeU, format *PixelFormat, options CompatibleRenderTargetOptions) (BitmapRenderTarget, com.Status)
	CreateLayer(size *math2d.SizeF) (Layer, com.Status)

	DrawLine(p0, p1 math2d.Point2F, brush Brush, width float32, style StrokeStyle)
	DrawRectangle(r math2d.RectF, brush Brush, width float32, style StrokeStyle)
	FillRectangle(r math2d.RectF, brush Brush)
	DrawRoundedRectangle(rr math2d.RoundedRect, brush Brush, width float32, style StrokeStyle)
	FillRoundedRectangle(rr math2d.RoundedRect, brush Brush)
	DrawEllipse(e math2d.Ellipse, brush Brush, width float32, style StrokeStyle)
	FillEllipse(e math2d.Ellipse, brush Brush)
	DrawGeometry(g Geometry, brush Brush, width float32, style StrokeStyle)
	FillGeometry(g Geometry, brush Brush, opacityBrush Brush)
	DrawBitmap(bitmap Bitmap, dst *math2d.RectF, opacity float32, mode BitmapInterpolationMode, src *math2d.RectF)
	DrawText(text string, format TextFormat, layout math2d.RectF, brush Brush, options DrawTextOptions)
	Clear(c *math2d.ColorF)

	PushLayer(params LayerParameters, layer Layer)
	PopLayer()
	PushAxisAlignedClip(r math2d.RectF, mode AntialiasMode)
	PopAxisAlignedClip()

	SetTransform(m math2d.Matrix3x2F)
	GetTransform() math2d.Matrix3x2F
	SetAntialiasMode(mode AntialiasMode)
	GetAntialiasMode() AntialiasMode
	SetTextAntialiasMode(mode TextAntialiasMode)
	GetTextAntialiasMode() TextAntialiasMode
	SetTags(tag1, tag2 uint64)
	GetTags() (tag1, tag2 uint64)
	SetDpi(dpiX, dpiY float32)
	GetDpi() (dpiX, dpiY float32)

	Flush() (tag1, tag2 uint64, st com.Status)
	BeginDraw()
	EndDraw() (tag1, tag2 uint64, st com.Status)

	GetPixelFormat() PixelFormat
	GetSize() math2d.SizeF
	GetPixelSize() math2d.SizeU
	GetMaximumBitmapSize() uint32
	IsSupported(props RenderTargetProperties) bool
}

// BitmapRenderTarget draws into a bitmap compatible with its parent.
type BitmapRenderTarget interface {
	RenderTarget
	GetBitmap() (Bitmap, com.Status)
}

// WindowRenderTarget presents its pixels to a Window.
type WindowRenderTarget interface {
	RenderTarget
	CheckWindowState() WindowState
	Resize(size math2d.SizeU) com.Status
	GetWindow() Window
}

// Device owns the resources shared by its device contexts.
type Device interface {
	Resource
	CreateDeviceContext(options DeviceContextOptions) (DeviceContext, com.Status)
	ClearResources(millisecondsSinceUse uint32)
	GetMaximumTextureMemory() uint64
	SetMaximumTextureMemory(bytes uint64)
	GetCapabilities() DeviceCapabilities
}

// DeviceContext is a render target that draws into a settable image.
type DeviceContext interface {
	RenderTarget
	GetDevice() Device
	SetTarget(img Image)
	// GetTarget returns nil when no target is set.
	GetTarget() Image
	CreateBitmapFromSurface(surface Surface, props *BitmapProperties) (Bitmap, com.Status)
	DrawImage(img Image, offset *math2d.Point2F, src *math2d.RectF, interpolation InterpolationMode, mode CompositeMode)
}

// Window is a host window a WindowRenderTarget presents into.
// Present receives premultiplied pixels and must not retain img after it
// returns; an error makes the render target report RecreateTarget.
type Window interface {
	ClientSize() (width, height int)
	Present(img *image.RGBA) error
}

// OccludedWindow is implemented by windows that can report being hidden.
type OccludedWindow interface {
	Window
	Occluded() bool
}

// Surface is externally owned pixel memory in a texture format.
type Surface interface {
	Width() int
	Height() int
	Format() gputypes.TextureFormat
	Stride() int
	Pixels() []byte
}
