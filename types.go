package d2d

import (
	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// Segment and descriptor types shared with the engine.
type (
	BezierSegment                 = native.BezierSegment
	QuadraticBezierSegment        = native.QuadraticBezierSegment
	ArcSegment                    = native.ArcSegment
	GradientStop                  = native.GradientStop
	BrushProperties               = native.BrushProperties
	LinearGradientBrushProperties = native.LinearGradientBrushProperties
	RadialGradientBrushProperties = native.RadialGradientBrushProperties
	BitmapBrushProperties         = native.BitmapBrushProperties
	StrokeStyleProperties         = native.StrokeStyleProperties
	PixelFormat                   = native.PixelFormat
	BitmapProperties              = native.BitmapProperties
	RenderTargetProperties        = native.RenderTargetProperties
	MappedRect                    = native.MappedRect
	DeviceCapabilities            = native.DeviceCapabilities
	WindowRenderTargetProperties  = native.WindowRenderTargetProperties
	TextFormatProperties          = native.TextFormatProperties
)

// Window is a host window a WindowRenderTarget presents into.
// Present receives premultiplied pixels and must not retain the image after
// it returns. A Present error makes EndDraw report StatusRecreateTarget.
type Window = native.Window

// OccludedWindow is implemented by windows that can report being hidden.
// Frames drawn while the window is occluded are not presented.
type OccludedWindow = native.OccludedWindow

// Surface is externally owned pixel memory that a render target draws into.
// Format must be gputypes.TextureFormatBGRA8Unorm or
// gputypes.TextureFormatRGBA8Unorm.
type Surface = native.Surface

// MaximumBitmapSize is the largest width or height of a bitmap or render
// target created by the software engine.
const MaximumBitmapSize = native.MaximumBitmapSize

// DefaultFlatteningTolerance is the tolerance used when a geometry
// operation is given a zero tolerance.
const DefaultFlatteningTolerance = native.DefaultFlatteningTolerance

// DefaultBrushProperties returns fully opaque, untransformed brush
// properties.
func DefaultBrushProperties() BrushProperties {
	return BrushProperties{Opacity: 1, Transform: math2d.Identity()}
}

// DefaultBitmapBrushProperties returns clamped, linearly sampled bitmap
// brush properties.
func DefaultBitmapBrushProperties() BitmapBrushProperties {
	return BitmapBrushProperties{
		ExtendModeX:       ExtendModeClamp,
		ExtendModeY:       ExtendModeClamp,
		InterpolationMode: BitmapInterpolationModeLinear,
	}
}

// DefaultStrokeStyleProperties returns a solid stroke with flat caps and
// miter joins.
func DefaultStrokeStyleProperties() StrokeStyleProperties {
	return StrokeStyleProperties{
		StartCap:   CapStyleFlat,
		EndCap:     CapStyleFlat,
		DashCap:    CapStyleFlat,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10,
		DashStyle:  DashStyleSolid,
	}
}

// DefaultRenderTargetProperties returns properties selecting the default
// render target type, pixel format and DPI.
func DefaultRenderTargetProperties() RenderTargetProperties {
	return RenderTargetProperties{Type: RenderTargetTypeDefault}
}

// DefaultBitmapProperties returns premultiplied BGRA at 96 DPI.
func DefaultBitmapProperties() BitmapProperties {
	return BitmapProperties{
		PixelFormat: PixelFormat{Format: FormatB8G8R8A8Unorm, AlphaMode: AlphaModePremultiplied},
		DpiX:        96,
		DpiY:        96,
	}
}

// DefaultLayerParameters returns parameters for a layer covering
// everything, fully opaque and without a mask.
func DefaultLayerParameters() LayerParameters {
	return LayerParameters{
		ContentBounds:     math2d.InfiniteRect(),
		MaskAntialiasMode: AntialiasModePerPrimitive,
		MaskTransform:     math2d.Identity(),
		Opacity:           1,
	}
}
