package d2d

import "github.com/gogpu/d2d/internal/native"

// FactoryType selects the threading policy of a factory.
type FactoryType = native.FactoryType

const (
	FactoryTypeSingleThreaded = native.FactoryTypeSingleThreaded
	FactoryTypeMultiThreaded  = native.FactoryTypeMultiThreaded
)

// DebugLevel selects which diagnostics a factory reports.
type DebugLevel = native.DebugLevel

const (
	DebugLevelNone        = native.DebugLevelNone
	DebugLevelError       = native.DebugLevelError
	DebugLevelWarning     = native.DebugLevelWarning
	DebugLevelInformation = native.DebugLevelInformation
)

// FillMode selects the rule deciding which areas of a geometry are inside.
type FillMode = native.FillMode

const (
	FillModeAlternate = native.FillModeAlternate
	FillModeWinding   = native.FillModeWinding
)

// FigureBegin says whether a figure is filled.
type FigureBegin = native.FigureBegin

const (
	FigureBeginFilled = native.FigureBeginFilled
	FigureBeginHollow = native.FigureBeginHollow
)

// FigureEnd says whether a figure is closed.
type FigureEnd = native.FigureEnd

const (
	FigureEndOpen   = native.FigureEndOpen
	FigureEndClosed = native.FigureEndClosed
)

// PathSegment holds per-segment flags.
type PathSegment = native.PathSegment

const (
	PathSegmentNone               = native.PathSegmentNone
	PathSegmentForceUnstroked     = native.PathSegmentForceUnstroked
	PathSegmentForceRoundLineJoin = native.PathSegmentForceRoundLineJoin
)

// SweepDirection is the direction an arc is drawn in.
type SweepDirection = native.SweepDirection

const (
	SweepDirectionCounterClockwise = native.SweepDirectionCounterClockwise
	SweepDirectionClockwise        = native.SweepDirectionClockwise
)

// ArcSize selects the larger or smaller of the two possible arcs.
type ArcSize = native.ArcSize

const (
	ArcSizeSmall = native.ArcSizeSmall
	ArcSizeLarge = native.ArcSizeLarge
)

// CapStyle is the shape at the end of a line or dash.
type CapStyle = native.CapStyle

const (
	CapStyleFlat     = native.CapStyleFlat
	CapStyleSquare   = native.CapStyleSquare
	CapStyleRound    = native.CapStyleRound
	CapStyleTriangle = native.CapStyleTriangle
)

// LineJoin is the shape of the corner between two stroked segments.
type LineJoin = native.LineJoin

const (
	LineJoinMiter        = native.LineJoinMiter
	LineJoinBevel        = native.LineJoinBevel
	LineJoinRound        = native.LineJoinRound
	LineJoinMiterOrBevel = native.LineJoinMiterOrBevel
)

// DashStyle selects a dash pattern.
type DashStyle = native.DashStyle

const (
	DashStyleSolid      = native.DashStyleSolid
	DashStyleDash       = native.DashStyleDash
	DashStyleDot        = native.DashStyleDot
	DashStyleDashDot    = native.DashStyleDashDot
	DashStyleDashDotDot = native.DashStyleDashDotDot
	DashStyleCustom     = native.DashStyleCustom
)

// ExtendMode says how a brush paints outside its natural area.
type ExtendMode = native.ExtendMode

const (
	ExtendModeClamp  = native.ExtendModeClamp
	ExtendModeWrap   = native.ExtendModeWrap
	ExtendModeMirror = native.ExtendModeMirror
)

// Gamma is the color space gradient stops are interpolated in.
type Gamma = native.Gamma

const (
	Gamma2_2 = native.Gamma2_2
	Gamma1_0 = native.Gamma1_0
)

// BitmapInterpolationMode is the sampling used by DrawBitmap and bitmap
// brushes.
type BitmapInterpolationMode = native.BitmapInterpolationMode

const (
	BitmapInterpolationModeNearestNeighbor = native.BitmapInterpolationModeNearestNeighbor
	BitmapInterpolationModeLinear          = native.BitmapInterpolationModeLinear
)

// InterpolationMode is the sampling used by DrawImage.
type InterpolationMode = native.InterpolationMode

const (
	InterpolationModeNearestNeighbor   = native.InterpolationModeNearestNeighbor
	InterpolationModeLinear            = native.InterpolationModeLinear
	InterpolationModeCubic             = native.InterpolationModeCubic
	InterpolationModeMultiSampleLinear = native.InterpolationModeMultiSampleLinear
	InterpolationModeAnisotropic       = native.InterpolationModeAnisotropic
	InterpolationModeHighQualityCubic  = native.InterpolationModeHighQualityCubic
)

// CompositeMode is the blending operator used by DrawImage.
type CompositeMode = native.CompositeMode

const (
	CompositeModeSourceOver        = native.CompositeModeSourceOver
	CompositeModeDestinationOver   = native.CompositeModeDestinationOver
	CompositeModeSourceIn          = native.CompositeModeSourceIn
	CompositeModeDestinationIn     = native.CompositeModeDestinationIn
	CompositeModeSourceOut         = native.CompositeModeSourceOut
	CompositeModeDestinationOut    = native.CompositeModeDestinationOut
	CompositeModeSourceAtop        = native.CompositeModeSourceAtop
	CompositeModeDestinationAtop   = native.CompositeModeDestinationAtop
	CompositeModeXor               = native.CompositeModeXor
	CompositeModePlus              = native.CompositeModePlus
	CompositeModeSourceCopy        = native.CompositeModeSourceCopy
	CompositeModeBoundedSourceCopy = native.CompositeModeBoundedSourceCopy
	CompositeModeMaskInvert        = native.CompositeModeMaskInvert
)

// AntialiasMode selects how primitive edges are rendered.
type AntialiasMode = native.AntialiasMode

const (
	AntialiasModePerPrimitive = native.AntialiasModePerPrimitive
	AntialiasModeAliased      = native.AntialiasModeAliased
)

// TextAntialiasMode selects how text edges are rendered.
type TextAntialiasMode = native.TextAntialiasMode

const (
	TextAntialiasModeDefault   = native.TextAntialiasModeDefault
	TextAntialiasModeClearType = native.TextAntialiasModeClearType
	TextAntialiasModeGrayscale = native.TextAntialiasModeGrayscale
	TextAntialiasModeAliased   = native.TextAntialiasModeAliased
)

// DrawTextOptions are flags for DrawText.
type DrawTextOptions = native.DrawTextOptions

const (
	DrawTextOptionsNone   = native.DrawTextOptionsNone
	DrawTextOptionsNoSnap = native.DrawTextOptionsNoSnap
	DrawTextOptionsClip   = native.DrawTextOptionsClip
)

// Format is a pixel memory layout. Values follow the DXGI numbering.
type Format = native.Format

const (
	FormatUnknown       = native.FormatUnknown
	FormatR8G8B8A8Unorm = native.FormatR8G8B8A8Unorm
	FormatA8Unorm       = native.FormatA8Unorm
	FormatB8G8R8A8Unorm = native.FormatB8G8R8A8Unorm
)

// AlphaMode says how the alpha channel of a pixel format is interpreted.
type AlphaMode = native.AlphaMode

const (
	AlphaModeUnknown       = native.AlphaModeUnknown
	AlphaModePremultiplied = native.AlphaModePremultiplied
	AlphaModeStraight      = native.AlphaModeStraight
	AlphaModeIgnore        = native.AlphaModeIgnore
)

// RenderTargetType selects software or hardware rendering.
type RenderTargetType = native.RenderTargetType

const (
	RenderTargetTypeDefault  = native.RenderTargetTypeDefault
	RenderTargetTypeSoftware = native.RenderTargetTypeSoftware
	RenderTargetTypeHardware = native.RenderTargetTypeHardware
)

// RenderTargetUsage are flags describing how a render target is used.
type RenderTargetUsage = native.RenderTargetUsage

const (
	RenderTargetUsageNone                = native.RenderTargetUsageNone
	RenderTargetUsageForceBitmapRemoting = native.RenderTargetUsageForceBitmapRemoting
	RenderTargetUsageGDICompatible       = native.RenderTargetUsageGDICompatible
)

// FeatureLevel is the minimum hardware feature level of a render target.
type FeatureLevel = native.FeatureLevel

const (
	FeatureLevelDefault = native.FeatureLevelDefault
	FeatureLevel9       = native.FeatureLevel9
	FeatureLevel10      = native.FeatureLevel10
)

// PresentOptions are flags controlling window presentation.
type PresentOptions = native.PresentOptions

const (
	PresentOptionsNone           = native.PresentOptionsNone
	PresentOptionsRetainContents = native.PresentOptionsRetainContents
	PresentOptionsImmediately    = native.PresentOptionsImmediately
)

// WindowState are flags describing the window of a render target.
type WindowState = native.WindowState

const (
	WindowStateNone     = native.WindowStateNone
	WindowStateOccluded = native.WindowStateOccluded
)

// CompatibleRenderTargetOptions are flags for compatible render targets.
type CompatibleRenderTargetOptions = native.CompatibleRenderTargetOptions

const (
	CompatibleRenderTargetOptionsNone          = native.CompatibleRenderTargetOptionsNone
	CompatibleRenderTargetOptionsGDICompatible = native.CompatibleRenderTargetOptionsGDICompatible
)

// LayerOptions are flags for PushLayer.
type LayerOptions = native.LayerOptions

const (
	LayerOptionsNone                   = native.LayerOptionsNone
	LayerOptionsInitializeForClearType = native.LayerOptionsInitializeForClearType
)

// BitmapOptions are flags describing how a bitmap may be used.
type BitmapOptions = native.BitmapOptions

const (
	BitmapOptionsNone          = native.BitmapOptionsNone
	BitmapOptionsTarget        = native.BitmapOptionsTarget
	BitmapOptionsCannotDraw    = native.BitmapOptionsCannotDraw
	BitmapOptionsCPURead       = native.BitmapOptionsCPURead
	BitmapOptionsGDICompatible = native.BitmapOptionsGDICompatible
)

// MapOptions are flags for Bitmap.Map.
type MapOptions = native.MapOptions

const (
	MapOptionsNone    = native.MapOptionsNone
	MapOptionsRead    = native.MapOptionsRead
	MapOptionsWrite   = native.MapOptionsWrite
	MapOptionsDiscard = native.MapOptionsDiscard
)

// GeometrySimplificationOption selects the segments Simplify emits.
type GeometrySimplificationOption = native.GeometrySimplificationOption

const (
	GeometrySimplificationOptionCubicsAndLines = native.GeometrySimplificationOptionCubicsAndLines
	GeometrySimplificationOptionLines          = native.GeometrySimplificationOptionLines
)

// DeviceContextOptions are flags for CreateDeviceContext.
type DeviceContextOptions = native.DeviceContextOptions

const (
	DeviceContextOptionsNone                             = native.DeviceContextOptionsNone
	DeviceContextOptionsEnableMultithreadedOptimizations = native.DeviceContextOptionsEnableMultithreadedOptimizations
)

// TextAlignment is the horizontal alignment of text in its layout box.
type TextAlignment = native.TextAlignment

const (
	TextAlignmentLeading   = native.TextAlignmentLeading
	TextAlignmentTrailing  = native.TextAlignmentTrailing
	TextAlignmentCenter    = native.TextAlignmentCenter
	TextAlignmentJustified = native.TextAlignmentJustified
)

// ParagraphAlignment is the vertical alignment of text in its layout box.
type ParagraphAlignment = native.ParagraphAlignment

const (
	ParagraphAlignmentNear   = native.ParagraphAlignmentNear
	ParagraphAlignmentFar    = native.ParagraphAlignmentFar
	ParagraphAlignmentCenter = native.ParagraphAlignmentCenter
)

// WordWrapping selects whether lines are broken to fit the layout box.
type WordWrapping = native.WordWrapping

const (
	WordWrappingWrap   = native.WordWrappingWrap
	WordWrappingNoWrap = native.WordWrappingNoWrap
)

// ReadingDirection is the base direction of a paragraph.
type ReadingDirection = native.ReadingDirection

const (
	ReadingDirectionLeftToRight = native.ReadingDirectionLeftToRight
	ReadingDirectionRightToLeft = native.ReadingDirectionRightToLeft
)
