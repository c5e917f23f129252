package native

// FactoryType selects the threading policy of a factory.
type FactoryType uint32

const (
	FactoryTypeSingleThreaded FactoryType = iota
	FactoryTypeMultiThreaded
)

// DebugLevel selects which diagnostics a factory reports.
type DebugLevel uint32

const (
	DebugLevelNone DebugLevel = iota
	DebugLevelError
	DebugLevelWarning
	DebugLevelInformation
)

// FillMode selects the rule deciding which areas of a geometry are inside.
type FillMode uint32

const (
	FillModeAlternate FillMode = iota
	FillModeWinding
)

// FigureBegin says whether a figure is filled.
type FigureBegin uint32

const (
	FigureBeginFilled FigureBegin = iota
	FigureBeginHollow
)

// FigureEnd says whether a figure is closed.
type FigureEnd uint32

const (
	FigureEndOpen FigureEnd = iota
	FigureEndClosed
)

// PathSegment holds per-segment flags.
type PathSegment uint32

const (
	PathSegmentNone               PathSegment = 0
	PathSegmentForceUnstroked     PathSegment = 1
	PathSegmentForceRoundLineJoin PathSegment = 2
)

// SweepDirection is the direction an arc is drawn in.
type SweepDirection uint32

const (
	SweepDirectionCounterClockwise SweepDirection = iota
	SweepDirectionClockwise
)

// ArcSize selects the larger or smaller of the two possible arcs.
type ArcSize uint32

const (
	ArcSizeSmall ArcSize = iota
	ArcSizeLarge
)

// CapStyle is the shape at the end of a line or dash.
type CapStyle uint32

const (
	CapStyleFlat CapStyle = iota
	CapStyleSquare
	CapStyleRound
	CapStyleTriangle
)

// LineJoin is the shape of the corner between two stroked segments.
type LineJoin uint32

const (
	LineJoinMiter LineJoin = iota
	LineJoinBevel
	LineJoinRound
	LineJoinMiterOrBevel
)

// DashStyle selects a dash pattern.
type DashStyle uint32

const (
	DashStyleSolid DashStyle = iota
	DashStyleDash
	DashStyleDot
	DashStyleDashDot
	DashStyleDashDotDot
	DashStyleCustom
)

// ExtendMode says how a brush paints outside its natural area.
type ExtendMode uint32

const (
	ExtendModeClamp ExtendMode = iota
	ExtendModeWrap
	ExtendModeMirror
)

// Gamma is the color space gradient stops are interpolated in.
type Gamma uint32

const (
	Gamma2_2 Gamma = iota
	Gamma1_0
)

// BitmapInterpolationMode is the sampling used by DrawBitmap and bitmap
// brushes.
type BitmapInterpolationMode uint32

const (
	BitmapInterpolationModeNearestNeighbor BitmapInterpolationMode = iota
	BitmapInterpolationModeLinear
)

// InterpolationMode is the sampling used by DrawImage.
type InterpolationMode uint32

const (
	InterpolationModeNearestNeighbor InterpolationMode = iota
	InterpolationModeLinear
	InterpolationModeCubic
	InterpolationModeMultiSampleLinear
	InterpolationModeAnisotropic
	InterpolationModeHighQualityCubic
)

// CompositeMode is the blending operator used by DrawImage.
type CompositeMode uint32

const (
	CompositeModeSourceOver CompositeMode = iota
	CompositeModeDestinationOver
	CompositeModeSourceIn
	CompositeModeDestinationIn
	CompositeModeSourceOut
	CompositeModeDestinationOut
	CompositeModeSourceAtop
	CompositeModeDestinationAtop
	CompositeModeXor
	CompositeModePlus
	CompositeModeSourceCopy
	CompositeModeBoundedSourceCopy
	CompositeModeMaskInvert
)

// AntialiasMode selects how primitive edges are rendered.
type AntialiasMode uint32

const (
	AntialiasModePerPrimitive AntialiasMode = iota
	AntialiasModeAliased
)

// TextAntialiasMode selects how text edges are rendered.
type TextAntialiasMode uint32

const (
	TextAntialiasModeDefault TextAntialiasMode = iota
	TextAntialiasModeClearType
	TextAntialiasModeGrayscale
	TextAntialiasModeAliased
)

// DrawTextOptions are flags for DrawText.
type DrawTextOptions uint32

const (
	DrawTextOptionsNone   DrawTextOptions = 0
	DrawTextOptionsNoSnap DrawTextOptions = 1
	DrawTextOptionsClip   DrawTextOptions = 2
)

// Format is a pixel memory layout. Values follow the DXGI numbering.
type Format uint32

const (
	FormatUnknown       Format = 0
	FormatR8G8B8A8Unorm Format = 28
	FormatA8Unorm       Format = 65
	FormatB8G8R8A8Unorm Format = 87
)

// AlphaMode says how the alpha channel of a pixel format is interpreted.
type AlphaMode uint32

const (
	AlphaModeUnknown AlphaMode = iota
	AlphaModePremultiplied
	AlphaModeStraight
	AlphaModeIgnore
)

// RenderTargetType selects software or hardware rendering.
type RenderTargetType uint32

const (
	RenderTargetTypeDefault RenderTargetType = iota
	RenderTargetTypeSoftware
	RenderTargetTypeHardware
)

// RenderTargetUsage are flags describing how a render target is used.
type RenderTargetUsage uint32

const (
	RenderTargetUsageNone                RenderTargetUsage = 0
	RenderTargetUsageForceBitmapRemoting RenderTargetUsage = 1
	RenderTargetUsageGDICompatible       RenderTargetUsage = 2
)

// FeatureLevel is the minimum hardware feature level of a render target.
type FeatureLevel uint32

const (
	FeatureLevelDefault FeatureLevel = 0
	FeatureLevel9       FeatureLevel = 0x9100
	FeatureLevel10      FeatureLevel = 0xa000
)

// PresentOptions are flags controlling window presentation.
type PresentOptions uint32

const (
	PresentOptionsNone           PresentOptions = 0
	PresentOptionsRetainContents PresentOptions = 1
	PresentOptionsImmediately    PresentOptions = 2
)

// WindowState are flags describing the window of a render target.
type WindowState uint32

const (
	WindowStateNone     WindowState = 0
	WindowStateOccluded WindowState = 1
)

// CompatibleRenderTargetOptions are flags for compatible render targets.
type CompatibleRenderTargetOptions uint32

const (
	CompatibleRenderTargetOptionsNone          CompatibleRenderTargetOptions = 0
	CompatibleRenderTargetOptionsGDICompatible CompatibleRenderTargetOptions = 1
)

// LayerOptions are flags for PushLayer.
type LayerOptions uint32

const (
	LayerOptionsNone                   LayerOptions = 0
	LayerOptionsInitializeForClearType LayerOptions = 1
)

// BitmapOptions are flags describing how a bitmap may be used.
type BitmapOptions uint32

const (
	BitmapOptionsNone          BitmapOptions = 0
	BitmapOptionsTarget        BitmapOptions = 1
	BitmapOptionsCannotDraw    BitmapOptions = 2
	BitmapOptionsCPURead       BitmapOptions = 4
	BitmapOptionsGDICompatible BitmapOptions = 8
)

// MapOptions are flags for Bitmap.Map.
type MapOptions uint32

const (
	MapOptionsNone    MapOptions = 0
	MapOptionsRead    MapOptions = 1
	MapOptionsWrite   MapOptions = 2
	MapOptionsDiscard MapOptions = 4
)

// GeometrySimplificationOption selects the segments Simplify emits.
type GeometrySimplificationOption uint32

const (
	GeometrySimplificationOptionCubicsAndLines GeometrySimplificationOption = iota
	GeometrySimplificationOptionLines
)

// DeviceContextOptions are flags for CreateDeviceContext.
type DeviceContextOptions uint32

const (
	DeviceContextOptionsNone                             DeviceContextOptions = 0
	DeviceContextOptionsEnableMultithreadedOptimizations DeviceContextOptions = 1
)

// TextAlignment is the horizontal alignment of text in its layout box.
type TextAlignment uint32

const (
	TextAlignmentLeading TextAlignment = iota
	TextAlignmentTrailing
	TextAlignmentCenter
	TextAlignmentJustified
)

// ParagraphAlignment is the vertical alignment of text in its layout box.
type ParagraphAlignment uint32

const (
	ParagraphAlignmentNear ParagraphAlignment = iota
	ParagraphAlignmentFar
	ParagraphAlignmentCenter
)

// WordWrapping selects whether lines are broken to fit the layout box.
type WordWrapping uint32

const (
	WordWrappingWrap WordWrapping = iota
	WordWrappingNoWrap
)

// ReadingDirection is the base direction of a paragraph.
type ReadingDirection uint32

const (
	ReadingDirectionLeftToRight ReadingDirection = iota
	ReadingDirectionRightToLeft
)
