package native

import (
	"image"
	"log/slog"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/internal/raster"
	"github.com/gogpu/d2d/math2d"
)

// target is the software render target shared by every kind of render
// target. Kinds differ only in where pixels come from and where they go on
// Flush and EndDraw.
type target struct {
	resource
	dom *domain

	// pixels is the premultiplied image drawn into: the target's own pixels,
	// or a layer's buffer while a layer is pushed. It is nil for a device
	// context without a target.
	pixels     *image.RGBA
	format     PixelFormat
	dpiX, dpiY float32

	transform  math2d.Matrix3x2F
	aa         AntialiasMode
	textAA     TextAntialiasMode
	tag1, tag2 uint64

	drawing          bool
	err              com.Status
	errTag1, errTag2 uint64

	stack []stackEntry
	clip  *raster.Mask
	ras   *raster.Rasterizer

	// onFlush and onEndDraw deliver the pixels to the kind's destination.
	onFlush, onEndDraw func() com.Status
}

func (t *target) targetBase() *target { return t }

// resolveTargetProperties validates props for a software target whose
// native format is def.
func resolveTargetProperties(props RenderTargetProperties, def Format) (PixelFormat, float32, float32, com.Status) {
	if props.Type == RenderTargetTypeHardware || props.MinLevel != FeatureLevelDefault {
		return PixelFormat{}, 0, 0, com.NoHardwareDevice
	}
	if props.Type > RenderTargetTypeHardware || props.Usage&^(RenderTargetUsageForceBitmapRemoting|RenderTargetUsageGDICompatible) != 0 {
		return PixelFormat{}, 0, 0, com.InvalidArg
	}
	pf, st := resolvePixelFormat(props.PixelFormat, def)
	if st.Failed() {
		return PixelFormat{}, 0, 0, st
	}
	if props.Usage&RenderTargetUsageGDICompatible != 0 && pf.Format != FormatB8G8R8A8Unorm {
		return PixelFormat{}, 0, 0, com.UnsupportedPixelFormat
	}
	dpiX, dpiY, ok := resolveDpi(props.DpiX, props.DpiY)
	if !ok {
		return PixelFormat{}, 0, 0, com.InvalidArg
	}
	return pf, dpiX, dpiY, com.OK
}

func (t *target) initTarget(self com.Unknown, f *factory, dom *domain, pixels *image.RGBA, pf PixelFormat, dpiX, dpiY float32, destroy func(), iids ...com.IID) {
	t.dom = dom
	t.pixels = pixels
	t.format = pf
	t.dpiX, t.dpiY = dpiX, dpiY
	t.transform = math2d.Identity()
	t.ras = raster.NewRasterizer()
	t.initResource(self, f, func() {
		t.unwind()
		if destroy != nil {
			destroy()
		}
	}, append(iids, IIDRenderTarget)...)
}

// fail records st as the first drawing error.
func (t *target) fail(op string, st com.Status) {
	t.factory.logf(DebugLevelWarning, "native: drawing call failed",
		slog.String("op", op), slog.String("status", st.String()),
		slog.Uint64("tag1", t.tag1), slog.Uint64("tag2", t.tag2))
	if t.err.Failed() {
		return
	}
	t.err = st
	t.errTag1, t.errTag2 = t.tag1, t.tag2
}

// begin reports whether a drawing call may touch pixels, recording
// WrongState when it may not.
func (t *target) begin(op string) bool {
	if !t.drawing || t.pixels == nil {
		t.fail(op, com.WrongState)
		return false
	}
	return true
}

// device returns the transform from world DIPs to device pixels.
func (t *target) device() path.Affine {
	return affine(t.transform).Then(dpiScale(t.dpiX, t.dpiY))
}

func (t *target) bounds() image.Rectangle {
	if t.pixels == nil {
		return image.Rectangle{}
	}
	return t.pixels.Rect
}

func (t *target) SetTransform(m math2d.Matrix3x2F)            { t.transform = m }
func (t *target) GetTransform() math2d.Matrix3x2F             { return t.transform }
func (t *target) SetAntialiasMode(mode AntialiasMode)         { t.aa = mode }
func (t *target) GetAntialiasMode() AntialiasMode             { return t.aa }
func (t *target) SetTextAntialiasMode(mode TextAntialiasMode) { t.textAA = mode }
func (t *target) GetTextAntialiasMode() TextAntialiasMode     { return t.textAA }
func (t *target) SetTags(tag1, tag2 uint64)                   { t.tag1, t.tag2 = tag1, tag2 }
func (t *target) GetTags() (tag1, tag2 uint64)                { return t.tag1, t.tag2 }
func (t *target) GetDpi() (dpiX, dpiY float32)                { return t.dpiX, t.dpiY }
func (t *target) GetPixelFormat() PixelFormat                 { return t.format }
func (t *target) GetMaximumBitmapSize() uint32                { return MaximumBitmapSize }

// SetDpi changes the DPI. Zero for both resets to the default DPI; other
// invalid values are ignored.
func (t *target) SetDpi(dpiX, dpiY float32) {
	if x, y, ok := resolveDpi(dpiX, dpiY); ok {
		t.dpiX, t.dpiY = x, y
	}
}

// rootPixels returns the target's own pixels, skipping any layer buffers.
func (t *target) rootPixels() *image.RGBA {
	for _, e := range t.stack {
		if e.kind == entryLayer && e.saved != nil {
			return e.saved
		}
	}
	return t.pixels
}

func (t *target) GetPixelSize() math2d.SizeU {
	r := t.rootPixels()
	if r == nil {
		return math2d.SizeU{}
	}
	return math2d.SizeU{Width: uint32(r.Rect.Dx()), Height: uint32(r.Rect.Dy())}
}

func (t *target) GetSize() math2d.SizeF {
	ps := t.GetPixelSize()
	return math2d.SizeF{Width: pixelsToDips(ps.Width, t.dpiX), Height: pixelsToDips(ps.Height, t.dpiY)}
}

func (t *target) IsSupported(props RenderTargetProperties) bool {
	pf, _, _, st := resolveTargetProperties(props, t.format.Format)
	if st.Failed() {
		return false
	}
	return pf.Format == t.format.Format
}

func (t *target) BeginDraw() {
	if t.drawing {
		t.fail("BeginDraw", com.WrongState)
		return
	}
	t.drawing = true
}

// takeError returns the recorded error and its tags and clears it.
func (t *target) takeError() (uint64, uint64, com.Status) {
	st, tag1, tag2 := t.err, t.errTag1, t.errTag2
	if st.Succeeded() {
		tag1, tag2 = 0, 0
	}
	t.err, t.errTag1, t.errTag2 = com.OK, 0, 0
	return tag1, tag2, st
}

func (t *target) Flush() (tag1, tag2 uint64, st com.Status) {
	if !t.drawing {
		return 0, 0, com.WrongState
	}
	if t.onFlush != nil {
		if st := t.onFlush(); st.Failed() {
			t.fail("Flush", st)
		}
	}
	return t.takeError()
}

func (t *target) EndDraw() (tag1, tag2 uint64, st com.Status) {
	if !t.drawing {
		return 0, 0, com.WrongState
	}
	if len(t.stack) > 0 {
		t.unwind()
		t.fail("EndDraw", com.PushPopUnbalanced)
	}
	t.drawing = false
	if t.onEndDraw != nil {
		if st := t.onEndDraw(); st.Failed() {
			t.fail("EndDraw", st)
		}
	}
	return t.takeError()
}

func (t *target) CreateBitmap(size math2d.SizeU, src []byte, pitch uint32, props BitmapProperties) (Bitmap, com.Status) {
	return result[Bitmap](newBitmap(t.factory, t.dom, size, src, pitch, props, t.format.Format))
}

func (t *target) ownBitmap(b Bitmap) (*bitmap, com.Status) {
	bmp, ok := b.(*bitmap)
	if !ok {
		return nil, com.InvalidArg
	}
	if bmp.dom != t.dom {
		return nil, com.WrongResourceDomain
	}
	return bmp, com.OK
}

func (t *target) CreateBitmapBrush(b Bitmap, bprops *BitmapBrushProperties, props *BrushProperties) (BitmapBrush, com.Status) {
	if !validBrushProperties(props) {
		return nil, com.InvalidArg
	}
	if bprops != nil && (bprops.ExtendModeX > ExtendModeMirror || bprops.ExtendModeY > ExtendModeMirror ||
		bprops.InterpolationMode > BitmapInterpolationModeLinear) {
		return nil, com.InvalidArg
	}
	var bmp *bitmap
	if b != nil {
		var st com.Status
		if bmp, st = t.ownBitmap(b); st.Failed() {
			return nil, st
		}
	}
	return newBitmapBrush(t.factory, t.dom, bmp, bprops, props), com.OK
}

func (t *target) CreateSolidColorBrush(c math2d.ColorF, props *BrushProperties) (SolidColorBrush, com.Status) {
	if !validBrushProperties(props) {
		return nil, com.InvalidArg
	}
	return newSolidColorBrush(t.factory, t.dom, c, props), com.OK
}

func (t *target) CreateGradientStopCollection(stops []GradientStop, gamma Gamma, extend ExtendMode) (GradientStopCollection, com.Status) {
	return result[GradientStopCollection](newGradientStopCollection(t.factory, t.dom, stops, gamma, extend))
}

func (t *target) ownStops(c GradientStopCollection) (*gradientStopCollection, com.Status) {
	stops, ok := c.(*gradientStopCollection)
	if !ok {
		return nil, com.InvalidArg
	}
	if stops.dom != t.dom {
		return nil, com.WrongResourceDomain
	}
	return stops, com.OK
}

func (t *target) CreateLinearGradientBrush(lprops LinearGradientBrushProperties, props *BrushProperties, c GradientStopCollection) (LinearGradientBrush, com.Status) {
	if !validBrushProperties(props) {
		return nil, com.InvalidArg
	}
	stops, st := t.ownStops(c)
	if st.Failed() {
		return nil, st
	}
	return newLinearGradientBrush(t.factory, t.dom, lprops, props, stops), com.OK
}

func (t *target) CreateRadialGradientBrush(rprops RadialGradientBrushProperties, props *BrushProperties, c GradientStopCollection) (RadialGradientBrush, com.Status) {
	if !validBrushProperties(props) {
		return nil, com.InvalidArg
	}
	stops, st := t.ownStops(c)
	if st.Failed() {
		return nil, st
	}
	return newRadialGradientBrush(t.factory, t.dom, rprops, props, stops), com.OK
}

func (t *target) CreateLayer(size *math2d.SizeF) (Layer, com.Status) {
	return result[Layer](newLayer(t.factory, t.dom, size))
}

func (t *target) CreateCompatibleRenderTarget(size *math2d.SizeF, pixelSize *math2d.SizeU, format *PixelFormat, options CompatibleRenderTargetOptions) (BitmapRenderTarget, com.Status) {
	return result[BitmapRenderTarget](newCompatibleTarget(t, size, pixelSize, format, options))
}
