package native

import (
	"image"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/math2d"
)

// surfaceFormat maps a texture format to the pixel format the engine
// stores it in.
func surfaceFormat(tf gputypes.TextureFormat) (Format, bool) {
	switch tf {
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatB8G8R8A8Unorm, true
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatR8G8B8A8Unorm, true
	}
	return FormatUnknown, false
}

func checkPixelSize(w, h int) com.Status {
	switch {
	case w <= 0 || h <= 0:
		return com.InvalidArg
	case w > MaximumBitmapSize || h > MaximumBitmapSize:
		return com.MaxTextureSizeExceeded
	}
	return com.OK
}

// surfaceTarget draws into a copy of externally owned pixels and writes
// the copy back on Flush and EndDraw.
type surfaceTarget struct {
	target
	surface Surface
}

func newSurfaceTarget(f *factory, s Surface, props RenderTargetProperties) (*surfaceTarget, com.Status) {
	if s == nil {
		return nil, com.InvalidArg
	}
	w, h := s.Width(), s.Height()
	if st := checkPixelSize(w, h); st.Failed() {
		return nil, st
	}
	def, ok := surfaceFormat(s.Format())
	if !ok {
		return nil, com.UnsupportedPixelFormat
	}
	pf, dpiX, dpiY, st := resolveTargetProperties(props, def)
	if st.Failed() {
		return nil, st
	}
	if pf.Format != def {
		return nil, com.UnsupportedPixelFormat
	}
	pixels := image.NewRGBA(image.Rect(0, 0, w, h))
	if st := readPixels(pixels, pixels.Rect, s.Pixels(), uint32(s.Stride()), pf); st.Failed() {
		return nil, st
	}

	t := &surfaceTarget{surface: s}
	t.initTarget(t, f, newDomain(), pixels, pf, dpiX, dpiY, nil)
	t.onFlush = t.copyOut
	t.onEndDraw = t.copyOut
	f.logf(DebugLevelInformation, "native: surface render target created",
		slog.Int("width", w), slog.Int("height", h))
	return t, com.OK
}

func (t *surfaceTarget) copyOut() com.Status {
	px := t.rootPixels()
	if t.surface.Width() != px.Rect.Dx() || t.surface.Height() != px.Rect.Dy() {
		return com.RecreateTarget
	}
	writePixels(t.surface.Pixels(), t.surface.Stride(), px, px.Rect, t.format)
	return com.OK
}

// windowTarget presents its pixels to a window on EndDraw.
type windowTarget struct {
	target
	window  Window
	options PresentOptions
}

func newWindowTarget(f *factory, props RenderTargetProperties, wp WindowRenderTargetProperties) (*windowTarget, com.Status) {
	if wp.Window == nil || wp.PresentOptions > PresentOptionsRetainContents|PresentOptionsImmediately {
		return nil, com.InvalidArg
	}
	w, h := int(wp.PixelSize.Width), int(wp.PixelSize.Height)
	if wp.PixelSize.IsEmpty() {
		w, h = wp.Window.ClientSize()
	}
	if st := checkPixelSize(w, h); st.Failed() {
		return nil, st
	}
	pf, dpiX, dpiY, st := resolveTargetProperties(props, FormatB8G8R8A8Unorm)
	if st.Failed() {
		return nil, st
	}

	t := &windowTarget{window: wp.Window, options: wp.PresentOptions}
	t.initTarget(t, f, newDomain(), image.NewRGBA(image.Rect(0, 0, w, h)), pf, dpiX, dpiY, nil, IIDWindowRenderTarget)
	t.onEndDraw = t.present
	return t, com.OK
}

func (t *windowTarget) present() com.Status {
	if t.CheckWindowState()&WindowStateOccluded != 0 {
		return com.OK
	}
	if err := t.window.Present(t.pixels); err != nil {
		t.factory.logf(DebugLevelError, "native: present failed", slog.Any("error", err))
		return com.RecreateTarget
	}
	return com.OK
}

func (t *windowTarget) CheckWindowState() WindowState {
	if ow, ok := t.window.(OccludedWindow); ok && ow.Occluded() {
		return WindowStateOccluded
	}
	return WindowStateNone
}

// Resize replaces the pixels with cleared ones of the given size. A zero
// size uses the window's client size.
func (t *windowTarget) Resize(size math2d.SizeU) com.Status {
	if t.drawing {
		return com.WrongState
	}
	w, h := int(size.Width), int(size.Height)
	if size.IsEmpty() {
		w, h = t.window.ClientSize()
	}
	if st := checkPixelSize(w, h); st.Failed() {
		return st
	}
	t.pixels = image.NewRGBA(image.Rect(0, 0, w, h))
	return com.OK
}

func (t *windowTarget) GetWindow() Window { return t.window }

// bitmapTarget draws into a bitmap that shares its parent's domain.
type bitmapTarget struct {
	target
	bitmap *bitmap
}

func newCompatibleTarget(parent *target, size *math2d.SizeF, pixelSize *math2d.SizeU, format *PixelFormat, options CompatibleRenderTargetOptions) (*bitmapTarget, com.Status) {
	if options > CompatibleRenderTargetOptionsGDICompatible {
		return nil, com.InvalidArg
	}
	dpiX, dpiY := parent.dpiX, parent.dpiY
	var ps math2d.SizeU
	switch {
	case pixelSize != nil:
		ps = *pixelSize
		if size != nil && size.Width > 0 && size.Height > 0 {
			dpiX = float32(ps.Width) * DefaultDpi / size.Width
			dpiY = float32(ps.Height) * DefaultDpi / size.Height
		}
	case size != nil:
		if !validFloat(size.Width) || !validFloat(size.Height) || size.Width < 0 || size.Height < 0 {
			return nil, com.InvalidArg
		}
		ps = math2d.SizeU{Width: dipsToPixels(size.Width, dpiX), Height: dipsToPixels(size.Height, dpiY)}
	default:
		ps = parent.GetPixelSize()
	}
	pf := parent.format
	if format != nil {
		pf = *format
	}
	bmp, st := newBitmap(parent.factory, parent.dom, ps, nil, 0, BitmapProperties{
		PixelFormat: pf,
		DpiX:        dpiX,
		DpiY:        dpiY,
		Options:     BitmapOptionsTarget,
	}, parent.format.Format)
	if st.Failed() {
		return nil, st
	}

	t := &bitmapTarget{bitmap: bmp}
	t.initTarget(t, parent.factory, parent.dom, bmp.img, bmp.format, dpiX, dpiY, func() { bmp.Release() }, IIDBitmapRenderTarget)
	t.aa = parent.aa
	t.textAA = parent.textAA
	return t, com.OK
}

func (t *bitmapTarget) GetBitmap() (Bitmap, com.Status) {
	t.bitmap.AddRef()
	return t.bitmap, com.OK
}
