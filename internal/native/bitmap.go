package native

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/math2d"
)

// MaximumBitmapSize is the largest width or height of a bitmap.
const MaximumBitmapSize = 16384

// bitmap stores premultiplied pixels regardless of its memory format;
// the format only governs how pixels are copied in and out.
type bitmap struct {
	resource
	dom        *domain
	img        *image.RGBA
	format     PixelFormat
	dpiX, dpiY float32
	options    BitmapOptions
	mapped     bool
}

func (*bitmap) isImage() {}

// resolvePixelFormat fills in unknown fields and rejects formats the
// engine cannot store.
func resolvePixelFormat(pf PixelFormat, def Format) (PixelFormat, com.Status) {
	if pf.Format == FormatUnknown {
		pf.Format = def
	}
	if pf.AlphaMode == AlphaModeUnknown {
		pf.AlphaMode = AlphaModePremultiplied
	}
	switch pf.Format {
	case FormatB8G8R8A8Unorm, FormatR8G8B8A8Unorm:
	default:
		return pf, com.UnsupportedPixelFormat
	}
	switch pf.AlphaMode {
	case AlphaModePremultiplied, AlphaModeIgnore:
	default:
		return pf, com.UnsupportedPixelFormat
	}
	return pf, com.OK
}

func resolveDpi(dpiX, dpiY float32) (float32, float32, bool) {
	if dpiX == 0 && dpiY == 0 {
		return DefaultDpi, DefaultDpi, true
	}
	if !(dpiX > 0 && dpiY > 0) || !validFloat(dpiX) || !validFloat(dpiY) {
		return 0, 0, false
	}
	return dpiX, dpiY, true
}

func newBitmap(f *factory, dom *domain, size math2d.SizeU, src []byte, pitch uint32, props BitmapProperties, def Format) (*bitmap, com.Status) {
	if size.IsEmpty() {
		return nil, com.InvalidArg
	}
	if size.Width > MaximumBitmapSize || size.Height > MaximumBitmapSize {
		return nil, com.MaxTextureSizeExceeded
	}
	pf, st := resolvePixelFormat(props.PixelFormat, def)
	if st.Failed() {
		return nil, st
	}
	dpiX, dpiY, ok := resolveDpi(props.DpiX, props.DpiY)
	if !ok {
		return nil, com.InvalidArg
	}
	if props.Options&BitmapOptionsCPURead != 0 &&
		(props.Options&BitmapOptionsCannotDraw == 0 || props.Options&BitmapOptionsTarget != 0) {
		return nil, com.InvalidArg
	}

	img := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
	if src != nil {
		if st := readPixels(img, img.Rect, src, pitch, pf); st.Failed() {
			return nil, st
		}
	} else if pf.AlphaMode == AlphaModeIgnore {
		forceOpaque(img, img.Rect)
	}
	b := &bitmap{dom: dom, img: img, format: pf, dpiX: dpiX, dpiY: dpiY, options: props.Options}
	b.initResource(b, f, nil, IIDImage, IIDBitmap)
	return b, com.OK
}

// readPixels copies src, laid out in pf with the given row pitch, into r
// of dst.
func readPixels(dst *image.RGBA, r image.Rectangle, src []byte, pitch uint32, pf PixelFormat) com.Status {
	w, h := r.Dx(), r.Dy()
	if int(pitch) < w*4 || len(src) < (h-1)*int(pitch)+w*4 {
		return com.InvalidArg
	}
	bgra := pf.Format == FormatB8G8R8A8Unorm
	for y := 0; y < h; y++ {
		row := src[y*int(pitch):]
		out := dst.Pix[dst.PixOffset(r.Min.X, r.Min.Y+y):]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4 : x*4+4]
			q := out[x*4 : x*4+4 : x*4+4]
			if bgra {
				q[0], q[1], q[2], q[3] = p[2], p[1], p[0], p[3]
			} else {
				q[0], q[1], q[2], q[3] = p[0], p[1], p[2], p[3]
			}
			if pf.AlphaMode == AlphaModeIgnore {
				q[3] = 0xff
			}
		}
	}
	return com.OK
}

// writePixels copies r of src into dst laid out in pf with the given row
// pitch.
func writePixels(dst []byte, pitch int, src *image.RGBA, r image.Rectangle, pf PixelFormat) {
	bgra := pf.Format == FormatB8G8R8A8Unorm
	for y := 0; y < r.Dy(); y++ {
		row := src.Pix[src.PixOffset(r.Min.X, r.Min.Y+y):]
		out := dst[y*pitch:]
		for x := 0; x < r.Dx(); x++ {
			p := row[x*4 : x*4+4 : x*4+4]
			q := out[x*4 : x*4+4 : x*4+4]
			if bgra {
				q[0], q[1], q[2], q[3] = p[2], p[1], p[0], p[3]
			} else {
				q[0], q[1], q[2], q[3] = p[0], p[1], p[2], p[3]
			}
			if pf.AlphaMode == AlphaModeIgnore {
				q[3] = 0xff
			}
		}
	}
}

func forceOpaque(img *image.RGBA, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[img.PixOffset(x, y)+3] = 0xff
		}
	}
}

func (b *bitmap) GetSize() math2d.SizeF {
	return math2d.SizeF{
		Width:  pixelsToDips(uint32(b.img.Rect.Dx()), b.dpiX),
		Height: pixelsToDips(uint32(b.img.Rect.Dy()), b.dpiY),
	}
}

func (b *bitmap) GetPixelSize() math2d.SizeU {
	return math2d.SizeU{Width: uint32(b.img.Rect.Dx()), Height: uint32(b.img.Rect.Dy())}
}

func (b *bitmap) GetPixelFormat() PixelFormat  { return b.format }
func (b *bitmap) GetDpi() (dpiX, dpiY float32) { return b.dpiX, b.dpiY }
func (b *bitmap) GetOptions() BitmapOptions    { return b.options }

func (b *bitmap) pixelRect(r *math2d.RectU) (image.Rectangle, bool) {
	return rectIn(r, b.img.Rect)
}

// rectIn converts r to an image rectangle inside bounds. A nil r is the
// whole of bounds.
func rectIn(r *math2d.RectU, bounds image.Rectangle) (image.Rectangle, bool) {
	if r == nil {
		return bounds, true
	}
	if r.Right < r.Left || r.Bottom < r.Top {
		return image.Rectangle{}, false
	}
	ir := image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
	return ir, ir.In(bounds) || ir.Empty()
}

// copyInto copies sr of src to dst in b.
func (b *bitmap) copyInto(dst *math2d.Point2U, src *image.RGBA, sr image.Rectangle) com.Status {
	var dp image.Point
	if dst != nil {
		dp = image.Pt(int(dst.X), int(dst.Y))
	}
	dr := sr.Sub(sr.Min).Add(dp)
	if !dr.In(b.img.Rect) && !dr.Empty() {
		return com.InvalidArg
	}
	xdraw.Copy(b.img, dp, src, sr, xdraw.Src, nil)
	if b.format.AlphaMode == AlphaModeIgnore {
		forceOpaque(b.img, dr)
	}
	return com.OK
}

func (b *bitmap) CopyFromBitmap(dst *math2d.Point2U, src Bitmap, srcRect *math2d.RectU) com.Status {
	s, ok := src.(*bitmap)
	if !ok {
		return com.InvalidArg
	}
	if s.dom != b.dom {
		return com.WrongResourceDomain
	}
	sr, ok := s.pixelRect(srcRect)
	if !ok {
		return com.InvalidArg
	}
	return b.copyInto(dst, s.img, sr)
}

func (b *bitmap) CopyFromRenderTarget(dst *math2d.Point2U, rt RenderTarget, srcRect *math2d.RectU) com.Status {
	tb, ok := rt.(interface{ targetBase() *target })
	if !ok {
		return com.InvalidArg
	}
	t := tb.targetBase()
	if t.dom != b.dom {
		return com.WrongResourceDomain
	}
	px := t.rootPixels()
	if px == nil {
		return com.WrongState
	}
	sr, ok := rectIn(srcRect, px.Rect)
	if !ok {
		return com.InvalidArg
	}
	return b.copyInto(dst, px, sr)
}

func (b *bitmap) CopyFromMemory(dstRect *math2d.RectU, src []byte, pitch uint32) com.Status {
	r, ok := b.pixelRect(dstRect)
	if !ok {
		return com.InvalidArg
	}
	if r.Empty() {
		return com.OK
	}
	return readPixels(b.img, r, src, pitch, b.format)
}

// Map returns a copy of the pixels in the bitmap's memory format. Only
// reading bitmaps created with BitmapOptionsCPURead is supported.
func (b *bitmap) Map(options MapOptions) (MappedRect, com.Status) {
	if options&MapOptionsRead == 0 || options&^MapOptionsRead != 0 || b.options&BitmapOptionsCPURead == 0 {
		return MappedRect{}, com.InvalidArg
	}
	if b.mapped {
		return MappedRect{}, com.WrongState
	}
	pitch := b.img.Rect.Dx() * 4
	bits := make([]byte, pitch*b.img.Rect.Dy())
	writePixels(bits, pitch, b.img, b.img.Rect, b.format)
	b.mapped = true
	return MappedRect{Pitch: uint32(pitch), Bits: bits}, com.OK
}

func (b *bitmap) Unmap() com.Status {
	if !b.mapped {
		return com.WrongState
	}
	b.mapped = false
	return com.OK
}
