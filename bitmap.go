package d2d

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// Image is anything a DeviceContext can draw, or draw into.
type Image interface {
	Factory() *Factory
	Release()

	nativeImage() native.Image
}

// Bitmap is a rectangle of pixels owned by the engine.
//
// Bitmaps are created in the pixel format of their creator unless one is
// given. Supported formats are FormatB8G8R8A8Unorm and FormatR8G8B8A8Unorm
// with premultiplied or ignored alpha; others fail with
// StatusUnsupportedPixelFormat.
type Bitmap struct {
	resource[native.Bitmap]
}

func (b *Bitmap) nativeImage() native.Image { return b.raw() }

func (b *Bitmap) Clone() *Bitmap { return &Bitmap{resource[native.Bitmap]{b.clone()}} }

// Size returns the size of the bitmap in DIPs.
func (b *Bitmap) Size() math2d.SizeF { return get(b.handle, native.Bitmap.GetSize) }

func (b *Bitmap) PixelSize() math2d.SizeU  { return get(b.handle, native.Bitmap.GetPixelSize) }
func (b *Bitmap) PixelFormat() PixelFormat { return get(b.handle, native.Bitmap.GetPixelFormat) }
func (b *Bitmap) Options() BitmapOptions   { return get(b.handle, native.Bitmap.GetOptions) }

func (b *Bitmap) Dpi() (dpiX, dpiY float32) {
	defer b.lock()()
	return b.raw().GetDpi()
}

// CopyFromBitmap copies srcRect of src to dst in b. Nil dst means the
// origin; nil srcRect means all of src.
func (b *Bitmap) CopyFromBitmap(dst *math2d.Point2U, src *Bitmap, srcRect *math2d.RectU) error {
	if src == nil {
		return &StatusError{Op: "CopyFromBitmap", Code: StatusInvalidArg}
	}
	defer b.lock()()
	return check("CopyFromBitmap", b.raw().CopyFromBitmap(dst, src.raw(), srcRect))
}

// CopyFromRenderTarget copies the current contents of a render target.
// Both must belong to the same resource domain.
func (b *Bitmap) CopyFromRenderTarget(dst *math2d.Point2U, rt ResourceCreator, srcRect *math2d.RectU) error {
	t := targetOf(rt)
	if t == nil {
		return &StatusError{Op: "CopyFromRenderTarget", Code: StatusInvalidArg}
	}
	defer b.lock()()
	return check("CopyFromRenderTarget", b.raw().CopyFromRenderTarget(dst, t, srcRect))
}

// CopyFromMemory copies pixels laid out in the bitmap's pixel format with
// the given row pitch into dstRect, or into the whole bitmap when dstRect
// is nil.
func (b *Bitmap) CopyFromMemory(dstRect *math2d.RectU, src []byte, pitch uint32) error {
	defer b.lock()()
	return check("CopyFromMemory", b.raw().CopyFromMemory(dstRect, src, pitch))
}

// Map returns the pixels of a bitmap created with BitmapOptionsCPURead.
// The memory is valid until Unmap.
func (b *Bitmap) Map(options MapOptions) (MappedRect, error) {
	defer b.lock()()
	mr, st := b.raw().Map(options)
	return mr, check("Map", st)
}

func (b *Bitmap) Unmap() error {
	defer b.lock()()
	return check("Unmap", b.raw().Unmap())
}

// BitmapBuilder configures a Bitmap.
//
// Example:
//
//	bmp, err := d2d.NewBitmapBuilder().
//		PixelSize(64, 64).
//		Source(pixels, 64*4).
//		Build(rt)
type BitmapBuilder struct {
	size    math2d.SizeU
	src     []byte
	pitch   uint32
	props   BitmapProperties
	hasSize bool
	hasSrc  bool
	hasDpi  bool
}

// NewBitmapBuilder returns a builder for an uninitialized bitmap in the
// creator's pixel format at 96 DPI. PixelSize must be set before Build.
func NewBitmapBuilder() *BitmapBuilder {
	return &BitmapBuilder{}
}

func (b *BitmapBuilder) PixelSize(width, height uint32) *BitmapBuilder {
	b.size = math2d.SizeU{Width: width, Height: height}
	b.hasSize = true
	return b
}

// Source sets the initial pixels, laid out in the bitmap's pixel format
// with the given row pitch in bytes.
func (b *BitmapBuilder) Source(data []byte, pitch uint32) *BitmapBuilder {
	b.src, b.pitch, b.hasSrc = data, pitch, true
	return b
}

func (b *BitmapBuilder) PixelFormat(pf PixelFormat) *BitmapBuilder {
	b.props.PixelFormat = pf
	return b
}

func (b *BitmapBuilder) Dpi(dpiX, dpiY float32) *BitmapBuilder {
	b.props.DpiX, b.props.DpiY, b.hasDpi = dpiX, dpiY, true
	return b
}

func (b *BitmapBuilder) Options(o BitmapOptions) *BitmapBuilder {
	b.props.Options = o
	return b
}

func (b *BitmapBuilder) validate() error {
	const name = "BitmapBuilder"
	if !b.hasSize {
		return missingField(name, "PixelSize")
	}
	if b.size.IsEmpty() {
		return invalidField(name, "PixelSize", "width and height must be positive")
	}
	if b.hasSrc {
		w, h := int(b.size.Width), int(b.size.Height)
		if int(b.pitch) < w*4 {
			return invalidField(name, "Source", "pitch is smaller than a row")
		}
		if len(b.src) < (h-1)*int(b.pitch)+w*4 {
			return invalidField(name, "Source", "data is smaller than pitch times height")
		}
	}
	if b.hasDpi && (!(b.props.DpiX > 0) || !(b.props.DpiY > 0) || !finite(b.props.DpiX) || !finite(b.props.DpiY)) {
		return invalidField(name, "Dpi", "must be positive and finite")
	}
	return nil
}

// Build validates the configuration and creates the bitmap with rc.
func (b *BitmapBuilder) Build(rc ResourceCreator) (*Bitmap, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	t := targetOf(rc)
	if t == nil {
		return nil, &StatusError{Op: "CreateBitmap", Code: StatusInvalidArg}
	}
	defer native.Lock(t)()
	raw, st := t.CreateBitmap(b.size, b.src, b.pitch, b.props)
	h, err := adopt("CreateBitmap", raw, st)
	if err != nil {
		return nil, err
	}
	return &Bitmap{resource[native.Bitmap]{h}}, nil
}

// CreateBitmapFromImage creates a premultiplied R8G8B8A8 bitmap holding
// the pixels of img.
func CreateBitmapFromImage(rc ResourceCreator, img image.Image) (*Bitmap, error) {
	if img == nil {
		return nil, &StatusError{Op: "CreateBitmapFromImage", Code: StatusInvalidArg}
	}
	r := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || r.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		xdraw.Draw(rgba, rgba.Bounds(), img, r.Min, xdraw.Src)
	}
	if r.Empty() {
		return nil, invalidField("CreateBitmapFromImage", "img", "image is empty")
	}
	return NewBitmapBuilder().
		PixelSize(uint32(r.Dx()), uint32(r.Dy())).
		Source(rgba.Pix, uint32(rgba.Stride)).
		PixelFormat(PixelFormat{Format: FormatR8G8B8A8Unorm, AlphaMode: AlphaModePremultiplied}).
		Build(rc)
}

// Layer is the backing store of PushLayer. A layer can be pushed only once
// at a time.
type Layer struct {
	resource[native.Layer]
}

func (l *Layer) Clone() *Layer { return &Layer{resource[native.Layer]{l.clone()}} }

// Size returns the size the layer was created with. Zero means the layer
// grows to the render target.
func (l *Layer) Size() math2d.SizeF { return get(l.handle, native.Layer.GetSize) }
