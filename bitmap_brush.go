package d2d

import (
	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// BitmapBrush paints with a bitmap, tiled according to its extend modes.
type BitmapBrush struct {
	brushOps[native.BitmapBrush]
}

func (b *BitmapBrush) Clone() *BitmapBrush { return &BitmapBrush{newBrush(b.clone())} }

func (b *BitmapBrush) ExtendModeX() ExtendMode                        { return get(b.handle, native.BitmapBrush.GetExtendModeX) }
func (b *BitmapBrush) ExtendModeY() ExtendMode                        { return get(b.handle, native.BitmapBrush.GetExtendModeY) }
func (b *BitmapBrush) InterpolationMode() BitmapInterpolationMode     { return get(b.handle, native.BitmapBrush.GetInterpolationMode) }
func (b *BitmapBrush) SetExtendModeX(m ExtendMode)                    { set(b.handle, native.BitmapBrush.SetExtendModeX, m) }
func (b *BitmapBrush) SetExtendModeY(m ExtendMode)                    { set(b.handle, native.BitmapBrush.SetExtendModeY, m) }
func (b *BitmapBrush) SetInterpolationMode(m BitmapInterpolationMode) { set(b.handle, native.BitmapBrush.SetInterpolationMode, m) }

// Bitmap returns the bitmap of the brush, or nil when it has none.
// The caller must Release a non-nil result.
func (b *BitmapBrush) Bitmap() *Bitmap {
	defer b.lock()()
	raw := b.raw().GetBitmap()
	if raw == nil {
		return nil
	}
	return &Bitmap{resource[native.Bitmap]{wrap(raw)}}
}

// SetBitmap replaces the bitmap of the brush. A nil bitmap makes the brush
// paint nothing.
func (b *BitmapBrush) SetBitmap(bmp *Bitmap) {
	defer b.lock()()
	if bmp == nil {
		b.raw().SetBitmap(nil)
		return
	}
	b.raw().SetBitmap(bmp.raw())
}

// BitmapBrushBuilder configures a BitmapBrush.
//
// Example:
//
//	brush, err := d2d.NewBitmapBrushBuilder(bmp).
//		ExtendMode(d2d.ExtendModeWrap, d2d.ExtendModeWrap).
//		Build(rt)
type BitmapBrushBuilder struct {
	bitmap *Bitmap
	bprops BitmapBrushProperties
	props  brushProps
}

// NewBitmapBrushBuilder returns a builder for a brush painting bmp, which
// may be nil.
func NewBitmapBrushBuilder(bmp *Bitmap) *BitmapBrushBuilder {
	return &BitmapBrushBuilder{
		bitmap: bmp,
		bprops: DefaultBitmapBrushProperties(),
		props:  defaultBrushProps(),
	}
}

// ExtendMode sets how the bitmap repeats horizontally and vertically.
func (b *BitmapBrushBuilder) ExtendMode(x, y ExtendMode) *BitmapBrushBuilder {
	b.bprops.ExtendModeX, b.bprops.ExtendModeY = x, y
	return b
}

func (b *BitmapBrushBuilder) InterpolationMode(m BitmapInterpolationMode) *BitmapBrushBuilder {
	b.bprops.InterpolationMode = m
	return b
}

func (b *BitmapBrushBuilder) Opacity(opacity float32) *BitmapBrushBuilder {
	b.props.opacity = opacity
	return b
}

func (b *BitmapBrushBuilder) Transform(m math2d.Matrix3x2F) *BitmapBrushBuilder {
	b.props.transform = m
	return b
}

// Build validates the configuration and creates the brush with rc.
func (b *BitmapBrushBuilder) Build(rc ResourceCreator) (*BitmapBrush, error) {
	const name = "BitmapBrushBuilder"
	if b.bprops.ExtendModeX > ExtendModeMirror || b.bprops.ExtendModeY > ExtendModeMirror {
		return nil, invalidField(name, "ExtendMode", "unknown extend mode")
	}
	if b.bprops.InterpolationMode > BitmapInterpolationModeLinear {
		return nil, invalidField(name, "InterpolationMode", "unknown interpolation mode")
	}
	if err := b.props.validate(name); err != nil {
		return nil, err
	}
	var bmp native.Bitmap
	if b.bitmap != nil {
		bmp = b.bitmap.raw()
	}
	bprops := b.bprops
	t := targetOf(rc)
	if t == nil {
		return nil, &StatusError{Op: "CreateBitmapBrush", Code: StatusInvalidArg}
	}
	defer native.Lock(t)()
	raw, st := t.CreateBitmapBrush(bmp, &bprops, b.props.native())
	h, err := adopt("CreateBitmapBrush", raw, st)
	if err != nil {
		return nil, err
	}
	return &BitmapBrush{newBrush(h)}, nil
}
