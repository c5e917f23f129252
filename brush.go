package d2d

import (
	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// ResourceCreator creates device-dependent resources: brushes, bitmaps and
// layers. Every render target and device context is a ResourceCreator.
//
// Resources belong to the resource domain of their creator. Drawing with
// a brush or bitmap from another domain makes EndDraw fail with
// StatusWrongResourceDomain.
type ResourceCreator interface {
	nativeTarget() native.RenderTarget
}

// Brush paints an area.
type Brush interface {
	Opacity() float32
	SetOpacity(opacity float32)
	// Transform maps brush space to the space of the render target at the
	// time the brush is used.
	Transform() math2d.Matrix3x2F
	SetTransform(m math2d.Matrix3x2F)

	Factory() *Factory
	Release()

	nativeBrush() native.Brush
}

// brushOps implements Brush for every brush handle.
type brushOps[T native.Brush] struct {
	resource[T]
}

func newBrush[T native.Brush](h handle[T]) brushOps[T] {
	return brushOps[T]{resource[T]{h}}
}

func (b brushOps[T]) nativeBrush() native.Brush { return b.raw() }

func (b brushOps[T]) Opacity() float32 {
	defer b.lock()()
	return b.raw().GetOpacity()
}

func (b brushOps[T]) SetOpacity(opacity float32) {
	defer b.lock()()
	b.raw().SetOpacity(opacity)
}

func (b brushOps[T]) Transform() math2d.Matrix3x2F {
	defer b.lock()()
	return b.raw().GetTransform()
}

func (b brushOps[T]) SetTransform(m math2d.Matrix3x2F) {
	defer b.lock()()
	b.raw().SetTransform(m)
}

// nativeBrushOf returns the engine brush behind b, or nil when b is nil or
// holds a nil pointer.
func nativeBrushOf(b Brush) native.Brush {
	if isNil(b) {
		return nil
	}
	return b.nativeBrush()
}

// targetOf returns the engine target behind rc, or nil.
func targetOf(rc ResourceCreator) native.RenderTarget {
	if isNil(rc) {
		return nil
	}
	return rc.nativeTarget()
}

// brushProps holds the properties every brush builder accepts.
type brushProps struct {
	opacity   float32
	transform math2d.Matrix3x2F
}

func defaultBrushProps() brushProps {
	p := DefaultBrushProperties()
	return brushProps{opacity: p.Opacity, transform: p.Transform}
}

func (p brushProps) validate(builder string) error {
	if !finite(p.opacity) || p.opacity < 0 || p.opacity > 1 {
		return invalidField(builder, "Opacity", "must be in [0, 1]")
	}
	m := p.transform
	for _, v := range []float32{m.M11, m.M12, m.M21, m.M22, m.Dx, m.Dy} {
		if !finite(v) {
			return invalidField(builder, "Transform", "must be finite")
		}
	}
	return nil
}

func (p brushProps) native() *BrushProperties {
	return &BrushProperties{Opacity: p.opacity, Transform: p.transform}
}

// SolidColorBrush paints with a single color.
type SolidColorBrush struct {
	brushOps[native.SolidColorBrush]
}

func (b *SolidColorBrush) Clone() *SolidColorBrush { return &SolidColorBrush{newBrush(b.clone())} }

func (b *SolidColorBrush) Color() math2d.ColorF {
	return get(b.handle, native.SolidColorBrush.GetColor)
}

func (b *SolidColorBrush) SetColor(c math2d.ColorF) {
	defer b.lock()()
	b.raw().SetColor(c)
}

// SolidColorBrushBuilder configures a SolidColorBrush.
//
// Example:
//
//	brush, err := d2d.NewSolidColorBrushBuilder(math2d.CornflowerBlue).
//		Opacity(0.5).
//		Build(rt)
type SolidColorBrushBuilder struct {
	color math2d.ColorF
	props brushProps
}

// NewSolidColorBrushBuilder returns a builder for an opaque brush of color c.
func NewSolidColorBrushBuilder(c math2d.ColorF) *SolidColorBrushBuilder {
	return &SolidColorBrushBuilder{color: c, props: defaultBrushProps()}
}

func (b *SolidColorBrushBuilder) Opacity(opacity float32) *SolidColorBrushBuilder {
	b.props.opacity = opacity
	return b
}

func (b *SolidColorBrushBuilder) Transform(m math2d.Matrix3x2F) *SolidColorBrushBuilder {
	b.props.transform = m
	return b
}

// Build validates the configuration and creates the brush with rc.
func (b *SolidColorBrushBuilder) Build(rc ResourceCreator) (*SolidColorBrush, error) {
	const name = "SolidColorBrushBuilder"
	if err := b.props.validate(name); err != nil {
		return nil, err
	}
	c := b.color
	if !finite(c.R) || !finite(c.G) || !finite(c.B) || !finite(c.A) {
		return nil, invalidField(name, "Color", "components must be finite")
	}
	t := targetOf(rc)
	if t == nil {
		return nil, &StatusError{Op: "CreateSolidColorBrush", Code: StatusInvalidArg}
	}
	defer native.Lock(t)()
	raw, st := t.CreateSolidColorBrush(c, b.props.native())
	h, err := adopt("CreateSolidColorBrush", raw, st)
	if err != nil {
		return nil, err
	}
	return &SolidColorBrush{newBrush(h)}, nil
}
