package d2d

import (
	"fmt"
	"sync"

	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// drawState tracks the BeginDraw/EndDraw bracket of a render target. It is
// shared by every clone of a handle.
type drawState struct {
	mu      sync.Mutex
	drawing bool
	// pushed counts layers and clips pushed in the current bracket.
	pushed int
}

func (s *drawState) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawing {
		panic("d2d: BeginDraw called twice without EndDraw")
	}
	s.drawing = true
}

func (s *drawState) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.drawing {
		panic("d2d: EndDraw called without BeginDraw")
	}
	s.drawing = false
	s.pushed = 0
}

func (s *drawState) open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawing
}

func (s *drawState) mustDraw(op string) {
	if !s.open() {
		panic(fmt.Sprintf("d2d: %s called outside BeginDraw/EndDraw", op))
	}
}

func (s *drawState) push(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.drawing {
		panic(fmt.Sprintf("d2d: %s called outside BeginDraw/EndDraw", op))
	}
	s.pushed++
}

func (s *drawState) pop(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.drawing {
		panic(fmt.Sprintf("d2d: %s called outside BeginDraw/EndDraw", op))
	}
	if s.pushed == 0 {
		panic(fmt.Sprintf("d2d: %s with nothing pushed", op))
	}
	s.pushed--
}

// RenderTarget draws into pixels.
//
// Paint operations are only valid between BeginDraw and EndDraw and panic
// otherwise. They do not return errors: the first failure is recorded and
// returned by EndDraw or Flush with the tags that were set when it
// happened. Clones of a handle share its drawing state.
//
// A RenderTarget is a ResourceCreator: brushes, bitmaps and layers made
// with it can only be used with it and the targets compatible with it.
type RenderTarget struct {
	handle[native.RenderTarget]
	state *drawState
}

func newRenderTarget(h handle[native.RenderTarget]) RenderTarget {
	return RenderTarget{handle: h, state: &drawState{}}
}

func (rt *RenderTarget) nativeTarget() native.RenderTarget { return rt.raw() }

// Clone returns a new handle to the same render target.
func (rt *RenderTarget) Clone() *RenderTarget {
	return &RenderTarget{handle: rt.clone(), state: rt.state}
}

// Factory returns the factory that created the render target.
// The caller must Release the result.
func (rt *RenderTarget) Factory() *Factory {
	defer rt.lock()()
	return &Factory{wrap(rt.raw().GetFactory())}
}

// BeginDraw starts a drawing bracket. It panics if one is already open.
func (rt *RenderTarget) BeginDraw() {
	rt.state.begin()
	defer rt.lock()()
	rt.raw().BeginDraw()
}

// EndDraw ends the drawing bracket, reporting the first failure since the
// last EndDraw or Flush together with the tags active when it happened.
// Layers and clips still pushed are popped and reported as
// StatusPushPopUnbalanced. The bracket is closed even when EndDraw fails.
// A StatusRecreateTarget failure means the render target and every
// resource created with it must be recreated.
//
// EndDraw panics when no bracket is open.
func (rt *RenderTarget) EndDraw() (tag1, tag2 uint64, err error) {
	rt.state.end()
	defer rt.lock()()
	tag1, tag2, st := rt.raw().EndDraw()
	return tag1, tag2, check("EndDraw", st)
}

// Draw calls fn between BeginDraw and EndDraw.
//
// Example:
//
//	err := rt.Draw(func(rt *d2d.RenderTarget) {
//		rt.Clear(&math2d.White)
//		rt.FillRectangle(math2d.Rect(10, 10, 50, 50), brush)
//	})
//
// When fn panics the bracket is ended before the panic continues.
func (rt *RenderTarget) Draw(fn func(rt *RenderTarget)) error {
	rt.BeginDraw()
	done := false
	defer func() {
		if !done && rt.state.open() {
			rt.EndDraw()
		}
	}()
	fn(rt)
	done = true
	_, _, err := rt.EndDraw()
	return err
}

// Flush executes pending drawing and reports and clears the first failure
// recorded so far. Outside a drawing bracket it fails with
// StatusWrongState.
func (rt *RenderTarget) Flush() (tag1, tag2 uint64, err error) {
	defer rt.lock()()
	tag1, tag2, st := rt.raw().Flush()
	return tag1, tag2, check("Flush", st)
}

// Clear fills the clip area with c, or with transparent black when c is
// nil.
func (rt *RenderTarget) Clear(c *math2d.ColorF) {
	rt.state.mustDraw("Clear")
	defer rt.lock()()
	rt.raw().Clear(c)
}

func (rt *RenderTarget) DrawLine(p0, p1 math2d.Point2F, brush Brush, width float32, style *StrokeStyle) {
	rt.state.mustDraw("DrawLine")
	defer rt.lock()()
	rt.raw().DrawLine(p0, p1, nativeBrushOf(brush), width, style.nativeStyle())
}

func (rt *RenderTarget) DrawRectangle(r math2d.RectF, brush Brush, width float32, style *StrokeStyle) {
	rt.state.mustDraw("DrawRectangle")
	defer rt.lock()()
	rt.raw().DrawRectangle(r, nativeBrushOf(brush), width, style.nativeStyle())
}

func (rt *RenderTarget) FillRectangle(r math2d.RectF, brush Brush) {
	rt.state.mustDraw("FillRectangle")
	defer rt.lock()()
	rt.raw().FillRectangle(r, nativeBrushOf(brush))
}

func (rt *RenderTarget) DrawRoundedRectangle(rr math2d.RoundedRect, brush Brush, width float32, style *StrokeStyle) {
	rt.state.mustDraw("DrawRoundedRectangle")
	defer rt.lock()()
	rt.raw().DrawRoundedRectangle(rr, nativeBrushOf(brush), width, style.nativeStyle())
}

func (rt *RenderTarget) FillRoundedRectangle(rr math2d.RoundedRect, brush Brush) {
	rt.state.mustDraw("FillRoundedRectangle")
	defer rt.lock()()
	rt.raw().FillRoundedRectangle(rr, nativeBrushOf(brush))
}

func (rt *RenderTarget) DrawEllipse(e math2d.Ellipse, brush Brush, width float32, style *StrokeStyle) {
	rt.state.mustDraw("DrawEllipse")
	defer rt.lock()()
	rt.raw().DrawEllipse(e, nativeBrushOf(brush), width, style.nativeStyle())
}

func (rt *RenderTarget) FillEllipse(e math2d.Ellipse, brush Brush) {
	rt.state.mustDraw("FillEllipse")
	defer rt.lock()()
	rt.raw().FillEllipse(e, nativeBrushOf(brush))
}

// DrawGeometry strokes the outline of g.
func (rt *RenderTarget) DrawGeometry(g Geometry, brush Brush, width float32, style *StrokeStyle) {
	rt.state.mustDraw("DrawGeometry")
	defer rt.lock()()
	rt.raw().DrawGeometry(nativeGeometryOf(g), nativeBrushOf(brush), width, style.nativeStyle())
}

// FillGeometry fills the interior of g. A non-nil opacityBrush multiplies
// coverage by its alpha; it must be a BitmapBrush.
func (rt *RenderTarget) FillGeometry(g Geometry, brush Brush, opacityBrush Brush) {
	rt.state.mustDraw("FillGeometry")
	defer rt.lock()()
	rt.raw().FillGeometry(nativeGeometryOf(g), nativeBrushOf(brush), nativeBrushOf(opacityBrush))
}

// DrawBitmap draws the src rectangle of bitmap, or all of it when src is
// nil, into dst, or at the origin at the bitmap's size when dst is nil.
func (rt *RenderTarget) DrawBitmap(bitmap *Bitmap, dst *math2d.RectF, opacity float32, mode BitmapInterpolationMode, src *math2d.RectF) {
	rt.state.mustDraw("DrawBitmap")
	var raw native.Bitmap
	if bitmap != nil {
		raw = bitmap.raw()
	}
	defer rt.lock()()
	rt.raw().DrawBitmap(raw, dst, opacity, mode, src)
}

// DrawText lays out text in layout with format and fills the glyphs with
// brush.
func (rt *RenderTarget) DrawText(text string, format *TextFormat, layout math2d.RectF, brush Brush, options DrawTextOptions) {
	rt.state.mustDraw("DrawText")
	var tf native.TextFormat
	if format != nil {
		tf = format.raw()
	}
	defer rt.lock()()
	rt.raw().DrawText(text, tf, layout, nativeBrushOf(brush), options)
}

// PushLayer redirects drawing into layer until the matching PopLayer,
// which composites the layer through params. A nil layer lets the engine
// supply one.
func (rt *RenderTarget) PushLayer(params LayerParameters, layer *Layer) {
	rt.state.push("PushLayer")
	var l native.Layer
	if layer != nil {
		l = layer.raw()
	}
	defer rt.lock()()
	rt.raw().PushLayer(params.native(), l)
}

// PopLayer ends the most recent PushLayer. It panics when nothing is
// pushed; popping a clip pushed with PushAxisAlignedClip is reported by
// EndDraw as StatusPopCallDidNotMatchPush.
func (rt *RenderTarget) PopLayer() {
	rt.state.pop("PopLayer")
	defer rt.lock()()
	rt.raw().PopLayer()
}

// PushAxisAlignedClip restricts drawing to r, in the current transform,
// until the matching PopAxisAlignedClip.
func (rt *RenderTarget) PushAxisAlignedClip(r math2d.RectF, mode AntialiasMode) {
	rt.state.push("PushAxisAlignedClip")
	defer rt.lock()()
	rt.raw().PushAxisAlignedClip(r, mode)
}

func (rt *RenderTarget) PopAxisAlignedClip() {
	rt.state.pop("PopAxisAlignedClip")
	defer rt.lock()()
	rt.raw().PopAxisAlignedClip()
}

func (rt *RenderTarget) SetTransform(m math2d.Matrix3x2F)            { set(rt.handle, native.RenderTarget.SetTransform, m) }
func (rt *RenderTarget) Transform() math2d.Matrix3x2F                { return get(rt.handle, native.RenderTarget.GetTransform) }
func (rt *RenderTarget) SetAntialiasMode(mode AntialiasMode)         { set(rt.handle, native.RenderTarget.SetAntialiasMode, mode) }
func (rt *RenderTarget) AntialiasMode() AntialiasMode                { return get(rt.handle, native.RenderTarget.GetAntialiasMode) }
func (rt *RenderTarget) SetTextAntialiasMode(mode TextAntialiasMode) { set(rt.handle, native.RenderTarget.SetTextAntialiasMode, mode) }
func (rt *RenderTarget) TextAntialiasMode() TextAntialiasMode        { return get(rt.handle, native.RenderTarget.GetTextAntialiasMode) }

// SetTags labels subsequent drawing calls. EndDraw and Flush report the
// tags that were set when the first failure happened.
func (rt *RenderTarget) SetTags(tag1, tag2 uint64) {
	defer rt.lock()()
	rt.raw().SetTags(tag1, tag2)
}

func (rt *RenderTarget) Tags() (tag1, tag2 uint64) {
	defer rt.lock()()
	return rt.raw().GetTags()
}

// SetDpi sets the number of pixels per inch. Zero for both resets to the
// factory's desktop DPI; other non-positive values are ignored.
func (rt *RenderTarget) SetDpi(dpiX, dpiY float32) {
	defer rt.lock()()
	rt.raw().SetDpi(dpiX, dpiY)
}

func (rt *RenderTarget) Dpi() (dpiX, dpiY float32) {
	defer rt.lock()()
	return rt.raw().GetDpi()
}

// Size returns the size of the render target in DIPs.
func (rt *RenderTarget) Size() math2d.SizeF { return get(rt.handle, native.RenderTarget.GetSize) }

func (rt *RenderTarget) PixelSize() math2d.SizeU   { return get(rt.handle, native.RenderTarget.GetPixelSize) }
func (rt *RenderTarget) PixelFormat() PixelFormat  { return get(rt.handle, native.RenderTarget.GetPixelFormat) }
func (rt *RenderTarget) MaximumBitmapSize() uint32 { return get(rt.handle, native.RenderTarget.GetMaximumBitmapSize) }

// IsSupported reports whether the render target satisfies props.
func (rt *RenderTarget) IsSupported(props RenderTargetProperties) bool {
	defer rt.lock()()
	return rt.raw().IsSupported(props)
}

// CreateLayer creates a layer for PushLayer. A nil size lets the layer grow
// to the render target.
func (rt *RenderTarget) CreateLayer(size *math2d.SizeF) (*Layer, error) {
	defer rt.lock()()
	raw, st := rt.raw().CreateLayer(size)
	h, err := adopt("CreateLayer", raw, st)
	if err != nil {
		return nil, err
	}
	return &Layer{resource[native.Layer]{h}}, nil
}

// CreateCompatibleRenderTarget creates an offscreen render target sharing
// the resource domain of rt. Nil arguments default to the size, pixel size
// and pixel format of rt.
func (rt *RenderTarget) CreateCompatibleRenderTarget(size *math2d.SizeF, pixelSize *math2d.SizeU, format *PixelFormat, options CompatibleRenderTargetOptions) (*BitmapRenderTarget, error) {
	defer rt.lock()()
	raw, st := rt.raw().CreateCompatibleRenderTarget(size, pixelSize, format, options)
	h, err := adopt("CreateCompatibleRenderTarget", native.RenderTarget(raw), st)
	if err != nil {
		return nil, err
	}
	return &BitmapRenderTarget{newRenderTarget(h)}, nil
}

// nativeGeometryOf returns the engine geometry behind g, or nil when g is
// nil or holds a nil pointer.
func nativeGeometryOf(g Geometry) native.Geometry {
	if isNil(g) {
		return nil
	}
	return g.nativeGeometry()
}

// LayerParameters describe how a pushed layer is composited.
type LayerParameters struct {
	// ContentBounds limits the layer, in the current transform.
	ContentBounds math2d.RectF
	// GeometricMask, when set, clips the layer to a geometry placed with
	// MaskTransform.
	GeometricMask     Geometry
	MaskAntialiasMode AntialiasMode
	MaskTransform     math2d.Matrix3x2F
	Opacity           float32
	// OpacityBrush, when set, multiplies the layer by its alpha.
	OpacityBrush Brush
	LayerOptions LayerOptions
}

func (p LayerParameters) native() native.LayerParameters {
	return native.LayerParameters{
		ContentBounds:     p.ContentBounds,
		GeometricMask:     nativeGeometryOf(p.GeometricMask),
		MaskAntialiasMode: p.MaskAntialiasMode,
		MaskTransform:     p.MaskTransform,
		Opacity:           p.Opacity,
		OpacityBrush:      nativeBrushOf(p.OpacityBrush),
		LayerOptions:      p.LayerOptions,
	}
}
