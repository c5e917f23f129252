package native

import (
	"image"

	"github.com/gogpu/d2d/internal/color"
	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/internal/raster"
	"github.com/gogpu/d2d/math2d"
)

type entryKind uint8

const (
	entryClip entryKind = iota
	entryLayer
)

// stackEntry is one pushed clip or layer.
type stackEntry struct {
	kind entryKind
	// clip is the clip in effect before the push.
	clip *raster.Mask

	// Layer entries draw into a buffer that is composited into saved on
	// pop. saved is nil for a push that failed.
	layer   *layer
	saved   *image.RGBA
	mask    *raster.Mask
	opacity shader
}

func (t *target) PushAxisAlignedClip(r math2d.RectF, mode AntialiasMode) {
	const op = "PushAxisAlignedClip"
	if !t.begin(op) {
		return
	}
	t.stack = append(t.stack, stackEntry{kind: entryClip, clip: t.clip})
	if mode > AntialiasModeAliased {
		t.fail(op, com.InvalidArg)
		return
	}
	minX, minY, maxX, maxY, _ := path.Bounds(path.Flatten([]path.Figure{rectFigure(r)}, t.device(), path.Tolerance))
	m := raster.RectMask(minX, minY, maxX, maxY, mode == AntialiasModePerPrimitive, t.bounds())
	if t.clip != nil {
		m = m.Intersect(t.clip)
	}
	t.clip = m
}

func (t *target) PopAxisAlignedClip() {
	const op = "PopAxisAlignedClip"
	if !t.begin(op) {
		return
	}
	n := len(t.stack)
	if n == 0 || t.stack[n-1].kind != entryClip {
		t.fail(op, com.PopCallDidNotMatchPush)
		return
	}
	t.clip = t.stack[n-1].clip
	t.stack = t.stack[:n-1]
}

// layerMask returns the coverage a layer is composited with: its content
// bounds, its geometric mask and its opacity.
func (t *target) layerMask(op string, p LayerParameters) (*raster.Mask, bool) {
	dev := t.device()
	aa := p.MaskAntialiasMode == AntialiasModePerPrimitive
	minX, minY, maxX, maxY, _ := path.Bounds(path.Flatten([]path.Figure{rectFigure(p.ContentBounds)}, dev, path.Tolerance))
	m := raster.RectMask(minX, minY, maxX, maxY, aa, t.bounds())
	if p.GeometricMask != nil {
		figs, mode, ok := t.outlineOf(op, p.GeometricMask)
		if !ok {
			return nil, false
		}
		cs := path.Flatten(figs, affine(p.MaskTransform).Then(dev), path.Tolerance)
		m = m.Intersect(t.ras.Fill(contourPolys(cs), fillRule(mode), aa, t.bounds()))
	}
	m.Scale(clamp01(p.Opacity))
	return m, true
}

// PushLayer redirects drawing into a new buffer until the matching PopLayer.
// A failed push still occupies a stack slot so pops stay balanced.
func (t *target) PushLayer(p LayerParameters, l Layer) {
	const op = "PushLayer"
	if !t.begin(op) {
		return
	}
	e := stackEntry{kind: entryLayer, clip: t.clip}
	st := com.OK
	var ly *layer
	if l != nil {
		own, ok := l.(*layer)
		switch {
		case !ok:
			st = com.InvalidArg
		case own.dom != t.dom:
			st = com.WrongResourceDomain
		case own.inUse:
			st = com.LayerAlreadyInUse
		}
		ly = own
	}
	if st.Succeeded() && (!validFloat(p.Opacity) || p.MaskAntialiasMode > AntialiasModeAliased ||
		p.LayerOptions > LayerOptionsInitializeForClearType) {
		st = com.InvalidArg
	}
	if st.Failed() {
		t.fail(op, st)
		t.stack = append(t.stack, e)
		return
	}

	mask, ok := t.layerMask(op, p)
	if !ok {
		t.stack = append(t.stack, e)
		return
	}
	if p.OpacityBrush != nil {
		if e.opacity, ok = t.shaderFor(op, p.OpacityBrush, t.device()); !ok {
			t.stack = append(t.stack, e)
			return
		}
	}
	if ly != nil {
		ly.AddRef()
		ly.inUse = true
	}
	e.layer = ly
	e.saved = t.pixels
	e.mask = mask
	t.stack = append(t.stack, e)
	t.pixels = image.NewRGBA(t.pixels.Rect)
	t.clip = nil
}

func (t *target) PopLayer() {
	const op = "PopLayer"
	if !t.begin(op) {
		return
	}
	n := len(t.stack)
	if n == 0 || t.stack[n-1].kind != entryLayer {
		t.fail(op, com.PopCallDidNotMatchPush)
		return
	}
	t.popLayer()
}

// popLayer removes the top layer entry and composites its buffer.
func (t *target) popLayer() {
	e := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.clip = e.clip
	if e.layer != nil {
		e.layer.inUse = false
		e.layer.Release()
	}
	if e.saved == nil {
		return
	}
	content := t.pixels
	t.pixels = e.saved

	m := t.clipped(e.mask)
	if m.Empty() {
		return
	}
	r := m.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := m.Cov[(y-r.Min.Y)*r.Dx()+x-r.Min.X]
			if e.opacity != nil {
				cov *= e.opacity.shade(float64(x)+0.5, float64(y)+0.5).A
			}
			if cov <= 0 {
				continue
			}
			i := content.PixOffset(x, y)
			src := color.FromU8(content.Pix[i], content.Pix[i+1], content.Pix[i+2], content.Pix[i+3])
			t.store(x, y, color.Over(src.Scale(cov), t.load(x, y)))
		}
	}
}

// unwind pops every clip and layer still pushed.
func (t *target) unwind() {
	for len(t.stack) > 0 {
		e := t.stack[len(t.stack)-1]
		if e.kind == entryLayer {
			t.popLayer()
			continue
		}
		t.clip = e.clip
		t.stack = t.stack[:len(t.stack)-1]
	}
}
