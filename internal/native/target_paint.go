package native

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/d2d/internal/blend"
	"github.com/gogpu/d2d/internal/color"
	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/internal/raster"
	"github.com/gogpu/d2d/math2d"
)

// shaderFor resolves b for a drawing call. It reports false when nothing
// should be drawn.
func (t *target) shaderFor(op string, b Brush, toDevice path.Affine) (shader, bool) {
	bb, ok := b.(interface{ brushBase() *brush })
	if b == nil || !ok {
		t.fail(op, com.InvalidArg)
		return nil, false
	}
	br := bb.brushBase()
	if br.dom != t.dom {
		t.fail(op, com.WrongResourceDomain)
		return nil, false
	}
	s := br.shade(affine(br.transform).Then(toDevice))
	return s, s != nil
}

// maskedShader scales one shader by the alpha of another.
type maskedShader struct {
	s, mask shader
}

func (m maskedShader) shade(x, y float64) color.ColorF32 {
	return m.s.shade(x, y).Scale(m.mask.shade(x, y).A)
}

func fillRule(mode FillMode) raster.FillRule {
	if mode == FillModeWinding {
		return raster.FillRuleNonZero
	}
	return raster.FillRuleEvenOdd
}

func rasterPolys(polys [][]path.Point) [][]raster.Point {
	out := make([][]raster.Point, len(polys))
	for i, poly := range polys {
		q := make([]raster.Point, len(poly))
		for j, p := range poly {
			q[j] = raster.Point(p)
		}
		out[i] = q
	}
	return out
}

func contourPolys(cs []path.Contour) [][]raster.Point {
	out := make([][]raster.Point, 0, len(cs))
	for _, c := range filledOnly(cs) {
		q := make([]raster.Point, len(c.Points))
		for j, p := range c.Points {
			q[j] = raster.Point(p)
		}
		out = append(out, q)
	}
	return out
}

// clipped restricts m to the current clip.
func (t *target) clipped(m *raster.Mask) *raster.Mask {
	if t.clip == nil {
		return m
	}
	return m.Intersect(t.clip)
}

func (t *target) load(x, y int) color.ColorF32 {
	i := t.pixels.PixOffset(x, y)
	p := t.pixels.Pix[i : i+4 : i+4]
	return color.FromU8(p[0], p[1], p[2], p[3])
}

func (t *target) store(x, y int, c color.ColorF32) {
	i := t.pixels.PixOffset(x, y)
	p := t.pixels.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.ToU8()
}

// paint composites s over the pixels covered by m.
func (t *target) paint(m *raster.Mask, s shader) {
	m = t.clipped(m)
	if m.Empty() {
		return
	}
	r := m.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := m.Cov[(y-r.Min.Y)*r.Dx()+x-r.Min.X]
			if cov <= 0 {
				continue
			}
			src := s.shade(float64(x)+0.5, float64(y)+0.5).Scale(cov)
			t.store(x, y, color.Over(src, t.load(x, y)))
		}
	}
}

func (t *target) fillFigures(op string, figs []path.Figure, mode FillMode, b Brush, opacity Brush) {
	dev := t.device()
	s, ok := t.shaderFor(op, b, dev)
	if !ok {
		return
	}
	if opacity != nil {
		mask, ok := t.shaderFor(op, opacity, dev)
		if !ok {
			return
		}
		s = maskedShader{s: s, mask: mask}
	}
	cs := path.Flatten(figs, dev, path.Tolerance)
	t.paint(t.ras.Fill(contourPolys(cs), fillRule(mode), t.aa == AntialiasModePerPrimitive, t.bounds()), s)
}

// strokeFigures strokes figs with a pen in world space, so the stroke is
// transformed together with the figures.
func (t *target) strokeFigures(op string, figs []path.Figure, b Brush, width float32, style StrokeStyle) {
	if !(width >= 0) || !validFloat(width) {
		t.fail(op, com.InvalidArg)
		return
	}
	dev := t.device()
	s, ok := t.shaderFor(op, b, dev)
	if !ok {
		return
	}
	scale := dev.MaxScale()
	if width == 0 || scale == 0 {
		return
	}
	tol := path.Tolerance / scale
	pen, st := newPen(width, style, tol)
	if st.Failed() {
		t.fail(op, st)
		return
	}
	polys := pen.stroke(path.Flatten(figs, path.Identity(), tol))
	for _, poly := range polys {
		for i, p := range poly {
			poly[i] = dev.Apply(p)
		}
	}
	t.paint(t.ras.Fill(rasterPolys(polys), raster.FillRuleNonZero, t.aa == AntialiasModePerPrimitive, t.bounds()), s)
}

func rectFigure(r math2d.RectF) path.Figure {
	return path.RectFigure(float64(r.Left), float64(r.Top), float64(r.Right), float64(r.Bottom))
}

func (t *target) DrawLine(p0, p1 math2d.Point2F, b Brush, width float32, style StrokeStyle) {
	if !t.begin("DrawLine") {
		return
	}
	fig := path.Figure{Start: toPath(p0), Segments: []path.Segment{path.LineSeg(toPath(p1))}}
	t.strokeFigures("DrawLine", []path.Figure{fig}, b, width, style)
}

func (t *target) DrawRectangle(r math2d.RectF, b Brush, width float32, style StrokeStyle) {
	if t.begin("DrawRectangle") {
		t.strokeFigures("DrawRectangle", []path.Figure{rectFigure(r)}, b, width, style)
	}
}

func (t *target) FillRectangle(r math2d.RectF, b Brush) {
	if t.begin("FillRectangle") {
		t.fillFigures("FillRectangle", []path.Figure{rectFigure(r)}, FillModeWinding, b, nil)
	}
}

func (t *target) DrawRoundedRectangle(rr math2d.RoundedRect, b Brush, width float32, style StrokeStyle) {
	if t.begin("DrawRoundedRectangle") {
		t.strokeFigures("DrawRoundedRectangle", []path.Figure{roundedRectFigure(rr)}, b, width, style)
	}
}

func (t *target) FillRoundedRectangle(rr math2d.RoundedRect, b Brush) {
	if t.begin("FillRoundedRectangle") {
		t.fillFigures("FillRoundedRectangle", []path.Figure{roundedRectFigure(rr)}, FillModeWinding, b, nil)
	}
}

func (t *target) DrawEllipse(e math2d.Ellipse, b Brush, width float32, style StrokeStyle) {
	if t.begin("DrawEllipse") {
		t.strokeFigures("DrawEllipse", []path.Figure{ellipseFigure(e)}, b, width, style)
	}
}

func (t *target) FillEllipse(e math2d.Ellipse, b Brush) {
	if t.begin("FillEllipse") {
		t.fillFigures("FillEllipse", []path.Figure{ellipseFigure(e)}, FillModeWinding, b, nil)
	}
}

// outlineOf returns the figures of a geometry created by this target's
// factory.
func (t *target) outlineOf(op string, g Geometry) ([]path.Figure, FillMode, bool) {
	gb, st := t.factory.ownGeometry(g)
	if st.Failed() {
		t.fail(op, st)
		return nil, 0, false
	}
	figs, mode, st := gb.outline()
	if st.Failed() {
		t.fail(op, st)
		return nil, 0, false
	}
	return figs, mode, true
}

func (t *target) DrawGeometry(g Geometry, b Brush, width float32, style StrokeStyle) {
	if !t.begin("DrawGeometry") {
		return
	}
	if figs, _, ok := t.outlineOf("DrawGeometry", g); ok {
		t.strokeFigures("DrawGeometry", figs, b, width, style)
	}
}

func (t *target) FillGeometry(g Geometry, b Brush, opacity Brush) {
	if !t.begin("FillGeometry") {
		return
	}
	if figs, mode, ok := t.outlineOf("FillGeometry", g); ok {
		t.fillFigures("FillGeometry", figs, mode, b, opacity)
	}
}

// Clear replaces the pixels inside the clip with c, ignoring the
// transform.
func (t *target) Clear(c *math2d.ColorF) {
	if !t.begin("Clear") {
		return
	}
	var cc math2d.ColorF
	if c != nil {
		cc = *c
	}
	if t.format.AlphaMode == AlphaModeIgnore {
		cc.A = 1
	}
	pc := premultiplied(cc)
	m := t.clip
	if m == nil {
		m = raster.FullMask(t.bounds())
	}
	r := m.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := m.Cov[(y-r.Min.Y)*r.Dx()+x-r.Min.X]
			if cov <= 0 {
				continue
			}
			t.store(x, y, color.Lerp(t.load(x, y), pc, cov, color.GammaSRGB))
		}
	}
}

var bitmapInterpolators = [...]xdraw.Interpolator{
	BitmapInterpolationModeNearestNeighbor: xdraw.NearestNeighbor,
	BitmapInterpolationModeLinear:          xdraw.ApproxBiLinear,
}

var imageInterpolators = [...]xdraw.Interpolator{
	InterpolationModeNearestNeighbor:   xdraw.NearestNeighbor,
	InterpolationModeLinear:            xdraw.ApproxBiLinear,
	InterpolationModeCubic:             xdraw.CatmullRom,
	InterpolationModeMultiSampleLinear: xdraw.BiLinear,
	InterpolationModeAnisotropic:       xdraw.BiLinear,
	InterpolationModeHighQualityCubic:  xdraw.CatmullRom,
}

// drawBitmap draws the src DIP rectangle of bmp into the dst world
// rectangle with the given interpolator and compositing operator.
func (t *target) drawBitmap(op string, bmp *bitmap, dst, src math2d.RectF, opacity float32, interp xdraw.Interpolator, mode blend.Op) {
	if bmp.options&BitmapOptionsCannotDraw != 0 {
		t.fail(op, com.InvalidArg)
		return
	}
	// src in bitmap pixels.
	sx, sy := float64(bmp.dpiX)/DefaultDpi, float64(bmp.dpiY)/DefaultDpi
	sl, st := float64(src.Left)*sx, float64(src.Top)*sy
	sw, sh := float64(src.Right-src.Left)*sx, float64(src.Bottom-src.Top)*sy
	dw, dh := float64(dst.Right-dst.Left), float64(dst.Bottom-dst.Top)
	if sw <= 0 || sh <= 0 || dw == 0 || dh == 0 {
		return
	}
	sr := image.Rect(floorInt(sl), floorInt(st), ceilInt(sl+sw), ceilInt(st+sh)).Intersect(bmp.img.Rect)
	if sr.Empty() {
		return
	}

	// bitmap pixels to world to device.
	toWorld := path.Affine{A: dw / sw, E: dh / sh, C: float64(dst.Left) - sl*dw/sw, F: float64(dst.Top) - st*dh/sh}
	m := toWorld.Then(t.device())

	minX, minY, maxX, maxY, _ := path.Bounds(path.Flatten([]path.Figure{
		path.RectFigure(float64(sr.Min.X), float64(sr.Min.Y), float64(sr.Max.X), float64(sr.Max.Y)),
	}, m, path.Tolerance))
	area := image.Rect(floorInt(minX), floorInt(minY), ceilInt(maxX), ceilInt(maxY)).Intersect(t.bounds())
	if area.Empty() {
		return
	}
	tmp := image.NewRGBA(area)
	interp.Transform(tmp, f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}, bmp.img, sr, xdraw.Src, nil)

	cov := raster.FullMask(area)
	cov.Scale(clamp01(opacity))
	cov = t.clipped(cov)
	if cov.Empty() {
		return
	}
	f := blend.FuncFor(mode)
	r := cov.Rect
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := cov.Cov[(y-r.Min.Y)*r.Dx()+x-r.Min.X]
			if c <= 0 {
				continue
			}
			i := tmp.PixOffset(x, y)
			s := color.FromU8(tmp.Pix[i], tmp.Pix[i+1], tmp.Pix[i+2], tmp.Pix[i+3])
			if mode == blend.SourceOver {
				t.store(x, y, color.Over(s.Scale(c), t.load(x, y)))
				continue
			}
			t.store(x, y, blend.Apply(f, s, t.load(x, y), c))
		}
	}
}

func (t *target) DrawBitmap(b Bitmap, dst *math2d.RectF, opacity float32, mode BitmapInterpolationMode, src *math2d.RectF) {
	const op = "DrawBitmap"
	if !t.begin(op) {
		return
	}
	bmp, st := t.ownBitmap(b)
	if st.Failed() {
		t.fail(op, st)
		return
	}
	if mode > BitmapInterpolationModeLinear || !validFloat(opacity) {
		t.fail(op, com.InvalidArg)
		return
	}
	size := bmp.GetSize()
	full := math2d.RectF{Right: size.Width, Bottom: size.Height}
	d, s := full, full
	if dst != nil {
		d = *dst
	}
	if src != nil {
		s = *src
	}
	t.drawBitmap(op, bmp, d, s, opacity, bitmapInterpolators[mode], blend.SourceOver)
}

// drawImage draws img at offset. Only bitmaps are images in this engine.
func (t *target) drawImage(img Image, offset *math2d.Point2F, src *math2d.RectF, interp InterpolationMode, mode CompositeMode) {
	const op = "DrawImage"
	if !t.begin(op) {
		return
	}
	b, ok := img.(Bitmap)
	if !ok {
		t.fail(op, com.InvalidArg)
		return
	}
	bmp, st := t.ownBitmap(b)
	if st.Failed() {
		t.fail(op, st)
		return
	}
	if interp > InterpolationModeHighQualityCubic || mode > CompositeModeMaskInvert {
		t.fail(op, com.InvalidArg)
		return
	}
	size := bmp.GetSize()
	s := math2d.RectF{Right: size.Width, Bottom: size.Height}
	if src != nil {
		s = *src
	}
	var o math2d.Point2F
	if offset != nil {
		o = *offset
	}
	d := math2d.RectF{Left: o.X, Top: o.Y, Right: o.X + s.Right - s.Left, Bottom: o.Y + s.Bottom - s.Top}
	t.drawBitmap(op, bmp, d, s, 1, imageInterpolators[interp], blend.Op(mode))
}

func (t *target) DrawText(s string, format TextFormat, layout math2d.RectF, b Brush, options DrawTextOptions) {
	const op = "DrawText"
	if !t.begin(op) {
		return
	}
	tf, ok := format.(*textFormat)
	if !ok || options&^(DrawTextOptionsNoSnap|DrawTextOptionsClip) != 0 {
		t.fail(op, com.InvalidArg)
		return
	}
	dev := t.device()
	sh, ok := t.shaderFor(op, b, dev)
	if !ok {
		return
	}
	aa := t.aa == AntialiasModePerPrimitive
	switch t.textAA {
	case TextAntialiasModeAliased:
		aa = false
	case TextAntialiasModeClearType, TextAntialiasModeGrayscale:
		aa = true
	}
	cs := path.Flatten(tf.layout(s, layout), dev, path.Tolerance)
	m := t.ras.Fill(contourPolys(cs), raster.FillRuleNonZero, aa, t.bounds())
	if options&DrawTextOptionsClip != 0 {
		box := path.Flatten([]path.Figure{rectFigure(layout)}, dev, path.Tolerance)
		m = m.Intersect(t.ras.Fill(contourPolys(box), raster.FillRuleNonZero, aa, t.bounds()))
	}
	t.paint(m, sh)
}
