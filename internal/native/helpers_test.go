package native

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/math2d"
)

// memSurface is a Surface over a byte slice.
type memSurface struct {
	w, h   int
	format gputypes.TextureFormat
	pix    []byte
}

func newMemSurface(w, h int) *memSurface {
	return &memSurface{w: w, h: h, format: gputypes.TextureFormatBGRA8Unorm, pix: make([]byte, w*h*4)}
}

func (s *memSurface) Width() int                     { return s.w }
func (s *memSurface) Height() int                    { return s.h }
func (s *memSurface) Format() gputypes.TextureFormat { return s.format }
func (s *memSurface) Stride() int                    { return s.w * 4 }
func (s *memSurface) Pixels() []byte                 { return s.pix }

// rgba returns the pixel at (x, y) in RGBA order.
func (s *memSurface) rgba(x, y int) [4]uint8 {
	i := (y*s.w + x) * 4
	p := s.pix[i : i+4]
	if s.format == gputypes.TextureFormatBGRA8Unorm {
		return [4]uint8{p[2], p[1], p[0], p[3]}
	}
	return [4]uint8{p[0], p[1], p[2], p[3]}
}

// nullProvider is a DeviceProvider without a GPU.
type nullProvider struct {
	format gputypes.TextureFormat
}

func (nullProvider) Device() gpucontext.Device               { return nil }
func (nullProvider) Queue() gpucontext.Queue                 { return nil }
func (nullProvider) Adapter() gpucontext.Adapter             { return nil }
func (p nullProvider) SurfaceFormat() gputypes.TextureFormat { return p.format }
func (nullProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// gpuProvider reports a GPU device behind the given adapter.
type gpuProvider struct {
	nullProvider
	info gpucontext.AdapterInfo
}

func (gpuProvider) Device() gpucontext.Device              { return struct{}{} }
func (p gpuProvider) AdapterInfo() gpucontext.AdapterInfo { return p.info }

// testWindow records presented frames.
type testWindow struct {
	w, h     int
	occluded bool
	fail     bool
	presents int
	last     [4]uint8
}

func (w *testWindow) ClientSize() (int, int) { return w.w, w.h }
func (w *testWindow) Occluded() bool         { return w.occluded }

func (w *testWindow) Present(img *image.RGBA) error {
	if w.fail {
		return errors.New("device lost")
	}
	w.presents++
	copy(w.last[:], img.Pix[:4])
	return nil
}

var (
	red   = math2d.ColorF{R: 1, A: 1}
	blue  = math2d.ColorF{B: 1, A: 1}
	black = math2d.ColorF{A: 1}
)

func testFactory(t *testing.T) Factory {
	t.Helper()
	lib, err := Open(SoftwareLibrary)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", SoftwareLibrary, err)
	}
	f, st := lib.CreateFactory(FactoryTypeSingleThreaded, FactoryOptions{})
	if st.Failed() {
		t.Fatalf("CreateFactory() = %v", st)
	}
	t.Cleanup(func() { f.Release() })
	return f
}

func testTarget(t *testing.T, f Factory, w, h int) (RenderTarget, *memSurface) {
	t.Helper()
	s := newMemSurface(w, h)
	rt, st := f.CreateSurfaceRenderTarget(s, RenderTargetProperties{})
	if st.Failed() {
		t.Fatalf("CreateSurfaceRenderTarget() = %v", st)
	}
	t.Cleanup(func() { rt.Release() })
	return rt, s
}

func solid(t *testing.T, rt RenderTarget, c math2d.ColorF) SolidColorBrush {
	t.Helper()
	b, st := rt.CreateSolidColorBrush(c, nil)
	if st.Failed() {
		t.Fatalf("CreateSolidColorBrush() = %v", st)
	}
	t.Cleanup(func() { b.Release() })
	return b
}

func endDraw(t *testing.T, rt RenderTarget) {
	t.Helper()
	if _, _, st := rt.EndDraw(); st.Failed() {
		t.Fatalf("EndDraw() = %v", st)
	}
}

func wantStatus(t *testing.T, name string, got, want com.Status) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

var infinite = math2d.RectF{Left: -1e30, Top: -1e30, Right: 1e30, Bottom: 1e30}

func layerParams() LayerParameters {
	return LayerParameters{ContentBounds: infinite, MaskTransform: math2d.Identity(), Opacity: 1}
}
