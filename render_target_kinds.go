package d2d

import (
	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// WindowRenderTarget is a render target presenting into a host Window at
// every EndDraw.
//
// When presentation fails EndDraw reports StatusRecreateTarget: release
// the render target and every resource created with it, then create them
// again.
type WindowRenderTarget struct {
	RenderTarget
}

func (rt *WindowRenderTarget) window() native.WindowRenderTarget {
	return rt.raw().(native.WindowRenderTarget)
}

func (rt *WindowRenderTarget) Clone() *WindowRenderTarget {
	return &WindowRenderTarget{*rt.RenderTarget.Clone()}
}

// CheckWindowState reports whether the window is occluded. Frames drawn
// while it is are not presented.
func (rt *WindowRenderTarget) CheckWindowState() WindowState {
	defer rt.lock()()
	return rt.window().CheckWindowState()
}

// Resize changes the pixel size of the render target. It fails with
// StatusWrongState inside a drawing bracket.
func (rt *WindowRenderTarget) Resize(size math2d.SizeU) error {
	defer rt.lock()()
	return check("Resize", rt.window().Resize(size))
}

// Window returns the window the render target presents into.
func (rt *WindowRenderTarget) Window() Window {
	defer rt.lock()()
	return rt.window().GetWindow()
}

// SurfaceRenderTarget is a render target drawing into an externally owned
// Surface. The surface receives the rendered pixels at every Flush and
// EndDraw.
type SurfaceRenderTarget struct {
	RenderTarget
	surface Surface
}

func (rt *SurfaceRenderTarget) Clone() *SurfaceRenderTarget {
	return &SurfaceRenderTarget{RenderTarget: *rt.RenderTarget.Clone(), surface: rt.surface}
}

// Surface returns the surface the render target draws into.
func (rt *SurfaceRenderTarget) Surface() Surface { return rt.surface }

// BitmapRenderTarget is an offscreen render target created by
// CreateCompatibleRenderTarget. Its pixels are a Bitmap that can be drawn
// by the parent render target.
type BitmapRenderTarget struct {
	RenderTarget
}

func (rt *BitmapRenderTarget) Clone() *BitmapRenderTarget {
	return &BitmapRenderTarget{*rt.RenderTarget.Clone()}
}

// Bitmap returns the bitmap the render target draws into. The caller must
// Release it.
func (rt *BitmapRenderTarget) Bitmap() (*Bitmap, error) {
	unlock := rt.lock()
	raw, st := rt.raw().(native.BitmapRenderTarget).GetBitmap()
	unlock()
	h, err := adopt("GetBitmap", raw, st)
	if err != nil {
		return nil, err
	}
	return &Bitmap{resource[native.Bitmap]{h}}, nil
}
