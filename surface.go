package d2d

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// MemorySurface is a CPU-backed Surface of 4-byte pixels.
//
// It is the simplest destination for CreateSurfaceRenderTarget and
// CreateBitmapFromSurface, and is handy for headless rendering and tests.
//
// Example:
//
//	s := d2d.NewMemorySurface(800, 600, gputypes.TextureFormatBGRA8Unorm)
//	rt, err := f.CreateSurfaceRenderTarget(s, d2d.DefaultRenderTargetProperties())
//	...
//	img := s.Image()
type MemorySurface struct {
	width, height int
	format        gputypes.TextureFormat
	pix           []byte
}

// NewMemorySurface creates a zeroed surface. Negative sizes are treated as
// zero.
func NewMemorySurface(width, height int, format gputypes.TextureFormat) *MemorySurface {
	width, height = max(width, 0), max(height, 0)
	return &MemorySurface{
		width:  width,
		height: height,
		format: format,
		pix:    make([]byte, width*height*4),
	}
}

func (s *MemorySurface) Width() int                     { return s.width }
func (s *MemorySurface) Height() int                    { return s.height }
func (s *MemorySurface) Format() gputypes.TextureFormat { return s.format }
func (s *MemorySurface) Stride() int                    { return s.width * 4 }

// Pixels returns the pixel memory, row by row with no padding. Render
// targets write premultiplied pixels in the surface format.
func (s *MemorySurface) Pixels() []byte { return s.pix }

// Image returns a copy of the surface as an RGBA image, swapping channels
// for BGRA formats.
func (s *MemorySurface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	if isBGRA(s.format) {
		for i := 0; i+3 < len(img.Pix); i += 4 {
			img.Pix[i], img.Pix[i+2] = img.Pix[i+2], img.Pix[i]
		}
	}
	return img
}

// Clear fills the surface with c.
func (s *MemorySurface) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	px := [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)}
	if isBGRA(s.format) {
		px[0], px[2] = px[2], px[0]
	}
	for i := 0; i+3 < len(s.pix); i += 4 {
		copy(s.pix[i:i+4], px[:])
	}
}

// At returns the color of the pixel at (x, y), or transparent black outside
// the surface.
func (s *MemorySurface) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return color.RGBA{}
	}
	i := y*s.Stride() + x*4
	c := color.RGBA{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
	if isBGRA(s.format) {
		c.R, c.B = c.B, c.R
	}
	return c
}

// Resize changes the surface dimensions, discarding its content. Render
// targets created on the surface must be recreated.
func (s *MemorySurface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.pix = make([]byte, width*height*4)
}

func isBGRA(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatBGRA8Unorm
}

var _ Surface = (*MemorySurface)(nil)
