package native

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/math2d"
)

// DefaultFlatteningTolerance is used by geometry operations given a zero
// tolerance.
const DefaultFlatteningTolerance = 0.25

// DefaultDpi is the DPI at which one DIP is one pixel.
const DefaultDpi = 96

func affine(m math2d.Matrix3x2F) path.Affine {
	return path.Affine{
		A: float64(m.M11), B: float64(m.M21), C: float64(m.Dx),
		D: float64(m.M12), E: float64(m.M22), F: float64(m.Dy),
	}
}

func affineOf(m *math2d.Matrix3x2F) path.Affine {
	if m == nil {
		return path.Identity()
	}
	return affine(*m)
}

func toPath(p math2d.Point2F) path.Point {
	return path.Point{X: float64(p.X), Y: float64(p.Y)}
}

func fromPath(p path.Point) math2d.Point2F {
	return math2d.Point2F{X: float32(p.X), Y: float32(p.Y)}
}

func validFloat(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func validTolerance(tol float32) (float64, bool) {
	switch {
	case math32.IsNaN(tol) || tol < 0:
		return 0, false
	case tol == 0:
		return DefaultFlatteningTolerance, true
	}
	return float64(tol), true
}

// emptyBounds is reported for geometries without points.
var emptyBounds = math2d.RectF{
	Left:   math.MaxFloat32,
	Top:    math.MaxFloat32,
	Right:  -math.MaxFloat32,
	Bottom: -math.MaxFloat32,
}

func boundsOf(cs []path.Contour) math2d.RectF {
	minX, minY, maxX, maxY, ok := path.Bounds(cs)
	if !ok {
		return emptyBounds
	}
	return math2d.RectF{Left: float32(minX), Top: float32(minY), Right: float32(maxX), Bottom: float32(maxY)}
}

// dpiScale maps DIPs to pixels.
func dpiScale(dpiX, dpiY float32) path.Affine {
	return path.Affine{A: float64(dpiX) / DefaultDpi, E: float64(dpiY) / DefaultDpi}
}

func dipsToPixels(v, dpi float32) uint32 {
	return uint32(math32.Ceil(v * dpi / DefaultDpi))
}

func pixelsToDips(v uint32, dpi float32) float32 {
	return float32(v) * DefaultDpi / dpi
}

// pixelLimit bounds pixel coordinates derived from DIPs so that huge or
// infinite rectangles stay representable.
const pixelLimit = 1 << 30

func floorInt(v float64) int { return int(math.Max(-pixelLimit, math.Min(pixelLimit, math.Floor(v)))) }
func ceilInt(v float64) int  { return int(math.Max(-pixelLimit, math.Min(pixelLimit, math.Ceil(v)))) }
