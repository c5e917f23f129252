package math2d

import "github.com/chewxy/math32"

// RectF is an axis-aligned rectangle given by its edges.
// A rectangle with Right < Left or Bottom < Top is empty.
type RectF struct {
	Left, Top, Right, Bottom float32
}

// Rect returns the rectangle with the given edges.
func Rect(left, top, right, bottom float32) RectF {
	return RectF{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectXYWH returns the rectangle at (x, y) with the given size.
func RectXYWH(x, y, w, h float32) RectF {
	return RectF{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// InfiniteRect returns the rectangle covering the whole plane.
func InfiniteRect() RectF {
	inf := math32.Inf(1)
	return RectF{Left: -inf, Top: -inf, Right: inf, Bottom: inf}
}

// Width returns Right-Left.
func (r RectF) Width() float32 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r RectF) Height() float32 { return r.Bottom - r.Top }

// Size returns the rectangle's width and height.
func (r RectF) Size() SizeF { return SizeF{Width: r.Width(), Height: r.Height()} }

// Center returns the center point of r.
func (r RectF) Center() Point2F {
	return Point2F{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether r encloses no area.
func (r RectF) IsEmpty() bool {
	return !(r.Right > r.Left) || !(r.Bottom > r.Top)
}

// Contains reports whether p lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r RectF) Contains(p Point2F) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Intersect returns the largest rectangle contained by both r and s.
// If they do not overlap the result is empty.
func (r RectF) Intersect(s RectF) RectF {
	return RectF{
		Left:   math32.Max(r.Left, s.Left),
		Top:    math32.Max(r.Top, s.Top),
		Right:  math32.Min(r.Right, s.Right),
		Bottom: math32.Min(r.Bottom, s.Bottom),
	}
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles are ignored.
func (r RectF) Union(s RectF) RectF {
	if r.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return r
	}
	return RectF{
		Left:   math32.Min(r.Left, s.Left),
		Top:    math32.Min(r.Top, s.Top),
		Right:  math32.Max(r.Right, s.Right),
		Bottom: math32.Max(r.Bottom, s.Bottom),
	}
}

// Inflate grows r by dx horizontally and dy vertically on every side.
func (r RectF) Inflate(dx, dy float32) RectF {
	return RectF{Left: r.Left - dx, Top: r.Top - dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Offset returns r translated by v.
func (r RectF) Offset(v Vector2F) RectF {
	return RectF{Left: r.Left + v.X, Top: r.Top + v.Y, Right: r.Right + v.X, Bottom: r.Bottom + v.Y}
}

// RectU is an axis-aligned rectangle in whole pixels.
type RectU struct {
	Left, Top, Right, Bottom uint32
}

// Width returns Right-Left, or 0 when the rectangle is inverted.
func (r RectU) Width() uint32 {
	if r.Right < r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns Bottom-Top, or 0 when the rectangle is inverted.
func (r RectU) Height() uint32 {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// RoundedRect is a rectangle with elliptical corners.
type RoundedRect struct {
	Rect             RectF
	RadiusX, RadiusY float32
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center           Point2F
	RadiusX, RadiusY float32
}

// Circle returns an ellipse with equal radii.
func Circle(center Point2F, radius float32) Ellipse {
	return Ellipse{Center: center, RadiusX: radius, RadiusY: radius}
}

// Bounds returns the bounding rectangle of e.
func (e Ellipse) Bounds() RectF {
	return RectF{
		Left:   e.Center.X - e.RadiusX,
		Top:    e.Center.Y - e.RadiusY,
		Right:  e.Center.X + e.RadiusX,
		Bottom: e.Center.Y + e.RadiusY,
	}
}
