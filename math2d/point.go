package math2d

import "github.com/chewxy/math32"

// Point2F is a point in two-dimensional space.
type Point2F struct {
	X, Y float32
}

// Pt is shorthand for Point2F{X: x, Y: y}.
func Pt(x, y float32) Point2F {
	return Point2F{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point2F) Add(v Vector2F) Point2F {
	return Point2F{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point2F) Sub(q Point2F) Vector2F {
	return Vector2F{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp performs linear interpolation between p and q.
// t=0 returns p, t=1 returns q.
func (p Point2F) Lerp(q Point2F, t float32) Point2F {
	return Point2F{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Distance returns the distance between p and q.
func (p Point2F) Distance(q Point2F) float32 {
	return p.Sub(q).Length()
}

// Vector2F is a displacement in two-dimensional space.
type Vector2F struct {
	X, Y float32
}

// Add returns v+w.
func (v Vector2F) Add(w Vector2F) Vector2F {
	return Vector2F{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v Vector2F) Sub(w Vector2F) Vector2F {
	return Vector2F{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v multiplied by s.
func (v Vector2F) Scale(s float32) Vector2F {
	return Vector2F{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vector2F) Dot(w Vector2F) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product of v and w.
func (v Vector2F) Cross(w Vector2F) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vector2F) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vector2F) Normalize() Vector2F {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector2F{X: v.X / l, Y: v.Y / l}
}

// SizeF is a size in device-independent pixels.
type SizeF struct {
	Width, Height float32
}

// SizeU is a size in whole pixels.
type SizeU struct {
	Width, Height uint32
}

// IsEmpty reports whether either dimension is zero.
func (s SizeU) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// Point2U is a point in whole pixels.
type Point2U struct {
	X, Y uint32
}
