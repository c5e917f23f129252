package stroke

import "math"

// Point is a position in the stroker's float64 user space. Callers convert
// from the engine's float32 points once per polyline.
type Point struct {
	X, Y float64
}

// Vec2 is a displacement between two Points.
type Vec2 struct {
	X, Y float64
}

func (p Point) Add(v Vec2) Point              { return Point{p.X + v.X, p.Y + v.Y} }
func (p Point) Sub(q Point) Vec2              { return Vec2{p.X - q.X, p.Y - q.Y} }
func (p Point) Distance(q Point) float64      { return p.Sub(q).Length() }
func (p Point) Lerp(q Point, t float64) Point { return p.Add(q.Sub(p).Scale(t)) }

func (v Vec2) Add(w Vec2) Vec2      { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Neg() Vec2            { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(w Vec2) float64   { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }
func (v Vec2) Length() float64      { return math.Hypot(v.X, v.Y) }
func (v Vec2) Perp() Vec2           { return Vec2{-v.Y, v.X} }
func (v Vec2) Angle() float64       { return math.Atan2(v.Y, v.X) }

// Normalize returns v scaled to unit length, or the zero vector when v is
// too short to have a direction.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < 1e-12 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}
