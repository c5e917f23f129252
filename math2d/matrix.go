package math2d

import "github.com/chewxy/math32"

// Matrix3x2F is a 2D affine transformation. See the package documentation
// for the layout.
type Matrix3x2F struct {
	M11, M12 float32
	M21, M22 float32
	Dx, Dy   float32
}

// Identity returns the identity transformation.
func Identity() Matrix3x2F {
	return Matrix3x2F{M11: 1, M22: 1}
}

// Translation returns a matrix that moves points by (x, y).
func Translation(x, y float32) Matrix3x2F {
	return Matrix3x2F{M11: 1, M22: 1, Dx: x, Dy: y}
}

// Scale returns a matrix that scales by (sx, sy) about center.
func Scale(sx, sy float32, center Point2F) Matrix3x2F {
	return Matrix3x2F{
		M11: sx,
		M22: sy,
		Dx:  center.X - sx*center.X,
		Dy:  center.Y - sy*center.Y,
	}
}

// Rotation returns a matrix that rotates by angle degrees clockwise
// (in the Y-down coordinate system) about center.
func Rotation(angle float32, center Point2F) Matrix3x2F {
	rad := angle * math32.Pi / 180
	sin, cos := math32.Sincos(rad)
	return Matrix3x2F{
		M11: cos,
		M12: sin,
		M21: -sin,
		M22: cos,
		Dx:  center.X - cos*center.X + sin*center.Y,
		Dy:  center.Y - sin*center.X - cos*center.Y,
	}
}

// Skew returns a matrix that skews by angleX and angleY degrees about center.
func Skew(angleX, angleY float32, center Point2F) Matrix3x2F {
	tx := math32.Tan(angleX * math32.Pi / 180)
	ty := math32.Tan(angleY * math32.Pi / 180)
	return Matrix3x2F{
		M11: 1,
		M12: ty,
		M21: tx,
		M22: 1,
		Dx:  -center.Y * tx,
		Dy:  -center.X * ty,
	}
}

// Multiply returns the transformation that applies m and then n.
func (m Matrix3x2F) Multiply(n Matrix3x2F) Matrix3x2F {
	return Matrix3x2F{
		M11: m.M11*n.M11 + m.M12*n.M21,
		M12: m.M11*n.M12 + m.M12*n.M22,
		M21: m.M21*n.M11 + m.M22*n.M21,
		M22: m.M21*n.M12 + m.M22*n.M22,
		Dx:  m.Dx*n.M11 + m.Dy*n.M21 + n.Dx,
		Dy:  m.Dx*n.M12 + m.Dy*n.M22 + n.Dy,
	}
}

// Determinant returns the determinant of the linear part of m.
func (m Matrix3x2F) Determinant() float32 {
	return m.M11*m.M22 - m.M12*m.M21
}

// IsInvertible reports whether m has an inverse.
func (m Matrix3x2F) IsInvertible() bool {
	return math32.Abs(m.Determinant()) > 1e-12
}

// Invert returns the inverse of m.
// The second result is false if m is singular, in which case m is
// returned unchanged.
func (m Matrix3x2F) Invert() (Matrix3x2F, bool) {
	det := m.Determinant()
	if math32.Abs(det) <= 1e-12 {
		return m, false
	}
	inv := 1 / det
	return Matrix3x2F{
		M11: m.M22 * inv,
		M12: -m.M12 * inv,
		M21: -m.M21 * inv,
		M22: m.M11 * inv,
		Dx:  (m.M21*m.Dy - m.M22*m.Dx) * inv,
		Dy:  (m.M12*m.Dx - m.M11*m.Dy) * inv,
	}, true
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Matrix3x2F) IsIdentity() bool {
	return m == Identity()
}

// TransformPoint applies m to p.
func (m Matrix3x2F) TransformPoint(p Point2F) Point2F {
	return Point2F{
		X: p.X*m.M11 + p.Y*m.M21 + m.Dx,
		Y: p.X*m.M12 + p.Y*m.M22 + m.Dy,
	}
}

// TransformVector applies the linear part of m to v.
func (m Matrix3x2F) TransformVector(v Vector2F) Vector2F {
	return Vector2F{
		X: v.X*m.M11 + v.Y*m.M21,
		Y: v.X*m.M12 + v.Y*m.M22,
	}
}

// TransformRect returns the bounding box of r after transformation by m.
func (m Matrix3x2F) TransformRect(r RectF) RectF {
	p0 := m.TransformPoint(Point2F{X: r.Left, Y: r.Top})
	p1 := m.TransformPoint(Point2F{X: r.Right, Y: r.Top})
	p2 := m.TransformPoint(Point2F{X: r.Right, Y: r.Bottom})
	p3 := m.TransformPoint(Point2F{X: r.Left, Y: r.Bottom})
	return RectF{
		Left:   math32.Min(math32.Min(p0.X, p1.X), math32.Min(p2.X, p3.X)),
		Top:    math32.Min(math32.Min(p0.Y, p1.Y), math32.Min(p2.Y, p3.Y)),
		Right:  math32.Max(math32.Max(p0.X, p1.X), math32.Max(p2.X, p3.X)),
		Bottom: math32.Max(math32.Max(p0.Y, p1.Y), math32.Max(p2.Y, p3.Y)),
	}
}

// IsAxisAligned reports whether m maps axis-aligned rectangles onto
// axis-aligned rectangles.
func (m Matrix3x2F) IsAxisAligned() bool {
	return (m.M12 == 0 && m.M21 == 0) || (m.M11 == 0 && m.M22 == 0)
}
