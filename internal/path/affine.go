package path

import "math"

// Affine is a 2x3 affine transform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Apply transforms p.
func (m Affine) Apply(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// ApplyVector transforms v without translation.
func (m Affine) ApplyVector(v Point) Point {
	return Point{X: m.A*v.X + m.B*v.Y, Y: m.D*v.X + m.E*v.Y}
}

// Then returns the transform applying m first and n second.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		A: n.A*m.A + n.B*m.D,
		B: n.A*m.B + n.B*m.E,
		C: n.A*m.C + n.B*m.F + n.C,
		D: n.D*m.A + n.E*m.D,
		E: n.D*m.B + n.E*m.E,
		F: n.D*m.C + n.E*m.F + n.F,
	}
}

// Invert returns the inverse of m, or false if m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}

// IsIdentity reports whether m is the identity.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}

// MaxScale returns the largest factor by which m stretches a vector.
func (m Affine) MaxScale() float64 {
	// Largest singular value of the linear part.
	a, b, c, d := m.A, m.B, m.D, m.E
	s1 := a*a + b*b + c*c + d*d
	det := a*d - b*c
	s2 := math.Sqrt(math.Max(0, s1*s1-4*det*det))
	return math.Sqrt((s1 + s2) / 2)
}
