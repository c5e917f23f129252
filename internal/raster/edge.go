package raster

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge represents a line segment for scanline rasterization.
type Edge struct {
	x0, y0 float64 // Start point
	x1, y1 float64 // End point
	dxdy   float64 // Inverse slope
	dir    int     // Direction: +1 downwards, -1 upwards
}

// NewEdge creates a new edge from two points.
func NewEdge(p0, p1 Point) Edge {
	// Direction is taken before the swap for the non-zero winding rule.
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	var dxdy float64
	if dy := p1.Y - p0.Y; dy != 0 {
		dxdy = (p1.X - p0.X) / dy
	}

	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dxdy: dxdy, dir: dir}
}

// XAtY calculates the x coordinate at the given y coordinate.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// Spans reports whether the edge crosses the horizontal line at y.
// The top end point is inclusive, the bottom one exclusive.
func (e *Edge) Spans(y float64) bool {
	return e.y0 <= y && y < e.y1
}

// Dir returns the winding direction of the edge.
func (e *Edge) Dir() int { return e.dir }
