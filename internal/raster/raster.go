// Package raster converts polygons into coverage masks with scanline
// rasterization.
package raster

import (
	"image"
	"math"
	"slices"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// SupersampleScale is the number of sub-scanlines per pixel row used for
// anti-aliased fills. Horizontal coverage is computed exactly.
const SupersampleScale = 4

type crossing struct {
	x   float64
	dir int
}

// Rasterizer performs scanline rasterization. Its buffers are reused
// between calls, so a Rasterizer must not be used concurrently.
type Rasterizer struct {
	edges     []Edge
	crossings []crossing
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		edges:     make([]Edge, 0, 64),
		crossings: make([]crossing, 0, 16),
	}
}

// Fill rasterizes polys, each an implicitly closed polygon, and returns the
// coverage restricted to clip.
func (r *Rasterizer) Fill(polys [][]Point, rule FillRule, aa bool, clip image.Rectangle) *Mask {
	r.edges = r.edges[:0]
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i, p0 := range poly {
			p1 := poly[(i+1)%n]
			if p0.Y == p1.Y || !finite(p0) || !finite(p1) {
				continue
			}
			r.edges = append(r.edges, NewEdge(p0, p1))
			minX = math.Min(minX, math.Min(p0.X, p1.X))
			maxX = math.Max(maxX, math.Max(p0.X, p1.X))
			minY = math.Min(minY, math.Min(p0.Y, p1.Y))
			maxY = math.Max(maxY, math.Max(p0.Y, p1.Y))
		}
	}
	if len(r.edges) == 0 {
		return &Mask{}
	}

	bounds := image.Rect(floorInt(minX), floorInt(minY), ceilInt(maxX), ceilInt(maxY)).Intersect(clip)
	m := NewMask(bounds)
	if m.Empty() {
		return m
	}

	samples := 1
	if aa {
		samples = SupersampleScale
	}
	w := float32(1) / float32(samples)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for s := 0; s < samples; s++ {
			sy := float64(y) + (float64(s)+0.5)/float64(samples)
			r.scanline(sy)
			r.fillSpans(rule, func(xa, xb float64) {
				if aa {
					m.addSpan(y, xa, xb, w)
				} else {
					m.setSpan(y, xa, xb)
				}
			})
		}
	}

	if aa {
		for i, c := range m.Cov {
			if c > 1 {
				m.Cov[i] = 1
			}
		}
	}
	return m
}

// scanline collects the sorted edge crossings at y.
func (r *Rasterizer) scanline(y float64) {
	r.crossings = r.crossings[:0]
	for i := range r.edges {
		e := &r.edges[i]
		if e.Spans(y) {
			r.crossings = append(r.crossings, crossing{x: e.XAtY(y), dir: e.dir})
		}
	}
	slices.SortFunc(r.crossings, func(a, b crossing) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		}
		return 0
	})
}

// fillSpans calls fn for every inside span of the current scanline.
func (r *Rasterizer) fillSpans(rule FillRule, fn func(xa, xb float64)) {
	winding := 0
	for i := 0; i+1 < len(r.crossings); i++ {
		winding += r.crossings[i].dir
		inside := winding != 0
		if rule == FillRuleEvenOdd {
			inside = winding&1 != 0
		}
		if inside {
			fn(r.crossings[i].x, r.crossings[i+1].x)
		}
	}
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
