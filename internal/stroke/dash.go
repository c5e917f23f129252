package stroke

import "math"

// Dash splits lines into dashes following the on/off pattern dashes
// (absolute lengths, even indices on). offset shifts the start of the
// pattern along each polyline.
//
// Dashes touching the start or end of an open polyline keep its start or
// end cap; every other dash end uses dashCap. A dash of zero length becomes
// a single point oriented along the line, so round or square dash caps
// draw dots.
func Dash(lines []Polyline, dashes []float64, offset float64, dashCap Cap) []Polyline {
	var total float64
	for _, d := range dashes {
		if d < 0 || math.IsNaN(d) {
			return lines
		}
		total += d
	}
	if total <= 0 || len(dashes) == 0 {
		return lines
	}
	if len(dashes)%2 == 1 {
		dashes = append(append([]float64(nil), dashes...), dashes...)
	}

	var out []Polyline
	for _, l := range lines {
		out = dashPolyline(out, l, dashes, total, offset, dashCap)
	}
	return out
}

func dashPolyline(out []Polyline, l Polyline, dashes []float64, total, offset float64, dashCap Cap) []Polyline {
	pts := dedupe(l.Points)
	if l.Closed && len(pts) > 1 && pts[len(pts)-1] != pts[0] {
		pts = append(pts, pts[0])
	}
	if len(pts) < 2 {
		return append(out, l)
	}
	startCap, endCap := l.StartCap, l.EndCap
	if l.Closed {
		startCap, endCap = dashCap, dashCap
	}

	// Position in the pattern.
	phase := math.Mod(offset, total)
	if phase < 0 {
		phase += total
	}
	idx := 0
	for phase >= dashes[idx] && phase > 0 {
		phase -= dashes[idx]
		idx = (idx + 1) % len(dashes)
	}
	rem := dashes[idx] - phase

	var cur []Point
	curStart := startCap
	on := idx%2 == 0
	if on {
		cur = []Point{pts[0]}
	}
	var lastDir Vec2

	finish := func(endCap Cap) {
		out = append(out, Polyline{Points: cur, StartCap: curStart, EndCap: endCap, Dir: lastDir})
		cur = nil
	}

	for i := 0; i+1 < len(pts); i++ {
		p0, p1 := pts[i], pts[i+1]
		segLen := p0.Distance(p1)
		if segLen == 0 {
			continue
		}
		lastDir = p1.Sub(p0).Normalize()
		pos := 0.0
		for {
			if rem > segLen-pos {
				rem -= segLen - pos
				if on {
					cur = append(cur, p1)
				}
				break
			}
			pos += rem
			p := p0.Lerp(p1, pos/segLen)
			if on {
				cur = append(cur, p)
				finish(dashCap)
			} else {
				cur = []Point{p}
				curStart = dashCap
			}
			on = !on
			idx = (idx + 1) % len(dashes)
			rem = dashes[idx]
		}
	}
	if on && len(cur) > 0 {
		finish(endCap)
	}
	return out
}
