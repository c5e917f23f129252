package text

import "golang.org/x/text/unicode/bidi"

// Run is a directional run of a line, as rune indices [Start, End).
type Run struct {
	Start, End int
	RTL        bool
}

// VisualRuns splits line into directional runs in visual (left to right)
// order.
func VisualRuns(line []rune, baseRTL bool) []Run {
	if len(line) == 0 {
		return nil
	}
	def := bidi.LeftToRight
	if baseRTL {
		def = bidi.RightToLeft
	}
	var p bidi.Paragraph
	if _, err := p.SetString(string(line), bidi.DefaultDirection(def)); err != nil {
		return []Run{{Start: 0, End: len(line), RTL: baseRTL}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Start: 0, End: len(line), RTL: baseRTL}}
	}

	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		start, end := r.Pos() // inclusive rune indices
		runs = append(runs, Run{Start: start, End: min(end+1, len(line)), RTL: r.Direction() == bidi.RightToLeft})
	}
	return runs
}
