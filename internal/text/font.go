// Package text shapes and outlines text for the software engine.
//
// Shaping uses the HarfBuzz port from go-text/typesetting, glyph outlines
// come from golang.org/x/image/font/sfnt, and bidirectional runs are
// resolved with golang.org/x/text/unicode/bidi.
package text

import (
	"bytes"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/d2d/internal/path"
)

// Font is a parsed TrueType or OpenType font. It is safe for concurrent use.
type Font struct {
	sfnt   *sfnt.Font
	gotext *font.Font

	// sfnt.Buffer and HarfbuzzShaper are not safe for concurrent use.
	mu     sync.Mutex
	buf    sfnt.Buffer
	shaper shaping.HarfbuzzShaper
}

// Parse parses font data.
func Parse(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	return &Font{sfnt: sf, gotext: face.Font}, nil
}

var defaultFont = sync.OnceValue(func() *Font {
	f, err := Parse(goregular.TTF)
	if err != nil {
		panic("text: embedded Go Regular font is invalid: " + err.Error())
	}
	return f
})

// Default returns the Go Regular font.
func Default() *Font {
	return defaultFont()
}

// Metrics holds vertical font metrics at a given size, in pixels.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns the distance between consecutive baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics returns the font's vertical metrics at size pixels per em.
func (f *Font) Metrics(size float64) Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.sfnt.Metrics(&f.buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{Ascent: size * 0.8, Descent: size * 0.2}
	}
	asc, desc, height := fromFixed(m.Ascent), fromFixed(m.Descent), fromFixed(m.Height)
	return Metrics{Ascent: asc, Descent: desc, LineGap: max(0, height-asc-desc)}
}

// Glyph is a shaped glyph positioned relative to the start of its run.
// Y grows downwards.
type Glyph struct {
	ID      uint16
	X, Y    float64
	Advance float64
	// Cluster is the index of the first rune of the glyph's cluster.
	Cluster int
}

// Shape shapes runes[start:end] at size pixels per em. Glyphs are returned
// in visual order, left to right.
func (f *Font) Shape(runes []rune, start, end int, size float64, rtl bool) (glyphs []Glyph, width float64) {
	if start >= end {
		return nil, 0
	}
	dir := di.DirectionLTR
	if rtl {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: dir,
		Face:      font.NewFace(f.gotext),
		Size:      toFixed(size),
		Script:    detectScript(runes[start:end]),
		Language:  language.NewLanguage("en"),
	}

	f.mu.Lock()
	out := f.shaper.Shape(input)
	f.mu.Unlock()

	glyphs = make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs[i] = Glyph{
			ID:      uint16(g.GlyphID),
			X:       x + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
			Cluster: g.TextIndex(),
		}
		x += adv
	}
	return glyphs, x
}

// Outline returns the outline of glyph id at size pixels per em, with the
// origin on the baseline and Y growing downwards. Every contour is a closed,
// filled figure.
func (f *Font) Outline(id uint16, size float64) []path.Figure {
	f.mu.Lock()
	segs, err := f.sfnt.LoadGlyph(&f.buf, sfnt.GlyphIndex(id), toFixed(size), nil)
	f.mu.Unlock()
	if err != nil {
		return nil
	}

	var figs []path.Figure
	var cur *path.Figure
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			figs = append(figs, path.Figure{Start: pt(s.Args[0]), Closed: true, Filled: true})
			cur = &figs[len(figs)-1]
		case sfnt.SegmentOpLineTo:
			if cur != nil {
				cur.Segments = append(cur.Segments, path.LineSeg(pt(s.Args[0])))
			}
		case sfnt.SegmentOpQuadTo:
			if cur != nil {
				cur.Segments = append(cur.Segments, path.QuadSeg(pt(s.Args[0]), pt(s.Args[1])))
			}
		case sfnt.SegmentOpCubeTo:
			if cur != nil {
				cur.Segments = append(cur.Segments, path.CubicSeg(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])))
			}
		}
	}
	return figs
}

func pt(p fixed.Point26_6) path.Point {
	return path.Point{X: fromFixed(p.X), Y: fromFixed(p.Y)}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// detectScript returns the script of the first letter in runes.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}
