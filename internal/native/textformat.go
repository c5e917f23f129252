package native

import (
	"math"
	"strings"
	"unicode"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/path"
	"github.com/gogpu/d2d/internal/text"
	"github.com/gogpu/d2d/math2d"
)

type textFormat struct {
	object
	font  *text.Font
	props TextFormatProperties
}

func newTextFormat(fnt *text.Font, props TextFormatProperties) *textFormat {
	props.FontData = nil
	tf := &textFormat{font: fnt, props: props}
	tf.init(tf, nil, IIDTextFormat)
	return tf
}

func (tf *textFormat) validate() com.Status {
	p := tf.props
	if p.TextAlignment > TextAlignmentJustified || p.ParagraphAlignment > ParagraphAlignmentCenter ||
		p.WordWrapping > WordWrappingNoWrap || p.ReadingDirection > ReadingDirectionRightToLeft {
		return com.InvalidArg
	}
	return com.OK
}

func (tf *textFormat) GetFontSize() float32                      { return tf.props.FontSize }
func (tf *textFormat) GetLineSpacing() float32                   { return tf.props.LineSpacing }
func (tf *textFormat) GetTextAlignment() TextAlignment           { return tf.props.TextAlignment }
func (tf *textFormat) GetParagraphAlignment() ParagraphAlignment { return tf.props.ParagraphAlignment }
func (tf *textFormat) GetWordWrapping() WordWrapping             { return tf.props.WordWrapping }
func (tf *textFormat) GetReadingDirection() ReadingDirection     { return tf.props.ReadingDirection }

func (tf *textFormat) SetTextAlignment(a TextAlignment) com.Status {
	if a > TextAlignmentJustified {
		return com.InvalidArg
	}
	tf.props.TextAlignment = a
	return com.OK
}

func (tf *textFormat) SetParagraphAlignment(a ParagraphAlignment) com.Status {
	if a > ParagraphAlignmentCenter {
		return com.InvalidArg
	}
	tf.props.ParagraphAlignment = a
	return com.OK
}

func (tf *textFormat) SetWordWrapping(w WordWrapping) com.Status {
	if w > WordWrappingNoWrap {
		return com.InvalidArg
	}
	tf.props.WordWrapping = w
	return com.OK
}

func (tf *textFormat) SetReadingDirection(d ReadingDirection) com.Status {
	if d > ReadingDirectionRightToLeft {
		return com.InvalidArg
	}
	tf.props.ReadingDirection = d
	return com.OK
}

func (tf *textFormat) rtl() bool {
	return tf.props.ReadingDirection == ReadingDirectionRightToLeft
}

func (tf *textFormat) lineHeight() float64 {
	if tf.props.LineSpacing > 0 {
		return float64(tf.props.LineSpacing)
	}
	return tf.font.Metrics(float64(tf.props.FontSize)).LineHeight()
}

// measure returns the advance width of runes.
func (tf *textFormat) measure(runes []rune) float64 {
	var w float64
	for _, r := range text.VisualRuns(runes, tf.rtl()) {
		_, rw := tf.font.Shape(runes, r.Start, r.End, float64(tf.props.FontSize), r.RTL)
		w += rw
	}
	return w
}

// lines splits s into paragraphs and, when wrapping is on and width is
// finite, breaks each paragraph greedily at spaces so no line is wider than
// width unless a single word is.
func (tf *textFormat) lines(s string, width float64) [][]rune {
	wrap := tf.props.WordWrapping == WordWrappingWrap && width > 0 && !math.IsInf(width, 1) && width < math.MaxFloat32
	var out [][]rune
	for _, para := range strings.Split(s, "\n") {
		para = strings.TrimSuffix(para, "\r")
		runes := []rune(para)
		if !wrap {
			out = append(out, runes)
			continue
		}
		out = append(out, tf.wrap(runes, width)...)
	}
	return out
}

func (tf *textFormat) wrap(runes []rune, width float64) [][]rune {
	var out [][]rune
	start, lastBreak := 0, 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && !unicode.IsSpace(runes[i]) {
			continue
		}
		// runes[start:i] ends at a word boundary.
		if lastBreak > start && tf.measure(runes[start:i]) > width {
			out = append(out, runes[start:lastBreak])
			start = lastBreak
			for start < len(runes) && unicode.IsSpace(runes[start]) {
				start++
			}
		}
		lastBreak = i
	}
	return append(out, runes[start:])
}

// layout returns the glyph outlines of s laid out in box, in DIPs.
func (tf *textFormat) layout(s string, box math2d.RectF) []path.Figure {
	size := float64(tf.props.FontSize)
	left, top := float64(box.Left), float64(box.Top)
	width, height := float64(box.Right-box.Left), float64(box.Bottom-box.Top)
	lines := tf.lines(s, width)
	lineH := tf.lineHeight()
	ascent := tf.font.Metrics(size).Ascent

	y := top
	if total := lineH * float64(len(lines)); height > 0 && height < math.MaxFloat32 {
		switch tf.props.ParagraphAlignment {
		case ParagraphAlignmentFar:
			y = top + height - total
		case ParagraphAlignmentCenter:
			y = top + (height-total)/2
		}
	}

	var figs []path.Figure
	for i, line := range lines {
		baseline := y + ascent + float64(i)*lineH
		figs = tf.appendLine(figs, line, left, width, baseline)
	}
	return figs
}

func (tf *textFormat) appendLine(figs []path.Figure, line []rune, left, width, baseline float64) []path.Figure {
	size := float64(tf.props.FontSize)
	type shaped struct {
		glyphs []text.Glyph
		x      float64
	}
	var runs []shaped
	var w float64
	for _, r := range text.VisualRuns(line, tf.rtl()) {
		glyphs, rw := tf.font.Shape(line, r.Start, r.End, size, r.RTL)
		runs = append(runs, shaped{glyphs: glyphs, x: w})
		w += rw
	}

	x := left
	if width > 0 && width < math.MaxFloat32 {
		trailing := tf.props.TextAlignment == TextAlignmentTrailing
		switch {
		case tf.props.TextAlignment == TextAlignmentCenter:
			x = left + (width-w)/2
		case trailing != tf.rtl():
			x = left + width - w
		}
	}

	for _, r := range runs {
		for _, g := range r.glyphs {
			m := path.Affine{A: 1, E: 1, C: x + r.x + g.X, F: baseline + g.Y}
			figs = append(figs, path.TransformAll(tf.font.Outline(g.ID, size), m)...)
		}
	}
	return figs
}
