package d2d

import "github.com/gogpu/d2d/internal/native"

// TextFormat describes how DrawText lays out and shapes text: the font and
// its size, alignment, wrapping and reading direction.
type TextFormat struct {
	handle[native.TextFormat]
}

func (tf *TextFormat) Clone() *TextFormat { return &TextFormat{tf.clone()} }

func (tf *TextFormat) FontSize() float32                      { return get(tf.handle, native.TextFormat.GetFontSize) }
func (tf *TextFormat) LineSpacing() float32                   { return get(tf.handle, native.TextFormat.GetLineSpacing) }
func (tf *TextFormat) TextAlignment() TextAlignment           { return get(tf.handle, native.TextFormat.GetTextAlignment) }
func (tf *TextFormat) ParagraphAlignment() ParagraphAlignment { return get(tf.handle, native.TextFormat.GetParagraphAlignment) }
func (tf *TextFormat) WordWrapping() WordWrapping             { return get(tf.handle, native.TextFormat.GetWordWrapping) }
func (tf *TextFormat) ReadingDirection() ReadingDirection     { return get(tf.handle, native.TextFormat.GetReadingDirection) }

// SetTextAlignment sets the horizontal alignment of lines in the layout
// rectangle. Justified lines are laid out as leading.
func (tf *TextFormat) SetTextAlignment(a TextAlignment) error {
	defer tf.lock()()
	return check("SetTextAlignment", tf.raw().SetTextAlignment(a))
}

func (tf *TextFormat) SetParagraphAlignment(a ParagraphAlignment) error {
	defer tf.lock()()
	return check("SetParagraphAlignment", tf.raw().SetParagraphAlignment(a))
}

func (tf *TextFormat) SetWordWrapping(w WordWrapping) error {
	defer tf.lock()()
	return check("SetWordWrapping", tf.raw().SetWordWrapping(w))
}

func (tf *TextFormat) SetReadingDirection(d ReadingDirection) error {
	defer tf.lock()()
	return check("SetReadingDirection", tf.raw().SetReadingDirection(d))
}

// TextFormatBuilder configures a TextFormat.
//
// Example:
//
//	tf, err := d2d.NewTextFormatBuilder(14).
//		TextAlignment(d2d.TextAlignmentCenter).
//		WordWrapping(d2d.WordWrappingNoWrap).
//		Build(f)
type TextFormatBuilder struct {
	props TextFormatProperties
}

// NewTextFormatBuilder returns a builder for the built-in font at size DIPs.
func NewTextFormatBuilder(size float32) *TextFormatBuilder {
	return &TextFormatBuilder{props: TextFormatProperties{FontSize: size}}
}

// FontData sets a TrueType or OpenType font to use instead of the built-in
// one.
func (b *TextFormatBuilder) FontData(data []byte) *TextFormatBuilder {
	b.props.FontData = data
	return b
}

func (b *TextFormatBuilder) FontSize(size float32) *TextFormatBuilder {
	b.props.FontSize = size
	return b
}

func (b *TextFormatBuilder) TextAlignment(a TextAlignment) *TextFormatBuilder {
	b.props.TextAlignment = a
	return b
}

func (b *TextFormatBuilder) ParagraphAlignment(a ParagraphAlignment) *TextFormatBuilder {
	b.props.ParagraphAlignment = a
	return b
}

func (b *TextFormatBuilder) WordWrapping(w WordWrapping) *TextFormatBuilder {
	b.props.WordWrapping = w
	return b
}

func (b *TextFormatBuilder) ReadingDirection(d ReadingDirection) *TextFormatBuilder {
	b.props.ReadingDirection = d
	return b
}

// LineSpacing sets the distance between baselines. Zero uses the line
// height of the font.
func (b *TextFormatBuilder) LineSpacing(spacing float32) *TextFormatBuilder {
	b.props.LineSpacing = spacing
	return b
}

func (b *TextFormatBuilder) validate() error {
	const name = "TextFormatBuilder"
	p := b.props
	if !finite(p.FontSize) || p.FontSize <= 0 {
		return invalidField(name, "FontSize", "must be positive and finite")
	}
	if !finite(p.LineSpacing) || p.LineSpacing < 0 {
		return invalidField(name, "LineSpacing", "must be finite and non-negative")
	}
	switch {
	case p.TextAlignment > TextAlignmentJustified:
		return invalidField(name, "TextAlignment", "unknown text alignment")
	case p.ParagraphAlignment > ParagraphAlignmentCenter:
		return invalidField(name, "ParagraphAlignment", "unknown paragraph alignment")
	case p.WordWrapping > WordWrappingNoWrap:
		return invalidField(name, "WordWrapping", "unknown word wrapping")
	case p.ReadingDirection > ReadingDirectionRightToLeft:
		return invalidField(name, "ReadingDirection", "unknown reading direction")
	}
	return nil
}

// Build validates the configuration and creates the text format with f.
// Font data that cannot be parsed fails with StatusInvalidArg.
func (b *TextFormatBuilder) Build(f *Factory) (*TextFormat, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return f.CreateTextFormat(b.props)
}
