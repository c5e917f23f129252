package d2d

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/d2d/internal/native"
)

// StrokeStyle describes the caps, joins and dashes of stroked lines.
// A nil *StrokeStyle is a valid argument meaning a solid stroke with flat
// caps and miter joins.
type StrokeStyle struct {
	resource[native.StrokeStyle]
}

func (s *StrokeStyle) nativeStyle() native.StrokeStyle {
	if s == nil {
		return nil
	}
	return s.raw()
}

func (s *StrokeStyle) Clone() *StrokeStyle { return &StrokeStyle{resource[native.StrokeStyle]{s.clone()}} }

func (s *StrokeStyle) StartCap() CapStyle   { return get(s.handle, native.StrokeStyle.GetStartCap) }
func (s *StrokeStyle) EndCap() CapStyle     { return get(s.handle, native.StrokeStyle.GetEndCap) }
func (s *StrokeStyle) DashCap() CapStyle    { return get(s.handle, native.StrokeStyle.GetDashCap) }
func (s *StrokeStyle) LineJoin() LineJoin   { return get(s.handle, native.StrokeStyle.GetLineJoin) }
func (s *StrokeStyle) MiterLimit() float32  { return get(s.handle, native.StrokeStyle.GetMiterLimit) }
func (s *StrokeStyle) DashStyle() DashStyle { return get(s.handle, native.StrokeStyle.GetDashStyle) }
func (s *StrokeStyle) DashOffset() float32  { return get(s.handle, native.StrokeStyle.GetDashOffset) }

// Dashes returns a copy of the custom dash pattern, in multiples of the
// stroke width. It is empty unless DashStyle is DashStyleCustom.
func (s *StrokeStyle) Dashes() []float32 { return get(s.handle, native.StrokeStyle.GetDashes) }

// Properties returns all the properties of the style.
func (s *StrokeStyle) Properties() StrokeStyleProperties {
	return StrokeStyleProperties{
		StartCap:   s.StartCap(),
		EndCap:     s.EndCap(),
		DashCap:    s.DashCap(),
		LineJoin:   s.LineJoin(),
		MiterLimit: s.MiterLimit(),
		DashStyle:  s.DashStyle(),
		DashOffset: s.DashOffset(),
	}
}

// StrokeStyleBuilder validates stroke style properties before creating the
// style. The zero configuration is DefaultStrokeStyleProperties.
//
// Example:
//
//	style, err := d2d.NewStrokeStyleBuilder().
//		Caps(d2d.CapStyleRound).
//		Dashes(2, 1).
//		Build(f)
type StrokeStyleBuilder struct {
	props  StrokeStyleProperties
	dashes []float32
}

// NewStrokeStyleBuilder returns a builder for a solid stroke with flat caps
// and miter joins.
func NewStrokeStyleBuilder() *StrokeStyleBuilder {
	return &StrokeStyleBuilder{props: DefaultStrokeStyleProperties()}
}

func (b *StrokeStyleBuilder) StartCap(c CapStyle) *StrokeStyleBuilder {
	b.props.StartCap = c
	return b
}

func (b *StrokeStyleBuilder) EndCap(c CapStyle) *StrokeStyleBuilder {
	b.props.EndCap = c
	return b
}

func (b *StrokeStyleBuilder) DashCap(c CapStyle) *StrokeStyleBuilder {
	b.props.DashCap = c
	return b
}

// Caps sets the start, end and dash caps to c.
func (b *StrokeStyleBuilder) Caps(c CapStyle) *StrokeStyleBuilder {
	b.props.StartCap, b.props.EndCap, b.props.DashCap = c, c, c
	return b
}

func (b *StrokeStyleBuilder) LineJoin(j LineJoin) *StrokeStyleBuilder {
	b.props.LineJoin = j
	return b
}

// MiterLimit sets the limit on the ratio of miter length to half the
// stroke width. Values below 1 are treated as 1.
func (b *StrokeStyleBuilder) MiterLimit(limit float32) *StrokeStyleBuilder {
	b.props.MiterLimit = limit
	return b
}

func (b *StrokeStyleBuilder) DashStyle(s DashStyle) *StrokeStyleBuilder {
	b.props.DashStyle = s
	return b
}

func (b *StrokeStyleBuilder) DashOffset(offset float32) *StrokeStyleBuilder {
	b.props.DashOffset = offset
	return b
}

// Dashes sets a custom dash pattern and selects DashStyleCustom.
func (b *StrokeStyleBuilder) Dashes(dashes ...float32) *StrokeStyleBuilder {
	b.dashes = append([]float32(nil), dashes...)
	b.props.DashStyle = DashStyleCustom
	return b
}

func (b *StrokeStyleBuilder) validate() error {
	const name = "StrokeStyleBuilder"
	for _, c := range []CapStyle{b.props.StartCap, b.props.EndCap, b.props.DashCap} {
		if c > CapStyleTriangle {
			return invalidField(name, "Cap", "unknown cap style")
		}
	}
	if b.props.LineJoin > LineJoinMiterOrBevel {
		return invalidField(name, "LineJoin", "unknown line join")
	}
	if b.props.DashStyle > DashStyleCustom {
		return invalidField(name, "DashStyle", "unknown dash style")
	}
	if !finite(b.props.MiterLimit) {
		return invalidField(name, "MiterLimit", "must be finite")
	}
	if !finite(b.props.DashOffset) {
		return invalidField(name, "DashOffset", "must be finite")
	}
	if b.props.DashStyle == DashStyleCustom && len(b.dashes) == 0 {
		return missingField(name, "Dashes")
	}
	if b.props.DashStyle != DashStyleCustom && len(b.dashes) > 0 {
		return invalidField(name, "Dashes", "dashes require DashStyleCustom")
	}
	var total float32
	for _, d := range b.dashes {
		if d < 0 || !finite(d) {
			return invalidField(name, "Dashes", "dash lengths must be finite and non-negative")
		}
		total += d
	}
	if len(b.dashes) > 0 && total == 0 {
		return invalidField(name, "Dashes", "dash pattern has zero length")
	}
	return nil
}

// Build validates the configuration and creates the stroke style.
func (b *StrokeStyleBuilder) Build(f *Factory) (*StrokeStyle, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return f.CreateStrokeStyle(b.props, b.dashes)
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
