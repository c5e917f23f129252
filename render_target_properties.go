package d2d

// RenderTargetPropertiesBuilder assembles and validates RenderTargetProperties.
// Unlike the other builders it makes no engine call; the result is passed to
// CreateSurfaceRenderTarget, CreateWindowRenderTarget or a compatible target.
//
// Example:
//
//	props, err := d2d.NewRenderTargetPropertiesBuilder().
//		Type(d2d.RenderTargetTypeSoftware).
//		PixelFormat(d2d.FormatR8G8B8A8Unorm, d2d.AlphaModePremultiplied).
//		Dpi(144, 144).
//		Build()
type RenderTargetPropertiesBuilder struct {
	props RenderTargetProperties
}

// NewRenderTargetPropertiesBuilder starts from DefaultRenderTargetProperties.
func NewRenderTargetPropertiesBuilder() *RenderTargetPropertiesBuilder {
	return &RenderTargetPropertiesBuilder{props: DefaultRenderTargetProperties()}
}

func (b *RenderTargetPropertiesBuilder) Type(t RenderTargetType) *RenderTargetPropertiesBuilder {
	b.props.Type = t
	return b
}

// PixelFormat sets the target's pixel format. FormatUnknown and
// AlphaModeUnknown pick the engine defaults.
func (b *RenderTargetPropertiesBuilder) PixelFormat(f Format, a AlphaMode) *RenderTargetPropertiesBuilder {
	b.props.PixelFormat = PixelFormat{Format: f, AlphaMode: a}
	return b
}

// Dpi sets the target DPI. (0, 0) selects the factory's desktop DPI.
func (b *RenderTargetPropertiesBuilder) Dpi(dpiX, dpiY float32) *RenderTargetPropertiesBuilder {
	b.props.DpiX, b.props.DpiY = dpiX, dpiY
	return b
}

func (b *RenderTargetPropertiesBuilder) Usage(u RenderTargetUsage) *RenderTargetPropertiesBuilder {
	b.props.Usage = u
	return b
}

func (b *RenderTargetPropertiesBuilder) MinLevel(l FeatureLevel) *RenderTargetPropertiesBuilder {
	b.props.MinLevel = l
	return b
}

func (b *RenderTargetPropertiesBuilder) validate() error {
	const name = "RenderTargetPropertiesBuilder"
	p := b.props
	if p.Type > RenderTargetTypeHardware {
		return invalidField(name, "Type", "unknown render target type")
	}
	switch p.PixelFormat.Format {
	case FormatUnknown, FormatB8G8R8A8Unorm, FormatR8G8B8A8Unorm, FormatA8Unorm:
	default:
		return invalidField(name, "PixelFormat", "unknown format")
	}
	if p.PixelFormat.AlphaMode > AlphaModeIgnore {
		return invalidField(name, "PixelFormat", "unknown alpha mode")
	}
	if !finite(p.DpiX) || !finite(p.DpiY) || p.DpiX < 0 || p.DpiY < 0 {
		return invalidField(name, "Dpi", "must be finite and non-negative")
	}
	if (p.DpiX == 0) != (p.DpiY == 0) {
		return invalidField(name, "Dpi", "both values must be zero or both positive")
	}
	if p.Usage&^(RenderTargetUsageForceBitmapRemoting|RenderTargetUsageGDICompatible) != 0 {
		return invalidField(name, "Usage", "unknown usage flags")
	}
	switch p.MinLevel {
	case FeatureLevelDefault, FeatureLevel9, FeatureLevel10:
	default:
		return invalidField(name, "MinLevel", "unknown feature level")
	}
	return nil
}

// Build returns the validated properties.
func (b *RenderTargetPropertiesBuilder) Build() (RenderTargetProperties, error) {
	if err := b.validate(); err != nil {
		return RenderTargetProperties{}, err
	}
	return b.props, nil
}
