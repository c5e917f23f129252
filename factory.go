package d2d

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// Factory creates device-independent resources (geometries, stroke styles
// and text formats) and render targets.
//
// Resources created by a factory keep it alive, so the factory handle can
// be released before them.
type Factory struct {
	handle[native.Factory]
}

// NewFactory loads a rendering engine and creates a factory with it.
//
// Example:
//
//	f, err := d2d.NewFactory(d2d.WithFactoryType(d2d.FactoryTypeMultiThreaded))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Release()
func NewFactory(opts ...FactoryOption) (*Factory, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lib, err := openLibrary(o.library)
	if err != nil {
		return nil, err
	}
	raw, st := lib.CreateFactory(o.typ, native.FactoryOptions{
		DebugLevel: o.debug,
		Logger:     engineLogger,
	})
	h, err := adopt("CreateFactory", raw, st)
	if err != nil {
		return nil, err
	}
	Logger().Info("d2d: factory created",
		"library", o.library,
		"multithreaded", o.typ == FactoryTypeMultiThreaded)
	return &Factory{h}, nil
}

// Clone returns a new handle to the same factory.
func (f *Factory) Clone() *Factory { return &Factory{f.clone()} }

// Type returns the threading policy of the factory.
func (f *Factory) Type() FactoryType { return get(f.handle, native.Factory.GetType) }

// DesktopDpi returns the DPI render targets use when none is given.
func (f *Factory) DesktopDpi() (dpiX, dpiY float32) {
	defer f.lock()()
	return f.raw().GetDesktopDpi()
}

// ReloadSystemMetrics refreshes the desktop DPI.
func (f *Factory) ReloadSystemMetrics() error {
	defer f.lock()()
	return check("ReloadSystemMetrics", f.raw().ReloadSystemMetrics())
}

func (f *Factory) CreateRectangleGeometry(r math2d.RectF) (*RectangleGeometry, error) {
	defer f.lock()()
	raw, st := f.raw().CreateRectangleGeometry(r)
	h, err := adopt("CreateRectangleGeometry", raw, st)
	if err != nil {
		return nil, err
	}
	return &RectangleGeometry{newGeometry(h)}, nil
}

func (f *Factory) CreateRoundedRectangleGeometry(rr math2d.RoundedRect) (*RoundedRectangleGeometry, error) {
	defer f.lock()()
	raw, st := f.raw().CreateRoundedRectangleGeometry(rr)
	h, err := adopt("CreateRoundedRectangleGeometry", raw, st)
	if err != nil {
		return nil, err
	}
	return &RoundedRectangleGeometry{newGeometry(h)}, nil
}

func (f *Factory) CreateEllipseGeometry(e math2d.Ellipse) (*EllipseGeometry, error) {
	defer f.lock()()
	raw, st := f.raw().CreateEllipseGeometry(e)
	h, err := adopt("CreateEllipseGeometry", raw, st)
	if err != nil {
		return nil, err
	}
	return &EllipseGeometry{newGeometry(h)}, nil
}

// CreatePathGeometry returns an empty path. Describe it with the sink
// returned by Open.
func (f *Factory) CreatePathGeometry() (*PathGeometry, error) {
	defer f.lock()()
	raw, st := f.raw().CreatePathGeometry()
	h, err := adopt("CreatePathGeometry", raw, st)
	if err != nil {
		return nil, err
	}
	return &PathGeometry{newGeometry(h)}, nil
}

// CreateGeometryGroup combines geometries under one fill mode. The group
// holds its own references to them. Every geometry must come from f;
// otherwise the error wraps StatusWrongFactory.
func (f *Factory) CreateGeometryGroup(mode FillMode, geometries ...Geometry) (*GeometryGroup, error) {
	defer f.lock()()
	sources := make([]native.Geometry, len(geometries))
	for i, g := range geometries {
		if sources[i] = nativeGeometryOf(g); sources[i] == nil {
			return nil, &StatusError{Op: "CreateGeometryGroup", Code: StatusInvalidArg}
		}
	}
	raw, st := f.raw().CreateGeometryGroup(mode, sources)
	h, err := adopt("CreateGeometryGroup", raw, st)
	if err != nil {
		return nil, err
	}
	return &GeometryGroup{newGeometry(h)}, nil
}

// CreateTransformedGeometry returns source under transform m.
func (f *Factory) CreateTransformedGeometry(source Geometry, m math2d.Matrix3x2F) (*TransformedGeometry, error) {
	defer f.lock()()
	src := nativeGeometryOf(source)
	if src == nil {
		return nil, &StatusError{Op: "CreateTransformedGeometry", Code: StatusInvalidArg}
	}
	raw, st := f.raw().CreateTransformedGeometry(src, m)
	h, err := adopt("CreateTransformedGeometry", raw, st)
	if err != nil {
		return nil, err
	}
	return &TransformedGeometry{newGeometry(h)}, nil
}

// CreateStrokeStyle creates a stroke style. dashes are used only with
// DashStyleCustom. See StrokeStyleBuilder for a validating alternative.
func (f *Factory) CreateStrokeStyle(props StrokeStyleProperties, dashes []float32) (*StrokeStyle, error) {
	defer f.lock()()
	raw, st := f.raw().CreateStrokeStyle(props, dashes)
	h, err := adopt("CreateStrokeStyle", raw, st)
	if err != nil {
		return nil, err
	}
	return &StrokeStyle{resource[native.StrokeStyle]{h}}, nil
}

// CreateTextFormat creates a text format. See TextFormatBuilder for a
// validating alternative.
func (f *Factory) CreateTextFormat(props TextFormatProperties) (*TextFormat, error) {
	defer f.lock()()
	raw, st := f.raw().CreateTextFormat(props)
	h, err := adopt("CreateTextFormat", raw, st)
	if err != nil {
		return nil, err
	}
	return &TextFormat{h}, nil
}

// CreateSurfaceRenderTarget creates a render target drawing into s.
// The surface receives the rendered pixels on Flush and EndDraw.
func (f *Factory) CreateSurfaceRenderTarget(s Surface, props RenderTargetProperties) (*SurfaceRenderTarget, error) {
	defer f.lock()()
	if s == nil {
		return nil, &StatusError{Op: "CreateSurfaceRenderTarget", Code: StatusInvalidArg}
	}
	raw, st := f.raw().CreateSurfaceRenderTarget(s, props)
	h, err := adopt("CreateSurfaceRenderTarget", raw, st)
	if err != nil {
		return nil, err
	}
	return &SurfaceRenderTarget{RenderTarget: newRenderTarget(h), surface: s}, nil
}

// CreateWindowRenderTarget creates a render target presenting into a host
// window on EndDraw.
func (f *Factory) CreateWindowRenderTarget(props RenderTargetProperties, window WindowRenderTargetProperties) (*WindowRenderTarget, error) {
	defer f.lock()()
	if window.Window == nil {
		return nil, &StatusError{Op: "CreateWindowRenderTarget", Code: StatusInvalidArg}
	}
	raw, st := f.raw().CreateWindowRenderTarget(props, window)
	h, err := adopt("CreateWindowRenderTarget", native.RenderTarget(raw), st)
	if err != nil {
		return nil, err
	}
	return &WindowRenderTarget{newRenderTarget(h)}, nil
}

// CreateDevice creates a device backed by provider. A nil provider selects
// NullDevice, the software device.
func (f *Factory) CreateDevice(provider gpucontext.DeviceProvider) (*Device, error) {
	defer f.lock()()
	if provider == nil {
		provider = NullDevice{}
	}
	raw, st := f.raw().CreateDevice(provider)
	h, err := adopt("CreateDevice", raw, st)
	if err != nil {
		return nil, err
	}
	Logger().Info("d2d: device created",
		"software", h.raw().GetCapabilities().Software)
	return &Device{resource[native.Device]{h}}, nil
}
