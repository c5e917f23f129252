package native

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/text"
	"github.com/gogpu/d2d/math2d"
)

// FactoryOptions configure a factory.
type FactoryOptions struct {
	DebugLevel DebugLevel
	// Logger receives diagnostics allowed by DebugLevel. Nil uses
	// com.Logger.
	Logger *slog.Logger
}

type factory struct {
	object
	typ   FactoryType
	debug DebugLevel
	log   *slog.Logger

	// mu serializes calls on the factory and its resources when the
	// factory is multi-threaded. See Lock.
	mu sync.Mutex
}

func newFactory(typ FactoryType, opts FactoryOptions) *factory {
	f := &factory{typ: typ, debug: opts.DebugLevel, log: opts.Logger}
	if f.log == nil {
		f.log = com.Logger()
	}
	f.init(f, func() {
		f.logf(DebugLevelInformation, "native: factory destroyed")
	}, IIDFactory)
	f.logf(DebugLevelInformation, "native: factory created",
		slog.Any("type", typ), slog.Any("debug", opts.DebugLevel))
	return f
}

// lock acquires the factory lock on multi-threaded factories and returns
// the function releasing it.
func (f *factory) lock() func() {
	if f.typ != FactoryTypeMultiThreaded {
		return func() {}
	}
	f.mu.Lock()
	return f.mu.Unlock
}

var debugSlogLevels = map[DebugLevel]slog.Level{
	DebugLevelError:       slog.LevelError,
	DebugLevelWarning:     slog.LevelWarn,
	DebugLevelInformation: slog.LevelInfo,
}

// logf logs msg when the factory's debug level admits level.
func (f *factory) logf(level DebugLevel, msg string, attrs ...slog.Attr) {
	if level == DebugLevelNone || f.debug < level {
		return
	}
	f.log.LogAttrs(context.Background(), debugSlogLevels[level], msg, attrs...)
}

func (f *factory) GetType() FactoryType { return f.typ }

func (f *factory) GetDesktopDpi() (dpiX, dpiY float32) {
	return DefaultDpi, DefaultDpi
}

func (f *factory) ReloadSystemMetrics() com.Status {
	return com.OK
}

func (f *factory) CreateRectangleGeometry(r math2d.RectF) (RectangleGeometry, com.Status) {
	return newRectangleGeometry(f, r), com.OK
}

func (f *factory) CreateRoundedRectangleGeometry(rr math2d.RoundedRect) (RoundedRectangleGeometry, com.Status) {
	return newRoundedRectangleGeometry(f, rr), com.OK
}

func (f *factory) CreateEllipseGeometry(e math2d.Ellipse) (EllipseGeometry, com.Status) {
	return newEllipseGeometry(f, e), com.OK
}

func (f *factory) CreatePathGeometry() (PathGeometry, com.Status) {
	return newPathGeometry(f), com.OK
}

func (f *factory) CreateGeometryGroup(mode FillMode, geometries []Geometry) (GeometryGroup, com.Status) {
	if mode > FillModeWinding {
		return nil, com.InvalidArg
	}
	children := make([]*geometry, len(geometries))
	for i, g := range geometries {
		base, st := f.ownGeometry(g)
		if st.Failed() {
			return nil, st
		}
		children[i] = base
	}
	return newGeometryGroup(f, mode, geometries, children), com.OK
}

func (f *factory) CreateTransformedGeometry(source Geometry, m math2d.Matrix3x2F) (TransformedGeometry, com.Status) {
	base, st := f.ownGeometry(source)
	if st.Failed() {
		return nil, st
	}
	return newTransformedGeometry(f, source, base, m), com.OK
}

// ownGeometry returns the engine geometry behind g, which must have been
// created by f.
func (f *factory) ownGeometry(g Geometry) (*geometry, com.Status) {
	if g == nil {
		return nil, com.InvalidArg
	}
	b, ok := g.(interface{ base() *geometry })
	if !ok {
		return nil, com.InvalidArg
	}
	base := b.base()
	if base.factory != f {
		return nil, com.WrongFactory
	}
	return base, com.OK
}

func (f *factory) CreateStrokeStyle(props StrokeStyleProperties, dashes []float32) (StrokeStyle, com.Status) {
	return result[StrokeStyle](newStrokeStyle(f, props, dashes))
}

func (f *factory) CreateTextFormat(props TextFormatProperties) (TextFormat, com.Status) {
	if !(props.FontSize > 0) || !validFloat(props.FontSize) || props.LineSpacing < 0 {
		return nil, com.InvalidArg
	}
	fnt := text.Default()
	if props.FontData != nil {
		var err error
		if fnt, err = text.Parse(props.FontData); err != nil {
			f.logf(DebugLevelError, "native: invalid font data", slog.Any("error", err))
			return nil, com.InvalidArg
		}
	}
	tf := newTextFormat(fnt, props)
	if st := tf.validate(); st.Failed() {
		tf.Release()
		return nil, st
	}
	return tf, com.OK
}

func (f *factory) CreateSurfaceRenderTarget(surface Surface, props RenderTargetProperties) (RenderTarget, com.Status) {
	return result[RenderTarget](newSurfaceTarget(f, surface, props))
}

func (f *factory) CreateWindowRenderTarget(props RenderTargetProperties, window WindowRenderTargetProperties) (WindowRenderTarget, com.Status) {
	return result[WindowRenderTarget](newWindowTarget(f, props, window))
}

func (f *factory) CreateDevice(provider gpucontext.DeviceProvider) (Device, com.Status) {
	return result[Device](newDevice(f, provider))
}
