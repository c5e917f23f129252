package d2d

import "github.com/gogpu/d2d/internal/native"

// FactoryOption configures a Factory during creation.
// Use functional options to customize Factory behavior.
//
// Example:
//
//	// Default software engine, single-threaded
//	f, err := d2d.NewFactory()
//
//	// Shared between goroutines, with engine diagnostics
//	f, err := d2d.NewFactory(
//		d2d.WithFactoryType(d2d.FactoryTypeMultiThreaded),
//		d2d.WithDebugLevel(d2d.DebugLevelWarning),
//	)
type FactoryOption func(*factoryOptions)

// factoryOptions holds optional configuration for Factory creation.
type factoryOptions struct {
	library string
	typ     FactoryType
	debug   DebugLevel
}

// defaultOptions returns the default factory options.
func defaultOptions() factoryOptions {
	return factoryOptions{
		library: native.SoftwareLibrary,
		typ:     FactoryTypeSingleThreaded,
		debug:   DebugLevelNone,
	}
}

// WithLibrary selects the rendering engine by its registered name.
// The default is "software", the built-in CPU engine. NewFactory returns
// ErrLibraryNotFound when no engine is registered under name.
func WithLibrary(name string) FactoryOption {
	return func(o *factoryOptions) {
		o.library = name
	}
}

// WithFactoryType sets the threading policy of the factory.
//
// A multi-threaded factory and the resources it creates may be used from
// several goroutines: every engine call is serialized by the factory. A
// render target still has one drawing bracket at a time. A single-threaded
// factory does no locking.
func WithFactoryType(typ FactoryType) FactoryOption {
	return func(o *factoryOptions) {
		o.typ = typ
	}
}

// WithDebugLevel sets which engine diagnostics are sent to the logger
// configured with SetLogger.
//
// Example:
//
//	d2d.SetLogger(slog.Default())
//	f, err := d2d.NewFactory(d2d.WithDebugLevel(d2d.DebugLevelInformation))
func WithDebugLevel(level DebugLevel) FactoryOption {
	return func(o *factoryOptions) {
		o.debug = level
	}
}
