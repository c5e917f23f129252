// Package d2d provides typed, reference-counted handles over a native 2D
// rendering engine modeled on Direct2D.
//
// # Overview
//
// d2d wraps the object model of a retained 2D engine: a Factory creates
// geometries, stroke styles, text formats and render targets; a render
// target creates brushes, bitmaps and layers and draws with them between
// BeginDraw and EndDraw. Every handle owns exactly one reference to its
// engine object. Clone takes another reference and Release gives it back.
//
// The engine is loaded from a registry by name. The built-in "software"
// engine rasterizes on the CPU, so d2d works without a GPU or a platform
// library.
//
// # Quick Start
//
//	import "github.com/gogpu/d2d"
//
//	f, err := d2d.NewFactory()
//	if err != nil {
//		return err
//	}
//	defer f.Release()
//
//	s := d2d.NewMemorySurface(256, 256, gputypes.TextureFormatBGRA8Unorm)
//	rt, err := f.CreateSurfaceRenderTarget(s, d2d.DefaultRenderTargetProperties())
//	if err != nil {
//		return err
//	}
//	defer rt.Release()
//
//	brush, err := d2d.NewSolidColorBrushBuilder(math2d.Red).Build(rt)
//	if err != nil {
//		return err
//	}
//	defer brush.Release()
//
//	err = rt.Draw(func(rt *d2d.RenderTarget) {
//		rt.Clear(&math2d.White)
//		rt.FillEllipse(math2d.Circle(math2d.Pt(128, 128), 100), brush)
//	})
//
// # Errors
//
// Engine failures are returned as *StatusError wrapping a Status, so
// errors.Is(err, StatusRecreateTarget) works. Builders report invalid input
// as *FieldError before any engine call is made. Misuse of the draw bracket,
// unsupported capability casts and use of a released handle panic.
//
// # Drawing
//
// Drawing calls do not return errors. The first failure inside a
// BeginDraw/EndDraw bracket is recorded by the engine and returned by
// EndDraw (or Flush) together with the tags set by SetTags when it
// happened.
//
// # Coordinate System
//
// Uses device-independent pixels (DIPs):
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - One DIP is one pixel at 96 DPI
//   - Angles in degrees, increasing clockwise
package d2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
