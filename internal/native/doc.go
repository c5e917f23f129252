// Package native defines the object model of the rendering engine and
// provides its software implementation.
//
// The object model mirrors a COM-style 2D API: every object is reference
// counted (com.Unknown), answers QueryInterface for the interfaces listed
// in iid.go, and reports failures as com.Status codes. Drawing calls on a
// render target return nothing; the first failure is recorded together
// with the active tags and reported by EndDraw or Flush.
//
// Engines are looked up by name in a registry. The "software" engine is
// always registered and rasterizes on the CPU into premultiplied RGBA
// buffers.
package native
