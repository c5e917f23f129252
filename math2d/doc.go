// Package math2d provides the float32 value types shared by every d2d
// handle: points, vectors, sizes, rectangles, ellipses, 3x2 affine matrices
// and colors.
//
// All types are plain values. Nothing in this package talks to a rendering
// engine, so the types can be freely copied, compared and used from any
// goroutine.
//
// # Coordinate System
//
// The origin is the top-left corner, X grows right and Y grows down.
// Coordinates are in device-independent pixels (1/96 inch) unless a
// function says otherwise.
//
// # Matrices
//
// [Matrix3x2F] uses the row-vector convention:
//
//	| M11 M12 |
//	| M21 M22 |
//	| Dx  Dy  |
//
// A point is transformed as
//
//	x' = x*M11 + y*M21 + Dx
//	y' = x*M12 + y*M22 + Dy
//
// so a.Multiply(b) applies a first and b second.
package math2d
