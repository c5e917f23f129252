// Package com implements the reference-counting object model shared by the
// d2d wrapper layer and the rendering engines behind it.
//
// Every engine object implements [Unknown]. A caller that receives an object
// from an engine owns exactly one reference and must give it back with
// Release. [Ptr] turns that rule into a Go value: it owns one reference,
// Clone takes another, and Release gives its reference back exactly once.
package com
