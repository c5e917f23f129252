// Package stroke converts polylines into the polygons covered by a stroke.
//
// A stroke is built as a union of simple pieces: one quadrilateral per
// segment, one polygon per join and one per cap. Every piece is emitted with
// positive orientation, so filling the result with the non-zero rule yields
// the stroke outline without any polygon clipping.
//
// Dashing runs first and splits each polyline into dash polylines that carry
// their own caps.
package stroke
