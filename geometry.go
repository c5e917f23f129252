package d2d

import (
	"fmt"

	"github.com/gogpu/d2d/internal/com"
	"github.com/gogpu/d2d/internal/native"
	"github.com/gogpu/d2d/math2d"
)

// Geometry is a shape created by a Factory.
//
// A nil transform means identity. A zero flattening tolerance means
// DefaultFlatteningTolerance. A nil stroke style means a solid stroke with
// flat caps and miter joins.
type Geometry interface {
	// Bounds returns the bounds of the geometry after transform m.
	Bounds(m *math2d.Matrix3x2F) (math2d.RectF, error)
	// WidenedBounds returns the bounds of the geometry stroked with the
	// given width and style.
	WidenedBounds(width float32, style *StrokeStyle, m *math2d.Matrix3x2F, tolerance float32) (math2d.RectF, error)
	FillContainsPoint(pt math2d.Point2F, m *math2d.Matrix3x2F, tolerance float32) (bool, error)
	StrokeContainsPoint(pt math2d.Point2F, width float32, style *StrokeStyle, m *math2d.Matrix3x2F, tolerance float32) (bool, error)
	ComputeArea(m *math2d.Matrix3x2F, tolerance float32) (float32, error)
	ComputeLength(m *math2d.Matrix3x2F, tolerance float32) (float32, error)
	// ComputePointAtLength returns the point at the given distance along
	// the geometry and the unit tangent there.
	ComputePointAtLength(length float32, m *math2d.Matrix3x2F, tolerance float32) (math2d.Point2F, math2d.Vector2F, error)
	// Simplify writes the geometry to sink as lines, or lines and cubic
	// Béziers.
	Simplify(option GeometrySimplificationOption, m *math2d.Matrix3x2F, tolerance float32, sink SimplifiedGeometrySink) error
	// Widen writes the outline of the stroked geometry to sink.
	Widen(width float32, style *StrokeStyle, m *math2d.Matrix3x2F, tolerance float32, sink SimplifiedGeometrySink) error

	Factory() *Factory
	Release()

	nativeGeometry() native.Geometry
}

// geometryOps implements Geometry for every geometry handle.
type geometryOps[T native.Geometry] struct {
	resource[T]
}

func newGeometry[T native.Geometry](h handle[T]) geometryOps[T] {
	return geometryOps[T]{resource[T]{h}}
}

func (g geometryOps[T]) nativeGeometry() native.Geometry { return g.raw() }

func (g geometryOps[T]) Bounds(m *math2d.Matrix3x2F) (math2d.RectF, error) {
	defer g.lock()()
	r, st := g.raw().GetBounds(m)
	return r, check("GetBounds", st)
}

func (g geometryOps[T]) WidenedBounds(width float32, style *StrokeStyle, m *math2d.Matrix3x2F, tolerance float32) (math2d.RectF, error) {
	defer g.lock()()
	r, st := g.raw().GetWidenedBounds(width, style.nativeStyle(), m, tolerance)
	return r, check("GetWidenedBounds", st)
}

func (g geometryOps[T]) FillContainsPoint(pt math2d.Point2F, m *math2d.Matrix3x2F, tolerance float32) (bool, error) {
	defer g.lock()()
	ok, st := g.raw().FillContainsPoint(pt, m, tolerance)
	return ok, check("FillContainsPoint", st)
}

func (g geometryOps[T]) StrokeContainsPoint(pt math2d.Point2F, width float32, style *StrokeStyle, m *math2d.Matrix3x2F, tolerance float32) (bool, error) {
	defer g.lock()()
	ok, st := g.raw().StrokeContainsPoint(pt, width, style.nativeStyle(), m, tolerance)
	return ok, check("StrokeContainsPoint", st)
}

func (g geometryOps[T]) ComputeArea(m *math2d.Matrix3x2F, tolerance float32) (float32, error) {
	defer g.lock()()
	a, st := g.raw().ComputeArea(m, tolerance)
	return a, check("ComputeArea", st)
}

func (g geometryOps[T]) ComputeLength(m *math2d.Matrix3x2F, tolerance float32) (float32, error) {
	defer g.lock()()
	l, st := g.raw().ComputeLength(m, tolerance)
	return l, check("ComputeLength", st)
}

func (g geometryOps[T]) ComputePointAtLength(length float32, m *math2d.Matrix3x2F, tolerance float32) (math2d.Point2F, math2d.Vector2F, error) {
	defer g.lock()()
	p, v, st := g.raw().ComputePointAtLength(length, m, tolerance)
	return p, v, check("ComputePointAtLength", st)
}

// Simplify and Widen write to sink after the factory lock is released, so
// sink may call back into d2d.

func (g geometryOps[T]) Simplify(option GeometrySimplificationOption, m *math2d.Matrix3x2F, tolerance float32, sink SimplifiedGeometrySink) error {
	if isNil(sink) {
		return &StatusError{Op: "Simplify", Code: StatusInvalidArg}
	}
	var rec sinkRecorder
	unlock := g.lock()
	st := g.raw().Simplify(option, m, tolerance, &rec)
	unlock()
	if err := check("Simplify", st); err != nil {
		return err
	}
	rec.replay(sink)
	return nil
}

func (g geometryOps[T]) Widen(width float32, style *StrokeStyle, m *math2d.Matrix3x2F, tolerance float32, sink SimplifiedGeometrySink) error {
	if isNil(sink) {
		return &StatusError{Op: "Widen", Code: StatusInvalidArg}
	}
	var rec sinkRecorder
	unlock := g.lock()
	st := g.raw().Widen(width, style.nativeStyle(), m, tolerance, &rec)
	unlock()
	if err := check("Widen", st); err != nil {
		return err
	}
	rec.replay(sink)
	return nil
}

// RectangleGeometry is an axis-aligned rectangle.
type RectangleGeometry struct {
	geometryOps[native.RectangleGeometry]
}

// Clone returns a new handle to the same geometry.
func (g *RectangleGeometry) Clone() *RectangleGeometry { return &RectangleGeometry{newGeometry(g.clone())} }

// Rect returns the rectangle the geometry was created with.
func (g *RectangleGeometry) Rect() math2d.RectF { return get(g.handle, native.RectangleGeometry.GetRect) }

// RoundedRectangleGeometry is a rectangle with elliptical corners.
type RoundedRectangleGeometry struct {
	geometryOps[native.RoundedRectangleGeometry]
}

func (g *RoundedRectangleGeometry) Clone() *RoundedRectangleGeometry {
	return &RoundedRectangleGeometry{newGeometry(g.clone())}
}

func (g *RoundedRectangleGeometry) RoundedRect() math2d.RoundedRect { return get(g.handle, native.RoundedRectangleGeometry.GetRoundedRect) }

// EllipseGeometry is an ellipse.
type EllipseGeometry struct {
	geometryOps[native.EllipseGeometry]
}

func (g *EllipseGeometry) Clone() *EllipseGeometry { return &EllipseGeometry{newGeometry(g.clone())} }

func (g *EllipseGeometry) Ellipse() math2d.Ellipse { return get(g.handle, native.EllipseGeometry.GetEllipse) }

// GeometryGroup is several geometries filled as one under a fill mode.
type GeometryGroup struct {
	geometryOps[native.GeometryGroup]
}

func (g *GeometryGroup) Clone() *GeometryGroup { return &GeometryGroup{newGeometry(g.clone())} }

func (g *GeometryGroup) FillMode() FillMode { return get(g.handle, native.GeometryGroup.GetFillMode) }

func (g *GeometryGroup) SourceGeometryCount() int {
	defer g.lock()()
	return int(g.raw().GetSourceGeometryCount())
}

// SourceGeometries returns the geometries of the group in order.
// The caller must Release each of them.
func (g *GeometryGroup) SourceGeometries() []*GenericGeometry {
	defer g.lock()()
	raw := g.raw().GetSourceGeometries()
	out := make([]*GenericGeometry, len(raw))
	for i, s := range raw {
		out[i] = &GenericGeometry{newGeometry(wrap(s))}
	}
	return out
}

// TransformedGeometry is a geometry under a fixed transform.
type TransformedGeometry struct {
	geometryOps[native.TransformedGeometry]
}

func (g *TransformedGeometry) Clone() *TransformedGeometry {
	return &TransformedGeometry{newGeometry(g.clone())}
}

// SourceGeometry returns the transformed geometry. The caller must Release
// it.
func (g *TransformedGeometry) SourceGeometry() *GenericGeometry {
	defer g.lock()()
	return &GenericGeometry{newGeometry(wrap(g.raw().GetSourceGeometry()))}
}

func (g *TransformedGeometry) Transform() math2d.Matrix3x2F { return get(g.handle, native.TransformedGeometry.GetTransform) }

// GeometryKind identifies the concrete type behind a GenericGeometry.
type GeometryKind int

const (
	GeometryKindUnknown GeometryKind = iota
	GeometryKindRectangle
	GeometryKindRoundedRectangle
	GeometryKindEllipse
	GeometryKindPath
	GeometryKindGroup
	GeometryKindTransformed
)

var geometryKindNames = [...]string{
	GeometryKindUnknown:          "unknown",
	GeometryKindRectangle:        "rectangle",
	GeometryKindRoundedRectangle: "rounded rectangle",
	GeometryKindEllipse:          "ellipse",
	GeometryKindPath:             "path",
	GeometryKindGroup:            "group",
	GeometryKindTransformed:      "transformed",
}

func (k GeometryKind) String() string {
	if k >= 0 && int(k) < len(geometryKindNames) {
		return geometryKindNames[k]
	}
	return fmt.Sprintf("GeometryKind(%d)", int(k))
}

var geometryKindIIDs = []struct {
	kind GeometryKind
	iid  com.IID
}{
	{GeometryKindRectangle, native.IIDRectangleGeometry},
	{GeometryKindRoundedRectangle, native.IIDRoundedRectangleGeometry},
	{GeometryKindEllipse, native.IIDEllipseGeometry},
	{GeometryKindPath, native.IIDPathGeometry},
	{GeometryKindGroup, native.IIDGeometryGroup},
	{GeometryKindTransformed, native.IIDTransformedGeometry},
}

// GenericGeometry is a geometry of unknown concrete type, as returned by
// GeometryGroup.SourceGeometries and TransformedGeometry.SourceGeometry.
// The As methods recover the concrete type and panic when the geometry
// does not have it; check Kind first.
type GenericGeometry struct {
	geometryOps[native.Geometry]
}

// NewGenericGeometry returns a new type-erased handle to g, which must not
// be nil.
func NewGenericGeometry(g Geometry) *GenericGeometry {
	raw := g.nativeGeometry()
	raw.AddRef()
	return &GenericGeometry{newGeometry(wrap(raw))}
}

func (g *GenericGeometry) Clone() *GenericGeometry { return &GenericGeometry{newGeometry(g.clone())} }

// Kind reports the concrete type of the geometry.
func (g *GenericGeometry) Kind() GeometryKind {
	raw := g.raw()
	for _, k := range geometryKindIIDs {
		obj, st := raw.QueryInterface(k.iid)
		if st.Succeeded() {
			obj.Release()
			return k.kind
		}
	}
	return GeometryKindUnknown
}

func cast[U native.Geometry](g *GenericGeometry, iid com.IID, kind GeometryKind) geometryOps[U] {
	h, ok := query[U](g.handle, iid)
	if !ok {
		panic(fmt.Sprintf("d2d: %v geometry is not a %v", g.Kind(), kind))
	}
	return newGeometry(h)
}

// AsRectangle returns a new handle to g as a RectangleGeometry.
func (g *GenericGeometry) AsRectangle() *RectangleGeometry {
	return &RectangleGeometry{cast[native.RectangleGeometry](g, native.IIDRectangleGeometry, GeometryKindRectangle)}
}

func (g *GenericGeometry) AsRoundedRectangle() *RoundedRectangleGeometry {
	return &RoundedRectangleGeometry{cast[native.RoundedRectangleGeometry](g, native.IIDRoundedRectangleGeometry, GeometryKindRoundedRectangle)}
}

func (g *GenericGeometry) AsEllipse() *EllipseGeometry {
	return &EllipseGeometry{cast[native.EllipseGeometry](g, native.IIDEllipseGeometry, GeometryKindEllipse)}
}

func (g *GenericGeometry) AsPath() *PathGeometry {
	return &PathGeometry{cast[native.PathGeometry](g, native.IIDPathGeometry, GeometryKindPath)}
}

func (g *GenericGeometry) AsGroup() *GeometryGroup {
	return &GeometryGroup{cast[native.GeometryGroup](g, native.IIDGeometryGroup, GeometryKindGroup)}
}

func (g *GenericGeometry) AsTransformed() *TransformedGeometry {
	return &TransformedGeometry{cast[native.TransformedGeometry](g, native.IIDTransformedGeometry, GeometryKindTransformed)}
}
