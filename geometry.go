// geometry.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package crest

import "github.com/spindleworks/crest/internal/geom"

// Point represents an (X, Y) coordinate.
type Point = geom.Point

// MutPoint is the mutable escape-hatch counterpart of Point.
type MutPoint = geom.MutPoint

// Size represents a width/height pair.
type Size = geom.Size

// Rect represents a rectangle as an origin plus a size.
type Rect = geom.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// PointZero is the origin point.
var PointZero = geom.PointZero

// SizeZero is the zero size.
var SizeZero = geom.SizeZero

// NewSize creates a Size, clamping negative dimensions to zero.
func NewSize(width, height int) Size {
	return geom.NewSize(width, height)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geom.NewRect(x, y, width, height)
}

// RectOf creates a Rect at the origin covering the given size.
func RectOf(s Size) Rect {
	return geom.RectOf(s)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return geom.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return geom.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return geom.EdgeTRBL(t, r, b, l)
}
