// Package geom provides the integer geometry primitives used throughout
// crest: points, sizes, rectangles, and edge insets. All types are plain
// value types; operations return new values rather than mutating receivers.
package geom

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// PointZero is the origin point.
var PointZero = Point{}

// Offset returns a new Point moved by (dx, dy).
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

// IsZero returns true if the point is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Mutable returns a mutable copy of the point for hot loops that want
// in-place arithmetic. Call Point to convert back.
func (p Point) Mutable() *MutPoint {
	return &MutPoint{X: p.X, Y: p.Y}
}

// MutPoint is the mutable counterpart of Point. It exists as an explicit
// escape hatch for tight loops; everything else should use Point.
type MutPoint struct {
	X, Y int
}

// Shift moves the point in place by (dx, dy).
func (p *MutPoint) Shift(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Point returns an immutable snapshot of the current coordinates.
func (p *MutPoint) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Size represents a width/height pair. Both dimensions are always >= 0;
// operations clamp rather than going negative.
type Size struct {
	Width, Height int
}

// SizeZero is the zero size.
var SizeZero = Size{}

// NewSize creates a Size, clamping negative dimensions to zero.
func NewSize(width, height int) Size {
	return Size{Width: maxInt(width, 0), Height: maxInt(height, 0)}
}

// Grow returns a new Size expanded by (dw, dh), clamped at zero.
func (s Size) Grow(dw, dh int) Size {
	return NewSize(s.Width+dw, s.Height+dh)
}

// Shrink returns a new Size reduced by (dw, dh), clamped at zero.
func (s Size) Shrink(dw, dh int) Size {
	return NewSize(s.Width-dw, s.Height-dh)
}

// Max returns the component-wise maximum of the two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: maxInt(s.Width, other.Width), Height: maxInt(s.Height, other.Height)}
}

// Min returns the component-wise minimum of the two sizes.
func (s Size) Min(other Size) Size {
	return Size{Width: minInt(s.Width, other.Width), Height: minInt(s.Height, other.Height)}
}

// IsZero returns true if either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Inset returns the size reduced by the given edges, clamped at zero.
func (s Size) Inset(e Edges) Size {
	return NewSize(s.Width-e.Horizontal(), s.Height-e.Vertical())
}

// Outset returns the size expanded by the given edges.
func (s Size) Outset(e Edges) Size {
	return NewSize(s.Width+e.Horizontal(), s.Height+e.Vertical())
}

// Rect represents a rectangle as an origin point plus a size.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: NewSize(width, height)}
}

// RectOf creates a Rect at the origin covering the given size.
func RectOf(s Size) Rect {
	return Rect{Size: s}
}

// MinX returns the x-coordinate of the left edge (inclusive).
func (r Rect) MinX() int { return r.Origin.X }

// MaxX returns the x-coordinate of the right edge (exclusive).
func (r Rect) MaxX() int { return r.Origin.X + r.Size.Width }

// MinY returns the y-coordinate of the top edge (inclusive).
func (r Rect) MinY() int { return r.Origin.Y }

// MaxY returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) MaxY() int { return r.Origin.Y + r.Size.Height }

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Size.IsZero()
}

// Contains returns true if the point is inside the rectangle. Points on the
// left and top edges are inside; points on the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{Origin: r.Origin.Offset(dx, dy), Size: r.Size}
}

// Inset returns a new Rect shrunk inward by the given edges.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		Origin: r.Origin.Offset(e.Left, e.Top),
		Size:   r.Size.Inset(e),
	}
}

// Intersect returns the overlapping region of two rectangles, or an empty
// Rect if they do not overlap. Degenerate inputs are not an error.
func (r Rect) Intersect(other Rect) Rect {
	x := maxInt(r.MinX(), other.MinX())
	y := maxInt(r.MinY(), other.MinY())
	right := minInt(r.MaxX(), other.MaxX())
	bottom := minInt(r.MaxY(), other.MaxY())
	if right-x <= 0 || bottom-y <= 0 {
		return Rect{}
	}
	return NewRect(x, y, right-x, bottom-y)
}

// Intersects returns true if the two rectangles overlap. Touching edges do
// not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// ForEach calls fn for every point inside the rectangle in row-major order.
func (r Rect) ForEach(fn func(Point)) {
	for y := r.MinY(); y < r.MaxY(); y++ {
		for x := r.MinX(); x < r.MaxX(); x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Lerp linearly interpolates between r and other. t is clamped to [0, 1];
// t=0 yields r and t=1 yields other. Coordinates are rounded to the nearest
// cell, which keeps animated rectangles jitter-free at the endpoints.
func (r Rect) Lerp(other Rect, t float64) Rect {
	if t <= 0 {
		return r
	}
	if t >= 1 {
		return other
	}
	return NewRect(
		lerpInt(r.MinX(), other.MinX(), t),
		lerpInt(r.MinY(), other.MinY(), t),
		lerpInt(r.Size.Width, other.Size.Width, t),
		lerpInt(r.Size.Height, other.Size.Height, t),
	)
}

func lerpInt(a, b int, t float64) int {
	v := float64(a) + (float64(b)-float64(a))*t
	if v >= 0 {
		return int(v + 0.5)
	}
	return int(v - 0.5)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
