package crest

import "time"

// View is the contract every widget implements. Concrete views embed Base
// (which provides the Core method) and implement NaturalSize and Render.
//
// NaturalSize reports the size the view would like given at most the
// available space, ignoring the view's own explicit/min/max overrides —
// those are applied by the measuring wrapper, never by the view itself.
// Render paints exactly into the viewport's content size; side effects are
// limited to writes through the viewport and the view's own state.
type View interface {
	Core() *Base
	NaturalSize(available Size) Size
	Render(vp *Viewport)
}

// MouseHandler is implemented by views that want mouse events. Events are
// only delivered for the kinds the view registered during the most recent
// render pass (see Viewport.RegisterMouse).
type MouseHandler interface {
	ReceiveMouse(ev MouseEvent)
}

// KeyHandler is implemented by views that want keyboard events.
// ReceiveKey returns true if the event was consumed.
type KeyHandler interface {
	ReceiveKey(ev KeyEvent) bool
}

// TickHandler is implemented by views that animate. ReceiveTick returns
// true while the view still needs further ticks; once every registered view
// returns false the scheduler idles.
type TickHandler interface {
	ReceiveTick(dt time.Duration) bool
}

// TreeObserver is implemented by views that want to observe their movement
// between containers.
type TreeObserver interface {
	WillMoveTo(parent View)
	DidMoveFrom(parent View)
}

// MountObserver is implemented by views that want mount/unmount hooks when
// they are added to or removed from a container.
type MountObserver interface {
	DidMount()
	DidUnmount()
}

// ChildHolder is implemented by views that own child views, in paint order.
type ChildHolder interface {
	Children() []View
}

// Unit specifies how a Dim is interpreted.
type Unit uint8

const (
	// UnitUnset means no preference: the view shrinks to its natural size
	// when measured and fills the offered space when rendered.
	UnitUnset Unit = iota
	// UnitCells is an explicit size in terminal cells.
	UnitCells
	// UnitFill consumes all offered space in that dimension.
	UnitFill
	// UnitNatural pins the dimension to the view's natural size.
	UnitNatural
)

// Dim represents one dimension of a view's requested size.
// The zero value is unset.
type Dim struct {
	Amount int
	Unit   Unit
}

// Cells returns a Dim representing an explicit number of terminal cells.
func Cells(n int) Dim {
	return Dim{Amount: n, Unit: UnitCells}
}

// Fill returns a Dim that consumes all offered space.
func Fill() Dim {
	return Dim{Unit: UnitFill}
}

// Natural returns a Dim pinned to the view's natural size.
func Natural() Dim {
	return Dim{Unit: UnitNatural}
}

// IsUnset returns true if no preference has been expressed.
func (d Dim) IsUnset() bool {
	return d.Unit == UnitUnset
}

// pinned reports whether the dimension bypasses min/max clamping entirely.
func (d Dim) pinned() bool {
	return d.Unit == UnitCells || d.Unit == UnitFill
}

// Bound is an optional min or max constraint on a dimension.
type Bound struct {
	Value int
	Set   bool
}

// BoundAt returns a set Bound with the given value.
func BoundAt(n int) Bound {
	return Bound{Value: n, Set: true}
}

// sizeKey keys the per-view measurement cache. Resolution with the grow
// (render-time) preference can produce a different answer than the shrink
// (measure-time) preference for the same available size, so the preference
// is part of the key.
type sizeKey struct {
	available Size
	grow      bool
}

// Base carries the state shared by every view: sizing preferences, the
// measurement cache, the parent back-reference, and invalidation plumbing.
// Embed it by value in concrete views and use the view through a pointer.
type Base struct {
	// parent is a lookup relation only, never an ownership edge. It is set
	// by the owning container on add and cleared on remove.
	parent View

	width, height        Dim
	minWidth, maxWidth   Bound
	minHeight, maxHeight Bound
	padding              Edges
	offset               Point
	themeOverride        *Theme

	cache          map[sizeKey]Size
	lastRenderSize Size
	hasRendered    bool

	// suppressParent gates invalidation propagation while the render-time
	// size-change detection runs; re-propagating there risks loops.
	suppressParent bool

	measuring bool
	rendering bool
}

// Core returns the view's base state. Embedding Base gives views this
// method for free; the name is distinct from the embedded field so the
// field cannot shadow it out of the method set.
func (b *Base) Core() *Base {
	return b
}

// Parent returns the owning container's view, or nil at the root.
func (b *Base) Parent() View {
	return b.parent
}

func (b *Base) setParent(p View) {
	b.parent = p
}

// Padding returns the view's padding edges.
func (b *Base) Padding() Edges {
	return b.padding
}

// Offset returns the view's x/y offset within its allocated region.
func (b *Base) Offset() Point {
	return b.offset
}

// InvalidateSize clears the whole measurement cache and, unless suppressed,
// asks the parent to do the same. Idempotent and safe to call from event
// handlers, tick callbacks, and prop setters.
func (b *Base) InvalidateSize() {
	clear(b.cache)
	if b.suppressParent || b.parent == nil {
		return
	}
	b.parent.Core().InvalidateSize()
}

// invalidateSelf clears this view's cache without telling the parent.
// Used on the render path when the viewport size changed: the parent
// allocated that size, so it already knows.
func (b *Base) invalidateSelf() {
	b.suppressParent = true
	b.InvalidateSize()
	b.suppressParent = false
}

// Prop mutates a view's sizing-relevant state via Update.
type Prop func(*Base)

// Width sets the width preference.
func Width(d Dim) Prop {
	return func(b *Base) { b.width = d }
}

// Height sets the height preference.
func Height(d Dim) Prop {
	return func(b *Base) { b.height = d }
}

// MinWidth sets a lower bound on width for non-pinned dimensions.
func MinWidth(n int) Prop {
	return func(b *Base) { b.minWidth = BoundAt(n) }
}

// MaxWidth sets an upper bound on width for non-pinned dimensions.
func MaxWidth(n int) Prop {
	return func(b *Base) { b.maxWidth = BoundAt(n) }
}

// MinHeight sets a lower bound on height for non-pinned dimensions.
func MinHeight(n int) Prop {
	return func(b *Base) { b.minHeight = BoundAt(n) }
}

// MaxHeight sets an upper bound on height for non-pinned dimensions.
func MaxHeight(n int) Prop {
	return func(b *Base) { b.maxHeight = BoundAt(n) }
}

// Padding sets the padding edges.
func Padding(e Edges) Prop {
	return func(b *Base) { b.padding = e }
}

// Offset shifts the view within the region its parent allocates.
func Offset(p Point) Prop {
	return func(b *Base) { b.offset = p }
}

// UseTheme overrides the theme for this view and its descendants.
func UseTheme(t *Theme) Prop {
	return func(b *Base) { b.themeOverride = t }
}

// Update applies the given props and invalidates the size cache.
// This is the one mutation entry point for sizing-relevant state.
func (b *Base) Update(props ...Prop) {
	for _, p := range props {
		p(b)
	}
	b.InvalidateSize()
}

// Theme resolves the effective theme: this view's override if set,
// otherwise the nearest ancestor override, otherwise PlainTheme.
func (b *Base) Theme() *Theme {
	if b.themeOverride != nil {
		return b.themeOverride
	}
	if b.parent != nil {
		return b.parent.Core().Theme()
	}
	return PlainTheme
}

// Measure resolves the size the view wants given at most the available
// space, applying the view's explicit/fill/natural preference, min/max
// bounds, padding, and offset on top of the view's NaturalSize. Results are
// memoized per available size until InvalidateSize.
func Measure(v View, available Size) Size {
	return resolveSize(v, available, false)
}

// resolveSize is the shared wrapper behind Measure (shrink preference) and
// RenderInto (grow preference). See the View documentation for the contract
// it enforces on top of NaturalSize.
func resolveSize(v View, available Size, grow bool) Size {
	b := v.Core()
	if b.measuring {
		panic("crest: reentrant size resolution on view")
	}

	key := sizeKey{available: available, grow: grow}
	if cached, ok := b.cache[key]; ok {
		return cached
	}

	b.measuring = true
	defer func() { b.measuring = false }()

	inner := available
	if !b.offset.IsZero() {
		inner = inner.Shrink(b.offset.X, b.offset.Y)
	}

	// The calculated size is the view's natural size grown by padding,
	// computed at most once and shared by the width and height branches.
	var calc Size
	calcDone := false
	calculated := func() Size {
		if !calcDone {
			natural := v.NaturalSize(inner.Inset(b.padding))
			if natural.Width < 0 || natural.Height < 0 {
				panic("crest: NaturalSize returned a negative dimension")
			}
			calc = natural.Outset(b.padding)
			calcDone = true
		}
		return calc
	}
	calcWidth := func() int { return calculated().Width }
	calcHeight := func() int { return calculated().Height }

	var out Size
	if b.width.pinned() && b.height.pinned() {
		// Fast path: both dimensions bypass min/max logic entirely.
		out.Width = resolvePinned(b.width, inner.Width, calcWidth)
		out.Height = resolvePinned(b.height, inner.Height, calcHeight)
	} else {
		out.Width = resolveDim(b.width, inner.Width, calcWidth, grow, b.minWidth, b.maxWidth)
		out.Height = resolveDim(b.height, inner.Height, calcHeight, grow, b.minHeight, b.maxHeight)
	}

	result := NewSize(out.Width, out.Height).Grow(b.offset.X, b.offset.Y)
	if b.cache == nil {
		b.cache = make(map[sizeKey]Size)
	}
	b.cache[key] = result
	return result
}

// resolvePinned resolves a dimension on the fast path: fill takes the
// available space, explicit takes the literal, anything else the
// calculated size.
func resolvePinned(d Dim, available int, calc func() int) int {
	switch d.Unit {
	case UnitFill:
		return available
	case UnitCells:
		return d.Amount
	default:
		return calc()
	}
}

// resolveDim resolves one dimension with the full preference logic.
// Explicit and fill dimensions override min/max; natural and unset
// dimensions clamp min-then-max. The grow flag selects what an unset
// dimension prefers: the calculated size when measuring, the offered
// space when rendering.
func resolveDim(d Dim, available int, calc func() int, grow bool, min, max Bound) int {
	var out int
	switch d.Unit {
	case UnitCells:
		return d.Amount
	case UnitFill:
		return available
	case UnitNatural:
		out = calc()
	default:
		if grow {
			out = available
		} else {
			out = calc()
		}
	}
	if min.Set && out < min.Value {
		out = min.Value
	}
	if max.Set && out > max.Value {
		out = max.Value
	}
	if out < 0 {
		out = 0
	}
	return out
}

// RenderInto runs the render wrapper for a view: it detects viewport size
// changes since the previous frame, resolves the view's actual size with
// the fill tendency, and delegates to the viewport to establish the nested
// coordinate frame and clip before invoking the view's Render.
func RenderInto(v View, vp *Viewport) {
	b := v.Core()
	if b.rendering {
		panic("crest: reentrant render of view")
	}
	b.rendering = true
	defer func() { b.rendering = false }()

	content := vp.ContentSize()
	if b.hasRendered && b.lastRenderSize != content {
		b.invalidateSelf()
	}
	b.lastRenderSize = content
	b.hasRendered = true

	total := resolveSize(v, content, true)
	inner := Rect{
		Origin: Point{X: b.offset.X + b.padding.Left, Y: b.offset.Y + b.padding.Top},
		Size:   total.Shrink(b.offset.X, b.offset.Y).Inset(b.padding),
	}
	vp.renderThrough(v, inner, v.Render)
}

// Walk visits v and its descendants depth-first in paint order, stopping
// early when fn returns false. Returns false if the walk was stopped.
func Walk(v View, fn func(View) bool) bool {
	if !fn(v) {
		return false
	}
	if holder, ok := v.(ChildHolder); ok {
		for _, child := range holder.Children() {
			if !Walk(child, fn) {
				return false
			}
		}
	}
	return true
}
