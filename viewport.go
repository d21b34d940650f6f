package crest

import "github.com/spindleworks/crest/internal/geom"

// Viewport is the transient per-render coordinate, clip, and style context
// passed to View.Render. It translates view-local writes into buffer cells,
// clips them to the visible region, and collects the event registrations
// for the current pass. Viewports are created and discarded by the render
// pass; views must not retain them.
type Viewport struct {
	buf   *Buffer
	frame *Frame
	view  View

	// offset maps local (0,0) to buffer coordinates.
	offset      Point
	contentSize Size

	// visible is the actually-paintable sub-region in local coordinates.
	// Writes outside it are dropped per cell.
	visible Rect

	// parentRect is the region the immediate parent view occupies, in
	// absolute buffer coordinates. Overlay views use it to place content
	// relative to their anchor.
	parentRect Rect

	// base is the active pen style; per-write styles merge over it.
	base Style
}

// NewViewport creates the root viewport for a render pass covering the
// whole buffer.
func NewViewport(buf *Buffer, frame *Frame) *Viewport {
	full := geom.RectOf(buf.Size())
	return &Viewport{
		buf:         buf,
		frame:       frame,
		contentSize: buf.Size(),
		visible:     full,
		parentRect:  full,
	}
}

// ContentSize returns the region the current view may paint into.
func (vp *Viewport) ContentSize() Size {
	return vp.contentSize
}

// VisibleRect returns the clipped, possibly smaller, actually-visible
// sub-region in the viewport's local coordinates.
func (vp *Viewport) VisibleRect() Rect {
	return vp.visible
}

// ParentRect returns the immediate parent view's occupied rectangle in
// absolute buffer coordinates.
func (vp *Viewport) ParentRect() Rect {
	return vp.parentRect
}

// IsEmpty returns true when nothing inside this viewport is visible.
// Callers are expected to skip expensive work when it is.
func (vp *Viewport) IsEmpty() bool {
	return vp.visible.IsEmpty()
}

// child builds a nested viewport translated by rect's origin and clipped to
// its bounds.
func (vp *Viewport) child(rect Rect) *Viewport {
	return &Viewport{
		buf:         vp.buf,
		frame:       vp.frame,
		view:        vp.view,
		offset:      vp.offset.Add(rect.Origin),
		contentSize: rect.Size,
		visible:     vp.visible.Intersect(rect).Translate(-rect.Origin.X, -rect.Origin.Y),
		parentRect:  vp.parentRect,
		base:        vp.base,
	}
}

// Clipped runs body with a nested viewport whose origin is translated by
// rect's origin and whose content size is rect's size. The nested visible
// region is the intersection with the current one; if that intersection is
// empty the body still runs, but its writes are no-ops.
func (vp *Viewport) Clipped(rect Rect, body func(*Viewport)) {
	body(vp.child(rect))
}

// ClippedStyled is Clipped with a style merged onto the pen for the nested
// region.
func (vp *Viewport) ClippedStyled(rect Rect, style Style, body func(*Viewport)) {
	c := vp.child(rect)
	c.base = vp.base.Merge(style)
	body(c)
}

// renderThrough establishes the coordinate frame for a child view: the
// nested viewport is translated and clipped to rect, records this viewport
// as the parent region, and attributes registrations to v.
func (vp *Viewport) renderThrough(v View, rect Rect, body func(*Viewport)) {
	c := vp.child(rect)
	c.view = v
	c.parentRect = Rect{Origin: vp.offset, Size: vp.contentSize}
	body(c)
}

// Write paints text starting at the given point in the current coordinate
// frame. Cells outside the visible region are dropped individually, so a
// partially visible string is partially painted. Newlines advance to the
// next row at the starting column. Inline SGR escape tokens (as produced by
// lipgloss or raw "\x1b[...m" sequences) mutate the pen from the following
// character on and consume no cells.
func (vp *Viewport) Write(text string, at Point, style Style) {
	base := vp.base.Merge(style)
	pen := base
	pos := at.Mutable()

	scanText(text, func(r rune) {
		if r == '\n' {
			pos.X = at.X
			pos.Y++
			return
		}
		width := RuneWidth(r)
		p := pos.Point()
		if vp.visible.Contains(p) {
			vp.buf.Set(p.Add(vp.offset), NewCell(r, pen))
		}
		if width == 2 {
			tail := p.Offset(1, 0)
			if vp.visible.Contains(tail) {
				vp.buf.Set(tail.Add(vp.offset), continuationCell(pen))
			}
		}
		pos.Shift(width, 0)
	}, func(params string) {
		pen = applySGR(params, pen, base)
	})
}

// Fill paints the entire visible region with blank cells in the given
// style, merged over the pen.
func (vp *Viewport) Fill(style Style) {
	cell := NewCell(' ', vp.base.Merge(style))
	vp.visible.ForEach(func(p Point) {
		vp.buf.Set(p.Add(vp.offset), cell)
	})
}

// UsingPen pushes a style onto the pen stack, runs body with a Pen handle
// that can replace the style mid-stream, and restores the previous style on
// exit regardless of how body exits.
func (vp *Viewport) UsingPen(style Style, body func(*Pen)) {
	prev := vp.base
	vp.base = prev.Merge(style)
	defer func() { vp.base = prev }()
	body(&Pen{vp: vp, saved: prev})
}

// RegisterMouse declares that the currently rendering view wants the given
// mouse event kinds on subsequent dispatch passes. Registrations last one
// frame and must be re-declared every render.
func (vp *Viewport) RegisterMouse(kinds ...MouseKind) {
	if vp.frame == nil || vp.view == nil {
		return
	}
	abs := vp.visible.Translate(vp.offset.X, vp.offset.Y)
	vp.frame.registerMouse(vp.view, vp.offset, abs, kinds)
}

// RegisterTick declares that the currently rendering view wants a tick
// callback before the next frame. Like mouse registration it lasts one
// frame.
func (vp *Viewport) RegisterTick() {
	if vp.frame == nil || vp.view == nil {
		return
	}
	vp.frame.registerTick(vp.view)
}

// RequestModal declares that view should be composited as a floating
// overlay above normal content after this pass, anchored to the currently
// rendering view's region. onDismiss fires when the overlay is dismissed by
// an outside click or Escape. Only one modal is active at a time; the last
// request wins.
func (vp *Viewport) RequestModal(view View, onDismiss func()) {
	if vp.frame == nil {
		return
	}
	vp.frame.modal = &ModalRequest{
		View:      view,
		OnDismiss: onDismiss,
		Anchor:    Rect{Origin: vp.offset, Size: vp.contentSize},
	}
}
