package crest

import "time"

// mouseRegistration records one view's per-frame interest in mouse events.
type mouseRegistration struct {
	view   View
	origin Point // absolute origin of the view's viewport
	rect   Rect  // absolute visible rect for hit testing
	mask   MouseKind
}

// Frame collects the registrations made during a single render pass:
// which views want mouse events and where they are, which views want
// ticks, and at most one modal overlay request. A fresh Frame is built
// every pass; views must re-declare their interest each render.
type Frame struct {
	mouse []mouseRegistration
	ticks []View
	modal *ModalRequest
}

// NewFrame creates an empty registration frame.
func NewFrame() *Frame {
	return &Frame{}
}

func (f *Frame) registerMouse(v View, origin Point, rect Rect, kinds []MouseKind) {
	var mask MouseKind
	for _, k := range kinds {
		mask |= k
	}
	// A view rendering through nested clips may register more than once;
	// merge instead of stacking duplicate entries.
	for i := range f.mouse {
		if f.mouse[i].view == v && f.mouse[i].origin == origin {
			f.mouse[i].mask |= mask
			return
		}
	}
	f.mouse = append(f.mouse, mouseRegistration{view: v, origin: origin, rect: rect, mask: mask})
}

func (f *Frame) registerTick(v View) {
	for _, t := range f.ticks {
		if t == v {
			return
		}
	}
	f.ticks = append(f.ticks, v)
}

// NeedsTicks returns true if any view asked for tick callbacks this frame.
func (f *Frame) NeedsTicks() bool {
	return len(f.ticks) > 0
}

// Modal returns the overlay request made during the pass, if any.
func (f *Frame) Modal() *ModalRequest {
	return f.modal
}

// hitTest finds the topmost registration containing p that wants the given
// kind. Registration order follows paint order, so the last match wins on
// overlap.
func (f *Frame) hitTest(p Point, kind MouseKind) (mouseRegistration, bool) {
	for i := len(f.mouse) - 1; i >= 0; i-- {
		reg := f.mouse[i]
		if kind.Matches(reg.mask) && reg.rect.Contains(p) {
			return reg, true
		}
	}
	return mouseRegistration{}, false
}

// find returns the current frame's registration for a specific view.
func (f *Frame) find(v View) (mouseRegistration, bool) {
	for i := len(f.mouse) - 1; i >= 0; i-- {
		if f.mouse[i].view == v {
			return f.mouse[i], true
		}
	}
	return mouseRegistration{}, false
}

// Router routes driver events to registered views, tracking the hover and
// press state that spans frames. The router only guarantees in-order,
// coordinate-correct delivery of press/release/move/enter/exit; synthesizing
// a click from a press/release pair is each view's own policy.
type Router struct {
	frame   *Frame
	hovered View
	pressed View
}

// NewRouter creates a router with no active frame.
func NewRouter() *Router {
	return &Router{}
}

// SetFrame installs the registrations of the most recent render pass.
func (r *Router) SetFrame(f *Frame) {
	r.frame = f
}

// RouteMove routes pointer motion, synthesizing enter and exit transitions
// when the hovered view changes.
func (r *Router) RouteMove(screen Point) {
	if r.frame == nil {
		return
	}
	hit, ok := r.frame.hitTest(screen, MouseMove)

	var target View
	if ok {
		target = hit.view
	}
	if target != r.hovered {
		if prev, found := r.frameRegistration(r.hovered); found {
			r.deliver(prev, MouseExit, MouseNone, screen, 0)
		}
		if ok {
			r.deliver(hit, MouseEnter, MouseNone, screen, 0)
		}
		r.hovered = target
	}
	if ok {
		r.deliver(hit, MouseMove, MouseNone, screen, 0)
	}
}

// RoutePress routes a button press to the topmost interested view and
// captures it as the press target: the matching release is delivered to the
// same view even if the pointer leaves it first.
func (r *Router) RoutePress(button MouseButton, screen Point) {
	if r.frame == nil {
		return
	}
	hit, ok := r.frame.hitTest(screen, MousePress)
	if !ok {
		r.pressed = nil
		return
	}
	r.pressed = hit.view
	r.deliver(hit, MousePress, button, screen, 0)
}

// RouteRelease routes a button release to the press target if one is
// captured, otherwise to the topmost interested view under the pointer.
func (r *Router) RouteRelease(button MouseButton, screen Point) {
	if r.frame == nil {
		return
	}
	if r.pressed != nil {
		target := r.pressed
		r.pressed = nil
		if reg, found := r.frameRegistration(target); found && MouseRelease.Matches(reg.mask) {
			r.deliver(reg, MouseRelease, button, screen, 0)
		}
		return
	}
	if hit, ok := r.frame.hitTest(screen, MouseRelease); ok {
		r.deliver(hit, MouseRelease, button, screen, 0)
	}
}

// RouteWheel routes a scroll step to the topmost interested view.
func (r *Router) RouteWheel(delta int, screen Point) {
	if r.frame == nil {
		return
	}
	if hit, ok := r.frame.hitTest(screen, MouseWheel); ok {
		r.deliver(hit, MouseWheel, MouseNone, screen, delta)
	}
}

// RouteTicks invokes ReceiveTick on every view that registered for ticks in
// the last pass. Returns true while any view still wants further ticks.
func (r *Router) RouteTicks(dt time.Duration) bool {
	if r.frame == nil {
		return false
	}
	active := false
	for _, v := range r.frame.ticks {
		th, ok := v.(TickHandler)
		if !ok {
			continue
		}
		if th.ReceiveTick(dt) {
			active = true
		}
	}
	return active
}

// RouteKey walks the tree depth-first in paint order and offers the event
// to each KeyHandler until one consumes it. Returns true if consumed.
func (r *Router) RouteKey(root View, ev KeyEvent) bool {
	consumed := false
	Walk(root, func(v View) bool {
		if kh, ok := v.(KeyHandler); ok && kh.ReceiveKey(ev) {
			consumed = true
			return false
		}
		return true
	})
	return consumed
}

// frameRegistration looks up the current frame's registration for a view
// tracked across frames (hover or press target). A view that did not
// re-register this frame gets nothing, per the per-frame registration rule.
func (r *Router) frameRegistration(v View) (mouseRegistration, bool) {
	if v == nil || r.frame == nil {
		return mouseRegistration{}, false
	}
	return r.frame.find(v)
}

func (r *Router) deliver(reg mouseRegistration, kind MouseKind, button MouseButton, screen Point, delta int) {
	if !kind.Matches(reg.mask) {
		return
	}
	mh, ok := reg.view.(MouseHandler)
	if !ok {
		return
	}
	mh.ReceiveMouse(MouseEvent{
		Kind:     kind,
		Button:   button,
		Position: screen.Sub(reg.origin),
		Screen:   screen,
		Delta:    delta,
	})
}
