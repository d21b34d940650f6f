package crest

// ModalRequest asks the driver to composite a view as a floating overlay
// above normal content after the current render pass. Requests are made
// through Viewport.RequestModal; the last request of a pass wins.
type ModalRequest struct {
	// View is the overlay content. It is measured against the screen and
	// placed relative to Anchor.
	View View

	// OnDismiss fires when the overlay is dismissed by an outside click or
	// Escape. It does not fire when the overlay is replaced by a newer
	// request.
	OnDismiss func()

	// Anchor is the requesting view's occupied region in absolute buffer
	// coordinates, captured at request time.
	Anchor Rect
}

// PlaceOverlay computes where an overlay of the given natural size goes
// relative to its anchor on a screen of the given size.
//
// Vertically the overlay prefers the space below the anchor, then the space
// above; when it fits in neither, whichever side has more room wins and the
// overlay is truncated to it, preferring below on an exact tie.
// Horizontally the overlay is at least as wide as its anchor, left-aligned
// to it, and pushed back on screen when it would overflow the right edge.
func PlaceOverlay(anchor Rect, natural Size, screen Size) Rect {
	width := natural.Width
	if width < anchor.Size.Width {
		width = anchor.Size.Width
	}
	if width > screen.Width {
		width = screen.Width
	}
	x := anchor.MinX()
	if x+width > screen.Width {
		x = screen.Width - width
	}
	if x < 0 {
		x = 0
	}

	below := screen.Height - anchor.MaxY()
	above := anchor.MinY()
	height := natural.Height

	var y int
	switch {
	case height <= below:
		y = anchor.MaxY()
	case height <= above:
		y = anchor.MinY() - height
	case below >= above:
		// Fits on neither side: more room wins, below on an exact tie.
		y = anchor.MaxY()
		height = below
	default:
		y = 0
		height = above
	}
	return NewRect(x, y, width, height)
}
