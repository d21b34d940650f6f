package crest

// Button is a clickable label. A click is a left press followed by a
// release on the same button; press capture in the router delivers the
// release here even when the pointer wanders, and leaving the button
// cancels the pending click.
type Button struct {
	Base
	label   string
	onClick func()
	hovered bool
	pressed bool
}

var (
	_ View         = (*Button)(nil)
	_ MouseHandler = (*Button)(nil)
)

// NewButton creates a button that calls onClick when activated.
func NewButton(label string, onClick func(), props ...Prop) *Button {
	b := &Button{label: label, onClick: onClick}
	b.Update(props...)
	return b
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// SetLabel replaces the button text.
func (b *Button) SetLabel(label string) {
	if label == b.label {
		return
	}
	b.label = label
	b.InvalidateSize()
}

// NaturalSize is the label plus bracket decoration on one row.
func (b *Button) NaturalSize(Size) Size {
	return NewSize(StringWidth(b.label)+4, 1)
}

// Render implements View.
func (b *Button) Render(vp *Viewport) {
	vp.RegisterMouse(MousePress, MouseRelease, MouseMove)
	if vp.IsEmpty() {
		return
	}
	theme := b.Theme()
	style := theme.Accent
	switch {
	case b.pressed:
		style = style.Reverse()
	case b.hovered:
		style = theme.Highlight.Merge(style)
	}
	vp.Fill(style)
	vp.Write("[ "+b.label+" ]", PointZero, style)
}

// ReceiveMouse implements MouseHandler.
func (b *Button) ReceiveMouse(ev MouseEvent) {
	switch ev.Kind {
	case MouseEnter:
		b.hovered = true
	case MouseExit:
		b.hovered = false
		b.pressed = false
	case MousePress:
		if ev.Button == MouseLeft {
			b.pressed = true
		}
	case MouseRelease:
		if !b.pressed {
			return
		}
		b.pressed = false
		if b.onClick != nil {
			b.onClick()
		}
	}
}
