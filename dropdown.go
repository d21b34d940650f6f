package crest

// Dropdown shows the selected option on one row and, when open, requests a
// modal overlay listing every option. The overlay is placed by the driver:
// below the dropdown when it fits, above otherwise. Selecting an option or
// dismissing the overlay closes it.
type Dropdown struct {
	Base
	options  []string
	selected int
	open     bool
	onSelect func(index int, option string)
	hovered  bool
	pressed  bool
	list     *dropdownList
}

var (
	_ View         = (*Dropdown)(nil)
	_ MouseHandler = (*Dropdown)(nil)
)

// NewDropdown creates a dropdown over the given options. onSelect fires
// when the user picks an option, including re-picking the current one.
func NewDropdown(options []string, onSelect func(int, string), props ...Prop) *Dropdown {
	d := &Dropdown{options: options, onSelect: onSelect}
	d.list = &dropdownList{owner: d}
	d.list.setParent(d)
	d.Update(props...)
	return d
}

// Selected returns the index of the current option, -1 when there are none.
func (d *Dropdown) Selected() int {
	if len(d.options) == 0 {
		return -1
	}
	return d.selected
}

// Select sets the current option without firing onSelect.
func (d *Dropdown) Select(i int) {
	if i >= 0 && i < len(d.options) {
		d.selected = i
	}
}

// Open reports whether the option list is up.
func (d *Dropdown) Open() bool {
	return d.open
}

func (d *Dropdown) widest() int {
	width := 0
	for _, opt := range d.options {
		if w := StringWidth(opt); w > width {
			width = w
		}
	}
	return width
}

// NaturalSize fits the widest option plus the indicator on one row.
func (d *Dropdown) NaturalSize(Size) Size {
	return NewSize(d.widest()+3, 1)
}

// Render implements View.
func (d *Dropdown) Render(vp *Viewport) {
	vp.RegisterMouse(MousePress, MouseRelease, MouseMove)
	if d.open {
		// Re-requested every pass while open; the overlay disappears the
		// first pass after open flips false.
		vp.RequestModal(d.list, func() { d.open = false })
	}
	if vp.IsEmpty() {
		return
	}
	theme := d.Theme()
	style := theme.Text
	if d.hovered || d.open {
		style = theme.Highlight.Merge(style)
	}
	vp.Fill(style)
	if len(d.options) > 0 {
		vp.Write(d.options[d.selected], PointZero, style)
	}
	indicator := "▾"
	if d.open {
		indicator = "▴"
	}
	vp.Write(indicator, Point{X: vp.ContentSize().Width - 1}, style)
}

// ReceiveMouse implements MouseHandler.
func (d *Dropdown) ReceiveMouse(ev MouseEvent) {
	switch ev.Kind {
	case MouseEnter:
		d.hovered = true
	case MouseExit:
		d.hovered = false
		d.pressed = false
	case MousePress:
		if ev.Button == MouseLeft {
			d.pressed = true
		}
	case MouseRelease:
		if !d.pressed {
			return
		}
		d.pressed = false
		d.toggle()
	}
}

func (d *Dropdown) toggle() {
	d.open = !d.open
	if d.open {
		d.list.highlight = d.selected
	}
}

func (d *Dropdown) choose(i int) {
	if i < 0 || i >= len(d.options) {
		return
	}
	d.selected = i
	d.open = false
	if d.onSelect != nil {
		d.onSelect(i, d.options[i])
	}
}

// dropdownList is the overlay content: one row per option, keyboard and
// mouse selectable.
type dropdownList struct {
	Base
	owner     *Dropdown
	highlight int
}

var (
	_ View         = (*dropdownList)(nil)
	_ MouseHandler = (*dropdownList)(nil)
	_ KeyHandler   = (*dropdownList)(nil)
)

func (l *dropdownList) NaturalSize(Size) Size {
	return NewSize(l.owner.widest()+2, len(l.owner.options))
}

func (l *dropdownList) Render(vp *Viewport) {
	vp.RegisterMouse(MousePress, MouseRelease, MouseMove)
	if vp.IsEmpty() {
		return
	}
	theme := l.owner.Theme()
	vp.Fill(theme.Text)
	width := vp.ContentSize().Width
	for i, opt := range l.owner.options {
		style := theme.Text
		if i == l.highlight {
			style = theme.Highlight.Merge(style)
			vp.ClippedStyled(NewRect(0, i, width, 1), style, func(row *Viewport) {
				row.Fill(style)
			})
		}
		marker := " "
		if i == l.owner.selected {
			marker = "•"
		}
		vp.Write(marker+opt, Point{Y: i}, style)
	}
}

func (l *dropdownList) ReceiveMouse(ev MouseEvent) {
	switch ev.Kind {
	case MouseMove, MouseEnter:
		if ev.Position.Y >= 0 && ev.Position.Y < len(l.owner.options) {
			l.highlight = ev.Position.Y
		}
	case MouseRelease:
		if ev.Button == MouseLeft || ev.Button == MouseNone {
			l.owner.choose(ev.Position.Y)
		}
	}
}

func (l *dropdownList) ReceiveKey(ev KeyEvent) bool {
	switch {
	case ev.Is(KeyUp):
		if l.highlight > 0 {
			l.highlight--
		}
		return true
	case ev.Is(KeyDown):
		if l.highlight < len(l.owner.options)-1 {
			l.highlight++
		}
		return true
	case ev.Is(KeyEnter):
		l.owner.choose(l.highlight)
		return true
	}
	return false
}
