package crest

// BorderStyle selects the rune set a Box draws its border with.
type BorderStyle int

const (
	// BorderSingle is a single thin line.
	BorderSingle BorderStyle = iota
	// BorderRound is a single thin line with rounded corners.
	BorderRound
	// BorderDouble is a double line.
	BorderDouble
	// BorderThick is a heavy line.
	BorderThick
)

type borderRunes struct {
	tl, tr, bl, br, h, v rune
}

var borders = map[BorderStyle]borderRunes{
	BorderSingle: {'┌', '┐', '└', '┘', '─', '│'},
	BorderRound:  {'╭', '╮', '╰', '╯', '─', '│'},
	BorderDouble: {'╔', '╗', '╚', '╝', '═', '║'},
	BorderThick:  {'┏', '┓', '┗', '┛', '━', '┃'},
}

// Box draws a border around a single child, with an optional title set into
// the top edge. The child paints inside the border.
type Box struct {
	Base
	child  View
	border BorderStyle
	title  string
}

var (
	_ View        = (*Box)(nil)
	_ ChildHolder = (*Box)(nil)
)

// NewBox creates a box around child. A nil child gives an empty frame.
func NewBox(child View, props ...Prop) *Box {
	b := &Box{child: child}
	if child != nil {
		child.Core().setParent(b)
	}
	b.Update(props...)
	return b
}

// Children implements ChildHolder.
func (b *Box) Children() []View {
	if b.child == nil {
		return nil
	}
	return []View{b.child}
}

// SetTitle sets the text shown in the top edge.
func (b *Box) SetTitle(title string) {
	if title == b.title {
		return
	}
	b.title = title
	b.InvalidateSize()
}

// SetBorder selects the border rune set.
func (b *Box) SetBorder(style BorderStyle) {
	b.border = style
}

// NaturalSize is the child's natural size grown by the border, and never
// narrower than the title needs.
func (b *Box) NaturalSize(available Size) Size {
	inner := SizeZero
	if b.child != nil {
		inner = Measure(b.child, available.Shrink(2, 2))
	}
	out := inner.Grow(2, 2)
	if b.title != "" {
		if min := StringWidth(b.title) + 4; out.Width < min {
			out.Width = min
		}
	}
	return out
}

// Render implements View.
func (b *Box) Render(vp *Viewport) {
	if vp.IsEmpty() {
		return
	}
	size := vp.ContentSize()
	if size.Width < 2 || size.Height < 2 {
		return
	}
	runes := borders[b.border]
	style := b.Theme().Border

	top := make([]rune, 0, size.Width)
	bottom := make([]rune, 0, size.Width)
	top = append(top, runes.tl)
	bottom = append(bottom, runes.bl)
	for x := 1; x < size.Width-1; x++ {
		top = append(top, runes.h)
		bottom = append(bottom, runes.h)
	}
	top = append(top, runes.tr)
	bottom = append(bottom, runes.br)

	vp.Write(string(top), PointZero, style)
	vp.Write(string(bottom), Point{Y: size.Height - 1}, style)
	for y := 1; y < size.Height-1; y++ {
		vp.Write(string(runes.v), Point{Y: y}, style)
		vp.Write(string(runes.v), Point{X: size.Width - 1, Y: y}, style)
	}

	if b.title != "" && size.Width > 4 {
		title := b.title
		if w := StringWidth(title); w > size.Width-4 {
			title = string([]rune(title)[:size.Width-4])
		}
		vp.Write(" "+title+" ", Point{X: 1}, b.Theme().Text)
	}

	if b.child != nil {
		inner := NewRect(1, 1, size.Width-2, size.Height-2)
		vp.Clipped(inner, func(sub *Viewport) {
			RenderInto(b.child, sub)
		})
	}
}
