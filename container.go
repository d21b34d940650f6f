package crest

// Composer is the layout policy a container delegates to: given the
// children and the available space, it assigns each child a rectangle in
// the container's coordinate frame and reports the container's natural
// size. Children are measured with Measure, so their own sizing
// preferences apply.
type Composer interface {
	Compose(children []View, available Size) (rects []Rect, total Size)
}

// Container is a view that owns an ordered sequence of child views.
// Insertion order is paint order, which also makes the last-added child win
// hit-testing on overlap. The container's own responsibilities are
// ownership, iteration order, and invalidation forwarding; how children are
// placed belongs to the Composer.
type Container struct {
	Base
	composer Composer
	children []View
}

var _ View = (*Container)(nil)

// NewContainer creates a container using the given composer. A nil
// composer defaults to a vertical stack.
func NewContainer(composer Composer, children ...View) *Container {
	if composer == nil {
		composer = VStack{}
	}
	c := &Container{composer: composer}
	for _, child := range children {
		c.Add(child)
	}
	return c
}

// Children returns the children in paint order. The returned slice is the
// container's own; callers must not mutate it.
func (c *Container) Children() []View {
	return c.children
}

// Add appends a child, sets its parent back-reference, and invalidates the
// container's size cache.
func (c *Container) Add(child View) {
	c.Insert(len(c.children), child)
}

// Insert adds a child at the given paint-order position.
func (c *Container) Insert(i int, child View) {
	if to, ok := child.(TreeObserver); ok {
		to.WillMoveTo(c)
	}
	c.children = append(c.children, nil)
	copy(c.children[i+1:], c.children[i:])
	c.children[i] = child
	child.Core().setParent(c)
	c.InvalidateSize()
	if mo, ok := child.(MountObserver); ok {
		mo.DidMount()
	}
}

// Remove detaches a child, clears its parent back-reference, and
// invalidates the container's size cache. Removing a view the container
// does not own is a programming error.
func (c *Container) Remove(child View) {
	for i, existing := range c.children {
		if existing != child {
			continue
		}
		c.children = append(c.children[:i], c.children[i+1:]...)
		child.Core().setParent(nil)
		c.InvalidateSize()
		if mo, ok := child.(MountObserver); ok {
			mo.DidUnmount()
		}
		if to, ok := child.(TreeObserver); ok {
			to.DidMoveFrom(c)
		}
		return
	}
	panic("crest: Remove called with a view the container does not own")
}

// NaturalSize reports the size the composer needs for the current children.
func (c *Container) NaturalSize(available Size) Size {
	_, total := c.composer.Compose(c.children, available)
	return total
}

// Render lays the children out for the viewport's content size and renders
// each through its own clipped region, in paint order.
func (c *Container) Render(vp *Viewport) {
	rects, _ := c.composer.Compose(c.children, vp.ContentSize())
	for i, child := range c.children {
		child := child
		vp.Clipped(rects[i], func(sub *Viewport) {
			RenderInto(child, sub)
		})
	}
}

// VStack lays children out top to bottom in insertion order. Each child is
// measured against the remaining space; Gap adds blank rows between
// children.
type VStack struct {
	Gap int
}

// Compose implements Composer.
func (s VStack) Compose(children []View, available Size) ([]Rect, Size) {
	rects := make([]Rect, len(children))
	y := 0
	maxWidth := 0
	for i, child := range children {
		if i > 0 {
			y += s.Gap
		}
		remaining := NewSize(available.Width, available.Height-y)
		size := Measure(child, remaining)
		rects[i] = Rect{Origin: Point{Y: y}, Size: size}
		y += size.Height
		if size.Width > maxWidth {
			maxWidth = size.Width
		}
	}
	return rects, NewSize(maxWidth, y)
}

// HStack lays children out left to right in insertion order. Gap adds
// blank columns between children.
type HStack struct {
	Gap int
}

// Compose implements Composer.
func (s HStack) Compose(children []View, available Size) ([]Rect, Size) {
	rects := make([]Rect, len(children))
	x := 0
	maxHeight := 0
	for i, child := range children {
		if i > 0 {
			x += s.Gap
		}
		remaining := NewSize(available.Width-x, available.Height)
		size := Measure(child, remaining)
		rects[i] = Rect{Origin: Point{X: x}, Size: size}
		x += size.Width
		if size.Height > maxHeight {
			maxHeight = size.Height
		}
	}
	return rects, NewSize(x, maxHeight)
}
