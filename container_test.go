package crest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// hookView records lifecycle notifications in order.
type hookView struct {
	stubView
	log *[]string
}

func (h *hookView) WillMoveTo(parent View)  { *h.log = append(*h.log, "will-move") }
func (h *hookView) DidMoveFrom(parent View) { *h.log = append(*h.log, "did-move") }
func (h *hookView) DidMount()               { *h.log = append(*h.log, "mount") }
func (h *hookView) DidUnmount()             { *h.log = append(*h.log, "unmount") }

var (
	_ TreeObserver  = (*hookView)(nil)
	_ MountObserver = (*hookView)(nil)
)

func fillWide(natural Size) *stubView {
	v := &stubView{natural: natural}
	v.Update(Width(Fill()))
	return v
}

func TestVStack_Compose(t *testing.T) {
	a := fillWide(NewSize(4, 3))
	b := fillWide(NewSize(4, 3))
	c := NewContainer(VStack{}, a, b)

	rects, total := VStack{}.Compose(c.Children(), NewSize(10, 10))

	wantRects := []Rect{
		NewRect(0, 0, 10, 3),
		NewRect(0, 3, 10, 3),
	}
	if diff := cmp.Diff(wantRects, rects); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
	if total != NewSize(10, 6) {
		t.Errorf("total = %v, want 10x6", total)
	}
	if got := c.NaturalSize(NewSize(10, 10)); got != NewSize(10, 6) {
		t.Errorf("container natural = %v, want 10x6", got)
	}
}

func TestVStack_GapAndShrinkingRemainder(t *testing.T) {
	var seen []Size
	mk := func() *stubView {
		v := &stubView{natural: NewSize(2, 2)}
		v.naturalFn = func(available Size) Size {
			seen = append(seen, available)
			return NewSize(2, 2)
		}
		return v
	}
	children := []View{mk(), mk()}

	rects, total := VStack{Gap: 1}.Compose(children, NewSize(10, 10))

	if rects[1].Origin.Y != 3 {
		t.Errorf("second child y = %d, want 3", rects[1].Origin.Y)
	}
	if total != NewSize(2, 5) {
		t.Errorf("total = %v, want 2x5", total)
	}
	// The second child is offered only what remains below the first.
	if len(seen) != 2 || seen[1].Height != 7 {
		t.Errorf("offered sizes = %v, want second height 7", seen)
	}
}

func TestHStack_Compose(t *testing.T) {
	a := &stubView{natural: NewSize(3, 1)}
	b := &stubView{natural: NewSize(2, 4)}

	rects, total := HStack{Gap: 2}.Compose([]View{a, b}, NewSize(20, 5))

	if rects[1].Origin.X != 5 {
		t.Errorf("second child x = %d, want 5", rects[1].Origin.X)
	}
	if total != NewSize(7, 4) {
		t.Errorf("total = %v, want 7x4", total)
	}
}

func TestContainer_RenderPaintsChildrenInPlace(t *testing.T) {
	a := fillWide(NewSize(4, 1))
	a.renderFn = func(vp *Viewport) { vp.Write("aaaa", PointZero, Style{}) }
	b := fillWide(NewSize(4, 1))
	b.renderFn = func(vp *Viewport) { vp.Write("bbbb", PointZero, Style{}) }
	root := NewContainer(VStack{}, a, b)

	buf, _ := renderPass(NewSize(6, 3), root)
	if got := buf.Line(0); got != "aaaa  " {
		t.Errorf("row 0 = %q", got)
	}
	if got := buf.Line(1); got != "bbbb  " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestContainer_AddRemoveParent(t *testing.T) {
	child := &stubView{}
	c := NewContainer(VStack{})

	c.Add(child)
	if child.Parent() != View(c) {
		t.Fatal("parent not set on add")
	}

	c.Remove(child)
	if child.Parent() != nil {
		t.Fatal("parent not cleared on remove")
	}
	if len(c.Children()) != 0 {
		t.Fatalf("children = %d, want 0", len(c.Children()))
	}
}

func TestContainer_RemoveForeignPanics(t *testing.T) {
	c := NewContainer(VStack{}, &stubView{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing a foreign view")
		}
	}()
	c.Remove(&stubView{})
}

func TestContainer_InsertOrder(t *testing.T) {
	a := &stubView{}
	b := &stubView{}
	c := &stubView{}
	container := NewContainer(VStack{}, a, c)
	container.Insert(1, b)

	got := container.Children()
	want := []View{a, b, c}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("child %d out of order", i)
		}
	}
}

func TestContainer_LifecycleOrder(t *testing.T) {
	var log []string
	child := &hookView{log: &log}
	c := NewContainer(VStack{})

	c.Add(child)
	c.Remove(child)

	want := []string{"will-move", "mount", "unmount", "did-move"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("lifecycle order (-want +got):\n%s", diff)
	}
}

func TestContainer_ChildMutationInvalidatesAncestors(t *testing.T) {
	inner := NewContainer(VStack{})
	outer := NewContainer(VStack{}, inner)

	before := Measure(outer, NewSize(10, 10))
	inner.Add(&stubView{natural: NewSize(3, 2)})
	after := Measure(outer, NewSize(10, 10))

	if before == after {
		t.Errorf("outer size unchanged after child add: %v", after)
	}
	if after != NewSize(3, 2) {
		t.Errorf("outer size = %v, want 3x2", after)
	}
}
