package crest

import (
	"strings"
	"testing"
	"time"
)

func TestText_NaturalSize(t *testing.T) {
	type tc struct {
		content string
		want    Size
	}

	tests := map[string]tc{
		"single line": {content: "hello", want: NewSize(5, 1)},
		"multi line":  {content: "ab\nlonger\nc", want: NewSize(6, 3)},
		"styled":      {content: "\x1b[1;36mhi\x1b[0m", want: NewSize(2, 1)},
		"wide runes":  {content: "世界", want: NewSize(4, 1)},
		"empty":       {content: "", want: NewSize(0, 1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NewText(tt.content).NaturalSize(SizeZero); got != tt.want {
				t.Errorf("NaturalSize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestText_SetContentInvalidates(t *testing.T) {
	text := NewText("ab")
	parent := NewContainer(VStack{}, text)

	if got := Measure(parent, NewSize(20, 20)); got != NewSize(2, 1) {
		t.Fatalf("initial measure = %v", got)
	}
	text.SetContent("abcd")
	if got := Measure(parent, NewSize(20, 20)); got != NewSize(4, 1) {
		t.Errorf("measure after SetContent = %v, want 4x1", got)
	}
}

func TestBox_DrawsBorderAndTitle(t *testing.T) {
	box := NewBox(NewText("hi"))
	box.SetTitle("t")

	buf, _ := renderPass(NewSize(6, 4), box)

	want := strings.Join([]string{
		"┌ t ─┐",
		"│hi  │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("box render:\n%s\nwant:\n%s", got, want)
	}
}

func TestBox_NaturalSizeWrapsChild(t *testing.T) {
	box := NewBox(NewText("abcd"))
	if got := box.NaturalSize(NewSize(20, 20)); got != NewSize(6, 3) {
		t.Errorf("NaturalSize = %v, want 6x3", got)
	}

	box.SetTitle("a longer title")
	if got := box.NaturalSize(NewSize(30, 20)); got != NewSize(18, 3) {
		t.Errorf("NaturalSize with title = %v, want 18x3", got)
	}
}

func TestButton_ClickLifecycle(t *testing.T) {
	clicks := 0
	b := NewButton("go", func() { clicks++ })

	b.ReceiveMouse(MouseEvent{Kind: MousePress, Button: MouseLeft})
	b.ReceiveMouse(MouseEvent{Kind: MouseRelease, Button: MouseLeft})
	if clicks != 1 {
		t.Fatalf("clicks = %d after press+release, want 1", clicks)
	}

	// Leaving the button cancels the pending click.
	b.ReceiveMouse(MouseEvent{Kind: MousePress, Button: MouseLeft})
	b.ReceiveMouse(MouseEvent{Kind: MouseExit})
	b.ReceiveMouse(MouseEvent{Kind: MouseRelease, Button: MouseLeft})
	if clicks != 1 {
		t.Fatalf("clicks = %d after cancelled press, want 1", clicks)
	}

	// A release with no preceding press does nothing.
	b.ReceiveMouse(MouseEvent{Kind: MouseRelease, Button: MouseLeft})
	if clicks != 1 {
		t.Fatalf("clicks = %d after stray release, want 1", clicks)
	}
}

func TestSpinner_TickStopsWhenStopped(t *testing.T) {
	s := NewSpinner("busy")

	if !s.ReceiveTick(50 * time.Millisecond) {
		t.Fatal("running spinner should want more ticks")
	}
	s.Stop()
	if s.ReceiveTick(50 * time.Millisecond) {
		t.Fatal("stopped spinner should decline further ticks")
	}

	// Stopped spinners do not register for ticks at all.
	_, frame := renderPass(NewSize(10, 1), s)
	if frame.NeedsTicks() {
		t.Error("stopped spinner registered for ticks")
	}

	s.Start()
	_, frame = renderPass(NewSize(10, 1), s)
	if !frame.NeedsTicks() {
		t.Error("running spinner did not register for ticks")
	}
}

func TestDropdown_SelectFlow(t *testing.T) {
	var picked string
	d := NewDropdown([]string{"one", "two", "three"}, func(i int, opt string) {
		picked = opt
	})

	// Click toggles open; the next render requests the overlay.
	d.ReceiveMouse(MouseEvent{Kind: MousePress, Button: MouseLeft})
	d.ReceiveMouse(MouseEvent{Kind: MouseRelease, Button: MouseLeft})
	if !d.Open() {
		t.Fatal("dropdown did not open on click")
	}

	_, frame := renderPass(NewSize(20, 10), d)
	req := frame.Modal()
	if req == nil {
		t.Fatal("open dropdown did not request a modal")
	}

	// Keyboard selection on the overlay list.
	list, ok := req.View.(KeyHandler)
	if !ok {
		t.Fatal("overlay does not handle keys")
	}
	list.ReceiveKey(KeyEvent{Key: KeyDown})
	list.ReceiveKey(KeyEvent{Key: KeyEnter})

	if picked != "two" {
		t.Errorf("picked = %q, want %q", picked, "two")
	}
	if d.Open() {
		t.Error("dropdown still open after selection")
	}
	if d.Selected() != 1 {
		t.Errorf("selected = %d, want 1", d.Selected())
	}

	// With open false the next pass makes no request.
	_, frame = renderPass(NewSize(20, 10), d)
	if frame.Modal() != nil {
		t.Error("closed dropdown still requests a modal")
	}
}

func TestDropdown_MouseSelection(t *testing.T) {
	var picked string
	d := NewDropdown([]string{"one", "two"}, func(i int, opt string) {
		picked = opt
	})
	d.toggle()

	_, frame := renderPass(NewSize(20, 10), d)
	req := frame.Modal()
	if req == nil {
		t.Fatal("no modal request")
	}

	list := req.View.(MouseHandler)
	list.ReceiveMouse(MouseEvent{Kind: MouseRelease, Button: MouseLeft, Position: Point{Y: 1}})

	if picked != "two" {
		t.Errorf("picked = %q, want %q", picked, "two")
	}
}
