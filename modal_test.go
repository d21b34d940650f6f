package crest

import "testing"

func TestPlaceOverlay(t *testing.T) {
	type tc struct {
		anchor  Rect
		natural Size
		screen  Size
		want    Rect
	}

	tests := map[string]tc{
		"fits below": {
			anchor:  NewRect(2, 2, 6, 1),
			natural: Size{Width: 6, Height: 4},
			screen:  NewSize(20, 10),
			want:    NewRect(2, 3, 6, 4),
		},
		"fits only above": {
			anchor:  NewRect(2, 7, 6, 1),
			natural: Size{Width: 6, Height: 5},
			screen:  NewSize(20, 10),
			want:    NewRect(2, 2, 6, 5),
		},
		"fits neither, below has more room": {
			anchor:  NewRect(0, 3, 4, 1),
			natural: Size{Width: 4, Height: 9},
			screen:  NewSize(20, 10),
			want:    NewRect(0, 4, 4, 6),
		},
		"fits neither, above has more room": {
			anchor:  NewRect(0, 7, 4, 1),
			natural: Size{Width: 4, Height: 9},
			screen:  NewSize(20, 10),
			want:    NewRect(0, 0, 4, 7),
		},
		"exact tie prefers below": {
			// 4 rows above, 4 rows below, 6 wanted.
			anchor:  NewRect(0, 4, 4, 2),
			natural: Size{Width: 4, Height: 6},
			screen:  NewSize(20, 10),
			want:    NewRect(0, 6, 4, 4),
		},
		"widens to anchor width": {
			anchor:  NewRect(2, 2, 8, 1),
			natural: Size{Width: 3, Height: 2},
			screen:  NewSize(20, 10),
			want:    NewRect(2, 3, 8, 2),
		},
		"pushed back from right edge": {
			anchor:  NewRect(15, 2, 4, 1),
			natural: Size{Width: 8, Height: 2},
			screen:  NewSize(20, 10),
			want:    NewRect(12, 3, 8, 2),
		},
		"wider than screen clamps": {
			anchor:  NewRect(2, 2, 4, 1),
			natural: Size{Width: 30, Height: 2},
			screen:  NewSize(20, 10),
			want:    NewRect(0, 3, 20, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := PlaceOverlay(tt.anchor, tt.natural, tt.screen); got != tt.want {
				t.Errorf("PlaceOverlay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequestModal_LastRequestWins(t *testing.T) {
	overlayA := &stubView{}
	overlayB := &stubView{}
	root := &stubView{}
	root.renderFn = func(vp *Viewport) {
		vp.RequestModal(overlayA, nil)
		vp.RequestModal(overlayB, nil)
	}

	_, frame := renderPass(NewSize(10, 10), root)

	req := frame.Modal()
	if req == nil {
		t.Fatal("no modal request recorded")
	}
	if req.View != View(overlayB) {
		t.Error("modal request is not the last one made")
	}
}

func TestRequestModal_AnchorIsAbsolute(t *testing.T) {
	overlay := &stubView{}
	requester := &stubView{}
	requester.renderFn = func(vp *Viewport) {
		vp.RequestModal(overlay, nil)
	}
	root := placed(NewRect(3, 2, 5, 1), requester)

	_, frame := renderPass(NewSize(20, 10), root)

	req := frame.Modal()
	if req == nil {
		t.Fatal("no modal request recorded")
	}
	if req.Anchor != NewRect(3, 2, 5, 1) {
		t.Errorf("anchor = %v, want (3,2,5,1)", req.Anchor)
	}
}
