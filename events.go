package crest

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a printable character. Check KeyEvent.Rune for the character.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Modifier represents modifier key flags.
type Modifier uint8

const (
	// ModCtrl indicates the Control key was held.
	ModCtrl Modifier = 1 << iota
	// ModAlt indicates the Alt key was held.
	ModAlt
	// ModShift indicates the Shift key was held.
	ModShift
)

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags.
	Mod Modifier
}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyRune, ModCtrl).
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	// MouseNone indicates no button (motion events).
	MouseNone MouseButton = iota
	// MouseLeft is the left (primary) mouse button.
	MouseLeft
	// MouseMiddle is the middle mouse button.
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
)

// MouseKind classifies mouse events, both for registration and delivery.
// Views register interest in kinds via Viewport.RegisterMouse; the move
// kind also carries the synthesized enter and exit transitions.
type MouseKind uint8

const (
	// MouseMove is pointer motion (and hover enter/exit synthesis).
	MouseMove MouseKind = 1 << iota
	// MouseEnter is delivered when the pointer moves onto a view.
	MouseEnter
	// MouseExit is delivered when the pointer moves off a view.
	MouseExit
	// MousePress is a button press.
	MousePress
	// MouseRelease is a button release.
	MouseRelease
	// MouseWheel is a scroll wheel step; Delta carries the direction.
	MouseWheel
)

// MouseEvent represents a mouse event delivered to a view. Position is in
// the receiving view's local coordinate frame; Screen is the absolute
// position the driver reported.
type MouseEvent struct {
	Kind     MouseKind
	Button   MouseButton
	Position Point
	Screen   Point
	// Delta is the wheel direction for MouseWheel events: negative up,
	// positive down.
	Delta int
}

// Matches returns true if the event's kind is included in the given mask.
// Enter and exit ride along with move registration.
func (k MouseKind) Matches(mask MouseKind) bool {
	if k == MouseEnter || k == MouseExit {
		return mask&(MouseMove|k) != 0
	}
	return mask&k != 0
}
