package easel

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoPointer is returned by DetectSource when neither touch nor
// cursor-capable hardware is available. It is the only fatal condition in
// the package; everything after startup degrades silently.
var ErrNoPointer = errors.New("easel: no touch or cursor-capable pointer device")

// Sample is one poll of a pointer Source: whether the pointer is in
// contact, and where. Pos is meaningful only when Contact and Valid are
// both true; a Contact sample without a valid position is a device
// contract violation and is degraded to no-contact by the control loop.
type Sample struct {
	Contact bool
	Valid   bool
	Pos     Point
}

// Source abstracts a pointer device behind a single capability: sample the
// current latched contact state and position. Poll must return promptly
// and is called exactly once per tick. Poke hints the device to refresh
// any visual indicator it owns (a hardware cursor sprite); it never
// touches the canvas.
type Source interface {
	Poll() Sample
	Poke()
}

// EventKind classifies the transition between two consecutive samples.
type EventKind uint8

const (
	EventNone     EventKind = iota // no change worth acting on
	EventPressed                   // contact began this tick
	EventReleased                  // contact ended this tick
	EventMoved                     // contact held, position changed
)

// Event is the edge-triggered result of comparing the previous tick's
// sample against the current one. Events are ephemeral: derived each tick,
// never stored.
//
// Field validity by kind: EventPressed carries To (where contact began);
// EventReleased carries From (the last known position before release);
// EventMoved carries both.
type Event struct {
	Kind EventKind
	From Point
	To   Point
}

// Transition classifies the change from prev to cur. Samples that report
// contact without a valid position are treated as no-contact, so a device
// glitch mid-stroke reads as a release rather than a stroke to a garbage
// coordinate.
//
// The first tick has no real previous sample; passing the zero Sample
// makes the first genuine contact classify as EventPressed.
func Transition(prev, cur Sample) Event {
	prevDown := prev.Contact && prev.Valid
	curDown := cur.Contact && cur.Valid

	switch {
	case curDown && !prevDown:
		return Event{Kind: EventPressed, To: cur.Pos}
	case !curDown && prevDown:
		return Event{Kind: EventReleased, From: prev.Pos}
	case curDown && prevDown && cur.Pos != prev.Pos:
		return Event{Kind: EventMoved, From: prev.Pos, To: cur.Pos}
	}
	return Event{Kind: EventNone}
}

// Capabilities describes which pointer hardware the platform offers.
// Exactly one Source is selected from it at startup.
type Capabilities struct {
	Touch bool // touch screen present
	Mouse bool // system mouse cursor present
	Keys  bool // keyboard or gamepad usable to drive a virtual cursor
}

// DesktopCapabilities is the sensible default for windowed desktop builds:
// no touch assumption, mouse and keyboard available.
var DesktopCapabilities = Capabilities{Mouse: true, Keys: true}

// DetectSource selects the single pointer source for this run, preferring
// touch over mouse over a key-driven virtual cursor. width and height
// bound the virtual cursor when one is created. Returns ErrNoPointer when
// no capability is available; callers treat that as fatal before the loop
// starts.
func DetectSource(width, height int, caps Capabilities) (Source, error) {
	switch {
	case caps.Touch:
		return NewTouchSource(), nil
	case caps.Mouse:
		return NewMouseSource(), nil
	case caps.Keys:
		return NewCursorSource(width, height), nil
	}
	return nil, ErrNoPointer
}

// MouseSource reads the system mouse: contact is the left button, position
// is the cursor location in screen pixels.
type MouseSource struct{}

// NewMouseSource returns a Source backed by the system mouse.
func NewMouseSource() *MouseSource { return &MouseSource{} }

// Poll reports the left button state and cursor position.
func (*MouseSource) Poll() Sample {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return Sample{}
	}
	x, y := ebiten.CursorPosition()
	return Sample{Contact: true, Valid: true, Pos: Point{X: x, Y: y}}
}

// Poke is a no-op: the OS repaints its own cursor.
func (*MouseSource) Poke() {}

// TouchSource reads the touch screen. Only one stroke is live at a time:
// the first touch ID to make contact owns the pointer until it lifts, and
// additional fingers are ignored for the duration.
type TouchSource struct {
	ids      []ebiten.TouchID
	active   ebiten.TouchID
	tracking bool
}

// NewTouchSource returns a Source backed by the platform touch screen.
func NewTouchSource() *TouchSource { return &TouchSource{} }

// Poll reports whether the tracked touch is still in contact and where.
func (t *TouchSource) Poll() Sample {
	t.ids = ebiten.AppendTouchIDs(t.ids[:0])

	if t.tracking {
		for _, id := range t.ids {
			if id == t.active {
				x, y := ebiten.TouchPosition(id)
				return Sample{Contact: true, Valid: true, Pos: Point{X: x, Y: y}}
			}
		}
		t.tracking = false
		return Sample{}
	}

	if len(t.ids) == 0 {
		return Sample{}
	}
	t.active = t.ids[0]
	t.tracking = true
	x, y := ebiten.TouchPosition(t.active)
	return Sample{Contact: true, Valid: true, Pos: Point{X: x, Y: y}}
}

// Poke is a no-op: a touch screen has no cursor to refresh.
func (*TouchSource) Poke() {}
