package easel

import "testing"

// stubInput replaces the cursor's device polling with a scripted feed.
type stubInput struct {
	dx, dy float64
	sel    bool
}

func stubCursor(width, height int, in *stubInput) *CursorSource {
	c := NewCursorSource(width, height)
	c.readInput = func() (float64, float64, bool) {
		return in.dx, in.dy, in.sel
	}
	return c
}

func TestCursorSourceStartsCentered(t *testing.T) {
	c := NewCursorSource(320, 240)
	if got := c.Position(); got != (Point{160, 120}) {
		t.Errorf("Position() = %v, want {160 120}", got)
	}
}

func TestCursorSourceMovesAndAccelerates(t *testing.T) {
	in := &stubInput{dx: 1}
	c := stubCursor(320, 240, in)

	x0 := c.Position().X
	c.Poll()
	x1 := c.Position().X
	firstStep := x1 - x0
	if firstStep <= 0 {
		t.Fatalf("cursor did not move right: step = %d", firstStep)
	}

	// Hold the direction long enough for the speed ramp to finish.
	for i := 0; i < 60; i++ {
		c.Poll()
	}
	before := c.Position().X
	c.Poll()
	rampedStep := c.Position().X - before
	if rampedStep <= firstStep {
		t.Errorf("held movement did not accelerate: first step %d, ramped step %d", firstStep, rampedStep)
	}
}

func TestCursorSourceClampsToBounds(t *testing.T) {
	in := &stubInput{dx: -1, dy: -1}
	c := stubCursor(64, 48, in)

	for i := 0; i < 200; i++ {
		c.Poll()
	}
	if got := c.Position(); got != (Point{0, 0}) {
		t.Errorf("Position() = %v, want {0 0} after long hold toward origin", got)
	}

	in.dx, in.dy = 1, 1
	for i := 0; i < 200; i++ {
		c.Poll()
	}
	if got := c.Position(); got != (Point{63, 47}) {
		t.Errorf("Position() = %v, want {63 47} after long hold toward far corner", got)
	}
}

func TestCursorSourceReleaseResetsRamp(t *testing.T) {
	in := &stubInput{dx: 1}
	c := stubCursor(3200, 240, in)

	for i := 0; i < 60; i++ {
		c.Poll()
	}
	in.dx = 0
	c.Poll() // direction released

	in.dx = 1
	before := c.x
	c.Poll()
	step := c.x - before
	if step > cursorBaseSpeed+0.1 {
		t.Errorf("step after restart = %.2f, want near base speed %v", step, cursorBaseSpeed)
	}
}

func TestCursorSourceDebouncesButton(t *testing.T) {
	in := &stubInput{}
	c := stubCursor(64, 48, in)

	// A single-poll blip must not register.
	in.sel = true
	if s := c.Poll(); s.Contact {
		t.Error("contact reported after one poll, want debounce to hold it off")
	}
	in.sel = false
	if s := c.Poll(); s.Contact {
		t.Error("contact reported after blip ended")
	}

	// A held press registers after the debounce window.
	in.sel = true
	c.Poll()
	s := c.Poll()
	if !s.Contact || !s.Valid {
		t.Fatalf("held press not reported: %+v", s)
	}
	if s.Pos != c.Position() {
		t.Errorf("contact position = %v, want cursor position %v", s.Pos, c.Position())
	}

	// A held release registers after the debounce window too.
	in.sel = false
	if s := c.Poll(); !s.Contact {
		t.Error("release registered after a single poll, want debounce")
	}
	if s := c.Poll(); s.Contact {
		t.Error("contact still reported after debounced release")
	}
}
