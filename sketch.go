package easel

import (
	"fmt"
	"os"
	"time"
)

// Sketch is the painting control loop: it owns the pen state that persists
// across ticks and translates pointer events into canvas writes. Drive it
// by calling Step once per tick; the Game shell does this from
// ebiten.Game.Update, and tests call it directly with a ScriptSource.
//
// A press plots a single pixel and pokes the source so any hardware cursor
// repaints over the fresh paint. A move while pressed rasterizes the
// segment from the previous position. A release draws nothing: the stroke
// is already complete.
type Sketch struct {
	canvas *Canvas
	source Source
	prev   Sample

	strokeDelay time.Duration
	debug       bool
}

// NewSketch creates a control loop over the given canvas and pointer
// source. The previous sample starts as the zero (no-contact) sample so
// the first real contact classifies as a press.
func NewSketch(canvas *Canvas, source Source) *Sketch {
	return &Sketch{canvas: canvas, source: source}
}

// Canvas returns the canvas this sketch draws on.
func (s *Sketch) Canvas() *Canvas { return s.canvas }

// SetDebug toggles per-tick transition logging to stderr.
func (s *Sketch) SetDebug(on bool) { s.debug = on }

// SetStrokeDelay sets an optional pause between pixel plots while
// rasterizing a segment, purely for visual effect. It applies within a
// single tick's work and never suspends polling across ticks. Zero (the
// default) disables it; it has no effect on which pixels are drawn.
func (s *Sketch) SetStrokeDelay(d time.Duration) { s.strokeDelay = d }

// Step runs one tick: poll the source, classify the transition against the
// previous sample, act on it, and retain the sample for the next tick. It
// returns the classified event, which callers may ignore.
func (s *Sketch) Step() Event {
	cur := s.source.Poll()
	if cur.Contact && !cur.Valid {
		s.debugf("stale sample: contact with no position, treating as no contact")
		cur = Sample{}
	}

	ev := Transition(s.prev, cur)
	switch ev.Kind {
	case EventPressed:
		s.debugf("pressed at (%d, %d)", ev.To.X, ev.To.Y)
		s.canvas.Plot(ev.To.X, ev.To.Y)
		s.source.Poke()
	case EventMoved:
		s.debugf("moved (%d, %d) -> (%d, %d)", ev.From.X, ev.From.Y, ev.To.X, ev.To.Y)
		s.segment(ev.From, ev.To)
	case EventReleased:
		s.debugf("released at (%d, %d)", ev.From.X, ev.From.Y)
	}

	s.prev = cur
	return ev
}

// segment rasterizes one stroke segment onto the canvas. Out-of-bounds
// pixels are skipped by the canvas and the walk continues.
func (s *Sketch) segment(from, to Point) {
	first := true
	TraceLine(from.X, from.Y, to.X, to.Y, func(x, y int) {
		if s.strokeDelay > 0 && !first {
			time.Sleep(s.strokeDelay)
		}
		first = false
		s.canvas.Plot(x, y)
	})
}

func (s *Sketch) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[easel] "+format+"\n", args...)
}
