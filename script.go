package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a stroke script.
type scriptStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Ticks  int    `json:"ticks,omitempty"`
}

// strokeScript is the top-level JSON structure for a stroke script.
type strokeScript struct {
	Steps []scriptStep `json:"steps"`
}

const (
	actionPress   = "press"
	actionMove    = "move"
	actionRelease = "release"
	actionWait    = "wait"
	actionStale   = "stale"
)

// ScriptSource is a Source that replays a scripted sequence of pointer
// actions, one step per Poll. It makes strokes fully deterministic with no
// hardware and no sleeping, for tests and demos.
//
// Build a script programmatically with Press, Move, Release, Wait, and
// Drag, or load one from JSON with LoadScript:
//
//	{"steps": [
//	  {"action": "press", "x": 10, "y": 10},
//	  {"action": "move", "x": 15, "y": 10},
//	  {"action": "release"}
//	]}
//
// After the last step the source keeps reporting its final state; Done
// tells the driver the script is exhausted.
type ScriptSource struct {
	steps  []scriptStep
	cursor int
	wait   int
	done   bool

	down bool
	x, y int

	pokes int
}

// NewScriptSource returns an empty script. Polling it before any steps are
// added reports no contact.
func NewScriptSource() *ScriptSource {
	return &ScriptSource{}
}

// LoadScript parses a JSON stroke script. It rejects empty scripts and
// unknown actions.
func LoadScript(data []byte) (*ScriptSource, error) {
	var script strokeScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse stroke script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse stroke script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case actionPress, actionMove, actionRelease, actionWait, actionStale:
		default:
			return nil, fmt.Errorf("parse stroke script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptSource{steps: script.Steps}, nil
}

// Press appends a contact-begin step at (x, y).
func (s *ScriptSource) Press(x, y int) {
	s.steps = append(s.steps, scriptStep{Action: actionPress, X: x, Y: y})
}

// Move appends a position-change step to (x, y), contact unchanged.
func (s *ScriptSource) Move(x, y int) {
	s.steps = append(s.steps, scriptStep{Action: actionMove, X: x, Y: y})
}

// Release appends a contact-end step.
func (s *ScriptSource) Release() {
	s.steps = append(s.steps, scriptStep{Action: actionRelease})
}

// Wait appends a step that holds the current state for ticks polls.
func (s *ScriptSource) Wait(ticks int) {
	if ticks < 1 {
		ticks = 1
	}
	s.steps = append(s.steps, scriptStep{Action: actionWait, Ticks: ticks})
}

// Stale appends a step reporting contact with no valid position for one
// poll, simulating a device contract violation.
func (s *ScriptSource) Stale() {
	s.steps = append(s.steps, scriptStep{Action: actionStale})
}

// Drag appends a full stroke: press at (fromX, fromY), ticks-2 linearly
// interpolated moves of which the last lands exactly on (toX, toY), and a
// release. Minimum ticks is 3 (press, move, release); a release carries no
// position, so the final move is what inks the destination.
func (s *ScriptSource) Drag(fromX, fromY, toX, toY, ticks int) {
	if ticks < 3 {
		ticks = 3
	}
	s.Press(fromX, fromY)
	steps := ticks - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/steps
		y := fromY + (toY-fromY)*i/steps
		s.Move(x, y)
	}
	s.Release()
}

// Done reports whether every step has been consumed.
func (s *ScriptSource) Done() bool { return s.done }

// Pokes returns how many times Poke has been called.
func (s *ScriptSource) Pokes() int { return s.pokes }

// Poke records the refresh hint so tests can assert on it.
func (s *ScriptSource) Poke() { s.pokes++ }

// Poll consumes the next step and returns the resulting sample. Exhausted
// scripts keep returning the final state.
func (s *ScriptSource) Poll() Sample {
	if s.wait > 0 {
		s.wait--
		return s.state()
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return s.state()
	}

	st := s.steps[s.cursor]
	s.cursor++
	switch st.Action {
	case actionPress:
		s.down = true
		s.x, s.y = st.X, st.Y
	case actionMove:
		s.x, s.y = st.X, st.Y
	case actionRelease:
		s.down = false
	case actionWait:
		if st.Ticks > 1 {
			s.wait = st.Ticks - 1
		}
	case actionStale:
		return Sample{Contact: true}
	}
	return s.state()
}

func (s *ScriptSource) state() Sample {
	if !s.down {
		return Sample{}
	}
	return Sample{Contact: true, Valid: true, Pos: Point{X: s.x, Y: s.y}}
}
