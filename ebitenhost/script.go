package ebitenhost

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure of an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

var errNoSteps = errors.New("no steps")

// Script sequences injected pointer events and screenshots across frames so
// overlay interactions can be replayed without a person at the mouse.
//
//	{"steps": [
//	  {"action": "drag", "fromX": 1100, "fromY": 580, "toX": 900, "toY": 400, "frames": 10},
//	  {"action": "wait", "frames": 5},
//	  {"action": "click", "x": 1000, "y": 500},
//	  {"action": "secondary", "x": 1000, "y": 500},
//	  {"action": "screenshot", "label": "after-reset"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: %w", errNoSteps)
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "press", "move", "release", "secondary", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has been executed and its events
// delivered.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame. shot receives screenshot labels and
// may be nil.
func (s *Script) step(p *Pointer, shot func(label string)) {
	if s.done {
		return
	}
	// Let pending injections drain before advancing.
	if p.Pending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "click":
		p.InjectClick(st.X, st.Y)
	case "press":
		p.InjectPress(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "secondary":
		p.InjectSecondary(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if shot != nil {
			shot(st.Label)
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && p.Pending() == 0 {
		s.done = true
	}
}
