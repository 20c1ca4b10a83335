package screen

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected input across ticks, for demos and automated
// runs. Attach it to a Host with SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptActions = map[string]bool{
	"click": true, "dblclick": true, "contextmenu": true, "drag": true, "wheel": true, "wait": true,
}

// LoadScript parses a JSON input script:
//
//	{"steps": [{"action": "drag", "fromX": 140, "fromY": 110, "toX": 300, "toY": 110, "frames": 10}]}
//
// Actions are click, dblclick, contextmenu, drag, wheel and wait.
func LoadScript(jsonData []byte) (*Script, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: s.Steps}, nil
}

// SetScript attaches a script to the host. Its step method runs at the
// start of each Update.
func (h *Host) SetScript(s *Script) {
	h.script = s
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one tick.
func (s *Script) step(h *Host) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if h.Pending() > 0 {
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
		h.InjectClick(st.X, st.Y)
	case "dblclick":
		h.InjectDblClick(st.X, st.Y)
	case "contextmenu":
		h.InjectContextMenu(st.X, st.Y)
	case "wheel":
		h.InjectWheel(st.X, st.Y, st.Delta)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && h.Pending() == 0 {
		s.done = true
	}
}
