package heartwall

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a replay script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Ticks  int     `json:"ticks,omitempty"`
}

// script is the top-level JSON structure for a replay script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a sequence of injected pointer events, waits, and
// screenshots against a running wall, one step at a time. Attach one via
// RunConfig.Script for automated visual testing.
//
// Supported actions: "click" (x, y), "drag" (fromX, fromY, toX, toY, ticks),
// "wait" (ticks), and "screenshot" (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON replay script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step in the script has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from game.Update before the
// input layer runs, so injected events land on the same tick a real press
// would.
func (r *ScriptRunner) step(g *game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(g.input.injectQueue) > 0 {
		return
	}
	// Count down wait ticks.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		g.screenshot(st.Label)
	case "click":
		g.input.InjectClick(st.X, st.Y)
	case "drag":
		ticks := st.Ticks
		if ticks < 2 {
			ticks = 2
		}
		g.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, ticks)
	case "wait":
		if st.Ticks > 0 {
			r.waitCount = st.Ticks - 1 // this tick counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.input.injectQueue) == 0 {
		r.done = true
	}
}
