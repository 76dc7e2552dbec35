package heartwall

import (
	"fmt"
	"testing"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "ticks": 3},
			{"action": "screenshot", "label": "after-click"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Ticks != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	_, err := LoadScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	_, err := LoadScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestScriptStep_Click(t *testing.T) {
	g := testGame(t, testWallConfig(1, 0))

	runner, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// First step call: click queues press+release (2 events).
	runner.step(g)
	if len(g.input.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(g.input.injectQueue))
	}
	// Runner should not be done yet, injections still pending.
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	// Drain injections.
	g.input.Update()
	g.input.Update()

	// Now step again, which finalizes.
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestScriptStep_Wait(t *testing.T) {
	g := testGame(t, testWallConfig(1, 0))

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "ticks": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Tick 1: execute wait (waitCount becomes 2).
	runner.step(g)
	if runner.Done() {
		t.Error("should not be done during wait")
	}

	// Tick 2: waitCount 2 to 1.
	runner.step(g)
	if runner.Done() {
		t.Error("should not be done during wait countdown")
	}

	// Tick 3: waitCount 1 to 0.
	runner.step(g)
	if runner.Done() {
		t.Error("should not be done, screenshot step not yet executed")
	}

	// Tick 4: execute screenshot step, runner finishes.
	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}

	// Verify the screenshot was queued.
	if len(g.shotQueue) != 1 || g.shotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", g.shotQueue)
	}
}

func TestScriptStep_Drag(t *testing.T) {
	g := testGame(t, testWallConfig(1, 0))

	runner, err := LoadScript([]byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "ticks": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(g)
	if len(g.input.injectQueue) != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", len(g.input.injectQueue))
	}
}

func TestScriptRunnerDone(t *testing.T) {
	g := testGame(t, testWallConfig(1, 0))

	runner, err := LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "only"}]}`))
	if err != nil {
		t.Fatal(err)
	}

	if runner.Done() {
		t.Error("runner should not be done before any steps")
	}

	runner.step(g)
	if !runner.Done() {
		t.Error("runner should be done after single screenshot step")
	}
}

func TestScriptWaitsForInjectQueue(t *testing.T) {
	g := testGame(t, testWallConfig(1, 0))

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Step 1: click queues 2 events.
	runner.step(g)
	if len(g.input.injectQueue) != 2 {
		t.Fatalf("expected 2 events, got %d", len(g.input.injectQueue))
	}

	// Step again: must NOT advance because the inject queue is not drained.
	runner.step(g)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	// Drain the inject queue manually.
	g.input.injectQueue = g.input.injectQueue[:0]

	// Now the screenshot step executes.
	runner.step(g)
	if len(g.shotQueue) != 1 || g.shotQueue[0] != "after" {
		t.Errorf("expected screenshot 'after', got %v", g.shotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptDrivesWall(t *testing.T) {
	// A scripted double click on a freshly spawned note should spiral it
	// through the full game loop, no real mouse involved.
	g := testGame(t, testWallConfig(1, 0))
	tick(g.clock, 8) // spawn burst
	n := g.wall.Notes()[0]
	cx := float64(n.X) + float64(n.Width)/2
	cy := float64(n.Y) + float64(n.Height)/2

	data := fmt.Sprintf(`{"steps": [
		{"action": "click", "x": %g, "y": %g},
		{"action": "click", "x": %g, "y": %g}
	]}`, cx, cy, cx, cy)
	runner, err := LoadScript([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	g.script = runner

	for i := 0; i < 6 && !runner.Done(); i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("update %d: %v", i+1, err)
		}
	}
	if n.State != NoteClosing {
		t.Errorf("state after scripted double click = %v, want NoteClosing", n.State)
	}
}
