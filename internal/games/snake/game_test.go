package snake

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(DefaultOptions())
	if err := g.Reset(core.RuntimeConfig{Seed: seed}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

// script is a repeating input pattern that keeps the snake turning.
func script(i int) core.InputFrame {
	switch i % 12 {
	case 0:
		return core.InputOf(core.ActionDown)
	case 3:
		return core.InputOf(core.ActionRight)
	case 6:
		return core.InputOf(core.ActionUp)
	case 9:
		return core.InputOf(core.ActionRight, core.ActionLeft)
	}
	return core.NewInputFrame()
}

func TestGameDeterminism(t *testing.T) {
	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	for i := 0; i < 300; i++ {
		g1.Step(script(i))
		g2.Step(script(i))

		s1, s2 := g1.Snapshot(), g2.Snapshot()
		if !reflect.DeepEqual(s1, s2) {
			t.Fatalf("tick %d: snapshots diverge\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestGameDifferentSeedsDifferentFood(t *testing.T) {
	differs := false
	for seed := int64(1); seed < 10; seed++ {
		if newGame(t, seed).Snapshot().Food != newGame(t, seed+100).Snapshot().Food {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("food placement should depend on the seed")
	}
}

func TestGameStepReportsDelay(t *testing.T) {
	g := newGame(t, 1)
	g.state.Food = Cell{640, 360}

	res := g.Step(core.NewInputFrame())
	if res.Delay != TickDelay(0) {
		t.Errorf("Delay = %v, want %v", res.Delay, TickDelay(0))
	}

	g.state.Score = 3
	res = g.Step(core.NewInputFrame())
	if res.Delay != TickDelay(3) {
		t.Errorf("Delay = %v, want %v", res.Delay, TickDelay(3))
	}
}

func TestGamePause(t *testing.T) {
	g := newGame(t, 1)
	g.state.Food = Cell{640, 360}

	res := g.Step(core.InputOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	head := g.Snapshot().Head()

	// Directions are dropped while paused.
	g.Step(core.InputOf(core.ActionUp))
	if g.Snapshot().Head() != head || g.state.Dir != DirRight {
		t.Error("paused game should not move or steer")
	}

	res = g.Step(core.InputOf(core.ActionPause))
	if res.State.Paused {
		t.Fatal("second pause should resume")
	}
	if g.Snapshot().Head() == head {
		t.Error("resumed game should move on the same step")
	}
}

func TestGameEndAndRestart(t *testing.T) {
	g := newGame(t, 1)
	g.state.Food = Cell{640, 360}

	var last core.StepResult
	for i := 0; i < 40 && !last.Ended; i++ {
		last = g.Step(core.InputOf(core.ActionUp))
	}
	if !last.Ended || !last.State.GameOver || last.Cause != "wall" {
		t.Fatalf("last step = %+v, want a wall game over", last)
	}

	// Restart is ignored while running, honored once over.
	res := g.Step(core.InputOf(core.ActionRestart))
	if res.State.GameOver {
		t.Fatal("restart should start a new run")
	}
	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.SnakeLen != 5 || snap.Head() != (Cell{200, 200}) {
		t.Errorf("restarted snapshot = %+v", snap)
	}
}

func TestGameRestartFailureKeepsRun(t *testing.T) {
	g := newGame(t, 1)
	g.state.Food = Cell{640, 360}
	for i := 0; i < 40 && g.state.Running(); i++ {
		g.Step(core.InputOf(core.ActionUp))
	}
	before := g.Snapshot()

	// A start outside the walls cannot spawn.
	g.opts.Start = Cell{0, 0}
	res := g.Step(core.InputOf(core.ActionRestart))

	if !errors.Is(res.Err, ErrInvalidSpawn) {
		t.Fatalf("Err = %v, want ErrInvalidSpawn", res.Err)
	}
	if !res.State.GameOver {
		t.Error("failed restart should keep the finished run")
	}
	if after := g.Snapshot(); after.Tick != before.Tick || after.Head() != before.Head() {
		t.Errorf("snapshot changed: %+v -> %+v", before, after)
	}
}

func TestGameRestartIgnoredWhileRunning(t *testing.T) {
	g := newGame(t, 1)
	g.state.Food = Cell{640, 360}
	g.Step(core.NewInputFrame())

	g.Step(core.InputOf(core.ActionRestart))
	if g.Snapshot().Tick != 2 {
		t.Errorf("Tick = %d, restart should be a no-op while running", g.Snapshot().Tick)
	}
}

func TestGameGridFullCause(t *testing.T) {
	opts := DefaultOptions()
	opts.Bounds = tinyBounds()
	opts.Start = Cell{40, 20}
	opts.Length = 2
	g := New(opts)
	if err := g.Reset(core.RuntimeConfig{Seed: 1}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	s := g.state
	s.Body = bodyOf(Cell{40, 40}, Cell{20, 40}, Cell{20, 20}, Cell{40, 20}, Cell{60, 20})
	s.Dir = DirRight
	s.Food = Cell{60, 40}

	res := g.Step(core.NewInputFrame())
	if !res.Ended || !res.State.Won || res.Cause != "grid_full" {
		t.Errorf("Step() = %+v, want a grid_full win", res)
	}
}

func TestRenderCommands(t *testing.T) {
	g := newGame(t, 1)
	rec := &recorder{}

	if err := g.Render(rec); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if rec.title != "Score: 0" {
		t.Errorf("title = %q, want %q", rec.title, "Score: 0")
	}
	if rec.presents != 1 {
		t.Errorf("Present() called %d times", rec.presents)
	}
	// Food, five segments, four walls.
	if got := rec.count("fill"); got != 10 {
		t.Errorf("fills = %d, want 10", got)
	}
	if got := rec.count("stroke"); got != 5 {
		t.Errorf("strokes = %d, want 5", got)
	}
	if rec.calls[0].op != "clear" {
		t.Error("frame should start with a clear")
	}

	p := DefaultPalette()
	if rec.calls[1].color != p.Food {
		t.Errorf("first fill should be food, got %+v", rec.calls[1])
	}
	for _, c := range rec.calls[len(rec.calls)-4:] {
		if c.color != p.Wall {
			t.Errorf("wall drawn in %s, want %s", c.color.Hex(), p.Wall.Hex())
		}
	}
}

func TestRenderGameOverIsRed(t *testing.T) {
	g := newGame(t, 1)
	g.state.Food = Cell{640, 360}
	g.state.Score = 4
	for i := 0; i < 40 && !g.State().GameOver; i++ {
		g.Step(core.InputOf(core.ActionUp))
	}

	rec := &recorder{}
	if err := g.Render(rec); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if rec.title != "Score: 4" {
		t.Errorf("title = %q", rec.title)
	}

	p := DefaultPalette()
	for _, c := range rec.calls[2:] {
		if c.op == "fill" && c.color != p.Dead {
			t.Errorf("fill %+v should use the dead color", c.rect)
		}
	}
}

func TestDebugState(t *testing.T) {
	g := newGame(t, 1)
	out := g.DebugState()
	for _, want := range []string{"Tick: 0", "Score: 0", "running", "Snake len: 5", "Head: (200, 200)"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q:\n%s", want, out)
		}
	}
}
