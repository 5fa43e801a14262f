package main

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newReplayGame(t *testing.T) *snake.Game {
	t.Helper()
	g := snake.New(snake.DefaultOptions())
	if err := g.Reset(core.RuntimeConfig{Seed: 7}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestReplayScript(t *testing.T) {
	g := newReplayGame(t)

	if err := replay(g, 0, "D.L"); err != nil {
		t.Fatalf("replay() failed: %v", err)
	}
	snap := g.Snapshot()
	if snap.Tick != 3 {
		t.Errorf("Tick = %d, want 3", snap.Tick)
	}
	// Down, down, then left from (200, 200).
	if snap.Head() != (snake.Cell{X: 180, Y: 240}) {
		t.Errorf("head = %v", snap.Head())
	}
}

func TestReplayExtraTicks(t *testing.T) {
	g := newReplayGame(t)

	if err := replay(g, 5, "u"); err != nil {
		t.Fatalf("replay() failed: %v", err)
	}
	if snap := g.Snapshot(); snap.Tick != 5 || snap.Head() != (snake.Cell{X: 200, Y: 100}) {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestReplayStopsAtGameOver(t *testing.T) {
	g := newReplayGame(t)

	if err := replay(g, 100, "U"); err != nil {
		t.Fatalf("replay() failed: %v", err)
	}
	snap := g.Snapshot()
	if snap.Status != snake.StatusGameOver {
		t.Fatalf("Status = %s", snap.Status)
	}
	if snap.Tick != 10 {
		t.Errorf("Tick = %d, want 10", snap.Tick)
	}
}

func TestReplayBadMove(t *testing.T) {
	if err := replay(newReplayGame(t), 0, "RX"); err == nil {
		t.Error("unknown move should fail")
	}
}
