package snake

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Segments []Cell
	Dir      Direction
	Food     Cell
	Delay    time.Duration
	Status   Status
	Paused   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Tick:     s.Ticks,
		Score:    s.Score,
		SnakeLen: s.Body.Len(),
		Segments: s.Body.Cells(),
		Dir:      s.Dir,
		Food:     s.Food,
		Delay:    TickDelay(s.Score),
		Status:   s.Status,
		Paused:   g.paused,
	}
}

// Head returns the head segment.
func (s Snapshot) Head() Cell {
	if len(s.Segments) == 0 {
		return Cell{}
	}
	return s.Segments[0]
}
