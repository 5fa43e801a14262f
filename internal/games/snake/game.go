package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game adapts State to the platform: it owns the RNG, pause and restart,
// and maps input frames to steering.
type Game struct {
	opts   Options
	rng    *rand.Rand
	state  *State
	paused bool
}

// New creates a game with the given options. Call Reset before Step.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Field returns the playfield and cell size in pixels.
func (g *Game) Field() (width, height, cellW, cellH int) {
	b := g.opts.Bounds
	return b.Width, b.Height, b.CellW, b.CellH
}

// Delay returns the pause before the next tick at the current score.
func (g *Game) Delay() time.Duration {
	return TickDelay(g.state.Score)
}

// Reset initializes or restarts the game. On error the game is unchanged.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	rng := rand.New(rand.NewSource(cfg.Seed))
	state, err := NewState(g.opts, rng)
	if err != nil {
		return err
	}
	g.rng, g.state = rng, state
	g.paused = false
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && !g.state.Running() {
		err := g.Reset(core.RuntimeConfig{Seed: g.rng.Int63()})
		out := g.result(TickResult{})
		if err != nil {
			out.Err = fmt.Errorf("restart: %w", err)
		}
		return out
	}

	if input.Has(core.ActionPause) && g.state.Running() {
		g.paused = !g.paused
	}

	if g.paused || !g.state.Running() {
		return g.result(TickResult{})
	}

	var dirs []Direction
	for _, a := range input.Directions() {
		if d, ok := DirectionFromAction(a); ok {
			dirs = append(dirs, d)
		}
	}

	return g.result(g.state.Tick(dirs...))
}

func (g *Game) result(res TickResult) core.StepResult {
	out := core.StepResult{
		State: g.State(),
		Delay: g.Delay(),
		Ate:   res.Ate,
		Ended: res.Ended,
	}
	if res.Ended {
		switch {
		case res.Collision != CollisionNone:
			out.Cause = res.Collision.String()
		case g.state.Status == StatusWon:
			out.Cause = "grid_full"
		}
	}
	return out
}

// Render draws the current frame and presents it.
func (g *Game) Render(dst core.Surface) error {
	DrawFrame(dst, g.state, g.opts.Palette)
	return dst.Present()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Status == StatusGameOver,
		Won:      g.state.Status == StatusWon,
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.state
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", s.Ticks, s.Score, s.Status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", s.Body.Len(), s.Dir)
	head := s.Body.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, s.Food.X, s.Food.Y)
	fmt.Fprintf(&b, "Paused: %v\n", g.paused)
	return b.String()
}
