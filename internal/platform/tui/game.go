package tui

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is what the platform drives: a fixed-field game advanced one Step per
// tick and drawn on a core.Surface.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig) error
	Step(input core.InputFrame) core.StepResult
	Render(dst core.Surface) error
	State() core.GameState

	// Field returns the playfield size and the cell size in pixels.
	Field() (width, height, cellW, cellH int)

	// Delay is the pause before the next Step.
	Delay() time.Duration
}
