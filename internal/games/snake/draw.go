package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette holds the colors of a frame.
type Palette struct {
	Background core.Color
	Wall       core.Color
	Snake      core.Color
	Outline    core.Color
	Food       core.Color
	Dead       core.Color // walls and snake once the game is over
}

// DefaultPalette is cyan walls, a green snake with black outlines and red food.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorBlack,
		Wall:       core.ColorCyan,
		Snake:      core.ColorGreen,
		Outline:    core.ColorBlack,
		Food:       core.ColorRed,
		Dead:       core.ColorRed,
	}
}

// Title is the window title for a score.
func Title(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// DrawFrame issues the draw commands for one frame: food, then snake, then
// walls, then the title. It does not present.
func DrawFrame(dst core.Surface, s *State, p Palette) {
	dst.Clear(p.Background)

	if s.Status != StatusWon {
		dst.FillRect(s.Bounds.CellRect(s.Food), p.Food)
	}

	body, walls := p.Snake, p.Wall
	if s.Status == StatusGameOver {
		body, walls = p.Dead, p.Dead
	}

	for _, c := range s.Body.Cells() {
		r := s.Bounds.CellRect(c)
		dst.FillRect(r, body)
		dst.StrokeRect(r, p.Outline)
	}

	for _, w := range s.Bounds.Walls() {
		dst.FillRect(w, walls)
	}

	dst.SetTitle(Title(s.Score))
}
