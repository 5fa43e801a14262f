package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic configuration: a 680x400 field with
// 20px walls and cells, five segments at (200, 200) heading right.
func DefaultSnakeConfig() SnakeConfig {
	opts := snake.DefaultOptions()
	b, p := opts.Bounds, opts.Palette
	return SnakeConfig{
		Playfield: PlayfieldConfig{
			Width:         b.Width,
			Height:        b.Height,
			WallThickness: b.Wall,
			CellWidth:     b.CellW,
			CellHeight:    b.CellH,
		},
		Snake: StartConfig{
			StartX:    opts.Start.X,
			StartY:    opts.Start.Y,
			Length:    opts.Length,
			Direction: opts.Direction.String(),
		},
		Palette: PaletteConfig{
			Background: p.Background.Hex(),
			Wall:       p.Wall.Hex(),
			Snake:      p.Snake.Hex(),
			Outline:    p.Outline.Hex(),
			Food:       p.Food.Hex(),
			Dead:       p.Dead.Hex(),
		},
	}
}
