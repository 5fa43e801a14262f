// Package config provides YAML-based configuration loading for the playfield,
// the starting snake and the palette.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Validation errors.
var (
	ErrInvalidPlayfield = errors.New("config: invalid playfield")
	ErrInvalidSnake     = errors.New("config: invalid snake")
	ErrInvalidColor     = errors.New("config: invalid color")
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Snake     StartConfig     `yaml:"snake"`
	Palette   PaletteConfig   `yaml:"palette"`
}

// PlayfieldConfig defines the field geometry in pixels.
type PlayfieldConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	WallThickness int `yaml:"wall_thickness"`
	CellWidth     int `yaml:"cell_width"`
	CellHeight    int `yaml:"cell_height"`
}

// StartConfig defines the snake at the start of a run.
type StartConfig struct {
	StartX    int    `yaml:"start_x"`
	StartY    int    `yaml:"start_y"`
	Length    int    `yaml:"length"`
	Direction string `yaml:"direction"` // up, down, left, right
}

// PaletteConfig holds colors as hex strings ("#0ad1cd").
type PaletteConfig struct {
	Background string `yaml:"background"`
	Wall       string `yaml:"wall"`
	Snake      string `yaml:"snake"`
	Outline    string `yaml:"outline"`
	Food       string `yaml:"food"`
	Dead       string `yaml:"dead"`
}

// Bounds converts the playfield section.
func (p PlayfieldConfig) Bounds() snake.Bounds {
	return snake.Bounds{
		Width:  p.Width,
		Height: p.Height,
		Wall:   p.WallThickness,
		CellW:  p.CellWidth,
		CellH:  p.CellHeight,
	}
}

// Validate checks that the configuration describes a playable field.
func (c SnakeConfig) Validate() error {
	p := c.Playfield
	if p.CellWidth <= 0 || p.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidPlayfield, p.CellWidth, p.CellHeight)
	}
	if p.WallThickness < 0 || p.WallThickness%p.CellWidth != 0 || p.WallThickness%p.CellHeight != 0 {
		return fmt.Errorf("%w: wall thickness %d is not a whole number of cells", ErrInvalidPlayfield, p.WallThickness)
	}
	if p.Width%p.CellWidth != 0 || p.Height%p.CellHeight != 0 {
		return fmt.Errorf("%w: size %dx%d is not a whole number of cells", ErrInvalidPlayfield, p.Width, p.Height)
	}
	b := p.Bounds()
	if b.Columns() <= 0 || b.Rows() <= 0 {
		return fmt.Errorf("%w: no room inside the walls", ErrInvalidPlayfield)
	}

	s := c.Snake
	if s.Length < 1 {
		return fmt.Errorf("%w: length %d", ErrInvalidSnake, s.Length)
	}
	if s.Length >= b.Capacity() {
		return fmt.Errorf("%w: length %d leaves no room for food", ErrInvalidSnake, s.Length)
	}
	dir, err := snake.ParseDirection(s.Direction)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnake, err)
	}
	body := snake.NewBody(snake.Cell{X: s.StartX, Y: s.StartY}, s.Length, dir.Vector(b))
	for _, seg := range body.Cells() {
		if !b.Inside(seg) || !b.Aligned(seg) {
			return fmt.Errorf("%w: segment (%d, %d) is outside the playfield", ErrInvalidSnake, seg.X, seg.Y)
		}
	}

	if _, err := c.Palette.parse(); err != nil {
		return err
	}
	return nil
}

func (p PaletteConfig) parse() (snake.Palette, error) {
	var out snake.Palette
	fields := []struct {
		name string
		hex  string
		dst  *core.Color
	}{
		{"background", p.Background, &out.Background},
		{"wall", p.Wall, &out.Wall},
		{"snake", p.Snake, &out.Snake},
		{"outline", p.Outline, &out.Outline},
		{"food", p.Food, &out.Food},
		{"dead", p.Dead, &out.Dead},
	}
	for _, f := range fields {
		c, err := core.ParseHex(f.hex)
		if err != nil {
			return out, fmt.Errorf("%w: palette.%s: %v", ErrInvalidColor, f.name, err)
		}
		*f.dst = c
	}
	return out, nil
}

// ToOptions validates the configuration and converts it into game options.
func (c SnakeConfig) ToOptions() (snake.Options, error) {
	if err := c.Validate(); err != nil {
		return snake.Options{}, err
	}
	dir, _ := snake.ParseDirection(c.Snake.Direction)
	palette, _ := c.Palette.parse()
	return snake.Options{
		Bounds:    c.Playfield.Bounds(),
		Start:     snake.Cell{X: c.Snake.StartX, Y: c.Snake.StartY},
		Length:    c.Snake.Length,
		Direction: dir,
		Palette:   palette,
	}, nil
}
