package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector is a per-tick velocity in pixels. Exactly one component is
// ±cell size, the other is zero.
type Vector struct {
	DX, DY int
}

// Vector returns the velocity for this direction on the given grid.
func (d Direction) Vector(b Bounds) Vector {
	switch d {
	case DirUp:
		return Vector{DY: -b.CellH}
	case DirDown:
		return Vector{DY: b.CellH}
	case DirLeft:
		return Vector{DX: -b.CellW}
	default:
		return Vector{DX: b.CellW}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts "up", "down", "left", "right" or their first letter.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("unknown direction %q", s)
}

// DirectionFromAction maps a steering action to a direction.
func DirectionFromAction(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirRight, false
}
