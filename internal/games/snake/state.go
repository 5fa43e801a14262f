package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// Status is the tick driver's state.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// ErrInvalidSpawn is returned when the starting body does not fit the field.
var ErrInvalidSpawn = errors.New("snake: starting body does not fit the playfield")

// Options fixes the playfield and the starting snake.
type Options struct {
	Bounds    Bounds
	Start     Cell
	Length    int
	Direction Direction
	Palette   Palette
}

// DefaultOptions is the classic setup: a 5-segment snake at (200, 200)
// heading right.
func DefaultOptions() Options {
	return Options{
		Bounds:    DefaultBounds(),
		Start:     Cell{X: 200, Y: 200},
		Length:    5,
		Direction: DirRight,
		Palette:   DefaultPalette(),
	}
}

// State is the whole simulation. It is advanced only through Steer and Tick
// and never touches a rendering surface.
type State struct {
	Bounds Bounds
	Body   *Body
	Dir    Direction
	Food   Cell
	Score  int
	Status Status
	Ticks  uint64

	steered bool // a direction change was accepted this tick
	rng     *rand.Rand
}

// TickResult reports what one tick did.
type TickResult struct {
	Moved     bool
	Ate       bool
	Ended     bool
	Collision Collision
	Head      Cell
}

// NewState spawns the snake and the first food.
func NewState(opts Options, rng *rand.Rand) (*State, error) {
	b := opts.Bounds
	body := NewBody(opts.Start, opts.Length, opts.Direction.Vector(b))
	for _, c := range body.Cells() {
		if !b.Inside(c) || !b.Aligned(c) {
			return nil, fmt.Errorf("%w: segment (%d, %d)", ErrInvalidSpawn, c.X, c.Y)
		}
	}

	s := &State{
		Bounds: b,
		Body:   body,
		Dir:    opts.Direction,
		Status: StatusRunning,
		rng:    rng,
	}
	s.placeFood()
	return s, nil
}

// Running reports whether the game still accepts moves.
func (s *State) Running() bool {
	return s.Status == StatusRunning
}

// Steer requests a new direction. It is refused when the game is not running,
// when a change was already accepted this tick, or when d reverses the
// current direction. Asking for the current direction is a no-op and does
// not use up the tick's change.
func (s *State) Steer(d Direction) bool {
	if !s.Running() || s.steered {
		return false
	}
	if d == s.Dir || d == s.Dir.Opposite() {
		return false
	}
	s.Dir = d
	s.steered = true
	return true
}

// Tick advances the game one step. Buffered directions are offered to Steer
// in order; the first accepted one wins.
func (s *State) Tick(dirs ...Direction) TickResult {
	if !s.Running() {
		return TickResult{Head: s.Body.Head()}
	}

	for _, d := range dirs {
		if s.Steer(d) {
			break
		}
	}

	s.Ticks++
	v := s.Dir.Vector(s.Bounds)
	ate := s.Body.Head().Add(v) == s.Food
	if ate {
		s.Body.Grow()
	}

	res := TickResult{Moved: true, Ate: ate}
	res.Head = s.Body.Advance(v)

	if ate {
		s.Score++
		if !s.placeFood() {
			res.Ended = true
		}
	}

	if c := CheckCollision(s.Body, s.Bounds); c != CollisionNone {
		s.Status = StatusGameOver
		res.Collision = c
		res.Ended = true
	}

	s.steered = false
	return res
}

// placeFood respawns the food; a full board ends the game as a win.
func (s *State) placeFood() bool {
	food, err := SpawnFood(s.rng, s.Body, s.Bounds)
	if err != nil {
		s.Status = StatusWon
		return false
	}
	s.Food = food
	return true
}
