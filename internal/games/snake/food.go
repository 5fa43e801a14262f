package snake

import (
	"errors"
	"math/rand"
)

// maxFoodDraws bounds the random draws before falling back to enumerating
// the free cells.
const maxFoodDraws = 64

// ErrGridFull is returned when the snake covers every playable cell.
var ErrGridFull = errors.New("snake: no free cell left for food")

// SpawnFood picks a cell for the next food that is inside the walls and not
// on the body.
func SpawnFood(rng *rand.Rand, body *Body, b Bounds) (Cell, error) {
	if body.Len() >= b.Capacity() {
		return Cell{}, ErrGridFull
	}

	for range maxFoodDraws {
		c := drawFoodCell(rng, b)
		if !body.Occupies(c) {
			return c, nil
		}
	}

	free := FreeCells(body, b)
	if len(free) == 0 {
		return Cell{}, ErrGridFull
	}
	return free[rng.Intn(len(free))], nil
}

// drawFoodCell draws a cell-aligned coordinate in [0, dim-cell-wall] on each
// axis and snaps anything under the wall thickness onto the first row or
// column. The snap favors the inner wall edge; the far side needs no clamp
// because the draw never exceeds it.
func drawFoodCell(rng *rand.Rand, b Bounds) Cell {
	x := rng.Intn((b.Width-b.CellW-b.Wall)/b.CellW+1) * b.CellW
	y := rng.Intn((b.Height-b.CellH-b.Wall)/b.CellH+1) * b.CellH
	if x < b.Wall {
		x = b.Wall
	}
	if y < b.Wall {
		y = b.Wall
	}
	return Cell{X: x, Y: y}
}

// FreeCells lists the playable cells the body does not cover.
func FreeCells(body *Body, b Bounds) []Cell {
	occupied := make(map[Cell]struct{}, body.Len())
	for _, c := range body.Cells() {
		occupied[c] = struct{}{}
	}

	free := make([]Cell, 0, b.Capacity()-len(occupied))
	for _, c := range b.Cells() {
		if _, ok := occupied[c]; !ok {
			free = append(free, c)
		}
	}
	return free
}
