// Package snake implements the arcade Snake simulation: a grid of
// wall-bounded cells, the body, steering, food and the tick driver.
package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cell is a grid-aligned pixel position: the top-left corner of one playfield
// cell. Both coordinates are multiples of the cell size.
type Cell struct {
	X, Y int
}

// Add offsets the cell by a velocity vector.
func (c Cell) Add(v Vector) Cell {
	return Cell{X: c.X + v.DX, Y: c.Y + v.DY}
}

// Bounds describes the playfield: outer size, wall thickness and cell size,
// all in pixels. The playable interior is [Wall, Width-Wall) × [Wall, Height-Wall).
type Bounds struct {
	Width  int
	Height int
	Wall   int
	CellW  int
	CellH  int
}

// DefaultBounds is the classic 680×400 field with 20px walls and 20px cells.
func DefaultBounds() Bounds {
	return Bounds{
		Width:  680,
		Height: 400,
		Wall:   20,
		CellW:  20,
		CellH:  20,
	}
}

// Inside reports whether the cell lies in the playable interior.
func (b Bounds) Inside(c Cell) bool {
	return c.X >= b.Wall && c.X < b.Width-b.Wall &&
		c.Y >= b.Wall && c.Y < b.Height-b.Wall
}

// Aligned reports whether the cell sits on the cell grid.
func (b Bounds) Aligned(c Cell) bool {
	return c.X%b.CellW == 0 && c.Y%b.CellH == 0
}

// Columns is the number of playable cells per row.
func (b Bounds) Columns() int {
	return (b.Width - 2*b.Wall) / b.CellW
}

// Rows is the number of playable cells per column.
func (b Bounds) Rows() int {
	return (b.Height - 2*b.Wall) / b.CellH
}

// Capacity is the number of playable cells, the longest the snake can get.
func (b Bounds) Capacity() int {
	return b.Columns() * b.Rows()
}

// CellAt converts zero-based (column, row) back to a pixel cell.
func (b Bounds) CellAt(col, row int) Cell {
	return Cell{X: b.Wall + col*b.CellW, Y: b.Wall + row*b.CellH}
}

// Cells enumerates every playable cell, row by row.
func (b Bounds) Cells() []Cell {
	cells := make([]Cell, 0, b.Capacity())
	for row := range b.Rows() {
		for col := range b.Columns() {
			cells = append(cells, b.CellAt(col, row))
		}
	}
	return cells
}

// CellRect is the pixel rectangle covered by a cell.
func (b Bounds) CellRect(c Cell) core.Rect {
	return core.NewRect(c.X, c.Y, b.CellW, b.CellH)
}

// Walls returns the left, right, top and bottom wall strips.
func (b Bounds) Walls() []core.Rect {
	return []core.Rect{
		core.NewRect(0, 0, b.Wall, b.Height),
		core.NewRect(b.Width-b.Wall, 0, b.Wall, b.Height),
		core.NewRect(0, 0, b.Width, b.Wall),
		core.NewRect(0, b.Height-b.Wall, b.Width, b.Wall),
	}
}
