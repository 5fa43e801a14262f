// Package render implements core.Surface for the places a frame ends up:
// a terminal character buffer and a PNG image.
package render

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ColumnsPerCell is how many terminal columns one grid cell spans. Terminal
// glyphs are roughly twice as tall as wide, so two columns keep cells square.
const ColumnsPerCell = 2

// ScreenSurface draws pixel-space rectangles onto a core.Screen, one grid
// cell becoming ColumnsPerCell columns by one row.
type ScreenSurface struct {
	screen *core.Screen
	cellW  int
	cellH  int
	origin struct{ X, Y int }
	field  core.Rect // pixel size of the playfield
	title  string
}

// NewScreenSurface maps a fieldW x fieldH pixel playfield made of cellW x cellH
// cells onto screen.
func NewScreenSurface(screen *core.Screen, fieldW, fieldH, cellW, cellH int) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		cellW:  max(cellW, 1),
		cellH:  max(cellH, 1),
		field:  core.NewRect(0, 0, fieldW, fieldH),
	}
}

// SetOrigin moves the playfield's top-left corner to column x, row y.
func (s *ScreenSurface) SetOrigin(x, y int) {
	s.origin.X, s.origin.Y = x, y
}

// Size returns the terminal size the playfield needs.
func (s *ScreenSurface) Size() (cols, rows int) {
	r := s.toCells(s.field)
	return r.W, r.H
}

// Bounds returns the playfield area on the screen.
func (s *ScreenSurface) Bounds() core.Rect {
	r := s.toCells(s.field)
	r.X += s.origin.X
	r.Y += s.origin.Y
	return r
}

// toCells converts a pixel rectangle into the character cells it touches.
func (s *ScreenSurface) toCells(r core.Rect) core.Rect {
	x0 := core.FloorDiv(r.X*ColumnsPerCell, s.cellW)
	y0 := core.FloorDiv(r.Y, s.cellH)
	x1 := ceilDiv(r.Right()*ColumnsPerCell, s.cellW)
	y1 := ceilDiv(r.Bottom(), s.cellH)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func ceilDiv(a, b int) int {
	return -core.FloorDiv(-a, b)
}

// Clear paints the playfield area.
func (s *ScreenSurface) Clear(c core.Color) {
	s.screen.FillRect(s.Bounds(), core.Cell{Rune: ' ', BG: c})
}

// FillRect paints the cells a pixel rectangle covers, clipped to the field.
func (s *ScreenSurface) FillRect(r core.Rect, c core.Color) {
	cells := s.toCells(r)
	cells.X += s.origin.X
	cells.Y += s.origin.Y
	s.screen.FillRect(clip(cells, s.Bounds()), core.Cell{Rune: ' ', BG: c})
}

// StrokeRect is a no-op: a one-pixel outline is finer than a character cell.
func (s *ScreenSurface) StrokeRect(core.Rect, core.Color) {}

// SetTitle stores the title; the platform decides where to show it.
func (s *ScreenSurface) SetTitle(title string) {
	s.title = title
}

// Title returns the last title set.
func (s *ScreenSurface) Title() string {
	return s.title
}

// Present is a no-op; the screen is flushed by the platform.
func (s *ScreenSurface) Present() error {
	return nil
}

func clip(r, to core.Rect) core.Rect {
	x0 := core.Clamp(r.X, to.X, to.Right())
	y0 := core.Clamp(r.Y, to.Y, to.Bottom())
	x1 := core.Clamp(r.Right(), to.X, to.Right())
	y1 := core.Clamp(r.Bottom(), to.Y, to.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
