package render

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestScreenSurfaceSize(t *testing.T) {
	s := NewScreenSurface(core.NewScreen(80, 24), 680, 400, 20, 20)

	cols, rows := s.Size()
	if cols != 68 || rows != 20 {
		t.Errorf("Size() = %dx%d, want 68x20", cols, rows)
	}
}

func TestScreenSurfaceFillRect(t *testing.T) {
	scr := core.NewScreen(80, 24)
	s := NewScreenSurface(scr, 680, 400, 20, 20)
	s.SetOrigin(2, 1)

	s.FillRect(core.NewRect(200, 200, 20, 20), core.ColorGreen)

	// Cell (200, 200) is grid column 10, row 10: screen columns 20-21 plus origin.
	for _, x := range []int{22, 23} {
		if got := scr.GetCell(x, 11).BG; got != core.ColorGreen {
			t.Errorf("cell (%d, 11) BG = %s, want green", x, got.Hex())
		}
	}
	if scr.GetCell(21, 11).BG == core.ColorGreen || scr.GetCell(24, 11).BG == core.ColorGreen {
		t.Error("fill leaked outside the cell")
	}
}

func TestScreenSurfaceClipsToField(t *testing.T) {
	scr := core.NewScreen(80, 24)
	s := NewScreenSurface(scr, 680, 400, 20, 20)

	s.FillRect(core.NewRect(-40, 380, 800, 100), core.ColorRed)

	if scr.GetCell(68, 19).BG == core.ColorRed {
		t.Error("fill should be clipped at the right edge of the field")
	}
	if scr.GetCell(0, 20).BG == core.ColorRed {
		t.Error("fill should be clipped at the bottom edge of the field")
	}
	if scr.GetCell(67, 19).BG != core.ColorRed {
		t.Error("last field cell should be filled")
	}
}

func TestScreenSurfaceClear(t *testing.T) {
	scr := core.NewScreen(80, 24)
	s := NewScreenSurface(scr, 680, 400, 20, 20)

	s.Clear(core.ColorBlack)
	if scr.GetCell(0, 0).BG != core.ColorBlack || scr.GetCell(67, 19).BG != core.ColorBlack {
		t.Error("Clear should paint the whole field")
	}
	if scr.GetCell(70, 22).BG == core.ColorBlack {
		t.Error("Clear should not paint outside the field")
	}
}

func TestScreenSurfaceTitle(t *testing.T) {
	s := NewScreenSurface(core.NewScreen(10, 10), 680, 400, 20, 20)
	s.SetTitle("Score: 7")
	if s.Title() != "Score: 7" {
		t.Errorf("Title() = %q", s.Title())
	}
	if err := s.Present(); err != nil {
		t.Errorf("Present() = %v", err)
	}
}
