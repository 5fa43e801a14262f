package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", d, got, want)
		}
	}
}

func TestVectorIsOneCell(t *testing.T) {
	b := DefaultBounds()
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		v := d.Vector(b)
		if (v.DX == 0) == (v.DY == 0) {
			t.Errorf("%s vector %+v should move on exactly one axis", d, v)
		}
		if abs(v.DX)+abs(v.DY) != 20 {
			t.Errorf("%s vector %+v should be one cell long", d, v)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"U", DirUp, false},
		{" down ", DirDown, false},
		{"l", DirLeft, false},
		{"Right", DirRight, false},
		{"north", DirRight, true},
		{"", DirRight, true},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDirectionFromAction(t *testing.T) {
	if d, ok := DirectionFromAction(core.ActionUp); !ok || d != DirUp {
		t.Errorf("ActionUp mapped to %s, %v", d, ok)
	}
	if _, ok := DirectionFromAction(core.ActionPause); ok {
		t.Error("ActionPause should not map to a direction")
	}
}
