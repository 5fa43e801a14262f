package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// bodyOf builds a body from explicit segments, head first.
func bodyOf(cells ...Cell) *Body {
	b := &Body{}
	for _, c := range cells {
		b.segs.PushBack(c)
	}
	return b
}

// newTestState builds the classic state with the food parked far from the
// snake's path so scripted moves are not disturbed.
func newTestState(t *testing.T, seed int64) *State {
	t.Helper()
	s, err := NewState(DefaultOptions(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	s.Food = Cell{X: 640, Y: 360}
	return s
}

func tailOf(b *Body) Cell {
	return b.At(b.Len() - 1)
}

func xs(cells []Cell) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = c.X
	}
	return out
}

type drawCall struct {
	op    string
	rect  core.Rect
	color core.Color
}

// recorder is a Surface that remembers every command.
type recorder struct {
	calls    []drawCall
	title    string
	presents int
}

func (r *recorder) Clear(c core.Color) {
	r.calls = append(r.calls, drawCall{op: "clear", color: c})
}

func (r *recorder) FillRect(rect core.Rect, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "fill", rect: rect, color: c})
}

func (r *recorder) StrokeRect(rect core.Rect, c core.Color) {
	r.calls = append(r.calls, drawCall{op: "stroke", rect: rect, color: c})
}

func (r *recorder) SetTitle(title string) {
	r.title = title
}

func (r *recorder) Present() error {
	r.presents++
	return nil
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
