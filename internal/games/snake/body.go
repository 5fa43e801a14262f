package snake

import "github.com/gammazero/deque"

// Body is the ordered list of segments, head first. Growth is requested with
// Grow and applied by the next Advance.
type Body struct {
	segs    deque.Deque[Cell]
	pending bool
}

// NewBody spawns a body of length cells with the head at start, the rest
// trailing opposite to v.
func NewBody(start Cell, length int, v Vector) *Body {
	b := &Body{}
	b.Spawn(start, length, v)
	return b
}

// Spawn resets the body in place.
func (b *Body) Spawn(start Cell, length int, v Vector) {
	b.segs.Clear()
	b.pending = false
	for i := range max(length, 1) {
		b.segs.PushBack(Cell{X: start.X - i*v.DX, Y: start.Y - i*v.DY})
	}
}

// Advance moves the head one step along v. Every segment takes its
// predecessor's place; the tail is dropped unless growth is pending, in which
// case the body gets one longer. Returns the new head.
func (b *Body) Advance(v Vector) Cell {
	head := b.Head().Add(v)
	b.segs.PushFront(head)
	if b.pending {
		b.pending = false
	} else {
		b.segs.PopBack()
	}
	return head
}

// Grow marks the body to keep its tail on the next Advance.
func (b *Body) Grow() {
	b.pending = true
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.segs.Len()
}

// Head returns the first segment.
func (b *Body) Head() Cell {
	return b.segs.Front()
}

// At returns segment i, 0 being the head.
func (b *Body) At(i int) Cell {
	return b.segs.At(i)
}

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []Cell {
	cells := make([]Cell, b.segs.Len())
	for i := range cells {
		cells[i] = b.segs.At(i)
	}
	return cells
}

// Occupies reports whether any segment is on c.
func (b *Body) Occupies(c Cell) bool {
	for i := range b.segs.Len() {
		if b.segs.At(i) == c {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head shares a cell with another segment.
func (b *Body) HitsSelf() bool {
	head := b.Head()
	for i := 1; i < b.segs.Len(); i++ {
		if b.segs.At(i) == head {
			return true
		}
	}
	return false
}
