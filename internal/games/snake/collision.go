package snake

// Collision names what the head ran into.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionSelf
	CollisionWall
)

func (c Collision) String() string {
	switch c {
	case CollisionSelf:
		return "self"
	case CollisionWall:
		return "wall"
	default:
		return "none"
	}
}

// CheckCollision tests the head against, in order: the rest of the body, the
// left and top walls, the right and bottom walls. The first hit is returned.
func CheckCollision(body *Body, b Bounds) Collision {
	if body.HitsSelf() {
		return CollisionSelf
	}

	head := body.Head()
	if head.X < b.Wall || head.Y < b.Wall {
		return CollisionWall
	}
	if head.X > b.Width-b.Wall-b.CellW || head.Y > b.Height-b.Wall-b.CellH {
		return CollisionWall
	}

	return CollisionNone
}
