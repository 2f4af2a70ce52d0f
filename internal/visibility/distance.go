package visibility

import "shadowfov/internal/coord"

// Distance is an in-range predicate evaluated against the offset from the
// eye to a candidate cell. The three canonical shapes cover the usual
// vision-radius conventions; callers may supply their own.
type Distance interface {
	InRange(delta coord.Coord) bool
}

// Circle is true within a squared Euclidean radius — the roundest shape.
type Circle struct {
	Radius int
}

func (c Circle) InRange(delta coord.Coord) bool {
	return delta.X*delta.X+delta.Y*delta.Y <= c.Radius*c.Radius
}

// Square is true within a Chebyshev radius — a square bounding box.
type Square struct {
	Radius int
}

func (s Square) InRange(delta coord.Coord) bool {
	return abs(delta.X) <= s.Radius && abs(delta.Y) <= s.Radius
}

// Diamond is true within a Manhattan radius — a rotated square.
type Diamond struct {
	Radius int
}

func (d Diamond) InRange(delta coord.Coord) bool {
	return abs(delta.X)+abs(delta.Y) <= d.Radius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
