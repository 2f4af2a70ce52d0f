// Package coord holds the grid position and compass-direction primitives
// the visibility engine assumes exist but treats as an external library.
package coord

// Coord is a cell position in a 2D grid, X increasing east and Y
// increasing south.
type Coord struct {
	X, Y int
}

// New builds a Coord.
func New(x, y int) Coord { return Coord{X: x, Y: y} }

// Add returns the componentwise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns the componentwise difference c - o.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

// Size is a grid's width and height in cells.
type Size struct {
	Width, Height int
}
