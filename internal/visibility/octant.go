package visibility

import "shadowfov/internal/coord"

// octant is a static descriptor for one of the 8 forty-five degree sectors
// swept around an origin. depthIndex/makeCoord/lateralMax translate between
// the octant's own (lateral, depth) sweep coordinates and grid coordinates;
// the bitmap methods name which cell edges/corners a wall shows when the
// scan first reaches it (§4.1).
type octant interface {
	depthIndex(origin coord.Coord, depth int) (int, bool)
	makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord
	lateralMax(origin coord.Coord) int
	facingBitmap() coord.DirectionBitmap
	acrossBitmap() coord.DirectionBitmap
	facingCornerBitmap() coord.DirectionBitmap
	shouldSee(lateral int) bool
}

// The eight octants are named depth-axis-then-lateral-axis. Exactly one of
// each pair "sees ahead" (owns the lateral==0 axis column); its sibling
// does not, so the axis-aligned column next to the origin is reported once.

type topLeft struct{}

func (topLeft) depthIndex(origin coord.Coord, depth int) (int, bool) {
	idx := origin.Y - depth
	return idx, idx >= 0
}
func (topLeft) makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord {
	return coord.New(origin.X-lateral, depthIndex)
}
func (topLeft) lateralMax(origin coord.Coord) int            { return origin.X }
func (topLeft) facingBitmap() coord.DirectionBitmap          { return coord.South.Bitmap() }
func (topLeft) acrossBitmap() coord.DirectionBitmap          { return coord.East.Bitmap() }
func (topLeft) facingCornerBitmap() coord.DirectionBitmap    { return coord.SouthEast.Bitmap() }
func (topLeft) shouldSee(lateral int) bool                   { return lateral != 0 }

type leftTop struct{}

func (leftTop) depthIndex(origin coord.Coord, depth int) (int, bool) {
	idx := origin.X - depth
	return idx, idx >= 0
}
func (leftTop) makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord {
	return coord.New(depthIndex, origin.Y-lateral)
}
func (leftTop) lateralMax(origin coord.Coord) int         { return origin.Y }
func (leftTop) facingBitmap() coord.DirectionBitmap       { return coord.East.Bitmap() }
func (leftTop) acrossBitmap() coord.DirectionBitmap       { return coord.South.Bitmap() }
func (leftTop) facingCornerBitmap() coord.DirectionBitmap { return coord.SouthEast.Bitmap() }
func (leftTop) shouldSee(lateral int) bool                { return true }

type topRight struct{ width int }

func (o topRight) depthIndex(origin coord.Coord, depth int) (int, bool) {
	idx := origin.Y - depth
	return idx, idx >= 0
}
func (topRight) makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord {
	return coord.New(origin.X+lateral, depthIndex)
}
func (o topRight) lateralMax(origin coord.Coord) int         { return o.width - origin.X - 1 }
func (topRight) facingBitmap() coord.DirectionBitmap         { return coord.South.Bitmap() }
func (topRight) acrossBitmap() coord.DirectionBitmap         { return coord.West.Bitmap() }
func (topRight) facingCornerBitmap() coord.DirectionBitmap   { return coord.SouthWest.Bitmap() }
func (topRight) shouldSee(lateral int) bool                  { return true }

type rightTop struct{ width int }

func (o rightTop) depthIndex(origin coord.Coord, depth int) (int, bool) {
	idx := origin.X + depth
	return idx, idx < o.width
}
func (rightTop) makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord {
	return coord.New(depthIndex, origin.Y-lateral)
}
func (rightTop) lateralMax(origin coord.Coord) int         { return origin.Y }
func (rightTop) facingBitmap() coord.DirectionBitmap       { return coord.West.Bitmap() }
func (rightTop) acrossBitmap() coord.DirectionBitmap       { return coord.South.Bitmap() }
func (rightTop) facingCornerBitmap() coord.DirectionBitmap { return coord.SouthWest.Bitmap() }
func (rightTop) shouldSee(lateral int) bool                { return lateral != 0 }

type bottomLeft struct{ height int }

func (o bottomLeft) depthIndex(origin coord.Coord, depth int) (int, bool) {
	idx := origin.Y + depth
	return idx, idx < o.height
}
func (bottomLeft) makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord {
	return coord.New(origin.X-lateral, depthIndex)
}
func (bottomLeft) lateralMax(origin coord.Coord) int         { return origin.X }
func (bottomLeft) facingBitmap() coord.DirectionBitmap       { return coord.North.Bitmap() }
func (bottomLeft) acrossBitmap() coord.DirectionBitmap       { return coord.East.Bitmap() }
func (bottomLeft) facingCornerBitmap() coord.DirectionBitmap { return coord.NorthEast.Bitmap() }
func (bottomLeft) shouldSee(lateral int) bool                { return true }

type leftBottom struct{ height int }

func (leftBottom) depthIndex(origin coord.Coord, depth int) (int, bool) {
	idx := origin.X - depth
	return idx, idx >= 0
}
func (leftBottom) makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord {
	return coord.New(depthIndex, origin.Y+lateral)
}
func (o leftBottom) lateralMax(origin coord.Coord) int         { return o.height - origin.Y - 1 }
func (leftBottom) facingBitmap() coord.DirectionBitmap         { return coord.East.Bitmap() }
func (leftBottom) acrossBitmap() coord.DirectionBitmap         { return coord.North.Bitmap() }
func (leftBottom) facingCornerBitmap() coord.DirectionBitmap   { return coord.NorthEast.Bitmap() }
func (leftBottom) shouldSee(lateral int) bool                  { return lateral != 0 }

type bottomRight struct{ width, height int }

func (o bottomRight) depthIndex(origin coord.Coord, depth int) (int, bool) {
	idx := origin.Y + depth
	return idx, idx < o.height
}
func (bottomRight) makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord {
	return coord.New(origin.X+lateral, depthIndex)
}
func (o bottomRight) lateralMax(origin coord.Coord) int         { return o.width - origin.X - 1 }
func (bottomRight) facingBitmap() coord.DirectionBitmap         { return coord.North.Bitmap() }
func (bottomRight) acrossBitmap() coord.DirectionBitmap         { return coord.West.Bitmap() }
func (bottomRight) facingCornerBitmap() coord.DirectionBitmap   { return coord.NorthWest.Bitmap() }
func (bottomRight) shouldSee(lateral int) bool                  { return lateral != 0 }

type rightBottom struct{ width, height int }

func (o rightBottom) depthIndex(origin coord.Coord, depth int) (int, bool) {
	idx := origin.X + depth
	return idx, idx < o.width
}
func (rightBottom) makeCoord(origin coord.Coord, lateral, depthIndex int) coord.Coord {
	return coord.New(depthIndex, origin.Y+lateral)
}
func (o rightBottom) lateralMax(origin coord.Coord) int         { return o.height - origin.Y - 1 }
func (rightBottom) facingBitmap() coord.DirectionBitmap         { return coord.West.Bitmap() }
func (rightBottom) acrossBitmap() coord.DirectionBitmap         { return coord.North.Bitmap() }
func (rightBottom) facingCornerBitmap() coord.DirectionBitmap   { return coord.NorthWest.Bitmap() }
func (rightBottom) shouldSee(lateral int) bool                  { return true }
