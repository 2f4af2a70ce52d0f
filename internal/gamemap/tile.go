package gamemap

import "shadowfov/internal/coord"

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileFog // translucent smoke/fog: walkable, partially opaque
	TileStairsDown
)

// Tile holds one map cell's kind, opacity, and the visibility state left
// by the most recent UpdateVisibility call.
type Tile struct {
	Kind     TileKind
	Walkable bool
	Opacity  uint8

	// Explored is sticky: once true it never reverts to false.
	Explored bool
	// Visible, Bitmap, and Visibility hold the result of the most recent
	// scan; Bitmap is empty and Visibility is zero for unseen tiles.
	Visible    bool
	Bitmap     coord.DirectionBitmap
	Visibility uint8
}

// MakeWall returns a blocking, fully opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false, Opacity: 255}
}

// MakeFloor returns a passable, fully transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Opacity: 0}
}

// MakeFog returns a walkable tile with partial opacity, modeling smoke or
// fog: it subtracts from the visibility budget but does not block it
// outright.
func MakeFog(opacity uint8) Tile {
	return Tile{Kind: TileFog, Walkable: true, Opacity: opacity}
}

// MakeStairsDown returns a passable, transparent staircase tile.
func MakeStairsDown() Tile {
	return Tile{Kind: TileStairsDown, Walkable: true, Opacity: 0}
}
