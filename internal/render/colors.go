package render

import "shadowfov/internal/coord"

// UnseenGlyph marks a tile that has never been reported by a visibility scan.
const UnseenGlyph = '%'

// GlyphFor returns the block-element rune that renders a reported direction
// bitmap: a fully visible cell is drawn as ',', and a cell exposed along only
// some of its edges is drawn as the matching quarter/half block.
func GlyphFor(bitmap coord.DirectionBitmap) rune {
	switch {
	case bitmap.IsFull():
		return ','
	case bitmap == coord.North.Bitmap():
		return '▀'
	case bitmap == coord.East.Bitmap():
		return '▐'
	case bitmap == coord.South.Bitmap():
		return '▄'
	case bitmap == coord.West.Bitmap():
		return '▌'
	case bitmap == coord.NorthEast.Bitmap():
		return '▝'
	case bitmap == coord.NorthWest.Bitmap():
		return '▘'
	case bitmap == coord.SouthEast.Bitmap():
		return '▗'
	case bitmap == coord.SouthWest.Bitmap():
		return '▖'
	case bitmap == coord.North.Bitmap().Or(coord.East.Bitmap()):
		return '▜'
	case bitmap == coord.South.Bitmap().Or(coord.East.Bitmap()):
		return '▟'
	case bitmap == coord.South.Bitmap().Or(coord.West.Bitmap()):
		return '▙'
	case bitmap == coord.North.Bitmap().Or(coord.West.Bitmap()):
		return '▛'
	default:
		return '?'
	}
}

// FogTint scales a full-intensity color channel by the remaining visibility
// budget out of 255, so a cell seen through thick smoke renders dimmer than
// one seen through clear air.
func FogTint(full uint8, visibility uint8) uint8 {
	return uint8((uint16(full) * uint16(visibility)) / 255)
}
