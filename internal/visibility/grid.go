package visibility

import "shadowfov/internal/coord"

// InputGrid is the caller-supplied opacity source. The caller guarantees
// every coord passed to GetOpacity is in bounds; the engine never queries
// a coordinate it has not already bounds-checked against Size.
type InputGrid interface {
	Size() coord.Size
	GetOpacity(c coord.Coord) uint8
}

// Sink receives one visible-cell observation: its coordinate, the set of
// edges/corners exposed to the eye, and the visibility budget remaining
// when the beam reached it.
type Sink func(c coord.Coord, bitmap coord.DirectionBitmap, visibility uint8)
