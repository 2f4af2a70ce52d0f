package visibility

import "shadowfov/internal/coord"

// stringGrid is a fixed-size uint8 opacity grid built from literal rows of
// '.', '#', '&', and '@' — the same convention the reference shadowcast
// crate's test suite uses, generalized into a reusable test fixture here.
type stringGrid struct {
	width, height int
	opacity       []uint8
}

func gridFromStrings(rows []string) (*stringGrid, coord.Coord) {
	height := len(rows)
	width := len(rows[0])
	g := &stringGrid{width: width, height: height, opacity: make([]uint8, width*height)}
	var eye coord.Coord
	found := false
	for y, row := range rows {
		for x, ch := range row {
			idx := y*width + x
			switch ch {
			case '@':
				eye = coord.New(x, y)
				found = true
				g.opacity[idx] = 0
			case '.':
				g.opacity[idx] = 0
			case '#':
				g.opacity[idx] = 255
			case '&':
				g.opacity[idx] = 128
			default:
				panic("gridFromStrings: unknown rune " + string(ch))
			}
		}
	}
	if !found {
		panic("gridFromStrings: no eye ('@') in input")
	}
	return g, eye
}

func (g *stringGrid) Size() coord.Size { return coord.Size{Width: g.width, Height: g.height} }

func (g *stringGrid) GetOpacity(c coord.Coord) uint8 {
	return g.opacity[c.Y*g.width+c.X]
}

// glyphOutput renders a ForEach run the same way the reference crate's
// test suite does: '%' for unseen, ',' for an unobstructed cell, and an
// ASCII stand-in (see glyphFor) for each block-element glyph of the
// split-cell direction table for partially exposed cells.
type glyphOutput struct {
	width, height int
	seen          []bool
	bitmap        []coord.DirectionBitmap
}

func newGlyphOutput(size coord.Size) *glyphOutput {
	return &glyphOutput{
		width:  size.Width,
		height: size.Height,
		seen:   make([]bool, size.Width*size.Height),
		bitmap: make([]coord.DirectionBitmap, size.Width*size.Height),
	}
}

func (o *glyphOutput) sink(c coord.Coord, bitmap coord.DirectionBitmap, _ uint8) {
	idx := c.Y*o.width + c.X
	o.seen[idx] = true
	o.bitmap[idx] = bitmap
}

func (o *glyphOutput) render(eye coord.Coord) []string {
	rows := make([]string, o.height)
	for y := 0; y < o.height; y++ {
		b := make([]byte, o.width)
		for x := 0; x < o.width; x++ {
			c := coord.New(x, y)
			idx := y*o.width + x
			switch {
			case c == eye:
				b[x] = '@'
			case !o.seen[idx]:
				b[x] = '%'
			default:
				b[x] = glyphFor(o.bitmap[idx])
			}
		}
		rows[y] = string(b)
	}
	return rows
}

func glyphFor(d coord.DirectionBitmap) byte {
	// Single-byte stand-ins for the Unicode block elements named in the
	// spec's glyph table, keeping the fixture strings ASCII.
	switch {
	case d.IsFull():
		return ','
	case d == coord.North.Bitmap():
		return 'n'
	case d == coord.East.Bitmap():
		return 'e'
	case d == coord.South.Bitmap():
		return 's'
	case d == coord.West.Bitmap():
		return 'w'
	case d == coord.NorthEast.Bitmap():
		return '1'
	case d == coord.NorthWest.Bitmap():
		return '2'
	case d == coord.SouthWest.Bitmap():
		return '3'
	case d == coord.SouthEast.Bitmap():
		return '4'
	case d == coord.North.Bitmap().Or(coord.East.Bitmap()):
		return 'A'
	case d == coord.South.Bitmap().Or(coord.East.Bitmap()):
		return 'B'
	case d == coord.South.Bitmap().Or(coord.West.Bitmap()):
		return 'C'
	case d == coord.North.Bitmap().Or(coord.West.Bitmap()):
		return 'D'
	default:
		return '?'
	}
}
