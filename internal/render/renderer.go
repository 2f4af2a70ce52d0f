package render

import (
	"github.com/gdamore/tcell/v2"
	"shadowfov/internal/gamemap"
)

// Renderer draws a GameMap's explored/visible tiles onto a tcell screen,
// using the direction bitmap each tile was last stamped with to pick a
// block-element glyph, and the remaining visibility budget to tint color.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen, reserving the
// bottom rows for the HUD.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	viewH := h - hudRows
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, viewH),
	}
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// WorldToScreen converts world coordinates to screen coordinates.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// Resize updates the camera's viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - hudRows
}

// DrawFrame renders the map and the eye marker.
func (r *Renderer) DrawFrame(gmap *gamemap.GameMap, eyeX, eyeY int) {
	r.screen.Clear()
	r.drawMap(gmap)
	if sx, sy, onScreen := r.camera.WorldToScreen(eyeX, eyeY); onScreen {
		r.putGlyph(sx, sy, '@', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			tile := gmap.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}

			var glyph rune
			var style tcell.Style
			switch {
			case tile.Visible:
				glyph = glyphForTile(tile)
				style = styleForTile(tile)
			default:
				// Explored but currently outside every scan's reach.
				glyph = dimGlyphForTile(tile)
				style = tcell.StyleDefault.Foreground(tcell.ColorGray)
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// glyphForTile picks the block-element glyph for a currently visible tile.
// Walls and floor render by their exposed-edge bitmap (split-cell rendering;
// a visible floor tile's bitmap is always full); fog and stairs render as a
// single representative glyph whatever their bitmap.
func glyphForTile(t *gamemap.Tile) rune {
	switch t.Kind {
	case gamemap.TileWall:
		return GlyphFor(t.Bitmap)
	case gamemap.TileStairsDown:
		return '>'
	case gamemap.TileFog:
		return '~'
	default:
		return GlyphFor(t.Bitmap)
	}
}

func dimGlyphForTile(t *gamemap.Tile) rune {
	switch t.Kind {
	case gamemap.TileWall:
		return '#'
	case gamemap.TileStairsDown:
		return '>'
	case gamemap.TileFog:
		return '~'
	default:
		return '.'
	}
}

func styleForTile(t *gamemap.Tile) tcell.Style {
	switch t.Kind {
	case gamemap.TileFog:
		v := FogTint(255, t.Visibility)
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(v), int32(v), int32(v)))
	case gamemap.TileStairsDown:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

// putGlyph draws a single rune at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
}
