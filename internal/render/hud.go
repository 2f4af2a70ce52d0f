package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// hudRows is the number of terminal rows reserved at the bottom of the
// screen for status text.
const hudRows = 3

// HUDInfo is the status-line data the viewer and server commands pass to
// DrawHUD each frame.
type HUDInfo struct {
	EyeX, EyeY        int
	DistanceShape     string
	DistanceRadius    int
	InitialVisibility uint8
	FogDensity        float64
	Scanned           int
}

// DrawHUD renders the status bar beneath the map.
func (r *Renderer) DrawHUD(info HUDInfo) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	line1 := fmt.Sprintf("eye:(%d,%d)  distance:%s(%d)  budget:%d  cells seen:%d",
		info.EyeX, info.EyeY, info.DistanceShape, info.DistanceRadius, info.InitialVisibility, info.Scanned)
	r.drawText(0, hudY+1, line1, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	line2 := fmt.Sprintf("fog density:%.2f  arrows/hjkl move  r regenerate  q quit", info.FogDensity)
	r.drawText(0, hudY+2, line2, tcell.StyleDefault.Foreground(tcell.ColorAqua))

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
