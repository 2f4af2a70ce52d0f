// Package demo runs the interactive visibility viewer shared by the local
// viewer command and the SSH server: generate a map, let the eye move
// around it, rescan after every move, and redraw.
package demo

import (
	"log/slog"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"shadowfov/internal/coord"
	"shadowfov/internal/gamemap"
	"shadowfov/internal/generate"
	"shadowfov/internal/render"
	"shadowfov/internal/visibility"
)

const (
	MapWidth          = 80
	MapHeight         = 40
	VisionRadius      = 12
	InitialVisibility = uint8(255)
	FogDensity        = 0.06
	FogOpacity        = 140
)

// Session holds one connection's independent viewer state: its own map,
// its own eye position, its own reusable visibility.Context.
type Session struct {
	screen   tcell.Screen
	renderer *render.Renderer
	vis      *visibility.Context
	distance visibility.Distance
	gmap     *gamemap.GameMap
	rng      *rand.Rand
	eyeX     int
	eyeY     int
	scanned  int
}

// NewSession builds a Session bound to screen, seeded from rng, with a
// freshly generated map.
func NewSession(screen tcell.Screen, rng *rand.Rand) *Session {
	s := &Session{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		vis:      visibility.NewContext(),
		distance: visibility.Circle{Radius: VisionRadius},
		rng:      rng,
	}
	s.Regenerate()
	return s
}

// Regenerate discards the current map and carves a new one.
func (s *Session) Regenerate() {
	cfg := &generate.Config{
		MapWidth:      MapWidth,
		MapHeight:     MapHeight,
		MinLeafSize:   8,
		MaxLeafSize:   20,
		SplitRatio:    0.5,
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: generate.CorridorLShaped,
		FogDensity:    FogDensity,
		FogOpacity:    FogOpacity,
		Rand:          s.rng,
	}
	gmap, px, py := generate.Generate(cfg)
	s.gmap = gmap
	s.eyeX, s.eyeY = px, py
	s.rescan()
}

func (s *Session) rescan() {
	s.gmap.UpdateVisibility(s.vis, coord.New(s.eyeX, s.eyeY), s.distance, InitialVisibility)
	s.scanned = 0
	for y := 0; y < s.gmap.Height; y++ {
		for x := 0; x < s.gmap.Width; x++ {
			if s.gmap.At(x, y).Visible {
				s.scanned++
			}
		}
	}
}

// Run drives the session's event loop until the user quits.
func (s *Session) Run(logger *slog.Logger) {
	for {
		s.draw()

		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventResize:
			s.renderer.Resize()
			s.screen.Sync()
		case *tcell.EventKey:
			if s.handleKey(ev) {
				logger.Debug("session loop exiting")
				return
			}
		case nil:
			return
		}
	}
}

func (s *Session) draw() {
	s.renderer.CenterOn(s.eyeX, s.eyeY)
	s.renderer.DrawFrame(s.gmap, s.eyeX, s.eyeY)
	s.renderer.DrawHUD(render.HUDInfo{
		EyeX: s.eyeX, EyeY: s.eyeY,
		DistanceShape:     "circle",
		DistanceRadius:    VisionRadius,
		InitialVisibility: InitialVisibility,
		FogDensity:        FogDensity,
		Scanned:           s.scanned,
	})
}

// handleKey applies one keypress and reports whether the session should end.
func (s *Session) handleKey(ev *tcell.EventKey) bool {
	dx, dy := 0, 0
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return true
	case ev.Key() == tcell.KeyUp:
		dy = -1
	case ev.Key() == tcell.KeyDown:
		dy = 1
	case ev.Key() == tcell.KeyLeft:
		dx = -1
	case ev.Key() == tcell.KeyRight:
		dx = 1
	case ev.Key() == tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'r':
			s.Regenerate()
			return false
		case 'h':
			dx = -1
		case 'l':
			dx = 1
		case 'k':
			dy = -1
		case 'j':
			dy = 1
		case 'y':
			dx, dy = -1, -1
		case 'u':
			dx, dy = 1, -1
		case 'b':
			dx, dy = -1, 1
		case 'n':
			dx, dy = 1, 1
		}
	}
	if dx == 0 && dy == 0 {
		return false
	}
	s.move(dx, dy)
	return false
}

func (s *Session) move(dx, dy int) {
	nx, ny := s.eyeX+dx, s.eyeY+dy
	if !s.gmap.IsWalkable(nx, ny) {
		return
	}
	s.eyeX, s.eyeY = nx, ny
	s.rescan()
}
