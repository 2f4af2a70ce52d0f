// Package scenario loads named map/eye/distance fixtures from YAML so the
// scanstats command (and tests) can share a library of scenes instead of
// hardcoding grids in Go source.
package scenario

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
	"shadowfov/internal/coord"
	"shadowfov/internal/visibility"
)

// Tile legend, matching the convention used throughout the visibility
// package's own tests: '.' clear floor, '#' solid wall, '&' translucent
// fog, '@' the eye's starting position. Exactly one '@' must appear.
const (
	legendFloor = '.'
	legendWall  = '#'
	legendFog   = '&'
	legendEye   = '@'
)

// Scene is one named, YAML-loadable visibility scenario.
type Scene struct {
	Name              string   `yaml:"name"`
	Rows              []string `yaml:"rows"`
	DistanceShape     string   `yaml:"distance_shape"` // "circle", "square", or "diamond"
	DistanceRadius    int      `yaml:"distance_radius"`
	InitialVisibility uint8    `yaml:"initial_visibility"`
	FogOpacity        uint8    `yaml:"fog_opacity"`
}

// Library is a named collection of scenes, the root of a scenario file.
type Library struct {
	Scenes []Scene `yaml:"scenes"`
}

// LoadFile reads and validates a YAML scenario library from path.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Load(data)
}

// Load parses and validates a YAML scenario library.
func Load(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	for i := range lib.Scenes {
		if err := lib.Scenes[i].validate(); err != nil {
			return nil, fmt.Errorf("scenario: scene %q: %w", lib.Scenes[i].Name, err)
		}
	}
	return &lib, nil
}

func (s *Scene) validate() error {
	if len(s.Rows) == 0 {
		return fmt.Errorf("no rows")
	}
	width := len([]rune(s.Rows[0]))
	eyeCount := 0
	for y, row := range s.Rows {
		runes := []rune(row)
		if len(runes) != width {
			return fmt.Errorf("row %d has width %d, want %d", y, len(runes), width)
		}
		for _, r := range runes {
			if runewidth.RuneWidth(r) != 1 {
				return fmt.Errorf("row %d contains a non-single-column rune %q", y, r)
			}
			switch r {
			case legendFloor, legendWall, legendFog:
			case legendEye:
				eyeCount++
			default:
				return fmt.Errorf("row %d contains unknown legend rune %q", y, r)
			}
		}
	}
	if eyeCount != 1 {
		return fmt.Errorf("expected exactly one eye marker, found %d", eyeCount)
	}
	switch s.DistanceShape {
	case "circle", "square", "diamond":
	default:
		return fmt.Errorf("unknown distance_shape %q", s.DistanceShape)
	}
	return nil
}

// Distance builds the visibility.Distance named by the scene's
// DistanceShape/DistanceRadius fields.
func (s *Scene) Distance() visibility.Distance {
	switch s.DistanceShape {
	case "square":
		return visibility.Square{Radius: s.DistanceRadius}
	case "diamond":
		return visibility.Diamond{Radius: s.DistanceRadius}
	default:
		return visibility.Circle{Radius: s.DistanceRadius}
	}
}

// Grid implements visibility.InputGrid over a parsed Scene.
type Grid struct {
	width, height int
	opacity       []uint8
}

// Build parses the scene's rows into a Grid and returns the eye's starting
// coordinate.
func (s *Scene) Build() (*Grid, coord.Coord) {
	height := len(s.Rows)
	width := len([]rune(s.Rows[0]))
	g := &Grid{width: width, height: height, opacity: make([]uint8, width*height)}
	var eye coord.Coord
	for y, row := range s.Rows {
		for x, r := range []rune(row) {
			idx := y*width + x
			switch r {
			case legendWall:
				g.opacity[idx] = 255
			case legendFog:
				g.opacity[idx] = s.FogOpacity
			case legendEye:
				eye = coord.New(x, y)
			}
		}
	}
	return g, eye
}

// Size implements visibility.InputGrid.
func (g *Grid) Size() coord.Size { return coord.Size{Width: g.width, Height: g.height} }

// GetOpacity implements visibility.InputGrid.
func (g *Grid) GetOpacity(c coord.Coord) uint8 { return g.opacity[c.Y*g.width+c.X] }
