// scanstats runs one visibility scan over a scenario file and writes every
// reported cell to a CSV file. Build:
//
//	go build -o scanstats ./cmd/scanstats
//
// Usage:
//
//	./scanstats --scenario scenes.yaml --scene small-room --out report.csv
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
	"shadowfov/internal/coord"
	"shadowfov/internal/render"
	"shadowfov/internal/scenario"
	"shadowfov/internal/visibility"
)

// Record is one reported cell, shaped for gocsv's struct-tag marshaling.
type Record struct {
	X          int    `csv:"x"`
	Y          int    `csv:"y"`
	Bitmap     uint8  `csv:"bitmap"`
	Visibility uint8  `csv:"visibility"`
	Glyph      string `csv:"glyph"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a scenario YAML file")
	sceneName := flag.String("scene", "", "name of the scene within the scenario file")
	outPath := flag.String("out", "scanstats.csv", "output CSV path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *scenarioPath == "" || *sceneName == "" {
		fmt.Fprintln(os.Stderr, "usage: scanstats --scenario FILE --scene NAME [--out FILE]")
		os.Exit(2)
	}

	lib, err := scenario.LoadFile(*scenarioPath)
	if err != nil {
		logger.Error("load scenario", "error", err)
		os.Exit(1)
	}

	var scene *scenario.Scene
	for i := range lib.Scenes {
		if lib.Scenes[i].Name == *sceneName {
			scene = &lib.Scenes[i]
			break
		}
	}
	if scene == nil {
		logger.Error("scene not found", "name", *sceneName)
		os.Exit(1)
	}

	grid, eye := scene.Build()
	ctx := visibility.NewContext()

	var records []Record
	ctx.ForEach(eye, grid, scene.Distance(), scene.InitialVisibility, func(c coord.Coord, bitmap coord.DirectionBitmap, v uint8) {
		records = append(records, Record{
			X: c.X, Y: c.Y,
			Bitmap:     uint8(bitmap),
			Visibility: v,
			Glyph:      string(render.GlyphFor(bitmap)),
		})
	})

	f, err := os.Create(*outPath)
	if err != nil {
		logger.Error("create output file", "path", *outPath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(records, f); err != nil {
		logger.Error("write csv", "error", err)
		os.Exit(1)
	}

	logger.Info("wrote scan report", "scene", scene.Name, "cells", len(records), "out", *outPath)
}
