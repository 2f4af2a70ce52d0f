// viewer is a local interactive demo of the visibility engine: arrow keys
// or hjkl move the eye around a procedurally generated map, r regenerates
// the map, and q or Escape quits. Build:
//
//	go build -o viewer ./cmd/viewer
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"shadowfov/internal/demo"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	demo.NewSession(screen, rng).Run(logger)
}
