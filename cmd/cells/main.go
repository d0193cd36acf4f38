//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/mikeburf/cells/internal/app"
	"github.com/mikeburf/cells/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid := life.New(app.SimWidth, app.SimHeight)
	if cfg.Fill {
		grid.Randomize(cfg.Seed)
	}

	game := app.New(grid, app.RenderScale)
	size := grid.Size()

	ebiten.SetWindowTitle("cells")
	ebiten.SetWindowSize(size.W*app.RenderScale, size.H*app.RenderScale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
