package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/descent/internal/application/director"
	"github.com/younwookim/descent/internal/application/game"
	"github.com/younwookim/descent/internal/application/stage/factory"
	"github.com/younwookim/descent/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "intro", "Stage layout to play (e.g., -stage intro)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys)
	display, err := loader.LoadDisplay()
	if err != nil {
		log.Fatalf("Failed to load display config: %v", err)
	}

	// Boot the mode controller into the start menu before the loop runs
	ctx := context.Background()
	shell := game.NewShell()
	d := director.New(factory.New(fsys, display, *stageFlag), shell)
	if err := d.Boot(ctx); err != nil {
		log.Fatalf("Failed to boot start menu: %v", err)
	}

	g := game.New(ctx, d, shell, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Descent")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
