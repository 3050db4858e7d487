// Package gameover provides the failure-screen stage.
package gameover

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/descent/internal/application/mode"
	"github.com/younwookim/descent/internal/application/stage"
	"github.com/younwookim/descent/internal/infrastructure/config"
)

var (
	colorBG    = color.RGBA{30, 10, 10, 255}
	colorPanel = color.RGBA{60, 20, 20, 255}
)

// GameOver is the failure-screen stage
type GameOver struct {
	stage.Lifecycle
	loader *config.Loader
	cfg    *config.GameOverConfig
	w, h   int
}

// New creates the failure screen and starts loading its content.
func New(loader *config.Loader, display *config.DisplayConfig) *GameOver {
	g := &GameOver{loader: loader, w: display.ScreenWidth, h: display.ScreenHeight}
	g.Begin(g.load)
	return g
}

func (g *GameOver) load(ctx context.Context) error {
	cfg, err := g.loader.LoadGameOver()
	if err != nil {
		return fmt.Errorf("load game-over content: %w", err)
	}
	g.cfg = cfg
	return nil
}

// Update reports the return-to-menu trigger.
func (g *GameOver) Update(dt float64) mode.Trigger {
	if !g.Attached() {
		return mode.TriggerNone
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return mode.TriggerReturnToMenu
	}
	return mode.TriggerNone
}

// Draw renders the failure panel.
func (g *GameOver) Draw(screen *ebiten.Image) {
	g.MustLive("Draw")
	screen.Fill(colorBG)

	ebitenutil.DrawRect(screen, float64(g.w/2-80), float64(g.h/2-32), 160, 64, colorPanel)
	ebitenutil.DebugPrintAt(screen, g.cfg.Title, g.w/2-len(g.cfg.Title)*3, g.h/2-16)
	ebitenutil.DebugPrintAt(screen, g.cfg.Hint, g.w/2-len(g.cfg.Hint)*3, g.h/2+8)
}

// Resize adapts the layout to a new surface size.
func (g *GameOver) Resize(w, h int) {
	g.w, g.h = w, h
}
