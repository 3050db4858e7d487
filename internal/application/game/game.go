// Package game provides the ebiten loop that drives the director: render
// dispatch, the loading overlay, the debug overlay toggle, and resize
// forwarding.
package game

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/descent/internal/application/mode"
)

// Director is the part of the mode controller the loop drives.
type Director interface {
	Update(ctx context.Context, dt float64) <-chan error
	Draw(screen *ebiten.Image)
	Resize(w, h int)
	Mode() mode.Mode
}

// Game implements ebiten.Game and forwards the loop to the director.
type Game struct {
	ctx      context.Context
	director Director
	shell    *Shell
	screenW  int
	screenH  int
	dt       float64
	debug    bool
	outsideW int
	outsideH int
}

// New creates the loop wrapper. The director must already be booted.
func New(ctx context.Context, d Director, shell *Shell, screenW, screenH, framerate int) *Game {
	return &Game{
		ctx:      ctx,
		director: d,
		shell:    shell,
		screenW:  screenW,
		screenH:  screenH,
		dt:       1.0 / float64(framerate),
	}
}

// Update ticks the current stage once per frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	// Transition outcomes surface through the shell; triggers rejected
	// mid-transition are dropped by policy.
	if done := g.director.Update(g.ctx, g.dt); done != nil {
		go func() { <-done }()
	}
	return nil
}

// Draw renders the current stage plus the host-level overlays.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.director.Draw(screen)

	if g.shell.Busy() {
		ebitenutil.DebugPrintAt(screen, "LOADING...", g.screenW/2-30, g.screenH/2-4)
	}
	if err := g.shell.LoadError(); err != nil {
		ebitenutil.DebugPrintAt(screen, "load failed: "+err.Error(), 8, g.screenH-32)
	}
	if g.debug {
		msg := fmt.Sprintf("TPS: %0.1f\nMode: %s", ebiten.ActualTPS(), g.director.Mode())
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout returns the game's logical screen dimensions and forwards
// outside-size changes to the director.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outsideW || outsideHeight != g.outsideH {
		g.outsideW, g.outsideH = outsideWidth, outsideHeight
		g.director.Resize(outsideWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
