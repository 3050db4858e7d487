// Package cutscene provides the intro-script stage shown between the menu
// and the play session.
package cutscene

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

var colorBG = color.RGBA{12, 12, 20, 255}

// Cutscene is the intro-script stage
type Cutscene struct {
	stage.Lifecycle
	loader  *config.Loader
	cfg     *config.CutsceneConfig
	line    int
	elapsed float64
	w, h    int
}

// New creates the cutscene stage and starts loading its script.
func New(loader *config.Loader, display *config.DisplayConfig) *Cutscene {
	c := &Cutscene{loader: loader, w: display.ScreenWidth, h: display.ScreenHeight}
	c.Begin(c.load)
	return c
}

func (c *Cutscene) load(ctx context.Context) error {
	cfg, err := c.loader.LoadCutscene()
	if err != nil {
		return fmt.Errorf("load cutscene script: %w", err)
	}
	c.cfg = cfg
	return nil
}

// Update advances the script and reports the advance trigger. Lines reveal
// on a timer; input only lands while attached.
func (c *Cutscene) Update(dt float64) mode.Trigger {
	c.elapsed += dt
	if c.elapsed >= c.cfg.SecondsPerLine && c.line < len(c.cfg.Lines)-1 {
		c.line++
		c.elapsed = 0
	}

	if !c.Attached() {
		return mode.TriggerNone
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		// Skip straight to the session.
		return mode.TriggerAdvance
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if c.line >= len(c.cfg.Lines)-1 {
			return mode.TriggerAdvance
		}
		c.line++
		c.elapsed = 0
	}
	return mode.TriggerNone
}

// Draw renders the revealed script lines.
func (c *Cutscene) Draw(screen *ebiten.Image) {
	c.MustLive("Draw")
	screen.Fill(colorBG)

	for i := 0; i <= c.line && i < len(c.cfg.Lines); i++ {
		ebitenutil.DebugPrintAt(screen, c.cfg.Lines[i], 16, c.h/4+i*16)
	}
	ebitenutil.DebugPrintAt(screen, "Enter: next  Esc: skip", 8, c.h-16)
}

// Resize adapts the layout to a new surface size.
func (c *Cutscene) Resize(w, h int) {
	c.w, c.h = w, h
}
