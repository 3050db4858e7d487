// Package menu provides the start-menu stage.
package menu

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
	colorBG = color.RGBA{26, 26, 46, 255}
)

// Menu is the start-menu stage
type Menu struct {
	stage.Lifecycle
	loader *config.Loader
	cfg    *config.MenuConfig
	cursor int
	w, h   int
}

// New creates the menu stage and starts loading its content.
func New(loader *config.Loader, display *config.DisplayConfig) *Menu {
	m := &Menu{loader: loader, w: display.ScreenWidth, h: display.ScreenHeight}
	m.Begin(m.load)
	return m
}

func (m *Menu) load(ctx context.Context) error {
	cfg, err := m.loader.LoadMenu()
	if err != nil {
		return fmt.Errorf("load menu content: %w", err)
	}
	m.cfg = cfg
	return nil
}

// Update handles menu navigation and reports the start trigger.
func (m *Menu) Update(dt float64) mode.Trigger {
	if !m.Attached() {
		return mode.TriggerNone
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && m.cursor > 0 {
		m.cursor--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && m.cursor < len(m.cfg.Entries)-1 {
		m.cursor++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return mode.TriggerStart
	}
	return mode.TriggerNone
}

// Draw renders the title, entries and hint.
func (m *Menu) Draw(screen *ebiten.Image) {
	m.MustLive("Draw")
	screen.Fill(colorBG)

	ebitenutil.DebugPrintAt(screen, m.cfg.Title, m.w/2-len(m.cfg.Title)*3, m.h/4)
	for i, entry := range m.cfg.Entries {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		ebitenutil.DebugPrintAt(screen, marker+entry, m.w/2-24, m.h/2+i*16)
	}
	ebitenutil.DebugPrintAt(screen, m.cfg.Hint, 8, m.h-16)
}

// Resize adapts the layout to a new surface size.
func (m *Menu) Resize(w, h int) {
	m.w, m.h = w, h
}
