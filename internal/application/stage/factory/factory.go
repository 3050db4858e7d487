// Package factory wires each mode to its concrete stage implementation.
package factory

import (
	"fmt"
	"io/fs"

	"github.com/younwookim/descent/internal/application/mode"
	"github.com/younwookim/descent/internal/application/stage"
	"github.com/younwookim/descent/internal/application/stage/cutscene"
	"github.com/younwookim/descent/internal/application/stage/gameover"
	"github.com/younwookim/descent/internal/application/stage/menu"
	"github.com/younwookim/descent/internal/application/stage/playing"
	"github.com/younwookim/descent/internal/infrastructure/config"
)

// Factory creates the stage backing each mode from a single config
// filesystem.
type Factory struct {
	fsys    fs.FS
	loader  *config.Loader
	display *config.DisplayConfig
	stageID string
}

// New creates a factory reading content from fsys. stageID selects the
// layout for the play session.
func New(fsys fs.FS, display *config.DisplayConfig, stageID string) *Factory {
	return &Factory{
		fsys:    fsys,
		loader:  config.NewFSLoader(fsys),
		display: display,
		stageID: stageID,
	}
}

// Create returns a not-ready stage for m with its load already in flight.
func (f *Factory) Create(m mode.Mode) stage.Stage {
	switch m {
	case mode.ModeStart:
		return menu.New(f.loader, f.display)
	case mode.ModeCutscene:
		return cutscene.New(f.loader, f.display)
	case mode.ModeActive:
		return playing.New(f.fsys, f.display, f.stageID)
	case mode.ModeFailed:
		return gameover.New(f.loader, f.display)
	}
	panic(fmt.Sprintf("factory: no stage for mode %s", m))
}
