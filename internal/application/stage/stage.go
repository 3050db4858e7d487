// Package stage defines the loadable presentation context behind each game
// mode and the lifecycle contract the director relies on.
//
// Each screen (start menu, cutscene, play session, game over) implements the
// Stage interface. A stage is created not-ready: its asset load starts at
// construction and resolves through WhenReady. The director guarantees a
// stage is never drawn, updated, or attached for input before WhenReady
// resolves, and never touched again after Dispose.
package stage

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/descent/internal/application/mode"
)

// Stage represents one loadable, disposable presentation context.
type Stage interface {
	// WhenReady blocks until the stage's assets are loaded or the load has
	// failed. Safe to call more than once; every call reports the same
	// outcome. Returns ctx.Err() if the context is canceled first.
	WhenReady(ctx context.Context) error

	// AttachInput marks this stage as the input receiver. Idempotent.
	AttachInput()

	// DetachInput stops input delivery. Idempotent, and legal on a stage
	// that was never attached.
	DetachInput()

	// Update advances the stage by dt seconds and returns a trigger the
	// stage wants fired, or mode.TriggerNone. Stages ignore input while
	// detached.
	Update(dt float64) mode.Trigger

	// Draw renders the stage to the screen.
	Draw(screen *ebiten.Image)

	// Resize informs the stage of a new presentation surface size.
	Resize(w, h int)

	// Dispose releases all backing resources. Irreversible: a disposed
	// stage must never be rendered, attached, or awaited again.
	Dispose()
}

// Factory creates the stage backing a mode. Create returns immediately with
// a not-ready stage whose load is already in flight.
type Factory interface {
	Create(m mode.Mode) Stage
}
