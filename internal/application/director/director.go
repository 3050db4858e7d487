// Package director implements the top-level mode controller. The director
// owns the current mode, the stage behind it, and the asynchronous
// transition procedure that swaps stages without ever stalling the render
// loop: while a new stage loads, frames keep ticking against the previous
// stage.
package director

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/descent/internal/application/mode"
	"github.com/younwookim/descent/internal/application/stage"
)

var (
	// ErrTransitionInProgress reports a trigger that arrived while another
	// transition was still loading. Such triggers are dropped, never queued.
	ErrTransitionInProgress = errors.New("director: transition already in progress")

	// ErrInvalidTrigger reports a trigger with no edge from the current mode.
	ErrInvalidTrigger = errors.New("director: trigger not valid for current mode")
)

// Shell receives the director's outbound lifecycle notifications: busy
// indication around loads and load-failure reports.
type Shell interface {
	ShowBusyIndicator()
	HideBusyIndicator()
	ReportLoadError(err error)
}

// Director owns the current mode and the stage behind it. All mode and
// stage mutation goes through Boot and Dispatch; Draw and Update observe
// the (mode, stage) pair atomically.
type Director struct {
	factory stage.Factory
	shell   Shell

	mu            sync.Mutex
	mode          mode.Mode
	current       stage.Stage
	pending       stage.Stage // preloaded active-session stage, nil otherwise
	transitioning bool
}

// New creates a Director in the start mode with no stage. Call Boot before
// driving the render loop.
func New(factory stage.Factory, shell Shell) *Director {
	return &Director{
		factory: factory,
		shell:   shell,
		mode:    mode.ModeStart,
	}
}

// Boot runs the implicit bootstrap transition into the start menu. It
// blocks until the menu stage is ready and attached; the render loop must
// not tick before Boot returns.
func (d *Director) Boot(ctx context.Context) error {
	st := d.factory.Create(mode.ModeStart)
	if err := st.WhenReady(ctx); err != nil {
		st.Dispose()
		return fmt.Errorf("boot %s stage: %w", mode.ModeStart, err)
	}

	d.mu.Lock()
	d.mode = mode.ModeStart
	d.current = st
	d.mu.Unlock()

	st.AttachInput()
	return nil
}

// Dispatch routes one trigger into the state machine. The returned channel
// resolves exactly once: nil when the transition committed, an error when
// the trigger was rejected or the new stage failed to load. A trigger
// arriving mid-transition resolves immediately with ErrTransitionInProgress.
func (d *Director) Dispatch(ctx context.Context, t mode.Trigger) <-chan error {
	done := make(chan error, 1)

	d.mu.Lock()
	cur := d.mode
	next, ok := mode.Next(cur, t)
	if !ok {
		d.mu.Unlock()
		done <- fmt.Errorf("%w: %s in %s", ErrInvalidTrigger, t, cur)
		return done
	}
	if d.transitioning {
		d.mu.Unlock()
		done <- ErrTransitionInProgress
		return done
	}
	d.transitioning = true
	prev := d.current

	// Adopt the preloaded stage when entering active play; its load may
	// still be in flight, which is fine: the await below does not skip
	// readiness.
	var st stage.Stage
	if next == mode.ModeActive && d.pending != nil {
		st = d.pending
	}
	d.mu.Unlock()

	d.shell.ShowBusyIndicator()

	// Input must stop reaching the outgoing stage before the incoming one
	// exists.
	if prev != nil {
		prev.DetachInput()
	}
	if st == nil {
		st = d.factory.Create(next)
	}

	go d.finish(ctx, next, prev, st, done)
	return done
}

// finish awaits the incoming stage's readiness and then commits or aborts
// the transition. Runs on its own goroutine so the render loop keeps
// ticking against the previous stage during the load.
func (d *Director) finish(ctx context.Context, next mode.Mode, prev, st stage.Stage, done chan<- error) {
	if err := st.WhenReady(ctx); err != nil {
		d.abort(next, prev, st, fmt.Errorf("load %s stage: %w", next, err), done)
		return
	}

	d.shell.HideBusyIndicator()

	// Commit: mode and stage swap together, atomically with respect to
	// Draw and Update. The pending slot is cleared exactly when the
	// preloaded stage becomes current.
	d.mu.Lock()
	d.mode = next
	d.current = st
	if st == d.pending {
		d.pending = nil
	}
	// Entering the cutscene starts the play session's load early so its
	// assets arrive while the cutscene is still on screen. Filling the
	// slot before transitioning clears keeps an immediate advance trigger
	// from racing past the preload. The pending stage is never drawn,
	// updated, or attached until it becomes current.
	if next == mode.ModeCutscene {
		d.pending = d.factory.Create(mode.ModeActive)
	}
	d.transitioning = false
	d.mu.Unlock()

	// Safe only after the commit above: prev is no longer reachable from
	// Draw, and any in-flight frame against it has already finished.
	if prev != nil {
		prev.Dispose()
	}
	st.AttachInput()

	done <- nil
}

// abort unwinds a failed transition: the previous stage stays current and
// reattached, the failed stage is released, and the failure is reported
// exactly once.
func (d *Director) abort(next mode.Mode, prev, st stage.Stage, err error, done chan<- error) {
	st.Dispose()

	d.mu.Lock()
	if st == d.pending {
		d.pending = nil
	}
	d.transitioning = false
	d.mu.Unlock()

	d.shell.HideBusyIndicator()
	if prev != nil {
		prev.AttachInput()
	}
	d.shell.ReportLoadError(err)
	done <- err
}

// Update ticks the current stage and routes any trigger it raises back
// into Dispatch. The returned channel is nil when no trigger fired.
func (d *Director) Update(ctx context.Context, dt float64) <-chan error {
	d.mu.Lock()
	t := mode.TriggerNone
	if d.current != nil {
		t = d.current.Update(dt)
	}
	d.mu.Unlock()

	if t == mode.TriggerNone {
		return nil
	}
	return d.Dispatch(ctx, t)
}

// Draw renders the current stage. Holding the lock for the duration of the
// draw is what keeps a committing transition from disposing the stage
// mid-frame.
func (d *Director) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current != nil {
		d.current.Draw(screen)
	}
}

// Resize forwards a surface size change to the current stage. Not part of
// the state machine.
func (d *Director) Resize(w, h int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current != nil {
		d.current.Resize(w, h)
	}
}

// Mode reports the current mode.
func (d *Director) Mode() mode.Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// Transitioning reports whether a transition is currently loading.
func (d *Director) Transitioning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transitioning
}
