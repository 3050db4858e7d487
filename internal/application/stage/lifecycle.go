package stage

import (
	"context"
	"sync"
)

// Lifecycle implements the readiness, input-attachment and disposal
// bookkeeping shared by every concrete stage. Embed it by value and call
// Begin exactly once from the stage constructor with the stage's load
// function.
type Lifecycle struct {
	ready   chan struct{}
	loadErr error

	mu       sync.Mutex
	attached bool
	disposed bool
}

// Begin starts the load function on its own goroutine. The stage becomes
// ready (or failed) once load returns.
func (l *Lifecycle) Begin(load func(ctx context.Context) error) {
	l.ready = make(chan struct{})
	go func() {
		l.loadErr = load(context.Background())
		close(l.ready)
	}()
}

// WhenReady blocks until the load started by Begin has finished.
func (l *Lifecycle) WhenReady(ctx context.Context) error {
	l.MustLive("WhenReady")
	select {
	case <-l.ready:
		return l.loadErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AttachInput marks the stage as the input receiver.
func (l *Lifecycle) AttachInput() {
	l.MustLive("AttachInput")
	l.mu.Lock()
	l.attached = true
	l.mu.Unlock()
}

// DetachInput stops input delivery. Legal on a never-attached stage.
func (l *Lifecycle) DetachInput() {
	l.mu.Lock()
	l.attached = false
	l.mu.Unlock()
}

// Attached reports whether the stage currently receives input.
func (l *Lifecycle) Attached() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.attached
}

// Dispose marks the stage as dead. Concrete stages wrap this to release
// their own content.
func (l *Lifecycle) Dispose() {
	l.mu.Lock()
	l.disposed = true
	l.attached = false
	l.mu.Unlock()
}

// Disposed reports whether Dispose has been called.
func (l *Lifecycle) Disposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}

// MustLive panics when the stage has been disposed. Using a disposed stage
// is a contract violation, not a recoverable condition.
func (l *Lifecycle) MustLive(op string) {
	if l.Disposed() {
		panic("stage: " + op + " called on disposed stage")
	}
}
