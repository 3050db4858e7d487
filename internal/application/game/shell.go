package game

import (
	"log"
	"sync"
	"sync/atomic"
)

// Shell surfaces the director's loading lifecycle to the player: a busy
// flag drawn as an overlay while a stage loads, and the most recent load
// failure. It satisfies the director's Shell interface.
type Shell struct {
	busy atomic.Bool

	mu      sync.Mutex
	lastErr error
}

// NewShell creates an idle shell.
func NewShell() *Shell {
	return &Shell{}
}

// ShowBusyIndicator marks a load in progress. A fresh attempt clears the
// previous failure.
func (s *Shell) ShowBusyIndicator() {
	s.mu.Lock()
	s.lastErr = nil
	s.mu.Unlock()
	s.busy.Store(true)
}

// HideBusyIndicator marks the load finished.
func (s *Shell) HideBusyIndicator() {
	s.busy.Store(false)
}

// ReportLoadError records a load failure for on-screen display.
func (s *Shell) ReportLoadError(err error) {
	log.Printf("stage load failed: %v", err)
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// Busy reports whether a stage load is in flight.
func (s *Shell) Busy() bool {
	return s.busy.Load()
}

// LoadError returns the most recent load failure, or nil.
func (s *Shell) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
