package stage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_WhenReady_Success(t *testing.T) {
	var l Lifecycle
	l.Begin(func(ctx context.Context) error { return nil })

	err := l.WhenReady(context.Background())
	require.NoError(t, err)

	// Second await reports the same outcome
	assert.NoError(t, l.WhenReady(context.Background()))
}

func TestLifecycle_WhenReady_LoadError(t *testing.T) {
	loadErr := errors.New("asset fetch failed")
	var l Lifecycle
	l.Begin(func(ctx context.Context) error { return loadErr })

	err := l.WhenReady(context.Background())
	assert.ErrorIs(t, err, loadErr)
	assert.ErrorIs(t, l.WhenReady(context.Background()), loadErr)
}

func TestLifecycle_WhenReady_ContextCanceled(t *testing.T) {
	gate := make(chan struct{})
	var l Lifecycle
	l.Begin(func(ctx context.Context) error {
		<-gate
		return nil
	})
	defer close(gate)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := l.WhenReady(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLifecycle_AttachDetach(t *testing.T) {
	var l Lifecycle
	l.Begin(func(ctx context.Context) error { return nil })

	assert.False(t, l.Attached())

	l.AttachInput()
	assert.True(t, l.Attached())

	// Attach is idempotent
	l.AttachInput()
	assert.True(t, l.Attached())

	l.DetachInput()
	assert.False(t, l.Attached())

	// Detach twice in a row: no error, no state change
	l.DetachInput()
	assert.False(t, l.Attached())
}

func TestLifecycle_DetachWithoutAttach(t *testing.T) {
	var l Lifecycle
	l.Begin(func(ctx context.Context) error { return nil })

	assert.NotPanics(t, func() { l.DetachInput() })
	assert.False(t, l.Attached())
}

func TestLifecycle_Dispose(t *testing.T) {
	var l Lifecycle
	l.Begin(func(ctx context.Context) error { return nil })
	require.NoError(t, l.WhenReady(context.Background()))

	l.AttachInput()
	l.Dispose()

	assert.True(t, l.Disposed())
	assert.False(t, l.Attached(), "dispose clears attachment")
}

func TestLifecycle_UseAfterDisposePanics(t *testing.T) {
	var l Lifecycle
	l.Begin(func(ctx context.Context) error { return nil })
	require.NoError(t, l.WhenReady(context.Background()))
	l.Dispose()

	assert.Panics(t, func() { l.AttachInput() })
	assert.Panics(t, func() { _ = l.WhenReady(context.Background()) })
	assert.Panics(t, func() { l.MustLive("Draw") })
}
