package gameover

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/descent/internal/application/mode"
	"github.com/younwookim/descent/internal/infrastructure/config"
)

var testDisplay = &config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Framerate: 60}

func TestGameOver_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"gameover.json": {Data: []byte(`{"title":"YOU WERE LOST","hint":"Press Enter"}`)},
	}

	g := New(config.NewFSLoader(fsys), testDisplay)
	require.NoError(t, g.WhenReady(context.Background()))

	assert.Equal(t, "YOU WERE LOST", g.cfg.Title)
	assert.Equal(t, "Press Enter", g.cfg.Hint)
}

func TestGameOver_LoadFailure(t *testing.T) {
	g := New(config.NewFSLoader(fstest.MapFS{}), testDisplay)

	err := g.WhenReady(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gameover.json")
}

func TestGameOver_NoTriggerWhileDetached(t *testing.T) {
	fsys := fstest.MapFS{
		"gameover.json": {Data: []byte(`{"title":"t","hint":"h"}`)},
	}
	g := New(config.NewFSLoader(fsys), testDisplay)
	require.NoError(t, g.WhenReady(context.Background()))

	assert.Equal(t, mode.TriggerNone, g.Update(1.0/60.0))
}
