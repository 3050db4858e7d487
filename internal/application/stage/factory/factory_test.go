package factory

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/descent/internal/application/mode"
	"github.com/younwookim/descent/internal/infrastructure/config"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"menu.json":     {Data: []byte(`{"title":"DESCENT","entries":["Start"],"hint":""}`)},
		"cutscene.json": {Data: []byte(`{"lines":["one"],"secondsPerLine":1}`)},
		"gameover.json": {Data: []byte(`{"title":"t","hint":"h"}`)},
		"palette.json": {Data: []byte(`{
			"background":"#1a1a2e","wall":"#505064","hazard":"#c83232","player":"#64c864"}`)},
		"stages/intro.json": {Data: []byte(`{
			"id":"intro","name":"n",
			"size":{"width":48,"height":48,"tileSize":16},
			"playerSpawn":{"x":20,"y":20},
			"layers":{"collision":["###","#.#","###"]},
			"tileMapping":{"#":{"type":"wall","solid":true}}}`)},
	}
}

func TestFactory_CreatesEveryMode(t *testing.T) {
	display := &config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Framerate: 60}
	f := New(testFS(), display, "intro")

	for _, m := range []mode.Mode{mode.ModeStart, mode.ModeCutscene, mode.ModeActive, mode.ModeFailed} {
		t.Run(m.String(), func(t *testing.T) {
			st := f.Create(m)
			require.NotNil(t, st)
			assert.NoError(t, st.WhenReady(context.Background()))
			st.Dispose()
		})
	}
}

func TestFactory_UnknownModePanics(t *testing.T) {
	display := &config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240}
	f := New(testFS(), display, "intro")

	assert.Panics(t, func() { f.Create(mode.Mode(99)) })
}
