package playing

import (
	"context"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/descent/internal/application/mode"
	"github.com/younwookim/descent/internal/infrastructure/config"
)

var testDisplay = &config.DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Framerate: 60}

const testLayout = `{
  "id": "test",
  "name": "Test Shaft",
  "size": { "width": 64, "height": 64, "tileSize": 16 },
  "playerSpawn": { "x": 20, "y": 20 },
  "layers": {
    "collision": [
      "####",
      "#..#",
      "#.^#",
      "####"
    ]
  },
  "tileMapping": {
    "#": { "type": "wall", "solid": true, "damage": 0 },
    "^": { "type": "hazard", "solid": false, "damage": 1 }
  }
}`

const testPalette = `{
  "background": "#1a1a2e",
  "wall": "#505064",
  "hazard": "#c83232",
  "player": "#64c864"
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"stages/test.json": {Data: []byte(testLayout)},
		"palette.json":     {Data: []byte(testPalette)},
	}
}

func newTestPlaying(t *testing.T) *Playing {
	t.Helper()
	p := New(testFS(), testDisplay, "test")
	require.NoError(t, p.WhenReady(context.Background()))
	return p
}

func TestPlaying_Load(t *testing.T) {
	p := newTestPlaying(t)

	assert.Equal(t, "Test Shaft", p.name)
	assert.Equal(t, 4, p.grid.Width)
	assert.Equal(t, 4, p.grid.Height)
	assert.Equal(t, 20.0, p.player.X)
	assert.Equal(t, 20.0, p.player.Y)
}

func TestPlaying_Load_MissingLayout(t *testing.T) {
	p := New(fstest.MapFS{"palette.json": {Data: []byte(testPalette)}}, testDisplay, "test")

	err := p.WhenReady(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stages/test.json")
}

func TestPlaying_Load_BadPalette(t *testing.T) {
	fsys := testFS()
	fsys["palette.json"] = &fstest.MapFile{Data: []byte(`{"background":"nope"}`)}
	p := New(fsys, testDisplay, "test")

	assert.Error(t, p.WhenReady(context.Background()))
}

func TestPlaying_Update_DetachedIsInert(t *testing.T) {
	p := newTestPlaying(t)

	assert.Equal(t, mode.TriggerNone, p.Update(1.0/60.0))
	assert.Zero(t, p.elapsed)
}

func TestPlaying_Update_HazardFails(t *testing.T) {
	p := newTestPlaying(t)
	p.AttachInput()

	// Drop the player onto the hazard tile at (2,2): pixels 32..47.
	p.player.X = 36
	p.player.Y = 36

	assert.Equal(t, mode.TriggerFail, p.Update(1.0/60.0))
}

func TestBuildGrid(t *testing.T) {
	var cfg config.StageConfig
	require.NoError(t, json.Unmarshal([]byte(testLayout), &cfg))

	grid, err := buildGrid(&cfg)
	require.NoError(t, err)

	assert.True(t, grid.TileAt(0, 0).Solid)
	assert.False(t, grid.TileAt(1, 1).Solid)
	assert.True(t, grid.IsHazardAt(40, 40))
	assert.Equal(t, 1, grid.TileAt(2, 2).Damage)
}

func TestBuildGrid_Invalid(t *testing.T) {
	_, err := buildGrid(&config.StageConfig{ID: "broken"})
	assert.Error(t, err)

	_, err = buildGrid(&config.StageConfig{
		ID:   "flat",
		Size: config.StageSizeConfig{Width: 64, TileSize: 16},
	})
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#c83232")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xc8), c.R)
	assert.Equal(t, uint8(0x32), c.G)
	assert.Equal(t, uint8(0x32), c.B)
	assert.Equal(t, uint8(255), c.A)

	_, err = parseColor("red")
	assert.Error(t, err)
}
