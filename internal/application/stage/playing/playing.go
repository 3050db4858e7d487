// Package playing provides the active play-session stage: the tile grid,
// the player avatar, and the fail condition.
package playing

import (
	"context"
	"fmt"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/descent/internal/application/mode"
	"github.com/younwookim/descent/internal/application/stage"
	"github.com/younwookim/descent/internal/domain/entity"
	"github.com/younwookim/descent/internal/infrastructure/assets"
	"github.com/younwookim/descent/internal/infrastructure/config"
)

// palette holds the session's resolved colors
type palette struct {
	bg     color.RGBA
	wall   color.RGBA
	hazard color.RGBA
	player color.RGBA
}

// Playing is the active play-session stage. Its load fetches the stage
// layout and the color palette in parallel.
type Playing struct {
	stage.Lifecycle
	fsys    fs.FS
	stageID string

	grid    *entity.Grid
	player  entity.Player
	colors  palette
	name    string
	elapsed float64
	w, h    int
}

// New creates the session stage for the given stage id and starts its load.
func New(fsys fs.FS, display *config.DisplayConfig, stageID string) *Playing {
	p := &Playing{fsys: fsys, stageID: stageID, w: display.ScreenWidth, h: display.ScreenHeight}
	p.Begin(p.load)
	return p
}

func (p *Playing) load(ctx context.Context) error {
	layoutPath := "stages/" + p.stageID + ".json"

	bundle, err := assets.Load(ctx, p.fsys, layoutPath, "palette.json")
	if err != nil {
		return fmt.Errorf("load session assets: %w", err)
	}

	var layout config.StageConfig
	if err := bundle.Decode(layoutPath, &layout); err != nil {
		return err
	}
	var pal config.PaletteConfig
	if err := bundle.Decode("palette.json", &pal); err != nil {
		return err
	}

	grid, err := buildGrid(&layout)
	if err != nil {
		return err
	}
	colors, err := buildPalette(&pal)
	if err != nil {
		return err
	}

	p.grid = grid
	p.colors = colors
	p.name = layout.Name
	p.player = entity.Player{
		X:     float64(layout.PlayerSpawn.X),
		Y:     float64(layout.PlayerSpawn.Y),
		Size:  8,
		Speed: 96,
	}
	return nil
}

// buildGrid converts a StageConfig layout into a tile grid
func buildGrid(cfg *config.StageConfig) (*entity.Grid, error) {
	if cfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("stage %s: invalid tile size %d", cfg.ID, cfg.Size.TileSize)
	}
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)
	if tileWidth <= 0 || tileHeight == 0 {
		return nil, fmt.Errorf("stage %s: empty layout", cfg.ID)
	}

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range row {
			if x >= tileWidth {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			var tileType entity.TileType
			switch mapping.Type {
			case "wall":
				tileType = entity.TileWall
			case "hazard":
				tileType = entity.TileHazard
			default:
				tileType = entity.TileEmpty
			}

			tiles[y][x] = entity.Tile{
				Type:   tileType,
				Solid:  mapping.Solid,
				Damage: mapping.Damage,
			}
		}
	}

	return &entity.Grid{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}, nil
}

func buildPalette(cfg *config.PaletteConfig) (palette, error) {
	var p palette
	var err error
	if p.bg, err = parseColor(cfg.Background); err != nil {
		return p, err
	}
	if p.wall, err = parseColor(cfg.Wall); err != nil {
		return p, err
	}
	if p.hazard, err = parseColor(cfg.Hazard); err != nil {
		return p, err
	}
	if p.player, err = parseColor(cfg.Player); err != nil {
		return p, err
	}
	return p, nil
}

// parseColor converts "#rrggbb" to an opaque RGBA color
func parseColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{r, g, b, 255}, nil
}

// Update moves the player and reports the fail trigger when a hazard is
// touched.
func (p *Playing) Update(dt float64) mode.Trigger {
	if !p.Attached() {
		return mode.TriggerNone
	}
	p.elapsed += dt

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	p.player.Move(p.grid, dx, dy, dt)

	if p.player.OnHazard(p.grid) {
		return mode.TriggerFail
	}
	return mode.TriggerNone
}

// Draw renders the grid, the player and the HUD.
func (p *Playing) Draw(screen *ebiten.Image) {
	p.MustLive("Draw")
	screen.Fill(p.colors.bg)

	ts := float64(p.grid.TileSize)
	for ty := 0; ty < p.grid.Height; ty++ {
		for tx := 0; tx < p.grid.Width; tx++ {
			tile := p.grid.TileAt(tx, ty)
			switch tile.Type {
			case entity.TileWall:
				ebitenutil.DrawRect(screen, float64(tx)*ts, float64(ty)*ts, ts, ts, p.colors.wall)
			case entity.TileHazard:
				ebitenutil.DrawRect(screen, float64(tx)*ts, float64(ty)*ts, ts, ts, p.colors.hazard)
			}
		}
	}

	ebitenutil.DrawRect(screen, p.player.X, p.player.Y, p.player.Size, p.player.Size, p.colors.player)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %.1fs", p.name, p.elapsed), 8, 4)
}

// Resize adapts the layout to a new surface size.
func (p *Playing) Resize(w, h int) {
	p.w, p.h = w, h
}
