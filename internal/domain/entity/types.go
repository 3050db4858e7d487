package entity

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileHazard
)

// Tile represents a single tile in the playfield
type Tile struct {
	Type   TileType
	Solid  bool
	Damage int
}

// Grid holds the playfield's tile data
type Grid struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// TileAt returns the tile at the given tile coordinates.
// Out-of-bounds reads as a solid wall.
func (g *Grid) TileAt(tx, ty int) Tile {
	if tx < 0 || tx >= g.Width || ty < 0 || ty >= g.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return g.Tiles[ty][tx]
}

// TileAtPixel returns the tile at the given pixel coordinates
func (g *Grid) TileAtPixel(px, py int) Tile {
	return g.TileAt(px/g.TileSize, py/g.TileSize)
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (g *Grid) IsSolidAt(px, py int) bool {
	return g.TileAtPixel(px, py).Solid
}

// IsHazardAt checks if the tile at pixel coordinates is a hazard
func (g *Grid) IsHazardAt(px, py int) bool {
	return g.TileAtPixel(px, py).Type == TileHazard
}
