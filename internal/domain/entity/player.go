package entity

// Player is the controllable avatar inside the active session.
// Position is the top-left corner in pixels.
type Player struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Move advances the player along (dx, dy), sliding along solid tiles.
// Each axis is resolved independently so walls don't block the other axis.
func (p *Player) Move(g *Grid, dx, dy, dt float64) {
	nx := p.X + dx*p.Speed*dt
	if p.canOccupy(g, nx, p.Y) {
		p.X = nx
	}
	ny := p.Y + dy*p.Speed*dt
	if p.canOccupy(g, p.X, ny) {
		p.Y = ny
	}
}

// canOccupy checks all four corners of the player box against solid tiles
func (p *Player) canOccupy(g *Grid, x, y float64) bool {
	s := p.Size - 1
	return !g.IsSolidAt(int(x), int(y)) &&
		!g.IsSolidAt(int(x+s), int(y)) &&
		!g.IsSolidAt(int(x), int(y+s)) &&
		!g.IsSolidAt(int(x+s), int(y+s))
}

// OnHazard reports whether the player's center rests on a hazard tile
func (p *Player) OnHazard(g *Grid) bool {
	return g.IsHazardAt(int(p.X+p.Size/2), int(p.Y+p.Size/2))
}
