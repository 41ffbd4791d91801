package entity

import "github.com/samdwyer/gridgen/internal/world"

// Player is the character controlled from the keyboard.
type Player struct {
	Pos       world.Pos // Current position on the grid
	Facing    world.Pos // Unit direction the ray fires in
	Symbol    rune      // Display symbol
	HP        int       // Current hit points
	MaxHP     int       // Maximum hit points
	RayDamage int       // Damage dealt by one ray
}

// NewPlayer creates a player at the given position facing right.
func NewPlayer(pos world.Pos, maxHP, rayDamage int) *Player {
	return &Player{
		Pos:       pos,
		Facing:    world.Pos{X: 1, Y: 0},
		Symbol:    '@',
		HP:        maxHP,
		MaxHP:     maxHP,
		RayDamage: rayDamage,
	}
}

// Move updates the position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.Pos = p.Pos.Add(dx, dy)
}

// Face turns the player toward the given delta.
func (p *Player) Face(dx, dy int) {
	p.Facing = world.Pos{X: dx, Y: dy}
}
