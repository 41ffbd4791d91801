// Package entity provides the player and the enemy actors on the map.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/gridgen/internal/gamedata"
	"github.com/samdwyer/gridgen/internal/world"
)

// Actor is an enemy standing on the map.
type Actor struct {
	ID     uuid.UUID          // Unique instance identifier
	Def    *gamedata.ActorDef // Definition the actor was spawned from
	Kind   string             // Actor kind (e.g., "cow")
	Name   string             // Display name
	Symbol rune               // Display symbol
	Pos    world.Pos          // Position on the grid
	HP     int                // Current hit points
	MaxHP  int                // Maximum hit points
}

// NewActor creates an actor from a definition at the given position.
func NewActor(def *gamedata.ActorDef, pos world.Pos) *Actor {
	return &Actor{
		ID:     uuid.New(),
		Def:    def,
		Kind:   def.ID,
		Name:   def.Name,
		Symbol: def.GlyphRune(),
		Pos:    pos,
		HP:     def.MaxHealth,
		MaxHP:  def.MaxHealth,
	}
}

// IsAlive returns true if the actor has hit points left.
func (a *Actor) IsAlive() bool {
	return a.HP > 0
}

// TakeDamage reduces HP and returns the damage actually dealt.
func (a *Actor) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, a.HP)
	a.HP -= actual
	return actual
}

// Color returns the hex color for this actor.
func (a *Actor) Color() string {
	if a.Def != nil {
		return a.Def.Color
	}
	return ""
}
