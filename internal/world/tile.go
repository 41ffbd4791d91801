// Package world provides the tile grid and map generation.
package world

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrMalformedTile is returned when a tile template cannot produce a live tile.
var ErrMalformedTile = errors.New("malformed tile template")

// Pos is a grid coordinate.
type Pos struct {
	X, Y int
}

// String returns the position as "x,y".
func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p offset by the given delta.
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Size is a tile's display size in pixels.
type Size struct {
	W, H int
}

// TileData is an immutable template describing a tile type.
type TileData struct {
	ID           string // Type identifier (e.g., "floor")
	Name         string // Display name
	Glyph        rune   // Display character
	Color        string // Hex color code
	MaxHealth    int    // Health a new tile starts with
	Destructible bool   // Whether damage can destroy the tile
}

// Validate reports whether the template can be instantiated.
func (d TileData) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing id", ErrMalformedTile)
	}
	if d.MaxHealth <= 0 {
		return fmt.Errorf("%w: %s has max health %d", ErrMalformedTile, d.ID, d.MaxHealth)
	}
	return nil
}

// Subscription identifies a registered destroyed observer.
type Subscription uint64

type observer struct {
	id Subscription
	fn func(Pos)
}

var tileSerial atomic.Uint64

// Tile is the live occupant of one grid cell.
type Tile struct {
	Pos          Pos
	ID           string
	Name         string
	Glyph        rune
	Color        string
	Health       int
	MaxHealth    int
	Size         Size
	Destructible bool

	serial    uint64
	observers []observer
	nextSub   Subscription
	destroyed bool
}

// NewTile creates a tile at pos from the given template.
func NewTile(data TileData, pos Pos, size Size) *Tile {
	return &Tile{
		Pos:          pos,
		ID:           data.ID,
		Name:         data.Name,
		Glyph:        data.Glyph,
		Color:        data.Color,
		Health:       data.MaxHealth,
		MaxHealth:    data.MaxHealth,
		Size:         size,
		Destructible: data.Destructible,
		serial:       tileSerial.Add(1),
	}
}

// Serial returns the tile's identity. No two tiles share a serial.
func (t *Tile) Serial() uint64 {
	return t.serial
}

// Is returns true if the tile was created from the given template.
func (t *Tile) Is(data TileData) bool {
	return t.ID == data.ID
}

// Destroyed returns true once the tile's health has been depleted.
func (t *Tile) Destroyed() bool {
	return t.destroyed
}

// OnDestroyed registers fn to be called with the tile's position when its
// health reaches zero.
func (t *Tile) OnDestroyed(fn func(Pos)) Subscription {
	t.nextSub++
	t.observers = append(t.observers, observer{id: t.nextSub, fn: fn})
	return t.nextSub
}

// Unsubscribe removes a destroyed observer. Unknown subscriptions are ignored.
func (t *Tile) Unsubscribe(sub Subscription) {
	for i, o := range t.observers {
		if o.id == sub {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Damage reduces the tile's health and returns true if this call destroyed it.
// Indestructible and already destroyed tiles ignore damage.
func (t *Tile) Damage(amount int) bool {
	if !t.Destructible || t.destroyed || amount <= 0 {
		return false
	}

	t.Health -= amount
	if t.Health > 0 {
		return false
	}
	t.Health = 0
	t.destroyed = true

	// Observers may replace this tile in the grid and unsubscribe themselves.
	observers := make([]observer, len(t.observers))
	copy(observers, t.observers)
	for _, o := range observers {
		o.fn(t.Pos)
	}
	return true
}

// TileFactory produces live tiles from templates.
type TileFactory interface {
	NewTile(data TileData, pos Pos) (*Tile, error)
}

// Factory is the default TileFactory. It rejects malformed templates.
type Factory struct {
	TileSize Size
}

// NewTile validates the template and creates a tile from it.
func (f Factory) NewTile(data TileData, pos Pos) (*Tile, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	return NewTile(data, pos, f.TileSize), nil
}
