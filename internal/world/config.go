package world

import (
	"errors"
	"fmt"
)

// DefaultSpawn is the cell reserved for the player.
var DefaultSpawn = Pos{X: 1, Y: 1}

// MinGridSize is the smallest width or height with an interior cell inside
// the outer ring.
const MinGridSize = 3

// Config holds everything the generator needs. It is read-only once built.
type Config struct {
	Width, Height int
	TileSize      Size

	// Percentages in [0, 100].
	WallAmount  int
	EnemyAmount int

	Floor     TileData
	Wall      TileData
	OuterWall TileData

	// Spawn is kept as Floor and never receives an enemy.
	Spawn Pos

	// EnemyKinds are the two actor kinds chosen between with equal odds.
	EnemyKinds [2]string
}

// Validate checks the configuration for values the generator cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Width < MinGridSize || c.Height < MinGridSize {
		errs = append(errs, fmt.Errorf("grid size must be at least %dx%d, got %dx%d",
			MinGridSize, MinGridSize, c.Width, c.Height))
	} else if !c.IsInterior(c.Spawn) {
		errs = append(errs, fmt.Errorf("spawn %s is not inside the outer wall", c.Spawn))
	}
	if c.WallAmount < 0 || c.WallAmount > 100 {
		errs = append(errs, fmt.Errorf("wall amount %d out of range [0,100]", c.WallAmount))
	}
	if c.EnemyAmount < 0 || c.EnemyAmount > 100 {
		errs = append(errs, fmt.Errorf("enemy amount %d out of range [0,100]", c.EnemyAmount))
	}
	for i, kind := range c.EnemyKinds {
		if kind == "" {
			errs = append(errs, fmt.Errorf("enemy kind %d is empty", i))
		}
	}
	for name, data := range map[string]TileData{"floor": c.Floor, "wall": c.Wall, "outer wall": c.OuterWall} {
		if err := data.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s template: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// IsBoundary returns true if pos lies on the grid's outer ring.
func (c Config) IsBoundary(pos Pos) bool {
	return pos.X == 0 || pos.Y == 0 || pos.X == c.Width-1 || pos.Y == c.Height-1
}

// IsInterior returns true if pos lies strictly inside the outer ring.
func (c Config) IsInterior(pos Pos) bool {
	return pos.X > 0 && pos.Y > 0 && pos.X < c.Width-1 && pos.Y < c.Height-1
}
