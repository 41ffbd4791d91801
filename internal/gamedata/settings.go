package gamedata

import (
	"errors"
	"fmt"
)

// minGridSize leaves room for the outer wall around the spawn cell.
const minGridSize = 3

// GridSettings controls map size and density.
type GridSettings struct {
	Width       int `json:"width" yaml:"width"`
	Height      int `json:"height" yaml:"height"`
	TileWidth   int `json:"tileWidth" yaml:"tileWidth"`
	TileHeight  int `json:"tileHeight" yaml:"tileHeight"`
	WallAmount  int `json:"wallAmount" yaml:"wallAmount"`   // Percent chance an interior cell becomes a wall
	EnemyAmount int `json:"enemyAmount" yaml:"enemyAmount"` // Percent chance a floor cell receives an enemy
}

// PlayerSettings controls the player's stats.
type PlayerSettings struct {
	RayDamage int `json:"rayDamage" yaml:"rayDamage"`
	MaxHealth int `json:"maxHealth" yaml:"maxHealth"`
}

// TileRefs names the tile definitions used by generation.
type TileRefs struct {
	Floor     string `json:"floor" yaml:"floor"`
	Wall      string `json:"wall" yaml:"wall"`
	OuterWall string `json:"outerWall" yaml:"outerWall"`
}

// Settings is the game configuration, loaded once before generation.
type Settings struct {
	Grid       GridSettings   `json:"grid" yaml:"grid"`
	Player     PlayerSettings `json:"player" yaml:"player"`
	Tiles      TileRefs       `json:"tiles" yaml:"tiles"`
	EnemyKinds []string       `json:"enemyKinds" yaml:"enemyKinds"`
}

// LoadSettings loads the default settings from the embedded settings.json file.
func LoadSettings() (Settings, error) {
	return Load[Settings]("settings.json")
}

// MustLoadSettings loads the default settings, panicking on error.
func MustLoadSettings() Settings {
	settings, err := LoadSettings()
	if err != nil {
		panic(err)
	}
	return settings
}

// LoadSettingsOverride reads a YAML file and applies it over base. Fields
// absent from the file keep their base values.
func LoadSettingsOverride(base Settings, path string) (Settings, error) {
	result := base
	result.EnemyKinds = append([]string(nil), base.EnemyKinds...)
	if err := MergeYAML(path, &result); err != nil {
		return base, fmt.Errorf("settings override: %w", err)
	}
	if err := result.Validate(); err != nil {
		return base, fmt.Errorf("invalid settings override %s: %w", path, err)
	}
	return result, nil
}

// Validate checks settings for values generation cannot use.
func (s Settings) Validate() error {
	var errs []error
	if s.Grid.Width < minGridSize || s.Grid.Height < minGridSize {
		errs = append(errs, fmt.Errorf("grid size must be at least %dx%d, got %dx%d",
			minGridSize, minGridSize, s.Grid.Width, s.Grid.Height))
	}
	if s.Grid.TileWidth <= 0 || s.Grid.TileHeight <= 0 {
		errs = append(errs, fmt.Errorf("tile size must be positive, got %dx%d", s.Grid.TileWidth, s.Grid.TileHeight))
	}
	if s.Grid.WallAmount < 0 || s.Grid.WallAmount > 100 {
		errs = append(errs, fmt.Errorf("wallAmount %d out of range [0,100]", s.Grid.WallAmount))
	}
	if s.Grid.EnemyAmount < 0 || s.Grid.EnemyAmount > 100 {
		errs = append(errs, fmt.Errorf("enemyAmount %d out of range [0,100]", s.Grid.EnemyAmount))
	}
	if s.Tiles.Floor == "" || s.Tiles.Wall == "" || s.Tiles.OuterWall == "" {
		errs = append(errs, errors.New("floor, wall and outerWall tile references are required"))
	}
	if len(s.EnemyKinds) != 2 {
		errs = append(errs, fmt.Errorf("expected 2 enemy kinds, got %d", len(s.EnemyKinds)))
	}
	return errors.Join(errs...)
}
