package gamedata

import "unicode/utf8"

// TileDef defines a tile type loaded from JSON.
type TileDef struct {
	ID           string `json:"id"`           // Unique identifier (e.g., "wall")
	Name         string `json:"name"`         // Display name (e.g., "Wall")
	Glyph        string `json:"glyph"`        // Single character for rendering (e.g., "#")
	Color        string `json:"color"`        // Hex color code (e.g., "#A0805A")
	MaxHealth    int    `json:"maxHealth"`    // Health a fresh tile starts with
	Destructible bool   `json:"destructible"` // Whether the ray can break it
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	return glyphRune(t.Glyph)
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

func glyphRune(glyph string) rune {
	r, size := utf8.DecodeRuneInString(glyph)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}
