package gamedata

// ActorDef defines an enemy actor type loaded from JSON.
type ActorDef struct {
	ID        string `json:"id"`        // Unique identifier (e.g., "cow")
	Name      string `json:"name"`      // Display name (e.g., "Cow")
	Glyph     string `json:"glyph"`     // Single character for rendering (e.g., "c")
	Color     string `json:"color"`     // Hex color code (e.g., "#F0F0F0")
	MaxHealth int    `json:"maxHealth"` // Starting hit points
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	return glyphRune(a.Glyph)
}

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Actors []ActorDef `json:"actors"`
}

// LoadActors loads actor definitions from the embedded actors.json file.
func LoadActors() ([]ActorDef, error) {
	file, err := Load[ActorsFile]("actors.json")
	if err != nil {
		return nil, err
	}
	return file.Actors, nil
}
