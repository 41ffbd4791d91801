package gamedata

import "errors"

// TileRegistry holds loaded tile definitions keyed by ID.
type TileRegistry struct {
	tiles map[string]*TileDef
	all   []TileDef
}

// NewTileRegistry creates a registry from loaded tile definitions.
func NewTileRegistry(tiles []TileDef) *TileRegistry {
	registry := &TileRegistry{
		tiles: make(map[string]*TileDef),
		all:   tiles,
	}
	for i := range tiles {
		registry.tiles[tiles[i].ID] = &tiles[i]
	}
	return registry
}

// LoadTileRegistry loads and creates a registry from the embedded tiles.json.
func LoadTileRegistry() (*TileRegistry, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	return NewTileRegistry(tiles), nil
}

// MustLoadTileRegistry loads a registry, panicking on error.
func MustLoadTileRegistry() *TileRegistry {
	registry, err := LoadTileRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the tile definition with the given ID, or nil if not found.
func (r *TileRegistry) GetByID(id string) *TileDef {
	return r.tiles[id]
}

// All returns all tile definitions.
func (r *TileRegistry) All() []TileDef {
	return r.all
}

// Count returns the number of tile types in the registry.
func (r *TileRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ActorDefRegistry
// =============================================================================

// ActorDefRegistry holds loaded actor definitions keyed by ID.
type ActorDefRegistry struct {
	actors map[string]*ActorDef
	all    []ActorDef
}

// NewActorDefRegistry creates a registry from loaded actor definitions.
func NewActorDefRegistry(actors []ActorDef) *ActorDefRegistry {
	registry := &ActorDefRegistry{
		actors: make(map[string]*ActorDef),
		all:    actors,
	}
	for i := range actors {
		registry.actors[actors[i].ID] = &actors[i]
	}
	return registry
}

// LoadActorDefRegistry loads and creates a registry from the embedded actors.json.
func LoadActorDefRegistry() (*ActorDefRegistry, error) {
	actors, err := LoadActors()
	if err != nil {
		return nil, err
	}
	if len(actors) == 0 {
		return nil, errors.New("no actors loaded from actors.json")
	}
	return NewActorDefRegistry(actors), nil
}

// MustLoadActorDefRegistry loads a registry, panicking on error.
func MustLoadActorDefRegistry() *ActorDefRegistry {
	registry, err := LoadActorDefRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the actor definition with the given ID, or nil if not found.
func (r *ActorDefRegistry) GetByID(id string) *ActorDef {
	return r.actors[id]
}

// All returns all actor definitions.
func (r *ActorDefRegistry) All() []ActorDef {
	return r.all
}

// Count returns the number of actor types in the registry.
func (r *ActorDefRegistry) Count() int {
	return len(r.all)
}
