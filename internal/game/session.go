package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridgen/internal/entity"
	"github.com/samdwyer/gridgen/internal/gamedata"
	"github.com/samdwyer/gridgen/internal/telemetry"
	"github.com/samdwyer/gridgen/internal/world"
)

// Session holds one generated map and everything standing on it.
type Session struct {
	Settings gamedata.Settings
	World    world.Config
	Grid     *world.Grid
	Actors   *entity.ActorRegistry
	Player   *entity.Player
	Result   world.Result
	State    State
	Message  string
}

// NewSession loads game data, generates a map and places the player on the
// spawn cell. Configuration and generation problems are logged and the
// session carries on with whatever could be built.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.new")
	defer span.End()

	settings, err := gamedata.LoadSettings()
	if err != nil {
		return nil, err
	}
	if cfg.SettingsPath != "" {
		settings, err = gamedata.LoadSettingsOverride(settings, cfg.SettingsPath)
		if err != nil {
			log.Printf("game: using default settings: %v", err)
		}
	}

	tiles, err := gamedata.LoadTileRegistry()
	if err != nil {
		return nil, err
	}
	actorDefs, err := gamedata.LoadActorDefRegistry()
	if err != nil {
		return nil, err
	}

	worldCfg, err := BuildWorldConfig(settings, tiles)
	if err != nil {
		log.Printf("game: %v", err)
		telemetry.RecordError(ctx, err)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	grid := world.NewGrid(worldCfg.Width, worldCfg.Height, worldCfg.Floor, world.Factory{TileSize: worldCfg.TileSize})
	actors := entity.NewActorRegistry(actorDefs)
	generator := world.NewGenerator(worldCfg, grid, actors, rng)

	result, err := generator.Generate(ctx)
	if err != nil {
		log.Printf("game: map generated with errors: %v", err)
	}

	s := &Session{
		Settings: settings,
		World:    worldCfg,
		Grid:     grid,
		Actors:   actors,
		Player:   entity.NewPlayer(worldCfg.Spawn, settings.Player.MaxHealth, settings.Player.RayDamage),
		Result:   result,
		State:    StatePlaying,
		Message:  fmt.Sprintf("%d enemies roam the map", result.Actors),
	}
	s.updateState()

	span.SetAttributes(
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Int("player.start_x", s.Player.Pos.X),
		attribute.Int("player.start_y", s.Player.Pos.Y),
		attribute.Int("grid.actors", result.Actors),
	)
	return s, nil
}

// BuildWorldConfig resolves the settings' tile references into a generator
// configuration. Unresolved references are reported in the error and left as
// zero templates.
func BuildWorldConfig(settings gamedata.Settings, tiles *gamedata.TileRegistry) (world.Config, error) {
	var errs []error
	if err := settings.Validate(); err != nil {
		errs = append(errs, err)
	}

	lookup := func(name, id string) world.TileData {
		def := tiles.GetByID(id)
		if def == nil {
			errs = append(errs, fmt.Errorf("missing %s tile %q", name, id))
			return world.TileData{}
		}
		return TileData(def)
	}

	cfg := world.Config{
		Width:       settings.Grid.Width,
		Height:      settings.Grid.Height,
		TileSize:    world.Size{W: settings.Grid.TileWidth, H: settings.Grid.TileHeight},
		WallAmount:  settings.Grid.WallAmount,
		EnemyAmount: settings.Grid.EnemyAmount,
		Floor:       lookup("floor", settings.Tiles.Floor),
		Wall:        lookup("wall", settings.Tiles.Wall),
		OuterWall:   lookup("outer wall", settings.Tiles.OuterWall),
		Spawn:       world.DefaultSpawn,
	}
	copy(cfg.EnemyKinds[:], settings.EnemyKinds)

	return cfg, errors.Join(errs...)
}

// TileData converts a loaded tile definition into a grid template.
func TileData(def *gamedata.TileDef) world.TileData {
	return world.TileData{
		ID:           def.ID,
		Name:         def.Name,
		Glyph:        def.GlyphRune(),
		Color:        def.Color,
		MaxHealth:    def.MaxHealth,
		Destructible: def.Destructible,
	}
}

// Passable returns true if the player can step onto pos.
func (s *Session) Passable(pos world.Pos) bool {
	if !s.Grid.InBounds(pos) {
		return false
	}
	tile, err := s.Grid.Tile(pos)
	if err != nil || tile == nil || !tile.Is(s.World.Floor) {
		return false
	}
	return s.Actors.At(pos) == nil
}

// TryMove turns the player toward the delta and moves if the target is
// passable. It returns true if the player moved.
func (s *Session) TryMove(dx, dy int) bool {
	s.Player.Face(dx, dy)
	if !s.Passable(s.Player.Pos.Add(dx, dy)) {
		return false
	}
	s.Player.Move(dx, dy)
	return true
}

// RayHit describes what a fired ray struck.
type RayHit struct {
	Pos       world.Pos
	Actor     *entity.Actor // Set when an actor was hit
	Tile      *world.Tile   // Set when a solid tile was hit
	Destroyed bool
}

// FireRay shoots from the player in the facing direction and damages the
// first actor or non-floor tile in the way. It returns nil if the ray left
// the grid without hitting anything.
func (s *Session) FireRay(ctx context.Context) *RayHit {
	_, span := telemetry.Tracer("game").Start(ctx, "session.fire_ray")
	defer span.End()

	facing := s.Player.Facing
	if facing == (world.Pos{}) {
		return nil
	}

	damage := s.Player.RayDamage
	for pos := s.Player.Pos.Add(facing.X, facing.Y); s.Grid.InBounds(pos); pos = pos.Add(facing.X, facing.Y) {
		if actor := s.Actors.Damage(pos, damage); actor != nil {
			hit := &RayHit{Pos: pos, Actor: actor, Destroyed: !actor.IsAlive()}
			if hit.Destroyed {
				s.Message = actor.Name + " destroyed"
			} else {
				s.Message = fmt.Sprintf("%s hit (%d/%d)", actor.Name, actor.HP, actor.MaxHP)
			}
			s.updateState()
			span.SetAttributes(
				attribute.String("ray.target", actor.Kind),
				attribute.Bool("ray.destroyed", hit.Destroyed),
			)
			return hit
		}

		tile, err := s.Grid.Tile(pos)
		if err != nil || tile == nil || tile.Is(s.World.Floor) {
			continue
		}

		hit := &RayHit{Pos: pos, Tile: tile, Destroyed: tile.Damage(damage)}
		switch {
		case hit.Destroyed:
			s.Message = tile.Name + " crumbles"
		case tile.Destructible:
			s.Message = fmt.Sprintf("%s cracks (%d/%d)", tile.Name, tile.Health, tile.MaxHealth)
		default:
			s.Message = tile.Name + " holds"
		}
		span.SetAttributes(
			attribute.String("ray.target", tile.ID),
			attribute.Bool("ray.destroyed", hit.Destroyed),
		)
		return hit
	}

	s.Message = "The ray fades"
	return nil
}

func (s *Session) updateState() {
	if s.Actors.Count() == 0 {
		s.State = StateCleared
		s.Message = "All enemies cleared"
	}
}
