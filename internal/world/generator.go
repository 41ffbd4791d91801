package world

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/samdwyer/gridgen/internal/telemetry"
)

// ActorSpawner places actors on the map. The generator never reads actor
// state back.
type ActorSpawner interface {
	SpawnActor(ctx context.Context, kind string, pos Pos) error
}

// Result summarizes a generation run.
type Result struct {
	OuterWalls int
	Walls      int
	Actors     int
}

// Generator fills a grid with walls and enemies.
type Generator struct {
	cfg    Config
	grid   *Grid
	actors ActorSpawner
	rng    *rand.Rand

	spawned metric.Int64Counter
}

// NewGenerator creates a generator for cfg. A nil rng uses a time-seeded source.
func NewGenerator(cfg Config, grid *Grid, actors ActorSpawner, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	spawned, err := telemetry.Meter("world").Int64Counter("world.actors_spawned",
		metric.WithDescription("Actors placed by the population pass"))
	if err != nil {
		log.Printf("world: actor counter unavailable: %v", err)
	}

	return &Generator{
		cfg:     cfg,
		grid:    grid,
		actors:  actors,
		rng:     rng,
		spawned: spawned,
	}
}

// Generate initializes the grid then runs the structural and population
// passes. Every cell is attempted even when some fail; failures are logged and
// returned together.
func (g *Generator) Generate(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "grid.generate")
	defer span.End()

	startTime := time.Now()
	var result Result
	var errs []error

	if err := g.cfg.Validate(); err != nil {
		err = fmt.Errorf("invalid config: %w", err)
		log.Printf("world: %v", err)
		errs = append(errs, err)
	}

	if err := g.grid.Initialize(); err != nil {
		errs = append(errs, fmt.Errorf("initialize grid: %w", err))
	}

	outer, walls, err := g.placeWalls(ctx)
	result.OuterWalls, result.Walls = outer, walls
	if err != nil {
		errs = append(errs, err)
	}

	result.Actors, err = g.populate(ctx)
	if err != nil {
		errs = append(errs, err)
	}

	err = errors.Join(errs...)
	telemetry.RecordError(ctx, err)

	span.SetAttributes(
		attribute.Int("grid.width", g.cfg.Width),
		attribute.Int("grid.height", g.cfg.Height),
		attribute.Int("grid.wall_amount", g.cfg.WallAmount),
		attribute.Int("grid.enemy_amount", g.cfg.EnemyAmount),
		attribute.Int("grid.outer_walls", result.OuterWalls),
		attribute.Int("grid.walls", result.Walls),
		attribute.Int("grid.actors", result.Actors),
		attribute.Int64("grid.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return result, err
}

// roll returns true with the given percentage chance, rolling 1-100.
func (g *Generator) roll(percent int) bool {
	return g.rng.Intn(100)+1 <= percent
}

// placeWalls stamps the outer ring and scatters inner walls. The spawn cell
// is excluded by position so it stays floor.
func (g *Generator) placeWalls(ctx context.Context) (outer, walls int, err error) {
	_, span := telemetry.Tracer("world").Start(ctx, "grid.place_walls")
	defer span.End()

	var errs []error
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			pos := Pos{X: x, Y: y}

			switch {
			case g.cfg.IsBoundary(pos):
				if err := g.grid.Set(pos, g.cfg.OuterWall); err != nil {
					errs = append(errs, err)
					continue
				}
				outer++
			case g.cfg.IsInterior(pos) && pos != g.cfg.Spawn && g.roll(g.cfg.WallAmount):
				if err := g.grid.Set(pos, g.cfg.Wall); err != nil {
					errs = append(errs, err)
					continue
				}
				walls++
			}
		}
	}

	span.SetAttributes(
		attribute.Int("grid.outer_walls", outer),
		attribute.Int("grid.walls", walls),
	)
	return outer, walls, errors.Join(errs...)
}

// populate scatters enemies over the floor left by placeWalls.
func (g *Generator) populate(ctx context.Context) (int, error) {
	ctx, span := telemetry.Tracer("world").Start(ctx, "grid.populate")
	defer span.End()

	spawned := 0
	var errs []error
	for y := 0; y < g.cfg.Height; y++ {
		for x := 0; x < g.cfg.Width; x++ {
			pos := Pos{X: x, Y: y}
			if pos == g.cfg.Spawn {
				continue
			}

			tile, err := g.grid.Tile(pos)
			if err != nil || tile == nil || !tile.Is(g.cfg.Floor) {
				continue
			}
			if !g.roll(g.cfg.EnemyAmount) {
				continue
			}

			kind := g.cfg.EnemyKinds[g.rng.Intn(2)]
			if err := g.actors.SpawnActor(ctx, kind, pos); err != nil {
				err = fmt.Errorf("spawn %s at %s: %w", kind, pos, err)
				log.Printf("world: %v", err)
				errs = append(errs, err)
				continue
			}
			spawned++
			if g.spawned != nil {
				g.spawned.Add(ctx, 1, metric.WithAttributes(attribute.String("actor.kind", kind)))
			}
		}
	}

	span.SetAttributes(attribute.Int("grid.actors", spawned))
	return spawned, errors.Join(errs...)
}
