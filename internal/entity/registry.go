package entity

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridgen/internal/gamedata"
	"github.com/samdwyer/gridgen/internal/world"
)

var (
	// ErrUnknownActorKind is returned when spawning a kind with no definition.
	ErrUnknownActorKind = errors.New("unknown actor kind")
	// ErrCellOccupied is returned when spawning onto a cell that already has an actor.
	ErrCellOccupied = errors.New("cell already occupied")
)

// ActorRegistry owns the live actors on the map.
type ActorRegistry struct {
	defs   *gamedata.ActorDefRegistry
	actors []*Actor
	byPos  map[world.Pos]*Actor
}

// NewActorRegistry creates an empty registry spawning from defs.
func NewActorRegistry(defs *gamedata.ActorDefRegistry) *ActorRegistry {
	return &ActorRegistry{
		defs:  defs,
		byPos: make(map[world.Pos]*Actor),
	}
}

// SpawnActor creates an actor of the given kind at pos.
func (r *ActorRegistry) SpawnActor(ctx context.Context, kind string, pos world.Pos) error {
	def := r.defs.GetByID(kind)
	if def == nil {
		return fmt.Errorf("%w: %q", ErrUnknownActorKind, kind)
	}
	if _, ok := r.byPos[pos]; ok {
		return fmt.Errorf("%w at %s", ErrCellOccupied, pos)
	}

	actor := NewActor(def, pos)
	r.actors = append(r.actors, actor)
	r.byPos[pos] = actor

	trace.SpanFromContext(ctx).AddEvent("actor.spawn", trace.WithAttributes(
		attribute.String("actor.kind", kind),
		attribute.String("actor.id", actor.ID.String()),
		attribute.Int("actor.x", pos.X),
		attribute.Int("actor.y", pos.Y),
	))
	return nil
}

// At returns the actor at pos, or nil.
func (r *ActorRegistry) At(pos world.Pos) *Actor {
	return r.byPos[pos]
}

// All returns the live actors in spawn order.
func (r *ActorRegistry) All() []*Actor {
	return r.actors
}

// Count returns the number of live actors.
func (r *ActorRegistry) Count() int {
	return len(r.actors)
}

// Damage hurts the actor at pos. A killed actor is removed from the registry.
// It returns the actor hit, or nil if the cell was empty.
func (r *ActorRegistry) Damage(pos world.Pos, amount int) *Actor {
	actor := r.byPos[pos]
	if actor == nil {
		return nil
	}

	actor.TakeDamage(amount)
	if !actor.IsAlive() {
		r.remove(actor)
		log.Printf("entity: %s %s destroyed at %s", actor.Name, actor.ID, pos)
	}
	return actor
}

func (r *ActorRegistry) remove(actor *Actor) {
	delete(r.byPos, actor.Pos)
	for i, a := range r.actors {
		if a == actor {
			r.actors = append(r.actors[:i], r.actors[i+1:]...)
			return
		}
	}
}
