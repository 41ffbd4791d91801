package entity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samdwyer/gridgen/internal/gamedata"
	"github.com/samdwyer/gridgen/internal/world"
)

func givenARegistry() *ActorRegistry {
	defs := gamedata.NewActorDefRegistry([]gamedata.ActorDef{
		{ID: "cow", Name: "Cow", Glyph: "c", Color: "#F0F0F0", MaxHealth: 4},
		{ID: "fly", Name: "Fly", Glyph: "f", Color: "#8CDC3C", MaxHealth: 1},
	})
	return NewActorRegistry(defs)
}

func TestSpawnActor(t *testing.T) {
	require := require.New(t)
	registry := givenARegistry()
	ctx := context.Background()

	require.NoError(registry.SpawnActor(ctx, "cow", world.Pos{X: 2, Y: 3}))
	require.NoError(registry.SpawnActor(ctx, "fly", world.Pos{X: 4, Y: 3}))
	require.Equal(2, registry.Count())

	cow := registry.At(world.Pos{X: 2, Y: 3})
	require.NotNil(cow)
	require.Equal("cow", cow.Kind)
	require.Equal('c', cow.Symbol)
	require.Equal(4, cow.HP)
	require.Equal("#F0F0F0", cow.Color())

	fly := registry.At(world.Pos{X: 4, Y: 3})
	require.NotEqual(cow.ID, fly.ID)
	require.Nil(registry.At(world.Pos{X: 0, Y: 0}))
}

func TestSpawnActorErrors(t *testing.T) {
	require := require.New(t)
	registry := givenARegistry()
	ctx := context.Background()
	pos := world.Pos{X: 1, Y: 2}

	require.ErrorIs(registry.SpawnActor(ctx, "dragon", pos), ErrUnknownActorKind)
	require.NoError(registry.SpawnActor(ctx, "cow", pos))
	require.ErrorIs(registry.SpawnActor(ctx, "fly", pos), ErrCellOccupied)
	require.Equal(1, registry.Count())
}

func TestDamageActor(t *testing.T) {
	require := require.New(t)
	registry := givenARegistry()
	ctx := context.Background()
	cowPos := world.Pos{X: 2, Y: 2}
	flyPos := world.Pos{X: 3, Y: 2}
	require.NoError(registry.SpawnActor(ctx, "cow", cowPos))
	require.NoError(registry.SpawnActor(ctx, "fly", flyPos))

	require.Nil(registry.Damage(world.Pos{X: 9, Y: 9}, 1))

	cow := registry.Damage(cowPos, 3)
	require.NotNil(cow)
	require.Equal(1, cow.HP)
	require.True(cow.IsAlive())
	require.Same(cow, registry.At(cowPos))

	registry.Damage(cowPos, 10)
	require.False(cow.IsAlive())
	require.Equal(0, cow.HP)
	require.Nil(registry.At(cowPos))

	require.Len(registry.All(), 1)
	require.Equal("fly", registry.All()[0].Kind)
}

func TestActorTakeDamage(t *testing.T) {
	actor := NewActor(&gamedata.ActorDef{ID: "fly", Name: "Fly", Glyph: "f", MaxHealth: 2}, world.Pos{})

	tests := []struct {
		amount, dealt, hp int
	}{
		{0, 0, 2},
		{-1, 0, 2},
		{1, 1, 1},
		{5, 1, 0},
	}
	for _, tt := range tests {
		if got := actor.TakeDamage(tt.amount); got != tt.dealt {
			t.Errorf("TakeDamage(%d) = %d, want %d", tt.amount, got, tt.dealt)
		}
		if actor.HP != tt.hp {
			t.Errorf("After TakeDamage(%d) HP = %d, want %d", tt.amount, actor.HP, tt.hp)
		}
	}
}

func TestPlayerMovement(t *testing.T) {
	player := NewPlayer(world.DefaultSpawn, 10, 2)

	if player.Pos != world.DefaultSpawn {
		t.Errorf("NewPlayer().Pos = %v, want %v", player.Pos, world.DefaultSpawn)
	}
	if player.HP != 10 || player.MaxHP != 10 || player.RayDamage != 2 {
		t.Errorf("NewPlayer() stats = %+v", player)
	}

	player.Move(2, 1)
	player.Face(0, -1)
	if player.Pos != (world.Pos{X: 3, Y: 2}) {
		t.Errorf("After Move(2, 1) Pos = %v, want 3,2", player.Pos)
	}
	if player.Facing != (world.Pos{X: 0, Y: -1}) {
		t.Errorf("After Face(0, -1) Facing = %v", player.Facing)
	}
}
