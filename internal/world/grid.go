package world

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrOutOfBounds is returned when a position lies outside the grid.
var ErrOutOfBounds = errors.New("grid access out of bounds")

// Grid is a fixed-size store of tiles indexed [x][y].
type Grid struct {
	width, height int
	floor         TileData
	factory       TileFactory
	cells         [][]*Tile
	subs          [][]Subscription
}

// NewGrid allocates an empty grid. Call Initialize before reading from it.
func NewGrid(width, height int, floor TileData, factory TileFactory) *Grid {
	width, height = max(width, 0), max(height, 0)

	cells := make([][]*Tile, width)
	subs := make([][]Subscription, width)
	for x := range cells {
		cells[x] = make([]*Tile, height)
		subs[x] = make([]Subscription, height)
	}

	return &Grid{
		width:   width,
		height:  height,
		floor:   floor,
		factory: factory,
		cells:   cells,
		subs:    subs,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds returns true if pos addresses a cell of the grid.
func (g *Grid) InBounds(pos Pos) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

func (g *Grid) checkBounds(pos Pos) error {
	if !g.InBounds(pos) {
		return fmt.Errorf("%w at: %s", ErrOutOfBounds, pos)
	}
	return nil
}

// Initialize fills every cell with a floor tile. Cells that cannot be
// created are left empty and reported in the returned error.
func (g *Grid) Initialize() error {
	var errs []error
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if err := g.Set(Pos{X: x, Y: y}, g.floor); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Tile returns the tile at pos.
func (g *Grid) Tile(pos Pos) (*Tile, error) {
	if err := g.checkBounds(pos); err != nil {
		log.Printf("world: %v", err)
		return nil, err
	}
	return g.cells[pos.X][pos.Y], nil
}

// Set replaces the tile at pos with a new tile built from data. The old
// tile's destroyed observer is detached before the new tile is installed.
// If the template is malformed the old tile stays in place.
func (g *Grid) Set(pos Pos, data TileData) error {
	if err := g.checkBounds(pos); err != nil {
		log.Printf("world: %v", err)
		return err
	}

	tile, err := g.factory.NewTile(data, pos)
	if err != nil {
		err = fmt.Errorf("create tile at %s: %w", pos, err)
		log.Printf("world: %v", err)
		return err
	}

	if old := g.cells[pos.X][pos.Y]; old != nil {
		old.Unsubscribe(g.subs[pos.X][pos.Y])
	}

	g.subs[pos.X][pos.Y] = tile.OnDestroyed(g.onTileDestroyed)
	g.cells[pos.X][pos.Y] = tile
	return nil
}

// ResetTile replaces the tile at pos with floor.
func (g *Grid) ResetTile(pos Pos) error {
	return g.Set(pos, g.floor)
}

func (g *Grid) onTileDestroyed(pos Pos) {
	// Errors are already logged by Set.
	_ = g.ResetTile(pos)
}

// Each calls fn for every cell in row order, top to bottom. Empty cells are
// passed as nil.
func (g *Grid) Each(fn func(pos Pos, tile *Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Pos{X: x, Y: y}, g.cells[x][y])
		}
	}
}

// Count returns the number of cells holding a tile of the given template.
func (g *Grid) Count(data TileData) int {
	n := 0
	g.Each(func(_ Pos, tile *Tile) {
		if tile != nil && tile.Is(data) {
			n++
		}
	})
	return n
}

// String renders the grid one glyph per cell. Empty cells render as a space.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if tile := g.cells[x][y]; tile != nil {
				b.WriteRune(tile.Glyph)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
