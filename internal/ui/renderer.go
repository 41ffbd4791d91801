package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridgen/internal/entity"
	"github.com/samdwyer/gridgen/internal/gamedata"
	"github.com/samdwyer/gridgen/internal/world"
)

// View is everything the renderer draws in one frame.
type View struct {
	Grid    *world.Grid
	Actors  []*entity.Actor
	Player  *entity.Player
	Status  string
	Enemies int
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	colors map[string]tcell.Color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		colors: make(map[string]tcell.Color),
	}
}

// Render draws the grid, actors and player to the screen.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	// Draw grid tiles
	v.Grid.Each(func(pos world.Pos, tile *world.Tile) {
		if tile == nil {
			return
		}
		r.screen.SetContent(pos.X, pos.Y, tile.Glyph, r.tileStyle(tile))
	})

	// Draw actors over the floor
	for _, actor := range v.Actors {
		style := tcell.StyleDefault.Foreground(r.color(actor.Color(), tcell.ColorPurple))
		r.screen.SetContent(actor.Pos.X, actor.Pos.Y, actor.Symbol, style)
	}

	// Draw player on top
	if v.Player != nil {
		playerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(v.Player.Pos.X, v.Player.Pos.Y, v.Player.Symbol, playerStyle)

		hud := fmt.Sprintf("HP %d/%d  Enemies %d  %s", v.Player.HP, v.Player.MaxHP, v.Enemies, v.Status)
		r.RenderMessage(hud, v.Grid.Height()+1)
	}

	r.screen.Show()
}

// tileStyle returns the style for a tile, dimming damaged tiles.
func (r *Renderer) tileStyle(tile *world.Tile) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.color(tile.Color, tcell.ColorGray))
	if tile.Destructible && tile.Health < tile.MaxHealth {
		style = style.Dim(true)
	}
	return style
}

// color parses and caches hex colors.
func (r *Renderer) color(hex string, fallback tcell.Color) tcell.Color {
	if c, ok := r.colors[hex]; ok {
		return c
	}
	c := gamedata.ColorOr(hex, fallback)
	r.colors[hex] = c
	return c
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
