package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridgen/internal/telemetry"
	"github.com/samdwyer/gridgen/internal/ui"
)

// Game ties a session to the terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		running:  true,
	}, nil
}

// Run generates the map and executes the main game loop. The caller closes
// the game afterwards.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	ctx, initSpan := tracer.Start(ctx, "game.init")
	session, err := NewSession(ctx, g.cfg)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return err
	}
	g.session = session
	initSpan.SetAttributes(
		attribute.Int("grid.width", session.Grid.Width()),
		attribute.Int("grid.height", session.Grid.Height()),
		attribute.Int("grid.walls", session.Result.Walls),
	)
	initSpan.End()

	// Main game loop
	for g.running {
		g.renderer.Render(g.view())

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	return nil
}

func (g *Game) view() ui.View {
	s := g.session
	return ui.View{
		Grid:    s.Grid,
		Actors:  s.Actors.All(),
		Player:  s.Player,
		Status:  s.State.String() + " | " + s.Message,
		Enemies: s.Actors.Count(),
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.session.TryMove(0, -1)
	case tcell.KeyDown:
		g.session.TryMove(0, 1)
	case tcell.KeyLeft:
		g.session.TryMove(-1, 0)
	case tcell.KeyRight:
		g.session.TryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.session.FireRay(ctx)
		case 'q', 'Q':
			g.running = false
		}
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
