// Package game drives the engine from a terminal: it owns the fall timer,
// maps input to commands and redraws after every change.
package game

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/blockfall/internal/engine"
	"github.com/samdwyer/blockfall/internal/gamedata"
	"github.com/samdwyer/blockfall/internal/telemetry"
	"github.com/samdwyer/blockfall/internal/ui"
)

// Game holds the terminal session and the engine it drives.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	engine    *engine.Engine
	config    Config
	running   bool
	mouseDown bool
}

// New creates a new game instance on the terminal.
func New(ctx context.Context, cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := newGame(ctx, cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame wires the engine and renderer to an initialized screen.
func newGame(ctx context.Context, cfg Config, screen *ui.Screen) (*Game, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting session with seed %d", seed)

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		engine: engine.New(ctx,
			engine.WithRand(rand.New(rand.NewSource(seed))),
			engine.WithTracer(telemetry.Tracer("engine")),
		),
		config:  cfg,
		running: true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
// Ticks and input events are handled one at a time in arrival order.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	quit := make(chan struct{})
	defer close(quit)
	events := g.screen.Events(quit)

	ticker := time.NewTicker(g.config.TickInterval)
	defer ticker.Stop()

	g.renderer.Render(g.engine.Snapshot())

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case <-ticker.C:
			g.apply(ctx, engine.CmdTick)
		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)
		}
	}

	span.SetAttributes(
		attribute.String("session.id", g.engine.SessionID()),
		attribute.String("state.final", g.engine.State().String()),
		attribute.Int("score.final", g.engine.Score()),
		attribute.Int("lines.final", g.engine.Lines()),
	)

	// Cleanup
	g.screen.Close()
	return ctx.Err()
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Render(g.engine.Snapshot())
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if IsQuitKey(ev) {
		g.running = false
		return
	}
	if cmd, ok := KeyCommand(ev); ok {
		g.apply(ctx, cmd)
	}
}

// handleMouseEvent rotates the piece on each primary button press.
func (g *Game) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !g.mouseDown {
		g.apply(ctx, engine.CmdRotate)
	}
	g.mouseDown = down
}

// apply feeds one command to the engine and redraws.
func (g *Game) apply(ctx context.Context, cmd engine.Command) {
	res := g.engine.Apply(ctx, cmd)
	if res.LockErr != nil {
		log.Printf("lock after %s: %v", cmd, res.LockErr)
	}
	if res.GameOver {
		log.Printf("game over: session %s score %d", g.engine.SessionID(), g.engine.Score())
	}
	g.renderer.Render(g.engine.Snapshot())
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
