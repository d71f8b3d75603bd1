package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Elean1402/go-roguelike/internal/entity"
	"github.com/Elean1402/go-roguelike/internal/telemetry"
	"github.com/Elean1402/go-roguelike/internal/theme"
	"github.com/Elean1402/go-roguelike/internal/ui"
	"github.com/Elean1402/go-roguelike/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	palette  theme.Palette
	dungeon  *world.Dungeon
	roster   *entity.Roster
	turn     int
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	palette, err := theme.LoadPalette()
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		palette:  palette,
		running:  true,
	}, nil
}

// Run executes the main game loop: generate the dungeon, place the objects,
// then render and handle one input event per iteration until quit.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g.dungeon = world.NewDungeon(g.cfg.Params, rng)
	g.dungeon.Generate(ctx)

	startX, startY := g.dungeon.Spawn()
	player := entity.New(startX, startY, '@', theme.MustParseHexColor(g.palette.Player))
	g.roster = entity.NewRoster(player)
	g.roster.NPCs["bob"] = entity.New(
		g.cfg.Width/2-5, g.cfg.Height/2,
		'@', theme.MustParseHexColor(g.palette.NPC),
	)

	initSpan.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(g.dungeon.Rooms)),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
	)
	initSpan.End()

	for g.running {
		g.renderer.Render(g.dungeon, g.roster, g.turn)
		g.handleInput()
	}

	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(0, -1)
	case tcell.KeyDown:
		g.tryMove(0, 1)
	case tcell.KeyLeft:
		g.tryMove(-1, 0)
	case tcell.KeyRight:
		g.tryMove(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		}
	}
}

// tryMove attempts to move the player by the given delta. A successful move
// consumes a turn; bumping a wall does not.
func (g *Game) tryMove(dx, dy int) {
	if g.roster.Player.MoveBy(dx, dy, g.dungeon) {
		g.turn++
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
