package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/ui"
	"github.com/samdwyer/mazeband/internal/world"
)

// ErrScreenClosed is returned by Run when the terminal goes away while the
// game is still running.
var ErrScreenClosed = errors.New("screen closed")

// command is a key press after mapping to what it asks for.
type command int

const (
	cmdNone command = iota
	cmdUp
	cmdDown
	cmdLeft
	cmdRight
	cmdConfirm
	cmdPause
	cmdRestart
	cmdMenu
	cmdBack // Esc: leave the current screen
	cmdQuit // q: leave the current screen, or the game from the menu
	cmdExit // Ctrl-C: leave the game from anywhere
)

// keyCommand maps a key to a command. Arrows and WASD both move.
func keyCommand(key tcell.Key, ch rune) command {
	switch key {
	case tcell.KeyCtrlC:
		return cmdExit
	case tcell.KeyEscape:
		return cmdBack
	case tcell.KeyEnter:
		return cmdConfirm
	case tcell.KeyUp:
		return cmdUp
	case tcell.KeyDown:
		return cmdDown
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W':
			return cmdUp
		case 's', 'S':
			return cmdDown
		case 'a', 'A':
			return cmdLeft
		case 'd', 'D':
			return cmdRight
		case 'p', 'P', ' ':
			return cmdPause
		case 'r', 'R':
			return cmdRestart
		case 'm', 'M':
			return cmdMenu
		case 'q', 'Q':
			return cmdQuit
		}
	}
	return cmdNone
}

// commandDirection returns the maze direction of a movement command.
func commandDirection(cmd command) (world.Direction, bool) {
	switch cmd {
	case cmdUp:
		return world.North, true
	case cmdDown:
		return world.South, true
	case cmdLeft:
		return world.West, true
	case cmdRight:
		return world.East, true
	}
	return 0, false
}

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *gamedata.DifficultyRegistry
	rng      *rand.Rand
	logger   *slog.Logger
	keys     *KeyState

	session  *Session // nil while in the menu
	selected int      // Menu cursor
	lastTick time.Time
	running  bool
}

// New creates a new game instance with a terminal screen.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	g, err := newGame(cfg, logger)
	if err != nil {
		return nil, err
	}

	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g.attach(screen, theme)
	return g, nil
}

// attach makes screen the game's display and input source.
func (g *Game) attach(screen *ui.Screen, theme gamedata.ThemeDef) {
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, theme)
}

// newGame creates a game without a screen.
func newGame(cfg Config, logger *slog.Logger) (*Game, error) {
	registry, err := gamedata.LoadDifficultyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load difficulties: %w", err)
	}

	selected := 0
	if cfg.Difficulty != "" {
		d, err := registry.GetByID(cfg.Difficulty)
		if err != nil {
			return nil, err
		}
		for i, o := range registry.All() {
			if o.ID == d.ID {
				selected = i
			}
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.KeyHold <= 0 {
		cfg.KeyHold = DefaultKeyHold
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	logger.Info("game created", "seed", seed, "difficulty", registry.All()[selected].ID, "policy", cfg.Policy)

	return &Game{
		cfg:      cfg,
		registry: registry,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
		keys:     NewKeyState(cfg.KeyHold),
		selected: selected,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
// The screen stays open; Close releases it.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.init")
	span.SetAttributes(
		attribute.Int("game.difficulties", g.registry.Count()),
		attribute.String("game.tick_rate", g.cfg.TickRate.String()),
	)
	span.End()

	// tcell delivers key presses only, so the simulation is driven by
	// interrupts posted at the tick rate
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(g.cfg.TickRate)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				g.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
				return
			case <-ticker.C:
				g.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()
	// Nothing posts to the screen once Run returns
	defer func() {
		close(done)
		<-stopped
	}()

	for g.running {
		g.render()
		ev := g.screen.PollEvent()
		if ev == nil {
			g.running = false
			return ErrScreenClosed
		}
		g.handleEvent(ctx, ev)
	}
	return nil
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if _, cancelled := ev.Data().(error); cancelled {
			g.running = false
			return
		}
		g.tick(ctx, ev.When())
	case *tcell.EventKey:
		g.handleKey(ctx, keyCommand(ev.Key(), ev.Rune()), ev.Rune(), ev.When())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKey applies a command to the current screen.
func (g *Game) handleKey(ctx context.Context, cmd command, ch rune, now time.Time) {
	if cmd == cmdExit {
		g.running = false
		return
	}

	if g.session == nil {
		g.handleMenuKey(ctx, cmd, ch)
		return
	}

	switch g.session.Phase {
	case PhasePlaying:
		if dir, ok := commandDirection(cmd); ok {
			g.keys.Press(dir, now)
			return
		}
		switch cmd {
		case cmdPause:
			g.session.Pause()
			g.keys.Reset()
		case cmdRestart:
			g.restart()
		case cmdBack, cmdQuit, cmdMenu:
			g.backToMenu()
		}

	case PhasePaused:
		switch cmd {
		case cmdPause, cmdConfirm:
			g.session.Resume()
			g.lastTick = time.Time{}
		case cmdRestart:
			g.restart()
		case cmdBack, cmdQuit, cmdMenu:
			g.backToMenu()
		}

	case PhaseFinished:
		switch cmd {
		case cmdRestart:
			g.restart()
		case cmdMenu, cmdBack, cmdConfirm:
			g.backToMenu()
		case cmdQuit:
			g.running = false
		}
	}
}

func (g *Game) handleMenuKey(ctx context.Context, cmd command, ch rune) {
	options := g.registry.All()

	switch cmd {
	case cmdUp:
		g.selected = (g.selected + len(options) - 1) % len(options)
	case cmdDown:
		g.selected = (g.selected + 1) % len(options)
	case cmdConfirm:
		g.startSession(ctx, options[g.selected])
	case cmdBack, cmdQuit:
		g.running = false
	case cmdNone:
		if d := g.registry.GetByKey(ch); d != nil {
			g.startSession(ctx, *d)
		}
	}
}

// startSession generates a maze for difficulty and starts playing it.
func (g *Game) startSession(ctx context.Context, difficulty gamedata.DifficultyDef) {
	g.session = NewSession(ctx, g.cfg, difficulty, g.rng)
	g.keys.Reset()
	g.lastTick = time.Time{}

	g.logger.Info("session started",
		"session", g.session.ID,
		"difficulty", difficulty.ID,
		"size", g.session.Grid.Size,
		"coins", g.session.CoinsTotal(),
	)
}

// restart replays the current maze from the start.
func (g *Game) restart() {
	g.session.Restart()
	g.keys.Reset()
	g.lastTick = time.Time{}
	g.logger.Info("session restarted", "session", g.session.ID, "attempt", g.session.Attempts)
}

func (g *Game) backToMenu() {
	g.session.Quit()
	g.logger.Info("session abandoned",
		"session", g.session.ID,
		"elapsed", g.session.Elapsed(),
		"coins", g.session.CoinsCollected(),
	)
	g.session = nil
	g.keys.Reset()
}

// tick advances the running session by the time since the previous tick.
func (g *Game) tick(ctx context.Context, now time.Time) {
	if g.session == nil || g.session.Phase != PhasePlaying {
		g.lastTick = now
		return
	}

	var dt time.Duration
	if !g.lastTick.IsZero() {
		dt = min(max(now.Sub(g.lastTick), 0), MaxTickDelta)
	}
	g.lastTick = now

	result := g.session.Tick(g.keys.Intent(now), dt)
	if result.CoinsPicked > 0 {
		g.logger.Debug("coin collected",
			"session", g.session.ID,
			"collected", g.session.CoinsCollected(),
			"total", g.session.CoinsTotal(),
		)
	}
	if result.GateOpened {
		g.logger.Info("exit unlocked", "session", g.session.ID, "elapsed", g.session.Elapsed())
	}
	if result.Finished {
		g.finish(ctx)
	}
}

// finish records a completed run.
func (g *Game) finish(ctx context.Context) {
	s := g.session
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.finish")
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("session.difficulty", s.Difficulty.ID),
		attribute.Int64("session.elapsed_ms", s.Elapsed().Milliseconds()),
		attribute.Int("session.attempts", s.Attempts),
		attribute.Int("session.coins", s.CoinsCollected()),
	)
	span.End()

	g.keys.Reset()
	g.logger.Info("maze escaped",
		"session", s.ID,
		"difficulty", s.Difficulty.ID,
		"elapsed", s.Elapsed(),
		"attempts", s.Attempts,
	)
}

// render draws the current screen.
func (g *Game) render() {
	s := g.session
	switch {
	case s == nil:
		g.renderer.RenderMenu(ui.MenuView{Options: g.registry.All(), Selected: g.selected})
	case s.Phase == PhaseFinished:
		g.renderer.RenderEnd(ui.EndView{
			Difficulty: s.Difficulty.Name,
			Elapsed:    s.Elapsed(),
			Collected:  s.CoinsCollected(),
			Total:      s.CoinsTotal(),
			Attempts:   s.Attempts,
		})
	default:
		g.renderer.RenderMaze(g.mazeView())
	}
}

// mazeView captures the session for the renderer.
func (g *Game) mazeView() ui.MazeView {
	s := g.session
	tx, ty := s.Layout.TileAt(s.Agent.Pos)
	return ui.MazeView{
		Grid:       s.Grid,
		HasCoin:    s.HasCoin,
		GateOpen:   s.GateOpen(),
		PlayerX:    tx,
		PlayerY:    ty,
		Difficulty: s.Difficulty.Name,
		Elapsed:    s.Elapsed(),
		Collected:  s.CoinsCollected(),
		Total:      s.CoinsTotal(),
		Paused:     s.Phase == PhasePaused,
	}
}

// Close restores the terminal. It is safe to call more than once.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
