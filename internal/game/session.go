package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/collision"
	"github.com/samdwyer/mazeband/internal/entity"
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

// TickResult reports what happened during one tick.
type TickResult struct {
	Moved       collision.Vec // Displacement applied to the agent
	CoinsPicked int           // Coins collected this tick
	GateOpened  bool          // True on the tick the last coin was collected
	Finished    bool          // True on the tick the agent reached the end zone
}

// Session holds all state for one maze run. The grid is generated once and
// reused by Restart; everything else is reset.
type Session struct {
	ID         uuid.UUID
	Difficulty gamedata.DifficultyDef
	Grid       *world.Grid
	Layout     *Layout
	Agent      *entity.Agent
	Phase      Phase
	Stopwatch  Stopwatch
	Attempts   int // Runs started on this grid, including the first

	resolver    *collision.Resolver
	playerSpeed float64
	collected   map[world.Point]bool
	gateOpen    bool
	obstacles   []collision.Rect
}

// NewSession generates a maze for difficulty and starts a run on it.
func NewSession(ctx context.Context, cfg Config, difficulty gamedata.DifficultyDef, rng *rand.Rand) *Session {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.start")
	defer span.End()

	gen := world.NewGenerator(rng)
	gen.MaxCoins = cfg.MaxCoins
	grid := gen.Generate(ctx, difficulty.Size, difficulty.Coins)

	s := NewSessionWithGrid(cfg, difficulty, grid)

	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("session.difficulty", difficulty.ID),
		attribute.Int("session.coins", s.CoinsTotal()),
		attribute.String("session.policy", cfg.Policy.String()),
	)
	return s
}

// NewSessionWithGrid starts a run on an existing grid. The grid is cloned so
// the caller's copy is never modified.
func NewSessionWithGrid(cfg Config, difficulty gamedata.DifficultyDef, grid *world.Grid) *Session {
	speed := cfg.PlayerSpeed
	if speed <= 0 {
		speed = entity.DefaultSpeed
	}

	s := &Session{
		ID:          uuid.New(),
		Difficulty:  difficulty,
		Grid:        grid.Clone(),
		resolver:    collision.NewResolver(cfg.Policy),
		playerSpeed: speed,
	}
	s.Layout = NewLayout(s.Grid, DefaultExtent, DefaultBorder)
	s.Restart()
	s.Attempts = 1
	return s
}

// Restart puts the agent back at the start of the same maze with every coin
// restored, the gate closed and the stopwatch cleared.
func (s *Session) Restart() {
	s.Agent = entity.NewAgent(s.Layout.Spawn, s.Layout.AgentSize)
	s.Agent.Speed = s.playerSpeed
	s.collected = make(map[world.Point]bool, len(s.Layout.Coins))
	s.Stopwatch = Stopwatch{}
	s.Phase = PhasePlaying
	s.Attempts++

	// A maze without coins has nothing to unlock the gate with
	s.setGate(len(s.Layout.Coins) == 0)
}

func (s *Session) setGate(open bool) {
	s.gateOpen = open
	s.obstacles = s.Layout.Obstacles(open)
}

// Tick advances the run by dt: the agent moves according to intent, then
// coins are collected, then the stopwatch advances, then the end zone is
// checked. Ticks outside PhasePlaying do nothing.
func (s *Session) Tick(intent Intent, dt time.Duration) TickResult {
	var result TickResult
	if s.Phase != PhasePlaying || dt < 0 {
		return result
	}

	desired := s.Agent.Step(intent.X, intent.Y, dt.Seconds())
	result.Moved = s.resolver.Resolve(s.Agent.Rect(), desired, s.obstacles)
	s.Agent.Move(result.Moved)

	body := s.Agent.Rect()
	for _, coin := range s.Layout.Coins {
		if s.collected[coin.Cell] || !coin.Rect.Overlaps(body) {
			continue
		}
		s.collected[coin.Cell] = true
		result.CoinsPicked++
	}
	if result.CoinsPicked > 0 && !s.gateOpen && s.CoinsRemaining() == 0 {
		s.setGate(true)
		result.GateOpened = true
	}

	// The clock starts once the agent leaves the start chamber
	if !(s.InStartZone() && s.Stopwatch.Elapsed() == 0) {
		s.Stopwatch.Tick(dt)
	}

	if body.Overlaps(s.Layout.EndZone) {
		s.Stopwatch.Pause()
		s.Phase = PhaseFinished
		result.Finished = true
	}

	return result
}

// Pause freezes a run in progress.
func (s *Session) Pause() {
	if s.Phase != PhasePlaying {
		return
	}
	s.Stopwatch.Pause()
	s.Phase = PhasePaused
}

// Resume continues a paused run.
func (s *Session) Resume() {
	if s.Phase != PhasePaused {
		return
	}
	s.Stopwatch.Unpause()
	s.Phase = PhasePlaying
}

// TogglePause pauses a running session or resumes a paused one.
func (s *Session) TogglePause() {
	if s.Phase == PhasePaused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Quit abandons the run and returns to the menu.
func (s *Session) Quit() {
	s.Stopwatch.Pause()
	s.Phase = PhaseMenu
}

// Elapsed returns the play time of the current run.
func (s *Session) Elapsed() time.Duration {
	return s.Stopwatch.Elapsed()
}

// CoinsTotal returns the number of coins placed in the maze.
func (s *Session) CoinsTotal() int {
	return len(s.Layout.Coins)
}

// CoinsCollected returns the number of coins collected this run.
func (s *Session) CoinsCollected() int {
	return len(s.collected)
}

// CoinsRemaining returns the number of coins still in the maze.
func (s *Session) CoinsRemaining() int {
	return s.CoinsTotal() - s.CoinsCollected()
}

// HasCoin returns true if cell p still holds an uncollected coin.
func (s *Session) HasCoin(p world.Point) bool {
	return s.Grid.Cell(p).Coin && !s.collected[p]
}

// GateOpen reports whether the end gate has been removed.
func (s *Session) GateOpen() bool {
	return s.gateOpen
}

// Obstacles returns the rectangles currently blocking the agent.
func (s *Session) Obstacles() []collision.Rect {
	return s.obstacles
}

// InStartZone returns true while the agent overlaps the start chamber.
func (s *Session) InStartZone() bool {
	return s.Agent.Rect().Overlaps(s.Layout.StartZone)
}
