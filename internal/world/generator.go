package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazeband/internal/telemetry"
)

const (
	// DefaultMaxCoins caps the number of coins placed in a maze,
	// whatever budget is requested.
	DefaultMaxCoins = 5

	// Reference maze sizes per difficulty.
	SizeEasy   = 11
	SizeMedium = 21
	SizeHard   = 31
)

// Generator builds perfect mazes with a randomised depth-first backtracker.
type Generator struct {
	// MaxCoins is the policy cap on coins per maze. Negative means no cap.
	MaxCoins int
	rng      *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
// A nil rng is replaced by one seeded from the clock.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		MaxCoins: DefaultMaxCoins,
		rng:      rng,
	}
}

// Generate builds a maze with the default coin cap.
func Generate(size, coinBudget int, rng *rand.Rand) *Grid {
	return NewGenerator(rng).Generate(context.Background(), size, coinBudget)
}

// Generate builds a size x size perfect maze, opens the entrance and exit on
// the middle row and places up to coinBudget coins on dead ends.
func (g *Generator) Generate(ctx context.Context, size, coinBudget int) *Grid {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	grid := NewGrid(size)
	if grid.Size == 0 {
		span.SetAttributes(attribute.Int("maze.size", 0))
		return grid
	}

	g.carvePassages(grid)

	// Boundary openings come last so they never count towards a dead end.
	grid.carve(grid.Entrance(), West)
	grid.carve(grid.Exit(), East)

	deadEnds := grid.DeadEnds()
	coins := g.placeCoins(grid, deadEnds, coinBudget)

	span.SetAttributes(
		attribute.Int("maze.size", grid.Size),
		attribute.Int("maze.coin_budget", coinBudget),
		attribute.Int("maze.coins", coins),
		attribute.Int("maze.dead_ends", len(deadEnds)),
		attribute.Int64("maze.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return grid
}

// carvePassages runs the backtracker over the whole grid. Each carve visits a
// new cell, so the loop ends after size*size-1 carves and as many pops.
func (g *Generator) carvePassages(grid *Grid) {
	visited := make([][]bool, grid.Size)
	for y := range visited {
		visited[y] = make([]bool, grid.Size)
	}

	start := Point{X: g.rng.Intn(grid.Size), Y: g.rng.Intn(grid.Size)}
	visited[start.Y][start.X] = true
	stack := []Point{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		dirs := Directions
		g.rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})

		found := false
		for _, d := range dirs {
			next := current.Add(d.Delta())
			if !grid.InBounds(next) || visited[next.Y][next.X] {
				continue
			}
			grid.carve(current, d)
			visited[next.Y][next.X] = true
			stack = append(stack, next)
			found = true
			break
		}

		if !found {
			stack = stack[:len(stack)-1]
		}
	}
}

// placeCoins shuffles the dead ends and puts a coin on the first ones.
// It returns the number of coins placed.
func (g *Generator) placeCoins(grid *Grid, deadEnds []Point, budget int) int {
	count := budget
	if g.MaxCoins >= 0 && count > g.MaxCoins {
		count = g.MaxCoins
	}
	if count > len(deadEnds) {
		count = len(deadEnds)
	}
	if count <= 0 {
		return 0
	}

	g.rng.Shuffle(len(deadEnds), func(i, j int) {
		deadEnds[i], deadEnds[j] = deadEnds[j], deadEnds[i]
	})
	for _, p := range deadEnds[:count] {
		grid.Cells[p.Y][p.X].Coin = true
	}
	return count
}
