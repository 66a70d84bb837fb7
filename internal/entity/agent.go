// Package entity provides the moving entities of the game.
package entity

import "github.com/samdwyer/mazeband/internal/collision"

// DefaultSpeed is the player speed in body widths per second.
const DefaultSpeed = 6.0

// Agent is the player-controlled square moving through the maze.
type Agent struct {
	Pos    collision.Vec // Centre in world units
	Half   collision.Vec // Half-extent in world units
	Speed  float64       // Body widths per second
	Symbol rune          // Display symbol
}

// NewAgent creates an agent centred on pos with the given full side length.
// Negative sizes are clamped to zero.
func NewAgent(pos collision.Vec, size float64) *Agent {
	if size < 0 {
		size = 0
	}
	return &Agent{
		Pos:    pos,
		Half:   collision.Vec{X: size / 2, Y: size / 2},
		Speed:  DefaultSpeed,
		Symbol: '@',
	}
}

// Rect returns the agent's bounding box.
func (a *Agent) Rect() collision.Rect {
	return collision.Rect{Center: a.Pos, Half: a.Half}
}

// Width returns the agent's full width.
func (a *Agent) Width() float64 {
	return a.Half.X * 2
}

// Step returns the displacement the agent wants for one tick: the per-axis
// direction times its speed, scaled by its own width so bigger agents move
// proportionally faster, times the elapsed seconds.
func (a *Agent) Step(dirX, dirY int, seconds float64) collision.Vec {
	scale := a.Speed * a.Width() * seconds
	return collision.Vec{X: float64(sign(dirX)) * scale, Y: float64(sign(dirY)) * scale}
}

// Move updates the agent position by the given delta.
func (a *Agent) Move(delta collision.Vec) {
	a.Pos = a.Pos.Add(delta)
}

// MoveTo places the agent at pos.
func (a *Agent) MoveTo(pos collision.Vec) {
	a.Pos = pos
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
