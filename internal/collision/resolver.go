package collision

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidPolicy is returned when a policy name cannot be parsed.
var ErrInvalidPolicy = errors.New("invalid collision policy")

// Policy decides which correction is kept when several obstacles clamp the
// same axis during one step.
type Policy int

const (
	// PolicyLastWins keeps the correction from the last obstacle, in slice
	// order, that blocked the axis.
	PolicyLastWins Policy = iota
	// PolicyNearest keeps the correction that lets the agent travel the
	// least along the blocked axis.
	PolicyNearest
)

// String returns the policy name accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case PolicyLastWins:
		return "last"
	case PolicyNearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a name ("last" or "nearest") into a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "last", "last-wins":
		return PolicyLastWins, nil
	case "nearest":
		return PolicyNearest, nil
	default:
		return PolicyLastWins, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
}

// Resolver corrects an agent's desired displacement against static obstacles.
// Each axis is tested and corrected on its own, which lets the agent slide
// along a wall it is pressed against.
type Resolver struct {
	Policy Policy
}

// NewResolver creates a resolver with the given policy.
func NewResolver(policy Policy) *Resolver {
	return &Resolver{Policy: policy}
}

// axisClamp is the corrected displacement on one axis.
type axisClamp struct {
	set   bool
	delta float64
}

func (c *axisClamp) offer(policy Policy, delta float64) {
	if !c.set || policy == PolicyLastWins || math.Abs(delta) < math.Abs(c.delta) {
		c.set = true
		c.delta = delta
	}
}

// Resolve returns the displacement to apply to agent so it does not
// penetrate any obstacle. A blocked axis is replaced by the offset that puts
// the agent flush against the blocking face.
//
// Each axis is tested from the agent's current position. If the area swept
// by the combined move then cuts into the corner of an obstacle that neither
// axis reached on its own, the agent slides along x first and y is resolved
// again from there. An agent that already overlaps an obstacle is never
// pushed back out, only stopped.
// Invalid obstacles are skipped; an invalid agent or delta yields no movement.
func (r *Resolver) Resolve(agent Rect, desired Vec, obstacles []Rect) Vec {
	if !agent.Valid() || !desired.Valid() || desired.IsZero() {
		return Vec{}
	}

	result := Vec{
		X: r.resolveX(agent, desired.X, obstacles),
		Y: r.resolveY(agent, desired.Y, obstacles),
	}
	if result.X == 0 || result.Y == 0 || !clips(agent, result, obstacles) {
		return result
	}

	// Slide along x, then move y from there; each leg is resolved on its own
	result.Y = r.resolveY(agent.Translate(Vec{X: result.X}), result.Y, obstacles)
	return result
}

// resolveX returns dx clamped against every obstacle the agent would hit
// moving along x alone.
func (r *Resolver) resolveX(agent Rect, dx float64, obstacles []Rect) float64 {
	if dx == 0 {
		return 0
	}
	var clamp axisClamp
	step := Vec{X: dx}
	for _, obstacle := range obstacles {
		if !obstacle.Valid() {
			continue
		}
		if side, hit := Sweep(obstacle, agent, step); hit {
			if delta, ok := flushX(obstacle, agent, side, dx); ok {
				clamp.offer(r.Policy, delta)
			}
		}
	}
	if clamp.set {
		return clamp.delta
	}
	return dx
}

// resolveY is resolveX for the vertical axis.
func (r *Resolver) resolveY(agent Rect, dy float64, obstacles []Rect) float64 {
	if dy == 0 {
		return 0
	}
	var clamp axisClamp
	step := Vec{Y: dy}
	for _, obstacle := range obstacles {
		if !obstacle.Valid() {
			continue
		}
		if side, hit := Sweep(obstacle, agent, step); hit {
			if delta, ok := flushY(obstacle, agent, side, dy); ok {
				clamp.offer(r.Policy, delta)
			}
		}
	}
	if clamp.set {
		return clamp.delta
	}
	return dy
}

// clips returns true if the area swept by moving agent by delta penetrates
// an obstacle the agent is currently clear of.
func clips(agent Rect, delta Vec, obstacles []Rect) bool {
	swept := agent.Union(agent.Translate(delta))
	for _, obstacle := range obstacles {
		if obstacle.Valid() && penetrates(swept, obstacle) && !penetrates(agent, obstacle) {
			return true
		}
	}
	return false
}

// flushX returns the x offset that puts agent flush against obstacle, if the
// side is the one the agent is moving towards.
func flushX(obstacle, agent Rect, side Side, dx float64) (float64, bool) {
	switch {
	case dx < 0 && side == SideLeft:
		target := obstacle.Center.X + obstacle.Half.X + agent.Half.X
		return math.Min(0, target-agent.Center.X), true
	case dx > 0 && side == SideRight:
		target := obstacle.Center.X - obstacle.Half.X - agent.Half.X
		return math.Max(0, target-agent.Center.X), true
	}
	return 0, false
}

// flushY is flushX for the vertical axis.
func flushY(obstacle, agent Rect, side Side, dy float64) (float64, bool) {
	switch {
	case dy < 0 && side == SideBottom:
		target := obstacle.Center.Y + obstacle.Half.Y + agent.Half.Y
		return math.Min(0, target-agent.Center.Y), true
	case dy > 0 && side == SideTop:
		target := obstacle.Center.Y - obstacle.Half.Y - agent.Half.Y
		return math.Max(0, target-agent.Center.Y), true
	}
	return 0, false
}
