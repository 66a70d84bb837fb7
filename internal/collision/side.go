package collision

import "math"

// Side names where an obstacle lies relative to the agent that touched it.
type Side int

const (
	// SideNone means there was no contact, or the overlap has no dominant face
	// (one rectangle spans the other on both axes).
	SideNone Side = iota
	// SideLeft means the obstacle is to the agent's left (negative x).
	SideLeft
	// SideRight means the obstacle is to the agent's right (positive x).
	SideRight
	// SideTop means the obstacle is above the agent (positive y).
	SideTop
	// SideBottom means the obstacle is below the agent (negative y).
	SideBottom
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Collide tests whether agent overlaps obstacle. When it does, the reported
// side is the face with the smaller penetration depth.
func Collide(obstacle, agent Rect) (Side, bool) {
	if !obstacle.Overlaps(agent) {
		return SideNone, false
	}

	oMin, oMax := obstacle.Min(), obstacle.Max()
	aMin, aMax := agent.Min(), agent.Max()

	xSide, xDepth := SideNone, math.Inf(1)
	switch {
	case oMin.X < aMin.X && oMax.X > aMin.X && oMax.X < aMax.X:
		xSide, xDepth = SideLeft, oMax.X-aMin.X
	case oMin.X > aMin.X && oMin.X < aMax.X && oMax.X > aMax.X:
		xSide, xDepth = SideRight, aMax.X-oMin.X
	}

	ySide, yDepth := SideNone, math.Inf(1)
	switch {
	case oMin.Y < aMin.Y && oMax.Y > aMin.Y && oMax.Y < aMax.Y:
		ySide, yDepth = SideBottom, oMax.Y-aMin.Y
	case oMin.Y > aMin.Y && oMin.Y < aMax.Y && oMax.Y > aMax.Y:
		ySide, yDepth = SideTop, aMax.Y-oMin.Y
	}

	if yDepth < xDepth {
		return ySide, true
	}
	return xSide, true
}

// Sweep tests a single-axis step of the agent against an obstacle.
//
// When the agent starts clear of the obstacle along the step axis, the only
// face it can reach is the one it approaches, so that face is reported if
// the area swept between the current and predicted positions penetrates the
// obstacle. Contacts within Epsilon on the other axis are ignored, which
// lets the agent slide along collinear wall segments. Otherwise the
// predicted position is tested with Collide.
func Sweep(obstacle, agent Rect, step Vec) (Side, bool) {
	moved := agent.Translate(step)
	if approached := approachSide(obstacle, agent, step); approached != SideNone {
		if penetrates(agent.Union(moved), obstacle) {
			return approached, true
		}
		return SideNone, false
	}
	return Collide(obstacle, moved)
}

// penetrates returns true if a and b overlap by more than Epsilon on both axes.
func penetrates(a, b Rect) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	return aMin.X < bMax.X-Epsilon && aMax.X > bMin.X+Epsilon &&
		aMin.Y < bMax.Y-Epsilon && aMax.Y > bMin.Y+Epsilon
}

// approachSide returns the face of obstacle the agent runs into when it
// moves along step, or SideNone if the agent is not clear of that face.
func approachSide(obstacle, agent Rect, step Vec) Side {
	oMin, oMax := obstacle.Min(), obstacle.Max()
	aMin, aMax := agent.Min(), agent.Max()

	switch {
	case step.X > 0 && aMax.X <= oMin.X+Epsilon:
		return SideRight
	case step.X < 0 && aMin.X >= oMax.X-Epsilon:
		return SideLeft
	case step.Y > 0 && aMax.Y <= oMin.Y+Epsilon:
		return SideTop
	case step.Y < 0 && aMin.Y >= oMax.Y-Epsilon:
		return SideBottom
	}
	return SideNone
}
