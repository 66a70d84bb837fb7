package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func unitAgent(x, y float64) Rect {
	return NewRect(x, y, 1, 1)
}

func TestResolveStopsFlushAgainstAdjacentObstacle(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	agent := unitAgent(0, 0)

	tests := []struct {
		name     string
		obstacle Rect
		desired  Vec
	}{
		{"east", NewRect(1, 0, 1, 1), Vec{X: 10}},
		{"west", NewRect(-1, 0, 1, 1), Vec{X: -10}},
		{"north", NewRect(0, 1, 1, 1), Vec{Y: 10}},
		{"south", NewRect(0, -1, 1, 1), Vec{Y: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(agent, tt.desired, []Rect{tt.obstacle})
			assert.InDelta(t, 0, got.X, tolerance)
			assert.InDelta(t, 0, got.Y, tolerance)

			moved := agent.Translate(got)
			assert.False(t, moved.Overlaps(tt.obstacle), "agent must not penetrate the obstacle")
		})
	}
}

func TestResolveClosesGapBeforeStopping(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	agent := unitAgent(-2, 0)
	obstacle := NewRect(1, 0, 1, 1)

	got := r.Resolve(agent, Vec{X: 10}, []Rect{obstacle})
	require.InDelta(t, 2, got.X, tolerance)
	assert.InDelta(t, 0, got.Y, tolerance)

	moved := agent.Translate(got)
	assert.InDelta(t, obstacle.Min().X, moved.Max().X, tolerance, "agent edge should be flush with the obstacle edge")
}

func TestResolveDoesNotTunnelThroughThinWall(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	agent := NewRect(0, 0, 20, 20)
	wall := NewRect(15, 0, 3, 40)

	got := r.Resolve(agent, Vec{X: 50}, []Rect{wall})
	assert.InDelta(t, 3.5, got.X, tolerance)
}

func TestResolveAxisIndependence(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	agent := unitAgent(0, 0)
	eastWall := NewRect(1, 0, 1, 1)

	got := r.Resolve(agent, Vec{X: 5, Y: 5}, []Rect{eastWall})
	assert.InDelta(t, 0, got.X, tolerance)
	assert.InDelta(t, 5, got.Y, tolerance)
}

func TestResolveSlidesAlongFloor(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	agent := unitAgent(0, 0)
	floor := NewRect(0, -1, 10, 1)

	got := r.Resolve(agent, Vec{X: 3, Y: -3}, []Rect{floor})
	assert.InDelta(t, 3, got.X, tolerance)
	assert.InDelta(t, 0, got.Y, tolerance)
}

func TestResolveDiagonalCornerApproach(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	agent := unitAgent(0, 0)

	// The block is clear of the agent on both axes, so neither single-axis
	// move reaches it; only the combined move cuts its corner
	tests := []struct {
		name     string
		obstacle Rect
		desired  Vec
		want     Vec
	}{
		{"north-east", NewRect(1.5, 1.5, 1, 1), Vec{X: 0.8, Y: 0.8}, Vec{X: 0.8, Y: 0.5}},
		{"north-west", NewRect(-1.5, 1.5, 1, 1), Vec{X: -0.8, Y: 0.8}, Vec{X: -0.8, Y: 0.5}},
		{"south-east", NewRect(1.5, -1.5, 1, 1), Vec{X: 0.8, Y: -0.8}, Vec{X: 0.8, Y: -0.5}},
		{"south-west", NewRect(-1.5, -1.5, 1, 1), Vec{X: -0.8, Y: -0.8}, Vec{X: -0.8, Y: -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(agent, tt.desired, []Rect{tt.obstacle})
			assert.InDelta(t, tt.want.X, got.X, tolerance)
			assert.InDelta(t, tt.want.Y, got.Y, tolerance)
			assert.False(t, agent.Translate(got).Overlaps(tt.obstacle), "agent must not cut the corner")
		})
	}
}

func TestResolveDiagonalWalkSlidesAroundBlock(t *testing.T) {
	for _, policy := range []Policy{PolicyLastWins, PolicyNearest} {
		r := NewResolver(policy)
		agent := unitAgent(0, 0)
		block := NewRect(1.5, 1.5, 1, 1)

		for tick := 0; tick < 10; tick++ {
			agent = agent.Translate(r.Resolve(agent, Vec{X: 0.8, Y: 0.8}, []Rect{block}))
			require.False(t, agent.Overlaps(block), "%s: tick %d agent %+v inside block", policy, tick, agent.Center)
		}

		// Four ticks sliding east along the bottom face, then six free
		// diagonal ticks once past the block
		assert.InDelta(t, 8, agent.Center.X, tolerance, policy.String())
		assert.InDelta(t, 5.3, agent.Center.Y, tolerance, policy.String())
	}
}

func TestResolveSlidesAcrossCollinearSeam(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	left := NewRect(0, -1, 1, 1)
	right := NewRect(1, -1, 1, 1)

	// Resting on the floor with a rounding-sized overlap
	agent := unitAgent(0, -1e-12)

	got := r.Resolve(agent, Vec{X: 0.6}, []Rect{left, right})
	assert.InDelta(t, 0.6, got.X, tolerance)
	assert.InDelta(t, 0, got.Y, tolerance)
}

func TestResolveZeroDeltaIsNoOp(t *testing.T) {
	r := NewResolver(PolicyNearest)
	obstacles := []Rect{
		NewRect(1, 0, 1, 1),
		NewRect(0, 0, 1, 1),
		NewRect(-1, 0, 1, 1),
	}

	got := r.Resolve(unitAgent(0, 0), Vec{}, obstacles)
	assert.Equal(t, Vec{}, got)
}

func TestResolveFreeMovement(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	got := r.Resolve(unitAgent(0, 0), Vec{X: -2, Y: 1.5}, []Rect{NewRect(10, 10, 1, 1)})
	assert.Equal(t, Vec{X: -2, Y: 1.5}, got)
}

func TestResolvePolicies(t *testing.T) {
	agent := unitAgent(0, 0)
	near := NewRect(2, 0, 1, 4)
	far := NewRect(5, 0, 1, 4)

	t.Run("last wins follows iteration order", func(t *testing.T) {
		r := NewResolver(PolicyLastWins)
		got := r.Resolve(agent, Vec{X: 10}, []Rect{near, far})
		assert.InDelta(t, 4, got.X, tolerance)

		got = r.Resolve(agent, Vec{X: 10}, []Rect{far, near})
		assert.InDelta(t, 1, got.X, tolerance)
	})

	t.Run("nearest keeps the smallest travel", func(t *testing.T) {
		r := NewResolver(PolicyNearest)
		got := r.Resolve(agent, Vec{X: 10}, []Rect{near, far})
		assert.InDelta(t, 1, got.X, tolerance)

		got = r.Resolve(agent, Vec{X: 10}, []Rect{far, near})
		assert.InDelta(t, 1, got.X, tolerance)
	})
}

func TestResolveOverlappingAgentIsNotPushedOut(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	agent := unitAgent(0, 0)
	obstacle := NewRect(0.8, 0, 1, 1)

	got := r.Resolve(agent, Vec{X: 0.1}, []Rect{obstacle})
	assert.InDelta(t, 0, got.X, tolerance, "further penetration is stopped")

	got = r.Resolve(agent, Vec{X: -1}, []Rect{obstacle})
	assert.InDelta(t, -1, got.X, tolerance, "moving away is allowed")
}

func TestResolveRejectsMalformedInput(t *testing.T) {
	r := NewResolver(PolicyLastWins)
	wall := NewRect(1, 0, 1, 1)

	broken := Rect{Center: Vec{X: 1}, Half: Vec{X: math.NaN(), Y: 1}}
	negative := Rect{Center: Vec{X: 1}, Half: Vec{X: -1, Y: 1}}
	got := r.Resolve(unitAgent(0, 0), Vec{X: 3}, []Rect{broken, negative})
	assert.Equal(t, Vec{X: 3}, got, "invalid obstacles are skipped")

	got = r.Resolve(unitAgent(0, 0), Vec{X: math.Inf(1)}, []Rect{wall})
	assert.Equal(t, Vec{}, got)

	got = r.Resolve(Rect{Half: Vec{X: -1, Y: 1}}, Vec{X: 3}, []Rect{wall})
	assert.Equal(t, Vec{}, got)
}

func TestCollide(t *testing.T) {
	agent := unitAgent(0, 0)

	tests := []struct {
		name     string
		obstacle Rect
		wantSide Side
		wantHit  bool
	}{
		{"apart", NewRect(5, 5, 1, 1), SideNone, false},
		{"touching edge", NewRect(1, 0, 1, 1), SideNone, false},
		{"left", NewRect(-0.8, 0, 1, 3), SideLeft, true},
		{"right", NewRect(0.8, 0, 1, 3), SideRight, true},
		{"top", NewRect(0, 0.8, 3, 1), SideTop, true},
		{"bottom", NewRect(0, -0.8, 3, 1), SideBottom, true},
		{"shallow corner prefers y", NewRect(0.6, 0.9, 1, 1), SideTop, true},
		{"contained", NewRect(0, 0, 0.2, 0.2), SideNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side, hit := Collide(tt.obstacle, agent)
			assert.Equal(t, tt.wantHit, hit)
			assert.Equal(t, tt.wantSide, side, "got %s", side)
		})
	}
}

func TestSweepReportsApproachSide(t *testing.T) {
	agent := unitAgent(0, 0)
	wall := NewRect(3, 0, 0.5, 2)

	side, hit := Sweep(wall, agent, Vec{X: 10})
	assert.True(t, hit)
	assert.Equal(t, SideRight, side)

	side, hit = Sweep(wall, agent, Vec{X: -10})
	assert.False(t, hit)
	assert.Equal(t, SideNone, side)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("nearest")
	require.NoError(t, err)
	assert.Equal(t, PolicyNearest, p)

	p, err = ParsePolicy(" Last ")
	require.NoError(t, err)
	assert.Equal(t, PolicyLastWins, p)

	_, err = ParsePolicy("closest")
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}
